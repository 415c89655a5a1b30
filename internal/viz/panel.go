package viz

import (
	"fmt"
	"strings"

	"github.com/san-kum/teardown/internal/detail"
	"github.com/san-kum/teardown/internal/scene"
)

// ToggleLabel is the caption of the explode button for the given state.
func ToggleLabel(exploded bool) string {
	if exploded {
		return "Collapse View"
	}
	return "Explode View"
}

func (m Model) renderPanel() string {
	s := m.styles
	snap := m.sc.Snapshot()
	st := snap.State
	inner := panelWidth - 4

	var b strings.Builder
	b.WriteString(s.title.Render("TEARDOWN") + "\n")
	b.WriteString(s.subtitle.Render("3D repair app demo") + "\n")
	b.WriteString(s.separator(inner) + "\n\n")

	b.WriteString(s.button.Render(ToggleLabel(st.Exploded)) + "  " + s.keyHint("e", "toggle") + "\n\n")

	hovered := "—"
	if st.Hovered.Valid() {
		hovered = st.Hovered.String()
	}
	b.WriteString(s.label.Render("Hover   ") + s.value.Render(hovered) + "\n")

	p := m.sc.Pacing()
	lo, hi := min(p.CameraNear, p.CameraFar), max(p.CameraNear, p.CameraFar)
	b.WriteString(s.label.Render("Camera  ") + s.value.Render(fmt.Sprintf("%.3f ", snap.CameraDistance)) +
		s.spark.Render(SparklineChart(m.distHistory, 20, lo, hi)) + "\n")
	b.WriteString(s.label.Render("Frame   ") + s.value.Render(fmt.Sprintf("%d  %.0f fps", snap.Frame, m.measuredFPS)) + "\n")

	if d := detail.DescribeID(st.Selected); d != nil {
		b.WriteString("\n" + s.card.Render(m.renderDetail(d)) + "\n")
	}

	b.WriteString("\n" + s.hint.Render("Click on a part to view details. Use the arrow keys to orbit and +/- to zoom.") + "\n\n")
	b.WriteString(s.keyHint("tab", "hover", "enter", "select", "?", "help", "q", "quit"))
	return s.panel.Render(b.String())
}

func (m Model) renderDetail(d *detail.PartDetail) string {
	s := m.styles
	var b strings.Builder
	b.WriteString(s.cardHead.Render(d.Name) + "\n\n")

	b.WriteString(s.section.Render(fold(m.specsOpen)+" Specifications") + s.hint.Render("  [s]") + "\n")
	if m.specsOpen {
		for _, spec := range d.Specs {
			b.WriteString(s.label.Render(spec.Label()+":") + " " + s.value.Render(spec.Value) + "\n")
		}
	}
	b.WriteString(s.section.Render(fold(m.connOpen)+" Connections") + s.hint.Render("  [c]") + "\n")
	if m.connOpen {
		for _, c := range d.Connections {
			b.WriteString(s.value.Render(c) + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func fold(open bool) string {
	if open {
		return "▾"
	}
	return "▸"
}

// RenderFrame draws a snapshot onto a fresh w x h canvas with a default
// front-on camera. Used for still exports.
func RenderFrame(snap scene.Snapshot, w, h int) *Canvas {
	c := NewCanvas(w, h)
	RenderScene(c, snap, NewCamera())
	return c
}
