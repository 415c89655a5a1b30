package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/teardown/internal/parts"
	"github.com/san-kum/teardown/internal/trace"
)

type PartFrame struct {
	Z     float64 `json:"z"`
	Scale float64 `json:"scale"`
}

type Frame struct {
	Frame    int                  `json:"frame"`
	Camera   float64              `json:"camera"`
	Exploded bool                 `json:"exploded"`
	Hovered  string               `json:"hovered,omitempty"`
	Selected string               `json:"selected,omitempty"`
	Parts    map[string]PartFrame `json:"parts"`
}

type ExportData struct {
	Run    trace.RunMetadata `json:"run"`
	Frames []Frame           `json:"frames"`
}

func NewExportData(meta trace.RunMetadata, samples []trace.Sample) ExportData {
	data := ExportData{Run: meta, Frames: make([]Frame, len(samples))}
	for i, s := range samples {
		f := Frame{
			Frame:    s.Frame,
			Camera:   s.Camera,
			Exploded: s.Exploded,
			Parts:    make(map[string]PartFrame, parts.Count),
		}
		if s.Hovered.Valid() {
			f.Hovered = s.Hovered.String()
		}
		if s.Selected.Valid() {
			f.Selected = s.Selected.String()
		}
		for _, p := range parts.All() {
			k := p.ID.Index()
			f.Parts[p.Name] = PartFrame{Z: s.Z[k], Scale: s.Scale[k]}
		}
		data.Frames[i] = f
	}
	return data
}

// WriteJSON encodes a stored trace as indented JSON.
func WriteJSON(w io.Writer, meta trace.RunMetadata, samples []trace.Sample) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewExportData(meta, samples))
}

func ExportJSON(path string, meta trace.RunMetadata, samples []trace.Sample) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteJSON(file, meta, samples)
}
