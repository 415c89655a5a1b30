package viz

import (
	"math"
	"sort"

	"github.com/charmbracelet/harmonica"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/teardown/internal/parts"
	"github.com/san-kum/teardown/internal/scene"
)

const (
	defaultFOV   = 50.0 // degrees, vertical
	nearPlane    = 0.01
	farPlane     = 10.0
	cornerRadius = 0.01
	minZoom      = 0.25
	maxZoom      = 4.0
)

// Camera is a perspective camera orbiting the origin. Distance comes from
// the scene every frame; Yaw and Polar come from the orbit controls.
type Camera struct {
	Distance   float64
	Yaw, Polar float64
	FOV        float64
	Zoom       float64
}

func NewCamera() *Camera {
	return &Camera{Distance: scene.DefaultCameraNear, Polar: math.Pi / 2, FOV: defaultFOV, Zoom: 1}
}

func (c *Camera) ZoomIn()  { c.Zoom = math.Min(maxZoom, c.Zoom*1.2) }
func (c *Camera) ZoomOut() { c.Zoom = math.Max(minZoom, c.Zoom/1.2) }

// Eye is the camera position in world space.
func (c *Camera) Eye() mgl64.Vec3 {
	d := c.Distance / c.Zoom
	sp := math.Sin(c.Polar)
	return mgl64.Vec3{d * sp * math.Sin(c.Yaw), d * math.Cos(c.Polar), d * sp * math.Cos(c.Yaw)}
}

func (c *Camera) matrix(sw, sh int) mgl64.Mat4 {
	aspect := 1.0
	if sh > 0 {
		aspect = float64(sw) / float64(sh)
	}
	proj := mgl64.Perspective(mgl64.DegToRad(c.FOV), aspect, nearPlane, farPlane)
	view := mgl64.LookAtV(c.Eye(), mgl64.Vec3{}, mgl64.Vec3{0, 1, 0})
	return proj.Mul4(view)
}

// Project maps a world point to sub-pixel coordinates on a sw x sh surface.
// depth is the distance along the view axis; ok is false behind the camera.
func (c *Camera) Project(p mgl64.Vec3, sw, sh int) (x, y int, depth float64, ok bool) {
	return project(c.matrix(sw, sh), p, sw, sh)
}

func project(m mgl64.Mat4, p mgl64.Vec3, sw, sh int) (int, int, float64, bool) {
	clip := m.Mul4x1(p.Vec4(1))
	w := clip.W()
	if w <= nearPlane {
		return 0, 0, 0, false
	}
	nx, ny := clip.X()/w, clip.Y()/w
	sx := int(math.Round((nx + 1) / 2 * float64(sw-1)))
	sy := int(math.Round((1 - ny) / 2 * float64(sh-1)))
	return sx, sy, w, true
}

// Orbit eases the camera's yaw and polar angle toward targets set by input,
// with the polar angle clamped so the device never flips over.
type Orbit struct {
	spring                 harmonica.Spring
	yaw, yawVel            float64
	polar, polarVel        float64
	TargetYaw, TargetPolar float64
	MinPolar, MaxPolar     float64
}

func NewOrbit(fps int, frequency, damping, minPolar, maxPolar float64) *Orbit {
	return &Orbit{
		spring:      harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
		polar:       math.Pi / 2,
		TargetPolar: math.Pi / 2,
		MinPolar:    minPolar,
		MaxPolar:    maxPolar,
	}
}

func (o *Orbit) Nudge(dYaw, dPolar float64) {
	o.TargetYaw += dYaw
	o.TargetPolar = clamp(o.TargetPolar+dPolar, o.MinPolar, o.MaxPolar)
}

func (o *Orbit) Reset() {
	o.TargetYaw = 0
	o.TargetPolar = clamp(math.Pi/2, o.MinPolar, o.MaxPolar)
}

// Update advances the springs one frame and writes the result into cam.
func (o *Orbit) Update(cam *Camera) {
	o.yaw, o.yawVel = o.spring.Update(o.yaw, o.yawVel, o.TargetYaw)
	o.polar, o.polarVel = o.spring.Update(o.polar, o.polarVel, o.TargetPolar)
	cam.Yaw = o.yaw
	cam.Polar = clamp(o.polar, o.MinPolar, o.MaxPolar)
}

type Edge struct {
	Start, End mgl64.Vec3
}

// PartEdges builds the wireframe of one part at its animated position and
// scale. Rounded parts get chamfered corners in the XY plane.
func PartEdges(v scene.PartView) []Edge {
	size := v.Part.VisualSize.Mul(v.Scale)
	hx, hy, hz := size.X()/2, size.Y()/2, size.Z()/2

	var outline [][2]float64
	if v.Part.Rounded {
		r := math.Min(cornerRadius*v.Scale, math.Min(hx, hy))
		outline = [][2]float64{
			{-hx, -hy + r}, {-hx, hy - r}, {-hx + r, hy}, {hx - r, hy},
			{hx, hy - r}, {hx, -hy + r}, {hx - r, -hy}, {-hx + r, -hy},
		}
	} else {
		outline = [][2]float64{{-hx, -hy}, {-hx, hy}, {hx, hy}, {hx, -hy}}
	}

	c := v.Position
	front := func(q [2]float64) mgl64.Vec3 { return c.Add(mgl64.Vec3{q[0], q[1], hz}) }
	back := func(q [2]float64) mgl64.Vec3 { return c.Add(mgl64.Vec3{q[0], q[1], -hz}) }
	n := len(outline)
	edges := make([]Edge, 0, n*3)
	for i := 0; i < n; i++ {
		a, b := outline[i], outline[(i+1)%n]
		edges = append(edges,
			Edge{front(a), front(b)},
			Edge{back(a), back(b)},
			Edge{front(a), back(a)},
		)
	}
	return edges
}

// Corners returns the 8 corners of the part's scaled bounding box.
func Corners(v scene.PartView) [8]mgl64.Vec3 {
	h := v.Part.VisualSize.Mul(v.Scale / 2)
	var out [8]mgl64.Vec3
	for i := 0; i < 8; i++ {
		s := mgl64.Vec3{-1, -1, -1}
		if i&1 != 0 {
			s[0] = 1
		}
		if i&2 != 0 {
			s[1] = 1
		}
		if i&4 != 0 {
			s[2] = 1
		}
		out[i] = v.Position.Add(mgl64.Vec3{s[0] * h[0], s[1] * h[1], s[2] * h[2]})
	}
	return out
}

// InkFor picks the ink a part is drawn with: selection wins over hover.
func InkFor(v scene.PartView) Ink {
	switch {
	case v.Selected:
		return InkSelected
	case v.Hovered:
		return InkHover
	}
	return PartInk(v.Part.ID.Index())
}

type projectedPart struct {
	view  scene.PartView
	depth float64
}

// RenderScene draws every part and visible label of snap onto c.
// Parts are painted far to near so nearer wireframes win the cell ink.
func RenderScene(c *Canvas, snap scene.Snapshot, cam *Camera) {
	if c == nil || cam == nil {
		return
	}
	c.Clear()
	cam.Distance = snap.CameraDistance
	sw, sh := c.PixelSize()
	m := cam.matrix(sw, sh)

	order := make([]projectedPart, 0, len(snap.Parts))
	for _, v := range snap.Parts {
		_, _, d, ok := project(m, v.Position, sw, sh)
		if !ok {
			continue
		}
		order = append(order, projectedPart{v, d})
	}
	sort.SliceStable(order, func(i, j int) bool { return order[i].depth > order[j].depth })

	for _, pp := range order {
		c.Pen = InkFor(pp.view)
		for _, e := range PartEdges(pp.view) {
			x1, y1, _, ok1 := project(m, e.Start, sw, sh)
			x2, y2, _, ok2 := project(m, e.End, sw, sh)
			if ok1 && ok2 {
				c.DrawLine(x1, y1, x2, y2)
			}
		}
	}

	for _, v := range snap.Parts {
		if !v.LabelVisible {
			continue
		}
		x, y, _, ok := project(m, v.LabelPosition(), sw, sh)
		if !ok {
			continue
		}
		name := v.Part.Name
		c.Text(x/2-len(name)/2, y/4, name, InkLabel)
	}
	c.Pen = InkNone
}

// Pick returns the front-most part whose projected bounds contain the cell
// (col, row), or parts.None.
func Pick(snap scene.Snapshot, cam *Camera, c *Canvas, col, row int) parts.ID {
	if c == nil || col < 0 || row < 0 || col >= c.Width || row >= c.Height {
		return parts.None
	}
	cam.Distance = snap.CameraDistance
	sw, sh := c.PixelSize()
	m := cam.matrix(sw, sh)
	px, py := col*2+1, row*4+2

	best, bestDepth := parts.None, math.Inf(1)
	for _, v := range snap.Parts {
		minX, minY, maxX, maxY := math.MaxInt, math.MaxInt, math.MinInt, math.MinInt
		nearest := math.Inf(1)
		visible := false
		for _, corner := range Corners(v) {
			x, y, d, ok := project(m, corner, sw, sh)
			if !ok {
				continue
			}
			visible = true
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
			nearest = math.Min(nearest, d)
		}
		if !visible || px < minX || px > maxX || py < minY || py > maxY {
			continue
		}
		if nearest < bestDepth {
			best, bestDepth = v.Part.ID, nearest
		}
	}
	return best
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
