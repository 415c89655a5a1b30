package scene

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/teardown/internal/parts"
)

// Scene is one mounted viewer: interaction state, animated parts and camera.
type Scene struct {
	ctrl   *Controller
	anim   *Animator
	cam    *Camera
	frame  int
	pacing Pacing
}

func New(pacing Pacing) *Scene {
	return NewWithParts(parts.All(), pacing)
}

// NewWithParts mounts a scene over a custom registry. An empty registry is
// allowed; ticks then only move the camera.
func NewWithParts(registry []parts.Part, pacing Pacing) *Scene {
	return &Scene{
		ctrl:   NewController(),
		anim:   NewAnimator(registry, pacing),
		cam:    NewCamera(pacing),
		pacing: pacing,
	}
}

func (s *Scene) Controller() *Controller { return s.ctrl }
func (s *Scene) Animator() *Animator     { return s.anim }
func (s *Scene) Camera() *Camera         { return s.cam }
func (s *Scene) Pacing() Pacing          { return s.pacing }
func (s *Scene) Frame() int              { return s.frame }

// Tick advances parts and camera against the current state.
func (s *Scene) Tick() {
	st := s.ctrl.State()
	s.anim.Tick(st)
	s.cam.Tick(st)
	s.frame++
}

// Settled reports whether parts and camera are all within eps of target.
func (s *Scene) Settled(eps float64) bool {
	st := s.ctrl.State()
	return s.anim.Settled(st, eps) && s.cam.Settled(st, eps)
}

// PartView is what a renderer needs to place one part.
type PartView struct {
	Part         parts.Part
	Position     mgl64.Vec3
	Scale        float64
	LabelVisible bool
	Hovered      bool
	Selected     bool
}

// LabelPosition is the world position of the part's label.
func (v PartView) LabelPosition() mgl64.Vec3 {
	return v.Position.Add(v.Part.LabelAnchor)
}

// Snapshot is a read-only view of a single frame.
type Snapshot struct {
	Frame          int
	State          State
	Parts          []PartView
	CameraDistance float64
}

func (s *Scene) Snapshot() Snapshot {
	st := s.ctrl.State()
	snap := Snapshot{
		Frame:          s.frame,
		State:          st,
		Parts:          make([]PartView, 0, len(s.anim.Parts())),
		CameraDistance: s.cam.Distance,
	}
	for _, p := range s.anim.Parts() {
		ps, ok := s.anim.State(p.ID)
		if !ok {
			continue
		}
		snap.Parts = append(snap.Parts, PartView{
			Part:         p,
			Position:     ps.Position,
			Scale:        ps.Scale,
			LabelVisible: st.LabelVisible(p.ID),
			Hovered:      st.Hovered == p.ID,
			Selected:     st.Selected == p.ID,
		})
	}
	return snap
}
