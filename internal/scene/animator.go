package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/teardown/internal/parts"
)

// PartState is the animated half of a part: where it is drawn this frame and
// how large.
type PartState struct {
	Position mgl64.Vec3
	Scale    float64
}

// Animator eases parts toward their targets. Animated state lives in a fixed
// arena indexed by part id, so the registry itself stays immutable.
type Animator struct {
	registry []parts.Part
	arena    [parts.Count]PartState
	pacing   Pacing
}

// NewAnimator places every part at rest with unit scale.
func NewAnimator(registry []parts.Part, pacing Pacing) *Animator {
	a := &Animator{registry: registry, pacing: pacing}
	for _, p := range registry {
		if i := p.ID.Index(); i >= 0 {
			a.arena[i] = PartState{Position: p.RestPosition, Scale: 1}
		}
	}
	return a
}

// Tick advances every part by one frame. Position eases along z only; the
// hover scale snaps so highlighting feels immediate.
func (a *Animator) Tick(st State) {
	for _, p := range a.registry {
		i := p.ID.Index()
		if i < 0 {
			continue
		}
		cur := &a.arena[i]
		z := Lerp(cur.Position.Z(), p.TargetZ(st.Exploded), a.pacing.Alpha)
		cur.Position = mgl64.Vec3{p.RestPosition.X(), p.RestPosition.Y(), z}
		if st.Hovered == p.ID {
			cur.Scale = a.pacing.HoverScale
		} else {
			cur.Scale = 1
		}
	}
}

func (a *Animator) Parts() []parts.Part { return a.registry }

// State returns the animated state for id and whether id is animated here.
func (a *Animator) State(id parts.ID) (PartState, bool) {
	i := id.Index()
	if i < 0 || !a.has(id) {
		return PartState{}, false
	}
	return a.arena[i], true
}

func (a *Animator) Position(id parts.ID) mgl64.Vec3 {
	ps, _ := a.State(id)
	return ps.Position
}

func (a *Animator) Scale(id parts.ID) float64 {
	ps, ok := a.State(id)
	if !ok {
		return 0
	}
	return ps.Scale
}

// Settled reports whether every part is within eps of its target for st.
func (a *Animator) Settled(st State, eps float64) bool {
	for _, p := range a.registry {
		i := p.ID.Index()
		if i < 0 {
			continue
		}
		if math.Abs(a.arena[i].Position.Z()-p.TargetZ(st.Exploded)) > eps {
			return false
		}
	}
	return true
}

func (a *Animator) has(id parts.ID) bool {
	for _, p := range a.registry {
		if p.ID == id {
			return true
		}
	}
	return false
}
