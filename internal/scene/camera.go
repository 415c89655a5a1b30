package scene

import "math"

// Camera tracks how far the viewer sits from the model. It backs off when
// the view explodes so the spread-out parts stay in frame.
type Camera struct {
	Distance float64
	pacing   Pacing
}

func NewCamera(pacing Pacing) *Camera {
	return &Camera{Distance: pacing.CameraNear, pacing: pacing}
}

func (c *Camera) Target(st State) float64 {
	if st.Exploded {
		return c.pacing.CameraFar
	}
	return c.pacing.CameraNear
}

func (c *Camera) Tick(st State) {
	c.Distance = Lerp(c.Distance, c.Target(st), c.pacing.Alpha)
}

func (c *Camera) Settled(st State, eps float64) bool {
	return math.Abs(c.Distance-c.Target(st)) <= eps
}
