package trace

import (
	"context"

	"github.com/san-kum/teardown/internal/parts"
	"github.com/san-kum/teardown/internal/scene"
)

// SettleEps is how close parts and camera must be to their targets for a
// run to count as settled.
const SettleEps = 1e-6

// Sample is the scene as it stood after one tick.
type Sample struct {
	Frame    int
	Camera   float64
	Exploded bool
	Hovered  parts.ID
	Selected parts.ID
	Z        [parts.Count]float64
	Scale    [parts.Count]float64
}

type Result struct {
	Script    []string
	Samples   []Sample
	SettledAt int
	Final     scene.Snapshot
}

// Series returns the z trajectory of one part across the run.
func (r *Result) Series(id parts.ID) []float64 {
	i := id.Index()
	if i < 0 {
		return nil
	}
	out := make([]float64, len(r.Samples))
	for k, s := range r.Samples {
		out[k] = s.Z[i]
	}
	return out
}

func (r *Result) CameraSeries() []float64 {
	out := make([]float64, len(r.Samples))
	for k, s := range r.Samples {
		out[k] = s.Camera
	}
	return out
}

// Run applies actions to sc in order, sampling after every tick, then runs
// extraTicks more. SettledAt is the first frame after the last input at
// which the scene had settled, or -1.
func Run(ctx context.Context, sc *scene.Scene, actions []scene.Action, extraTicks int) (*Result, error) {
	res := &Result{
		Script:    make([]string, 0, len(actions)),
		Samples:   make([]Sample, 0, extraTicks),
		SettledAt: -1,
	}

	step := func() error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		sc.Tick()
		res.Samples = append(res.Samples, sample(sc))
		if res.SettledAt < 0 && sc.Settled(SettleEps) {
			res.SettledAt = sc.Frame()
		}
		return nil
	}

	for _, a := range actions {
		res.Script = append(res.Script, a.String())
		if a.Kind != scene.ActionWait {
			sc.Apply(a)
			res.SettledAt = -1
			continue
		}
		for i := 0; i < a.Ticks; i++ {
			if err := step(); err != nil {
				res.Final = sc.Snapshot()
				return res, err
			}
		}
	}
	for i := 0; i < extraTicks; i++ {
		if err := step(); err != nil {
			res.Final = sc.Snapshot()
			return res, err
		}
	}

	res.Final = sc.Snapshot()
	return res, nil
}

func sample(sc *scene.Scene) Sample {
	st := sc.Controller().State()
	s := Sample{
		Frame:    sc.Frame(),
		Camera:   sc.Camera().Distance,
		Exploded: st.Exploded,
		Hovered:  st.Hovered,
		Selected: st.Selected,
	}
	for _, p := range sc.Animator().Parts() {
		ps, ok := sc.Animator().State(p.ID)
		if !ok {
			continue
		}
		s.Z[p.ID.Index()] = ps.Position.Z()
		s.Scale[p.ID.Index()] = ps.Scale
	}
	return s
}
