package scene_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/teardown/internal/parts"
	"github.com/san-kum/teardown/internal/scene"
)

var _ = Describe("Lerp", func() {
	DescribeTable("converges to any target without overshoot",
		func(start, target float64) {
			cur := start
			for i := 0; i < 200; i++ {
				next := scene.Lerp(cur, target, scene.DefaultAlpha)
				if start < target {
					Expect(next).To(BeNumerically(">=", cur))
					Expect(next).To(BeNumerically("<=", target))
				} else {
					Expect(next).To(BeNumerically("<=", cur))
					Expect(next).To(BeNumerically(">=", target))
				}
				cur = next
			}
			Expect(cur).To(BeNumerically("~", target, 1e-6))
		},
		Entry("ascending to exploded screen", 0.02, 0.04),
		Entry("descending to exploded battery", 0.0, -0.02),
		Entry("descending back to rest", 0.04, 0.02),
		Entry("far start", 5.0, -0.03),
		Entry("negative to positive", -1.0, 1.0),
	)

	It("is a fixed point at the target", func() {
		Expect(scene.Lerp(0.6, 0.6, scene.DefaultAlpha)).To(Equal(0.6))
	})
})

var _ = Describe("Animator", func() {
	var anim *scene.Animator

	BeforeEach(func() {
		anim = scene.NewAnimator(parts.All(), scene.DefaultPacing())
	})

	It("starts every part at rest with unit scale", func() {
		for _, p := range parts.All() {
			Expect(anim.Position(p.ID)).To(Equal(p.RestPosition))
			Expect(anim.Scale(p.ID)).To(Equal(1.0))
		}
	})

	It("moves each part one alpha step toward its exploded target", func() {
		anim.Tick(scene.State{Exploded: true})
		Expect(anim.Position(parts.Screen).Z()).To(BeNumerically("~", 0.022, 1e-12))
		Expect(anim.Position(parts.Battery).Z()).To(BeNumerically("~", -0.002, 1e-12))
		Expect(anim.Position(parts.Camera).Z()).To(BeNumerically("~", 0.01, 1e-12))
	})

	It("never animates x or y", func() {
		for i := 0; i < 50; i++ {
			anim.Tick(scene.State{Exploded: i%7 < 4, Hovered: parts.Camera})
		}
		for _, p := range parts.All() {
			pos := anim.Position(p.ID)
			Expect(pos.X()).To(Equal(p.RestPosition.X()))
			Expect(pos.Y()).To(Equal(p.RestPosition.Y()))
		}
	})

	Context("hover highlight", func() {
		It("snaps to the hover scale in a single tick", func() {
			anim.Tick(scene.State{Hovered: parts.Battery})
			Expect(anim.Scale(parts.Battery)).To(Equal(1.05))
			for _, p := range parts.All() {
				if p.ID != parts.Battery {
					Expect(anim.Scale(p.ID)).To(Equal(1.0), p.Name)
				}
			}
		})

		It("drops back in a single tick when hover leaves", func() {
			anim.Tick(scene.State{Hovered: parts.Battery})
			anim.Tick(scene.State{})
			Expect(anim.Scale(parts.Battery)).To(Equal(1.0))
		})

		It("treats an unknown hovered id as no hover", func() {
			anim.Tick(scene.State{Hovered: parts.ID(99)})
			for _, p := range parts.All() {
				Expect(anim.Scale(p.ID)).To(Equal(1.0))
			}
		})
	})

	It("does not depend on selection", func() {
		other := scene.NewAnimator(parts.All(), scene.DefaultPacing())
		for i := 0; i < 10; i++ {
			anim.Tick(scene.State{Exploded: true, Selected: parts.Speaker})
			other.Tick(scene.State{Exploded: true})
		}
		for _, p := range parts.All() {
			Expect(anim.Position(p.ID)).To(Equal(other.Position(p.ID)))
		}
	})

	It("reports settled once every part reaches its target", func() {
		st := scene.State{Exploded: true}
		Expect(anim.Settled(st, 1e-6)).To(BeFalse())
		for i := 0; i < 200; i++ {
			anim.Tick(st)
		}
		Expect(anim.Settled(st, 1e-6)).To(BeTrue())
	})

	It("is a no-op over an empty registry", func() {
		empty := scene.NewAnimator(nil, scene.DefaultPacing())
		Expect(func() { empty.Tick(scene.State{Exploded: true, Hovered: parts.Screen}) }).NotTo(Panic())
		Expect(empty.Settled(scene.State{Exploded: true}, 0)).To(BeTrue())
		_, ok := empty.State(parts.Screen)
		Expect(ok).To(BeFalse())
	})
})
