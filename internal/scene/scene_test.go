package scene_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/teardown/internal/parts"
	"github.com/san-kum/teardown/internal/scene"
)

func tickN(sc *scene.Scene, n int) {
	for i := 0; i < n; i++ {
		sc.Tick()
	}
}

var _ = Describe("Scene", func() {
	var sc *scene.Scene

	BeforeEach(func() {
		sc = scene.New(scene.DefaultPacing())
	})

	It("mounts with the camera at the near distance", func() {
		Expect(sc.Camera().Distance).To(Equal(0.5))
		Expect(sc.Frame()).To(Equal(0))
	})

	It("explodes the assembly and backs the camera off", func() {
		sc.Controller().ToggleExplode()
		tickN(sc, 200)

		anim := sc.Animator()
		Expect(anim.Position(parts.Screen).Z()).To(BeNumerically("~", 0.04, 1e-6))
		Expect(anim.Position(parts.Battery).Z()).To(BeNumerically("~", -0.02, 1e-6))
		Expect(anim.Position(parts.Motherboard).Z()).To(BeNumerically("~", -0.03, 1e-6))
		Expect(anim.Position(parts.Camera).Z()).To(BeNumerically("~", 0.01, 1e-12))
		Expect(anim.Position(parts.Speaker).Z()).To(BeNumerically("~", 0.01, 1e-12))
		Expect(anim.Position(parts.Chassis).Z()).To(BeNumerically("~", 0, 1e-12))
		Expect(sc.Camera().Distance).To(BeNumerically("~", 0.6, 1e-6))
		Expect(sc.Settled(1e-6)).To(BeTrue())
		Expect(sc.Frame()).To(Equal(200))
	})

	It("collapses back to rest", func() {
		sc.Controller().ToggleExplode()
		tickN(sc, 40)
		sc.Controller().ToggleExplode()
		tickN(sc, 200)

		for _, p := range parts.All() {
			Expect(sc.Animator().Position(p.ID).Z()).To(BeNumerically("~", p.RestPosition.Z(), 1e-6), p.Name)
		}
		Expect(sc.Camera().Distance).To(BeNumerically("~", 0.5, 1e-6))
	})

	It("reverses mid-flight from wherever the parts are", func() {
		sc.Controller().ToggleExplode()
		tickN(sc, 5)
		mid := sc.Animator().Position(parts.Screen).Z()
		Expect(mid).To(BeNumerically(">", 0.02))
		Expect(mid).To(BeNumerically("<", 0.04))

		sc.Controller().ToggleExplode()
		sc.Tick()
		Expect(sc.Animator().Position(parts.Screen).Z()).To(BeNumerically("~", scene.Lerp(mid, 0.02, 0.1), 1e-12))
	})

	It("keeps the selection through explode toggles and ticks", func() {
		sc.Controller().SelectPart(parts.Battery)
		sc.Controller().ToggleExplode()
		sc.Tick()
		Expect(sc.Controller().State().Selected).To(Equal(parts.Battery))
	})

	It("makes an input visible on the very next tick", func() {
		sc.Controller().SetHovered(parts.Camera)
		sc.Tick()
		Expect(sc.Animator().Scale(parts.Camera)).To(Equal(1.05))
	})

	It("has no net effect after a toggle pair", func() {
		sc.Controller().ToggleExplode()
		sc.Controller().ToggleExplode()
		tickN(sc, 10)
		for _, p := range parts.All() {
			Expect(sc.Animator().Position(p.ID)).To(Equal(p.RestPosition))
		}
		Expect(sc.Camera().Distance).To(Equal(0.5))
	})

	Describe("Snapshot", func() {
		It("lists parts in registry order with labels and flags", func() {
			sc.Controller().SetHovered(parts.Camera)
			sc.Controller().SelectPart(parts.Screen)
			sc.Tick()

			snap := sc.Snapshot()
			Expect(snap.Frame).To(Equal(1))
			Expect(snap.Parts).To(HaveLen(parts.Count))
			for i, v := range snap.Parts {
				Expect(v.Part.Name).To(Equal(parts.Names()[i]))
				Expect(v.LabelVisible).To(Equal(v.Part.ID == parts.Camera))
				Expect(v.Hovered).To(Equal(v.Part.ID == parts.Camera))
				Expect(v.Selected).To(Equal(v.Part.ID == parts.Screen))
			}
			cam := snap.Parts[parts.Camera.Index()]
			Expect(cam.Scale).To(Equal(1.05))
			Expect(cam.LabelPosition().X()).To(BeNumerically("~", 0.035, 1e-12))
		})
	})

	Context("with an empty registry", func() {
		It("still moves the camera", func() {
			empty := scene.NewWithParts(nil, scene.DefaultPacing())
			empty.Controller().ToggleExplode()
			tickN(empty, 200)
			Expect(empty.Camera().Distance).To(BeNumerically("~", 0.6, 1e-6))
			Expect(empty.Snapshot().Parts).To(BeEmpty())
		})
	})
})
