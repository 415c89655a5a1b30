package scene_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/teardown/internal/parts"
	"github.com/san-kum/teardown/internal/scene"
)

var _ = Describe("Controller", func() {
	var ctrl *scene.Controller

	BeforeEach(func() {
		ctrl = scene.NewController()
	})

	It("starts collapsed with nothing hovered or selected", func() {
		Expect(ctrl.State()).To(Equal(scene.State{}))
		Expect(ctrl.State().Hovered).To(Equal(parts.None))
	})

	Describe("ToggleExplode", func() {
		It("returns to the original value after a pair of toggles", func() {
			ctrl.ToggleExplode()
			Expect(ctrl.State().Exploded).To(BeTrue())
			ctrl.ToggleExplode()
			Expect(ctrl.State().Exploded).To(BeFalse())
		})

		It("leaves hover and selection alone", func() {
			ctrl.SetHovered(parts.Camera)
			ctrl.SelectPart(parts.Battery)
			ctrl.ToggleExplode()
			Expect(ctrl.State()).To(Equal(scene.State{Exploded: true, Hovered: parts.Camera, Selected: parts.Battery}))
		})
	})

	Describe("SetHovered", func() {
		It("replaces the hovered part without touching the selection", func() {
			ctrl.SelectPart(parts.Screen)
			ctrl.SetHovered(parts.Speaker)
			ctrl.SetHovered(parts.Chassis)
			Expect(ctrl.State().Hovered).To(Equal(parts.Chassis))
			Expect(ctrl.State().Selected).To(Equal(parts.Screen))
		})

		It("clears on None", func() {
			ctrl.SetHovered(parts.Speaker)
			ctrl.SetHovered(parts.None)
			Expect(ctrl.State().Hovered).To(Equal(parts.None))
		})

		It("ignores ids outside the registry", func() {
			ctrl.SetHovered(parts.Speaker)
			ctrl.SetHovered(parts.ID(-3))
			ctrl.SetHovered(parts.ID(17))
			Expect(ctrl.State().Hovered).To(Equal(parts.Speaker))
		})

		It("hovers by name and ignores unknown names", func() {
			ctrl.HoverName("Camera")
			Expect(ctrl.State().Hovered).To(Equal(parts.Camera))
			ctrl.HoverName("Unknown")
			Expect(ctrl.State().Hovered).To(Equal(parts.Camera))
			ctrl.HoverName("")
			Expect(ctrl.State().Hovered).To(Equal(parts.None))
		})
	})

	Describe("SelectPart", func() {
		It("replaces the selection", func() {
			ctrl.SelectPart(parts.Screen)
			ctrl.SelectPart(parts.Motherboard)
			Expect(ctrl.State().Selected).To(Equal(parts.Motherboard))
		})

		It("keeps the part selected when clicked again", func() {
			ctrl.SelectPart(parts.Motherboard)
			ctrl.SelectPart(parts.Motherboard)
			Expect(ctrl.State().Selected).To(Equal(parts.Motherboard))
		})

		It("ignores None and unknown ids", func() {
			ctrl.SelectPart(parts.Camera)
			ctrl.SelectPart(parts.None)
			ctrl.SelectPart(parts.ID(8))
			ctrl.SelectName("Unknown")
			Expect(ctrl.State().Selected).To(Equal(parts.Camera))
		})

		It("stays selected across hover changes", func() {
			ctrl.SelectName("Battery")
			ctrl.SetHovered(parts.Camera)
			ctrl.ClearHover()
			Expect(ctrl.State().Selected).To(Equal(parts.Battery))
		})
	})

	Describe("LabelVisible", func() {
		It("shows only the hovered label while collapsed", func() {
			st := scene.State{Hovered: parts.Speaker}
			for _, p := range parts.All() {
				Expect(st.LabelVisible(p.ID)).To(Equal(p.ID == parts.Speaker), p.Name)
			}
		})

		It("shows every label while exploded", func() {
			st := scene.State{Exploded: true}
			for _, p := range parts.All() {
				Expect(st.LabelVisible(p.ID)).To(BeTrue(), p.Name)
			}
		})

		It("hides the None label when nothing is hovered", func() {
			Expect(scene.State{}.LabelVisible(parts.None)).To(BeFalse())
		})
	})
})
