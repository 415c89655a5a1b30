package scene_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/teardown/internal/parts"
	"github.com/san-kum/teardown/internal/scene"
)

var _ = Describe("Actions", func() {
	DescribeTable("ParseAction accepts",
		func(in string, want scene.Action) {
			got, err := scene.ParseAction(in)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(want))
		},
		Entry("explode", "explode", scene.Action{Kind: scene.ActionExplode}),
		Entry("toggle alias", " Toggle ", scene.Action{Kind: scene.ActionExplode}),
		Entry("hover", "hover:Camera", scene.Action{Kind: scene.ActionHover, Part: "Camera"}),
		Entry("unhover", "unhover", scene.Action{Kind: scene.ActionUnhover}),
		Entry("select", "select: Battery", scene.Action{Kind: scene.ActionSelect, Part: "Battery"}),
		Entry("wait", "wait:30", scene.Action{Kind: scene.ActionWait, Ticks: 30}),
		Entry("unknown part parses", "select:Unknown", scene.Action{Kind: scene.ActionSelect, Part: "Unknown"}),
	)

	DescribeTable("ParseAction rejects",
		func(in string, want error) {
			_, err := scene.ParseAction(in)
			Expect(err).To(MatchError(want))
		},
		Entry("unknown verb", "spin", scene.ErrUnknownAction),
		Entry("hover without part", "hover", scene.ErrBadArgument),
		Entry("select with empty part", "select:", scene.ErrBadArgument),
		Entry("wait without count", "wait", scene.ErrBadArgument),
		Entry("negative wait", "wait:-2", scene.ErrBadArgument),
		Entry("non numeric wait", "wait:soon", scene.ErrBadArgument),
	)

	It("round-trips through String", func() {
		for _, in := range []string{"explode", "hover:Screen", "unhover", "select:Chassis", "wait:12"} {
			a, err := scene.ParseAction(in)
			Expect(err).NotTo(HaveOccurred())
			Expect(a.String()).To(Equal(in))
		}
	})

	It("parses a script and reports the failing position", func() {
		actions, err := scene.ParseScript("explode, hover:Camera,,wait:3")
		Expect(err).NotTo(HaveOccurred())
		Expect(actions).To(HaveLen(3))

		_, err = scene.ParseScript("explode,jump")
		Expect(err).To(MatchError(scene.ErrUnknownAction))
		Expect(err.Error()).To(ContainSubstring("action 2"))
	})

	It("applies a script to a scene", func() {
		sc := scene.New(scene.DefaultPacing())
		actions, err := scene.ParseScript("select:Camera,explode,hover:Camera,select:Nope,wait:200")
		Expect(err).NotTo(HaveOccurred())
		for _, a := range actions {
			sc.Apply(a)
		}

		st := sc.Controller().State()
		Expect(st).To(Equal(scene.State{Exploded: true, Hovered: parts.Camera, Selected: parts.Camera}))
		Expect(sc.Frame()).To(Equal(200))
		Expect(sc.Animator().Position(parts.Screen).Z()).To(BeNumerically("~", 0.04, 1e-6))
	})
})
