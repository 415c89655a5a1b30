package trace_test

import (
	"context"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/teardown/internal/parts"
	"github.com/san-kum/teardown/internal/scene"
	"github.com/san-kum/teardown/internal/trace"
)

func mustScript(s string) []scene.Action {
	actions, err := scene.ParseScript(s)
	Expect(err).NotTo(HaveOccurred())
	return actions
}

var _ = Describe("Run", func() {
	var sc *scene.Scene

	BeforeEach(func() {
		sc = scene.New(scene.DefaultPacing())
	})

	It("samples every tick and reports when the explode settles", func() {
		res, err := trace.Run(context.Background(), sc, mustScript("explode"), 300)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Samples).To(HaveLen(300))
		Expect(res.Script).To(Equal([]string{"explode"}))
		Expect(res.SettledAt).To(BeNumerically(">", 100))
		Expect(res.SettledAt).To(BeNumerically("<", 300))

		last := res.Samples[len(res.Samples)-1]
		Expect(last.Frame).To(Equal(300))
		Expect(last.Exploded).To(BeTrue())
		Expect(last.Z[parts.Screen.Index()]).To(BeNumerically("~", 0.04, 1e-6))
		Expect(last.Camera).To(BeNumerically("~", 0.6, 1e-6))
		Expect(res.Final.CameraDistance).To(Equal(last.Camera))
	})

	It("produces monotonic series", func() {
		res, err := trace.Run(context.Background(), sc, mustScript("explode"), 120)
		Expect(err).NotTo(HaveOccurred())

		screen := res.Series(parts.Screen)
		battery := res.Series(parts.Battery)
		cam := res.CameraSeries()
		for i := 1; i < len(screen); i++ {
			Expect(screen[i]).To(BeNumerically(">=", screen[i-1]))
			Expect(battery[i]).To(BeNumerically("<=", battery[i-1]))
			Expect(cam[i]).To(BeNumerically(">=", cam[i-1]))
		}
		Expect(res.Series(parts.None)).To(BeNil())
	})

	It("records hover and selection from the script", func() {
		res, err := trace.Run(context.Background(), sc, mustScript("select:Camera,wait:2,hover:Speaker,wait:1,explode"), 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Samples).To(HaveLen(4))

		Expect(res.Samples[0].Selected).To(Equal(parts.Camera))
		Expect(res.Samples[0].Hovered).To(Equal(parts.None))
		Expect(res.Samples[2].Hovered).To(Equal(parts.Speaker))
		Expect(res.Samples[2].Scale[parts.Speaker.Index()]).To(Equal(1.05))
		Expect(res.Samples[3].Exploded).To(BeTrue())
		Expect(res.Samples[3].Selected).To(Equal(parts.Camera))
	})

	It("counts an idle scene as settled on the first tick", func() {
		res, err := trace.Run(context.Background(), sc, nil, 3)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.SettledAt).To(Equal(1))
	})

	It("stops when the context is cancelled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		res, err := trace.Run(ctx, sc, mustScript("explode"), 50)
		Expect(err).To(MatchError(context.Canceled))
		Expect(res.Samples).To(BeEmpty())
		Expect(res.Final.State.Exploded).To(BeTrue())
	})
})

var _ = Describe("Store", func() {
	var (
		dir   string
		store *trace.Store
	)

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
		store = trace.NewStore(dir)
		Expect(store.Init()).To(Succeed())
	})

	It("lists nothing in a fresh directory", func() {
		runs, err := store.List()
		Expect(err).NotTo(HaveOccurred())
		Expect(runs).To(BeEmpty())
	})

	It("lists nothing when the directory does not exist", func() {
		runs, err := trace.NewStore(filepath.Join(dir, "missing")).List()
		Expect(err).NotTo(HaveOccurred())
		Expect(runs).To(BeEmpty())
	})

	It("saves and reloads a run", func() {
		sc := scene.New(scene.DefaultPacing())
		res, err := trace.Run(context.Background(), sc, mustScript("hover:Battery,select:Screen,explode"), 20)
		Expect(err).NotTo(HaveOccurred())

		id, err := store.Save(res, sc.Pacing())
		Expect(err).NotTo(HaveOccurred())
		Expect(id).NotTo(BeEmpty())
		Expect(filepath.Join(dir, id, "metadata.json")).To(BeAnExistingFile())
		Expect(filepath.Join(dir, id, "samples.csv")).To(BeAnExistingFile())

		meta, err := store.Load(id)
		Expect(err).NotTo(HaveOccurred())
		Expect(meta.Ticks).To(Equal(20))
		Expect(meta.Alpha).To(Equal(0.1))
		Expect(meta.Script).To(Equal([]string{"hover:Battery", "select:Screen", "explode"}))

		samples, err := store.LoadSamples(id)
		Expect(err).NotTo(HaveOccurred())
		Expect(samples).To(Equal(res.Samples))

		runs, err := store.List()
		Expect(err).NotTo(HaveOccurred())
		Expect(runs).To(HaveLen(1))
		Expect(runs[0].ID).To(Equal(id))
	})

	It("reports missing runs", func() {
		_, err := store.Load("trace_0")
		Expect(err).To(MatchError(trace.ErrRunNotFound))
		_, err = store.LoadSamples("trace_0")
		Expect(err).To(MatchError(trace.ErrRunNotFound))
	})

	It("skips directories without metadata", func() {
		Expect(os.MkdirAll(filepath.Join(dir, "junk"), 0755)).To(Succeed())
		runs, err := store.List()
		Expect(err).NotTo(HaveOccurred())
		Expect(runs).To(BeEmpty())
	})
})
