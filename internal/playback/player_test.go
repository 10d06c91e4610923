package playback_test

import (
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/algoviz/internal/algorithms"
	"github.com/san-kum/algoviz/internal/playback"
	"github.com/san-kum/algoviz/internal/step"
)

func sequence(n int) step.Sequence {
	rec := step.NewRecorder(n)
	for i := 0; i < n; i++ {
		rec.Record(step.ActionCompare, &step.SortSnapshot{Values: []int{i, i + 1}}, "step %d", i)
	}
	return rec.Steps()
}

var _ = Describe("Player", func() {
	var (
		sched  *manualScheduler
		player *playback.Player
	)

	BeforeEach(func() {
		sched = &manualScheduler{}
		player = playback.NewPlayer(playback.WithScheduler(sched))
	})

	Context("without a sequence", func() {
		It("is idle and ignores every control", func() {
			Expect(player.Status()).To(Equal(playback.StatusIdle))
			Expect(player.Controls()).To(Equal(playback.Controls{}))

			player.Play()
			player.Step()
			player.Reset()

			Expect(player.Status()).To(Equal(playback.StatusIdle))
			Expect(sched.Armed()).To(BeZero())
		})
	})

	Context("after Load", func() {
		BeforeEach(func() {
			player.Load("run-1", sequence(3))
		})

		It("is paused at the first step", func() {
			v := player.View()
			Expect(v.Status()).To(Equal(playback.StatusPaused))
			Expect(v.Index).To(Equal(0))
			Expect(v.Len).To(Equal(3))
			Expect(v.RunID).To(Equal("run-1"))
			Expect(v.Step.Description).To(Equal("step 0"))
			Expect(v.Controls()).To(Equal(playback.Controls{CanPlay: true, CanStep: true}))
		})

		It("arms exactly one tick at the current interval", func() {
			player.Play()
			player.Play()

			Expect(player.Status()).To(Equal(playback.StatusPlaying))
			Expect(sched.Pending()).To(HaveLen(1))
			Expect(sched.Pending()[0].d).To(Equal(time.Second))
		})

		It("advances once per tick and finishes past the last step", func() {
			player.Play()

			Expect(sched.FireNext()).To(BeTrue())
			Expect(player.View().Index).To(Equal(1))
			Expect(sched.FireNext()).To(BeTrue())
			Expect(player.View().Index).To(Equal(2))
			Expect(player.View().Playing).To(BeTrue())

			Expect(sched.FireNext()).To(BeTrue())
			v := player.View()
			Expect(v.Index).To(Equal(2))
			Expect(v.Finished).To(BeTrue())
			Expect(v.Playing).To(BeFalse())
			Expect(v.Controls()).To(Equal(playback.Controls{CanReset: true}))
			Expect(sched.Pending()).To(BeEmpty())
		})

		It("does not play once finished", func() {
			player.Play()
			for sched.FireNext() {
			}
			player.Play()

			Expect(player.Status()).To(Equal(playback.StatusFinished))
			Expect(sched.Pending()).To(BeEmpty())
		})

		It("cancels the pending tick on Pause", func() {
			player.Play()
			t := sched.Pending()[0]

			player.Pause()

			Expect(t.stopped).To(BeTrue())
			Expect(sched.Pending()).To(BeEmpty())
			Expect(player.Status()).To(Equal(playback.StatusPaused))
		})

		It("drops a tick that fires after Reset", func() {
			player.Play()
			Expect(sched.FireNext()).To(BeTrue())
			t := sched.Pending()[0]

			player.Reset()
			t.Late()

			v := player.View()
			Expect(v.Index).To(Equal(0))
			Expect(v.Playing).To(BeFalse())
			Expect(sched.Pending()).To(BeEmpty())
		})

		It("drops a tick that fires after a new sequence is loaded", func() {
			player.Play()
			t := sched.Pending()[0]

			player.Load("run-2", sequence(5))
			t.Late()

			v := player.View()
			Expect(v.RunID).To(Equal("run-2"))
			Expect(v.Index).To(Equal(0))
			Expect(v.Len).To(Equal(5))
			Expect(v.Status()).To(Equal(playback.StatusPaused))
		})

		It("drops a tick that fires after Pause and a fresh Play", func() {
			player.Play()
			stale := sched.Pending()[0]
			player.Pause()
			player.Play()

			stale.Late()
			Expect(player.View().Index).To(Equal(0))

			Expect(sched.FireNext()).To(BeTrue())
			Expect(player.View().Index).To(Equal(1))
		})

		It("applies a speed change to the next tick only", func() {
			player.Play()
			player.SetSpeed(playback.SpeedFast)

			Expect(sched.Pending()[0].d).To(Equal(time.Second))
			Expect(sched.FireNext()).To(BeTrue())
			Expect(sched.Pending()[0].d).To(Equal(500 * time.Millisecond))
			Expect(player.View().Speed()).To(Equal(playback.SpeedFast))
		})

		It("steps with a clamp and never finishes", func() {
			for i := 0; i < 10; i++ {
				player.Step()
			}
			v := player.View()
			Expect(v.Index).To(Equal(2))
			Expect(v.Finished).To(BeFalse())
			Expect(v.Controls()).To(Equal(playback.Controls{CanPlay: true, CanReset: true}))
		})

		It("pauses when stepping during playback", func() {
			player.Play()
			t := sched.Pending()[0]

			player.Step()

			Expect(t.stopped).To(BeTrue())
			v := player.View()
			Expect(v.Index).To(Equal(1))
			Expect(v.Playing).To(BeFalse())
		})

		It("keeps the finished flag when stepping after the end", func() {
			player.Play()
			for sched.FireNext() {
			}
			player.Step()

			Expect(player.Status()).To(Equal(playback.StatusFinished))
			Expect(player.View().Index).To(Equal(2))
		})

		It("rewinds a finished run on Reset", func() {
			player.Play()
			for sched.FireNext() {
			}
			player.Reset()

			v := player.View()
			Expect(v.Index).To(Equal(0))
			Expect(v.Finished).To(BeFalse())
			Expect(v.Status()).To(Equal(playback.StatusPaused))
			Expect(v.Len).To(Equal(3))
		})

		It("toggles between playing and paused", func() {
			player.Toggle()
			Expect(player.Status()).To(Equal(playback.StatusPlaying))
			player.Toggle()
			Expect(player.Status()).To(Equal(playback.StatusPaused))
			Expect(sched.Pending()).To(BeEmpty())
		})

		It("hands out private copies of the current step", func() {
			v := player.View()
			v.Step.Data.(step.SortSnapshot).Values[0] = 99

			Expect(player.View().Step.Data.Array()).To(Equal([]int{0, 1}))
		})
	})

	Context("with a listener", func() {
		It("sees each state change once and in order", func() {
			var (
				mu    sync.Mutex
				views []playback.View
			)
			player = playback.NewPlayer(
				playback.WithScheduler(sched),
				playback.OnChange(func(v playback.View) {
					mu.Lock()
					views = append(views, v)
					mu.Unlock()
				}),
			)

			player.Load("run", sequence(2))
			player.Pause()
			player.Play()
			sched.FireNext()
			sched.FireNext()

			mu.Lock()
			defer mu.Unlock()
			statuses := make([]playback.Status, len(views))
			for i, v := range views {
				statuses[i] = v.Status()
			}
			Expect(statuses).To(Equal([]playback.Status{
				playback.StatusPaused,
				playback.StatusPlaying,
				playback.StatusPlaying,
				playback.StatusFinished,
			}))
			Expect(views[2].Index).To(Equal(1))
		})

		It("reports the paused view when closed during playback", func() {
			var views []playback.View
			player = playback.NewPlayer(
				playback.WithScheduler(sched),
				playback.OnChange(func(v playback.View) { views = append(views, v) }),
			)
			player.Load("run", sequence(3))
			player.Play()
			t := sched.Pending()[0]

			player.Close()
			Expect(t.stopped).To(BeTrue())
			Expect(views).NotTo(BeEmpty())
			last := views[len(views)-1]
			Expect(last.Status()).To(Equal(playback.StatusPaused))
			Expect(last.Index).To(BeZero())

			n := len(views)
			player.Close()
			Expect(views).To(HaveLen(n))
			Expect(sched.Pending()).To(BeEmpty())
		})

		It("may call back into the player", func() {
			player = playback.NewPlayer(
				playback.WithScheduler(sched),
				playback.OnChange(func(v playback.View) {
					if v.Index == 1 && v.Playing {
						go player.Pause()
					}
				}),
			)
			player.Load("run", sequence(4))
			player.Play()
			sched.FireNext()

			Eventually(player.Status).Should(Equal(playback.StatusPaused))
			Expect(player.View().Index).To(Equal(1))
		})
	})

	Context("on the wall clock", func() {
		It("plays a generated run to the end", func() {
			run, err := algorithms.NewRegistry().Generate(algorithms.IDBubbleSort, algorithms.Input{Values: []int{3, 1, 2}})
			Expect(err).NotTo(HaveOccurred())

			player = playback.NewPlayer(playback.WithInterval(2 * time.Millisecond))
			player.Load(run.ID, run.Steps)
			player.Play()

			Eventually(player.Status, time.Second, 5*time.Millisecond).Should(Equal(playback.StatusFinished))
			Expect(player.View().Index).To(Equal(len(run.Steps) - 1))
		})

		It("never advances after an immediate reset", func() {
			player = playback.NewPlayer(playback.WithInterval(10 * time.Millisecond))
			player.Load("run", sequence(5))
			player.Play()
			player.Reset()

			Consistently(func() int { return player.View().Index }, 80*time.Millisecond, 5*time.Millisecond).Should(Equal(0))
			Expect(player.View().Playing).To(BeFalse())
		})

		It("stops advancing once paused", func() {
			player = playback.NewPlayer(playback.WithInterval(5 * time.Millisecond))
			player.Load("run", sequence(1000))
			player.Play()

			Eventually(func() int { return player.View().Index }, time.Second, time.Millisecond).Should(BeNumerically(">=", 2))
			player.Pause()
			at := player.View().Index

			Consistently(func() int { return player.View().Index }, 50*time.Millisecond, 5*time.Millisecond).Should(Equal(at))
		})
	})
})
