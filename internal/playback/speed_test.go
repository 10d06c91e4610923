package playback_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/algoviz/internal/playback"
)

var _ = Describe("Speed", func() {
	DescribeTable("tier intervals",
		func(s playback.Speed, want time.Duration) {
			Expect(s.Interval()).To(Equal(want))
			Expect(playback.SpeedOf(want)).To(Equal(s))
		},
		Entry("slow", playback.SpeedSlow, 2000*time.Millisecond),
		Entry("normal", playback.SpeedNormal, 1000*time.Millisecond),
		Entry("fast", playback.SpeedFast, 500*time.Millisecond),
	)

	It("parses known tiers and rejects others", func() {
		s, err := playback.ParseSpeed("fast")
		Expect(err).NotTo(HaveOccurred())
		Expect(s).To(Equal(playback.SpeedFast))

		_, err = playback.ParseSpeed("ludicrous")
		Expect(err).To(MatchError(playback.ErrUnknownSpeed))
	})

	It("labels off-tier intervals as normal", func() {
		Expect(playback.SpeedOf(750 * time.Millisecond)).To(Equal(playback.SpeedNormal))
		Expect(playback.Speed("warp").Interval()).To(Equal(time.Second))
	})

	It("starts players at normal speed", func() {
		Expect(playback.NewPlayer().View().Interval).To(Equal(playback.DefaultInterval))
		Expect(playback.NewPlayer(playback.WithSpeed(playback.SpeedSlow)).View().Speed()).To(Equal(playback.SpeedSlow))
	})
})
