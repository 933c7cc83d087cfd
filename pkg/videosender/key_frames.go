package videosender

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

type spsPpsRequester interface {
	GetVideoSpsPps()
}

// KeyFrameRequester keeps asking the drone for SPS/PPS so a decoder that
// joins mid-stream can start decoding.
type KeyFrameRequester struct {
	drone  spsPpsRequester
	period time.Duration
}

func NewKeyFrameRequester(drone spsPpsRequester, period time.Duration) *KeyFrameRequester {
	return &KeyFrameRequester{
		drone:  drone,
		period: period,
	}
}

func (r *KeyFrameRequester) Run(ctx context.Context) {
	logrus.Warnf("started key frame requester")
	ticker := time.NewTicker(r.period)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			logrus.Warnf("stopped key frame requester")
			return
		case <-ticker.C:
			r.drone.GetVideoSpsPps()
		}
	}
}
