package telemetry

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/SMerrony/tello"
	"github.com/sirupsen/logrus"
)

// Snapshot is a flight data sample together with its string form, which is
// what change detection compares.
type Snapshot struct {
	Data tello.FlightData
	Text string
}

func NewSnapshot(fd tello.FlightData) Snapshot {
	return Snapshot{Data: fd, Text: fmt.Sprintf("%+v", fd)}
}

// Hub fans the drone's flight data stream out to subscribers. A subscriber
// only sees a snapshot when it differs from the previous one.
type Hub struct {
	flightData <-chan tello.FlightData
	latest     atomic.Pointer[Snapshot]

	mux         sync.Mutex
	subscribers []chan Snapshot
}

func NewHub(flightData <-chan tello.FlightData) *Hub {
	return &Hub{
		flightData: flightData,
	}
}

// Subscribe returns a channel receiving changed snapshots. Slow subscribers
// miss intermediate snapshots instead of blocking the hub.
func (h *Hub) Subscribe() <-chan Snapshot {
	h.mux.Lock()
	defer h.mux.Unlock()

	ch := make(chan Snapshot, 1)
	h.subscribers = append(h.subscribers, ch)
	return ch
}

// Latest returns the last received snapshot, false before the first one.
func (h *Hub) Latest() (Snapshot, bool) {
	s := h.latest.Load()
	if s == nil {
		return Snapshot{}, false
	}
	return *s, true
}

func (h *Hub) Run(ctx context.Context) {
	logrus.Warnf("started telemetry hub")
	for {
		select {
		case fd, ok := <-h.flightData:
			if !ok {
				logrus.Warnf("flight data stream closed")
				return
			}
			h.publish(NewSnapshot(fd))
		case <-ctx.Done():
			logrus.Warnf("stopped telemetry hub")
			return
		}
	}
}

func (h *Hub) publish(s Snapshot) {
	if prev := h.latest.Load(); prev != nil && prev.Text == s.Text {
		return
	}
	h.latest.Store(&s)

	h.mux.Lock()
	defer h.mux.Unlock()
	for _, ch := range h.subscribers {
		select {
		case ch <- s:
		default:
			// replace the stale snapshot so the subscriber catches up on the newest one
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- s:
			default:
			}
		}
	}
}
