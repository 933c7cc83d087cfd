package controller

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/SMerrony/tello"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/ChaturaW/TelloController/pkg/keymap"
	"github.com/ChaturaW/TelloController/pkg/telemetry"
	"github.com/ChaturaW/TelloController/pkg/tellointer/mock_tellointer"
	"github.com/ChaturaW/TelloController/pkg/wsclient"
)

type fakeMessenger struct {
	incoming chan wsclient.Message

	mux  sync.Mutex
	sent []wsclient.Message
}

func (m *fakeMessenger) SendMessage(message wsclient.Message) {
	m.mux.Lock()
	defer m.mux.Unlock()
	m.sent = append(m.sent, message)
}

func (m *fakeMessenger) ReceiveMessage(ctx context.Context) wsclient.Message {
	select {
	case <-ctx.Done():
		return wsclient.Message{}
	case msg := <-m.incoming:
		return msg
	}
}

func (m *fakeMessenger) sentOf(t wsclient.MessageType) []string {
	m.mux.Lock()
	defer m.mux.Unlock()
	var out []string
	for _, msg := range m.sent {
		if msg.Type == t {
			out = append(out, string(msg.Content))
		}
	}
	return out
}

type fixedTelemetry struct {
	snapshot *telemetry.Snapshot
}

func (f *fixedTelemetry) Latest() (telemetry.Snapshot, bool) {
	if f.snapshot == nil {
		return telemetry.Snapshot{}, false
	}
	return *f.snapshot, true
}

type ControllerSuite struct {
	suite.Suite
	drone     *mock_tellointer.MockDrone
	messenger *fakeMessenger
	telemetry *fixedTelemetry
	quit      chan struct{}
	ctrl      *Controller
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.drone = mock_tellointer.NewMockDrone(gomock.NewController(s.T()))
	s.messenger = &fakeMessenger{incoming: make(chan wsclient.Message)}
	s.quit = make(chan struct{}, 1)
	keys := keymap.New(s.drone, 60, map[string]int{"j": 30}, keymap.CameraVideo, func() { s.quit <- struct{}{} })
	s.telemetry = &fixedTelemetry{}
	s.ctrl = New(s.messenger, keys, s.telemetry)
}

func (s *ControllerSuite) TestHandleLogsCommand() {
	s.drone.EXPECT().Up(60).Times(2)

	s.ctrl.handle("Dw")
	snapshot := telemetry.NewSnapshot(tello.FlightData{
		BatteryPercentage: 42,
		LightStrength:     1,
		BatteryLow:        true,
	})
	s.telemetry.snapshot = &snapshot
	s.ctrl.handle("Dw")

	s.Equal([]string{
		"Command Started Going Up BatPrc: 0; LgtStr: 0",
		"Command Started Going Up BatPrc: 42; LgtStr: 1 BatteryLow",
	}, s.messenger.sentOf(wsclient.MTLog))
}

func (s *ControllerSuite) TestIgnoresUnboundAndMalformed() {
	s.ctrl.handle("Dz")
	s.ctrl.handle("Uj")
	s.ctrl.handle("Xw")
	s.ctrl.handle("")
	s.Empty(s.messenger.sentOf(wsclient.MTLog))
}

func (s *ControllerSuite) TestStatusOnlyOnChange() {
	s.drone.EXPECT().Up(30)
	s.drone.EXPECT().Up(0)

	s.ctrl.sendStatus()
	s.ctrl.handle("Dj")
	s.ctrl.handle("Dw")
	s.ctrl.handle("Uw")
	s.Equal([]string{"Tello | speed 60 | VID", "Tello | speed 30 | VID"}, s.messenger.sentOf(wsclient.MTStatus))
}

func (s *ControllerSuite) TestRun() {
	gomock.InOrder(
		s.drone.EXPECT().TakeOff(),
		s.drone.EXPECT().Left(60),
		s.drone.EXPECT().Left(0),
		s.drone.EXPECT().Land(),
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.ctrl.Run(ctx)
		close(done)
	}()

	for _, cmd := range []string{"Dtab", "Dleft", "Uleft", "Dbackspace", "Ubackspace"} {
		s.messenger.incoming <- wsclient.Message{Type: wsclient.MTCmd, Content: []byte(cmd)}
	}
	s.messenger.incoming <- wsclient.Message{Type: wsclient.MTLog, Content: []byte("Dtab")}
	s.messenger.incoming <- wsclient.Message{Type: wsclient.MTCmd, Content: []byte("Db")}

	select {
	case <-s.quit:
	case <-time.After(time.Second):
		s.FailNow("exit key did not quit")
	}
	cancel()
	<-done
	s.Len(s.messenger.sentOf(wsclient.MTLog), 5)
}
