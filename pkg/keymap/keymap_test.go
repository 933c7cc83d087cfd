package keymap

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/ChaturaW/TelloController/pkg/tellointer/mock_tellointer"
)

var presets = map[string]int{"j": 30, "k": 60, "l": 120}

type KeymapSuite struct {
	suite.Suite
	ctrl  *gomock.Controller
	drone *mock_tellointer.MockDrone
	quits int
	km    *Keymap
}

func TestKeymapSuite(t *testing.T) {
	suite.Run(t, new(KeymapSuite))
}

func (s *KeymapSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.drone = mock_tellointer.NewMockDrone(s.ctrl)
	s.quits = 0
	s.km = New(s.drone, 60, presets, CameraVideo, func() { s.quits++ })
}

func (s *KeymapSuite) TestMotionPressAndRelease() {
	gomock.InOrder(
		s.drone.EXPECT().Up(60),
		s.drone.EXPECT().Up(0),
		s.drone.EXPECT().Down(60),
		s.drone.EXPECT().Down(0),
		s.drone.EXPECT().TurnLeft(60),
		s.drone.EXPECT().TurnLeft(0),
		s.drone.EXPECT().TurnRight(60),
		s.drone.EXPECT().TurnRight(0),
		s.drone.EXPECT().Forward(60),
		s.drone.EXPECT().Forward(0),
		s.drone.EXPECT().Backward(60),
		s.drone.EXPECT().Backward(0),
		s.drone.EXPECT().Left(60),
		s.drone.EXPECT().Left(0),
		s.drone.EXPECT().Right(60),
		s.drone.EXPECT().Right(0),
	)
	for _, key := range []string{"w", "s", "a", "d", "up", "down", "left", "right"} {
		_, ok := s.km.Press(key)
		s.True(ok, key)
		_, ok = s.km.Release(key)
		s.True(ok, key)
	}
}

func (s *KeymapSuite) TestSlowAliases() {
	gomock.InOrder(
		s.drone.EXPECT().Up(60),
		s.drone.EXPECT().Down(60),
		s.drone.EXPECT().Down(60),
		s.drone.EXPECT().TurnLeft(60),
		s.drone.EXPECT().TurnRight(60),
	)
	for _, key := range []string{"space", "left shift", "right shift", "q", "e"} {
		_, ok := s.km.Press(key)
		s.True(ok, key)
	}
}

func (s *KeymapSuite) TestOneShotIgnoresRelease() {
	gomock.InOrder(
		s.drone.EXPECT().TakeOff().Times(1),
		s.drone.EXPECT().Land().Times(1),
		s.drone.EXPECT().PalmLand().Times(1),
	)
	for _, key := range []string{"tab", "backspace", "p"} {
		_, ok := s.km.Press(key)
		s.True(ok)
		_, ok = s.km.Release(key)
		s.False(ok)
	}
}

func (s *KeymapSuite) TestInfo() {
	s.drone.EXPECT().Forward(60)
	s.drone.EXPECT().Forward(0)
	s.drone.EXPECT().TakeOff()

	info, _ := s.km.Press("up")
	s.Equal("Started Going Forward", info)
	info, _ = s.km.Release("up")
	s.Equal("Stopped Going Forward", info)
	info, _ = s.km.Press("tab")
	s.Equal("Started Take Off", info)
}

func (s *KeymapSuite) TestSpeedPresets() {
	s.drone.EXPECT().Forward(30)
	s.drone.EXPECT().Forward(100)

	info, ok := s.km.Press("j")
	s.True(ok)
	s.Equal("Speed 30", info)
	s.Equal(30, s.km.Speed())
	s.km.Press("up")

	s.km.Press("l")
	s.Equal(120, s.km.Speed())
	s.km.Press("up")

	s.km.Press("k")
	s.Equal(60, s.km.Speed())
}

func (s *KeymapSuite) TestSpeedKeysIgnoreRelease() {
	_, ok := s.km.Release("j")
	s.False(ok)
	s.Equal(60, s.km.Speed())
}

func (s *KeymapSuite) TestCameraToggle() {
	gomock.InOrder(
		s.drone.EXPECT().SetVideoNormal(),
		s.drone.EXPECT().SetVideoWide(),
	)
	s.Equal(CameraVideo, s.km.CameraMode())

	info, ok := s.km.Press(KeyCamera)
	s.True(ok)
	s.Equal("Camera PIC", info)
	s.Equal(CameraPicture, s.km.CameraMode())

	s.km.Press(KeyCamera)
	s.Equal(CameraVideo, s.km.CameraMode())

	// two toggles coalesce into one pending signal
	select {
	case <-s.km.ModeChanges():
	default:
		s.Fail("no mode change signalled")
	}
	select {
	case <-s.km.ModeChanges():
		s.Fail("mode change signals did not coalesce")
	default:
	}
}

func (s *KeymapSuite) TestHalt() {
	s.drone.EXPECT().Hover()
	s.km.Halt()
}

func (s *KeymapSuite) TestExit() {
	_, ok := s.km.Press(KeyExit)
	s.True(ok)
	s.Equal(1, s.quits)
}

func (s *KeymapSuite) TestUnboundKeys() {
	_, ok := s.km.Press("z")
	s.False(ok)
	_, ok = s.km.Release("z")
	s.False(ok)
}

func (s *KeymapSuite) TestStatus() {
	s.Equal("Tello | speed 60 | VID", s.km.Status())
	s.km.Press("j")
	s.Equal("Tello | speed 30 | VID", s.km.Status())
}
