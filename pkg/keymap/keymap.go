package keymap

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/ChaturaW/TelloController/pkg/tellointer"
)

type CameraMode int

const (
	CameraPicture CameraMode = iota // 4:3 normal
	CameraVideo                     // 16:9 wide
)

func (m CameraMode) String() string {
	if m == CameraVideo {
		return "VID"
	}
	return "PIC"
}

const (
	KeyExit   = "b"
	KeyCamera = "v"

	maxPct = 100
)

type control struct {
	name    string
	press   func(d tellointer.Drone, pct int)
	release func(d tellointer.Drone)
}

// motion keys drive an axis at the current speed while held and stop it on release.
func motion(name string, axis func(tellointer.Drone, int)) control {
	return control{
		name:    name,
		press:   func(d tellointer.Drone, pct int) { axis(d, pct) },
		release: func(d tellointer.Drone) { axis(d, 0) },
	}
}

// oneShot keys fire once on press and ignore the release.
func oneShot(name string, cmd func(tellointer.Drone)) control {
	return control{
		name:  name,
		press: func(d tellointer.Drone, _ int) { cmd(d) },
	}
}

var controls = map[string]control{
	"w":           motion("Going Up", tellointer.Drone.Up),
	"s":           motion("Going Down", tellointer.Drone.Down),
	"a":           motion("Turning Left", tellointer.Drone.TurnLeft),
	"d":           motion("Turning Right", tellointer.Drone.TurnRight),
	"space":       motion("Going Up", tellointer.Drone.Up),
	"left shift":  motion("Going Down", tellointer.Drone.Down),
	"right shift": motion("Going Down", tellointer.Drone.Down),
	"q":           motion("Turning Left", tellointer.Drone.TurnLeft),
	"e":           motion("Turning Right", tellointer.Drone.TurnRight),
	"left":        motion("Going Left", tellointer.Drone.Left),
	"right":       motion("Going Right", tellointer.Drone.Right),
	"up":          motion("Going Forward", tellointer.Drone.Forward),
	"down":        motion("Going Backward", tellointer.Drone.Backward),
	"tab":         oneShot("Take Off", tellointer.Drone.TakeOff),
	"backspace":   oneShot("Land", tellointer.Drone.Land),
	"p":           oneShot("Palm Land", tellointer.Drone.PalmLand),
}

// Keymap translates surface key names into drone commands. It also owns the
// operator's speed selection and camera mode.
type Keymap struct {
	drone   tellointer.Drone
	presets map[string]int
	quit    func()

	mux   sync.RWMutex
	speed int
	mode  CameraMode

	modeChanges chan struct{}
}

func New(drone tellointer.Drone, speed int, presets map[string]int, mode CameraMode, quit func()) *Keymap {
	return &Keymap{
		drone:   drone,
		presets: presets,
		quit:    quit,
		speed:   speed,
		mode:    mode,

		modeChanges: make(chan struct{}, 1),
	}
}

// Press handles a key going down. The returned info describes what was done;
// ok is false for keys that are not bound.
func (k *Keymap) Press(key string) (info string, ok bool) {
	if speed, ok := k.presets[key]; ok {
		k.mux.Lock()
		k.speed = speed
		k.mux.Unlock()
		logrus.Infof("speed - %d", speed)
		return fmt.Sprintf("Speed %d", speed), true
	}
	switch key {
	case KeyExit:
		logrus.Warnf("exit requested")
		if k.quit != nil {
			k.quit()
		}
		return "Exit", true
	case KeyCamera:
		return "Camera " + k.toggleCamera().String(), true
	}
	c, ok := controls[key]
	if !ok {
		logrus.Debugf("unbound key pressed: %q", key)
		return "", false
	}
	c.press(k.drone, k.pct())
	return "Started " + c.name, true
}

// Release handles a key going up. Only motion keys act on release.
func (k *Keymap) Release(key string) (info string, ok bool) {
	c, ok := controls[key]
	if !ok || c.release == nil {
		return "", false
	}
	c.release(k.drone)
	return "Stopped " + c.name, true
}

// Halt stops every axis, for when key releases can no longer arrive.
func (k *Keymap) Halt() {
	logrus.Warnf("halting drone")
	k.drone.Hover()
}

func (k *Keymap) Speed() int {
	k.mux.RLock()
	defer k.mux.RUnlock()
	return k.speed
}

func (k *Keymap) CameraMode() CameraMode {
	k.mux.RLock()
	defer k.mux.RUnlock()
	return k.mode
}

// ModeChanges signals camera mode toggles. Signals coalesce.
func (k *Keymap) ModeChanges() <-chan struct{} {
	return k.modeChanges
}

func (k *Keymap) Status() string {
	k.mux.RLock()
	defer k.mux.RUnlock()
	return fmt.Sprintf("Tello | speed %d | %s", k.speed, k.mode)
}

func (k *Keymap) pct() int {
	speed := k.Speed()
	if speed > maxPct {
		return maxPct
	}
	return speed
}

func (k *Keymap) toggleCamera() CameraMode {
	k.mux.Lock()
	defer k.mux.Unlock()
	if k.mode == CameraVideo {
		k.mode = CameraPicture
		k.drone.SetVideoNormal()
	} else {
		k.mode = CameraVideo
		k.drone.SetVideoWide()
	}
	select {
	case k.modeChanges <- struct{}{}:
	default:
	}
	return k.mode
}
