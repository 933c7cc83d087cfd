package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/SMerrony/tello"
	"github.com/sirupsen/logrus"

	"github.com/ChaturaW/TelloController/pkg/telemetry"
	"github.com/ChaturaW/TelloController/pkg/wsclient"
)

const (
	pressPrefix   = "D"
	releasePrefix = "U"
)

type messenger interface {
	SendMessage(message wsclient.Message)
	ReceiveMessage(ctx context.Context) wsclient.Message
}

type keyHandler interface {
	Press(key string) (info string, ok bool)
	Release(key string) (info string, ok bool)
	Status() string
}

type flightDataSource interface {
	Latest() (telemetry.Snapshot, bool)
}

type Controller struct {
	messenger messenger
	keys      keyHandler
	telemetry flightDataSource
	status    string
}

func New(messenger messenger, keys keyHandler, telemetry flightDataSource) *Controller {
	return &Controller{
		messenger: messenger,
		keys:      keys,
		telemetry: telemetry,
	}
}

func (h *Controller) Run(ctx context.Context) {
	logrus.Warnf("started drone controller")
	h.sendStatus()
	for {
		select {
		case <-ctx.Done():
			logrus.Warnf("stopped drone controller")
			return
		default:
			msg := h.messenger.ReceiveMessage(ctx)
			if msg.Type != wsclient.MTCmd {
				continue
			}
			h.handle(string(msg.Content))
		}
	}
}

func (h *Controller) handle(cmd string) {
	var (
		info string
		ok   bool
	)
	switch {
	case strings.HasPrefix(cmd, pressPrefix):
		key := strings.TrimPrefix(cmd, pressPrefix)
		logrus.Debugf("+%s", key)
		info, ok = h.keys.Press(key)
	case strings.HasPrefix(cmd, releasePrefix):
		key := strings.TrimPrefix(cmd, releasePrefix)
		logrus.Debugf("-%s", key)
		info, ok = h.keys.Release(key)
	default:
		logrus.Warnf("malformed key event %q", cmd)
		return
	}
	if !ok {
		return
	}

	// zero flight data until the first snapshot arrives
	snapshot, _ := h.telemetry.Latest()
	h.messenger.SendMessage(wsclient.Message{
		Type:    wsclient.MTLog,
		Content: []byte("Command " + info + flightInfo(snapshot.Data)),
	})
	h.sendStatus()
}

func (h *Controller) sendStatus() {
	status := h.keys.Status()
	if status == h.status {
		return
	}
	h.status = status
	h.messenger.SendMessage(wsclient.Message{
		Type:    wsclient.MTStatus,
		Content: []byte(status),
	})
}

func flightInfo(fd tello.FlightData) string {
	info := fmt.Sprintf(" BatPrc: %d; LgtStr: %d", fd.BatteryPercentage, fd.LightStrength)
	if fd.BatteryLow {
		info += " BatteryLow"
	}
	if fd.BatteryCritical {
		info += " BatteryCritical"
	}
	if fd.DownVisualState {
		info += " DownVisualState"
	}
	if fd.ErrorState {
		info += " ErrorState"
	}
	return info
}
