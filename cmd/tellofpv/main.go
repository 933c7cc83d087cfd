package main

import (
	"os"

	"github.com/SMerrony/tello"
	"github.com/einherij/enterprise"
	"github.com/einherij/enterprise/utils"
	"github.com/sirupsen/logrus"

	"github.com/ChaturaW/TelloController/pkg/config"
	"github.com/ChaturaW/TelloController/pkg/controller"
	"github.com/ChaturaW/TelloController/pkg/hud"
	"github.com/ChaturaW/TelloController/pkg/keymap"
	"github.com/ChaturaW/TelloController/pkg/telemetry"
	"github.com/ChaturaW/TelloController/pkg/videosender"
	"github.com/ChaturaW/TelloController/pkg/wsclient"
)

const windowTitle = "Tello-FPV"

func main() {
	cfg := utils.Must(config.Load(os.Getenv("TELLO_CONFIG")))
	logrus.SetLevel(cfg.Level())
	logrus.WithField("session", cfg.SessionID).Warnf("starting tello controller")

	app := enterprise.NewApplication()

	// surface: key events in, hud and status out
	wsClient := wsclient.New(cfg.HandlerHostURL, cfg.SessionID)
	app.RegisterRunner(wsClient)

	d := new(tello.Tello)

	utils.PanicOnError(d.ControlConnectDefault())
	app.RegisterOnShutdown(func() {
		d.ControlDisconnect()
		logrus.Warnf("control disconnected")
	})

	// Video
	videoStream := utils.Must(d.VideoConnectDefault())
	app.RegisterOnShutdown(func() {
		d.VideoDisconnect()
		logrus.Warnf("video disconnected")
	})
	d.SetVideoWide()
	d.SetSportsMode(cfg.SportsMode)

	app.RegisterRunner(videosender.NewKeyFrameRequester(d, cfg.KeyFramePeriod()))

	command, target := videosender.StreamPipe, cfg.HandlerHostURL
	switch cfg.Video.Mode {
	case config.VideoModePlay:
		command, target = videosender.PlayerPipe, windowTitle
	case config.VideoModeCamera:
		command = videosender.StreamCamera
	}
	app.RegisterRunner(videosender.New(target, videoStream, command, cfg.Video.Debug))

	// FlightData
	fdStream := utils.Must(d.StreamFlightData(false, cfg.TelemetryPeriod()))
	hub := telemetry.NewHub(fdStream)

	keys := keymap.New(d, cfg.Speed, cfg.SpeedPresets, keymap.CameraVideo, quit)
	// releases of held keys are lost with the surface
	wsClient.OnDisconnect(keys.Halt)

	display := hud.NewDisplay(hud.DefaultElements(), hub.Subscribe(), keys, wsClient)
	app.RegisterRunner(hub)
	app.RegisterRunner(display)

	cmdHandler := controller.New(wsClient, keys, hub)
	app.RegisterRunner(cmdHandler)

	app.Run()
}

// quit interrupts the application so the shutdown hooks disconnect the drone.
func quit() {
	p, err := os.FindProcess(os.Getpid())
	if err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
	if err := p.Signal(os.Interrupt); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
