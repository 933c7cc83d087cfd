package tellointer

import (
	"time"

	"github.com/SMerrony/tello"
)

//go:generate mockgen -destination=mock_tellointer/drone_mock.go -package=mock_tellointer . Drone

type Drone interface {
	ControlConnectDefault() (err error)
	ControlDisconnect()

	VideoConnectDefault() (<-chan []byte, error)
	VideoDisconnect()
	SetVideoWide()
	SetVideoNormal()
	GetVideoSpsPps()

	StreamFlightData(asAvailable bool, periodMs time.Duration) (<-chan tello.FlightData, error)

	SetSportsMode(sports bool)

	TakeOff()
	Land()
	PalmLand()
	Hover()
	Forward(pct int)
	Backward(pct int)
	Left(pct int)
	Right(pct int)
	Up(pct int)
	Down(pct int)
	TurnRight(pct int)
	TurnLeft(pct int)
}

var _ Drone = (*tello.Tello)(nil)
