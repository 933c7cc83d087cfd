package hud

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/SMerrony/tello"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/draw"

	"github.com/ChaturaW/TelloController/pkg/keymap"
	"github.com/ChaturaW/TelloController/pkg/telemetry"
	"github.com/ChaturaW/TelloController/pkg/wsclient"
)

const (
	OverlayWidth = 158 // side band left free by 4:3 video on a 16:9 screen
	OverlayX     = 20
	OverlayY     = 20

	lineSpacing   = 20
	bottomPadding = 64
)

var background = color.RGBA{R: 21, G: 27, B: 31, A: 255}

type Overlay struct {
	X   int    `json:"x"`
	Y   int    `json:"y"`
	PNG []byte `json:"png"`
}

type sender interface {
	SendMessage(message wsclient.Message)
}

type modeSource interface {
	CameraMode() keymap.CameraMode
	ModeChanges() <-chan struct{}
}

type Display struct {
	elements  []*Element
	snapshots <-chan telemetry.Snapshot
	mode      modeSource
	sender    sender
}

func NewDisplay(elements []*Element, snapshots <-chan telemetry.Snapshot, mode modeSource, sender sender) *Display {
	return &Display{
		elements:  elements,
		snapshots: snapshots,
		mode:      mode,
		sender:    sender,
	}
}

func (d *Display) Run(ctx context.Context) {
	logrus.Warnf("started hud display")
	var last tello.FlightData
	for {
		select {
		case snap := <-d.snapshots:
			last = snap.Data
			d.send(last)
		case <-d.mode.ModeChanges():
			// flight data may sit unchanged for long, redraw with the last one
			d.send(last)
		case <-ctx.Done():
			logrus.Warnf("stopped hud display")
			return
		}
	}
}

func (d *Display) send(fd tello.FlightData) {
	content, err := d.Update(fd)
	if err != nil {
		logrus.Error(fmt.Errorf("error updating hud: %w", err))
		return
	}
	d.sender.SendMessage(wsclient.Message{
		Type:    wsclient.MTHud,
		Content: content,
	})
}

func (d *Display) Update(fd tello.FlightData) ([]byte, error) {
	overlay := Compose(d.elements, d.mode.CameraMode(), fd)

	var buf bytes.Buffer
	if err := png.Encode(&buf, overlay); err != nil {
		return nil, fmt.Errorf("error encoding overlay: %w", err)
	}
	content, err := json.Marshal(Overlay{X: OverlayX, Y: OverlayY, PNG: buf.Bytes()})
	if err != nil {
		return nil, fmt.Errorf("error marshaling overlay: %w", err)
	}
	return content, nil
}

// Compose stacks the element surfaces top to bottom on a filled overlay.
func Compose(elements []*Element, mode keymap.CameraMode, fd tello.FlightData) *image.RGBA {
	type blit struct {
		surface *image.RGBA
		at      image.Point
	}
	var (
		blits []blit
		h     int
	)
	for _, element := range elements {
		surface := element.Render(mode, fd)
		if surface == nil {
			continue
		}
		blits = append(blits, blit{surface: surface, at: image.Pt(0, h)})
		h += surface.Bounds().Dy() + lineSpacing
	}
	h += bottomPadding

	overlay := image.NewRGBA(image.Rect(0, 0, OverlayWidth, h))
	draw.Draw(overlay, overlay.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	for _, b := range blits {
		draw.Draw(overlay, b.surface.Bounds().Add(b.at), b.surface, image.Point{}, draw.Over)
	}
	return overlay
}
