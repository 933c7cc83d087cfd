package hud

import (
	"fmt"
	"image"
	"image/color"

	"github.com/SMerrony/tello"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ChaturaW/TelloController/pkg/keymap"
)

// textScale enlarges the 7x13 bitmap face to stay readable over video.
const textScale = 2

var white = color.RGBA{R: 255, G: 255, B: 255, A: 255}

type ValueFunc func(mode keymap.CameraMode, fd tello.FlightData) interface{}

// Element is a single HUD line. It keeps the last value and its rendered
// surface, and renders again only when the value changes.
type Element struct {
	Format string
	Colour color.Color
	Update ValueFunc

	value   interface{}
	surface *image.RGBA
}

func NewElement(format string, update ValueFunc) *Element {
	return &Element{
		Format: format,
		Colour: white,
		Update: update,
	}
}

func (e *Element) Render(mode keymap.CameraMode, fd tello.FlightData) *image.RGBA {
	v := e.Update(mode, fd)
	if e.surface == nil || v != e.value {
		e.value = v
		e.surface = renderText(fmt.Sprintf(e.Format, v), e.Colour)
	}
	return e.surface
}

func DefaultElements() []*Element {
	return []*Element{
		NewElement("ALT %3d", func(_ keymap.CameraMode, fd tello.FlightData) interface{} { return fd.Height }),
		NewElement("SPD %3d", func(_ keymap.CameraMode, fd tello.FlightData) interface{} { return fd.GroundSpeed }),
		NewElement("BAT %3d%%", func(_ keymap.CameraMode, fd tello.FlightData) interface{} { return fd.BatteryPercentage }),
		NewElement("NET %3d%%", func(_ keymap.CameraMode, fd tello.FlightData) interface{} { return fd.WifiStrength }),
		NewElement("CAM %s", func(mode keymap.CameraMode, _ tello.FlightData) interface{} { return mode.String() }),
	}
}

func renderText(text string, colour color.Color) *image.RGBA {
	face := basicfont.Face7x13
	width := font.MeasureString(face, text).Ceil()
	height := face.Metrics().Height.Ceil()

	small := image.NewRGBA(image.Rect(0, 0, width, height))
	d := font.Drawer{
		Dst:  small,
		Src:  image.NewUniform(colour),
		Face: face,
		Dot:  fixed.P(0, face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)

	surface := image.NewRGBA(image.Rect(0, 0, width*textScale, height*textScale))
	draw.NearestNeighbor.Scale(surface, surface.Bounds(), small, small.Bounds(), draw.Src, nil)
	return surface
}
