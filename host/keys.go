//go:build cgo

package host

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/p5go/p5"
)

// asciiKeys maps ebiten keys to the ASCII code p5 sketches test with
// KeyIsDown. Letters report lower case.
var asciiKeys = []struct {
	key  ebiten.Key
	code byte
}{
	{ebiten.KeyA, 'a'}, {ebiten.KeyB, 'b'}, {ebiten.KeyC, 'c'}, {ebiten.KeyD, 'd'},
	{ebiten.KeyE, 'e'}, {ebiten.KeyF, 'f'}, {ebiten.KeyG, 'g'}, {ebiten.KeyH, 'h'},
	{ebiten.KeyI, 'i'}, {ebiten.KeyJ, 'j'}, {ebiten.KeyK, 'k'}, {ebiten.KeyL, 'l'},
	{ebiten.KeyM, 'm'}, {ebiten.KeyN, 'n'}, {ebiten.KeyO, 'o'}, {ebiten.KeyP, 'p'},
	{ebiten.KeyQ, 'q'}, {ebiten.KeyR, 'r'}, {ebiten.KeyS, 's'}, {ebiten.KeyT, 't'},
	{ebiten.KeyU, 'u'}, {ebiten.KeyV, 'v'}, {ebiten.KeyW, 'w'}, {ebiten.KeyX, 'x'},
	{ebiten.KeyY, 'y'}, {ebiten.KeyZ, 'z'},
	{ebiten.Key0, '0'}, {ebiten.Key1, '1'}, {ebiten.Key2, '2'}, {ebiten.Key3, '3'},
	{ebiten.Key4, '4'}, {ebiten.Key5, '5'}, {ebiten.Key6, '6'}, {ebiten.Key7, '7'},
	{ebiten.Key8, '8'}, {ebiten.Key9, '9'},
	{ebiten.KeySpace, ' '},
	{ebiten.KeyEnter, '\r'},
	{ebiten.KeyTab, '\t'},
	{ebiten.KeyBackspace, 0x08},
	{ebiten.KeyEscape, 0x1b},
}

var specialKeys = []struct {
	key  ebiten.Key
	code int
}{
	{ebiten.KeyArrowUp, p5.ArrowUp},
	{ebiten.KeyArrowDown, p5.ArrowDown},
	{ebiten.KeyArrowLeft, p5.ArrowLeft},
	{ebiten.KeyArrowRight, p5.ArrowRight},
}

// pollInput copies this tick's keyboard and mouse transitions into in.
// scale converts window pixels back to canvas pixels.
func pollInput(in *p5.Input, scale int) {
	for _, k := range asciiKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			in.SetKey(k.code, true)
		}
		if inpututil.IsKeyJustReleased(k.key) {
			in.SetKey(k.code, false)
		}
	}
	for _, k := range specialKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			in.SetSpecialKey(k.code, true)
		}
		if inpututil.IsKeyJustReleased(k.key) {
			in.SetSpecialKey(k.code, false)
		}
	}

	x, y := ebiten.CursorPosition()
	in.SetMouse(x/scale, y/scale)
	in.SetMousePressed(ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
}
