package p5

// Special key codes, shared with the Windows virtual-key numbering.
const (
	ArrowLeft  = 0x25
	ArrowUp    = 0x26
	ArrowRight = 0x27
	ArrowDown  = 0x28
)

// Input is a snapshot of keyboard and mouse state. A host collaborator
// keeps it current through the Set methods; sketches only read it.
type Input struct {
	keys        [256]bool
	specialKeys [256]bool

	mouseX, mouseY int
	mousePressed   bool

	key        byte
	keyPressed bool
}

// NewInput returns an input snapshot with nothing pressed.
func NewInput() *Input {
	return &Input{}
}

func isSpecialKey(k int) bool {
	return k == ArrowUp || k == ArrowDown || k == ArrowLeft || k == ArrowRight
}

// KeyIsDown reports whether k is held. Arrow key constants are looked up
// in the special-key table; anything else is treated as an ASCII byte.
func (in *Input) KeyIsDown(k int) bool {
	if isSpecialKey(k) {
		return in.specialKeys[k]
	}
	return in.keys[byte(k)]
}

// SetKey records an ASCII key transition. A press also becomes the
// most recent Key.
func (in *Input) SetKey(k byte, down bool) {
	in.keys[k] = down
	in.keyPressed = down
	if down {
		in.key = k
	}
}

// SetSpecialKey records a transition of a non-ASCII key such as ArrowUp.
// Codes outside the special-key set are ignored.
func (in *Input) SetSpecialKey(k int, down bool) {
	if !isSpecialKey(k) {
		return
	}
	in.specialKeys[k] = down
	in.keyPressed = down
}

// SetMouse records the cursor position in canvas coordinates.
func (in *Input) SetMouse(x, y int) {
	in.mouseX, in.mouseY = x, y
}

// SetMousePressed records the primary button state.
func (in *Input) SetMousePressed(down bool) {
	in.mousePressed = down
}

// MouseX returns the cursor x coordinate.
func (in *Input) MouseX() int { return in.mouseX }

// MouseY returns the cursor y coordinate.
func (in *Input) MouseY() int { return in.mouseY }

// MousePressed reports whether the primary button is held.
func (in *Input) MousePressed() bool { return in.mousePressed }

// Key returns the most recently pressed ASCII key.
func (in *Input) Key() byte { return in.key }

// KeyPressed reports whether the last key transition was a press.
func (in *Input) KeyPressed() bool { return in.keyPressed }
