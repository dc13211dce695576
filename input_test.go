package p5

import "testing"

func TestInputKeys(t *testing.T) {
	in := NewInput()
	if in.KeyIsDown('a') || in.KeyPressed() {
		t.Fatalf("fresh input reports keys held")
	}

	in.SetKey('a', true)
	if !in.KeyIsDown('a') || in.Key() != 'a' || !in.KeyPressed() {
		t.Errorf("after press: down=%v key=%q pressed=%v", in.KeyIsDown('a'), in.Key(), in.KeyPressed())
	}

	in.SetKey('b', true)
	in.SetKey('b', false)
	if in.KeyIsDown('b') || !in.KeyIsDown('a') {
		t.Errorf("release of 'b' affected the wrong key")
	}
	if in.Key() != 'b' || in.KeyPressed() {
		t.Errorf("after release: key=%q pressed=%v, want 'b' and false", in.Key(), in.KeyPressed())
	}
}

func TestInputArrowsUseSpecialTable(t *testing.T) {
	tests := []struct {
		name  string
		arrow int
		ascii byte
	}{
		{"left", ArrowLeft, '%'},
		{"up", ArrowUp, '&'},
		{"right", ArrowRight, '\''},
		{"down", ArrowDown, '('},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := NewInput()
			in.SetKey(tt.ascii, true)
			if in.KeyIsDown(tt.arrow) {
				t.Errorf("ASCII %q reported as the arrow key", tt.ascii)
			}
			in.SetSpecialKey(tt.arrow, true)
			if !in.KeyIsDown(tt.arrow) {
				t.Errorf("arrow not reported after SetSpecialKey")
			}
			in.SetSpecialKey(tt.arrow, false)
			if in.KeyIsDown(tt.arrow) {
				t.Errorf("arrow still down after release")
			}
		})
	}
}

func TestInputIgnoresUnknownSpecialKeys(t *testing.T) {
	in := NewInput()
	in.SetSpecialKey(0x70, true)
	if in.KeyIsDown(0x70) || in.KeyPressed() {
		t.Errorf("unknown special key was recorded")
	}
}

func TestInputMouse(t *testing.T) {
	in := NewInput()
	in.SetMouse(-4, 17)
	in.SetMousePressed(true)
	if in.MouseX() != -4 || in.MouseY() != 17 || !in.MousePressed() {
		t.Errorf("mouse = (%d, %d, %v)", in.MouseX(), in.MouseY(), in.MousePressed())
	}
	in.SetMousePressed(false)
	if in.MousePressed() {
		t.Errorf("MousePressed() after release = true")
	}
}
