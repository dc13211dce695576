package p5

// MaxStackDepth is the number of transforms Push can save before it
// starts reporting ErrStackOverflow.
const MaxStackDepth = 32

// matrixStack is a fixed-capacity LIFO of saved transforms.
// depth is always within [0, MaxStackDepth].
type matrixStack struct {
	items [MaxStackDepth]Matrix
	depth int
}

func (s *matrixStack) push(m Matrix) error {
	if s.depth >= MaxStackDepth {
		return ErrStackOverflow
	}
	s.items[s.depth] = m
	s.depth++
	return nil
}

func (s *matrixStack) pop() (Matrix, error) {
	if s.depth <= 0 {
		return Matrix{}, ErrStackUnderflow
	}
	s.depth--
	return s.items[s.depth], nil
}

func (s *matrixStack) len() int { return s.depth }
