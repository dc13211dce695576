// Copyright 2026 The p5 Authors
// SPDX-License-Identifier: MIT

// Package sketches holds the demo sketches shipped with p5sketch.
package sketches

import (
	"slices"

	"github.com/p5go/p5"
)

var registry = map[string]func() p5.Sketch{
	"arcs":      func() p5.Sketch { return &Arcs{} },
	"input":     func() p5.Sketch { return &InputTest{} },
	"pattern":   func() p5.Sketch { return &Pattern{} },
	"rain":      func() p5.Sketch { return &Rain{} },
	"starfield": func() p5.Sketch { return &Starfield{} },
	"terrain":   func() p5.Sketch { return &Terrain{} },
	"translate": func() p5.Sketch { return &TranslateTest{} },
	"walker":    func() p5.Sketch { return &Walker{} },
}

// Lookup returns a fresh instance of the named sketch.
func Lookup(name string) (p5.Sketch, bool) {
	newSketch, ok := registry[name]
	if !ok {
		return nil, false
	}
	return newSketch(), true
}

// Names returns the registered sketch names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
