// Copyright 2026 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

// A Signal is the tri-state value carried by a wire: High, Low, or
// Floating when no driver asserts a value. Floating is distinct from
// Low and is the zero value.
type Signal uint8

// Signal values.
const (
	Floating Signal = iota
	Low
	High
)

// Bool converts a Go bool to a driven Signal.
func Bool(b bool) Signal {
	if b {
		return High
	}
	return Low
}

// Bool returns true if s is High.
func (s Signal) Bool() bool { return s == High }

// Driven returns true if some driver asserted a value.
func (s Signal) Driven() bool { return s != Floating }

// Invert returns the complement of s. Floating stays Floating.
func (s Signal) Invert() Signal {
	switch s {
	case High:
		return Low
	case Low:
		return High
	}
	return Floating
}

func (s Signal) String() string {
	switch s {
	case High:
		return "high"
	case Low:
		return "low"
	}
	return "floating"
}
