// Copyright 2026 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logiclib

import (
	"github.com/db47h/logicsim"
)

// Input adapts a plain bool callback into a signal source.
func Input(f func() bool) logicsim.Source {
	return func() (logicsim.Signal, error) { return logicsim.Bool(f()), nil }
}

// Output adapts a signal callback into a sink. The returned function
// pulls the given source once and hands the result to f.
func Output(f func(logicsim.Signal)) func(src logicsim.Source) error {
	return func(src logicsim.Source) error {
		v, err := src()
		if err != nil {
			return err
		}
		f(v)
		return nil
	}
}

// A Toggle is a latching two-position switch driving High or Low.
type Toggle struct {
	s logicsim.Signal
}

// NewToggle returns a toggle switch, initially on or off.
func NewToggle(on bool) *Toggle { return &Toggle{s: logicsim.Bool(on)} }

// Set moves the switch to the given position.
func (t *Toggle) Set(on bool) { t.s = logicsim.Bool(on) }

// Flip moves the switch to the other position.
func (t *Toggle) Flip() { t.s = t.s.Invert() }

// Evaluate makes a Toggle usable as a signal source.
func (t *Toggle) Evaluate() (logicsim.Signal, error) { return t.s, nil }

// A Button is a momentary push-button: it drives High while pressed
// and leaves the wire floating otherwise.
type Button struct {
	pressed bool
}

// Press pushes the button down.
func (b *Button) Press() { b.pressed = true }

// Release lets the button go.
func (b *Button) Release() { b.pressed = false }

// Evaluate makes a Button usable as a signal source.
func (b *Button) Evaluate() (logicsim.Signal, error) {
	if b.pressed {
		return logicsim.High, nil
	}
	return logicsim.Floating, nil
}

// A Probe consumes a source once per simulated tick and remembers the
// last observed value: an indicator lamp without the lamp.
type Probe struct {
	src  logicsim.Source
	last logicsim.Signal
	seen bool
	fn   func(logicsim.Signal)
}

// NewProbe attaches a probe to v (anything SourceOf accepts). fn, if
// not nil, runs on the first observation and on every change of the
// observed value.
func NewProbe(v interface{}, fn func(logicsim.Signal)) *Probe {
	return &Probe{src: logicsim.SourceOf(v), fn: fn}
}

// Update pulls the probed source once. Drive it once per simulated
// tick. A failed evaluation leaves the probe's value untouched.
func (p *Probe) Update() error {
	v, err := p.src()
	if err != nil {
		return err
	}
	if !p.seen || v != p.last {
		p.seen = true
		p.last = v
		if p.fn != nil {
			p.fn(v)
		}
	}
	return nil
}

// Value returns the last observed signal.
func (p *Probe) Value() logicsim.Signal { return p.last }
