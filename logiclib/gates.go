// Copyright 2026 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package logiclib provides a library of ready-made devices for
// logicsim: gates, latches and flip-flops, and adapters that bring
// external toggles, buttons and indicators into a signal graph.
package logiclib

import (
	"github.com/db47h/logicsim"
)

// Gates are stateless, but a gate wired into a feedback loop still
// needs its evaluation guard, so every gate is a full logicsim.Device.
//
// Multi-input gates take any number of inputs >= 2 and evaluate them
// in wiring order, stopping at the first input that decides the
// output. A Floating input counts as not-high.

func notValue(d *logicsim.Device) (logicsim.Signal, error) {
	v, err := d.Input(0)
	if err != nil {
		return logicsim.Floating, err
	}
	if v == logicsim.Floating {
		// an open input reads as pulled high
		return logicsim.High, nil
	}
	return v.Invert(), nil
}

// Not returns a NOT gate.
//
//	Inputs: 1
//	Function: out = !in; a floating input reads high
func Not() *logicsim.Device {
	return logicsim.New("NOT", 1, notValue)
}

// newGate returns a constructor for a two-or-more input gate.
func newGate(name string, fn logicsim.Func) func() *logicsim.Device {
	return func() *logicsim.Device { return logicsim.New(name, 2, fn) }
}

var (
	andGate = newGate("AND", func(d *logicsim.Device) (logicsim.Signal, error) {
		for i := 0; i < d.NumInputs(); i++ {
			v, err := d.Input(i)
			if err != nil {
				return logicsim.Floating, err
			}
			if v != logicsim.High {
				return logicsim.Low, nil
			}
		}
		return logicsim.High, nil
	})
	nandGate = newGate("NAND", func(d *logicsim.Device) (logicsim.Signal, error) {
		for i := 0; i < d.NumInputs(); i++ {
			v, err := d.Input(i)
			if err != nil {
				return logicsim.Floating, err
			}
			if v != logicsim.High {
				return logicsim.High, nil
			}
		}
		return logicsim.Low, nil
	})
	norGate = newGate("NOR", func(d *logicsim.Device) (logicsim.Signal, error) {
		for i := 0; i < d.NumInputs(); i++ {
			v, err := d.Input(i)
			if err != nil {
				return logicsim.Floating, err
			}
			if v == logicsim.High {
				return logicsim.Low, nil
			}
		}
		return logicsim.High, nil
	})
	orGate = newGate("OR", func(d *logicsim.Device) (logicsim.Signal, error) {
		for i := 0; i < d.NumInputs(); i++ {
			v, err := d.Input(i)
			if err != nil {
				return logicsim.Floating, err
			}
			if v == logicsim.High {
				return logicsim.High, nil
			}
		}
		return logicsim.Low, nil
	})
	xorGate = newGate("XOR", func(d *logicsim.Device) (logicsim.Signal, error) {
		var highs int
		for i := 0; i < d.NumInputs(); i++ {
			v, err := d.Input(i)
			if err != nil {
				return logicsim.Floating, err
			}
			if v == logicsim.High {
				highs++
			}
		}
		return logicsim.Bool(highs&1 == 1), nil
	})
)

// And returns an AND gate.
//
//	Inputs: 2 or more
//	Function: out = high iff every input resolves high
func And() *logicsim.Device { return andGate() }

// Nand returns a NAND gate.
//
//	Inputs: 2 or more
//	Function: out = low iff every input resolves high
func Nand() *logicsim.Device { return nandGate() }

// Nor returns a NOR gate.
//
//	Inputs: 2 or more
//	Function: out = low iff any input resolves high
func Nor() *logicsim.Device { return norGate() }

// Or returns an OR gate.
//
//	Inputs: 2 or more
//	Function: out = high iff any input resolves high
func Or() *logicsim.Device { return orGate() }

// Xor returns a XOR gate.
//
//	Inputs: 2 or more
//	Function: out = high iff an odd number of inputs resolve high
func Xor() *logicsim.Device { return xorGate() }
