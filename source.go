// Copyright 2026 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import "github.com/pkg/errors"

// A Source produces a Signal on demand. Evaluating a source may pull
// on arbitrary upstream devices and can therefore fail, e.g. with
// ErrConflict.
//
// A device holds non-owning references to its sources: the same
// source may feed any number of devices, including, through a
// feedback loop, a device it reads from.
type Source func() (Signal, error)

// An Evaluator is anything that can be evaluated to a Signal:
// devices, composite outputs, external widgets.
type Evaluator interface {
	Evaluate() (Signal, error)
}

// Const returns a source stuck at s.
func Const(s Signal) Source {
	return func() (Signal, error) { return s, nil }
}

// SourceOf converts any accepted shape of external value into a
// Source:
//
//	nil                     a floating wire
//	Signal, bool            a constant
//	Source                  itself
//	func() (Signal, error)  itself
//	func() Signal           wrapped, never failing
//	func() bool             wrapped, never failing nor floating
//	Evaluator               its Evaluate method
//
// Values enter the signal graph through SourceOf at wiring time; any
// other type is a programming error and panics.
func SourceOf(v interface{}) Source {
	switch v := v.(type) {
	case nil:
		return Const(Floating)
	case Signal:
		return Const(v)
	case bool:
		return Const(Bool(v))
	case Source:
		return v
	case func() (Signal, error):
		return v
	case func() Signal:
		return func() (Signal, error) { return v(), nil }
	case func() bool:
		return func() (Signal, error) { return Bool(v()), nil }
	case Evaluator:
		return v.Evaluate
	}
	panic(errors.Errorf("logicsim: cannot use %T as a signal source", v))
}

// Bus joins several drivers of a single node into one source. Reading
// the bus resolves all drivers: it floats while nobody drives it and
// fails with ErrConflict when drivers disagree. Arguments go through
// SourceOf.
func Bus(vs ...interface{}) Source {
	srcs := make([]Source, len(vs))
	for i, v := range vs {
		srcs[i] = SourceOf(v)
	}
	return func() (Signal, error) { return Resolve(srcs...) }
}
