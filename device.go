// Copyright 2026 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import "github.com/pkg/errors"

// A Func computes a device's output from its current inputs. It runs
// under the device's evaluation guard and may itself pull on other
// devices.
type Func func(d *Device) (Signal, error)

// maxEvalDepth bounds how many guarded evaluations of one device may
// be in flight at once. Graphs with a single feedback loop never nest
// a device more than twice; the cap only kicks in on pathological
// multi-loop graphs where clearing the re-entry mark would otherwise
// let evaluation dig forever.
const maxEvalDepth = 8

// guard breaks evaluation cycles. When a pull re-enters a device that
// is already computing its value (the graph loops back to it), the
// guard answers with the last computed value instead of recursing.
type guard struct {
	busy  bool
	depth int
	last  Signal
}

func (g *guard) eval(fn func() (Signal, error)) (Signal, error) {
	if g.busy {
		// Re-entered through a feedback loop. The mark was set by the
		// original call, not this one: clear it so it cannot stick.
		g.busy = false
		return g.last, nil
	}
	if g.depth >= maxEvalDepth {
		return g.last, nil
	}
	g.busy = true
	g.depth++
	v, err := fn()
	g.depth--
	g.busy = false
	if err != nil {
		// keep the last good value for re-entrant reads
		return Floating, err
	}
	g.last = v
	return v, nil
}

// A Device is one node of a signal graph: a minimum number of
// positional inputs, optional named inputs, an enable source and a
// value function. Concrete devices are built by giving New a value
// function; composites additionally own internal sub-devices and
// rewire them through the SetInput hook.
type Device struct {
	name    string
	min     int
	fn      Func
	inputs  []Source
	named   map[string]Source
	enable  Source
	onInput func(name string) error
	g       guard
}

// New returns a device named name computing fn over at least min
// positional inputs, all initially unconnected. names declares the
// device's named input pins. A device without a value function cannot
// exist: New panics with ErrNotImplemented when fn is nil.
func New(name string, min int, fn Func, names ...string) *Device {
	if fn == nil {
		panic(errors.Wrap(ErrNotImplemented, name))
	}
	d := &Device{
		name:   name,
		min:    min,
		fn:     fn,
		inputs: make([]Source, min),
		enable: Const(High),
	}
	if len(names) > 0 {
		d.named = make(map[string]Source, len(names))
		for _, n := range names {
			d.named[n] = nil
		}
	}
	return d
}

// Name returns the device name.
func (d *Device) Name() string { return d.name }

// SetIn rewires the device's positional inputs. Each value goes
// through SourceOf; a single value wires a single input. Wiring fewer
// sources than the device's minimum input count fails with ErrArity.
func (d *Device) SetIn(vs ...interface{}) error {
	if len(vs) < d.min {
		return errors.Wrapf(ErrArity, "%s: %d of %d", d.name, len(vs), d.min)
	}
	in := make([]Source, len(vs))
	for i, v := range vs {
		in[i] = SourceOf(v)
	}
	d.inputs = in
	return nil
}

// In returns the device's positional input sources. The slice is the
// device's own; callers must not modify it.
func (d *Device) In() []Source { return d.inputs }

// NumInputs returns the number of wired positional inputs.
func (d *Device) NumInputs() int { return len(d.inputs) }

// Input resolves positional input i. An unconnected slot reads
// Floating.
func (d *Device) Input(i int) (Signal, error) {
	return Resolve(d.inputs[i])
}

// SetEnable rewires the device's enable input. The value goes through
// SourceOf, so anything that can drive an input can drive the enable.
func (d *Device) SetEnable(v interface{}) { d.enable = SourceOf(v) }

// Enable returns the device's enable source.
func (d *Device) Enable() Source { return d.enable }

// Evaluate returns the device's output signal. A device whose enable
// input does not read High outputs Floating without running its value
// function. Evaluation is guarded: a pull that re-enters this device
// through a feedback loop yields the last computed value.
//
// Evaluate makes *Device an Evaluator, so a device wires directly
// into another device's inputs.
func (d *Device) Evaluate() (Signal, error) {
	en, err := d.enable()
	if err != nil {
		return Floating, err
	}
	if en != High {
		return Floating, nil
	}
	return d.g.eval(func() (Signal, error) { return d.fn(d) })
}

// GetInput resolves the named input to a Signal. An unbound input
// reads Floating.
func (d *Device) GetInput(name string) (Signal, error) {
	src, ok := d.named[name]
	if !ok {
		return Floating, errors.Wrap(ErrUnknownInput, d.name+"."+name)
	}
	return Resolve(src)
}

// InputSource returns the source bound to the named input, or nil.
func (d *Device) InputSource(name string) Source { return d.named[name] }

// SetInput rebinds the named input to a new source and runs the
// device's rewiring hook, if any.
func (d *Device) SetInput(name string, v interface{}) error {
	if _, ok := d.named[name]; !ok {
		return errors.Wrap(ErrUnknownInput, d.name+"."+name)
	}
	d.named[name] = SourceOf(v)
	if d.onInput != nil {
		return d.onInput(name)
	}
	return nil
}

// OnSetInput registers a hook run after every successful SetInput.
// Composite devices use it to rewire their internal gates once their
// own inputs are known.
func (d *Device) OnSetInput(hook func(name string) error) { d.onInput = hook }
