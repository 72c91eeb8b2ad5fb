// Copyright 2026 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"

	"github.com/db47h/logicsim"
	"github.com/db47h/logicsim/logiclib"
	"github.com/pkg/errors"
	"go.starlark.net/starlark"
)

// A handle is the script-side value wrapping a device, a widget or a
// plain signal source.
type handle struct {
	kind string
	obj  interface{}
	src  logicsim.Source
}

func newHandle(kind string, obj interface{}) *handle {
	return &handle{kind: kind, obj: obj, src: logicsim.SourceOf(obj)}
}

func (h *handle) String() string { return "<" + h.kind + ">" }
func (h *handle) Type() string   { return "device" }
func (h *handle) Freeze()        {}
func (h *handle) Truth() starlark.Bool {
	v, err := h.src()
	return starlark.Bool(err == nil && v == logicsim.High)
}
func (h *handle) Hash() (uint32, error) { return 0, errors.New("unhashable type: device") }

// asSource converts a script value into something SourceOf accepts.
func asSource(v starlark.Value) (interface{}, error) {
	switch v := v.(type) {
	case starlark.NoneType:
		return nil, nil
	case starlark.Bool:
		return bool(v), nil
	case *handle:
		return h2src(v), nil
	}
	return nil, errors.Errorf("cannot use %s as a signal source", v.Type())
}

func h2src(h *handle) interface{} {
	if h.obj != nil {
		return h.obj
	}
	return h.src
}

func asHandle(name string, v starlark.Value) (*handle, error) {
	h, ok := v.(*handle)
	if !ok {
		return nil, errors.Errorf("%s: want a device, got %s", name, v.Type())
	}
	return h, nil
}

type flipflop interface {
	Q() (logicsim.Signal, error)
	QBar() (logicsim.Signal, error)
}

// env holds the state shared by all builtins of one script run.
type env struct {
	probes []*logiclib.Probe
}

func newEnv() *env { return &env{} }

// builtins returns the predeclared environment for circuit scripts.
func (e *env) builtins() starlark.StringDict {
	gates := map[string]func() *logicsim.Device{
		"not_gate":  logiclib.Not,
		"and_gate":  logiclib.And,
		"nand_gate": logiclib.Nand,
		"nor_gate":  logiclib.Nor,
		"or_gate":   logiclib.Or,
		"xor_gate":  logiclib.Xor,
	}
	d := starlark.StringDict{
		"high":     newHandle("high", logicsim.High),
		"low":      newHandle("low", logicsim.Low),
		"floating": newHandle("floating", logicsim.Floating),
	}
	for name, gate := range gates {
		gate := gate
		d[name] = starlark.NewBuiltin(name, func(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackArgs(fn.Name(), args, kwargs); err != nil {
				return nil, err
			}
			g := gate()
			return newHandle(g.Name(), g), nil
		})
	}
	for name, fn := range map[string]func(*starlark.Thread, *starlark.Builtin, starlark.Tuple, []starlark.Tuple) (starlark.Value, error){
		"toggle":    e.toggle,
		"button":    e.button,
		"sr_latch":  e.srLatch,
		"jkff":      e.jkff,
		"q":         e.q,
		"q_bar":     e.qBar,
		"connect":   e.connect,
		"set_input": e.setInput,
		"enable":    e.enable,
		"eval":      e.eval,
		"settle":    e.settle,
		"probe":     e.probe,
		"tick":      e.tick,
		"press":     e.press,
		"release":   e.release,
		"flip":      e.flip,
		"set":       e.set,
	} {
		d[name] = starlark.NewBuiltin(name, fn)
	}
	return d
}

func (e *env) toggle(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var on bool
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "on?", &on); err != nil {
		return nil, err
	}
	return newHandle("toggle", logiclib.NewToggle(on)), nil
}

func (e *env) button(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs); err != nil {
		return nil, err
	}
	return newHandle("button", &logiclib.Button{}), nil
}

func (e *env) srLatch(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	family := "nor"
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "family?", &family); err != nil {
		return nil, err
	}
	var gate logiclib.GateFn
	switch family {
	case "nor":
		gate = logiclib.Nor
	case "nand":
		gate = logiclib.Nand
	default:
		return nil, errors.Errorf("%s: unknown gate family %q", fn.Name(), family)
	}
	return newHandle("sr_latch", logiclib.NewSRLatch(gate)), nil
}

func (e *env) jkff(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs); err != nil {
		return nil, err
	}
	return newHandle("jkff", logiclib.NewJKFF()), nil
}

func (e *env) q(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	return e.ffOut(fn, args, kwargs, false)
}

func (e *env) qBar(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	return e.ffOut(fn, args, kwargs, true)
}

func (e *env) ffOut(fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple, complement bool) (starlark.Value, error) {
	var v starlark.Value
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "dev", &v); err != nil {
		return nil, err
	}
	h, err := asHandle(fn.Name(), v)
	if err != nil {
		return nil, err
	}
	ff, ok := h.obj.(flipflop)
	if !ok {
		return nil, errors.Errorf("%s: %s has no Q output", fn.Name(), h.kind)
	}
	out := ff.Q
	name := h.kind + ".q"
	if complement {
		out = ff.QBar
		name = h.kind + ".q_bar"
	}
	return &handle{kind: name, src: logicsim.Source(out)}, nil
}

func (e *env) connect(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if len(kwargs) > 0 {
		return nil, errors.Errorf("%s: unexpected keyword arguments", fn.Name())
	}
	if len(args) < 2 {
		return nil, errors.Errorf("%s: want a device and at least one source", fn.Name())
	}
	h, err := asHandle(fn.Name(), args[0])
	if err != nil {
		return nil, err
	}
	d, ok := h.obj.(interface {
		SetIn(...interface{}) error
	})
	if !ok {
		return nil, errors.Errorf("%s: %s has no inputs", fn.Name(), h.kind)
	}
	srcs := make([]interface{}, len(args)-1)
	for i, a := range args[1:] {
		if srcs[i], err = asSource(a); err != nil {
			return nil, err
		}
	}
	return starlark.None, d.SetIn(srcs...)
}

func (e *env) setInput(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var (
		v, sv starlark.Value
		name  string
	)
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "dev", &v, "name", &name, "src", &sv); err != nil {
		return nil, err
	}
	h, err := asHandle(fn.Name(), v)
	if err != nil {
		return nil, err
	}
	d, ok := h.obj.(interface {
		SetInput(string, interface{}) error
	})
	if !ok {
		return nil, errors.Errorf("%s: %s has no named inputs", fn.Name(), h.kind)
	}
	src, err := asSource(sv)
	if err != nil {
		return nil, err
	}
	return starlark.None, d.SetInput(name, src)
}

func (e *env) enable(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var v, sv starlark.Value
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "dev", &v, "src", &sv); err != nil {
		return nil, err
	}
	h, err := asHandle(fn.Name(), v)
	if err != nil {
		return nil, err
	}
	d, ok := h.obj.(interface {
		SetEnable(interface{})
	})
	if !ok {
		return nil, errors.Errorf("%s: %s has no enable input", fn.Name(), h.kind)
	}
	src, err := asSource(sv)
	if err != nil {
		return nil, err
	}
	d.SetEnable(src)
	return starlark.None, nil
}

func (e *env) eval(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var v starlark.Value
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "dev", &v); err != nil {
		return nil, err
	}
	h, err := asHandle(fn.Name(), v)
	if err != nil {
		return nil, err
	}
	s, err := h.src()
	if err != nil {
		return nil, err
	}
	return starlark.String(s.String()), nil
}

func (e *env) settle(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var (
		v      starlark.Value
		passes int
	)
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "dev", &v, "passes?", &passes); err != nil {
		return nil, err
	}
	h, err := asHandle(fn.Name(), v)
	if err != nil {
		return nil, err
	}
	s, err := logicsim.Settle(h.src, passes)
	if err != nil {
		return nil, err
	}
	return starlark.String(s.String()), nil
}

func (e *env) probe(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var (
		v     starlark.Value
		label string
	)
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "dev", &v, "label", &label); err != nil {
		return nil, err
	}
	h, err := asHandle(fn.Name(), v)
	if err != nil {
		return nil, err
	}
	p := logiclib.NewProbe(h.src, func(s logicsim.Signal) {
		fmt.Printf("%s: %v\n", label, s)
	})
	e.probes = append(e.probes, p)
	return starlark.None, nil
}

func (e *env) tick(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	n := 1
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "n?", &n); err != nil {
		return nil, err
	}
	return starlark.None, e.runTicks(n)
}

// runTicks updates every registered probe n times.
func (e *env) runTicks(n int) error {
	for ; n > 0; n-- {
		for _, p := range e.probes {
			if err := p.Update(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (e *env) press(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	return e.buttonOp(fn, args, kwargs, (*logiclib.Button).Press)
}

func (e *env) release(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	return e.buttonOp(fn, args, kwargs, (*logiclib.Button).Release)
}

func (e *env) buttonOp(fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple, op func(*logiclib.Button)) (starlark.Value, error) {
	var v starlark.Value
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "button", &v); err != nil {
		return nil, err
	}
	h, err := asHandle(fn.Name(), v)
	if err != nil {
		return nil, err
	}
	b, ok := h.obj.(*logiclib.Button)
	if !ok {
		return nil, errors.Errorf("%s: %s is not a button", fn.Name(), h.kind)
	}
	op(b)
	return starlark.None, nil
}

func (e *env) flip(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var v starlark.Value
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "toggle", &v); err != nil {
		return nil, err
	}
	t, err := e.asToggle(fn, v)
	if err != nil {
		return nil, err
	}
	t.Flip()
	return starlark.None, nil
}

func (e *env) set(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var (
		v  starlark.Value
		on bool
	)
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "toggle", &v, "on", &on); err != nil {
		return nil, err
	}
	t, err := e.asToggle(fn, v)
	if err != nil {
		return nil, err
	}
	t.Set(on)
	return starlark.None, nil
}

func (e *env) asToggle(fn *starlark.Builtin, v starlark.Value) (*logiclib.Toggle, error) {
	h, err := asHandle(fn.Name(), v)
	if err != nil {
		return nil, err
	}
	t, ok := h.obj.(*logiclib.Toggle)
	if !ok {
		return nil, errors.Errorf("%s: %s is not a toggle", fn.Name(), h.kind)
	}
	return t, nil
}
