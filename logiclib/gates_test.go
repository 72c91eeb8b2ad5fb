// Copyright 2026 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logiclib_test

import (
	"testing"

	ls "github.com/db47h/logicsim"
	ll "github.com/db47h/logicsim/logiclib"
	"github.com/pkg/errors"
)

// testGate drives a gate from n toggles and checks its output for
// every input combination. result[i] is the expected output with the
// toggles set to the bits of i, first input being the most
// significant bit.
func testGate(t *testing.T, gate func() *ls.Device, n int, result []ls.Signal) {
	t.Helper()

	in := make([]*ll.Toggle, n)
	srcs := make([]interface{}, n)
	for i := range in {
		in[i] = ll.NewToggle(false)
		srcs[i] = in[i]
	}
	g := gate()
	if err := g.SetIn(srcs...); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 1<<uint(n); i++ {
		for j := range in {
			in[j].Set(i&(1<<uint(n-1-j)) != 0)
		}
		v, err := g.Evaluate()
		if err != nil {
			t.Fatal(err)
		}
		if v != result[i] {
			t.Errorf("%s(%0*b) = %v, want %v", g.Name(), n, i, v, result[i])
		}
	}
}

func TestGates(t *testing.T) {
	l, h := ls.Low, ls.High
	td := []struct {
		name   string
		gate   func() *ls.Device
		n      int
		result []ls.Signal
	}{
		{"NOT", ll.Not, 1, []ls.Signal{h, l}},
		{"AND", ll.And, 2, []ls.Signal{l, l, l, h}},
		{"NAND", ll.Nand, 2, []ls.Signal{h, h, h, l}},
		{"NOR", ll.Nor, 2, []ls.Signal{h, l, l, l}},
		{"OR", ll.Or, 2, []ls.Signal{l, h, h, h}},
		{"XOR", ll.Xor, 2, []ls.Signal{l, h, h, l}},
		{"AND3", ll.And, 3, []ls.Signal{l, l, l, l, l, l, l, h}},
		{"NAND3", ll.Nand, 3, []ls.Signal{h, h, h, h, h, h, h, l}},
		{"NOR3", ll.Nor, 3, []ls.Signal{h, l, l, l, l, l, l, l}},
		{"XOR3", ll.Xor, 3, []ls.Signal{l, h, h, l, h, l, l, h}},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			testGate(t, d.gate, d.n, d.result)
		})
	}
}

// an open NOT input reads as pulled high
func TestNot_floatingInput(t *testing.T) {
	g := ll.Not()
	v, err := g.Evaluate()
	if err != nil {
		t.Fatal(err)
	}
	if v != ls.High {
		t.Errorf("NOT(floating) = %v, want high", v)
	}
	if err := g.SetIn(nil); err != nil {
		t.Fatal(err)
	}
	if v, _ = g.Evaluate(); v != ls.High {
		t.Errorf("NOT(floating) = %v, want high", v)
	}
}

// gates treat floating inputs as not-high
func TestGates_floatingInput(t *testing.T) {
	td := []struct {
		name string
		gate func() *ls.Device
		want ls.Signal
	}{
		{"AND", ll.And, ls.Low},
		{"NAND", ll.Nand, ls.High},
		{"NOR", ll.Nor, ls.High},
		{"OR", ll.Or, ls.Low},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			g := d.gate()
			if err := g.SetIn(nil, nil); err != nil {
				t.Fatal(err)
			}
			v, err := g.Evaluate()
			if err != nil {
				t.Fatal(err)
			}
			if v != d.want {
				t.Errorf("%s(floating, floating) = %v, want %v", g.Name(), v, d.want)
			}
		})
	}
}

// a conflict on a gate input fails the whole evaluation
func TestGate_conflict(t *testing.T) {
	g := ll.And()
	if err := g.SetIn(ls.Bus(true, false), true); err != nil {
		t.Fatal(err)
	}
	_, err := g.Evaluate()
	if errors.Cause(err) != ls.ErrConflict {
		t.Errorf("got %v, want ErrConflict", err)
	}
}
