// Copyright 2026 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim_test

import (
	"testing"

	ls "github.com/db47h/logicsim"
)

func TestSignal(t *testing.T) {
	td := []struct {
		s      ls.Signal
		str    string
		driven bool
		b      bool
		inv    ls.Signal
	}{
		{ls.Floating, "floating", false, false, ls.Floating},
		{ls.Low, "low", true, false, ls.High},
		{ls.High, "high", true, true, ls.Low},
	}
	for _, d := range td {
		t.Run(d.str, func(t *testing.T) {
			if s := d.s.String(); s != d.str {
				t.Errorf("String() = %q, want %q", s, d.str)
			}
			if v := d.s.Driven(); v != d.driven {
				t.Errorf("Driven() = %v, want %v", v, d.driven)
			}
			if v := d.s.Bool(); v != d.b {
				t.Errorf("Bool() = %v, want %v", v, d.b)
			}
			if v := d.s.Invert(); v != d.inv {
				t.Errorf("Invert() = %v, want %v", v, d.inv)
			}
		})
	}
	if ls.Bool(true) != ls.High || ls.Bool(false) != ls.Low {
		t.Error("Bool conversion broken")
	}
}
