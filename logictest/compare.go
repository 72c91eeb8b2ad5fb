// Copyright 2026 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package logictest provides utility functions for testing devices.
package logictest

import (
	"testing"

	"github.com/db47h/logicsim"
	"github.com/db47h/logicsim/logiclib"
)

// CompareDevices drives the devices built by build1 and build2 from
// the same set of n toggles and checks both outputs against each
// other for every input combination. Outputs are settled before
// comparing, so devices with internal feedback compare fine as long
// as they are deterministic.
func CompareDevices(t *testing.T, build1, build2 func() *logicsim.Device, n int) {
	t.Helper()

	in := make([]*logiclib.Toggle, n)
	srcs := make([]interface{}, n)
	for i := range in {
		in[i] = logiclib.NewToggle(false)
		srcs[i] = in[i]
	}
	d1, d2 := build1(), build2()
	if err := d1.SetIn(srcs...); err != nil {
		t.Fatal(err)
	}
	if err := d2.SetIn(srcs...); err != nil {
		t.Fatal(err)
	}
	for bits := 0; bits < 1<<uint(n); bits++ {
		for i := range in {
			in[i].Set(bits&(1<<uint(n-1-i)) != 0)
		}
		v1, err := logicsim.Settle(logicsim.SourceOf(d1), 0)
		if err != nil {
			t.Fatalf("%s(%0*b): %v", d1.Name(), n, bits, err)
		}
		v2, err := logicsim.Settle(logicsim.SourceOf(d2), 0)
		if err != nil {
			t.Fatalf("%s(%0*b): %v", d2.Name(), n, bits, err)
		}
		if v1 != v2 {
			t.Errorf("input %0*b: %s = %v, %s = %v", n, bits, d1.Name(), v1, d2.Name(), v2)
		}
	}
}
