// Copyright 2026 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logiclib

import (
	"github.com/db47h/logicsim"
)

// A GateFn builds one gate of a latch pair.
type GateFn func() *logicsim.Device

// SRLatch is a set/reset latch: two identical gates cross-wired so
// that each reads the other's output.
type SRLatch struct {
	*logicsim.Device
	ic1, ic2 *logicsim.Device
}

// NewSRLatch returns an SR latch built from two cross-wired gates of
// the given family (nil selects Nor). The latch has named inputs "R"
// and "S"; its internal gates are wired as each input is bound, so an
// input left unset simply reads floating.
//
// With NOR gates the inputs are active high and driving both R and S
// high forces Q and QBar low together, the classically forbidden
// state. With NAND gates the inputs are active low: pulling R low
// forces Q high, and holding both low forces both outputs high. The
// latch computes these states rather than reporting a conflict, since
// every internal gate input still has a single driver.
func NewSRLatch(gate GateFn) *SRLatch {
	if gate == nil {
		gate = Nor
	}
	l := &SRLatch{ic1: gate(), ic2: gate()}
	l.Device = logicsim.New("SR", 1, func(*logicsim.Device) (logicsim.Signal, error) {
		return l.ic1.Evaluate()
	}, "R", "S")
	l.Device.OnSetInput(l.rewire)
	return l
}

// the gate pair can only be wired once the latch's own inputs are
// known
func (l *SRLatch) rewire(name string) error {
	switch name {
	case "R":
		return l.ic1.SetIn(l.InputSource("R"), l.ic2)
	case "S":
		return l.ic2.SetIn(l.InputSource("S"), l.ic1)
	}
	return nil
}

// Q returns the latch output.
func (l *SRLatch) Q() (logicsim.Signal, error) { return l.Evaluate() }

// QBar returns the complementary output.
func (l *SRLatch) QBar() (logicsim.Signal, error) { return l.ic2.Evaluate() }

// JKFF is a level-gated JK flip-flop: a NAND latch pair fed through
// two gating NANDs that mix the clock and the J/K inputs with the
// opposite latch output.
type JKFF struct {
	*logicsim.Device
	ic1, ic2 *logicsim.Device // latch pair
	icj, ick *logicsim.Device // input gating
}

// NewJKFF returns a JK flip-flop with named inputs "J", "K" and
// "CLK". While the clock is low the latch holds; while it is high the
// latch follows J (set) and K (reset). The gating gates put their
// feedback input last, so a gate whose J or K input is low never
// pulls into the latch loop at all.
//
// Holding J, K and CLK high is the race-around state: as in the
// equivalent hardware between clock edges, the outputs are not
// meaningful until either the clock drops or J/K change.
//
// The gating wiring is only established once all three inputs resolve
// to a driven value; until then the gates stay at their unconnected
// construction state and the latch output is computed from floating
// gating inputs.
func NewJKFF() *JKFF {
	ff := &JKFF{ic1: Nand(), ic2: Nand(), icj: Nand(), ick: Nand()}
	ff.ic1.SetIn(ff.icj, ff.ic2)
	ff.ic2.SetIn(ff.ick, ff.ic1)
	ff.Device = logicsim.New("JKFF", 1, func(*logicsim.Device) (logicsim.Signal, error) {
		return ff.ic1.Evaluate()
	}, "J", "K", "CLK")
	ff.Device.OnSetInput(ff.rewire)
	return ff
}

func (ff *JKFF) rewire(string) error {
	for _, name := range []string{"J", "K", "CLK"} {
		v, err := ff.GetInput(name)
		if err != nil {
			return err
		}
		if v == logicsim.Floating {
			// cannot gate anything yet
			return nil
		}
	}
	err := ff.icj.SetIn(ff.InputSource("J"), ff.InputSource("CLK"), ff.ic2)
	if err != nil {
		return err
	}
	return ff.ick.SetIn(ff.InputSource("K"), ff.InputSource("CLK"), ff.ic1)
}

// Q returns the flip-flop output.
func (ff *JKFF) Q() (logicsim.Signal, error) { return ff.Evaluate() }

// QBar returns the complementary output.
func (ff *JKFF) QBar() (logicsim.Signal, error) { return ff.ic2.Evaluate() }
