// Copyright 2026 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logiclib_test

import (
	"testing"

	ls "github.com/db47h/logicsim"
	ll "github.com/db47h/logicsim/logiclib"
	"github.com/stretchr/testify/assert"
)

func settled(t *testing.T, out ls.Source) ls.Signal {
	t.Helper()
	v, err := ls.Settle(out, 0)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func TestSRLatch_nor(t *testing.T) {
	assert := assert.New(t)

	l := ll.NewSRLatch(nil)
	s, r := ll.NewToggle(false), ll.NewToggle(false)
	assert.NoError(l.SetInput("S", s))
	assert.NoError(l.SetInput("R", r))

	// set
	s.Set(true)
	assert.Equal(ls.High, settled(t, l.Q))
	assert.Equal(ls.Low, settled(t, l.QBar))

	// hold
	s.Set(false)
	assert.Equal(ls.High, settled(t, l.Q))
	assert.Equal(ls.Low, settled(t, l.QBar))

	// reset
	r.Set(true)
	assert.Equal(ls.Low, settled(t, l.Q))
	assert.Equal(ls.High, settled(t, l.QBar))

	// hold
	r.Set(false)
	assert.Equal(ls.Low, settled(t, l.Q))
	assert.Equal(ls.High, settled(t, l.QBar))

	// both active: the forbidden state drives both outputs low
	s.Set(true)
	r.Set(true)
	assert.Equal(ls.Low, settled(t, l.Q))
	assert.Equal(ls.Low, settled(t, l.QBar))
}

// NAND latches have active low inputs: pulling R low sets Q.
func TestSRLatch_nand(t *testing.T) {
	assert := assert.New(t)

	l := ll.NewSRLatch(ll.Nand)
	s, r := ll.NewToggle(true), ll.NewToggle(true)
	assert.NoError(l.SetInput("S", s))
	assert.NoError(l.SetInput("R", r))

	// set
	r.Set(false)
	assert.Equal(ls.High, settled(t, l.Q))
	assert.Equal(ls.Low, settled(t, l.QBar))

	// hold
	r.Set(true)
	assert.Equal(ls.High, settled(t, l.Q))
	assert.Equal(ls.Low, settled(t, l.QBar))

	// reset
	s.Set(false)
	assert.Equal(ls.Low, settled(t, l.Q))
	assert.Equal(ls.High, settled(t, l.QBar))

	// both active: both outputs high
	r.Set(false)
	assert.Equal(ls.High, settled(t, l.Q))
	assert.Equal(ls.High, settled(t, l.QBar))
}

// wiring only one input must not fail: the other gate just reads its
// unconnected construction state
func TestSRLatch_partialWiring(t *testing.T) {
	l := ll.NewSRLatch(nil)
	if err := l.SetInput("R", false); err != nil {
		t.Fatal(err)
	}
	if _, err := l.Q(); err != nil {
		t.Fatal(err)
	}
}

func TestSRLatch_disabled(t *testing.T) {
	l := ll.NewSRLatch(nil)
	assert.NoError(t, l.SetInput("S", true))
	assert.NoError(t, l.SetInput("R", false))
	l.SetEnable(false)
	v, err := l.Q()
	assert.NoError(t, err)
	assert.Equal(t, ls.Floating, v)
}

func TestJKFF(t *testing.T) {
	assert := assert.New(t)

	ff := ll.NewJKFF()
	j, k := ll.NewToggle(true), ll.NewToggle(false)
	clk := ll.NewToggle(false)

	// gating is deferred until all three inputs are driven;
	// evaluation must still work
	assert.NoError(ff.SetInput("J", j))
	assert.Equal(ls.Low, settled(t, ff.Q))
	assert.NoError(ff.SetInput("K", k))
	assert.NoError(ff.SetInput("CLK", clk))

	// clock low: hold
	assert.Equal(ls.Low, settled(t, ff.Q))
	assert.Equal(ls.High, settled(t, ff.QBar))

	// clock high with J=1, K=0: set
	clk.Set(true)
	assert.Equal(ls.High, settled(t, ff.Q))
	assert.Equal(ls.Low, settled(t, ff.QBar))

	// clock low again: hold
	clk.Set(false)
	assert.Equal(ls.High, settled(t, ff.Q))
	assert.Equal(ls.Low, settled(t, ff.QBar))

	// J/K swapped while the clock is low: still holding
	j.Set(false)
	k.Set(true)
	assert.Equal(ls.High, settled(t, ff.Q))

	// clock high with J=0, K=1: reset
	clk.Set(true)
	assert.Equal(ls.Low, settled(t, ff.Q))
	assert.Equal(ls.High, settled(t, ff.QBar))

	// clock low: hold
	clk.Set(false)
	assert.Equal(ls.Low, settled(t, ff.Q))

	// J=K=0 with the clock high: hold as well
	j.Set(false)
	k.Set(false)
	clk.Set(true)
	assert.Equal(ls.Low, settled(t, ff.Q))
}
