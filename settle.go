// Copyright 2026 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import "github.com/pkg/errors"

// defaultPasses is plenty for the latch structures in logiclib, which
// settle within two or three passes.
const defaultPasses = 8

// Settle evaluates src once per simulated tick until two consecutive
// ticks agree, and returns the settled value. Feedback circuits need
// a few ticks for a new input to propagate around their loops; a
// device that keeps oscillating makes Settle fail with ErrUnstable
// after maxPasses evaluations (maxPasses < 2 selects a default).
func Settle(src Source, maxPasses int) (Signal, error) {
	if maxPasses < 2 {
		maxPasses = defaultPasses
	}
	prev, err := src()
	if err != nil {
		return Floating, err
	}
	for i := 1; i < maxPasses; i++ {
		v, err := src()
		if err != nil {
			return Floating, err
		}
		if v == prev {
			return v, nil
		}
		prev = v
	}
	return Floating, errors.WithStack(ErrUnstable)
}
