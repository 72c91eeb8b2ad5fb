// Copyright 2026 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import "github.com/pkg/errors"

// Resolve combines one or more sources into a single Signal. A nil
// source reads Floating. If at least one source drives High and at
// least one drives Low, Resolve fails with ErrConflict; otherwise the
// result is the driven value, or Floating when no source drives the
// node.
func Resolve(srcs ...Source) (Signal, error) {
	var highs, lows int
	for _, src := range srcs {
		if src == nil {
			continue
		}
		v, err := src()
		if err != nil {
			return Floating, err
		}
		switch v {
		case High:
			highs++
		case Low:
			lows++
		}
	}
	switch {
	case highs > 0 && lows > 0:
		return Floating, errors.WithStack(ErrConflict)
	case highs > 0:
		return High, nil
	case lows > 0:
		return Low, nil
	}
	return Floating, nil
}
