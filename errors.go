// Copyright 2026 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import "github.com/pkg/errors"

// Errors reported by the engine. Call sites wrap them with context;
// test for them with errors.Cause.
var (
	// ErrConflict is returned when both a high and a low driver are
	// active on the same logical input.
	ErrConflict = errors.New("conflicting inputs")

	// ErrArity is returned when a device is wired with fewer sources
	// than its declared minimum input count.
	ErrArity = errors.New("not enough inputs")

	// ErrUnknownInput is returned when a named input does not exist
	// on the device.
	ErrUnknownInput = errors.New("unknown input name")

	// ErrNotImplemented reports an attempt to build a device without
	// a value function.
	ErrNotImplemented = errors.New("device has no value function")

	// ErrUnstable is returned by Settle when a circuit keeps
	// oscillating.
	ErrUnstable = errors.New("circuit did not settle")
)
