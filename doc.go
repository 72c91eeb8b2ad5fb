// Copyright 2026 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package logicsim simulates boolean logic devices (gates, latches,
flip-flops) wired into arbitrary, possibly cyclic, signal graphs.

Unlike a clocked simulator, evaluation is demand driven: reading a
device's output pulls on its input sources, which recursively pulls on
theirs. Signals are tri-state (High, Low, or Floating when nothing
drives a wire), and opposing drivers on a single node are reported as
a conflict instead of being silently resolved.

Feedback loops are legal and expected: an SR latch is two gates
reading each other's outputs. Every device carries an evaluation guard
that detects when a pull re-enters a device already computing its
value and answers with the last computed value instead of recursing.
One pull therefore always terminates, but a feedback circuit may need
several pulls for a new input to propagate around the loop; drive the
output once per simulated tick until it stops changing, or use Settle.

Ready-made gates, latches and input/output adapters live in
package logiclib.
*/
package logicsim
