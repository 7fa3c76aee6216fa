// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kontrol

// Continuation frames are the deferred representation of a computation.
// An [Eff] holds a current value plus a chain of frames; nothing runs
// until an evaluator walks the chain. Frames are immutable after
// construction, so one Eff may be evaluated any number of times.
//
// Frames carry type-erased values. Concrete types are recovered by
// assertion at frame boundaries, inside the typed constructors in eff.go.

// frame is the marker interface for continuation frames.
// Dispatch uses type switches, not tags.
type frame interface {
	frame()
}

// returnFrame signals computation completion.
// The evaluator returns the current value as the final result.
type returnFrame struct{}

func (returnFrame) frame() {}

// bindFrame sequences a dependent computation: fn receives the current
// value and yields the next computation to evaluate.
type bindFrame struct {
	fn   func(any) Eff[any]
	next frame
}

func (*bindFrame) frame() {}

// mapFrame transforms the current value with a pure function.
type mapFrame struct {
	fn   func(any) any
	next frame
}

func (*mapFrame) frame() {}

// thenFrame sequences a second computation, discarding the current value.
type thenFrame struct {
	second Eff[any]
	next   frame
}

func (*thenFrame) frame() {}

// effectFrame suspends the computation on an effect operation.
// The evaluator dispatches the operation to a handler; the handler's
// resume value becomes the current value.
type effectFrame struct {
	op   Operation
	next frame
}

func (*effectFrame) frame() {}

// chainedFrame is a frame followed by more frames. Composing chains this
// way keeps construction O(1) and leaves both operands untouched.
type chainedFrame struct {
	head frame
	tail frame
}

func (*chainedFrame) frame() {}

// chainFrames links two frame chains. returnFrame is the identity
// element for composition, so the other operand is returned directly
// when either side is a completed chain, avoiding a chainedFrame
// allocation.
//
// Invariant maintained here and by the eff.go constructors: a
// chainedFrame never has a returnFrame head or tail, and the leftmost
// frame of any non-completed chain is an effectFrame, which ignores the
// current value.
func chainFrames(first, second frame) frame {
	if completed(first) {
		return second
	}
	if completed(second) {
		return first
	}
	return &chainedFrame{head: first, tail: second}
}
