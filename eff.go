// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kontrol

// Eff is a deferred effectful computation producing a value of type A.
//
// An Eff is pure data: a current value plus a chain of continuation
// frames. Constructing or passing an Eff runs nothing; its effects fire
// only when an evaluator such as [RunPure], [Handle], or [RunEither]
// walks the chain. This is what makes the short-circuiting combinators
// sound — a computation that is never sequenced is never evaluated, so
// it cannot fail.
type Eff[A any] struct {
	// value holds the result when frames is a completed chain.
	value A

	// frames holds the pending continuation frames.
	frames frame
}

// Return lifts a pure value into a completed computation with no effects.
func Return[A any](a A) Eff[A] {
	return Eff[A]{value: a, frames: returnFrame{}}
}

// Bind sequences two computations (monadic bind).
// It arranges for m to run first and for f to receive its result,
// producing the computation that runs next.
func Bind[A, B any](m Eff[A], f func(A) Eff[B]) Eff[B] {
	if completed(m.frames) {
		// m already carries its result: apply f directly.
		return f(m.value)
	}
	bf := &bindFrame{
		fn: func(v any) Eff[any] {
			return erase(f(v.(A)))
		},
		next: returnFrame{},
	}
	var zero B
	return Eff[B]{value: zero, frames: chainFrames(m.frames, bf)}
}

// Map applies a pure function to the result of a computation.
//
// Map is equivalent to Bind(m, func(a A) Eff[B] { return Return(f(a)) })
// but skips the intermediate Return, making it the preferred form when
// the transformation produces no effects.
func Map[A, B any](m Eff[A], f func(A) B) Eff[B] {
	if completed(m.frames) {
		return Return(f(m.value))
	}
	mf := &mapFrame{
		fn: func(v any) any {
			return f(v.(A))
		},
		next: returnFrame{},
	}
	var zero B
	return Eff[B]{value: zero, frames: chainFrames(m.frames, mf)}
}

// Then sequences two computations, discarding the first result.
// Equivalent to Bind(m, func(A) Eff[B] { return n }) without the closure
// capture of a transformation function.
func Then[A, B any](m Eff[A], n Eff[B]) Eff[B] {
	if completed(m.frames) {
		return n
	}
	tf := &thenFrame{second: erase(n), next: returnFrame{}}
	var zero B
	return Eff[B]{value: zero, frames: chainFrames(m.frames, tf)}
}

// Void is the result type of computations run only for their effects.
type Void struct{}

// Noop is the effect that does nothing and produces no meaningful value.
func Noop() Eff[Void] {
	return Return(Void{})
}

// Unit discards the result of a computation, keeping its effects.
// It exists to fix the result type of an action to [Void] where only the
// effect matters.
func Unit[A any](m Eff[A]) Eff[Void] {
	return Map(m, func(A) Void { return Void{} })
}

// completed reports whether a frame chain carries no pending work.
// A nil chain counts as completed, so the zero Eff behaves like
// Return of the zero value.
func completed(f frame) bool {
	if f == nil {
		return true
	}
	_, ok := f.(returnFrame)
	return ok
}

// erase converts a typed computation to its type-erased form for storage
// inside frames.
func erase[A any](m Eff[A]) Eff[any] {
	return Eff[any]{value: m.value, frames: m.frames}
}
