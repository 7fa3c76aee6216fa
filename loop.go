// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kontrol

// Looping constructs. Both loops run in constant stack space: pure
// iterations advance in a plain for loop, and effectful iterations
// suspend behind a bind frame that the iterative evaluator resumes.
// Termination is the caller's contract — a step that always continues
// loops forever without growing the stack.

// Continue tags s as the next seed for [LoopM].
func Continue[S, A any](s S) Either[S, A] {
	return Left[S, A](s)
}

// Finish tags a as the final result for [LoopM].
func Finish[S, A any](a A) Either[S, A] {
	return Right[S, A](a)
}

// LoopM repeatedly invokes step, threading the seed through each
// iteration. A Left result continues the loop with the new seed; a Right
// result stops the loop and yields the final value. Each iteration's
// effects are sequenced strictly after the previous iteration's effects
// complete.
func LoopM[S, A any](step func(S) Eff[Either[S, A]], seed S) Eff[A] {
	s := seed
	for {
		m := step(s)
		if !completed(m.frames) {
			// Effectful iteration: suspend the rest of the loop behind
			// an explicitly constructed bind frame. Routing through Bind
			// would take its completed-computation shortcut on pure
			// steps and unroll the whole loop during construction.
			bf := &bindFrame{
				fn: func(v any) Eff[any] {
					e := v.(Either[S, A])
					if next, ok := e.GetLeft(); ok {
						return erase(LoopM(step, next))
					}
					a, _ := e.GetRight()
					return erase(Return(a))
				},
				next: returnFrame{},
			}
			var zero A
			return Eff[A]{value: zero, frames: chainFrames(m.frames, bf)}
		}
		next, ok := m.value.GetLeft()
		if !ok {
			a, _ := m.value.GetRight()
			return Return(a)
		}
		s = next
	}
}

// WhileM repeatedly runs action until it yields false.
// The action is re-evaluated from scratch on every iteration; the
// false-yielding run is the last invocation. No result value is
// produced beyond the repetition of the effect.
func WhileM(action Eff[bool]) Eff[Void] {
	return LoopM(func(Void) Eff[Either[Void, Void]] {
		return Map(action, func(again bool) Either[Void, Void] {
			if again {
				return Continue[Void, Void](Void{})
			}
			return Finish[Void](Void{})
		})
	}, Void{})
}
