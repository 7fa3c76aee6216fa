// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kontrol

// eval is the iterative evaluator for frame chains. It processes frames
// in a loop, so stack depth stays constant regardless of chain length or
// loop iteration count — recursion happens in the data, not on the Go
// stack.
//
// When an effectFrame is reached, the operation is dispatched to the
// handler. The handler returns (resumeValue, true) to continue, or
// (finalResult, false) to short-circuit the whole evaluation.
func eval[H Handler[H, R], R any](current any, f frame, h H) R {
	for {
		head := f
		tail := frame(returnFrame{})
		if cf, ok := head.(*chainedFrame); ok {
			if nested, ok := cf.head.(*chainedFrame); ok {
				// Reassociate left-nested chains before processing.
				f = &chainedFrame{
					head: nested.head,
					tail: chainFrames(nested.tail, cf.tail),
				}
				continue
			}
			head, tail = cf.head, cf.tail
		}

		switch fr := head.(type) {
		case nil, returnFrame:
			if completed(tail) {
				return current.(R)
			}
			f = tail
		case *bindFrame:
			next := fr.fn(current)
			current = next.value
			f = chainFrames(chainFrames(next.frames, fr.next), tail)
		case *mapFrame:
			current = fr.fn(current)
			f = chainFrames(fr.next, tail)
		case *thenFrame:
			current = fr.second.value
			f = chainFrames(chainFrames(fr.second.frames, fr.next), tail)
		case *effectFrame:
			v, resume := h.Dispatch(fr.op)
			if !resume {
				return v.(R)
			}
			current = v
			f = chainFrames(fr.next, tail)
		default:
			panic("kontrol: unknown frame type in chain")
		}
	}
}

// pureHandler is the sentinel handler for RunPure.
// Its Dispatch method unconditionally panics on any effect operation.
type pureHandler[R any] struct{}

func (pureHandler[R]) Dispatch(Operation) (Resumed, bool) {
	panic("kontrol: effect performed in pure computation - use Handle")
}

// RunPure evaluates a computation containing no effect operations and
// returns its result. Frames are processed iteratively, so deeply nested
// binds and long loops do not grow the stack.
//
// Panics if the computation performs an effect. Use [Handle] or
// [RunEither] for computations with effects.
func RunPure[A any](m Eff[A]) A {
	return eval[pureHandler[A], A](m.value, m.frames, pureHandler[A]{})
}

// Handle evaluates a computation with an F-bounded effect handler.
// The handler intercepts effect operations and determines how to resume.
//
// Example:
//
//	result := Handle(computation, HandleFunc[int](func(op Operation) (Resumed, bool) {
//	    switch op.(type) {
//	    case Ask[int]:
//	        return 42, true
//	    default:
//	        panic("unhandled effect")
//	    }
//	}))
func Handle[H Handler[H, R], R any](m Eff[R], h H) R {
	return eval[H, R](m.value, m.frames, h)
}
