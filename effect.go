// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kontrol

// The abstract effect interface. The combinators in this package are
// effect-agnostic: callers inject operations with [Perform] and supply
// the interpretation with a [Handler]. The package itself ships only the
// error effect (error.go); everything else is the caller's.

// unhandledEffect panics with a descriptive message for unmatched operations.
// Extracted as a noinline function so that Dispatch methods remain inlineable.
//
//go:noinline
func unhandledEffect(handler string) {
	panic("kontrol: unhandled effect in " + handler)
}

// Operation is the interface for effect operations in handler dispatch.
// All values passed as the op parameter to Handler.Dispatch implement this
// interface.
type Operation any

// Resumed is the interface for values flowing from a handler back into a
// suspended computation. The dynamic type must match the result type of
// the operation being resumed.
type Resumed any

// Op is the F-bounded interface for effect operations.
// Each effect family defines concrete types implementing Op with the
// appropriate result type parameter. The self-referencing constraint
// gives the compiler knowledge of both the concrete operation type and
// its result type.
//
// Example:
//
//	type Ask[E any] struct{ kontrol.Phantom[E] }
type Op[O Op[O, A], A any] interface {
	OpResult() A // phantom type marker for result
}

// Phantom is an embeddable zero-size type that provides the [Op] result
// marker. Embed Phantom[A] in an operation struct to satisfy [Op] without
// writing a manual OpResult method.
//
// Example:
//
//	type Ask[E any] struct{ kontrol.Phantom[E] }
//	// Ask[E] satisfies Op[Ask[E], E] via promoted OpResult() E
type Phantom[A any] struct{}

// OpResult implements the phantom type marker for [Op].
func (Phantom[A]) OpResult() A { panic("phantom") }

// Handler is the F-bounded interface for effect handlers.
// The self-referencing constraint H Handler[H, R] gives the compiler
// knowledge of the concrete handler type at compile time.
//
// Dispatch returns (resumeValue, true) to continue the computation, or
// (finalResult, false) to short-circuit and return immediately.
type Handler[H Handler[H, R], R any] interface {
	Dispatch(op Operation) (Resumed, bool)
}

// handlerFunc wraps a dispatch function as a concrete Handler.
type handlerFunc[R any] struct {
	f func(op Operation) (Resumed, bool)
}

func (h *handlerFunc[R]) Dispatch(op Operation) (Resumed, bool) {
	return h.f(op)
}

// HandleFunc creates a handler from a dispatch function.
// The function receives each effect operation and returns
// (resumeValue, true) to continue the computation, or
// (finalResult, false) to short-circuit.
//
// Example:
//
//	HandleFunc[int](func(op Operation) (Resumed, bool) {
//	    switch op.(type) {
//	    case Ask[int]:
//	        return 42, true
//	    default:
//	        panic("unhandled effect")
//	    }
//	})
func HandleFunc[R any](f func(op Operation) (Resumed, bool)) *handlerFunc[R] {
	return &handlerFunc[R]{f: f}
}

// Perform creates a computation that suspends on an effect operation.
// The handler receives the operation via [Handler.Dispatch] and provides
// the resume value, or short-circuits with a final result.
//
// Type inference handles calls: Perform(Get[int]{}) infers O=Get[int], A=int.
func Perform[O Op[O, A], A any](op O) Eff[A] {
	var zero A
	return Eff[A]{
		value:  zero,
		frames: &effectFrame{op: op, next: returnFrame{}},
	}
}
