// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kontrol

// The error effect. Fail aborts a computation; RunEither interprets the
// abort as a Left. The combinators in this package never catch failures
// themselves: an evaluated Fail propagates through every enclosing
// combinator, and a Fail skipped by short-circuiting is never evaluated
// at all.

// Throw is the effect operation for raising an error.
// A computation suspended on Throw never resumes: the error handler
// short-circuits the evaluation, so the frames after the throw are
// discarded unevaluated.
type Throw[E any] struct{ Err E }

// DispatchError handles Throw in error handler dispatch.
// Sets the error in the context and returns (struct{}{}, true); the
// handler inspects ctx.HasErr to short-circuit.
func (o Throw[E]) DispatchError(ctx *ErrorContext[E]) (Resumed, bool) {
	ctx.Err = o.Err
	ctx.HasErr = true
	return struct{}{}, true
}

// Catch is the effect operation for handling errors.
// Perform(Catch[E, A]{Body: m, Recover: h}) runs m, recovering from a
// failure with h. Effects other than the error effect inside the body
// are not handled.
type Catch[E, A any] struct {
	Body    Eff[A]
	Recover func(E) Eff[A]
}

func (Catch[E, A]) OpResult() A { panic("phantom") }

// DispatchError handles Catch in error handler dispatch.
// Runs the body with an error-only handler internally; a failure from
// the recovery computation is re-raised in the outer context.
func (o Catch[E, A]) DispatchError(ctx *ErrorContext[E]) (Resumed, bool) {
	body := RunEither[E](o.Body)
	e, failed := body.GetLeft()
	if !failed {
		v, _ := body.GetRight()
		return v, true
	}
	recovered := RunEither[E](o.Recover(e))
	if re, failed := recovered.GetLeft(); failed {
		ctx.Err = re
		ctx.HasErr = true
		return struct{}{}, true
	}
	v, _ := recovered.GetRight()
	return v, true
}

// Fail creates a computation that aborts with the given error.
// Constructs the effect frame directly because Throw[E] carries no
// result type — the computation never resumes, so A is free.
func Fail[E, A any](err E) Eff[A] {
	var zero A
	return Eff[A]{
		value:  zero,
		frames: &effectFrame{op: Throw[E]{Err: err}, next: returnFrame{}},
	}
}

// CatchM wraps a computation with an error handler.
func CatchM[E, A any](body Eff[A], rec func(E) Eff[A]) Eff[A] {
	return Perform(Catch[E, A]{Body: body, Recover: rec})
}

// ErrorContext holds the state needed for error effect dispatch.
type ErrorContext[E any] struct {
	Err    E
	HasErr bool
}

// errorHandler implements Handler for error-capable evaluation.
type errorHandler[E, A any] struct {
	ctx *ErrorContext[E]
}

// Dispatch implements Handler for error handling.
// Dispatches via structural interface assertion, then checks ctx.HasErr
// to determine whether to short-circuit with Left.
func (h *errorHandler[E, A]) Dispatch(op Operation) (Resumed, bool) {
	if eop, ok := op.(interface {
		DispatchError(ctx *ErrorContext[E]) (Resumed, bool)
	}); ok {
		v, _ := eop.DispatchError(h.ctx)
		if h.ctx.HasErr {
			return Left[E, A](h.ctx.Err), false
		}
		return v, true
	}
	unhandledEffect("RunEither")
	return nil, false
}

// RunEither evaluates a computation that may fail, returning Either.
// A successful run yields Right; the first evaluated [Fail] aborts the
// remaining frames and yields Left with its error. Handles Throw and
// Catch; any other effect operation panics.
func RunEither[E, A any](m Eff[A]) Either[E, A] {
	wrapped := Map(m, func(a A) Either[E, A] { return Right[E, A](a) })
	var ctx ErrorContext[E]
	h := &errorHandler[E, A]{ctx: &ctx}
	return Handle(wrapped, h)
}
