// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package kontrol provides generic control-flow combinators over
// deferred effectful computations.
//
// The core type [Eff] represents a computation that produces a value and
// may perform effects. An Eff is pure data — a chain of continuation
// frames — and runs nothing until evaluated. Combinators sequence Effs
// according to their contracts and return a new Eff that the caller
// evaluates with [RunPure], [Handle], or [RunEither].
//
// # Design Philosophy
//
// kontrol provides:
//   - A minimal but complete effect abstraction: pure injection,
//     sequencing, and failure, with all other effects supplied by the
//     caller through [Perform] and [Handler]
//   - Strict left-to-right sequencing with short-circuiting by
//     construction: a computation that is skipped is never evaluated,
//     so its effects never fire and its failures never surface
//   - Iterative evaluation: frame chains are processed in a loop, so
//     deeply nested binds and unbounded [LoopM]/[WhileM] iterations run
//     in constant stack space
//
// # Core Operations
//
// Minimal monad operations:
//
//   - [Return]: Lift a pure value into a computation
//   - [Bind]: Sequence two computations
//
// Derived operations:
//
//   - [Map]: Apply a pure function to the result
//   - [Then]: Sequence, discarding the first result
//   - [Unit]: Discard the result, keeping the effects
//
// Execution:
//
//   - [RunPure]: Evaluate an effect-free computation
//   - [Handle]: Evaluate with a caller-supplied effect handler
//   - [RunEither]: Evaluate a failure-capable computation to an [Either]
//
// # Combinators
//
// Conditionals, built on [IfM]:
//
//   - [IfM]: Evaluate the condition, then exactly one branch
//   - [WhenM], [UnlessM]: Conditional effect or no-op
//   - [NotM]: Effectful negation
//   - [WhenJust]: Run an action on a present [Option] value
//
// Boolean logic and search, short-circuiting left to right:
//
//   - [OrM], [AndM]: Variadic short-circuit or/and over boolean actions
//   - [AnyM], [AllM]: Short-circuit predicate over elements
//   - [FindM]: First matching element, as an [Option]
//   - [FirstJustM]: First present result, as an [Option]
//
// List transforms, order-preserving and all-or-nothing on failure:
//
//   - [PartitionM]: Split elements by an effectful predicate
//   - [ConcatMapM]: Flatten per-element slices into one
//   - [MapMaybeM]: Collect present per-element results
//
// Loops, stack-safe regardless of iteration count:
//
//   - [LoopM]: Seed-threading loop with [Continue]/[Finish] tags
//   - [WhileM]: Repeat a boolean action until it yields false
//
// # Failure
//
// [Fail] aborts a computation with an error; [RunEither] interprets the
// abort as a Left. Combinators propagate failures from every effect they
// actually evaluate and never catch them. Short-circuited computations
// are never evaluated, so a failing action behind a determining one
// cannot fail the call:
//
//	m := OrM(Return(true), Fail[string, bool]("unreached"))
//	RunEither[string](m) // Right(true)
//
// # Custom Effects
//
// The combinators are effect-agnostic. Callers define an operation type
// satisfying [Op] (usually by embedding [Phantom]), inject it with
// [Perform], and interpret it with a [Handler] or [HandleFunc]:
//
//	type Emit struct {
//	    kontrol.Phantom[kontrol.Void]
//	    Line string
//	}
//
//	logged := kontrol.Bind(kontrol.Perform(Emit{Line: "start"}), ...)
package kontrol
