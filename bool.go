// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kontrol

// Short-circuit boolean combinators. Evaluation is strictly left to
// right and stops the moment the result is determined: actions and
// predicate calls past that point are never evaluated, so a failing
// action behind a determining one cannot fail the whole computation.

// AnyM evaluates the predicate on elements left to right, yielding true
// on the first element whose predicate yields true. Yields false after
// evaluating the predicate on every element exactly once if none match.
// Predicates after the first match are never evaluated.
func AnyM[A any](p func(A) Eff[bool], xs []A) Eff[bool] {
	return LoopM(func(i int) Eff[Either[int, bool]] {
		if i == len(xs) {
			return Return(Finish[int](false))
		}
		return Map(p(xs[i]), func(ok bool) Either[int, bool] {
			if ok {
				return Finish[int](true)
			}
			return Continue[int, bool](i + 1)
		})
	}, 0)
}

// AllM evaluates the predicate on elements left to right, yielding false
// on the first element whose predicate yields false. Yields true only if
// every element's predicate yields true.
func AllM[A any](p func(A) Eff[bool], xs []A) Eff[bool] {
	return LoopM(func(i int) Eff[Either[int, bool]] {
		if i == len(xs) {
			return Return(Finish[int](true))
		}
		return Map(p(xs[i]), func(ok bool) Either[int, bool] {
			if !ok {
				return Finish[int](false)
			}
			return Continue[int, bool](i + 1)
		})
	}, 0)
}

// OrM is the effectful or over boolean actions: it evaluates actions
// left to right and yields true at the first true result, without
// evaluating the remaining actions. With two arguments this is the
// binary short-circuit or.
func OrM(actions ...Eff[bool]) Eff[bool] {
	return AnyM(func(m Eff[bool]) Eff[bool] { return m }, actions)
}

// AndM is the effectful and over boolean actions: it evaluates actions
// left to right and yields false at the first false result, without
// evaluating the remaining actions. With two arguments this is the
// binary short-circuit and.
func AndM(actions ...Eff[bool]) Eff[bool] {
	return AllM(func(m Eff[bool]) Eff[bool] { return m }, actions)
}
