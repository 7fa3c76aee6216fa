// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kontrol

// Effectful search over ordered elements. Like the boolean combinators,
// search stops at the first determining element and never evaluates
// effects past it.

// FindM yields the first element, in input order, for which the
// predicate yields true, wrapped as present. Yields absent if no element
// matches. The predicate is not evaluated on elements after the match.
func FindM[A any](p func(A) Eff[bool], xs []A) Eff[Option[A]] {
	return LoopM(func(i int) Eff[Either[int, Option[A]]] {
		if i == len(xs) {
			return Return(Finish[int](None[A]()))
		}
		x := xs[i]
		return Map(p(x), func(ok bool) Either[int, Option[A]] {
			if ok {
				return Finish[int](Some(x))
			}
			return Continue[int, Option[A]](i + 1)
		})
	}, 0)
}

// FirstJustM applies f to elements strictly in order and yields the
// first present result. Yields absent if every element yields absent.
// f is not evaluated on elements after the first present result.
func FirstJustM[A, B any](f func(A) Eff[Option[B]], xs []A) Eff[Option[B]] {
	return LoopM(func(i int) Eff[Either[int, Option[B]]] {
		if i == len(xs) {
			return Return(Finish[int](None[B]()))
		}
		return Map(f(xs[i]), func(o Option[B]) Either[int, Option[B]] {
			if o.IsSome() {
				return Finish[int](o)
			}
			return Continue[int, Option[B]](i + 1)
		})
	}, 0)
}
