// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kontrol

// Effectful list transforms. All of them evaluate their effect on each
// element strictly in input order, preserve relative input order in
// every output slice, and abort as a whole on the first evaluated
// failure — no partial result is produced.

// Partition is the result of [PartitionM]: Match holds the elements
// whose predicate yielded true, Rest the elements whose predicate
// yielded false, each in original relative order.
type Partition[A any] struct {
	Match []A
	Rest  []A
}

// PartitionM evaluates the predicate on each element left to right and
// splits the elements into those that matched and those that did not.
// Every element lands in exactly one of the two slices.
func PartitionM[A any](p func(A) Eff[bool], xs []A) Eff[Partition[A]] {
	type state struct {
		i   int
		acc Partition[A]
	}
	return LoopM(func(s state) Eff[Either[state, Partition[A]]] {
		if s.i == len(xs) {
			return Return(Finish[state](s.acc))
		}
		x := xs[s.i]
		return Map(p(x), func(ok bool) Either[state, Partition[A]] {
			acc := s.acc
			if ok {
				acc.Match = append(acc.Match, x)
			} else {
				acc.Rest = append(acc.Rest, x)
			}
			return Continue[state, Partition[A]](state{i: s.i + 1, acc: acc})
		})
	}, state{})
}

// ConcatMapM applies f to every element left to right and concatenates
// the resulting slices, in order, into one flat slice.
func ConcatMapM[A, B any](f func(A) Eff[[]B], xs []A) Eff[[]B] {
	type state struct {
		i   int
		out []B
	}
	return LoopM(func(s state) Eff[Either[state, []B]] {
		if s.i == len(xs) {
			return Return(Finish[state](s.out))
		}
		return Map(f(xs[s.i]), func(ys []B) Either[state, []B] {
			return Continue[state, []B](state{i: s.i + 1, out: append(s.out, ys...)})
		})
	}, state{})
}

// MapMaybeM applies f to every element left to right and collects the
// present results, dropping absent ones, preserving relative order.
func MapMaybeM[A, B any](f func(A) Eff[Option[B]], xs []A) Eff[[]B] {
	type state struct {
		i   int
		out []B
	}
	return LoopM(func(s state) Eff[Either[state, []B]] {
		if s.i == len(xs) {
			return Return(Finish[state](s.out))
		}
		return Map(f(xs[s.i]), func(o Option[B]) Either[state, []B] {
			out := s.out
			if v, ok := o.Get(); ok {
				out = append(out, v)
			}
			return Continue[state, []B](state{i: s.i + 1, out: out})
		})
	}, state{})
}
