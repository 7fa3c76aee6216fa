// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kontrol_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/kontrol"
)

// countingPred wraps a pure predicate, recording every element it is
// evaluated on. Predicates are invoked lazily, so the record shows
// exactly where a short-circuiting combinator stopped.
func countingPred[A any](p func(A) bool, seen *[]A) func(A) kontrol.Eff[bool] {
	return func(x A) kontrol.Eff[bool] {
		*seen = append(*seen, x)
		return kontrol.Return(p(x))
	}
}

func isEven(n int) bool { return n%2 == 0 }

func TestAnyMStopsAtFirstMatch(t *testing.T) {
	var seen []int
	got := kontrol.RunPure(kontrol.AnyM(countingPred(isEven, &seen), []int{1, 3, 5, 6, 7}))
	require.True(t, got)
	require.Equal(t, []int{1, 3, 5, 6}, seen)
}

func TestAnyMNoMatchEvaluatesAll(t *testing.T) {
	var seen []int
	got := kontrol.RunPure(kontrol.AnyM(countingPred(isEven, &seen), []int{1, 3, 5}))
	require.False(t, got)
	require.Equal(t, []int{1, 3, 5}, seen)
}

func TestAnyMEmpty(t *testing.T) {
	require.False(t, kontrol.RunPure(kontrol.AnyM(countingPred(isEven, nil), nil)))
}

func TestAllMStopsAtFirstMismatch(t *testing.T) {
	var seen []int
	got := kontrol.RunPure(kontrol.AllM(countingPred(isEven, &seen), []int{2, 4, 5, 6}))
	require.False(t, got)
	require.Equal(t, []int{2, 4, 5}, seen)
}

func TestAllMEmpty(t *testing.T) {
	require.True(t, kontrol.RunPure(kontrol.AllM(countingPred(isEven, nil), nil)))
}

func TestAllMAllMatch(t *testing.T) {
	var seen []int
	got := kontrol.RunPure(kontrol.AllM(countingPred(isEven, &seen), []int{2, 4, 6}))
	require.True(t, got)
	require.Equal(t, []int{2, 4, 6}, seen)
}

func TestOrMShortCircuitSkipsFailure(t *testing.T) {
	m := kontrol.OrM(kontrol.Return(true), kontrol.Fail[string, bool]("unreached"))
	v, ok := kontrol.RunEither[string](m).GetRight()
	require.True(t, ok)
	require.True(t, v)
}

func TestOrMEvaluatedFailurePropagates(t *testing.T) {
	m := kontrol.OrM(kontrol.Return(false), kontrol.Fail[string, bool]("boom"))
	e, ok := kontrol.RunEither[string](m).GetLeft()
	require.True(t, ok)
	require.Equal(t, "boom", e)
}

func TestOrMSecondResult(t *testing.T) {
	require.True(t, kontrol.RunPure(kontrol.OrM(kontrol.Return(false), kontrol.Return(true))))
	require.False(t, kontrol.RunPure(kontrol.OrM(kontrol.Return(false), kontrol.Return(false))))
}

func TestOrMSkipsLaterActions(t *testing.T) {
	m := kontrol.OrM(act("a", false), act("b", true), act("c", true))
	got, fired := runProbed(t, m)
	require.True(t, got)
	require.Equal(t, []string{"a", "b"}, fired)
}

func TestAndMShortCircuitSkipsFailure(t *testing.T) {
	m := kontrol.AndM(kontrol.Return(false), kontrol.Fail[string, bool]("unreached"))
	v, ok := kontrol.RunEither[string](m).GetRight()
	require.True(t, ok)
	require.False(t, v)
}

func TestAndMSecondResult(t *testing.T) {
	require.True(t, kontrol.RunPure(kontrol.AndM(kontrol.Return(true), kontrol.Return(true))))
	require.False(t, kontrol.RunPure(kontrol.AndM(kontrol.Return(true), kontrol.Return(false))))
}

func TestOrMAndMEmpty(t *testing.T) {
	require.False(t, kontrol.RunPure(kontrol.OrM()))
	require.True(t, kontrol.RunPure(kontrol.AndM()))
}

func TestAnyMFailurePropagates(t *testing.T) {
	p := func(n int) kontrol.Eff[bool] {
		if n == 3 {
			return kontrol.Fail[string, bool]("bad element")
		}
		return kontrol.Return(false)
	}
	got := kontrol.RunEither[string](kontrol.AnyM(p, []int{1, 2, 3, 4}))
	e, ok := got.GetLeft()
	require.True(t, ok)
	require.Equal(t, "bad element", e)
}
