// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kontrol_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/kontrol"
)

func TestRunEitherSuccess(t *testing.T) {
	got := kontrol.RunEither[string](kontrol.Return(42))
	v, ok := got.GetRight()
	require.True(t, ok)
	require.Equal(t, 42, v)
}

func TestRunEitherFail(t *testing.T) {
	got := kontrol.RunEither[string](kontrol.Fail[string, int]("boom"))
	e, ok := got.GetLeft()
	require.True(t, ok)
	require.Equal(t, "boom", e)
}

func TestFailAbortsRemainingFrames(t *testing.T) {
	m := kontrol.Bind(kontrol.Fail[string, int]("early"), func(int) kontrol.Eff[int] {
		t.Fatal("continuation ran after Fail")
		return kontrol.Return(0)
	})
	got := kontrol.RunEither[string](m)
	e, ok := got.GetLeft()
	require.True(t, ok)
	require.Equal(t, "early", e)
}

func TestFailMidSequence(t *testing.T) {
	m := kontrol.Bind(kontrol.Return(1), func(x int) kontrol.Eff[int] {
		return kontrol.Bind(kontrol.Fail[string, int]("mid"), func(y int) kontrol.Eff[int] {
			return kontrol.Return(x + y)
		})
	})
	require.True(t, kontrol.RunEither[string](m).IsLeft())
}

func TestCatchMRecovers(t *testing.T) {
	m := kontrol.CatchM(kontrol.Fail[string, int]("caught"), func(e string) kontrol.Eff[int] {
		require.Equal(t, "caught", e)
		return kontrol.Return(7)
	})
	got := kontrol.RunEither[string](m)
	v, ok := got.GetRight()
	require.True(t, ok)
	require.Equal(t, 7, v)
}

func TestCatchMPassThrough(t *testing.T) {
	m := kontrol.CatchM(kontrol.Return(1), func(string) kontrol.Eff[int] {
		t.Fatal("recovery ran without a failure")
		return kontrol.Return(0)
	})
	v, ok := kontrol.RunEither[string](m).GetRight()
	require.True(t, ok)
	require.Equal(t, 1, v)
}

func TestCatchMRethrow(t *testing.T) {
	m := kontrol.CatchM(kontrol.Fail[string, int]("first"), func(string) kontrol.Eff[int] {
		return kontrol.Fail[string, int]("second")
	})
	e, ok := kontrol.RunEither[string](m).GetLeft()
	require.True(t, ok)
	require.Equal(t, "second", e)
}

func TestRunEitherUnhandledOperationPanics(t *testing.T) {
	require.Panics(t, func() {
		kontrol.RunEither[string](kontrol.Perform(ask{}))
	})
}

func TestEitherAccessors(t *testing.T) {
	l := kontrol.Left[string, int]("e")
	r := kontrol.Right[string](3)

	require.True(t, l.IsLeft())
	require.False(t, l.IsRight())
	require.True(t, r.IsRight())

	e, ok := l.GetLeft()
	require.True(t, ok)
	require.Equal(t, "e", e)
	_, ok = l.GetRight()
	require.False(t, ok)

	v, ok := r.GetRight()
	require.True(t, ok)
	require.Equal(t, 3, v)
	_, ok = r.GetLeft()
	require.False(t, ok)
}

func TestMatchEither(t *testing.T) {
	onLeft := func(e string) string { return "left:" + e }
	onRight := func(v int) string { return "right" }

	require.Equal(t, "left:x", kontrol.MatchEither(kontrol.Left[string, int]("x"), onLeft, onRight))
	require.Equal(t, "right", kontrol.MatchEither(kontrol.Right[string](1), onLeft, onRight))
}

func TestEitherMaps(t *testing.T) {
	double := func(x int) int { return x * 2 }

	v, _ := kontrol.MapEither(kontrol.Right[string](4), double).GetRight()
	require.Equal(t, 8, v)
	require.True(t, kontrol.MapEither(kontrol.Left[string, int]("e"), double).IsLeft())

	w, _ := kontrol.FlatMapEither(kontrol.Right[string](4), func(x int) kontrol.Either[string, int] {
		return kontrol.Right[string](x + 1)
	}).GetRight()
	require.Equal(t, 5, w)

	e, _ := kontrol.MapLeftEither(kontrol.Left[string, int]("e"), func(s string) string {
		return s + "!"
	}).GetLeft()
	require.Equal(t, "e!", e)
}
