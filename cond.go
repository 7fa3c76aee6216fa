// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kontrol

// Effectful conditionals. IfM is the primitive: it sequences the
// condition, then exactly one branch. The unselected branch is deferred
// frame data that is never evaluated, so its effects never fire and its
// failures never surface.

// IfM evaluates cond first, then sequences exactly one of then or els
// based on the boolean result. The other branch is never evaluated.
func IfM[A any](cond Eff[bool], then, els Eff[A]) Eff[A] {
	return Bind(cond, func(b bool) Eff[A] {
		if b {
			return then
		}
		return els
	})
}

// WhenM runs action only if cond yields true; otherwise it is a no-op.
func WhenM(cond Eff[bool], action Eff[Void]) Eff[Void] {
	return IfM(cond, action, Noop())
}

// UnlessM runs action only if cond yields false; otherwise it is a no-op.
func UnlessM(cond Eff[bool], action Eff[Void]) Eff[Void] {
	return IfM(cond, Noop(), action)
}

// NotM negates the result of a boolean computation.
// The condition's effects are evaluated exactly once.
func NotM(cond Eff[bool]) Eff[bool] {
	return Map(cond, func(b bool) bool { return !b })
}

// WhenJust runs f on the inner value if o is present; otherwise it is a
// no-op.
func WhenJust[A any](o Option[A], f func(A) Eff[Void]) Eff[Void] {
	if v, ok := o.Get(); ok {
		return f(v)
	}
	return Noop()
}
