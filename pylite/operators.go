package pylite

// IsTrue reports whether v counts as true in a condition. Only three
// kinds carry their own truthiness: a nonzero Number, the Bool True,
// and a nonempty String. Everything else — None, Class, Instance — is
// false; unlike Python, a class instance is never truthy just by
// existing.
func IsTrue(v Value) bool {
	switch v.Kind() {
	case KindNumber:
		return v.Number() != 0
	case KindBool:
		return v.Bool()
	case KindString:
		return v.Str() != ""
	default:
		return false
	}
}

// callMethod invokes method on receiver with args bound to its
// parameters in order, self bound to receiver, and returns whatever the
// method's body returns (stripping the Returning flag, since a call
// boundary absorbs it).
func callMethod(receiver *Instance, method *Method, args []ValueRef, ctx Context) (ValueRef, error) {
	if len(args) != len(method.Params) {
		return NullRef, runtimeErrorf(errMethodNotImpl, "%s expects %d argument(s), got %d", method.Name, len(method.Params), len(args))
	}
	scope := NewClosure()
	scope.Define("self", Own(InstanceValue(receiver)))
	for i, p := range method.Params {
		scope.Define(p, args[i])
	}
	out, err := method.Body.Execute(scope, ctx)
	if err != nil {
		return NullRef, err
	}
	return out.Value, nil
}

// callDunder invokes name on recv's class with args, reporting whether
// the method exists at all.
func callDunder(recv *Instance, name string, args []ValueRef, ctx Context) (Value, bool, error) {
	m, _ := recv.Class.GetMethod(name)
	if m == nil {
		return None, false, nil
	}
	ref, err := callMethod(recv, m, args, ctx)
	if err != nil {
		return None, true, err
	}
	return ref.Get(), true, nil
}

// Stringify renders v as text, deferring to __str__ for instances. The
// __str__ call runs against ctx itself, so Print's use of Stringify lets
// any nested print statements reach the real output sink.
func Stringify(v Value, ctx Context) (string, error) {
	if v.Kind() != KindInstance {
		return v.String(), nil
	}
	inst := v.Instance()
	m, _ := inst.Class.GetMethod("__str__")
	if m == nil {
		return v.String(), nil
	}
	ref, err := callMethod(inst, m, nil, ctx)
	if err != nil {
		return "", err
	}
	return ref.Get().String(), nil
}

// StringifyIsolated renders v as text exactly like Stringify, except an
// instance's __str__ runs against a private buffering context so that
// any print statements inside it never reach the real output sink. Used
// by str(...), which must not have side effects of its own.
func StringifyIsolated(v Value) (string, error) {
	if v.Kind() != KindInstance {
		return v.String(), nil
	}
	inst := v.Instance()
	m, _ := inst.Class.GetMethod("__str__")
	if m == nil {
		return v.String(), nil
	}
	ref, err := callMethod(inst, m, nil, newBufferContext())
	if err != nil {
		return "", err
	}
	return ref.Get().String(), nil
}

// Equal implements == . Instances must define __eq__; comparing values
// of differing kinds, or an instance lacking __eq__, is a runtime error.
func Equal(a, b Value, ctx Context) (bool, error) {
	if a.Kind() == KindInstance {
		res, ok, err := callDunder(a.Instance(), "__eq__", []ValueRef{Own(b)}, ctx)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, runtimeErrorf(errComparing, "%s has no __eq__", a.Instance().Class.Name)
		}
		return IsTrue(res), nil
	}
	if a.Kind() != b.Kind() {
		return false, runtimeErrorf(errComparing, "cannot compare %s and %s", a.Kind(), b.Kind())
	}
	switch a.Kind() {
	case KindNone:
		return true, nil
	case KindNumber:
		return a.Number() == b.Number(), nil
	case KindBool:
		return a.Bool() == b.Bool(), nil
	case KindString:
		return a.Str() == b.Str(), nil
	case KindClass:
		return a.Class() == b.Class(), nil
	default:
		return false, nil
	}
}

// Less implements < . Instances must define __lt__; there is no
// fallback, matching the source language's stance that ordering an
// object without one is an error.
func Less(a, b Value, ctx Context) (bool, error) {
	if a.Kind() == KindInstance {
		res, ok, err := callDunder(a.Instance(), "__lt__", []ValueRef{Own(b)}, ctx)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, runtimeErrorf(errComparing, "%s has no __lt__", a.Instance().Class.Name)
		}
		return IsTrue(res), nil
	}
	if a.Kind() != b.Kind() {
		return false, runtimeErrorf(errComparing, "cannot compare %s and %s", a.Kind(), b.Kind())
	}
	switch a.Kind() {
	case KindNumber:
		return a.Number() < b.Number(), nil
	case KindString:
		return a.Str() < b.Str(), nil
	case KindBool:
		return !a.Bool() && b.Bool(), nil
	default:
		return false, runtimeErrorf(errComparing, "%s is not ordered", a.Kind())
	}
}

// NotEqual, Greater, LessOrEqual, GreaterOrEqual are all derived from
// Equal and Less, exactly as the comparison operators are in the
// source language: only __eq__ and __lt__ are ever looked up directly.
func NotEqual(a, b Value, ctx Context) (bool, error) {
	eq, err := Equal(a, b, ctx)
	if err != nil {
		return false, err
	}
	return !eq, nil
}

func LessOrEqual(a, b Value, ctx Context) (bool, error) {
	lt, err := Less(a, b, ctx)
	if err != nil {
		return false, err
	}
	if lt {
		return true, nil
	}
	return Equal(a, b, ctx)
}

func Greater(a, b Value, ctx Context) (bool, error) {
	le, err := LessOrEqual(a, b, ctx)
	if err != nil {
		return false, err
	}
	return !le, nil
}

func GreaterOrEqual(a, b Value, ctx Context) (bool, error) {
	lt, err := Less(a, b, ctx)
	if err != nil {
		return false, err
	}
	return !lt, nil
}

// Add implements + : numeric addition, string concatenation, or a
// dispatch to __add__ on an instance.
func Add(a, b Value, ctx Context) (Value, error) {
	if a.Kind() == KindInstance {
		res, ok, err := callDunder(a.Instance(), "__add__", []ValueRef{Own(b)}, ctx)
		if err != nil {
			return None, err
		}
		if ok {
			return res, nil
		}
		return None, runtimeErrorf(errMethodNotImpl, "__add__")
	}
	switch {
	case a.Kind() == KindNumber && b.Kind() == KindNumber:
		return NumberValue(a.Number() + b.Number()), nil
	case a.Kind() == KindString && b.Kind() == KindString:
		return StringValue(a.Str() + b.Str()), nil
	default:
		return None, runtimeErrorf(errInvalidArguments, "cannot add %s and %s", a.Kind(), b.Kind())
	}
}

// arithmetic implements -, *, / : Number only. Unlike Add, these never
// delegate to an instance dunder method.
func arithmetic(op string, a, b Value, fn func(x, y int64) (int64, error)) (Value, error) {
	if a.Kind() != KindNumber || b.Kind() != KindNumber {
		return None, runtimeErrorf(errInvalidArguments, "cannot %s %s and %s", op, a.Kind(), b.Kind())
	}
	result, err := fn(a.Number(), b.Number())
	if err != nil {
		return None, err
	}
	return NumberValue(result), nil
}

func Sub(a, b Value, ctx Context) (Value, error) {
	return arithmetic("subtract", a, b, func(x, y int64) (int64, error) {
		return x - y, nil
	})
}

func Mult(a, b Value, ctx Context) (Value, error) {
	return arithmetic("multiply", a, b, func(x, y int64) (int64, error) {
		return x * y, nil
	})
}

func Div(a, b Value, ctx Context) (Value, error) {
	return arithmetic("divide", a, b, func(x, y int64) (int64, error) {
		if y == 0 {
			return 0, runtimeErrorf(errDivideByZero, "")
		}
		return x / y, nil
	})
}
