package pylite

// CompareOp identifies which of the six comparison operators a
// Comparison node applies.
type CompareOp int

const (
	OpEq CompareOp = iota
	OpNotEq
	OpLess
	OpGreater
	OpLessOrEq
	OpGreaterOrEq
)

// Comparison evaluates Left and Right, then applies Op.
type Comparison struct {
	Op          CompareOp
	Left, Right Node
}

func (n *Comparison) Execute(env *Closure, ctx Context) (Outcome, error) {
	lhs, err := n.Left.Execute(env, ctx)
	if err != nil {
		return Outcome{}, err
	}
	rhs, err := n.Right.Execute(env, ctx)
	if err != nil {
		return Outcome{}, err
	}
	a, b := lhs.Value.Get(), rhs.Value.Get()

	var result bool
	switch n.Op {
	case OpEq:
		result, err = Equal(a, b, ctx)
	case OpNotEq:
		result, err = NotEqual(a, b, ctx)
	case OpLess:
		result, err = Less(a, b, ctx)
	case OpGreater:
		result, err = Greater(a, b, ctx)
	case OpLessOrEq:
		result, err = LessOrEqual(a, b, ctx)
	case OpGreaterOrEq:
		result, err = GreaterOrEqual(a, b, ctx)
	}
	if err != nil {
		return Outcome{}, err
	}
	return value(Own(BoolValue(result))), nil
}

// Or evaluates Left; if it is truthy, Right is never evaluated and the
// result is Bool(true). Otherwise Right is evaluated and the result is
// Bool(is_true(right)) — the operand itself is never returned, only its
// truthiness.
type Or struct {
	Left, Right Node
}

func (n *Or) Execute(env *Closure, ctx Context) (Outcome, error) {
	lhs, err := n.Left.Execute(env, ctx)
	if err != nil {
		return Outcome{}, err
	}
	if IsTrue(lhs.Value.Get()) {
		return value(Own(BoolValue(true))), nil
	}
	rhs, err := n.Right.Execute(env, ctx)
	if err != nil {
		return Outcome{}, err
	}
	return value(Own(BoolValue(IsTrue(rhs.Value.Get())))), nil
}

// And evaluates Left; if it is falsy, Right is never evaluated and the
// result is Bool(false). Otherwise Right is evaluated and the result is
// Bool(is_true(right)).
type And struct {
	Left, Right Node
}

func (n *And) Execute(env *Closure, ctx Context) (Outcome, error) {
	lhs, err := n.Left.Execute(env, ctx)
	if err != nil {
		return Outcome{}, err
	}
	if !IsTrue(lhs.Value.Get()) {
		return value(Own(BoolValue(false))), nil
	}
	rhs, err := n.Right.Execute(env, ctx)
	if err != nil {
		return Outcome{}, err
	}
	return value(Own(BoolValue(IsTrue(rhs.Value.Get())))), nil
}

// Not negates the truthiness of Operand, always producing a Bool.
type Not struct {
	Operand Node
}

func (n *Not) Execute(env *Closure, ctx Context) (Outcome, error) {
	out, err := n.Operand.Execute(env, ctx)
	if err != nil {
		return Outcome{}, err
	}
	return value(Own(BoolValue(!IsTrue(out.Value.Get())))), nil
}
