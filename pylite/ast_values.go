package pylite

// NumberLiteral evaluates to a fixed integer.
type NumberLiteral struct {
	Val int64
}

func (n *NumberLiteral) Execute(env *Closure, ctx Context) (Outcome, error) {
	return value(Own(NumberValue(n.Val))), nil
}

// StringLiteral evaluates to a fixed string.
type StringLiteral struct {
	Val string
}

func (n *StringLiteral) Execute(env *Closure, ctx Context) (Outcome, error) {
	return value(Own(StringValue(n.Val))), nil
}

// BoolLiteral evaluates to True or False.
type BoolLiteral struct {
	Val bool
}

func (n *BoolLiteral) Execute(env *Closure, ctx Context) (Outcome, error) {
	return value(Own(BoolValue(n.Val))), nil
}

// NoneLiteral evaluates to None.
type NoneLiteral struct{}

func (n *NoneLiteral) Execute(env *Closure, ctx Context) (Outcome, error) {
	return value(Own(None)), nil
}

// VariableValue resolves a dotted name path. A single-element path
// looks the name up in the environment chain. A longer path resolves
// the first element as a variable, then walks the remaining elements as
// field accesses on successive class instances.
type VariableValue struct {
	Path []string
}

func (n *VariableValue) Execute(env *Closure, ctx Context) (Outcome, error) {
	ref, ok := env.Get(n.Path[0])
	if !ok {
		return Outcome{}, runtimeErrorf(errUnknownNameVariable, "%s", n.Path[0])
	}
	v := ref.Get()
	for _, field := range n.Path[1:] {
		if v.Kind() != KindInstance {
			return Outcome{}, runtimeErrorf(errIsNotObject, "%s", field)
		}
		fref, ok := v.Instance().Field(field)
		if !ok {
			return Outcome{}, runtimeErrorf(errUnknownNameField, "%s", field)
		}
		ref = fref
		v = ref.Get()
	}
	return value(ref), nil
}
