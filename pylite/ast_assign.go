package pylite

// Assignment binds Name to the value of Rhs in the current scope,
// creating the binding if this is its first mention.
type Assignment struct {
	Name string
	Rhs  Node
}

func (n *Assignment) Execute(env *Closure, ctx Context) (Outcome, error) {
	out, err := n.Rhs.Execute(env, ctx)
	if err != nil {
		return Outcome{}, err
	}
	env.Define(n.Name, out.Value)
	return value(out.Value), nil
}

// FieldAssignment evaluates ObjectPath to an instance, then sets
// FieldName on it to the value of Rhs.
type FieldAssignment struct {
	ObjectPath []string
	FieldName  string
	Rhs        Node
}

func (n *FieldAssignment) Execute(env *Closure, ctx Context) (Outcome, error) {
	objOut, err := (&VariableValue{Path: n.ObjectPath}).Execute(env, ctx)
	if err != nil {
		return Outcome{}, err
	}
	objVal := objOut.Value.Get()
	if objVal.Kind() != KindInstance {
		return Outcome{}, runtimeErrorf(errIsNotObject, "%s", n.FieldName)
	}
	rhsOut, err := n.Rhs.Execute(env, ctx)
	if err != nil {
		return Outcome{}, err
	}
	objVal.Instance().SetField(n.FieldName, rhsOut.Value)
	return value(rhsOut.Value), nil
}
