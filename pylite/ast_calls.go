package pylite

// MethodCall evaluates Object to an instance and invokes MethodName on
// it with the evaluated Args, walking the instance's class parent chain
// to find the method.
type MethodCall struct {
	Object     Node
	MethodName string
	Args       []Node
}

func (n *MethodCall) Execute(env *Closure, ctx Context) (Outcome, error) {
	objOut, err := n.Object.Execute(env, ctx)
	if err != nil {
		return Outcome{}, err
	}
	objVal := objOut.Value.Get()
	if objVal.Kind() != KindInstance {
		return Outcome{}, runtimeErrorf(errIsNotObject, "%s", n.MethodName)
	}
	inst := objVal.Instance()
	method, _ := inst.Class.GetMethod(n.MethodName)
	if method == nil {
		return Outcome{}, runtimeErrorf(errMethodNotImpl, "%s", n.MethodName)
	}

	args := make([]ValueRef, len(n.Args))
	for i, a := range n.Args {
		out, err := a.Execute(env, ctx)
		if err != nil {
			return Outcome{}, err
		}
		args[i] = out.Value
	}

	ref, err := callMethod(inst, method, args, ctx)
	if err != nil {
		return Outcome{}, err
	}
	return value(ref), nil
}

// NewInstance looks up ClassName in the environment, allocates an
// instance, evaluates Args, and runs __init__ on the fresh instance if
// the class defines one taking exactly len(Args) parameters; otherwise
// the instance is returned with no fields set. The evaluated arguments are shared, not
// re-evaluated per parameter, so a mutable argument passed to __init__
// is not silently duplicated.
type NewInstance struct {
	ClassName string
	Args      []Node
}

func (n *NewInstance) Execute(env *Closure, ctx Context) (Outcome, error) {
	classRef, ok := env.Get(n.ClassName)
	if !ok {
		return Outcome{}, runtimeErrorf(errUnknownNameVariable, "%s", n.ClassName)
	}
	classVal := classRef.Get()
	if classVal.Kind() != KindClass {
		return Outcome{}, runtimeErrorf(errIsNotObject, "%s", n.ClassName)
	}
	inst := allocInstance(classVal.Class())

	args := make([]ValueRef, len(n.Args))
	for i, a := range n.Args {
		out, err := a.Execute(env, ctx)
		if err != nil {
			return Outcome{}, err
		}
		args[i] = out.Value
	}

	if initMethod, _ := inst.Class.GetMethod("__init__"); initMethod != nil && len(initMethod.Params) == len(args) {
		if _, err := callMethod(inst, initMethod, args, ctx); err != nil {
			return Outcome{}, err
		}
	}

	return value(Own(InstanceValue(inst))), nil
}

