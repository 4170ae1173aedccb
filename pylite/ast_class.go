package pylite

// MethodDecl is a parsed method body awaiting attachment to a Class at
// ClassDefinition execution time.
type MethodDecl struct {
	Name   string
	Params []string
	Body   Node
}

// ClassDefinition builds a Class from Methods, resolving ParentName (if
// non-empty) against the environment, and binds it to Name. Resolution
// happens at execution time rather than parse time because classes can
// only be looked up once their defining statement has run.
type ClassDefinition struct {
	Name       string
	ParentName string
	Methods    []MethodDecl
}

func (n *ClassDefinition) Execute(env *Closure, ctx Context) (Outcome, error) {
	var parent *Class
	if n.ParentName != "" {
		ref, ok := env.Get(n.ParentName)
		if !ok {
			return Outcome{}, runtimeErrorf(errUnknownNameVariable, "%s", n.ParentName)
		}
		parentVal := ref.Get()
		if parentVal.Kind() != KindClass {
			return Outcome{}, runtimeErrorf(errIsNotObject, "%s", n.ParentName)
		}
		parent = parentVal.Class()
	}

	cls := NewClass(n.Name, parent)
	for _, m := range n.Methods {
		if _, exists := cls.Methods[m.Name]; exists {
			continue
		}
		cls.Methods[m.Name] = &Method{Name: m.Name, Params: m.Params, Body: m.Body}
	}

	ref := Own(ClassValue(cls))
	env.Define(n.Name, ref)
	return value(ref), nil
}
