package pylite

import "testing"

// TestMethodDispatchLeafFirst covers property 7: if both a class and its
// parent define m, the child's definition wins.
func TestMethodDispatchLeafFirst(t *testing.T) {
	parent := NewClass("Parent", nil)
	parent.Methods["greet"] = &Method{Name: "greet", Body: &Return{Val: &StringLiteral{Val: "parent"}}}

	child := NewClass("Child", parent)
	child.Methods["greet"] = &Method{Name: "greet", Body: &Return{Val: &StringLiteral{Val: "child"}}}

	m, owner := child.GetMethod("greet")
	if m == nil {
		t.Fatal("expected to find greet")
	}
	if owner != child {
		t.Errorf("got owner %v, want child", owner.Name)
	}
}

func TestMethodDispatchInheritsFromParent(t *testing.T) {
	parent := NewClass("Parent", nil)
	parent.Methods["greet"] = &Method{Name: "greet"}
	child := NewClass("Child", parent)

	m, owner := child.GetMethod("greet")
	if m == nil {
		t.Fatal("expected to inherit greet from parent")
	}
	if owner != parent {
		t.Errorf("got owner %v, want parent", owner.Name)
	}
}

func TestMethodDispatchUnknownIsNil(t *testing.T) {
	cls := NewClass("C", nil)
	m, owner := cls.GetMethod("nope")
	if m != nil || owner != nil {
		t.Errorf("expected (nil, nil), got (%v, %v)", m, owner)
	}
}

func TestIsSubclassOf(t *testing.T) {
	a := NewClass("A", nil)
	b := NewClass("B", a)
	c := NewClass("C", b)

	if !c.IsSubclassOf(a) {
		t.Error("C should be a subclass of A through B")
	}
	if !c.IsSubclassOf(c) {
		t.Error("a class is a subclass of itself")
	}
	if a.IsSubclassOf(c) {
		t.Error("A is not a subclass of C")
	}
}

// TestInitFieldVisibility covers property 9: __init__'s side effects on
// self.fields are visible once NewInstance returns.
func TestInitFieldVisibility(t *testing.T) {
	cls := NewClass("Point", nil)
	cls.Methods["__init__"] = &Method{
		Name:   "__init__",
		Params: []string{"x"},
		Body: &MethodBody{Inner: &FieldAssignment{
			ObjectPath: []string{"self"},
			FieldName:  "x",
			Rhs:        &VariableValue{Path: []string{"x"}},
		}},
	}

	env := NewClosure()
	env.Define("Point", Own(ClassValue(cls)))

	node := &NewInstance{ClassName: "Point", Args: []Node{&NumberLiteral{Val: 9}}}
	out, err := node.Execute(env, NewStdContext(nil))
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	inst := out.Value.Get().Instance()
	fref, ok := inst.Field("x")
	if !ok {
		t.Fatal("expected field x to be set by __init__")
	}
	if fref.Get().Number() != 9 {
		t.Errorf("got x = %d, want 9", fref.Get().Number())
	}
}

func TestNewInstanceWithoutInitLeavesNoFields(t *testing.T) {
	cls := NewClass("Empty", nil)
	env := NewClosure()
	env.Define("Empty", Own(ClassValue(cls)))

	node := &NewInstance{ClassName: "Empty"}
	out, err := node.Execute(env, NewStdContext(nil))
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	inst := out.Value.Get().Instance()
	if len(inst.Fields) != 0 {
		t.Errorf("expected no fields, got %d", len(inst.Fields))
	}
}
