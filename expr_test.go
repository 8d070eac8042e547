package dbin

import "testing"

func TestExprLit(t *testing.T) {
	s := NewScope()
	v, err := Lit(Int(5)).Eval(s)
	if err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	i, _ := v.Int()
	if i != 5 {
		t.Fatalf("got %d, want 5", i)
	}
}

func TestExprVarUnbound(t *testing.T) {
	s := NewScope()
	_, err := Var(Key(42)).Eval(s)
	if err == nil {
		t.Fatal("expected error for unbound variable")
	}
	pe := err.(*ParseError)
	if pe.Kind != KindUnbound {
		t.Fatalf("got Kind %s, want Unbound", pe.Kind)
	}
}

func TestExprAddFlattensNested(t *testing.T) {
	e := Add(Lit(Int(1)), Add(Lit(Int(2)), Lit(Int(3))))
	s := NewScope()
	v, err := e.Eval(s)
	if err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	i, _ := v.Int()
	if i != 6 {
		t.Fatalf("got %d, want 6", i)
	}
}

func TestExprAddRejectsNonInt(t *testing.T) {
	e := Add(Lit(Int(1)), Lit(String("x")))
	_, err := e.Eval(NewScope())
	if err == nil {
		t.Fatal("expected TypeError")
	}
	pe := err.(*ParseError)
	if pe.Kind != KindTypeError {
		t.Fatalf("got Kind %s, want TypeError", pe.Kind)
	}
}

func TestExprMethodAddDelegates(t *testing.T) {
	e := Lit(Int(2)).Add(Lit(Int(3)))
	v, err := e.Eval(NewScope())
	if err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	i, _ := v.Int()
	if i != 5 {
		t.Fatalf("got %d, want 5", i)
	}
}

func TestExprOfClosure(t *testing.T) {
	e := Of(func(s *Scope) (Value, error) { return Int(99), nil })
	v, err := e.Eval(NewScope())
	if err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	i, _ := v.Int()
	if i != 99 {
		t.Fatalf("got %d, want 99", i)
	}
}
