package dbin

import "testing"

func TestScopeGetSetCurrentFrame(t *testing.T) {
	s := NewScope()
	const K Key = 1
	if _, ok := s.Get(K); ok {
		t.Fatal("expected K unbound initially")
	}
	s.Set(K, Int(7))
	v, ok := s.Get(K)
	if !ok || v.Equal(Int(7)) == false {
		t.Fatalf("got (%v, %v), want (7, true)", v, ok)
	}
}

func TestScopePushCopiesThenIsolates(t *testing.T) {
	s := NewScope()
	const K Key = 1
	s.Set(K, Int(1))
	s.Push()
	got, ok := s.Get(K)
	if !ok {
		t.Fatal("pushed frame lost parent binding")
	}
	i, _ := got.Int()
	if i != 1 {
		t.Fatalf("got %d, want 1", i)
	}

	s.Set(K, Int(2))
	if err := s.Pop(); err != nil {
		t.Fatalf("Pop failed: %v", err)
	}
	after, _ := s.Get(K)
	i2, _ := after.Int()
	if i2 != 1 {
		t.Fatalf("parent frame mutated by child write: got %d, want 1", i2)
	}
}

func TestScopePopUnderflow(t *testing.T) {
	s := NewScope()
	if err := s.Pop(); err != ErrScopeUnderflow {
		t.Fatalf("got %v, want ErrScopeUnderflow", err)
	}
}

func TestScopeDepth(t *testing.T) {
	s := NewScope()
	if s.Depth() != 1 {
		t.Fatalf("got %d, want 1", s.Depth())
	}
	s.Push()
	s.Push()
	if s.Depth() != 3 {
		t.Fatalf("got %d, want 3", s.Depth())
	}
	s.Pop()
	if s.Depth() != 2 {
		t.Fatalf("got %d, want 2", s.Depth())
	}
}
