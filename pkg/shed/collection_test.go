package shed

import "testing"

func TestSafeSliceGet(t *testing.T) {
	t.Parallel()
	s := SafeSlice[int]{1, 2, 3}

	if got := s.Get(0); got != Some(1) {
		t.Fatalf("got %v", got)
	}
	if got := s.Get(2); got != Some(3) {
		t.Fatalf("got %v", got)
	}
	if got := s.Get(3); got != None[int]() {
		t.Fatalf("got %v", got)
	}
	if got := s.Get(-1); got != None[int]() {
		t.Fatalf("got %v", got)
	}
}

func TestSafeSliceFirstLast(t *testing.T) {
	t.Parallel()
	s := SafeSlice[string]{"a", "b"}
	if got := s.First(); got != Some("a") {
		t.Fatalf("got %v", got)
	}
	if got := s.Last(); got != Some("b") {
		t.Fatalf("got %v", got)
	}

	var empty SafeSlice[string]
	if got := empty.First(); got != None[string]() {
		t.Fatalf("got %v", got)
	}
	if got := empty.Last(); got != None[string]() {
		t.Fatalf("got %v", got)
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()
	m := map[string]int{"a": 1}
	if got := Lookup(m, "a"); got != Some(1) {
		t.Fatalf("got %v", got)
	}
	if got := Lookup(m, "b"); got != None[int]() {
		t.Fatalf("got %v", got)
	}
}
