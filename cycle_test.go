package sheetengine

import "testing"

func mustPos(t *testing.T, s string) Position {
	t.Helper()
	p, err := ParsePosition(s)
	if err != nil {
		t.Fatalf("ParsePosition(%q): %v", s, err)
	}
	return p
}

func TestHasCyclicDependency(t *testing.T) {
	a1, a2, a3 := mustPos(t, "A1"), mustPos(t, "A2"), mustPos(t, "A3")

	t.Run("no edges is acyclic", func(t *testing.T) {
		if hasCyclicDependency(map[Position][]Position{}, a1) {
			t.Fatal("expected no cycle")
		}
	})

	t.Run("self loop is a cycle", func(t *testing.T) {
		deps := map[Position][]Position{a1: {a1}}
		if !hasCyclicDependency(deps, a1) {
			t.Fatal("expected a cycle")
		}
	})

	t.Run("chain without a cycle", func(t *testing.T) {
		deps := map[Position][]Position{a1: {a2}, a2: {a3}}
		if hasCyclicDependency(deps, a1) {
			t.Fatal("expected no cycle")
		}
	})

	t.Run("triangle is a cycle", func(t *testing.T) {
		deps := map[Position][]Position{a1: {a2}, a2: {a3}, a3: {a1}}
		if !hasCyclicDependency(deps, a1) {
			t.Fatal("expected a cycle")
		}
	})

	t.Run("unrelated branch stays acyclic", func(t *testing.T) {
		b1 := mustPos(t, "B1")
		deps := map[Position][]Position{a1: {a2}, b1: {a1}}
		if hasCyclicDependency(deps, b1) {
			t.Fatal("expected no cycle")
		}
	})
}
