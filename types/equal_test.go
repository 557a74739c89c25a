package types

import "testing"

func mustMap(t *testing.T, kvs ...Data) *DHashMap {
	t.Helper()
	m, err := NewHashMap(kvs...)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestEqual(t *testing.T) {
	a1 := &DAtom{Num(1)}
	c1 := &Closure{}

	cases := []struct {
		name string
		x, y Data
		want bool
	}{
		{"numbers", Num(3), Num(3), true},
		{"different numbers", Num(3), Num(4), false},
		{"string vs keyword", Str("a"), Kw("a"), false},
		{"symbol vs string", Sym("a"), Str("a"), false},
		{"nil", Nil, Nil, true},
		{"nil vs false", Nil, False, false},
		{"list vs vector", List(Num(1), Num(2)), Vector(Num(1), Num(2)), true},
		{"length mismatch", List(Num(1)), List(Num(1), Num(2)), false},
		{"nested", List(Vector(Str("x"))), Vector(List(Str("x"))), true},
		{"empty list vs nil", List(), Nil, false},
		{"maps", mustMap(t, Kw("a"), List(Num(1))), mustMap(t, Kw("a"), Vector(Num(1))), true},
		{"maps differ", mustMap(t, Kw("a"), Num(1)), mustMap(t, Kw("b"), Num(1)), false},
		{"same atom", a1, a1, true},
		{"distinct atoms", a1, &DAtom{Num(1)}, false},
		{"same closure", c1, c1, true},
		{"natives by name", &Native{Name: "+"}, &Native{Name: "+"}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Equal(tc.x, tc.y); got != tc.want {
				t.Fatalf("Equal = %v, want %v", got, tc.want)
			}
			if got := Equal(tc.y, tc.x); got != tc.want {
				t.Fatalf("Equal (swapped) = %v, want %v", got, tc.want)
			}
		})
	}
}
