package types

// Equal is mal's "=": lists and vectors compare element-wise regardless of
// which of the two they are, maps by key set and values, everything else by
// value or identity.
func Equal(x, y Data) bool {
	if xs, ok := Seq(x); ok {
		ys, ok := Seq(y)
		if !ok || len(xs) != len(ys) {
			return false
		}
		for i := range xs {
			if !Equal(xs[i], ys[i]) {
				return false
			}
		}
		return true
	}

	switch a := x.(type) {
	case *DHashMap:
		b, ok := y.(*DHashMap)
		if !ok || a.Len() != b.Len() {
			return false
		}
		for k, av := range a.entries {
			bv, ok := b.entries[k]
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true

	case *Native:
		b, ok := y.(*Native)
		return ok && a.Name == b.Name
	}

	// Scalars are comparable structs; atoms and closures compare by pointer.
	return x == y
}
