package interp

import (
	"testing"
)

func TestCoreFunctions(t *testing.T) {
	cases := []struct {
		src, want string
	}{
		// Predicates
		{"(list? (list 1 2 3))", "true"},
		{"(list? [1])", "false"},
		{"(vector? [1])", "true"},
		{"(sequential? [1])", "true"},
		{"(sequential? (list))", "true"},
		{"(sequential? {})", "false"},
		{"(map? {:a 1})", "true"},
		{"(symbol? 'a)", "true"},
		{"(keyword? :a)", "true"},
		{`(keyword? "a")`, "false"},
		{"(nil? nil)", "true"},
		{"(true? true)", "true"},
		{"(false? nil)", "false"},
		{"(atom? (atom 1))", "true"},
		{`(string? "s")`, "true"},
		{"(number? 1)", "true"},
		{"(fn? +)", "true"},
		{"(fn? cond)", "false"},

		// Sequences
		{"(empty? (list))", "true"},
		{"(empty? [1])", "false"},
		{"(empty? nil)", "true"},
		{"(count nil)", "0"},
		{"(count 7)", "0"},
		{"(count [1 2])", "2"},
		{"(cons 1 (list 2 3))", "(1 2 3)"},
		{"(cons 1 [2])", "(1 2)"},
		{"(concat (list 1) [2] (list))", "(1 2)"},
		{"(concat)", "()"},
		{"(vec (list 1 2))", "[1 2]"},
		{"(nth [1 2 3] 2)", "3"},
		{"(first nil)", "nil"},
		{"(first (list))", "nil"},
		{"(first [7 8])", "7"},
		{"(rest nil)", "()"},
		{"(rest [1 2 3])", "(2 3)"},
		{"(apply + 1 (list 2))", "3"},
		{"(apply list 1 2 [3 4])", "(1 2 3 4)"},
		{"(map (fn* (x) (* x x)) [1 2 3])", "(1 4 9)"},
		{"(vector 1 2)", "[1 2]"},

		// Equality and comparison
		{"(= (list 1 2) [1 2])", "true"},
		{"(= {:a [1]} {:a (list 1)})", "true"},
		{`(= "a" :a)`, "false"},
		{"(= nil nil)", "true"},
		{"(< 1 2)", "true"},
		{"(<= 2 2)", "true"},
		{"(> 1 2)", "false"},
		{"(>= 3 2)", "true"},

		// Strings
		{`(pr-str "a" 1 :k)`, `"\"a\" 1 :k"`},
		{`(str "a" 1 :k "b")`, `"a1:kb"`},
		{`(str)`, `""`},
		{`(read-string "(1 2)")`, "(1 2)"},
		{`(read-string ";; nothing")`, "nil"},
		{`(symbol "abc")`, "abc"},
		{`(keyword "abc")`, ":abc"},
		{`(keyword :abc)`, ":abc"},

		// Hash maps
		{`(hash-map :a 1 "b" 2)`, `{"b" 2 :a 1}`},
		{"(assoc {:a 1} :b 2)", "{:a 1 :b 2}"},
		{"(dissoc {:a 1 :b 2} :a)", "{:b 2}"},
		{"(get {:a 1} :a)", "1"},
		{"(get {:a 1} :b)", "nil"},
		{"(get nil :a)", "nil"},
		{"(contains? {:a nil} :a)", "true"},
		{"(contains? {:a 1} :b)", "false"},
		{"(keys {:b 1 :a 2})", "(:a :b)"},
		{"(vals {:b 1 :a 2})", "(2 1)"},
	}

	for _, tc := range cases {
		in, _ := newInterp(t)
		if got := mustRep(t, in, tc.src); got != tc.want {
			t.Fatalf("%s: want %s, got %s", tc.src, tc.want, got)
		}
	}
}

func TestAssocLeavesOriginal(t *testing.T) {
	in, _ := newInterp(t)
	got := mustRep(t, in,
		"(def! m {:a 1})",
		"(def! m2 (assoc m :b 2))",
		"(list (count (keys m)) (count (keys m2)))")
	if got != "(1 2)" {
		t.Fatalf("got %s", got)
	}
}

func TestAtoms(t *testing.T) {
	in, _ := newInterp(t)
	got := mustRep(t, in,
		"(def! a (atom 1))",
		"(def! b a)",
		"(swap! a + 10)",
		"(reset! b (+ @b 1))",
		"(deref a)")
	if got != "12" {
		t.Fatalf("atom shared state: %s", got)
	}

	got = mustRep(t, in,
		"(def! c (atom (list)))",
		"(swap! c (fn* (l x y) (cons x (cons y l))) 1 2)")
	if got != "(1 2)" {
		t.Fatalf("swap! with extra args: %s", got)
	}
	if got := mustRep(t, in, "c"); got != "(atom (1 2))" {
		t.Fatalf("atom printed as %s", got)
	}
}

func TestPrintOutput(t *testing.T) {
	in, out := newInterp(t)
	got := mustRep(t, in,
		`(prn "a" :b (list 1))`,
		`(println "a" :b "c\nd")`)
	if got != "nil" {
		t.Fatalf("println returned %s", got)
	}
	want := "\"a\" :b (1)\na :b c\nd\n"
	if out.String() != want {
		t.Fatalf("output\nwant: %q\ngot:  %q", want, out.String())
	}
}
