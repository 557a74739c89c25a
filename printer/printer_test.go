package printer

import (
	"testing"

	"github.com/bshepherdson/mal/reader"
	"github.com/bshepherdson/mal/types"
)

func TestPrintStr(t *testing.T) {
	m, err := types.NewHashMap(types.Kw("b"), types.Num(2), types.Str("a"), types.Str("x"))
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		in       types.Data
		readable bool
		want     string
	}{
		{types.Num(-4), true, "-4"},
		{types.Sym("abc"), true, "abc"},
		{types.Kw("k"), true, ":k"},
		{types.Kw("k"), false, ":k"},
		{types.Nil, true, "nil"},
		{types.True, true, "true"},
		{types.False, true, "false"},
		{types.Str("a\"b\\c\nd"), true, `"a\"b\\c\nd"`},
		{types.Str("a\"b\\c\nd"), false, "a\"b\\c\nd"},
		{types.List(), true, "()"},
		{types.List(types.Num(1), types.Vector(types.Str("s"))), true, `(1 ["s"])`},
		{types.List(types.Num(1), types.Vector(types.Str("s"))), false, `(1 [s])`},
		{m, true, `{"a" "x" :b 2}`},
		{&types.DAtom{Ref: types.Num(5)}, true, "(atom 5)"},
		{&types.Closure{}, true, "#<function>"},
		{&types.Closure{IsMacro: true}, true, "#<macro>"},
		{&types.Native{Name: "+"}, true, "#<function>"},
	}

	for _, tc := range cases {
		if got := PrintStr(tc.in, tc.readable); got != tc.want {
			t.Fatalf("PrintStr(readable=%v)\nwant: %s\ngot:  %s", tc.readable, tc.want, got)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	sources := []string{
		`(1 -2 "three" :four five nil true false)`,
		`[(a b) {"k" [1 2] :j ()}]`,
		`"tab\there \"quoted\" back\\slash\nnewline"`,
		`(quote (quasiquote (unquote x)))`,
	}

	for _, src := range sources {
		v, err := reader.ReadStr(src)
		if err != nil {
			t.Fatalf("ReadStr(%q): %v", src, err)
		}
		again, err := reader.ReadStr(PrintStr(v, true))
		if err != nil {
			t.Fatalf("re-read %q: %v", PrintStr(v, true), err)
		}
		if !types.Equal(v, again) {
			t.Fatalf("round trip changed the value:\nfirst:  %s\nsecond: %s", PrintStr(v, true), PrintStr(again, true))
		}
	}
}
