package interp

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func writeScript(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.mal")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestArgvDefaultsToEmptyList(t *testing.T) {
	in, _ := newInterp(t)
	if got := mustRep(t, in, "*ARGV*"); got != "()" {
		t.Fatalf("*ARGV* = %s", got)
	}

	in.SetArgv([]string{"a", "b c"})
	if got := mustRep(t, in, "*ARGV*"); got != `("a" "b c")` {
		t.Fatalf("*ARGV* = %s", got)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeScript(t, `
(def! inc (fn* (x) (+ x 1)))
(def! loaded (inc 41))
; trailing comment without newline`)

	in, out := newInterp(t)
	if err := in.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %s", Describe(err))
	}
	if got := mustRep(t, in, "loaded"); got != "42" {
		t.Fatalf("loaded = %s", got)
	}
	if out.Len() != 0 {
		t.Fatalf("load printed %q", out.String())
	}

	if got := mustRep(t, in, `(load-file "`+path+`")`); got != "nil" {
		t.Fatalf("load-file returned %s", got)
	}
}

func TestLoadFileErrors(t *testing.T) {
	in, _ := newInterp(t)

	err := in.LoadFile(filepath.Join(t.TempDir(), "missing.mal"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("want fs.ErrNotExist, got %v", err)
	}

	path := writeScript(t, `(throw "boom")`)
	err = in.LoadFile(path)
	var thrown *Thrown
	if !errors.As(err, &thrown) {
		t.Fatalf("want *Thrown, got %v", err)
	}
}

func TestSlurp(t *testing.T) {
	path := writeScript(t, "line one\nline two")
	in, _ := newInterp(t)
	if got := mustRep(t, in, `(slurp "`+path+`")`); got != `"line one\nline two"` {
		t.Fatalf("slurp = %s", got)
	}
}

func TestStateSurvivesErrors(t *testing.T) {
	in, _ := newInterp(t)
	mustRep(t, in, "(def! kept 1)")
	if _, err := in.Rep("(undefined)"); err == nil {
		t.Fatal("expected an error")
	}
	if _, err := in.Rep("(1 2"); err == nil {
		t.Fatal("expected a parse error")
	}
	if got := mustRep(t, in, "kept"); got != "1" {
		t.Fatalf("kept = %s", got)
	}
}
