package interp

import (
	"fmt"
	"io"

	"github.com/bshepherdson/mal/printer"
	"github.com/bshepherdson/mal/reader"
	"github.com/bshepherdson/mal/types"
)

// Interpreter owns the top-level environment every form is evaluated in.
type Interpreter struct {
	Env *types.Env
	out io.Writer
}

// Functions defined in mal itself, evaluated once at startup.
var nsMal = []string{
	"(def! not (fn* (a) (if a false true)))",
	"(def! load-file (fn* (f) (eval (read-string (str \"(do \" (slurp f) \"\nnil)\")))))",
	"(defmacro! cond (fn* (& xs) (if (> (count xs) 0) (list 'if (first xs) (if (> (count xs) 1) (nth xs 1) (throw \"odd number of forms to cond\")) (cons 'cond (rest (rest xs)))))))",
	"(defmacro! or (fn* (& xs) (if (empty? xs) nil (if (= 1 (count xs)) (first xs) `(let* (or_inner ~(first xs)) (if or_inner or_inner (or ~@(rest xs))))))))",
}

// New builds an interpreter whose prn and println write to out.
func New(out io.Writer) (*Interpreter, error) {
	in := &Interpreter{
		Env: types.NewEnv(nil, nil, nil),
		out: out,
	}

	for name, fn := range in.namespace() {
		in.Env.Set(name, &types.Native{Name: name, Fn: fn})
	}
	in.SetArgv(nil)

	for _, src := range nsMal {
		if _, err := in.Rep(src); err != nil {
			return nil, fmt.Errorf("bootstrap %q: %w", src, err)
		}
	}
	return in, nil
}

// namespace is ns plus the builtins that need the interpreter.
func (in *Interpreter) namespace() map[string]types.NativeFunc {
	m := make(map[string]types.NativeFunc, len(ns)+3)
	for k, v := range ns {
		m[k] = v
	}
	m["eval"] = in.evalFn
	m["prn"] = in.prn
	m["println"] = in.println
	return m
}

// SetArgv binds *ARGV* to args as a list of strings.
func (in *Interpreter) SetArgv(args []string) {
	argv := make([]types.Data, 0, len(args))
	for _, a := range args {
		argv = append(argv, types.Str(a))
	}
	in.Env.Set("*ARGV*", types.List(argv...))
}

func (in *Interpreter) Read(raw string) (types.Data, error) {
	return reader.ReadStr(raw)
}

func (in *Interpreter) Eval(ast types.Data) (types.Data, error) {
	return Eval(ast, in.Env)
}

func (in *Interpreter) Print(form types.Data) string {
	return printer.PrintStr(form, true)
}

// Rep reads, evaluates and prints one form.
func (in *Interpreter) Rep(input string) (string, error) {
	form, err := in.Read(input)
	if err != nil {
		return "", err
	}

	evald, err := in.Eval(form)
	if err != nil {
		return "", err
	}
	return in.Print(evald), nil
}

// LoadFile evaluates every form in the file at path.
func (in *Interpreter) LoadFile(path string) error {
	_, err := apply(in.Env.Find("load-file"), []types.Data{types.Str(path)})
	return err
}

// eval always uses the top-level environment, whatever the caller's scope.
func (in *Interpreter) evalFn(args []types.Data) (types.Data, error) {
	if err := argc("eval", args, 1); err != nil {
		return nil, err
	}
	return Eval(args[0], in.Env)
}

func (in *Interpreter) prn(args []types.Data) (types.Data, error) {
	fmt.Fprintln(in.out, printList(args, true, " "))
	return types.Nil, nil
}

func (in *Interpreter) println(args []types.Data) (types.Data, error) {
	fmt.Fprintln(in.out, printList(args, false, " "))
	return types.Nil, nil
}
