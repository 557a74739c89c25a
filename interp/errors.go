package interp

import (
	"errors"
	"fmt"

	"github.com/bshepherdson/mal/printer"
	"github.com/bshepherdson/mal/types"
)

// Thrown carries a value raised by the throw builtin. It is the only error
// whose payload is a mal value.
type Thrown struct {
	Value types.Data
}

func (t *Thrown) Error() string {
	return "uncaught exception: " + printer.PrintStr(t.Value, true)
}

// Describe renders err the way the REPL reports it.
func Describe(err error) string {
	var thrown *Thrown
	if errors.As(err, &thrown) {
		return thrown.Error()
	}

	var e *types.Error
	if errors.As(err, &e) {
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	}
	return err.Error()
}
