package printer

import (
	"strconv"
	"strings"

	"github.com/bshepherdson/mal/types"
)

var escaper = strings.NewReplacer("\\", "\\\\", "\n", "\\n", "\"", "\\\"")

func PrintStr(di types.Data, readable bool) string {
	var b strings.Builder
	write(&b, di, readable)
	return b.String()
}

func writeSeq(b *strings.Builder, members []types.Data, open, close string, readable bool) {
	b.WriteString(open)
	for i, m := range members {
		if i > 0 {
			b.WriteByte(' ')
		}
		write(b, m, readable)
	}
	b.WriteString(close)
}

func write(b *strings.Builder, di types.Data, readable bool) {
	switch d := di.(type) {
	case *types.DList:
		writeSeq(b, d.Members, "(", ")", readable)

	case *types.DVector:
		writeSeq(b, d.Members, "[", "]", readable)

	case *types.DHashMap:
		b.WriteByte('{')
		first := true
		d.Each(func(k, v types.Data) error {
			if !first {
				b.WriteByte(' ')
			}
			first = false
			write(b, k, readable)
			b.WriteByte(' ')
			write(b, v, readable)
			return nil
		})
		b.WriteByte('}')

	case types.DString:
		if readable {
			b.WriteByte('"')
			b.WriteString(escaper.Replace(d.Str))
			b.WriteByte('"')
		} else {
			b.WriteString(d.Str)
		}

	case types.DKeyword:
		b.WriteByte(':')
		b.WriteString(d.Name)

	case types.DNumber:
		b.WriteString(strconv.FormatInt(d.Num, 10))

	case types.DSymbol:
		b.WriteString(d.Name)

	case types.DSpecial:
		switch d {
		case types.Nil:
			b.WriteString("nil")
		case types.True:
			b.WriteString("true")
		default:
			b.WriteString("false")
		}

	case *types.DAtom:
		b.WriteString("(atom ")
		write(b, d.Ref, readable)
		b.WriteByte(')')

	case *types.Closure:
		if d.IsMacro {
			b.WriteString("#<macro>")
		} else {
			b.WriteString("#<function>")
		}

	case *types.Native:
		b.WriteString("#<function>")

	default:
		panic("Unknown Data type")
	}
}
