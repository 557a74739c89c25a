package reader

import (
	"errors"
	"strconv"
	"strings"

	. "github.com/bshepherdson/mal/types"
)

// ErrNoForm is returned when the input holds only whitespace and comments.
var ErrNoForm = errors.New("no form to read")

type MalReader struct {
	tokens []string
	index  int
}

func (r *MalReader) Next() (string, bool) {
	t, ok := r.Peek()
	if !ok {
		return t, false
	}

	r.index++
	return t, true
}

func (r *MalReader) Peek() (string, bool) {
	if r.index >= len(r.tokens) {
		return "EOF", false
	}
	return r.tokens[r.index], true
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v', ',':
		return true
	}
	return false
}

// Ends a bare symbol/number/keyword run.
func isDelimiter(c byte) bool {
	if isSpace(c) {
		return true
	}
	switch c {
	case '[', ']', '{', '}', '(', ')', '\'', '"', '`', ';':
		return true
	}
	return false
}

// tokenize splits input into raw tokens. Strings are kept verbatim, quotes
// and escapes included; an unterminated string runs to the end of the input
// and is rejected by the parser.
func tokenize(input string) []string {
	t := make([]string, 0, 16)
	for pos := 0; pos < len(input); {
		c := input[pos]
		switch {
		case isSpace(c):
			pos++

		case c == ';':
			for pos < len(input) && input[pos] != '\n' {
				pos++
			}

		case c == '~' && pos+1 < len(input) && input[pos+1] == '@':
			t = append(t, "~@")
			pos += 2

		case strings.IndexByte("[]{}()'`~^@", c) >= 0:
			t = append(t, string(c))
			pos++

		case c == '"':
			end := pos + 1
			for end < len(input) && input[end] != '"' {
				if input[end] == '\\' && end+1 < len(input) {
					end++
				}
				end++
			}
			if end < len(input) {
				end++ // Include the closing quote.
			}
			t = append(t, input[pos:end])
			pos = end

		default:
			end := pos + 1
			for end < len(input) && !isDelimiter(input[end]) {
				end++
			}
			t = append(t, input[pos:end])
			pos = end
		}
	}
	return t
}

// ReadStr parses the first form in input.
func ReadStr(input string) (Data, error) {
	tokens := tokenize(input)
	if len(tokens) == 0 {
		return nil, ErrNoForm
	}

	r := &MalReader{tokens, 0}
	return ReadForm(r)
}

func ReadForm(r *MalReader) (Data, error) {
	t, ok := r.Peek()
	if !ok {
		return nil, Errorf(KindParse, "expected form, got EOF")
	}

	switch t {
	case "'":
		return nextWrapped(r, "quote")
	case "`":
		return nextWrapped(r, "quasiquote")
	case "~":
		return nextWrapped(r, "unquote")
	case "~@":
		return nextWrapped(r, "splice-unquote")
	case "@":
		return nextWrapped(r, "deref")
	case "(":
		return readSeq(r, ")", func(m []Data) (Data, error) { return &DList{Members: m}, nil })
	case "[":
		return readSeq(r, "]", func(m []Data) (Data, error) { return &DVector{Members: m}, nil })
	case "{":
		return readSeq(r, "}", func(m []Data) (Data, error) { return NewHashMap(m...) })
	case ")", "]", "}":
		return nil, Errorf(KindParse, "unexpected '%s'", t)
	default:
		return readAtom(r)
	}
}

func nextWrapped(r *MalReader, wrapper string) (Data, error) {
	r.Next()
	next, err := ReadForm(r) // Read the next form.
	if err != nil {
		return nil, err
	}

	return List(Sym(wrapper), next), nil
}

func readSeq(r *MalReader, closer string, build func([]Data) (Data, error)) (Data, error) {
	r.Next() // Skip the opener.
	ret := []Data{}
	t, ok := r.Peek()
	for ; ok && t != closer; t, ok = r.Peek() {
		f, err := ReadForm(r)
		if err != nil {
			return nil, err
		}
		ret = append(ret, f)
	}
	if !ok {
		return nil, Errorf(KindParse, "expected '%s', got EOF", closer)
	}

	r.Next() // Skip the closer.
	return build(ret)
}

func isNumber(t string) bool {
	if t[0] == '-' {
		t = t[1:]
	}
	if t == "" {
		return false
	}
	for i := 0; i < len(t); i++ {
		if t[i] < '0' || t[i] > '9' {
			return false
		}
	}
	return true
}

func readAtom(r *MalReader) (Data, error) {
	t, ok := r.Next()
	if !ok {
		return nil, Errorf(KindParse, "expected atom, got EOF")
	}

	switch {
	case t[0] == '"':
		return readString(t)
	case t[0] == ':':
		return Kw(t[1:]), nil
	case isNumber(t):
		n, err := strconv.ParseInt(t, 10, 64)
		if err != nil {
			return nil, Errorf(KindParse, "badly formatted number %q", t)
		}
		return Num(n), nil
	case t == "nil":
		return Nil, nil
	case t == "true":
		return True, nil
	case t == "false":
		return False, nil
	}
	return Sym(t), nil
}

// readString strips the quotes from a string token and resolves escapes.
func readString(t string) (Data, error) {
	var b strings.Builder
	closed := false
	for i := 1; i < len(t); i++ {
		c := t[i]
		if c == '\\' && i+1 < len(t) {
			i++
			switch t[i] {
			case 'n':
				b.WriteByte('\n')
			default:
				b.WriteByte(t[i]) // \\ and \" fall through here too.
			}
			continue
		}
		if c == '"' && i == len(t)-1 {
			closed = true
			break
		}
		b.WriteByte(c)
	}

	if !closed {
		return nil, Errorf(KindParse, "expected '\"', got EOF: missing closing quote")
	}
	return Str(b.String()), nil
}
