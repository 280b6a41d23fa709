package transform

import "strings"

// IndentUnit is one level of indentation in emitted TypeScript.
const IndentUnit = "  "

// Indent returns depth levels of indentation.
func Indent(depth int) string {
	return strings.Repeat(IndentUnit, depth)
}

// ArrayType renders `readonly T[]`, parenthesising T when it is a union.
func ArrayType(item string, readonly bool) string {
	if HasTopLevel(item, '|') {
		item = "(" + item + ")"
	}
	if readonly {
		return "readonly " + item + "[]"
	}
	return item + "[]"
}

// UnknownArray is the untyped array in ctx.
func UnknownArray(ctx Context, readonly bool) string {
	if ctx == Schema {
		return "z.array(z.unknown())"
	}
	return ArrayType("unknown", readonly)
}

// HasTopLevel reports whether sep occurs in text outside any brackets or
// string literals.
func HasTopLevel(text string, sep byte) bool {
	return len(SplitTopLevel(text, sep)) > 1
}

// SplitTopLevel splits text at every sep that is outside brackets and string
// literals. The `>` of an arrow `=>` does not close a bracket.
func SplitTopLevel(text string, sep byte) []string {
	var parts []string
	depth, start := 0, 0
	var quote byte
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case quote != 0:
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '(' || c == '<' || c == '[' || c == '{':
			depth++
		case c == '>' && i > 0 && text[i-1] == '=':
		case c == ')' || c == '>' || c == ']' || c == '}':
			depth--
		case c == sep && depth == 0:
			parts = append(parts, text[start:i])
			start = i + 1
		}
	}
	return append(parts, text[start:])
}
