package descriptor

import "strings"

// Render returns the type as it must be spelled in C# source.
// Generic types become Base<Arg1, Arg2>, with arguments rendered
// recursively; other types render as their full name. Nested type
// separators ("Outer+Inner") are written with a dot.
func (t Type) Render() string {
	var sb strings.Builder

	t.render(&sb)

	return sb.String()
}

func (t Type) render(sb *strings.Builder) {
	if !t.Generic {
		sb.WriteString(sourceName(t.FullName()))

		return
	}

	sb.WriteString(sourceName(t.BaseName()))
	sb.WriteByte('<')

	for i, arg := range t.Args {
		if i > 0 {
			sb.WriteString(", ")
		}

		arg.render(sb)
	}

	sb.WriteByte('>')
}

func sourceName(name string) string {
	return strings.ReplaceAll(name, "+", ".")
}
