// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dial Contributors

package object

import "strings"

// Write returns the canonical external representation of o. Dotted
// notation is used uniformly for pairs; there is no list-printing
// shortcut.
func Write(o *Object) string {
	var sb strings.Builder
	writeTo(&sb, o)
	return sb.String()
}

func writeTo(sb *strings.Builder, o *Object) {
	switch o.Kind {
	case KindBoolean:
		if o.Bool {
			sb.WriteString("#t")
		} else {
			sb.WriteString("#f")
		}
	case KindNumber:
		sb.WriteString(o.Num.String())
	case KindString:
		sb.WriteByte('"')
		sb.WriteString(o.Str)
		sb.WriteByte('"')
	case KindSymbol:
		sb.WriteString(o.Str)
	case KindChar:
		sb.WriteRune(o.Char)
	case KindNull:
		sb.WriteString("null")
	case KindKeyword:
		sb.WriteString(o.Keyword.String())
	case KindPair:
		sb.WriteByte('(')
		writeTo(sb, o.Car)
		sb.WriteString(" . ")
		writeTo(sb, o.Cdr)
		sb.WriteByte(')')
	case KindProcedure:
		if o.Proc != nil {
			sb.WriteString(o.Proc.Write())
		} else {
			sb.WriteString("proc")
		}
	case KindUnspecified:
		sb.WriteString("<unspecified>")
	default:
		sb.WriteString(o.Kind.String())
	}
}
