// Package reader converts the external parser's generic syntax tree
// into lispy.Value instances (§4.1).
package reader

import (
	"strconv"
	"strings"

	lispy "github.com/lispy-lang/lispy"
	"github.com/lispy-lang/lispy/parser"
)

// Read converts a single parser.Node into a lispy.Value, per §4.1's
// per-tag rules.
func Read(n *parser.Node) lispy.Value {
	switch n.Tag {
	case parser.TagNumber:
		v, err := strconv.ParseInt(n.Text, 10, 64)
		if err != nil {
			return lispy.NewErr("invalid number")
		}
		return lispy.Number(v)
	case parser.TagSymbol:
		return lispy.Sym(n.Text)
	case parser.TagString:
		return lispy.Str(lispy.Unescape(stripQuotes(n.Text)))
	case parser.TagRoot, parser.TagSExpr:
		return readSeq(n.Children).AsSExpr()
	case parser.TagQExpr:
		return readSeq(n.Children)
	default:
		return lispy.SExpr{}
	}
}

// ReadAll reads a root node's children as independent top-level forms,
// for the file-driver and `load` (§6).
func ReadAll(root *parser.Node) []lispy.Value {
	var out []lispy.Value
	for _, c := range root.Children {
		if skip(c) {
			continue
		}
		out = append(out, Read(c))
	}
	return out
}

func readSeq(children []*parser.Node) lispy.QExpr {
	out := lispy.QExpr{}
	for _, c := range children {
		if skip(c) {
			continue
		}
		out = append(out, Read(c))
	}
	return out
}

// skip implements §4.1's "ignore child nodes whose raw text is one of
// the bracket characters, or whose tag is regex/comment" rule.
func skip(n *parser.Node) bool {
	switch n.Tag {
	case parser.TagPunct, parser.TagComment:
		return true
	}
	switch n.Text {
	case "(", ")", "{", "}":
		return true
	}
	return false
}

func stripQuotes(s string) string {
	return strings.TrimSuffix(strings.TrimPrefix(s, `"`), `"`)
}
