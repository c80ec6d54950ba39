package parser

import (
	"fmt"
	"os"
)

// ParseError reports a syntax failure with the byte offset it occurred
// at, matching the "parse_error" outcome of §6's external-parser
// contract.
type ParseError struct {
	Offset  int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s (at offset %d)", e.Message, e.Offset)
}

type parserState struct {
	lex  *lexer
	tok  token
	name string
}

func (p *parserState) advance() error {
	t, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = t
	return nil
}

// Parse parses input under the grammar of §6 and returns the root
// "lispy" Node, or a *ParseError.
func Parse(name, input string) (*Node, error) {
	p := &parserState{lex: newLexer(input), name: name}
	if err := p.advance(); err != nil {
		return nil, &ParseError{Offset: p.lex.pos, Message: err.Error()}
	}

	root := &Node{Tag: TagRoot, Text: name}
	for p.tok.kind != tokEOF {
		if p.tok.kind == tokComment {
			root.Children = append(root.Children, &Node{Tag: TagComment, Text: p.tok.text})
			if err := p.advance(); err != nil {
				return nil, &ParseError{Offset: p.lex.pos, Message: err.Error()}
			}
			continue
		}
		child, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		root.Children = append(root.Children, child)
	}
	return root, nil
}

// ParseFile reads path and parses its contents.
func ParseFile(path string) (*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(path, string(data))
}

func (p *parserState) parseExpr() (*Node, error) {
	switch p.tok.kind {
	case tokNumber:
		n := &Node{Tag: TagNumber, Text: p.tok.text}
		return n, p.advance()
	case tokSymbol:
		n := &Node{Tag: TagSymbol, Text: p.tok.text}
		return n, p.advance()
	case tokString:
		n := &Node{Tag: TagString, Text: p.tok.text}
		return n, p.advance()
	case tokComment:
		n := &Node{Tag: TagComment, Text: p.tok.text}
		return n, p.advance()
	case tokLParen:
		return p.parseBracketed(TagSExpr, tokLParen, tokRParen, "(", ")")
	case tokLBrace:
		return p.parseBracketed(TagQExpr, tokLBrace, tokRBrace, "{", "}")
	case tokRParen, tokRBrace:
		return nil, &ParseError{Offset: p.tok.pos, Message: "unexpected closing bracket"}
	default:
		return nil, &ParseError{Offset: p.tok.pos, Message: "expected an expression"}
	}
}

func (p *parserState) parseBracketed(tag Tag, open, closeKind tokenKind, openText, closeText string) (*Node, error) {
	node := &Node{Tag: tag}
	node.Children = append(node.Children, &Node{Tag: TagPunct, Text: openText})
	if err := p.advance(); err != nil {
		return nil, &ParseError{Offset: p.lex.pos, Message: err.Error()}
	}

	for p.tok.kind != closeKind {
		if p.tok.kind == tokEOF {
			return nil, &ParseError{Offset: p.tok.pos, Message: fmt.Sprintf("unterminated %q", openText)}
		}
		child, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, child)
	}
	node.Children = append(node.Children, &Node{Tag: TagPunct, Text: closeText})
	return node, p.advance()
}
