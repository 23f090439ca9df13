// Package parser converts elective algebra notation into expression
// trees.
//
// The notation admits single lowercase letters as symbols, the digits
// 0 and 1 as constants, "(1-expr)" for negation, and bare
// juxtaposition for product:
//
//	x(1-y)z
//
// Every opening parenthesis must begin the literal prefix "(1-"; the
// matching close is found by depth counting.
package parser

import (
	"fmt"
	"strings"

	"github.com/elective-xyz/go-elective/elective"
)

// ParseError reports malformed input together with the byte position
// of the offending fragment.
type ParseError struct {
	Input string
	Pos   int
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parser: %s at position %d in %q", e.Msg, e.Pos, e.Input)
}

// Parse converts input text into an expression tree. The parser never
// accepts partial input: any unconsumed or unrecognized text fails.
func Parse(input string) (elective.Node, error) {
	return parseAt(input, 0, input)
}

// parseAt parses the substring s, which starts at byte offset in the
// full input. Positions in errors refer to the full input.
func parseAt(s string, offset int, full string) (elective.Node, error) {
	if s == "" {
		return nil, &ParseError{Input: full, Pos: offset, Msg: "empty expression"}
	}

	var first elective.Node
	var rest string
	var restOffset int

	if s[0] == '(' {
		if !strings.HasPrefix(s, "(1-") {
			return nil, &ParseError{Input: full, Pos: offset, Msg: `"(" not followed by "1-"`}
		}
		end := matchParen(s)
		if end < 0 {
			return nil, &ParseError{Input: full, Pos: offset, Msg: "unbalanced parentheses"}
		}
		body, err := parseAt(s[3:end], offset+3, full)
		if err != nil {
			return nil, err
		}
		first = &elective.Negation{Body: body}
		rest = s[end+1:]
		restOffset = offset + end + 1
	} else {
		switch ch := s[0]; {
		case ch == '0':
			first = &elective.Constant{Value: 0}
		case ch == '1':
			first = &elective.Constant{Value: 1}
		case ch >= 'a' && ch <= 'z':
			first = &elective.Symbol{Name: string(ch)}
		default:
			return nil, &ParseError{Input: full, Pos: offset, Msg: fmt.Sprintf("unrecognized character %q", ch)}
		}
		rest = s[1:]
		restOffset = offset + 1
	}

	if rest == "" {
		return first, nil
	}
	tail, err := parseAt(rest, restOffset, full)
	if err != nil {
		return nil, err
	}
	return &elective.Product{Left: first, Right: tail}, nil
}

// matchParen returns the index of the parenthesis closing s[0], or -1
// if the parentheses are unbalanced.
func matchParen(s string) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
