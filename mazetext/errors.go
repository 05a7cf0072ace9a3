package mazetext

import (
	"errors"
	"fmt"
)

// Sentinel errors for diagram parsing.
var (
	// ErrEmpty indicates the input contains no diagram lines.
	ErrEmpty = errors.New("mazetext: empty diagram")
	// ErrSyntax indicates a malformed diagram; see SyntaxError.
	ErrSyntax = errors.New("mazetext: syntax error")
	// ErrNoGoal indicates the diagram has no 'G' marker.
	ErrNoGoal = errors.New("mazetext: goal marker not found")
)

// SyntaxError locates a malformed character. Line and Col are 1-based.
type SyntaxError struct {
	Line, Col int
	Found     rune
	Expected  string
}

func (e *SyntaxError) Error() string {
	if e.Found == 0 {
		return fmt.Sprintf("mazetext: line %d: %s", e.Line, e.Expected)
	}
	return fmt.Sprintf("mazetext: line %d col %d: expected %s, found %q", e.Line, e.Col, e.Expected, e.Found)
}

// Unwrap lets errors.Is match ErrSyntax.
func (e *SyntaxError) Unwrap() error { return ErrSyntax }
