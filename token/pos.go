package token

import "fmt"

// Pos is a position in OBO input. Line is 1-based and refers to the
// physical line; Col is a 0-based byte offset within that line.
type Pos struct {
	Line int
	Col  int
}

func (p Pos) IsZero() bool {
	return p.Line == 0
}

func (p Pos) String() string {
	if p.Col == 0 {
		return fmt.Sprintf("line %d", p.Line)
	}
	return fmt.Sprintf("line %d, col %d", p.Line, p.Col)
}
