package guard

import "fmt"

// Symbol is a unique, immutable key value. Two symbols created with the same
// description are still distinct; identity is the pointer returned by
// NewSymbol.
type Symbol struct {
	desc string
}

// NewSymbol creates a new unique symbol.
func NewSymbol(description string) *Symbol {
	return &Symbol{desc: description}
}

// Description returns the text the symbol was created with.
func (s *Symbol) Description() string {
	if s == nil {
		return ""
	}
	return s.desc
}

func (s *Symbol) String() string {
	return fmt.Sprintf("Symbol(%s)", s.Description())
}
