package sexpr

import (
	"testing"

	"github.com/sigma-ir/sigma/pkg/internal/assert"
)

func TestParseSymbol(t *testing.T) {
	s, err := Parse("42")
	assert.True(t, err == nil, "parsing a bare symbol must succeed")

	sym := s.AsSymbol()
	assert.True(t, sym != nil, "42 must parse as a Symbol")
	assert.Equal(t, "42", sym.Value)
}

func TestParseList(t *testing.T) {
	s, err := Parse("(add (num 1) (num 2))")
	assert.True(t, err == nil, "parsing a well-formed list must succeed")

	list := s.AsList()
	assert.True(t, list != nil, "expected a List")
	assert.Equal(t, 3, len(list.Elements))
}

func TestParseRejectsTrailingInput(t *testing.T) {
	_, err := Parse("(num 1) garbage")

	assert.True(t, err != nil, "trailing input after a complete term must error")
}

func TestParseRejectsUnterminatedList(t *testing.T) {
	_, err := Parse("(add (num 1)")

	assert.True(t, err != nil, "an unterminated list must error")
}

func TestParseAllReadsMultipleTerms(t *testing.T) {
	terms, err := ParseAll("(num 1) (num 2) (num 3)")

	assert.True(t, err == nil, "parsing several top-level terms must succeed")
	assert.Equal(t, 3, len(terms))
}

func TestParseSkipsComments(t *testing.T) {
	s, err := Parse("(num 1) ; trailing comment")
	assert.True(t, err == nil, "a line comment after a complete term must not error")

	list := s.AsList()
	assert.True(t, list != nil, "expected a List")
}
