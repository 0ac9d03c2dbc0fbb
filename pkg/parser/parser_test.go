package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalk/algex/pkg/expr"
	"github.com/jwalk/algex/pkg/parser"
)

func TestParseLiteral(t *testing.T) {
	e, err := parser.Parse("42")
	require.NoError(t, err)
	assert.True(t, expr.Equal(e, expr.NewConst(42)))
}

func TestParseNegativeLiteral(t *testing.T) {
	e, err := parser.Parse("-7")
	require.NoError(t, err)
	assert.True(t, expr.Equal(e, expr.NewConst(-7)))
}

func TestParseIdentifier(t *testing.T) {
	e, err := parser.Parse("foo_1")
	require.NoError(t, err)
	assert.True(t, expr.Equal(e, expr.NewVar("foo_1")))
}

func TestParseAdditionAndSubtractionLeftAssociative(t *testing.T) {
	// a-b+c parses as (a-b)+c, not a-(b+c).
	e, err := parser.Parse("a-b+c")
	require.NoError(t, err)
	want := expr.NewAdd(expr.NewSub(expr.NewVar("a"), expr.NewVar("b")), expr.NewVar("c"))
	assert.True(t, expr.Equal(e, want))
}

func TestParseProductDivisionLeftAssociative(t *testing.T) {
	e, err := parser.Parse("a/b*c")
	require.NoError(t, err)
	want := expr.NewMul(expr.NewDiv(expr.NewVar("a"), expr.NewVar("b")), expr.NewVar("c"))
	assert.True(t, expr.Equal(e, want))
}

func TestParsePowerRightAssociative(t *testing.T) {
	// a^b^c parses as a^(b^c).
	e, err := parser.Parse("a^b^c")
	require.NoError(t, err)
	want := expr.NewPow(expr.NewVar("a"), expr.NewPow(expr.NewVar("b"), expr.NewVar("c")))
	assert.True(t, expr.Equal(e, want))
}

func TestParsePrecedencePowerBindsTighterThanProduct(t *testing.T) {
	e, err := parser.Parse("a*b^c")
	require.NoError(t, err)
	want := expr.NewMul(expr.NewVar("a"), expr.NewPow(expr.NewVar("b"), expr.NewVar("c")))
	assert.True(t, expr.Equal(e, want))
}

func TestParsePrecedenceProductBindsTighterThanSum(t *testing.T) {
	e, err := parser.Parse("a+b*c")
	require.NoError(t, err)
	want := expr.NewAdd(expr.NewVar("a"), expr.NewMul(expr.NewVar("b"), expr.NewVar("c")))
	assert.True(t, expr.Equal(e, want))
}

func TestParseParentheses(t *testing.T) {
	e, err := parser.Parse("(a+b)*c")
	require.NoError(t, err)
	want := expr.NewMul(expr.NewAdd(expr.NewVar("a"), expr.NewVar("b")), expr.NewVar("c"))
	assert.True(t, expr.Equal(e, want))
}

func TestParseMissingCloseParenFails(t *testing.T) {
	_, err := parser.Parse("(a+b")
	assert.Error(t, err)
}

func TestParseTrailingGarbageFails(t *testing.T) {
	_, err := parser.Parse("a+b)")
	assert.Error(t, err)
}

func TestParseErrorReportsUnparsedSuffix(t *testing.T) {
	_, err := parser.Parse("a+b)")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ")")
}

func TestParseEmptyInputFails(t *testing.T) {
	_, err := parser.Parse("")
	assert.Error(t, err)
}

func TestParseRoundTripsThroughPrinter(t *testing.T) {
	e, err := parser.Parse("(a+b)*(a-b)")
	require.NoError(t, err)

	reparsed, err := parser.Parse(e.String())
	require.NoError(t, err)
	assert.True(t, expr.Equal(e, reparsed))
}
