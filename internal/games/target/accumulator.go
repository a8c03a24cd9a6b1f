package target

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/vovakirdan/minigames/internal/core"
)

// Accumulator applies arithmetic tokens strictly in entry order, like a
// pocket calculator: 5 + 10 * 2 is (5 + 10) * 2 = 30. Values are exact
// decimals so 0.1 + 0.2 is 0.3.
type Accumulator struct {
	value   decimal.Decimal
	op      rune
	started bool
	wantNum bool
	numbers []decimal.Decimal
}

// NewAccumulator returns an empty accumulator waiting for a number.
func NewAccumulator() *Accumulator {
	return &Accumulator{wantNum: true}
}

func isOperator(s string) bool {
	return s == "+" || s == "-" || s == "*" || s == "/"
}

// Push feeds one token. A malformed sequence (two numbers or two operators
// in a row, an unknown symbol) or a division by zero returns ErrInvalidInput
// and leaves the accumulator unchanged.
func (a *Accumulator) Push(token string) error {
	token = strings.TrimSpace(token)
	if !a.wantNum {
		if !isOperator(token) {
			return fmt.Errorf("target: expected operator, got %q: %w", token, core.ErrInvalidInput)
		}
		a.op = rune(token[0])
		a.wantNum = true
		return nil
	}

	n, err := decimal.NewFromString(token)
	if err != nil {
		return fmt.Errorf("target: expected number, got %q: %w", token, core.ErrInvalidInput)
	}
	if !a.started {
		a.value = n
		a.started = true
	} else {
		next, err := apply(a.value, a.op, n)
		if err != nil {
			return err
		}
		a.value = next
	}
	a.numbers = append(a.numbers, n)
	a.wantNum = false
	return nil
}

func apply(acc decimal.Decimal, op rune, n decimal.Decimal) (decimal.Decimal, error) {
	switch op {
	case '+':
		return acc.Add(n), nil
	case '-':
		return acc.Sub(n), nil
	case '*':
		return acc.Mul(n), nil
	case '/':
		if n.IsZero() {
			return acc, fmt.Errorf("target: %s / 0: %w", acc, core.ErrInvalidInput)
		}
		return acc.Div(n), nil
	}
	return acc, fmt.Errorf("target: unknown operator %q: %w", op, core.ErrInvalidInput)
}

// Result returns the running total. An empty sequence or one ending in an
// operator is incomplete.
func (a *Accumulator) Result() (decimal.Decimal, error) {
	if !a.started || a.wantNum {
		return decimal.Zero, fmt.Errorf("target: incomplete expression: %w", core.ErrInvalidInput)
	}
	return a.value, nil
}

// Numbers returns the operands pushed so far.
func (a *Accumulator) Numbers() []decimal.Decimal {
	return append([]decimal.Decimal(nil), a.numbers...)
}

// Tokenize splits an expression like "5+10 * 2" into numbers and operators.
func Tokenize(expr string) ([]string, error) {
	var tokens []string
	var num strings.Builder
	flush := func() {
		if num.Len() > 0 {
			tokens = append(tokens, num.String())
			num.Reset()
		}
	}
	for _, r := range expr {
		switch {
		case unicode.IsDigit(r) || r == '.':
			num.WriteRune(r)
		case unicode.IsSpace(r):
			flush()
		case isOperator(string(r)):
			flush()
			tokens = append(tokens, string(r))
		case r == 'x' || r == '×':
			flush()
			tokens = append(tokens, "*")
		default:
			return nil, fmt.Errorf("target: unexpected %q: %w", r, core.ErrInvalidInput)
		}
	}
	flush()
	return tokens, nil
}

// Evaluate tokenizes expr and runs it through a fresh accumulator.
func Evaluate(expr string) (*Accumulator, decimal.Decimal, error) {
	acc := NewAccumulator()
	tokens, err := Tokenize(expr)
	if err != nil {
		return acc, decimal.Zero, err
	}
	for _, tok := range tokens {
		if err := acc.Push(tok); err != nil {
			return acc, decimal.Zero, err
		}
	}
	v, err := acc.Result()
	return acc, v, err
}
