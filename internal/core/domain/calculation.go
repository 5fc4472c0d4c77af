package domain

import "fmt"

// Operator is a binary arithmetic operator supported by the calculator.
type Operator string

// Supported operators.
const (
	OperatorAdd      Operator = "+"
	OperatorSubtract Operator = "-"
)

// IsValid returns true for + and -.
func (o Operator) IsValid() bool {
	return o == OperatorAdd || o == OperatorSubtract
}

// String returns the operator symbol.
func (o Operator) String() string {
	return string(o)
}

// ParseOperator reads an operator symbol or its name.
func ParseOperator(s string) (Operator, error) {
	switch s {
	case "+", "add", "plus":
		return OperatorAdd, nil
	case "-", "sub", "subtract", "minus":
		return OperatorSubtract, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedOperator, s)
	}
}

// CalculationStep is an auditable record of one evaluation.
// It is created once per evaluation and replaced, never mutated.
type CalculationStep struct {
	Operator Operator `json:"operator" yaml:"operator"`
	Base     Base     `json:"base" yaml:"base"`

	// Operand1 and Operand2 are the operands as digit strings in Base.
	Operand1 string `json:"operand1" yaml:"operand1"`
	Operand2 string `json:"operand2" yaml:"operand2"`

	DecimalOperand1 int64 `json:"decimal_operand1" yaml:"decimal_operand1"`
	DecimalOperand2 int64 `json:"decimal_operand2" yaml:"decimal_operand2"`
	DecimalResult   int64 `json:"decimal_result" yaml:"decimal_result"`

	// Result is the result as a digit string in Base.
	Result string `json:"result" yaml:"result"`

	Explanation string `json:"explanation" yaml:"explanation"`
}

// Explain formats "<op1> <operator> <op2> = <result> (in <BASE>)".
func Explain(op1 string, operator Operator, op2, result string, base Base) string {
	return fmt.Sprintf("%s %s %s = %s (in %s)", op1, operator, op2, result, base)
}

// OperandLines renders the conversion of both operands to decimal.
func (s CalculationStep) OperandLines() []string {
	return []string{
		fmt.Sprintf("%s (%s) = %d (DEC)", s.Operand1, s.Base, s.DecimalOperand1),
		fmt.Sprintf("%s (%s) = %d (DEC)", s.Operand2, s.Base, s.DecimalOperand2),
	}
}

// DecimalLine renders the arithmetic carried out in decimal.
func (s CalculationStep) DecimalLine() string {
	return fmt.Sprintf("%d %s %d = %d", s.DecimalOperand1, s.Operator, s.DecimalOperand2, s.DecimalResult)
}

// Calculation is the outcome of one evaluation.
type Calculation struct {
	Result Representations `json:"result" yaml:"result"`
	Step   CalculationStep `json:"step" yaml:"step"`
}
