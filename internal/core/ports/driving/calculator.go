package driving

import "github.com/custodia-labs/radix-cli/internal/core/domain"

// CalculatorService evaluates arithmetic within a base.
type CalculatorService interface {
	// Evaluate applies operator to two operands written in base.
	Evaluate(operand1, operand2 string, operator domain.Operator, base domain.Base) (*domain.Calculation, error)
}
