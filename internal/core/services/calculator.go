package services

import (
	"fmt"

	"github.com/custodia-labs/radix-cli/internal/core/domain"
	"github.com/custodia-labs/radix-cli/internal/core/ports/driving"
	"github.com/custodia-labs/radix-cli/internal/logger"
)

// Ensure CalculatorService implements the interface.
var _ driving.CalculatorService = (*CalculatorService)(nil)

// CalculatorService evaluates additions and subtractions within a base.
type CalculatorService struct {
	converter driving.ConverterService
}

// NewCalculatorService creates a new calculator service.
func NewCalculatorService(converter driving.ConverterService) *CalculatorService {
	if converter == nil {
		converter = NewConverterService()
	}
	return &CalculatorService{converter: converter}
}

// Evaluate converts both operands to decimal, applies operator, and renders
// the result back in every base. Results outside the int64 range fail with
// domain.ErrOverflow.
func (s *CalculatorService) Evaluate(
	operand1, operand2 string,
	operator domain.Operator,
	base domain.Base,
) (*domain.Calculation, error) {
	if !base.IsValid() {
		return nil, domain.ErrUnsupportedBase
	}
	if !operator.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedOperator, operator)
	}

	a, err := s.converter.ToDecimal(operand1, base)
	if err != nil {
		return nil, fmt.Errorf("first operand: %w", err)
	}
	b, err := s.converter.ToDecimal(operand2, base)
	if err != nil {
		return nil, fmt.Errorf("second operand: %w", err)
	}

	result, err := apply(a, b, operator)
	if err != nil {
		return nil, err
	}

	reps := s.converter.FromDecimal(result)
	op1 := domain.NormaliseDigits(operand1)
	op2 := domain.NormaliseDigits(operand2)
	resultDigits := reps.In(base)

	logger.Debug("evaluate %s %s %s in %s = %s", op1, operator, op2, base, resultDigits)

	return &domain.Calculation{
		Result: reps,
		Step: domain.CalculationStep{
			Operator:        operator,
			Base:            base,
			Operand1:        op1,
			Operand2:        op2,
			DecimalOperand1: a,
			DecimalOperand2: b,
			DecimalResult:   result,
			Result:          resultDigits,
			Explanation:     domain.Explain(op1, operator, op2, resultDigits, base),
		},
	}, nil
}

// apply performs the operation, reporting int64 overflow.
func apply(a, b int64, operator domain.Operator) (int64, error) {
	switch operator {
	case domain.OperatorAdd:
		sum := a + b
		if (b > 0 && sum < a) || (b < 0 && sum > a) {
			return 0, fmt.Errorf("%d + %d: %w", a, b, domain.ErrOverflow)
		}
		return sum, nil
	case domain.OperatorSubtract:
		diff := a - b
		if (b > 0 && diff > a) || (b < 0 && diff < a) {
			return 0, fmt.Errorf("%d - %d: %w", a, b, domain.ErrOverflow)
		}
		return diff, nil
	default:
		return 0, fmt.Errorf("%w: %q", domain.ErrUnsupportedOperator, operator)
	}
}
