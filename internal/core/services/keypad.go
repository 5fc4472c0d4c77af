package services

import (
	"fmt"

	"github.com/custodia-labs/radix-cli/internal/core/domain"
	"github.com/custodia-labs/radix-cli/internal/core/ports/driving"
	"github.com/custodia-labs/radix-cli/internal/logger"
)

// Ensure Keypad implements the interface.
var _ driving.Keypad = (*Keypad)(nil)

const zeroDisplay = "0"

// Keypad is the calculator's finite-state controller.
// Every mutation goes through Press or Reset.
type Keypad struct {
	converter  driving.ConverterService
	calculator driving.CalculatorService

	display     string
	base        domain.Base
	state       domain.KeypadState
	operand1    *int64
	operator    domain.Operator
	calculation *domain.Calculation
	err         error
}

// NewKeypad creates a keypad in the idle state showing "0" in base.
// An invalid base falls back to decimal.
func NewKeypad(
	converter driving.ConverterService,
	calculator driving.CalculatorService,
	base domain.Base,
) *Keypad {
	if converter == nil {
		converter = NewConverterService()
	}
	if calculator == nil {
		calculator = NewCalculatorService(converter)
	}
	k := &Keypad{
		converter:  converter,
		calculator: calculator,
	}
	k.Reset(base)
	return k
}

// Reset clears display, operands, operator and result, and selects base.
func (k *Keypad) Reset(base domain.Base) {
	if !base.IsValid() {
		base = domain.BaseDecimal
	}
	k.display = zeroDisplay
	k.base = base
	k.state = domain.StateIdle
	k.operand1 = nil
	k.operator = ""
	k.calculation = nil
	k.err = nil
}

// Press applies one input and returns the error it produced, if any.
func (k *Keypad) Press(input domain.KeypadInput) error {
	k.err = nil

	var err error
	switch input.Kind {
	case domain.InputDigit:
		k.pressDigit(input.Digit)
	case domain.InputOperator:
		err = k.pressOperator(input.Operator)
	case domain.InputEquals:
		err = k.pressEquals()
	case domain.InputClear:
		k.Reset(k.base)
	case domain.InputBackspace:
		k.pressBackspace()
	case domain.InputBase:
		err = k.selectBase(input.Base)
	default:
		err = fmt.Errorf("%w: keypad input %d", domain.ErrInvalidInput, input.Kind)
	}

	k.err = err
	logger.Debug("keypad %s -> display=%q state=%s", input, k.display, k.state)
	return err
}

// Snapshot returns a copy of the current state.
func (k *Keypad) Snapshot() domain.KeypadSnapshot {
	snap := domain.KeypadSnapshot{
		Display:         k.display,
		Base:            k.base,
		State:           k.state,
		PendingOperator: k.operator,
		Calculation:     k.calculation,
		Err:             k.err,
	}
	if k.operand1 != nil {
		v := *k.operand1
		snap.Operand1 = &v
		snap.Operand1Display = k.Operand1Display()
	}
	return snap
}

// Operand1Display returns the stored first operand in the active base,
// or "" when none is stored.
func (k *Keypad) Operand1Display() string {
	if k.operand1 == nil {
		return ""
	}
	return k.converter.FromDecimal(*k.operand1).In(k.base)
}

// pressDigit appends r when it is valid for the active base and the
// display would still parse. Anything else is ignored.
func (k *Keypad) pressDigit(r rune) {
	if !k.base.IsValidDigit(r) {
		return
	}
	digit := domain.NormaliseDigits(string(r))

	next := k.display + digit
	if k.display == zeroDisplay {
		next = digit
	}
	if _, err := k.converter.ToDecimal(next, k.base); err != nil {
		return
	}

	k.display = next
	if k.state == domain.StateIdle || k.state == domain.StateResultShown {
		k.state = domain.StateAwaitingOperator
	}
}

// pressOperator stores the display as the first operand.
func (k *Keypad) pressOperator(op domain.Operator) error {
	if !op.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedOperator, op)
	}

	value, err := k.converter.ToDecimal(k.display, k.base)
	if err != nil {
		k.display = zeroDisplay
		return err
	}

	k.operand1 = &value
	k.operator = op
	k.display = zeroDisplay
	k.state = domain.StateAwaitingSecondOperand
	return nil
}

// pressEquals evaluates the pending operation. Without one it does nothing.
func (k *Keypad) pressEquals() error {
	if k.operand1 == nil || k.operator == "" {
		return nil
	}

	op1 := k.converter.FromDecimal(*k.operand1).In(k.base)
	calc, err := k.calculator.Evaluate(op1, k.display, k.operator, k.base)
	if err != nil {
		k.display = zeroDisplay
		k.operand1 = nil
		k.operator = ""
		k.state = domain.StateIdle
		return err
	}

	k.calculation = calc
	k.display = calc.Step.Result
	k.operand1 = nil
	k.operator = ""
	k.state = domain.StateResultShown
	return nil
}

// pressBackspace removes the last character, floored at "0".
func (k *Keypad) pressBackspace() {
	runes := []rune(k.display)
	if len(runes) <= 1 {
		k.display = zeroDisplay
	} else {
		k.display = string(runes[:len(runes)-1])
	}
	if k.display == "-" {
		k.display = zeroDisplay
	}
	if k.state == domain.StateResultShown {
		k.state = domain.StateAwaitingOperator
	}
}

// selectBase re-renders the display in base without changing its value.
func (k *Keypad) selectBase(base domain.Base) error {
	if !base.IsValid() {
		return domain.ErrUnsupportedBase
	}

	value, err := k.converter.ToDecimal(k.display, k.base)
	if err != nil {
		value = 0
	}

	k.base = base
	k.display = k.converter.FromDecimal(value).In(base)
	return err
}
