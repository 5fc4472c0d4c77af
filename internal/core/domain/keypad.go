package domain

import (
	"fmt"
	"strings"
)

// InputKind identifies the kind of keypad input.
type InputKind int

const (
	// InputDigit appends a digit to the display.
	InputDigit InputKind = iota

	// InputOperator stores the display as the first operand.
	InputOperator

	// InputEquals evaluates the pending operation.
	InputEquals

	// InputClear resets the keypad.
	InputClear

	// InputBackspace removes the last display character.
	InputBackspace

	// InputBase re-renders the display in another base.
	InputBase
)

// String returns the kind name.
func (k InputKind) String() string {
	switch k {
	case InputDigit:
		return "digit"
	case InputOperator:
		return "operator"
	case InputEquals:
		return "equals"
	case InputClear:
		return "clear"
	case InputBackspace:
		return "backspace"
	case InputBase:
		return "base"
	default:
		return "unknown"
	}
}

// Keypad symbols.
const (
	SymbolEquals    = "="
	SymbolClear     = "C"
	SymbolBackspace = "⌫"
)

// KeypadInput is a single symbolic keypad press.
// Clear and the hex digit C are distinct inputs.
type KeypadInput struct {
	Kind     InputKind
	Digit    rune
	Operator Operator
	Base     Base
}

// DigitInput returns a digit press.
func DigitInput(r rune) KeypadInput {
	return KeypadInput{Kind: InputDigit, Digit: r}
}

// OperatorInput returns an operator press.
func OperatorInput(op Operator) KeypadInput {
	return KeypadInput{Kind: InputOperator, Operator: op}
}

// EqualsInput returns an '=' press.
func EqualsInput() KeypadInput {
	return KeypadInput{Kind: InputEquals}
}

// ClearInput returns a 'C' press.
func ClearInput() KeypadInput {
	return KeypadInput{Kind: InputClear}
}

// BackspaceInput returns a '⌫' press.
func BackspaceInput() KeypadInput {
	return KeypadInput{Kind: InputBackspace}
}

// BaseInput returns a base selection.
func BaseInput(base Base) KeypadInput {
	return KeypadInput{Kind: InputBase, Base: base}
}

// String returns the keypad label of the input.
func (i KeypadInput) String() string {
	switch i.Kind {
	case InputDigit:
		return string(i.Digit)
	case InputOperator:
		return i.Operator.String()
	case InputEquals:
		return SymbolEquals
	case InputClear:
		return SymbolClear
	case InputBackspace:
		return SymbolBackspace
	case InputBase:
		return i.Base.String()
	default:
		return "?"
	}
}

// ParseKeypadInputs reads a whitespace-free token into keypad inputs.
//
// Grammar:
//
//	"+" "-" "="            operators and equals
//	"C" "clear"            clear
//	"⌫" "bs" "backspace"   backspace
//	"DEC" "BIN" "OCT" "HEX" base selection
//	anything else          one digit input per character
//
// A lone upper-case "C" always means clear; type "c" or include it in a
// longer run ("1C") to enter the hex digit.
func ParseKeypadInputs(token string) ([]KeypadInput, error) {
	switch token {
	case "":
		return nil, fmt.Errorf("%w: empty keypad token", ErrInvalidInput)
	case "+", "-":
		return []KeypadInput{OperatorInput(Operator(token))}, nil
	case SymbolEquals:
		return []KeypadInput{EqualsInput()}, nil
	case SymbolClear, "clear":
		return []KeypadInput{ClearInput()}, nil
	case SymbolBackspace, "bs", "backspace":
		return []KeypadInput{BackspaceInput()}, nil
	}

	switch strings.ToUpper(token) {
	case "DEC", "BIN", "OCT", "HEX":
		base, err := ParseBase(token)
		if err != nil {
			return nil, err
		}
		return []KeypadInput{BaseInput(base)}, nil
	}

	inputs := make([]KeypadInput, 0, len(token))
	for _, r := range token {
		inputs = append(inputs, DigitInput(r))
	}
	return inputs, nil
}

// KeypadState is the interaction state of the keypad.
type KeypadState int

const (
	// StateIdle is a blank keypad showing "0".
	StateIdle KeypadState = iota

	// StateAwaitingOperator means a first operand is being entered.
	StateAwaitingOperator

	// StateAwaitingSecondOperand means an operator is pending.
	StateAwaitingSecondOperand

	// StateResultShown means the display holds an evaluation result.
	StateResultShown
)

// String returns the state name.
func (s KeypadState) String() string {
	switch s {
	case StateIdle:
		return "idle-input"
	case StateAwaitingOperator:
		return "awaiting-operator"
	case StateAwaitingSecondOperand:
		return "awaiting-second-operand"
	case StateResultShown:
		return "result-shown"
	default:
		return "unknown"
	}
}

// KeypadSnapshot is an immutable copy of the keypad state.
type KeypadSnapshot struct {
	Display string
	Base    Base
	State   KeypadState

	// PendingOperator is empty when no operator is pending.
	PendingOperator Operator

	// Operand1 is the stored first operand in decimal, nil when absent.
	Operand1 *int64

	// Operand1Display is Operand1 rendered in Base.
	Operand1Display string

	// Calculation is the most recent evaluation, nil before the first '='.
	Calculation *Calculation

	// Err is the error from the most recent press, if any.
	Err error
}

// HasPending reports whether an operand and operator are waiting for '='.
func (s KeypadSnapshot) HasPending() bool {
	return s.Operand1 != nil && s.PendingOperator != ""
}

// PendingLine renders "<operand1> <operator> <operand2>" while an operator
// is pending, or "" otherwise. The second operand is left out while the
// display still shows "0".
func (s KeypadSnapshot) PendingLine() string {
	if !s.HasPending() {
		return ""
	}
	line := s.Operand1Display + " " + s.PendingOperator.String()
	if s.Display != "0" {
		line += " " + s.Display
	}
	return line
}
