package domain

import "fmt"

// StepKind distinguishes division steps from the final assembled step.
type StepKind int

const (
	// StepDivision records one division of the running value by the base.
	StepDivision StepKind = iota

	// StepAssembled records the representation read from the remainders.
	StepAssembled
)

// ConversionStep is one entry of a repeated-division trace.
type ConversionStep struct {
	Kind StepKind `json:"kind" yaml:"kind"`

	Dividend  int64 `json:"dividend" yaml:"dividend"`
	Divisor   int64 `json:"divisor" yaml:"divisor"`
	Quotient  int64 `json:"quotient" yaml:"quotient"`
	Remainder int64 `json:"remainder" yaml:"remainder"`

	// Digit is the remainder's display digit.
	Digit string `json:"digit" yaml:"digit"`

	// Representation is set on the assembled step only.
	Representation string `json:"representation,omitempty" yaml:"representation,omitempty"`
}

// String renders the step the way it is shown to the user.
func (s ConversionStep) String() string {
	if s.Kind == StepAssembled {
		return "Reading remainders from bottom to top: " + s.Representation
	}
	line := fmt.Sprintf("%d ÷ %d = %d remainder %d", s.Dividend, s.Divisor, s.Quotient, s.Remainder)
	if s.Divisor == int64(BaseHex) {
		line += " (" + s.Digit + ")"
	}
	return line
}

// Conversion is a non-negative value rendered in one base with its trace.
type Conversion struct {
	Value          int64            `json:"value" yaml:"value"`
	Base           Base             `json:"base" yaml:"base"`
	Representation string           `json:"representation" yaml:"representation"`
	Steps          []ConversionStep `json:"steps,omitempty" yaml:"steps,omitempty"`
}

// StepLines returns the rendered steps in order.
func (c *Conversion) StepLines() []string {
	lines := make([]string, len(c.Steps))
	for i, step := range c.Steps {
		lines[i] = step.String()
	}
	return lines
}

// ConversionSet holds the conversions of one value into every base.
type ConversionSet struct {
	Value   int64       `json:"value" yaml:"value"`
	Decimal *Conversion `json:"decimal" yaml:"decimal"`
	Binary  *Conversion `json:"binary" yaml:"binary"`
	Octal   *Conversion `json:"octal" yaml:"octal"`
	Hex     *Conversion `json:"hex" yaml:"hex"`
}

// In returns the conversion for base, or nil for an unsupported base.
func (s *ConversionSet) In(base Base) *Conversion {
	switch base {
	case BaseBinary:
		return s.Binary
	case BaseOctal:
		return s.Octal
	case BaseDecimal:
		return s.Decimal
	case BaseHex:
		return s.Hex
	default:
		return nil
	}
}

// Representations is one value shown in all four bases.
// Negative values carry a leading minus sign in every base.
type Representations struct {
	Decimal int64  `json:"decimal" yaml:"decimal"`
	Binary  string `json:"binary" yaml:"binary"`
	Octal   string `json:"octal" yaml:"octal"`
	Hex     string `json:"hex" yaml:"hex"`
}

// In returns the digit string for base.
func (r Representations) In(base Base) string {
	switch base {
	case BaseBinary:
		return r.Binary
	case BaseOctal:
		return r.Octal
	case BaseHex:
		return r.Hex
	default:
		return fmt.Sprintf("%d", r.Decimal)
	}
}
