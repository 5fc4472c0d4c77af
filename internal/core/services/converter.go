package services

import (
	"strconv"
	"strings"

	"github.com/custodia-labs/radix-cli/internal/core/domain"
	"github.com/custodia-labs/radix-cli/internal/core/ports/driving"
	"github.com/custodia-labs/radix-cli/internal/logger"
)

// Ensure ConverterService implements the interface.
var _ driving.ConverterService = (*ConverterService)(nil)

// ConverterService converts integers between bases by repeated division.
type ConverterService struct{}

// NewConverterService creates a new converter service.
func NewConverterService() *ConverterService {
	return &ConverterService{}
}

// Convert renders value in base and records each division.
// The trace ends with an assembled step, except for zero which is a
// single division step.
func (s *ConverterService) Convert(value int64, base domain.Base) (*domain.Conversion, error) {
	if !base.IsValid() {
		return nil, domain.ErrUnsupportedBase
	}
	if value < 0 {
		return nil, domain.ErrNegativeValue
	}

	divisor := int64(base.Radix())

	if value == 0 {
		return &domain.Conversion{
			Value:          0,
			Base:           base,
			Representation: "0",
			Steps: []domain.ConversionStep{{
				Kind:    domain.StepDivision,
				Divisor: divisor,
				Digit:   "0",
			}},
		}, nil
	}

	var (
		steps  []domain.ConversionStep
		digits []string
	)
	for running := value; running > 0; running /= divisor {
		remainder := running % divisor
		digit := base.DigitFor(remainder)
		steps = append(steps, domain.ConversionStep{
			Kind:      domain.StepDivision,
			Dividend:  running,
			Divisor:   divisor,
			Quotient:  running / divisor,
			Remainder: remainder,
			Digit:     digit,
		})
		digits = append(digits, digit)
	}

	// Remainders come out least significant first.
	var b strings.Builder
	for i := len(digits) - 1; i >= 0; i-- {
		b.WriteString(digits[i])
	}
	representation := b.String()

	steps = append(steps, domain.ConversionStep{
		Kind:           domain.StepAssembled,
		Divisor:        divisor,
		Representation: representation,
	})

	logger.Debug("convert %d to %s: %s in %d steps", value, base, representation, len(steps))

	return &domain.Conversion{
		Value:          value,
		Base:           base,
		Representation: representation,
		Steps:          steps,
	}, nil
}

// ConvertAll renders value in every base.
func (s *ConverterService) ConvertAll(value int64) (*domain.ConversionSet, error) {
	set := &domain.ConversionSet{Value: value}
	for _, base := range domain.AllBases() {
		c, err := s.Convert(value, base)
		if err != nil {
			return nil, err
		}
		switch base {
		case domain.BaseDecimal:
			set.Decimal = c
		case domain.BaseBinary:
			set.Binary = c
		case domain.BaseOctal:
			set.Octal = c
		case domain.BaseHex:
			set.Hex = c
		}
	}
	return set, nil
}

// ToDecimal parses digits written in base. A leading minus sign is allowed.
// Invalid input is a hard *domain.ParseError, never a silent zero.
func (s *ConverterService) ToDecimal(digits string, base domain.Base) (int64, error) {
	if !base.IsValid() {
		return 0, domain.ErrUnsupportedBase
	}

	body := strings.TrimPrefix(digits, "-")
	if body == "" {
		return 0, &domain.ParseError{Input: digits, Base: base, Err: domain.ErrEmptyDigits}
	}
	for _, r := range body {
		if !base.IsValidDigit(r) {
			return 0, &domain.ParseError{Input: digits, Base: base, Err: domain.ErrInvalidDigit}
		}
	}

	value, err := strconv.ParseInt(domain.NormaliseDigits(digits), base.Radix(), 64)
	if err != nil {
		// Digits were validated above, so only range errors remain.
		return 0, &domain.ParseError{Input: digits, Base: base, Err: domain.ErrOverflow}
	}
	return value, nil
}

// FromDecimal returns value in all four bases.
// Negative values are the magnitude's digits with a leading minus sign.
func (s *ConverterService) FromDecimal(value int64) domain.Representations {
	return domain.Representations{
		Decimal: value,
		Binary:  strconv.FormatInt(value, 2),
		Octal:   strconv.FormatInt(value, 8),
		Hex:     strings.ToUpper(strconv.FormatInt(value, 16)),
	}
}
