package driving

import "github.com/custodia-labs/radix-cli/internal/core/domain"

// ConverterService converts integers between the supported bases.
type ConverterService interface {
	// Convert renders a non-negative value in base with its division trace.
	Convert(value int64, base domain.Base) (*domain.Conversion, error)

	// ConvertAll renders a non-negative value in every base.
	ConvertAll(value int64) (*domain.ConversionSet, error)

	// ToDecimal parses digits written in base.
	// Returns *domain.ParseError for empty, invalid or out-of-range input.
	ToDecimal(digits string, base domain.Base) (int64, error)

	// FromDecimal returns every representation of value.
	FromDecimal(value int64) domain.Representations
}
