package domain

import (
	"strconv"
	"strings"
)

// Base is the radix a number is displayed in.
type Base int

// Supported bases.
const (
	// BaseBinary is radix 2.
	BaseBinary Base = 2

	// BaseOctal is radix 8.
	BaseOctal Base = 8

	// BaseDecimal is radix 10.
	BaseDecimal Base = 10

	// BaseHex is radix 16.
	BaseHex Base = 16
)

// hexDigits maps a remainder to its display digit.
const hexDigits = "0123456789ABCDEF"

// AllBases returns the supported bases in keypad order.
func AllBases() []Base {
	return []Base{BaseDecimal, BaseBinary, BaseOctal, BaseHex}
}

// IsValid returns true if the base is one of the four supported radixes.
func (b Base) IsValid() bool {
	switch b {
	case BaseBinary, BaseOctal, BaseDecimal, BaseHex:
		return true
	default:
		return false
	}
}

// Radix returns the numeric radix.
func (b Base) Radix() int {
	return int(b)
}

// String returns the short symbol used on the keypad (DEC, BIN, OCT, HEX).
func (b Base) String() string {
	switch b {
	case BaseBinary:
		return "BIN"
	case BaseOctal:
		return "OCT"
	case BaseDecimal:
		return "DEC"
	case BaseHex:
		return "HEX"
	default:
		return "base(" + strconv.Itoa(int(b)) + ")"
	}
}

// Description returns a human-readable name.
func (b Base) Description() string {
	switch b {
	case BaseBinary:
		return "Binary"
	case BaseOctal:
		return "Octal"
	case BaseDecimal:
		return "Decimal"
	case BaseHex:
		return "Hexadecimal"
	default:
		return "Unknown"
	}
}

// Digits returns the digit characters available in this base.
func (b Base) Digits() string {
	if !b.IsValid() {
		return ""
	}
	return hexDigits[:b.Radix()]
}

// DigitFor returns the display digit for a remainder in [0, radix).
func (b Base) DigitFor(remainder int64) string {
	if remainder < 0 || remainder >= int64(b.Radix()) {
		return ""
	}
	return hexDigits[remainder : remainder+1]
}

// IsValidDigit reports whether r is a digit of this base.
// Hex letters are accepted in either case.
func (b Base) IsValidDigit(r rune) bool {
	if !b.IsValid() {
		return false
	}
	return strings.ContainsRune(b.Digits(), toUpper(r))
}

// Next returns the base after b in keypad order, wrapping around.
func (b Base) Next() Base {
	all := AllBases()
	for i, base := range all {
		if base == b {
			return all[(i+1)%len(all)]
		}
	}
	return BaseDecimal
}

// Prev returns the base before b in keypad order, wrapping around.
func (b Base) Prev() Base {
	all := AllBases()
	for i, base := range all {
		if base == b {
			return all[(i+len(all)-1)%len(all)]
		}
	}
	return BaseDecimal
}

// ParseBase reads a base from its symbol (BIN), long name (binary) or radix (2).
// Matching is case-insensitive.
func ParseBase(s string) (Base, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bin", "binary", "2":
		return BaseBinary, nil
	case "oct", "octal", "8":
		return BaseOctal, nil
	case "dec", "decimal", "10":
		return BaseDecimal, nil
	case "hex", "hexadecimal", "16":
		return BaseHex, nil
	default:
		return 0, ErrUnsupportedBase
	}
}

// MarshalText encodes the base as its symbol, so JSON and YAML output
// read "HEX" rather than 16.
func (b Base) MarshalText() ([]byte, error) {
	if !b.IsValid() {
		return nil, ErrUnsupportedBase
	}
	return []byte(b.String()), nil
}

// UnmarshalText accepts anything ParseBase does.
func (b *Base) UnmarshalText(text []byte) error {
	base, err := ParseBase(string(text))
	if err != nil {
		return err
	}
	*b = base
	return nil
}

// NormaliseDigits upper-cases hex letters in s.
func NormaliseDigits(s string) string {
	return strings.ToUpper(s)
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}
