package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/radix-cli/internal/core/domain"
	"github.com/custodia-labs/radix-cli/internal/core/services"
)

func TestServer_handleConvert(t *testing.T) {
	ctx := context.Background()
	server := newTestServer()

	t.Run("single base with steps", func(t *testing.T) {
		_, output, err := server.handleConvert(ctx, nil, ConvertInput{Value: 255, Base: "hex"})

		require.NoError(t, err)
		require.Len(t, output.Conversions, 1)
		conv := output.Conversions[0]
		assert.Equal(t, "HEX", conv.Base)
		assert.Equal(t, 16, conv.Radix)
		assert.Equal(t, "FF", conv.Representation)
		assert.Equal(t, []string{
			"255 ÷ 16 = 15 remainder 15 (F)",
			"15 ÷ 16 = 0 remainder 15 (F)",
			"Reading remainders from bottom to top: FF",
		}, conv.Steps)
	})

	t.Run("all bases when base omitted", func(t *testing.T) {
		_, output, err := server.handleConvert(ctx, nil, ConvertInput{Value: 10})

		require.NoError(t, err)
		require.Len(t, output.Conversions, 4)
		got := map[string]string{}
		for _, c := range output.Conversions {
			got[c.Base] = c.Representation
		}
		assert.Equal(t, map[string]string{"DEC": "10", "BIN": "1010", "OCT": "12", "HEX": "A"}, got)
	})

	t.Run("negative value", func(t *testing.T) {
		_, _, err := server.handleConvert(ctx, nil, ConvertInput{Value: -1, Base: "BIN"})

		assert.ErrorIs(t, err, domain.ErrNegativeValue)
	})

	t.Run("unknown base", func(t *testing.T) {
		_, _, err := server.handleConvert(ctx, nil, ConvertInput{Value: 1, Base: "base7"})

		assert.ErrorIs(t, err, domain.ErrUnsupportedBase)
	})
}

func TestServer_handleToDecimal(t *testing.T) {
	ctx := context.Background()
	server := newTestServer()

	t.Run("parses hex", func(t *testing.T) {
		_, output, err := server.handleToDecimal(ctx, nil, ToDecimalInput{Digits: "ff", Base: "HEX"})

		require.NoError(t, err)
		assert.Equal(t, "FF", output.Digits)
		assert.Equal(t, "HEX", output.Base)
		assert.Equal(t, int64(255), output.Decimal)
		assert.Equal(t, "11111111", output.Representations.Binary)
		assert.Equal(t, "377", output.Representations.Octal)
		assert.Equal(t, "255", output.Representations.Decimal)
	})

	t.Run("invalid digit", func(t *testing.T) {
		_, _, err := server.handleToDecimal(ctx, nil, ToDecimalInput{Digits: "102", Base: "BIN"})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("missing base", func(t *testing.T) {
		_, _, err := server.handleToDecimal(ctx, nil, ToDecimalInput{Digits: "1"})

		assert.Error(t, err)
	})
}

func TestServer_handleEvaluate(t *testing.T) {
	ctx := context.Background()

	t.Run("binary addition", func(t *testing.T) {
		server := newTestServer()

		_, output, err := server.handleEvaluate(ctx, nil, EvaluateInput{
			Operand1: "101", Operator: "+", Operand2: "11", Base: "BIN",
		})

		require.NoError(t, err)
		assert.Equal(t, "1000", output.Result)
		assert.Equal(t, int64(8), output.DecimalResult)
		assert.Equal(t, "101 + 11 = 1000 (in BIN)", output.Explanation)
		assert.Equal(t, []string{"101 (BIN) = 5 (DEC)", "11 (BIN) = 3 (DEC)"}, output.OperandSteps)
		assert.Equal(t, "5 + 3 = 8", output.DecimalStep)
		assert.Equal(t, "10", output.Representations.Octal)
	})

	t.Run("defaults to decimal", func(t *testing.T) {
		server := newTestServer()

		_, output, err := server.handleEvaluate(ctx, nil, EvaluateInput{
			Operand1: "3", Operator: "-", Operand2: "5",
		})

		require.NoError(t, err)
		assert.Equal(t, "-2", output.Result)
	})

	t.Run("unknown operator is rejected before evaluation", func(t *testing.T) {
		calc := &mockCalculator{}
		server, err := NewServer(&Ports{Converter: services.NewConverterService(), Calculator: calc})
		require.NoError(t, err)

		_, _, err = server.handleEvaluate(ctx, nil, EvaluateInput{Operand1: "1", Operator: "*", Operand2: "2"})

		assert.ErrorIs(t, err, domain.ErrUnsupportedOperator)
		assert.Zero(t, calc.calls)
	})

	t.Run("calculator error is wrapped", func(t *testing.T) {
		calc := &mockCalculator{err: errors.New("boom")}
		server, err := NewServer(&Ports{Converter: services.NewConverterService(), Calculator: calc})
		require.NoError(t, err)

		_, _, err = server.handleEvaluate(ctx, nil, EvaluateInput{Operand1: "1", Operator: "+", Operand2: "2"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "evaluate: boom")
	})
}
