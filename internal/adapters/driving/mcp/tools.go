package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/radix-cli/internal/core/domain"
)

// ConvertInput is the input schema for the convert tool.
type ConvertInput struct {
	Value int64  `json:"value" jsonschema:"the non-negative decimal integer to convert"`
	Base  string `json:"base,omitempty" jsonschema:"target base: BIN, OCT, DEC or HEX (default: all bases)"`
}

// ConvertOutput is the output schema for the convert tool.
type ConvertOutput struct {
	Value       int64              `json:"value"`
	Conversions []ConversionOutput `json:"conversions"`
}

// ConversionOutput is one base's representation and its division trace.
type ConversionOutput struct {
	Base           string   `json:"base"`
	Radix          int      `json:"radix"`
	Representation string   `json:"representation"`
	Steps          []string `json:"steps"`
}

// ToDecimalInput is the input schema for the to_decimal tool.
type ToDecimalInput struct {
	Digits string `json:"digits" jsonschema:"the digits to parse, optionally with a leading minus sign"`
	Base   string `json:"base" jsonschema:"base the digits are written in: BIN, OCT, DEC or HEX"`
}

// ToDecimalOutput is the output schema for the to_decimal tool.
type ToDecimalOutput struct {
	Digits          string                `json:"digits"`
	Base            string                `json:"base"`
	Decimal         int64                 `json:"decimal"`
	Representations RepresentationsOutput `json:"representations"`
}

// RepresentationsOutput is a value shown in all four bases.
type RepresentationsOutput struct {
	Binary  string `json:"binary"`
	Octal   string `json:"octal"`
	Decimal string `json:"decimal"`
	Hex     string `json:"hex"`
}

// EvaluateInput is the input schema for the evaluate tool.
type EvaluateInput struct {
	Operand1 string `json:"operand1" jsonschema:"first operand written in base"`
	Operator string `json:"operator" jsonschema:"+ or -"`
	Operand2 string `json:"operand2" jsonschema:"second operand written in base"`
	Base     string `json:"base,omitempty" jsonschema:"base of the operands and result: BIN, OCT, DEC or HEX (default DEC)"`
}

// EvaluateOutput is the output schema for the evaluate tool.
type EvaluateOutput struct {
	Result          string                `json:"result"`
	DecimalResult   int64                 `json:"decimal_result"`
	Explanation     string                `json:"explanation"`
	OperandSteps    []string              `json:"operand_steps"`
	DecimalStep     string                `json:"decimal_step"`
	Representations RepresentationsOutput `json:"representations"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "convert",
		Description: "Convert a non-negative decimal integer to binary, octal, decimal or hexadecimal with the repeated-division steps",
	}, s.handleConvert)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "to_decimal",
		Description: "Parse digits written in a base and return the value in every base",
	}, s.handleToDecimal)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "evaluate",
		Description: "Add or subtract two numbers written in the same base and explain the calculation",
	}, s.handleEvaluate)
}

// handleConvert handles the convert tool invocation.
func (s *Server) handleConvert(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ConvertInput,
) (*mcp.CallToolResult, ConvertOutput, error) {
	output := ConvertOutput{Value: input.Value}

	if input.Base != "" {
		base, err := domain.ParseBase(input.Base)
		if err != nil {
			return nil, ConvertOutput{}, err
		}
		conv, err := s.ports.Converter.Convert(input.Value, base)
		if err != nil {
			return nil, ConvertOutput{}, fmt.Errorf("convert %d: %w", input.Value, err)
		}
		output.Conversions = []ConversionOutput{toConversionOutput(conv)}
		return nil, output, nil
	}

	set, err := s.ports.Converter.ConvertAll(input.Value)
	if err != nil {
		return nil, ConvertOutput{}, fmt.Errorf("convert %d: %w", input.Value, err)
	}
	for _, base := range domain.AllBases() {
		output.Conversions = append(output.Conversions, toConversionOutput(set.In(base)))
	}

	return nil, output, nil
}

// handleToDecimal handles the to_decimal tool invocation.
func (s *Server) handleToDecimal(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ToDecimalInput,
) (*mcp.CallToolResult, ToDecimalOutput, error) {
	base, err := domain.ParseBase(input.Base)
	if err != nil {
		return nil, ToDecimalOutput{}, err
	}

	value, err := s.ports.Converter.ToDecimal(input.Digits, base)
	if err != nil {
		return nil, ToDecimalOutput{}, err
	}

	return nil, ToDecimalOutput{
		Digits:          domain.NormaliseDigits(input.Digits),
		Base:            base.String(),
		Decimal:         value,
		Representations: toRepresentationsOutput(s.ports.Converter.FromDecimal(value)),
	}, nil
}

// handleEvaluate handles the evaluate tool invocation.
func (s *Server) handleEvaluate(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input EvaluateInput,
) (*mcp.CallToolResult, EvaluateOutput, error) {
	base := domain.BaseDecimal
	if input.Base != "" {
		parsed, err := domain.ParseBase(input.Base)
		if err != nil {
			return nil, EvaluateOutput{}, err
		}
		base = parsed
	}

	operator, err := domain.ParseOperator(input.Operator)
	if err != nil {
		return nil, EvaluateOutput{}, err
	}

	calc, err := s.ports.Calculator.Evaluate(input.Operand1, input.Operand2, operator, base)
	if err != nil {
		return nil, EvaluateOutput{}, fmt.Errorf("evaluate: %w", err)
	}

	return nil, EvaluateOutput{
		Result:          calc.Step.Result,
		DecimalResult:   calc.Step.DecimalResult,
		Explanation:     calc.Step.Explanation,
		OperandSteps:    calc.Step.OperandLines(),
		DecimalStep:     calc.Step.DecimalLine(),
		Representations: toRepresentationsOutput(calc.Result),
	}, nil
}

func toConversionOutput(conv *domain.Conversion) ConversionOutput {
	return ConversionOutput{
		Base:           conv.Base.String(),
		Radix:          conv.Base.Radix(),
		Representation: conv.Representation,
		Steps:          conv.StepLines(),
	}
}

func toRepresentationsOutput(r domain.Representations) RepresentationsOutput {
	return RepresentationsOutput{
		Binary:  r.Binary,
		Octal:   r.Octal,
		Decimal: r.In(domain.BaseDecimal),
		Hex:     r.Hex,
	}
}
