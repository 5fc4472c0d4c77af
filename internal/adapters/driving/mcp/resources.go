package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/radix-cli/internal/core/domain"
)

const (
	// URIScheme is the custom URI scheme for radix resources.
	uriScheme = "radix://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource describing the supported bases.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "bases",
		Name:        "bases",
		Description: "Supported number bases and their digits",
		MIMEType:    "application/json",
	}, s.handleBasesResource)

	// Template for the conversions of one value.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "conversions/{value}",
		Name:        "conversions",
		Description: "A decimal value converted to every base with division steps",
		MIMEType:    "application/json",
	}, s.handleConversionsResource)
}

// handleBasesResource returns the list of supported bases.
func (s *Server) handleBasesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	type baseInfo struct {
		Symbol      string `json:"symbol"`
		Radix       int    `json:"radix"`
		Description string `json:"description"`
		Digits      string `json:"digits"`
	}

	bases := domain.AllBases()
	infos := make([]baseInfo, len(bases))
	for i, b := range bases {
		infos[i] = baseInfo{
			Symbol:      b.String(),
			Radix:       b.Radix(),
			Description: b.Description(),
			Digits:      b.Digits(),
		}
	}

	return jsonResult(req.Params.URI, infos, "bases")
}

// handleConversionsResource returns every conversion of the value in the URI.
func (s *Server) handleConversionsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	value, ok := extractValue(req.Params.URI)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	set, err := s.ports.Converter.ConvertAll(value)
	if err != nil {
		return nil, fmt.Errorf("converting %d: %w", value, err)
	}

	output := ConvertOutput{Value: value}
	for _, base := range domain.AllBases() {
		output.Conversions = append(output.Conversions, toConversionOutput(set.In(base)))
	}

	return jsonResult(req.Params.URI, output, "conversions")
}

func jsonResult(uri string, v any, what string) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", what, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractValue extracts the decimal value from a URI like radix://conversions/{value}.
func extractValue(uri string) (int64, bool) {
	const prefix = uriScheme + "conversions/"

	if !strings.HasPrefix(uri, prefix) {
		return 0, false
	}

	value, err := strconv.ParseInt(strings.TrimPrefix(uri, prefix), 10, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
