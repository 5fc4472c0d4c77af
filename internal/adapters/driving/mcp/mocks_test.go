package mcp

import (
	"github.com/custodia-labs/radix-cli/internal/core/domain"
	"github.com/custodia-labs/radix-cli/internal/core/services"
)

// mockCalculator is a mock implementation of driving.CalculatorService.
type mockCalculator struct {
	calc  *domain.Calculation
	err   error
	calls int
}

func (m *mockCalculator) Evaluate(_, _ string, _ domain.Operator, _ domain.Base) (*domain.Calculation, error) {
	m.calls++
	return m.calc, m.err
}

// newTestServer builds a server backed by the real conversion engine.
func newTestServer() *Server {
	converter := services.NewConverterService()
	server, err := NewServer(&Ports{
		Converter:  converter,
		Calculator: services.NewCalculatorService(converter),
	})
	if err != nil {
		panic(err)
	}
	return server
}
