package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/radix-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/radix-cli/internal/core/domain"
	"github.com/custodia-labs/radix-cli/internal/core/services"
)

func newTestPorts() *Ports {
	converter := services.NewConverterService()
	calculator := services.NewCalculatorService(converter)
	return &Ports{
		Converter: converter,
		Keypad:    services.NewKeypad(converter, calculator, domain.BaseDecimal),
		Settings:  services.NewSettingsService(memory.NewConfigStore()),
	}
}

func TestNewPorts(t *testing.T) {
	converter := services.NewConverterService()
	keypad := services.NewKeypad(nil, nil, domain.BaseBinary)

	ports := NewPorts(converter, keypad)

	require.NotNil(t, ports)
	assert.Equal(t, converter, ports.Converter)
	assert.Equal(t, keypad, ports.Keypad)
	assert.Nil(t, ports.Settings)
	assert.NoError(t, ports.Validate())
}

func TestPorts_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Ports)
		wantErr error
	}{
		{name: "all set", mutate: func(*Ports) {}},
		{name: "settings optional", mutate: func(p *Ports) { p.Settings = nil }},
		{name: "missing converter", mutate: func(p *Ports) { p.Converter = nil }, wantErr: ErrMissingConverter},
		{name: "missing keypad", mutate: func(p *Ports) { p.Keypad = nil }, wantErr: ErrMissingKeypad},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ports := newTestPorts()
			tt.mutate(ports)

			err := ports.Validate()

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
