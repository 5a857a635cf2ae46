package billing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/facturacion-tw/internal/domain/billing"
)

func TestSequence(t *testing.T) {
	tests := []struct {
		name   string
		number string
		want   int
	}{
		{"número normal", "TW0007", 7},
		{"cuatro dígitos llenos", "TW9999", 9999},
		{"más de cuatro dígitos", "TW10000", 10000},
		{"vacío vale cero", "", 0},
		{"mal formado vale cero", "FACT-01", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, billing.Sequence(tt.number))
		})
	}
}

func TestNextNumber(t *testing.T) {
	tests := []struct {
		name string
		last string
		want string
	}{
		{"serie vacía arranca en 1", "", "TW0001"},
		{"consecutivo normal", "TW0006", "TW0007"},
		{"relleno a cuatro dígitos", "TW0099", "TW0100"},
		{"más de cuatro dígitos no se recorta", "TW9999", "TW10000"},
		{"último mal formado reinicia la serie", "FACT-01", "TW0001"},
		{"prefijo sin número reinicia la serie", "TW", "TW0001"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, billing.NextNumber(tt.last))
		})
	}
}
