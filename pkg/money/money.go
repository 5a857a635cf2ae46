// Package money concentra la tabla estática de tasas de cambio y el formato
// de montos por moneda. Es un asunto de presentación: el cálculo de totales
// nunca convierte moneda.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Códigos de moneda soportados.
const (
	COP = "COP"
	USD = "USD"
	EUR = "EUR"
)

// Tasas de cambio respecto al peso colombiano (snapshot estático; no hay
// integración con un proveedor de tasas).
var rates = map[string]decimal.Decimal{
	COP: decimal.NewFromInt(1),
	USD: decimal.NewFromFloat(4050.50),
	EUR: decimal.NewFromFloat(4320.10),
}

// Rate devuelve la tasa en COP de una unidad de la moneda dada.
func Rate(code string) (decimal.Decimal, bool) {
	r, ok := rates[code]
	return r, ok
}

// Rates devuelve una copia de la tabla de tasas.
func Rates() map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(rates))
	for code, r := range rates {
		out[code] = r
	}
	return out
}

// ToCOP convierte un monto expresado en la moneda dada a pesos colombianos.
// Monedas desconocidas se tratan como COP.
func ToCOP(amount decimal.Decimal, code string) decimal.Decimal {
	r, ok := rates[code]
	if !ok {
		return amount
	}
	return amount.Mul(r)
}

// FromCOP convierte un monto en pesos colombianos a la moneda dada.
func FromCOP(amount decimal.Decimal, code string) decimal.Decimal {
	r, ok := rates[code]
	if !ok || r.IsZero() {
		return amount
	}
	return amount.Div(r)
}

// currencyFormat reglas de presentación por moneda.
type currencyFormat struct {
	tag    language.Tag
	symbol string
	scale  int
	suffix bool // el símbolo va después del monto (EUR)
}

var formats = map[string]currencyFormat{
	COP: {tag: language.MustParse("es-CO"), symbol: "$ ", scale: 0},
	USD: {tag: language.AmericanEnglish, symbol: "$", scale: 2},
	EUR: {tag: language.EuropeanSpanish, symbol: "€", scale: 2, suffix: true},
}

// Format presenta un monto con separadores, decimales y símbolo según la
// moneda: COP sin decimales (es-CO), USD con dos (en-US), EUR con dos (es-ES).
func Format(amount decimal.Decimal, code string) string {
	f, ok := formats[code]
	if !ok {
		f = formats[COP]
	}
	r := amount.Round(int32(f.scale))
	p := message.NewPrinter(f.tag)

	// La parte entera se formatea como entero: pasarla por float64 pierde
	// precisión más allá de 2^53.
	entero := r.IntPart()
	digits := p.Sprintf("%v", number.Decimal(entero))
	if entero == 0 && r.IsNegative() {
		digits = "-" + digits
	}
	if f.scale > 0 {
		frac, _ := r.Sub(decimal.NewFromInt(entero)).Abs().Float64()
		fracDigits := p.Sprintf("%v", number.Decimal(frac, number.Scale(f.scale)))
		digits += strings.TrimPrefix(fracDigits, "0")
	}
	if f.suffix {
		return digits + " " + f.symbol
	}
	return f.symbol + digits
}
