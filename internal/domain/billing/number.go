package billing

import (
	"fmt"
	"strconv"
	"strings"
)

// NumberPrefix prefijo de los números de factura.
const NumberPrefix = "TW"

// Sequence extrae la parte numérica de un número de factura (TW0007 -> 7).
// Un número vacío o mal formado vale 0. Comparar números por secuencia y no
// como cadenas: "TW9999" ordena lexicográficamente después de "TW10000".
func Sequence(number string) int {
	n, err := strconv.Atoi(strings.TrimPrefix(number, NumberPrefix))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// NextNumber genera el siguiente número consecutivo a partir del último
// número conocido (TW0007 -> TW0008). Un último número vacío o mal formado
// arranca la serie en TW0001.
func NextNumber(last string) string {
	return fmt.Sprintf("%s%04d", NumberPrefix, Sequence(last)+1)
}
