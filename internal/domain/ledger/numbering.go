package ledger

import (
	"strconv"
	"strings"
)

// NumberPrefix prefijo de los números de factura.
const NumberPrefix = "INV-"

// FirstSequence consecutivo de la primera factura.
const FirstSequence int64 = 1001

// FormatNumber construye "INV-<seq>".
func FormatNumber(seq int64) string {
	return NumberPrefix + strconv.FormatInt(seq, 10)
}

// ParseNumber extrae el consecutivo de "INV-<n>". Devuelve false si el formato no coincide.
func ParseNumber(number string) (int64, bool) {
	if !strings.HasPrefix(number, NumberPrefix) {
		return 0, false
	}
	n, err := strconv.ParseInt(number[len(NumberPrefix):], 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// NextSequence devuelve el consecutivo siguiente al mayor emitido.
// last == 0 significa que no hay facturas.
// El máximo se compara numéricamente: después de INV-999 viene INV-1000.
func NextSequence(last int64) int64 {
	if last <= 0 {
		return FirstSequence
	}
	return last + 1
}

// MaxSequence devuelve el mayor consecutivo entre los números dados, ignorando los mal formados.
func MaxSequence(numbers []string) int64 {
	var max int64
	for _, n := range numbers {
		if seq, ok := ParseNumber(n); ok && seq > max {
			max = seq
		}
	}
	return max
}
