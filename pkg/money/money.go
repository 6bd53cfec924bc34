// Package money formatea montos en rupias para la nota.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Rupiah devuelve el monto con prefijo "Rp ", puntos de miles y, solo si hay
// céntimos distintos de cero, coma decimal con dos dígitos.
// Ej: 600000 → "Rp 600.000", 1234.5 → "Rp 1.234,50".
func Rupiah(d decimal.Decimal) string {
	return "Rp " + Format(d)
}

// Format es Rupiah sin prefijo.
func Format(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	out := sign + groupThousands(intPart)
	if frac != "" && frac != "00" {
		out += "," + frac
	}
	return out
}

// groupThousands inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
