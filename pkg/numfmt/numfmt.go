// Package numfmt interpreta y formatea números en formato local (es-AR):
// punto como separador de miles y coma decimal ("1.234,56").
package numfmt

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Placeholder se muestra cuando no hay valor.
const Placeholder = "—"

// symbols quita moneda y porcentaje; AR$ y ARS van antes que $ a propósito.
var symbols = strings.NewReplacer("AR$", "", "ARS", "", "$", "", "%", "")

// stripSpaces elimina todo espacio Unicode (incluido el NBSP que pegan las planillas).
var stripSpaces = runes.Remove(runes.In(unicode.White_Space))

// Parse interpreta texto numérico infiriendo el separador decimal:
//
//	"1.234,56" -> 1234.56   "1,234.56" -> 1234.56   "1.234" -> 1234
//	"12,5"     -> 12.5      "(150)"    -> -150      "$ 99"  -> 99
//
// Retorna false si el texto no tiene dígitos o trae caracteres ajenos a un número.
func Parse(text string) (decimal.Decimal, bool) {
	cleaned, _, err := transform.String(stripSpaces, text)
	if err != nil {
		return decimal.Zero, false
	}
	s := symbols.Replace(cleaned)
	if s == "" || strings.Trim(s, "0123456789.,+-()") != "" {
		return decimal.Zero, false
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}
	if strings.HasPrefix(s, "-") {
		negative = true
	}
	s = strings.TrimLeft(s, "+-")
	if !strings.ContainsAny(s, "0123456789") {
		return decimal.Zero, false
	}

	var number string
	if sep := inferDecimalSeparator(s); sep != "" {
		idx := strings.LastIndex(s, sep)
		intDigits := digitsOnly(s[:idx])
		if intDigits == "" {
			intDigits = "0"
		}
		number = intDigits
		if frac := digitsOnly(s[idx+1:]); frac != "" {
			number += "." + frac
		}
	} else {
		number = digitsOnly(s)
	}
	if negative && number != "0" {
		number = "-" + number
	}

	d, err := decimal.NewFromString(number)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

func inferDecimalSeparator(s string) string {
	lastDot := strings.LastIndex(s, ".")
	lastComma := strings.LastIndex(s, ",")
	switch {
	case lastDot >= 0 && lastComma >= 0:
		if lastDot > lastComma {
			return "."
		}
		return ","
	case lastDot >= 0:
		return inferSingleSeparator(s, ".")
	case lastComma >= 0:
		return inferSingleSeparator(s, ",")
	}
	return ""
}

// inferSingleSeparator decide si sep es decimal o de miles cuando es el único
// separador presente.
func inferSingleSeparator(s, sep string) string {
	parts := strings.Split(s, sep)
	if len(parts) == 2 {
		before := len(digitsOnly(parts[0]))
		after := len(digitsOnly(parts[1]))
		switch {
		case after == 0:
			return ""
		case after <= 2:
			return sep
		case after == 3 && before >= 1:
			return ""
		}
		return sep
	}

	groupsOfThree := true
	for _, p := range parts[1:] {
		if g := digitsOnly(p); g != "" && len(g) != 3 {
			groupsOfThree = false
			break
		}
	}
	if groupsOfThree {
		return ""
	}
	if len(digitsOnly(parts[len(parts)-1])) <= 2 {
		return sep
	}
	return ""
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatDecimal redondea a places decimales (mitad hacia arriba) y agrupa miles.
// Ej: 1234567.891 con 2 -> "1.234.567,89".
func FormatDecimal(d decimal.Decimal, places int32) string {
	if places < 0 {
		places = 0
	}
	q := d.Round(places)
	sign := ""
	if q.IsNegative() {
		sign = "-"
		q = q.Neg()
	}
	raw := q.StringFixed(places)
	intPart, fracPart, _ := strings.Cut(raw, ".")
	if places == 0 {
		return sign + groupThousands(intPart)
	}
	return sign + groupThousands(intPart) + "," + fracPart
}

// FormatCurrency formatea un importe con símbolo y 2 decimales.
func FormatCurrency(d decimal.Decimal) string {
	return "$" + FormatDecimal(d, 2)
}

// FormatPercent formatea un porcentaje: 21 -> "21,00%".
func FormatPercent(d decimal.Decimal, places int32) string {
	return FormatDecimal(d, places) + "%"
}

// FormatNullable como FormatCurrency pero con Placeholder si el valor no es válido.
func FormatNullable(d decimal.NullDecimal) string {
	if !d.Valid {
		return Placeholder
	}
	return FormatCurrency(d.Decimal)
}

func groupThousands(digits string) string {
	if digits == "" {
		return "0"
	}
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	for i, c := range digits {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(c)
	}
	return b.String()
}
