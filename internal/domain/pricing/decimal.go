// Package pricing implementa el motor de totales de documentos (facturas,
// presupuestos, notas de crédito): normaliza importes, resuelve descuentos de
// línea, prorratea el descuento global y calcula impuestos con su desglose
// por alícuota.
//
// El motor es puro: no hace I/O, no guarda estado y nunca retorna error. Las
// entradas inválidas se convierten en cero y quedan registradas en
// DocumentTotals.Diagnostics para que el llamador decida si advertir al usuario.
package pricing

import (
	"encoding/json"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Documentos-api/pkg/numfmt"
)

// Precisión interna (valores intermedios) y de moneda (totales expuestos).
const (
	InternalPlaces int32 = 4
	CurrencyPlaces int32 = 2
)

var hundred = decimal.NewFromInt(100)

// Límites de magnitud aceptados en la entrada. Fuera de ellos redondear a 4
// decimales cuesta memoria proporcional al exponente ("1e999999999").
const (
	maxTextLen  = 64
	maxDigits   = 34
	maxExponent = 18
	minExponent = -28
)

// Outcome indica cómo se obtuvo un valor normalizado.
type Outcome uint8

const (
	// OutcomeParsed el valor se interpretó correctamente.
	OutcomeParsed Outcome = iota
	// OutcomeMissing el valor estaba ausente o vacío; se usó cero.
	OutcomeMissing
	// OutcomeInvalid el valor no se pudo interpretar; se usó cero.
	OutcomeInvalid
)

func (o Outcome) String() string {
	switch o {
	case OutcomeParsed:
		return "parsed"
	case OutcomeMissing:
		return "missing"
	case OutcomeInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// ToDecimal convierte v a decimal exacto; cero si falta o es inválido.
func ToDecimal(v any) decimal.Decimal {
	d, _ := Normalize(v)
	return d
}

// Normalize convierte v a decimal exacto e informa el resultado de la conversión.
// Los float se convierten a través de su representación textual canónica para
// no arrastrar artefactos binarios (0.1 -> "0.1", no 0.1000000000000000055...).
//
// Valores con más de 34 dígitos significativos o exponente fuera de [-28, 18]
// se tratan como inválidos.
func Normalize(v any) (decimal.Decimal, Outcome) {
	d, outcome := normalize(v)
	if outcome == OutcomeParsed && !withinBounds(d) {
		return decimal.Zero, OutcomeInvalid
	}
	return d, outcome
}

func withinBounds(d decimal.Decimal) bool {
	exp := d.Exponent()
	if exp > maxExponent || exp < minExponent {
		return false
	}
	return d.Coefficient().CmpAbs(coefficientLimit) < 0
}

// coefficientLimit = 10^maxDigits.
var coefficientLimit = new(big.Int).Exp(big.NewInt(10), big.NewInt(maxDigits), nil)

func normalize(v any) (decimal.Decimal, Outcome) {
	switch x := v.(type) {
	case nil:
		return decimal.Zero, OutcomeMissing
	case decimal.Decimal:
		return x, OutcomeParsed
	case *decimal.Decimal:
		if x == nil {
			return decimal.Zero, OutcomeMissing
		}
		return *x, OutcomeParsed
	case decimal.NullDecimal:
		if !x.Valid {
			return decimal.Zero, OutcomeMissing
		}
		return x.Decimal, OutcomeParsed
	case int:
		return decimal.NewFromInt(int64(x)), OutcomeParsed
	case int8:
		return decimal.NewFromInt(int64(x)), OutcomeParsed
	case int16:
		return decimal.NewFromInt(int64(x)), OutcomeParsed
	case int32:
		return decimal.NewFromInt(int64(x)), OutcomeParsed
	case int64:
		return decimal.NewFromInt(x), OutcomeParsed
	case uint:
		return fromUint(uint64(x)), OutcomeParsed
	case uint8:
		return fromUint(uint64(x)), OutcomeParsed
	case uint16:
		return fromUint(uint64(x)), OutcomeParsed
	case uint32:
		return fromUint(uint64(x)), OutcomeParsed
	case uint64:
		return fromUint(x), OutcomeParsed
	case float32:
		return fromFloat(float64(x), 32)
	case float64:
		return fromFloat(x, 64)
	case json.Number:
		return parseText(string(x))
	case string:
		return parseText(x)
	default:
		return decimal.Zero, OutcomeInvalid
	}
}

func fromUint(u uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(u), 0)
}

func fromFloat(f float64, bitSize int) (decimal.Decimal, Outcome) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, OutcomeInvalid
	}
	return parseText(strconv.FormatFloat(f, 'f', -1, bitSize))
}

// parseText acepta coma decimal ("12,5"). Si el parseo estricto falla se intenta
// el formato local con separadores de miles ("1.234,56", "$ 1,234.56").
func parseText(s string) (decimal.Decimal, Outcome) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, OutcomeMissing
	}
	if len(s) > maxTextLen {
		return decimal.Zero, OutcomeInvalid
	}
	if d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", ".")); err == nil {
		return d, OutcomeParsed
	}
	if d, ok := numfmt.Parse(s); ok {
		return d, OutcomeParsed
	}
	return decimal.Zero, OutcomeInvalid
}

func q4(d decimal.Decimal) decimal.Decimal { return d.Round(InternalPlaces) }

func q2(d decimal.Decimal) decimal.Decimal { return d.Round(CurrencyPlaces) }

// signOf devuelve +1 para importes >= 0 y -1 para negativos.
func signOf(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.NewFromInt(-1)
	}
	return decimal.NewFromInt(1)
}
