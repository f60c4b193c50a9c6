package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DocumentLevel es el índice de línea usado en diagnósticos de la cabecera.
const DocumentLevel = -1

// Issue tipo de corrección aplicada a un valor de entrada.
type Issue string

const (
	// IssueUnparseable el valor no era numérico y se tomó como cero.
	IssueUnparseable Issue = "unparseable"
	// IssueClamped el valor estaba fuera de rango y se acotó.
	IssueClamped Issue = "clamped"
)

// Diagnostic describe una entrada que el motor corrigió en silencio.
type Diagnostic struct {
	Line  int    // índice de la línea o DocumentLevel
	Field string // nombre del campo de entrada
	Issue Issue
	Raw   string // valor recibido, tal como llegó
}

type collector struct {
	items []Diagnostic
}

// value normaliza v y registra el diagnóstico si no se pudo interpretar.
func (c *collector) value(line int, field string, v any) (decimal.Decimal, Outcome) {
	d, outcome := Normalize(v)
	if outcome == OutcomeInvalid {
		c.items = append(c.items, Diagnostic{Line: line, Field: field, Issue: IssueUnparseable, Raw: fmt.Sprint(v)})
	}
	return d, outcome
}

// nonNegative normaliza v y lo acota a >= 0.
func (c *collector) nonNegative(line int, field string, v any) (decimal.Decimal, Outcome) {
	d, outcome := c.value(line, field, v)
	if d.IsNegative() {
		c.clamped(line, field, d)
		return decimal.Zero, outcome
	}
	return d, outcome
}

func (c *collector) clamped(line int, field string, raw decimal.Decimal) {
	c.items = append(c.items, Diagnostic{Line: line, Field: field, Issue: IssueClamped, Raw: raw.String()})
}
