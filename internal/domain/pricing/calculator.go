// Package pricing implementa el cálculo de la nota (servicio de dominio puro):
//
//	subtotal  = precio * cantidad
//	descuento = subtotal * DiscountRate()
//	neto      = subtotal - descuento
//	impuesto  = neto * TaxRate()
//	total     = neto + impuesto
package pricing

import "github.com/shopspring/decimal"

// Porcentajes fijos para toda la ejecución.
const (
	DiscountPercent = 10
	TaxPercent      = 11
)

// DiscountRate devuelve DiscountPercent como fracción (0.10).
func DiscountRate() decimal.Decimal { return decimal.New(DiscountPercent, -2) }

// TaxRate devuelve TaxPercent como fracción (0.11).
func TaxRate() decimal.Decimal { return decimal.New(TaxPercent, -2) }

// Breakdown contiene los cinco valores derivados, en el orden en que se calculan.
type Breakdown struct {
	Subtotal           decimal.Decimal
	Discount           decimal.Decimal
	DiscountedSubtotal decimal.Decimal
	Tax                decimal.Decimal
	Total              decimal.Decimal
}

// Calculate deriva el desglose a partir de precio y cantidad. No redondea ni valida:
// la validación de entradas vive en entity.NewItem.
func Calculate(unitPrice decimal.Decimal, quantity int) Breakdown {
	subtotal := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	discount := subtotal.Mul(DiscountRate())
	net := subtotal.Sub(discount)
	tax := net.Mul(TaxRate())
	return Breakdown{
		Subtotal:           subtotal,
		Discount:           discount,
		DiscountedSubtotal: net,
		Tax:                tax,
		Total:              net.Add(tax),
	}
}
