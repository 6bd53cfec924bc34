package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receipt es el contrato compartido por todas las representaciones de la nota
// (consola, archivo de texto, PDF). Se construye una sola vez por orden.
type Receipt struct {
	OrderID         string
	Date            time.Time
	CustomerName    string
	CustomerAddress string
	CustomerPhone   string
	ItemName        string
	UnitPrice       decimal.Decimal
	Quantity        int

	Subtotal           decimal.Decimal
	Discount           decimal.Decimal
	DiscountedSubtotal decimal.Decimal
	Tax                decimal.Decimal
	Total              decimal.Decimal
}
