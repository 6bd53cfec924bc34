package entity

import (
	"fmt"

	"github.com/jhoicas/online-shop-nota/internal/domain"
	"github.com/shopspring/decimal"
)

// Item representa el producto pedido: nombre, precio unitario y cantidad.
// Se maneja por valor; una vez construido no se modifica.
type Item struct {
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

// NewItem valida y construye un ítem. Precio y cantidad negativos se rechazan.
func NewItem(name string, unitPrice decimal.Decimal, quantity int) (Item, error) {
	if unitPrice.IsNegative() {
		return Item{}, fmt.Errorf("item %q: %w", name, domain.ErrNegativePrice)
	}
	if quantity < 0 {
		return Item{}, fmt.Errorf("item %q: %w", name, domain.ErrNegativeQuantity)
	}
	return Item{Name: name, UnitPrice: unitPrice, Quantity: quantity}, nil
}
