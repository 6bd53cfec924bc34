package entity

import (
	"time"

	"github.com/google/uuid"
)

// Order agrupa exactamente un Item con exactamente un Customer.
// La fecha se captura una sola vez al construir la orden y es la que muestran
// todas las representaciones de la nota.
type Order struct {
	ID       string // solo para correlación en logs; no se imprime
	Item     Item
	Customer Customer
	Date     time.Time
}

// NewOrder construye la orden con la hora actual.
func NewOrder(item Item, customer Customer) Order {
	return NewOrderAt(item, customer, time.Now())
}

// NewOrderAt construye la orden con una fecha explícita (tests, reimpresiones).
func NewOrderAt(item Item, customer Customer, date time.Time) Order {
	return Order{
		ID:       uuid.New().String(),
		Item:     item,
		Customer: customer,
		Date:     date,
	}
}
