package entity

// Customer representa al comprador de la orden (datos impresos en la nota).
type Customer struct {
	Name    string
	Address string
	Phone   string
}

// NewCustomer construye el cliente. Los tres campos son texto libre.
func NewCustomer(name, address, phone string) Customer {
	return Customer{Name: name, Address: address, Phone: phone}
}
