package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNegativePrice    = errors.New("el precio unitario no puede ser negativo")
	ErrNegativeQuantity = errors.New("la cantidad no puede ser negativa")
)
