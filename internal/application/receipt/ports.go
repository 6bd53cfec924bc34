package receipt

import (
	"context"

	"github.com/jhoicas/online-shop-nota/internal/application/dto"
)

// FileStore persiste el contenido de una nota con el nombre dado y devuelve la ruta final.
// La implementación debe cerrar el recurso en todos los caminos.
type FileStore interface {
	Save(name string, content []byte) (path string, err error)
}

// ReceiptPDFGenerator genera la representación PDF de la nota.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, r dto.Receipt) ([]byte, error)
}
