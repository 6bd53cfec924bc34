package receipt

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jhoicas/online-shop-nota/internal/application/dto"
	"github.com/jhoicas/online-shop-nota/internal/domain/entity"
	"github.com/jhoicas/online-shop-nota/internal/domain/pricing"
	"github.com/jhoicas/online-shop-nota/pkg/logger"
)

// UseCase calcula la nota de una orden, la muestra y la guarda.
type UseCase struct {
	store FileStore
	pdf   ReceiptPDFGenerator // nil = no se genera PDF
	out   io.Writer
	log   *logger.Logger
}

// NewUseCase construye el caso de uso. pdf puede ser nil.
func NewUseCase(store FileStore, pdf ReceiptPDFGenerator, out io.Writer, log *logger.Logger) *UseCase {
	return &UseCase{store: store, pdf: pdf, out: out, log: log}
}

// Build arma el contrato compartido de la nota a partir de la orden.
func Build(order entity.Order) dto.Receipt {
	b := pricing.Calculate(order.Item.UnitPrice, order.Item.Quantity)
	return dto.Receipt{
		OrderID:            order.ID,
		Date:               order.Date,
		CustomerName:       order.Customer.Name,
		CustomerAddress:    order.Customer.Address,
		CustomerPhone:      order.Customer.Phone,
		ItemName:           order.Item.Name,
		UnitPrice:          order.Item.UnitPrice,
		Quantity:           order.Item.Quantity,
		Subtotal:           b.Subtotal,
		Discount:           b.Discount,
		DiscountedSubtotal: b.DiscountedSubtotal,
		Tax:                b.Tax,
		Total:              b.Total,
	}
}

// Display escribe la nota en la salida de consola.
func (uc *UseCase) Display(r dto.Receipt) {
	_, _ = io.WriteString(uc.out, ConsoleText(r))
}

// SaveText guarda la nota de texto y devuelve la ruta escrita.
func (uc *UseCase) SaveText(r dto.Receipt) (string, error) {
	path, err := uc.store.Save(FileName(r.CustomerName), []byte(FileText(r)))
	if err != nil {
		return "", fmt.Errorf("guardar nota: %w", err)
	}
	return path, nil
}

// SavePDF genera y guarda la nota en PDF. Requiere generador configurado.
func (uc *UseCase) SavePDF(ctx context.Context, r dto.Receipt) (string, error) {
	if uc.pdf == nil {
		return "", errors.New("guardar nota pdf: generador no configurado")
	}
	doc, err := uc.pdf.GenerateReceiptPDF(ctx, r)
	if err != nil {
		return "", fmt.Errorf("guardar nota pdf: %w", err)
	}
	path, err := uc.store.Save(PDFFileName(r.CustomerName), doc)
	if err != nil {
		return "", fmt.Errorf("guardar nota pdf: %w", err)
	}
	return path, nil
}

// Issue ejecuta el flujo completo: calcular → mostrar → guardar archivo (→ PDF).
// Un fallo al guardar se informa en la salida y en el log; nunca interrumpe la
// nota ya mostrada ni se propaga al llamador.
func (uc *UseCase) Issue(ctx context.Context, order entity.Order) dto.Receipt {
	r := Build(order)
	uc.log.Info().
		Str("order_id", r.OrderID).
		Str("customer", r.CustomerName).
		Str("total", r.Total.String()).
		Msg("nota calculada")

	uc.Display(r)

	path, err := uc.SaveText(r)
	uc.report(r.OrderID, path, err)

	if uc.pdf != nil {
		path, err = uc.SavePDF(ctx, r)
		uc.report(r.OrderID, path, err)
	}
	return r
}

func (uc *UseCase) report(orderID, path string, err error) {
	if err != nil {
		uc.log.Error().Err(err).Str("order_id", orderID).Msg("no se pudo guardar la nota")
		fmt.Fprintf(uc.out, "❌ Terjadi kesalahan saat menyimpan nota: %v\n", err)
		return
	}
	uc.log.Info().Str("order_id", orderID).Str("path", path).Msg("nota guardada")
	fmt.Fprintf(uc.out, "\n✅ Nota berhasil disimpan ke file: %s\n", path)
}
