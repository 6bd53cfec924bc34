package receipt

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/online-shop-nota/internal/application/dto"
	"github.com/jhoicas/online-shop-nota/internal/domain/pricing"
	"github.com/jhoicas/online-shop-nota/pkg/money"
)

// DateLayout equivale a dd-MM-yyyy HH:mm:ss.
const DateLayout = "02-01-2006 15:04:05"

// ThankYouLine cierra la nota guardada en archivo.
const ThankYouLine = "Terima kasih telah berbelanja di Online Shop kami!"

var (
	discountLabel = fmt.Sprintf("Diskon (%d%%)", pricing.DiscountPercent)
	taxLabel      = fmt.Sprintf("Pajak (%d%%)", pricing.TaxPercent)
)

// ConsoleText devuelve la nota tal como se muestra en pantalla.
func ConsoleText(r dto.Receipt) string {
	var b strings.Builder
	line := func(label, value string) {
		fmt.Fprintf(&b, "%-17s : %s\n", label, value)
	}

	b.WriteString("=== INFORMASI PESANAN ===\n")
	line("Tanggal Pemesanan", r.Date.Format(DateLayout))
	line("Nama Customer", r.CustomerName)
	line("Alamat", r.CustomerAddress)
	line("Nomor Telepon", r.CustomerPhone)
	line("Barang", r.ItemName)
	line("Harga Satuan", money.Rupiah(r.UnitPrice))
	line("Jumlah", fmt.Sprint(r.Quantity))
	b.WriteString("-------------------------------\n")
	line("Subtotal", money.Rupiah(r.Subtotal))
	line(discountLabel, money.Rupiah(r.Discount))
	line(taxLabel, money.Rupiah(r.Tax))
	line("Total Bayar", money.Rupiah(r.Total))
	b.WriteString("=================================\n")
	return b.String()
}

// FileText devuelve la nota en el formato del archivo .txt.
func FileText(r dto.Receipt) string {
	var b strings.Builder
	line := func(label, value string) {
		fmt.Fprintf(&b, "%s : %s\n", label, value)
	}

	b.WriteString("=== NOTA PEMESANAN ONLINE SHOP ===\n")
	line("Tanggal", r.Date.Format(DateLayout))
	line("Nama Customer", r.CustomerName)
	line("Alamat", r.CustomerAddress)
	line("Nomor", r.CustomerPhone)
	b.WriteString("-------------------------------\n")
	line("Barang", r.ItemName)
	line("Harga Satuan", money.Rupiah(r.UnitPrice))
	line("Jumlah", fmt.Sprint(r.Quantity))
	line("Subtotal", money.Rupiah(r.Subtotal))
	line(discountLabel, money.Rupiah(r.Discount))
	line(taxLabel, money.Rupiah(r.Tax))
	line("Total Bayar", money.Rupiah(r.Total))
	b.WriteString("===============================\n")
	b.WriteString(ThankYouLine + "\n")
	return b.String()
}

// FileName deriva el nombre del archivo: nota_<nombre en minúsculas, espacios por "_">.txt
func FileName(customerName string) string {
	return baseName(customerName) + ".txt"
}

// PDFFileName es FileName con extensión .pdf.
func PDFFileName(customerName string) string {
	return baseName(customerName) + ".pdf"
}

func baseName(customerName string) string {
	lower := cases.Lower(language.Und).String(customerName)
	return "nota_" + strings.ReplaceAll(lower, " ", "_")
}
