package receipt_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/online-shop-nota/internal/application/receipt"
	"github.com/jhoicas/online-shop-nota/internal/domain/entity"
)

var testDate = time.Date(2025, 10, 26, 14, 30, 5, 0, time.UTC)

func referenceOrder(t *testing.T) entity.Order {
	t.Helper()
	item, err := entity.NewItem("Kemeja Batik", decimal.NewFromInt(200000), 3)
	require.NoError(t, err)
	customer := entity.NewCustomer("Andi", "Jl. Merdeka No. 5", "08123456789")
	return entity.NewOrderAt(item, customer, testDate)
}

func TestConsoleText_FormatoFijo(t *testing.T) {
	want := `=== INFORMASI PESANAN ===
Tanggal Pemesanan : 26-10-2025 14:30:05
Nama Customer     : Andi
Alamat            : Jl. Merdeka No. 5
Nomor Telepon     : 08123456789
Barang            : Kemeja Batik
Harga Satuan      : Rp 200.000
Jumlah            : 3
-------------------------------
Subtotal          : Rp 600.000
Diskon (10%)      : Rp 60.000
Pajak (11%)       : Rp 59.400
Total Bayar       : Rp 599.400
=================================
`
	assert.Equal(t, want, receipt.ConsoleText(receipt.Build(referenceOrder(t))))
}

func TestFileText_FormatoFijo(t *testing.T) {
	want := `=== NOTA PEMESANAN ONLINE SHOP ===
Tanggal : 26-10-2025 14:30:05
Nama Customer : Andi
Alamat : Jl. Merdeka No. 5
Nomor : 08123456789
-------------------------------
Barang : Kemeja Batik
Harga Satuan : Rp 200.000
Jumlah : 3
Subtotal : Rp 600.000
Diskon (10%) : Rp 60.000
Pajak (11%) : Rp 59.400
Total Bayar : Rp 599.400
===============================
Terima kasih telah berbelanja di Online Shop kami!
`
	assert.Equal(t, want, receipt.FileText(receipt.Build(referenceOrder(t))))
}

// Consola y archivo deben reportar las mismas cifras para la misma orden.
func TestConsolaYArchivo_MismosValores(t *testing.T) {
	item, err := entity.NewItem("Sarung", decimal.RequireFromString("12345.67"), 7)
	require.NoError(t, err)
	order := entity.NewOrderAt(item, entity.NewCustomer("Budi Santoso", "Jl. Sudirman", "0811"), testDate)
	r := receipt.Build(order)

	console := valuesByLabel(receipt.ConsoleText(r))
	file := valuesByLabel(receipt.FileText(r))

	for _, label := range []string{"Subtotal", "Diskon (10%)", "Pajak (11%)", "Total Bayar", "Harga Satuan", "Jumlah"} {
		require.Contains(t, console, label)
		require.Contains(t, file, label)
		assert.Equal(t, console[label], file[label], "valor de %q", label)
	}
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "nota_andi.txt", receipt.FileName("Andi"))
	assert.Equal(t, "nota_budi_santoso.txt", receipt.FileName("Budi Santoso"))
	assert.Equal(t, "nota_élodie_marchand.txt", receipt.FileName("ÉLODIE Marchand"))
	assert.Equal(t, "nota_andi.pdf", receipt.PDFFileName("Andi"))
}

func valuesByLabel(text string) map[string]string {
	out := make(map[string]string)
	for _, l := range strings.Split(text, "\n") {
		label, value, ok := strings.Cut(l, " : ")
		if !ok {
			continue
		}
		out[strings.TrimSpace(label)] = value
	}
	return out
}
