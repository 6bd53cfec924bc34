package main

import (
	"context"
	"os"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/online-shop-nota/internal/application/receipt"
	"github.com/jhoicas/online-shop-nota/internal/domain/entity"
	"github.com/jhoicas/online-shop-nota/internal/infrastructure/filestore"
	infrapdf "github.com/jhoicas/online-shop-nota/internal/infrastructure/pdf"
	"github.com/jhoicas/online-shop-nota/pkg/config"
	"github.com/jhoicas/online-shop-nota/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Debug().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("receipt_dir", cfg.Receipt.Dir).
		Bool("pdf", cfg.Receipt.PDF).
		Msg("iniciando aplicación")

	item, err := entity.NewItem("Kemeja Batik", decimal.NewFromInt(200000), 3)
	if err != nil {
		log.Error().Err(err).Msg("orden inválida")
		os.Exit(1)
	}
	customer := entity.NewCustomer("Andi", "Jl. Merdeka No. 5", "08123456789")
	order := entity.NewOrder(item, customer)

	var pdfGenerator receipt.ReceiptPDFGenerator
	if cfg.Receipt.PDF {
		pdfGenerator = infrapdf.NewMarotoReceiptGenerator()
	}

	uc := receipt.NewUseCase(filestore.NewLocalStore(cfg.Receipt.Dir), pdfGenerator, os.Stdout, log)
	uc.Issue(context.Background(), order)
}
