package document

import (
	"github.com/etcglobal/invoicestudio/internal/config"
	"github.com/etcglobal/invoicestudio/internal/document/domain"
	"github.com/etcglobal/invoicestudio/internal/document/seed"
	"github.com/etcglobal/invoicestudio/internal/document/service"
	"go.uber.org/fx"
)

var Module = fx.Module("document.service",
	fx.Provide(func(holder *config.BrandingHolder) domain.InvoiceData {
		return seed.WithBranding(holder.Get())
	}),
	fx.Provide(service.NewService),
)
