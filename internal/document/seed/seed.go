// Package seed provides the default document the editor starts from.
package seed

import (
	"strings"

	"github.com/etcglobal/invoicestudio/internal/config"
	"github.com/etcglobal/invoicestudio/internal/document/domain"
)

// Default returns the hard-coded template starting point. The editor
// session begins from this document; it is never persisted.
func Default() domain.InvoiceData {
	return domain.InvoiceData{
		InvoiceNumber:  "SK25DEC606",
		InvoiceDate:    "20 Dec 2025",
		ShipmentNumber: "14-11 GZ305",

		ClientName:    "SHUVO",
		ClientPhone:   "8801797714771",
		ClientAddress: "Borhanibag, Keraniganj.",

		WarehouseAddressHeader: "(Warehouse Address)\nHouse: 16, Road: 19\nNikunja -2, Khilkhet-1229, Bangladesh",
		CorporateOffice:        "H# 1357,Flat-lB, Ave.# 10, Mirpur DOHS, Dhaka-1216",
		WarehouseAddressFooter: "H #16, R #19,Nikunja-2,Khelkhet-1229 Dhaka-1216.",

		LineItems: []domain.LineItem{
			{
				ID:          "1",
				SL:          "1",
				Description: "Door and window decals (door and window accessories)",
				Code:        "0265074 4450",
				Qty:         96.80,
				Unit:        "KG",
				Rate:        740,
				Amount:      71632,
			},
			{
				ID:          "2",
				SL:          "2",
				Description: "Door Handle",
				Code:        "800174126109 4065",
				Qty:         4.05,
				Unit:        "KG",
				Rate:        740,
				Amount:      2997,
			},
		},

		PaymentOptions: []string{
			"Cash on Delivery (pick-up) from Dhaka Warehouse",
		},

		BankDetails: domain.BankDetails{
			BankName:      "The City Bank PLC",
			AccountName:   "ETC GLOBAL",
			AccountNumber: "1223111736001",
			Branch:        "Pallabi Branch",
			RoutingNumber: "225263585",
		},

		Phone1:  "+88 01783 335 343",
		Phone2:  "+88 01792 922 333",
		Website: "www.etcglobal.store",
		Email:   "etcglobal.store@gmail.com",

		PageSize:         domain.PageSizeA4,
		HeaderImageWidth: 300,
		HeaderImageX:     0,
		HeaderImageY:     0,
	}
}

// WithBranding overlays operator-supplied static template text onto the
// default seed. Empty branding fields keep the built-in values.
func WithBranding(branding config.Branding) domain.InvoiceData {
	doc := Default()

	if v := strings.TrimSpace(branding.CorporateOffice); v != "" {
		doc.CorporateOffice = v
	}
	if v := strings.TrimSpace(branding.WarehouseAddressHeader); v != "" {
		doc.WarehouseAddressHeader = v
	}
	if v := strings.TrimSpace(branding.WarehouseAddressFooter); v != "" {
		doc.WarehouseAddressFooter = v
	}
	if v := strings.TrimSpace(branding.Phone1); v != "" {
		doc.Phone1 = v
	}
	if v := strings.TrimSpace(branding.Phone2); v != "" {
		doc.Phone2 = v
	}
	if v := strings.TrimSpace(branding.Website); v != "" {
		doc.Website = v
	}
	if v := strings.TrimSpace(branding.Email); v != "" {
		doc.Email = v
	}
	if len(branding.PaymentOptions) > 0 {
		doc.PaymentOptions = append([]string(nil), branding.PaymentOptions...)
	}

	return doc
}
