package render

import (
	"github.com/etcglobal/invoicestudio/internal/document/domain"
)

// Page dimensions in millimeters, portrait.
const (
	a4WidthMM      = 210
	a4HeightMM     = 297
	letterWidthMM  = 216
	letterHeightMM = 279
)

// InputFromDocument maps a document snapshot onto the template views.
func InputFromDocument(doc domain.InvoiceData) Input {
	widthMM, heightMM := a4WidthMM, a4HeightMM
	if doc.PageSize == domain.PageSizeLetter {
		widthMM, heightMM = letterWidthMM, letterHeightMM
	}

	overlay := ""
	if doc.HeaderImage != nil {
		overlay = *doc.HeaderImage
	}

	items := make([]LineItemView, 0, len(doc.LineItems))
	for _, item := range doc.LineItems {
		items = append(items, LineItemView{
			SL:          item.SL,
			Description: item.Description,
			Code:        item.Code,
			Qty:         item.Qty,
			Unit:        item.Unit,
			Rate:        item.Rate,
			Amount:      item.Amount,
		})
	}

	return Input{
		Page: PageView{
			Size:     string(doc.PageSize),
			WidthMM:  widthMM,
			HeightMM: heightMM,
		},
		Header: HeaderView{
			HideHeader:        doc.HideHeader,
			HideBlackBar:      doc.HideBlackBar,
			HideRedBar:        doc.HideRedBar,
			HideLogo:          doc.HideLogo,
			HideWarehouseText: doc.HideWarehouseHeader,
			WarehouseText:     doc.WarehouseAddressHeader,
			OverlayImage:      overlay,
			OverlayImageWidth: doc.HeaderImageWidth,
			OverlayImageX:     doc.HeaderImageX,
			OverlayImageY:     doc.HeaderImageY,
		},
		Invoice: InvoiceView{
			Number:         doc.InvoiceNumber,
			Date:           doc.InvoiceDate,
			ShipmentNumber: doc.ShipmentNumber,
			ClientName:     doc.ClientName,
			ClientPhone:    doc.ClientPhone,
			ClientAddress:  doc.ClientAddress,
		},
		Items: items,
		Total: doc.Total(),
		Footer: FooterView{
			PaymentOptions:  doc.PaymentOptions,
			BankName:        doc.BankDetails.BankName,
			AccountName:     doc.BankDetails.AccountName,
			AccountNumber:   doc.BankDetails.AccountNumber,
			Branch:          doc.BankDetails.Branch,
			RoutingNumber:   doc.BankDetails.RoutingNumber,
			CorporateOffice: doc.CorporateOffice,
			WarehouseFooter: doc.WarehouseAddressFooter,
			Phone1:          doc.Phone1,
			Phone2:          doc.Phone2,
			Website:         doc.Website,
			Email:           doc.Email,
		},
	}
}
