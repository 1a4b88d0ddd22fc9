// Package service implements the document store. All editor mutations
// funnel through here; each one yields a new immutable snapshot.
package service

import (
	"strconv"
	"strings"
	"sync"

	"github.com/bwmarrin/snowflake"
	"github.com/etcglobal/invoicestudio/internal/document/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type ServiceParam struct {
	fx.In

	Log   *zap.Logger
	GenID *snowflake.Node
	Seed  domain.InvoiceData
}

type Service struct {
	mu          sync.Mutex
	current     domain.InvoiceData
	log         *zap.Logger
	genID       *snowflake.Node
	subscribers []domain.Subscriber
}

func NewService(p ServiceParam) domain.Service {
	log := p.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		current: p.Seed.Clone(),
		log:     log,
		genID:   p.GenID,
	}
}

func (s *Service) Snapshot() domain.InvoiceData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

func (s *Service) Subscribe(fn domain.Subscriber) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// mutate applies fn to a private copy of the document. When fn reports a
// change, the copy becomes the current value and subscribers are notified
// before the lock is released, so no subscriber ever observes a mutation
// in progress.
func (s *Service) mutate(operation string, fn func(*domain.InvoiceData) bool) domain.InvoiceData {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.current.Clone()
	if !fn(&next) {
		return s.current.Clone()
	}

	s.current = next
	s.log.Debug("document mutated", zap.String("operation", operation))

	for _, fn := range s.subscribers {
		fn(s.current.Clone())
	}
	return s.current.Clone()
}

func (s *Service) SetField(name string, value any) domain.InvoiceData {
	return s.mutate("set_field", func(doc *domain.InvoiceData) bool {
		return applyField(doc, name, value)
	})
}

func (s *Service) SetBankField(name string, value string) domain.InvoiceData {
	return s.mutate("set_bank_field", func(doc *domain.InvoiceData) bool {
		switch name {
		case "bankName":
			doc.BankDetails.BankName = value
		case "accountName":
			doc.BankDetails.AccountName = value
		case "accountNumber":
			doc.BankDetails.AccountNumber = value
		case "branch":
			doc.BankDetails.Branch = value
		case "routingNumber":
			doc.BankDetails.RoutingNumber = value
		default:
			return false
		}
		return true
	})
}

func (s *Service) AddLineItem() domain.InvoiceData {
	return s.mutate("add_line_item", func(doc *domain.InvoiceData) bool {
		doc.LineItems = append(doc.LineItems, domain.LineItem{
			ID:          s.nextID(),
			SL:          strconv.Itoa(len(doc.LineItems) + 1),
			Description: "New Item Name",
			Code:        "",
			Qty:         0,
			Unit:        "PCS",
			Rate:        0,
			Amount:      0,
		})
		return true
	})
}

func (s *Service) UpdateLineItem(id string, patch domain.LineItemPatch) domain.InvoiceData {
	return s.mutate("update_line_item", func(doc *domain.InvoiceData) bool {
		for i := range doc.LineItems {
			if doc.LineItems[i].ID != id {
				continue
			}
			item := &doc.LineItems[i]
			if patch.SL != nil {
				item.SL = *patch.SL
			}
			if patch.Description != nil {
				item.Description = *patch.Description
			}
			if patch.Code != nil {
				item.Code = *patch.Code
			}
			if patch.Unit != nil {
				item.Unit = *patch.Unit
			}
			if patch.Qty != nil {
				item.Qty = *patch.Qty
			}
			if patch.Rate != nil {
				item.Rate = *patch.Rate
			}
			item.Amount = item.Qty * item.Rate
			return true
		}
		return false
	})
}

func (s *Service) RemoveLineItem(id string) domain.InvoiceData {
	return s.mutate("remove_line_item", func(doc *domain.InvoiceData) bool {
		if len(doc.LineItems) <= 1 {
			return false
		}
		for i := range doc.LineItems {
			if doc.LineItems[i].ID == id {
				doc.LineItems = append(doc.LineItems[:i], doc.LineItems[i+1:]...)
				return true
			}
		}
		return false
	})
}

// nextID issues a line-item id that cannot collide with any existing id.
// Seed items carry short numeric ids; snowflake ids are far longer, so
// the spaces are disjoint.
func (s *Service) nextID() string {
	if s.genID != nil {
		return s.genID.Generate().String()
	}
	return strconv.FormatInt(fallbackID(), 10)
}

var (
	fallbackMu      sync.Mutex
	fallbackCounter int64 = 1_000_000
)

func fallbackID() int64 {
	fallbackMu.Lock()
	defer fallbackMu.Unlock()
	fallbackCounter++
	return fallbackCounter
}

func applyField(doc *domain.InvoiceData, name string, value any) bool {
	switch name {
	case "invoiceNumber":
		doc.InvoiceNumber = asString(value)
	case "invoiceDate":
		doc.InvoiceDate = asString(value)
	case "shipmentNumber":
		doc.ShipmentNumber = asString(value)
	case "clientName":
		doc.ClientName = asString(value)
	case "clientPhone":
		doc.ClientPhone = asString(value)
	case "clientAddress":
		doc.ClientAddress = asString(value)
	case "warehouseAddressHeader":
		doc.WarehouseAddressHeader = asString(value)
	case "corporateOffice":
		doc.CorporateOffice = asString(value)
	case "warehouseAddressFooter":
		doc.WarehouseAddressFooter = asString(value)
	case "phone1":
		doc.Phone1 = asString(value)
	case "phone2":
		doc.Phone2 = asString(value)
	case "website":
		doc.Website = asString(value)
	case "email":
		doc.Email = asString(value)
	case "pageSize":
		size, ok := asPageSize(value)
		if !ok {
			return false
		}
		doc.PageSize = size
	case "headerImage":
		if value == nil {
			doc.HeaderImage = nil
			return true
		}
		img := asString(value)
		if img == "" {
			doc.HeaderImage = nil
			return true
		}
		doc.HeaderImage = &img
	case "headerImageWidth":
		doc.HeaderImageWidth = asInt(value)
	case "headerImageX":
		doc.HeaderImageX = asInt(value)
	case "headerImageY":
		doc.HeaderImageY = asInt(value)
	case "hideBlackBar":
		doc.HideBlackBar = asBool(value)
	case "hideRedBar":
		doc.HideRedBar = asBool(value)
	case "hideLogo":
		doc.HideLogo = asBool(value)
	case "hideWarehouseHeader":
		doc.HideWarehouseHeader = asBool(value)
	case "hideHeader":
		doc.HideHeader = asBool(value)
	case "paymentOptions":
		doc.PaymentOptions = asStringSlice(value)
	case "bankDetails":
		details, ok := asBankDetails(value)
		if !ok {
			return false
		}
		doc.BankDetails = details
	default:
		return false
	}
	return true
}

func asString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return ""
	}
}

// asNumber parses numeric input leniently: values that fail to parse
// fall back to zero instead of being rejected.
func asNumber(value any) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}

func asInt(value any) int {
	return int(asNumber(value))
}

func asBool(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return false
		}
		return parsed
	default:
		return false
	}
}

func asPageSize(value any) (domain.PageSize, bool) {
	raw := strings.ToLower(strings.TrimSpace(asString(value)))
	switch raw {
	case "a4":
		return domain.PageSizeA4, true
	case "letter":
		return domain.PageSizeLetter, true
	default:
		return "", false
	}
}

func asStringSlice(value any) []string {
	switch v := value.(type) {
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, asString(item))
		}
		return out
	default:
		return nil
	}
}

func asBankDetails(value any) (domain.BankDetails, bool) {
	switch v := value.(type) {
	case domain.BankDetails:
		return v, true
	case map[string]any:
		return domain.BankDetails{
			BankName:      asString(v["bankName"]),
			AccountName:   asString(v["accountName"]),
			AccountNumber: asString(v["accountNumber"]),
			Branch:        asString(v["branch"]),
			RoutingNumber: asString(v["routingNumber"]),
		}, true
	default:
		return domain.BankDetails{}, false
	}
}
