package service

import (
	"github.com/etcglobal/invoicestudio/internal/document/domain"
)

// ParsePatch converts a loosely-typed field map into a typed line-item
// patch. Quantity and rate accept numbers or numeric strings; values
// that fail to parse fall back to zero, matching the editor's lenient
// input handling.
func ParsePatch(raw map[string]any) domain.LineItemPatch {
	var patch domain.LineItemPatch

	if value, ok := raw["sl"]; ok {
		sl := asString(value)
		patch.SL = &sl
	}
	if value, ok := raw["description"]; ok {
		description := asString(value)
		patch.Description = &description
	}
	if value, ok := raw["code"]; ok {
		code := asString(value)
		patch.Code = &code
	}
	if value, ok := raw["unit"]; ok {
		unit := asString(value)
		patch.Unit = &unit
	}
	if value, ok := raw["qty"]; ok {
		qty := asNumber(value)
		patch.Qty = &qty
	}
	if value, ok := raw["rate"]; ok {
		rate := asNumber(value)
		patch.Rate = &rate
	}

	return patch
}
