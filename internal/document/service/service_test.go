package service

import (
	"testing"

	"github.com/etcglobal/invoicestudio/internal/document/domain"
	"github.com/etcglobal/invoicestudio/internal/document/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) domain.Service {
	t.Helper()
	return NewService(ServiceParam{Seed: seed.Default()})
}

func TestSnapshotIsIsolated(t *testing.T) {
	svc := newTestService(t)

	snap := svc.Snapshot()
	snap.ClientName = "mutated copy"
	snap.LineItems[0].Description = "mutated copy"
	snap.PaymentOptions[0] = "mutated copy"

	fresh := svc.Snapshot()
	assert.Equal(t, "SHUVO", fresh.ClientName)
	assert.Equal(t, "Door and window decals (door and window accessories)", fresh.LineItems[0].Description)
	assert.Equal(t, "Cash on Delivery (pick-up) from Dhaka Warehouse", fresh.PaymentOptions[0])
}

func TestSetField(t *testing.T) {
	svc := newTestService(t)

	doc := svc.SetField("clientName", "RAHIM")
	assert.Equal(t, "RAHIM", doc.ClientName)

	doc = svc.SetField("headerImageWidth", float64(450))
	assert.Equal(t, 450, doc.HeaderImageWidth)

	doc = svc.SetField("hideLogo", true)
	assert.True(t, doc.HideLogo)

	doc = svc.SetField("pageSize", "Letter")
	assert.Equal(t, domain.PageSizeLetter, doc.PageSize)
}

func TestSetFieldUnknownFieldIsNoOp(t *testing.T) {
	svc := newTestService(t)
	before := svc.Snapshot()

	after := svc.SetField("notAField", "value")

	assert.Equal(t, before, after)
}

func TestSetFieldInvalidPageSizeIsNoOp(t *testing.T) {
	svc := newTestService(t)

	doc := svc.SetField("pageSize", "tabloid")

	assert.Equal(t, domain.PageSizeA4, doc.PageSize)
}

func TestSetBankFieldTouchesOnlyOneField(t *testing.T) {
	svc := newTestService(t)

	doc := svc.SetBankField("accountNumber", "9999999999")

	assert.Equal(t, "9999999999", doc.BankDetails.AccountNumber)
	assert.Equal(t, "The City Bank PLC", doc.BankDetails.BankName)
	assert.Equal(t, "ETC GLOBAL", doc.BankDetails.AccountName)
	assert.Equal(t, "Pallabi Branch", doc.BankDetails.Branch)
	assert.Equal(t, "225263585", doc.BankDetails.RoutingNumber)
}

func TestSetBankFieldUnknownFieldIsNoOp(t *testing.T) {
	svc := newTestService(t)
	before := svc.Snapshot()

	after := svc.SetBankField("iban", "DE00")

	assert.Equal(t, before, after)
}

func TestAddLineItemAppendsDefaults(t *testing.T) {
	svc := newTestService(t)

	doc := svc.AddLineItem()
	require.Len(t, doc.LineItems, 3)

	added := doc.LineItems[2]
	assert.NotEmpty(t, added.ID)
	assert.NotEqual(t, "1", added.ID)
	assert.NotEqual(t, "2", added.ID)
	assert.Equal(t, "3", added.SL)
	assert.Equal(t, "New Item Name", added.Description)
	assert.Equal(t, "", added.Code)
	assert.Equal(t, "PCS", added.Unit)
	assert.Zero(t, added.Qty)
	assert.Zero(t, added.Rate)
	assert.Zero(t, added.Amount)
}

func TestAddLineItemIDsAreUnique(t *testing.T) {
	svc := newTestService(t)

	seen := map[string]bool{"1": true, "2": true}
	for i := 0; i < 20; i++ {
		doc := svc.AddLineItem()
		id := doc.LineItems[len(doc.LineItems)-1].ID
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestUpdateLineItemRecomputesAmount(t *testing.T) {
	svc := newTestService(t)

	qty := 100.0
	doc := svc.UpdateLineItem("1", domain.LineItemPatch{Qty: &qty})

	require.Len(t, doc.LineItems, 2)
	assert.Equal(t, 100.0, doc.LineItems[0].Qty)
	assert.Equal(t, 74000.0, doc.LineItems[0].Amount)

	// Untouched item keeps its stored amount.
	assert.Equal(t, 4.05, doc.LineItems[1].Qty)
	assert.Equal(t, 2997.0, doc.LineItems[1].Amount)
}

func TestUpdateLineItemAlwaysRecomputesAmount(t *testing.T) {
	svc := newTestService(t)

	// A patch that touches no numeric field still refreshes the amount
	// from the stored qty and rate.
	desc := "Decals"
	doc := svc.UpdateLineItem("1", domain.LineItemPatch{Description: &desc})

	assert.Equal(t, "Decals", doc.LineItems[0].Description)
	assert.InDelta(t, 96.80*740, doc.LineItems[0].Amount, 1e-9)
}

func TestUpdateLineItemUnknownIDIsNoOp(t *testing.T) {
	svc := newTestService(t)
	before := svc.Snapshot()

	qty := 5.0
	after := svc.UpdateLineItem("missing", domain.LineItemPatch{Qty: &qty})

	assert.Equal(t, before, after)
}

func TestRemoveLineItem(t *testing.T) {
	svc := newTestService(t)

	doc := svc.RemoveLineItem("1")
	require.Len(t, doc.LineItems, 1)
	assert.Equal(t, "2", doc.LineItems[0].ID)
}

func TestRemoveLineItemKeepsLastItem(t *testing.T) {
	svc := newTestService(t)

	svc.RemoveLineItem("1")
	doc := svc.RemoveLineItem("2")

	require.Len(t, doc.LineItems, 1)
	assert.Equal(t, "2", doc.LineItems[0].ID)
}

func TestRemoveLineItemUnknownIDIsNoOp(t *testing.T) {
	svc := newTestService(t)
	before := svc.Snapshot()

	after := svc.RemoveLineItem("missing")

	assert.Equal(t, before, after)
}

func TestSubscribeFiresOnMutationsOnly(t *testing.T) {
	svc := newTestService(t)

	var calls int
	svc.Subscribe(func(domain.InvoiceData) { calls++ })

	svc.SetField("clientName", "RAHIM")
	assert.Equal(t, 1, calls)

	svc.SetField("notAField", "x")
	assert.Equal(t, 1, calls)

	svc.RemoveLineItem("missing")
	assert.Equal(t, 1, calls)

	svc.AddLineItem()
	assert.Equal(t, 2, calls)
}

func TestTotalSumsLineItemAmounts(t *testing.T) {
	svc := newTestService(t)

	doc := svc.Snapshot()
	assert.Equal(t, 74629.0, doc.Total())

	qty := 100.0
	doc = svc.UpdateLineItem("1", domain.LineItemPatch{Qty: &qty})
	assert.Equal(t, 76997.0, doc.Total())
}

func TestAsNumberLenientParsing(t *testing.T) {
	assert.Equal(t, 96.8, asNumber("96.80"))
	assert.Equal(t, 740.0, asNumber(740))
	assert.Equal(t, 740.0, asNumber(float64(740)))
	assert.Zero(t, asNumber("not a number"))
	assert.Zero(t, asNumber(nil))
	assert.Zero(t, asNumber(""))
}

func TestParsePatchDistinguishesAbsentFromZero(t *testing.T) {
	patch := ParsePatch(map[string]any{"qty": "12.5", "description": "Handle"})

	require.NotNil(t, patch.Qty)
	assert.Equal(t, 12.5, *patch.Qty)
	require.NotNil(t, patch.Description)
	assert.Equal(t, "Handle", *patch.Description)
	assert.Nil(t, patch.Rate)
	assert.Nil(t, patch.SL)
	assert.Nil(t, patch.Code)
	assert.Nil(t, patch.Unit)
}

func TestParsePatchBadNumberFallsBackToZero(t *testing.T) {
	patch := ParsePatch(map[string]any{"rate": "abc"})

	require.NotNil(t, patch.Rate)
	assert.Zero(t, *patch.Rate)
}
