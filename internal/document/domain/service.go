package domain

// Subscriber is invoked with the new snapshot after every successful
// mutation. Subscribers run synchronously, never concurrently with a
// mutation in progress.
type Subscriber func(InvoiceData)

// Service is the document store: the only sanctioned way to mutate the
// invoice document. Every operation is total. Disallowed input (unknown
// ids, removing the last line item, unknown field names) leaves the
// document unchanged rather than erroring.
type Service interface {
	// Snapshot returns the current document value as a deep copy.
	Snapshot() InvoiceData

	// SetField replaces one top-level field addressed by its JSON name.
	SetField(name string, value any) InvoiceData

	// SetBankField replaces one field of the embedded bank details record.
	SetBankField(name string, value string) InvoiceData

	// AddLineItem appends a new placeholder line item with a fresh unique id.
	AddLineItem() InvoiceData

	// UpdateLineItem merges the patch into the item with the given id and
	// recomputes its amount from the post-merge qty and rate.
	UpdateLineItem(id string, patch LineItemPatch) InvoiceData

	// RemoveLineItem removes the item with the given id, preserving order.
	// A removal that would empty the sequence is a no-op.
	RemoveLineItem(id string) InvoiceData

	// AttachHeaderImage stores the payload as an embeddable data URI,
	// replacing any previously attached image.
	AttachHeaderImage(payload []byte) InvoiceData

	// ClearHeaderImage detaches the header image.
	ClearHeaderImage() InvoiceData

	// Subscribe registers a callback for post-mutation snapshots.
	Subscribe(fn Subscriber)
}
