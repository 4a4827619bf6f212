// Package bill parses free-text itemized bills and reconciles a purchase
// document against a sale document.
//
// Parsing is a best-effort heuristic: any line that cannot produce a number
// is silently skipped, and only document read failures surface as errors.
// Both parsing and reconciliation are pure and side-effect-free.
package bill

import (
	"github.com/shopspring/decimal"
)

// Item is a single parsed line item. Items are ephemeral: they live for the
// duration of one comparison and are never persisted.
type Item struct {
	Raw         string          `json:"raw"`         // original source line, unmodified
	Description string          `json:"description"` // label with the price token stripped
	Amount      decimal.Decimal `json:"amount"`
}

// ParsedBill is the structured result of parsing one document: the line
// items in source order, plus the detected total when a total line was
// found. An absent total stays absent; it is never coerced to zero.
type ParsedBill struct {
	Items []Item              `json:"items"`
	Total decimal.NullDecimal `json:"total"`
}

// Mismatch pairs two matched items whose amounts differ beyond tolerance.
// Diff is signed: sale amount minus purchase amount.
type Mismatch struct {
	Purchase Item            `json:"purchase"`
	Sale     Item            `json:"sale"`
	Diff     decimal.Decimal `json:"diff"`
}

// Report is the outcome of reconciling a purchase bill against a sale bill.
type Report struct {
	PurchaseTotal decimal.NullDecimal `json:"purchaseTotal"`
	SaleTotal     decimal.NullDecimal `json:"saleTotal"`
	// TotalGap is sale total minus purchase total, absent when either
	// total is absent.
	TotalGap decimal.NullDecimal `json:"totalGap"`
	// MissingInSale lists items present in the sale document with no
	// purchase counterpart.
	MissingInSale []Item `json:"missingInSale"`
	// MissingInPurchase lists purchase items that no sale item matched.
	MissingInPurchase []Item     `json:"missingInPurchase"`
	PriceMismatches   []Mismatch `json:"priceMismatches"`
}

// Clean reports whether the reconciliation found nothing to flag.
func (r Report) Clean() bool {
	return len(r.MissingInSale) == 0 && len(r.MissingInPurchase) == 0 &&
		len(r.PriceMismatches) == 0 &&
		(!r.TotalGap.Valid || r.TotalGap.Decimal.IsZero())
}
