package bill

import (
	"strings"

	"github.com/shopspring/decimal"
)

// matchKeyLen caps the reconciliation key length. The key is coarse: a
// case-insensitive prefix, not an edit-distance match.
const matchKeyLen = 60

// tolerance absorbs floating-point rounding of values expressed to two
// decimal places; amounts closer than this are considered equal.
var tolerance = decimal.RequireFromString("0.009")

// matchKey normalizes an item description into its reconciliation key:
// lower-cased and truncated to 60 characters.
func matchKey(description string) string {
	key := strings.ToLower(description)
	if runes := []rune(key); len(runes) > matchKeyLen {
		key = string(runes[:matchKeyLen])
	}
	return key
}

// Reconcile compares a parsed purchase bill against a parsed sale bill.
//
// Purchase items are indexed by key, last one winning on duplicates: when
// two purchase items share a key, only the most recent one is addressable,
// so the earlier duplicate can surface in MissingInPurchase even though an
// item with the same description was matched. Each sale item either
// consumes its purchase counterpart (recording a price mismatch when the
// amounts differ beyond tolerance) or lands in MissingInSale. Whatever
// purchase items were never consumed form MissingInPurchase, in source
// order.
//
// Swapping the inputs swaps the missing lists and negates every Diff and
// the TotalGap.
func Reconcile(purchase, sale ParsedBill) Report {
	report := Report{
		PurchaseTotal: purchase.Total,
		SaleTotal:     sale.Total,
	}
	if purchase.Total.Valid && sale.Total.Valid {
		report.TotalGap = decimal.NullDecimal{
			Decimal: sale.Total.Decimal.Sub(purchase.Total.Decimal),
			Valid:   true,
		}
	}

	// Index of the last purchase item per key. Iterating sale items marks
	// keys consumed instead of deleting map entries mid-flight.
	lastByKey := make(map[string]int, len(purchase.Items))
	for i, it := range purchase.Items {
		lastByKey[matchKey(it.Description)] = i
	}
	consumed := make(map[string]bool, len(lastByKey))

	for _, saleItem := range sale.Items {
		key := matchKey(saleItem.Description)
		idx, ok := lastByKey[key]
		if !ok || consumed[key] {
			report.MissingInSale = append(report.MissingInSale, saleItem)
			continue
		}
		consumed[key] = true

		purchaseItem := purchase.Items[idx]
		if purchaseItem.Amount.Sub(saleItem.Amount).Abs().GreaterThan(tolerance) {
			report.PriceMismatches = append(report.PriceMismatches, Mismatch{
				Purchase: purchaseItem,
				Sale:     saleItem,
				Diff:     saleItem.Amount.Sub(purchaseItem.Amount),
			})
		}
	}

	for i, it := range purchase.Items {
		key := matchKey(it.Description)
		if lastByKey[key] == i && !consumed[key] {
			report.MissingInPurchase = append(report.MissingInPurchase, it)
		}
	}

	return report
}
