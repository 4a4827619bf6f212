package bill

import (
	"testing"

	"github.com/shopspring/decimal"
)

func item(description, amount string) Item {
	return Item{Raw: description + "   " + amount, Description: description, Amount: D(amount)}
}

func someTotal(s string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: D(s), Valid: true}
}

func TestReconcile_penScenario(t *testing.T) {
	purchase := Parse("Pen   10.00\nTotal: 10.00")
	sale := Parse("Pen   12.00\nTotal: 12.00")

	report := Reconcile(purchase, sale)

	if !report.PurchaseTotal.Valid || !report.PurchaseTotal.Decimal.Equal(D("10.00")) {
		t.Errorf("purchase total = %+v, want 10.00", report.PurchaseTotal)
	}
	if !report.SaleTotal.Valid || !report.SaleTotal.Decimal.Equal(D("12.00")) {
		t.Errorf("sale total = %+v, want 12.00", report.SaleTotal)
	}
	if !report.TotalGap.Valid || !report.TotalGap.Decimal.Equal(D("2.00")) {
		t.Errorf("total gap = %+v, want 2.00", report.TotalGap)
	}
	if len(report.MissingInSale) != 0 || len(report.MissingInPurchase) != 0 {
		t.Errorf("missing lists not empty: sale=%d purchase=%d",
			len(report.MissingInSale), len(report.MissingInPurchase))
	}
	if len(report.PriceMismatches) != 1 {
		t.Fatalf("mismatches = %d, want 1", len(report.PriceMismatches))
	}
	m := report.PriceMismatches[0]
	if m.Sale.Description != "Pen" || !m.Diff.Equal(D("2.00")) {
		t.Errorf("mismatch = %+v, want Pen with diff 2.00", m)
	}
}

func TestReconcile_missingItems(t *testing.T) {
	purchase := ParsedBill{Items: []Item{item("Pen", "10"), item("Ruler", "3")}}
	sale := ParsedBill{Items: []Item{item("Pen", "10"), item("Glue", "4")}}

	report := Reconcile(purchase, sale)

	if len(report.MissingInSale) != 1 || report.MissingInSale[0].Description != "Glue" {
		t.Errorf("missingInSale = %+v, want [Glue]", report.MissingInSale)
	}
	if len(report.MissingInPurchase) != 1 || report.MissingInPurchase[0].Description != "Ruler" {
		t.Errorf("missingInPurchase = %+v, want [Ruler]", report.MissingInPurchase)
	}
	if len(report.PriceMismatches) != 0 {
		t.Errorf("mismatches = %+v, want none", report.PriceMismatches)
	}
}

func TestReconcile_matchingIsCaseInsensitiveAndTruncated(t *testing.T) {
	long := "A very long product description that keeps going well past the sixty character mark"
	purchase := ParsedBill{Items: []Item{item(long, "10")}}
	sale := ParsedBill{Items: []Item{item(long+" v2", "10")}}

	// Both keys truncate to the same 60-character prefix, so they match.
	report := Reconcile(purchase, sale)
	if len(report.MissingInSale) != 0 || len(report.MissingInPurchase) != 0 {
		t.Errorf("truncated keys should match: %+v", report)
	}

	purchase = ParsedBill{Items: []Item{item("PEN", "10")}}
	sale = ParsedBill{Items: []Item{item("pen", "10")}}
	report = Reconcile(purchase, sale)
	if len(report.MissingInSale) != 0 {
		t.Errorf("matching should be case-insensitive")
	}
}

func TestReconcile_toleranceBoundary(t *testing.T) {
	testCases := []struct {
		name         string
		saleAmount   string
		wantMismatch bool
	}{
		{name: "Identical", saleAmount: "10.00", wantMismatch: false},
		{name: "Within tolerance", saleAmount: "10.005", wantMismatch: false},
		{name: "At the boundary", saleAmount: "10.009", wantMismatch: false},
		{name: "Just past the boundary", saleAmount: "10.01", wantMismatch: true},
		{name: "Cheaper in sale", saleAmount: "9.50", wantMismatch: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			purchase := ParsedBill{Items: []Item{item("Pen", "10.00")}}
			sale := ParsedBill{Items: []Item{item("Pen", tc.saleAmount)}}

			report := Reconcile(purchase, sale)
			if got := len(report.PriceMismatches) > 0; got != tc.wantMismatch {
				t.Errorf("mismatch reported = %v, want %v", got, tc.wantMismatch)
			}
		})
	}
}

// When two purchase items share a key, only the most recent one is
// addressable; the earlier duplicate can end up reported missing even
// though an item with the same description was matched.
func TestReconcile_duplicatePurchaseKeys(t *testing.T) {
	purchase := ParsedBill{Items: []Item{item("Pen", "10"), item("Pen", "11")}}
	sale := ParsedBill{Items: []Item{item("Pen", "11")}}

	report := Reconcile(purchase, sale)

	if len(report.MissingInSale) != 0 {
		t.Errorf("missingInSale = %+v, want none", report.MissingInSale)
	}
	if len(report.PriceMismatches) != 0 {
		t.Errorf("the matched pair is the later purchase item; got mismatches %+v",
			report.PriceMismatches)
	}
	if len(report.MissingInPurchase) != 0 {
		t.Errorf("the earlier duplicate is not addressable, missingInPurchase = %+v",
			report.MissingInPurchase)
	}
}

func TestReconcile_duplicateSaleKeys(t *testing.T) {
	purchase := ParsedBill{Items: []Item{item("Pen", "10")}}
	sale := ParsedBill{Items: []Item{item("Pen", "10"), item("Pen", "10")}}

	report := Reconcile(purchase, sale)

	// The first sale item consumes the purchase entry; the second finds
	// nothing left to match.
	if len(report.MissingInSale) != 1 {
		t.Errorf("missingInSale = %+v, want the second duplicate", report.MissingInSale)
	}
}

func TestReconcile_absentTotalsPropagate(t *testing.T) {
	purchase := ParsedBill{Items: []Item{item("Pen", "10")}, Total: someTotal("10")}
	sale := ParsedBill{Items: []Item{item("Pen", "10")}}

	report := Reconcile(purchase, sale)
	if report.SaleTotal.Valid {
		t.Errorf("sale total = %+v, want absent", report.SaleTotal)
	}
	if report.TotalGap.Valid {
		t.Errorf("gap = %+v, want absent when either total is absent", report.TotalGap)
	}
}

func TestReconcile_swapSymmetry(t *testing.T) {
	purchase := ParsedBill{
		Items: []Item{item("Pen", "10"), item("Ruler", "3")},
		Total: someTotal("13"),
	}
	sale := ParsedBill{
		Items: []Item{item("Pen", "12"), item("Glue", "4")},
		Total: someTotal("16"),
	}

	forward := Reconcile(purchase, sale)
	backward := Reconcile(sale, purchase)

	if len(forward.MissingInSale) != len(backward.MissingInPurchase) ||
		len(forward.MissingInPurchase) != len(backward.MissingInSale) {
		t.Errorf("swapping inputs should swap the missing lists")
	}
	if len(forward.PriceMismatches) != 1 || len(backward.PriceMismatches) != 1 {
		t.Fatalf("mismatch counts: forward=%d backward=%d, want 1 and 1",
			len(forward.PriceMismatches), len(backward.PriceMismatches))
	}
	if !forward.PriceMismatches[0].Diff.Equal(backward.PriceMismatches[0].Diff.Neg()) {
		t.Errorf("diff should negate on swap: %s vs %s",
			forward.PriceMismatches[0].Diff, backward.PriceMismatches[0].Diff)
	}
	if !forward.TotalGap.Decimal.Equal(backward.TotalGap.Decimal.Neg()) {
		t.Errorf("gap should negate on swap: %s vs %s",
			forward.TotalGap.Decimal, backward.TotalGap.Decimal)
	}
}

func TestReport_Clean(t *testing.T) {
	clean := Reconcile(Parse("Pen  10\nTotal 10"), Parse("Pen  10\nTotal 10"))
	if !clean.Clean() {
		t.Errorf("identical bills should reconcile clean: %+v", clean)
	}
	dirty := Reconcile(Parse("Pen  10"), Parse("Pen  12"))
	if dirty.Clean() {
		t.Errorf("price mismatch should not reconcile clean")
	}
}
