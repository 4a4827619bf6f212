package renderer

import (
	"github.com/shopspring/decimal"

	"github.com/kathmanduwallet/wallet/bill"
)

// AuditMarkdown renders a bill reconciliation report. Amounts are printed
// as plain numbers, without the wallet's display currency.
func AuditMarkdown(report bill.Report) string {
	r := newRenderer()
	r.Printf("# Audit - Bill Comparison\n\n")

	r.Printf("## Summary\n\n")
	r.Printf("- Purchase total: **%s**\n", optional(report.PurchaseTotal))
	r.Printf("- Sale total: **%s**\n", optional(report.SaleTotal))
	r.Printf("- Total gap (sale - purchase): **%s**\n\n", optional(report.TotalGap))

	r.Printf("## Price mismatches\n\n")
	if len(report.PriceMismatches) == 0 {
		r.Printf("No price mismatches found.\n\n")
	} else {
		for _, m := range report.PriceMismatches {
			r.Printf("- **%s** - sale %s vs purchase %s (diff %s)\n",
				m.Sale.Description, m.Sale.Amount, m.Purchase.Amount, m.Diff)
		}
		r.Printf("\n")
	}

	r.Printf("## Items in sale but not in purchase\n\n")
	renderItems(r, report.MissingInSale)

	r.Printf("## Items in purchase but not in sale\n\n")
	renderItems(r, report.MissingInPurchase)

	return r.String()
}

func renderItems(r *mdRenderer, items []bill.Item) {
	if len(items) == 0 {
		r.Printf("None\n\n")
		return
	}
	for _, it := range items {
		r.Printf("- %s\n", it.Raw)
	}
	r.Printf("\n")
}

// optional renders a possibly absent decimal, "N/A" when absent.
func optional(v decimal.NullDecimal) string {
	if !v.Valid {
		return "N/A"
	}
	return v.Decimal.String()
}
