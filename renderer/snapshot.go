package renderer

import (
	"github.com/kathmanduwallet/wallet"
)

// SnapshotMarkdown renders the wallet balances as a markdown summary.
func SnapshotMarkdown(account string, snap wallet.Snapshot) string {
	r := newRenderer()
	r.Printf("# Wallet %s\n\n", account)
	r.Printf("| Balance | On hold | Available |\n")
	r.Printf("|--------:|--------:|----------:|\n")
	r.Printf("| %s | %s | %s |\n",
		money(snap.Balance), money(snap.AvailableHold), money(snap.Available()))
	return r.String()
}

// TransactionsMarkdown renders a transaction history, newest first, as a
// markdown table.
func TransactionsMarkdown(txs []wallet.Transaction) string {
	r := newRenderer()
	r.Printf("## Transactions\n\n")
	if len(txs) == 0 {
		r.Printf("No transactions yet.\n")
		return r.String()
	}
	r.Printf("| Date | Type | Label | Amount |\n")
	r.Printf("|------|------|-------|-------:|\n")
	for _, tx := range txs {
		r.Printf("| %s | %s | %s | %s |\n",
			tx.Date.Format("2006-01-02"), tx.Type, tx.Label, signedMoney(tx.Amount))
	}
	return r.String()
}
