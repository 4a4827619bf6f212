// Package renderer formats wallet snapshots, transaction histories and
// audit reports as markdown, ready for terminal display.
package renderer

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/kathmanduwallet/wallet"
)

// mdRenderer accumulates a markdown document.
type mdRenderer struct {
	*strings.Builder
}

// Printf formats according to a format specifier and writes to the renderer's buffer.
func (r *mdRenderer) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}

func newRenderer() *mdRenderer {
	return &mdRenderer{Builder: &strings.Builder{}}
}

// money formats a wallet amount in the display currency.
func money(d decimal.Decimal) string {
	return wallet.M(d, wallet.DisplayCurrency).String()
}

// signedMoney formats a wallet amount with an explicit sign, "-" for zero.
func signedMoney(d decimal.Decimal) string {
	return wallet.M(d, wallet.DisplayCurrency).SignedString()
}
