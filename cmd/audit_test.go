package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/subcommands"
)

func writeBill(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func runAudit(t *testing.T, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet("audit", flag.ContinueOnError)
	if err := f.Parse(args); err != nil {
		t.Fatal(err)
	}
	return (&auditCmd{}).Execute(context.Background(), f)
}

func TestAuditCmd_cleanBills(t *testing.T) {
	dir := t.TempDir()
	content := "Pen  10.00\nNotebook  25.50\nTotal  35.50\n"
	purchase := writeBill(t, dir, "purchase.txt", content)
	sale := writeBill(t, dir, "sale.txt", content)

	if got := runAudit(t, purchase, sale); got != subcommands.ExitSuccess {
		t.Errorf("audit of identical bills = %v, want ExitSuccess", got)
	}
}

func TestAuditCmd_mismatch(t *testing.T) {
	dir := t.TempDir()
	purchase := writeBill(t, dir, "purchase.txt", "Pen  10.00\nTotal  10.00\n")
	sale := writeBill(t, dir, "sale.txt", "Pen  12.00\nTotal  12.00\n")

	if got := runAudit(t, purchase, sale); got != subcommands.ExitFailure {
		t.Errorf("audit with a price mismatch = %v, want ExitFailure", got)
	}
}

func TestAuditCmd_missingFile(t *testing.T) {
	dir := t.TempDir()
	purchase := writeBill(t, dir, "purchase.txt", "Pen  10.00\n")

	if got := runAudit(t, purchase, filepath.Join(dir, "nope.txt")); got != subcommands.ExitFailure {
		t.Errorf("audit with an unreadable file = %v, want ExitFailure", got)
	}
}

func TestAuditCmd_wrongArgCount(t *testing.T) {
	if got := runAudit(t, "only-one.txt"); got != subcommands.ExitUsageError {
		t.Errorf("audit with one arg = %v, want ExitUsageError", got)
	}
}
