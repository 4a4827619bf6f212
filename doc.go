// Package wallet provides the core logic of a demo personal wallet: a
// single-account ledger with an append-only transaction history, and the
// persistence contract used to store it.
//
// The core functionalities include:
//   - Ledger Management: applying deposits, withdrawals, transfers and bill
//     payments to a wallet balance, each recorded as an immutable
//     transaction prepended to the history.
//   - Validation: rejecting invalid amounts, blank destinations or
//     recipients, and outflows that exceed the current balance, before any
//     state is written.
//   - Data Persistence: a small Store contract with directory-backed and
//     in-memory implementations; every mutation is a load, mutate, save
//     round trip that returns the updated snapshot.
//
// Bill parsing and reconciliation live in the bill subpackage; this package
// serves as the foundational logic for the `kw` command-line tool.
package wallet
