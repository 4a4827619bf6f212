package wallet

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// EncodeState writes the canonical JSON form of a wallet state. The field
// order is fixed by the MarshalJSON implementations so that two encodes of
// the same state are byte-identical.
func EncodeState(w io.Writer, state WalletState) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(state); err != nil {
		return fmt.Errorf("could not encode wallet state: %w", err)
	}
	return nil
}

// DecodeState reads a wallet state previously written by EncodeState.
func DecodeState(r io.Reader) (WalletState, error) {
	var state WalletState
	dec := json.NewDecoder(r)
	if err := dec.Decode(&state); err != nil {
		return WalletState{}, fmt.Errorf("could not decode wallet state: %w", err)
	}
	return state, nil
}
