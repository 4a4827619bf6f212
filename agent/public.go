package agent

import (
	"context"
	"fmt"

	"github.com/kathmanduwallet/wallet"
	"github.com/kathmanduwallet/wallet/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to manage his personal wallet: check his balance, review his
			transaction history, and understand his bills.

			Devise a plan of questions to ask each expert and come up with the best response to the
			user's request. The user will assume you checked his wallet first.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAdvisor returns an expert that grounds answers about merchants, services
// and prices with Google Search.
func NewAdvisor() *Expert {
	return &Expert{
		Name: "Advisor",
		Description: `This is a consumer-finance advisor,
		well aware of merchants, utility companies, service plans and their usual prices.
		Ask the Advisor whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in consumer finance. You can search and find about anything related
			to merchants, utility companies, subscription plans, and prices. You leverage Google
			Search to ground your assertions in a solid truth.
				`}}},
		},
	}
}

// NewTeller returns the expert in charge of reading the user's wallet ledger.
func NewTeller(ledger *wallet.Ledger) *Expert {
	lib := []Function{newBalanceFunc(ledger), newHistoryFunc(ledger)}

	return &Expert{
		Name: "Teller",
		Description: `This is the Teller. He is in charge of reading the user's wallet ledger.
		He can report the current balance, the held amount, and the transaction history.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a bank teller in charge of the user's wallet.
				You know how to use the Tools to extract the balance and the transaction history.
				You are part of a team of experts, yours is everything about the user's wallet.
				They might ask you questions in approximative language, figure out what they meant.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function.
type Func struct {
	Decl *genai.FunctionDeclaration
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func errResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

func newBalanceFunc(ledger *wallet.Ledger) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Balance",
			Description: `Balance reports the wallet's current balance, the amount on hold,
			and the available amount (balance minus hold).`,
			Parameters: &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted summary of the wallet balance.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			snap, err := ledger.Snapshot(ctx)
			if err != nil {
				return errResponse(id, "Balance", fmt.Errorf("could not load wallet: %w", err))
			}
			return &genai.FunctionResponse{
				ID:   id,
				Name: "Balance",
				Response: map[string]any{
					"output": renderer.SnapshotMarkdown(ledger.Account(), snap),
				},
			}
		},
	}
}

func newHistoryFunc(ledger *wallet.Ledger) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "History",
			Description: `History lists the wallet's transactions, newest first.
			Each entry has an id, a type (Deposit, Withdraw, Transfer, Bill), a label,
			a signed amount, and a date.`,
			Parameters: &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of all wallet transactions.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			snap, err := ledger.Snapshot(ctx)
			if err != nil {
				return errResponse(id, "History", fmt.Errorf("could not load wallet: %w", err))
			}
			return &genai.FunctionResponse{
				ID:   id,
				Name: "History",
				Response: map[string]any{
					"output": renderer.TransactionsMarkdown(snap.Transactions),
				},
			}
		},
	}
}
