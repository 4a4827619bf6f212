// Package directory lists candidate transfer recipients from the demo
// users service (dummyjson.com). The wallet only needs display names; the
// service is treated as a read-only directory with limit/skip paging.
package directory

import (
	"fmt"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
)

const defaultBaseURL = "https://dummyjson.com"

// Recipient is one person from the directory, a potential transfer target.
type Recipient struct {
	ID    int
	Name  string
	Email string
}

// Client queries the directory service. Responses are cached on disk with a
// daily expiry, like every remote fetcher in this project.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient returns a client for the public demo service.
func NewClient() *Client {
	return &Client{baseURL: defaultBaseURL, httpClient: daily()}
}

// Fetch returns one page of recipients plus the directory's total count.
func (c *Client) Fetch(limit, skip int) ([]Recipient, int, error) {
	addr := fmt.Sprintf("%s/users?limit=%d&skip=%d", c.baseURL, limit, skip)

	var jobj any
	if err := jwget(c.httpClient, addr, &jobj); err != nil {
		return nil, 0, fmt.Errorf("error fetching recipients: %w", err)
	}
	return extractRecipients(jobj)
}

// extractRecipients pulls the user list out of the service's JSON shape.
func extractRecipients(jobj any) ([]Recipient, int, error) {
	jusers, err := jsonpath.Get("$.users[*]", jobj)
	if err != nil {
		return nil, 0, fmt.Errorf("error parsing recipients: %q %w", "$.users[*]", err)
	}
	jlist, ok := jusers.([]any)
	if !ok {
		return nil, 0, fmt.Errorf("error parsing recipients: users is not a list")
	}

	recipients := make([]Recipient, 0, len(jlist))
	for _, ju := range jlist {
		user, ok := ju.(map[string]any)
		if !ok {
			continue
		}
		r := Recipient{
			Name: field(user, "firstName") + " " + field(user, "lastName"),
		}
		r.Email = field(user, "email")
		if id, ok := user["id"].(float64); ok {
			r.ID = int(id)
		}
		recipients = append(recipients, r)
	}

	total := len(recipients)
	if jtotal, err := jsonpath.Get("$.total", jobj); err == nil {
		if v, ok := jtotal.(float64); ok {
			total = int(v)
		}
	}
	return recipients, total, nil
}

func field(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}
