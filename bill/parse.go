package bill

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// numberPattern matches the first signed or unsigned decimal number in
	// a line, integer or with one decimal point.
	numberPattern = regexp.MustCompile(`-?\d+(?:\.\d+)?`)
	// totalPattern flags a line as a total line when it contains any of
	// these phrases, case-insensitive.
	totalPattern = regexp.MustCompile(`(?i)total|grand total|net amount|amount due|amount payable`)
	// segmentPattern splits an item line into description and price
	// segments: runs of two or more spaces, " - ", or a pipe.
	segmentPattern = regexp.MustCompile(`\s{2,}|\s-\s|\|`)

	currencyStripper = strings.NewReplacer(",", "", "₹", "", "$", "")
)

// numeric extracts the first number from a line, after stripping currency
// symbols and thousands separators. The second return is false when the
// line contains no number.
func numeric(s string) (decimal.Decimal, bool) {
	m := numberPattern.FindString(currencyStripper.Replace(s))
	if m == "" {
		return decimal.Decimal{}, false
	}
	v, err := decimal.NewFromString(m)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return v, true
}

// Parse converts raw document text into line items plus an optional
// detected total. It is pure and never fails: malformed lines simply
// contribute no item. Accepted inputs are anything line-oriented (plain
// text, CSV-ish, line-delimited JSON-ish); there is no format-specific
// handling beyond text splitting.
//
// For each non-empty trimmed line, in order:
//  1. a line containing a total phrase sets the detected total (last such
//     line wins) and is excluded from items;
//  2. a line splitting into two or more segments whose last segment is a
//     number becomes an item: amount from the last segment, description
//     from the rest joined with " - ";
//  3. otherwise a line containing any number becomes an item: amount from
//     the first number, description from the line with that number
//     removed;
//  4. otherwise the line is skipped.
func Parse(text string) ParsedBill {
	var parsed ParsedBill

	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if totalPattern.MatchString(line) {
			if v, ok := numeric(line); ok {
				parsed.Total = decimal.NullDecimal{Decimal: v, Valid: true}
			}
			continue
		}

		var parts []string
		for _, p := range segmentPattern.Split(line, -1) {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}
		if len(parts) >= 2 {
			if last, ok := numeric(parts[len(parts)-1]); ok {
				parsed.Items = append(parsed.Items, Item{
					Raw:         line,
					Description: strings.Join(parts[:len(parts)-1], " - "),
					Amount:      last,
				})
				continue
			}
		}

		// Fallback: any line containing a number is treated as an item.
		if v, ok := numeric(line); ok {
			parsed.Items = append(parsed.Items, Item{
				Raw:         line,
				Description: strings.TrimSpace(removeFirstNumber(line)),
				Amount:      v,
			})
		}
	}
	return parsed
}

// removeFirstNumber deletes the first number-pattern substring from line.
func removeFirstNumber(line string) string {
	loc := numberPattern.FindStringIndex(line)
	if loc == nil {
		return line
	}
	return line[:loc[0]] + line[loc[1]:]
}

// ParseReader reads a whole document and parses it. Only the read can fail;
// the parse itself cannot.
func ParseReader(r io.Reader) (ParsedBill, error) {
	text, err := io.ReadAll(r)
	if err != nil {
		return ParsedBill{}, fmt.Errorf("could not read bill document: %w", err)
	}
	return Parse(string(text)), nil
}

// ParseFile reads and parses the bill document at path.
func ParseFile(path string) (ParsedBill, error) {
	f, err := os.Open(path)
	if err != nil {
		return ParsedBill{}, fmt.Errorf("could not open bill document %q: %w", path, err)
	}
	defer f.Close()
	return ParseReader(f)
}
