// Package transform normalizes raw scraped records into the canonical,
// contract-conforming shape. It parses loosely-formatted pricing strings and
// fills defaults without ever overriding values that are already present.
package transform

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// numericToken matches a numeric amount with an optional thousands marker
// ("57.5k"). Parsing is case-insensitive on a lowered copy of the input.
var numericToken = regexp.MustCompile(`([0-9.]+)(k)?`)

// numericRun matches any numeric run (with optional trailing "k") for
// stripping amounts out of a label.
var numericRun = regexp.MustCompile(`[0-9.]+k?`)

// currencySymbols maps display symbols to ISO 4217 codes, in scan order.
var currencySymbols = []struct {
	symbol string
	code   string
}{
	{"$", "USD"},
	{"€", "EUR"},
	{"£", "GBP"},
	{"¥", "JPY"},
}

// ParsePoints extracts a points amount and program label from a raw string
// like "57.5k AAdvantage miles" -> (57500, "Aadvantage Miles"). The "k"
// thousands marker is case-insensitive. An amount with no surrounding text
// yields an empty label; returns (nil, nil) when the input is empty or
// contains no parsable numeric token.
func ParsePoints(raw string) (*float64, *string) {
	if raw == "" {
		return nil, nil
	}

	lowered := strings.ToLower(raw)
	match := numericToken.FindStringSubmatch(lowered)
	if match == nil {
		return nil, nil
	}

	amount, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return nil, nil
	}
	if match[2] == "k" {
		amount *= 1000
	}

	label := numericRun.ReplaceAllString(lowered, "")
	label = titleCase(strings.TrimSpace(strings.ReplaceAll(label, "+", "")))
	return &amount, &label
}

// ParseCash extracts a cash amount and currency code from a raw string like
// "$123.45" -> (123.45, "USD"). An unrecognized or absent symbol defaults to
// USD; an absent numeric token defaults to 0. ParseCash never fails: missing
// data degrades to defaults instead of signaling an error.
func ParseCash(raw string) (float64, string) {
	currency := "USD"
	for _, c := range currencySymbols {
		if strings.Contains(raw, c.symbol) {
			currency = c.code
			break
		}
	}

	match := numericToken.FindStringSubmatch(raw)
	if match == nil {
		return 0, currency
	}
	amount, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, currency
	}
	return amount, currency
}

// NormalizeDate is an identity pass-through reserved for future format
// coercion. It tolerates any input.
func NormalizeDate(raw string) string {
	return raw
}

// titleCase uppercases the first letter of each word and lowercases the rest,
// treating any non-letter as a word boundary.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}
