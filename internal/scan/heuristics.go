// README: Scoring rules for price, vehicle description, and image discovery.
package scan

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Path tokens that mark a leaf as a candidate for each semantic role.
// Matched case-insensitively as substrings of the full leaf path.
var (
	priceTokens = []string{
		"total_price", "grandtotal", "subtotal", "total", "amount", "price", "rate",
	}
	vehicleTokens = []string{
		"carmodel", "vehicle", "car", "model", "category", "class", "type", "group",
	}
	imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}
)

// Description scoring weights. Named so the ranking is testable on its own.
const (
	scoreSimilarToken = 3 // "... or similar" is the strongest rental-class signal
	scoreMultiWord    = 2 // multi-word descriptions outrank single tokens
	scoreAlphanumeric = 1 // mixed letters and digits ("Group C4")
)

const minDescriptionLen = 4

var numberRun = regexp.MustCompile(`[0-9]+(\.[0-9]+)?`)

// Price scans the tree for the best total-price figure. A leaf qualifies
// when its path contains a price token and its value parses to a positive
// number; among all qualifying leaves the minimum wins, which favors the
// most specific figure over looser matches. ok is false when no leaf
// qualifies.
func Price(tree any) (price float64, ok bool) {
	for _, leaf := range Walk(tree) {
		if !pathContainsAny(leaf.Path, priceTokens) {
			continue
		}
		n, parsed := parseAmount(leaf.Value)
		if !parsed {
			continue
		}
		if !ok || n < price {
			price, ok = n, true
		}
	}
	return price, ok
}

// Description scans the tree for the most description-like string reachable
// through a vehicle-related path. Highest score wins; ties keep the first
// candidate in walk order.
func Description(tree any) (string, bool) {
	best := ""
	bestScore := -1
	for _, leaf := range Walk(tree) {
		if !pathContainsAny(leaf.Path, vehicleTokens) {
			continue
		}
		s, isString := leaf.Value.(string)
		if !isString {
			continue
		}
		s = strings.TrimSpace(s)
		if len(s) < minDescriptionLen || isURL(s) {
			continue
		}
		if score := describeScore(s); score > bestScore {
			best, bestScore = s, score
		}
	}
	return best, bestScore >= 0
}

// Image resolves an image URL from the record. The fixed paths are tried in
// order first; when none match, the subtree at scanRoot is scanned for any
// HTTP string with a recognized image extension.
func Image(tree any, fixedPaths []string, scanRoot string) (string, bool) {
	for _, path := range fixedPaths {
		if v, ok := Lookup(tree, path); ok {
			if s, isString := v.(string); isString && s != "" {
				return s, true
			}
		}
	}
	root, ok := Lookup(tree, scanRoot)
	if !ok {
		return "", false
	}
	for _, leaf := range Walk(root) {
		if s, isString := leaf.Value.(string); isString && looksLikeImageURL(s) {
			return s, true
		}
	}
	return "", false
}

// Amount turns a single leaf value into a positive price. Numbers are taken
// as-is; strings have thousands separators stripped and the first numeric
// run extracted, so "1,234.50 USD" parses to 1234.50. A run preceded by a
// minus sign ("-5.00 USD") is not a price and is rejected.
func Amount(v any) (float64, bool) {
	return parseAmount(v)
}

func parseAmount(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, n > 0
	case int:
		return float64(n), n > 0
	case string:
		cleaned := strings.ReplaceAll(n, ",", "")
		idx := numberRun.FindStringIndex(cleaned)
		if idx == nil {
			return 0, false
		}
		// A minus sign in front of the run means a negated figure, not a
		// price.
		if idx[0] > 0 && cleaned[idx[0]-1] == '-' {
			return 0, false
		}
		f, err := strconv.ParseFloat(cleaned[idx[0]:idx[1]], 64)
		return f, err == nil && f > 0
	default:
		return 0, false
	}
}

func describeScore(s string) int {
	score := 0
	lower := strings.ToLower(s)
	if strings.Contains(lower, "similar") {
		score += scoreSimilarToken
	}
	if strings.Contains(s, " ") {
		score += scoreMultiWord
	}
	if hasLetters(s) && hasDigits(s) {
		score += scoreAlphanumeric
	}
	return score
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func looksLikeImageURL(s string) bool {
	if !isURL(s) {
		return false
	}
	lower := strings.ToLower(s)
	for _, ext := range imageExtensions {
		if strings.Contains(lower, ext) {
			return true
		}
	}
	return false
}

func hasLetters(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func hasDigits(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
