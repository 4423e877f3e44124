// README: Heuristic scanner over arbitrary JSON trees; finds price/vehicle/image leaves by path tokens.
package scan

import (
	"fmt"
	"sort"
	"strings"
)

// Leaf is one scalar value in an arbitrary decoded JSON tree together with
// the path that reaches it: dotted object keys and bracketed list indices,
// e.g. "price_details.base.total_price" or "rates[0].amount".
type Leaf struct {
	Path  string
	Value any
}

// Walk traverses a decoded JSON value depth-first and returns every scalar
// leaf with its full path. Object keys are visited in sorted order so that
// "first encountered wins" tie-breaks are deterministic. Walk never fails:
// a nil or unexpected value simply yields no leaves.
func Walk(v any) []Leaf {
	var leaves []Leaf
	walk("", v, &leaves)
	return leaves
}

func walk(path string, v any, out *[]Leaf) {
	switch node := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(node))
		for k := range node {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			walk(joinPath(path, k), node[k], out)
		}
	case []any:
		for i, item := range node {
			walk(fmt.Sprintf("%s[%d]", path, i), item, out)
		}
	case nil:
		// Absent leaves are not candidates for anything.
	default:
		*out = append(*out, Leaf{Path: path, Value: node})
	}
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

// Lookup walks a fixed dotted path ("car.images.SIZE268X144") through nested
// objects and returns the value at the end, if the whole path exists.
func Lookup(v any, path string) (any, bool) {
	cur := v
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = obj[part]
		if !ok {
			return nil, false
		}
	}
	if cur == nil {
		return nil, false
	}
	return cur, true
}

func pathContainsAny(path string, tokens []string) bool {
	lower := strings.ToLower(path)
	for _, tok := range tokens {
		if strings.Contains(lower, tok) {
			return true
		}
	}
	return false
}
