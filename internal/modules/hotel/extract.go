// README: Field extraction from raw hotel records, with the photo fallback chain.
package hotel

// imageExtractors is the photo fallback chain, tried left to right; first
// present key wins. The order is a provider contract and must not change.
var imageExtractors = []func(map[string]any) (string, bool){
	stringField("main_photo_url"),
	stringField("main_photo_url_original"),
	stringField("max_photo_url"),
	stringField("hotel_image_url"),
}

func stringField(key string) func(map[string]any) (string, bool) {
	return func(rec map[string]any) (string, bool) {
		s, ok := rec[key].(string)
		return s, ok && s != ""
	}
}

// imageURL resolves a record's photo URL, or "" when no field in the chain
// is present. A missing image never fails the record.
func imageURL(rec map[string]any) string {
	for _, extract := range imageExtractors {
		if url, ok := extract(rec); ok {
			return url
		}
	}
	return ""
}

// newCandidate normalizes one raw record against the budget ceiling
// (inclusive). ok is false when the record has no usable numeric price or
// the price exceeds the budget.
func newCandidate(rec map[string]any, checkIn, checkOut string, budget float64) (Candidate, bool) {
	price, isNum := rec["min_total_price"].(float64)
	if !isNum || price <= 0 || price > budget {
		return Candidate{}, false
	}
	name, _ := rec["hotel_name"].(string)
	rating, _ := rec["review_score"].(float64)
	return Candidate{
		Name:     name,
		Rating:   rating,
		Price:    price,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Image:    imageURL(rec),
	}, true
}
