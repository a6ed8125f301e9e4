package comparison

import "strings"

// Filter returns a copy of results keeping only invaders whose lowercase form
// contains the lowercase term (case-insensitive substring match). An empty or
// whitespace-only term returns results unchanged. The key set is preserved,
// and since each list stays in its original order, sorted input stays sorted.
func Filter(results map[string][]string, term string) map[string][]string {
	term = strings.ToLower(Normalize(term))
	if term == "" {
		return results
	}

	filtered := make(map[string][]string, len(results))
	for name, invaders := range results {
		kept := []string{}
		for _, inv := range invaders {
			if strings.Contains(strings.ToLower(inv), term) {
				kept = append(kept, inv)
			}
		}
		filtered[name] = kept
	}
	return filtered
}
