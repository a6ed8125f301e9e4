package comparison

import (
	"sort"
	"strings"
)

// Normalize returns the canonical form of an invader name: surrounding
// whitespace is stripped. Case and Unicode composition are preserved, so
// "pa_1125" and "PA_1125" stay distinct.
func Normalize(s string) string {
	return strings.TrimSpace(s)
}

// Compare computes, for each named collection in others, the invaders present
// in that collection but absent from the reference collection.
//
// Membership is tested on normalized names. Each result list is deduplicated
// and sorted ascending by byte order. The result has exactly the same key set
// as others; a nil collection counts as empty and yields an empty list.
// Inputs are never mutated.
func Compare(reference []string, others map[string][]string) map[string][]string {
	ref := toSet(reference)

	result := make(map[string][]string, len(others))
	for name, invaders := range others {
		exclusive := []string{}
		for inv := range toSet(invaders) {
			if _, ok := ref[inv]; !ok {
				exclusive = append(exclusive, inv)
			}
		}
		sort.Strings(exclusive)
		result[name] = exclusive
	}
	return result
}

// toSet builds the normalized set of a collection. Duplicates collapse and a
// nil collection yields an empty set. An entry that normalizes to the empty
// string is still a member.
func toSet(invaders []string) map[string]struct{} {
	set := make(map[string]struct{}, len(invaders))
	for _, inv := range invaders {
		set[Normalize(inv)] = struct{}{}
	}
	return set
}
