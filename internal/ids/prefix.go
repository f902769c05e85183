package ids

import "strings"

// NormalizeUniqueIDs lowercases IDs and drops empties and duplicates,
// preserving first-seen order.
func NormalizeUniqueIDs(ids []string) []string {
	uniqueIDs := make([]string, 0, len(ids))
	seen := make(map[string]bool)
	for _, id := range ids {
		idLower := strings.ToLower(id)
		if idLower == "" || seen[idLower] {
			continue
		}
		seen[idLower] = true
		uniqueIDs = append(uniqueIDs, idLower)
	}
	return uniqueIDs
}

// MatchPrefixNormalized finds the ID matching a prefix among normalized IDs.
// The prefix is lowercased before matching. An exact match wins over prefix
// matches. Returns the match, whether anything matched, and whether the
// prefix was ambiguous.
func MatchPrefixNormalized(normalizedIDs []string, prefix string) (match string, found bool, ambiguous bool) {
	prefix = strings.ToLower(prefix)
	if prefix == "" {
		return "", false, false
	}

	var matches []string
	for _, id := range normalizedIDs {
		if id == prefix {
			return id, true, false
		}
		if strings.HasPrefix(id, prefix) {
			matches = append(matches, id)
		}
	}

	switch len(matches) {
	case 0:
		return "", false, false
	case 1:
		return matches[0], true, false
	default:
		return "", true, true
	}
}

// UniquePrefixLengthsNormalized returns the shortest unique prefix length
// for each already-normalized ID.
func UniquePrefixLengthsNormalized(normalizedIDs []string) map[string]int {
	lengths := make(map[string]int, len(normalizedIDs))
	for _, id := range normalizedIDs {
		lengths[id] = uniquePrefixLength(id, normalizedIDs)
	}
	return lengths
}

// UniquePrefixLengths returns the shortest unique prefix length for each ID.
func UniquePrefixLengths(ids []string) map[string]int {
	return UniquePrefixLengthsNormalized(NormalizeUniqueIDs(ids))
}

func uniquePrefixLength(id string, ids []string) int {
	for length := 1; length <= len(id); length++ {
		prefix := id[:length]
		unique := true
		for _, other := range ids {
			if other == id {
				continue
			}
			if strings.HasPrefix(other, prefix) {
				unique = false
				break
			}
		}
		if unique {
			return length
		}
	}

	return len(id)
}
