package printcolor

// Resolve finds the Pantone entry a free-form name refers to.
//
// The expanded query keys are probed against the name index in order and
// the first hit wins. Without a hit every entry is scored with fuzzyScore
// against the raw query; the best score (earliest entry on ties) is accepted
// when it reaches 0.5. Otherwise a *NotFoundError is returned.
func (db *Database) Resolve(query string) (MatchResult, error) {
	entries, err := db.load()
	if err != nil {
		return MatchResult{}, err
	}

	for _, key := range expandQuery(query) {
		if i, ok := db.index[key]; ok {
			return entries[i].Match(), nil
		}
	}

	best, bestScore := -1, 0.0
	for i := range entries {
		if score := fuzzyScore(query, entries[i].Name); score > bestScore {
			best, bestScore = i, score
		}
	}
	if best >= 0 && bestScore >= minFuzzyScore {
		return entries[best].Match(), nil
	}
	return MatchResult{}, &NotFoundError{Query: query}
}
