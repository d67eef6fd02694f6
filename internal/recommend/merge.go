package recommend

// Merge concatenates lists in order and truncates to limit. Duplicates across
// lists are kept.
func Merge(limit int, lists ...[]Recommendation) []Recommendation {
	out := make([]Recommendation, 0, limit)
	for _, l := range lists {
		for _, r := range l {
			if len(out) == limit {
				return out
			}
			out = append(out, r)
		}
	}
	return out
}
