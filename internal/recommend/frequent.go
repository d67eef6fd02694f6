package recommend

import "sort"

// Frequent groups history by exact (question, category) pair and returns the
// most repeated pairs. Ties keep the order of first appearance.
func Frequent(history []HistoryEntry) []Recommendation {
	type key struct{ question, category string }
	index := make(map[key]int)
	out := make([]Recommendation, 0)
	for _, h := range history {
		k := key{h.Question, h.Category}
		if i, ok := index[k]; ok {
			out[i].Count++
			continue
		}
		index[k] = len(out)
		out = append(out, Recommendation{Question: h.Question, Category: h.Category, Count: 1})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if len(out) > FrequentCap {
		out = out[:FrequentCap]
	}
	return out
}
