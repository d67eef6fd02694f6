// Package recommend builds question and lawyer recommendations from a user's
// chat history.
package recommend

// Recommendation is a suggested question. Count is the occurrence count for
// frequency results and the similarity percentage for similarity results.
type Recommendation struct {
	ID       string `json:"id,omitempty"`
	Question string `json:"question"`
	Category string `json:"category"`
	Count    int    `json:"count,omitempty"`
}

// HistoryEntry is the part of a history row the producers look at.
type HistoryEntry struct {
	Question string
	Category string
}

const (
	// ChatCap bounds the merged chat recommendations.
	ChatCap = 5
	// FrequentCap bounds the frequent questions surface.
	FrequentCap = 5
)
