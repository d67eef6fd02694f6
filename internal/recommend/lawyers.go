package recommend

import (
	"context"
	"sort"
	"strings"

	"justicia-backend/internal/lawyers"
)

// LawyerMatch is one ranked lawyer for a case description.
type LawyerMatch struct {
	ID              string  `json:"id"`
	FullName        string  `json:"full_name"`
	Specialty       string  `json:"specialty"`
	ExperienceYears int     `json:"experience_years"`
	Rating          float64 `json:"rating"`
	SimilarityScore float64 `json:"similarity_score"`
	OverallScore    float64 `json:"overall_score"`
	AvatarURL       *string `json:"avatar_url"`
}

// LawyerPreferences filter and cap the ranking.
type LawyerPreferences struct {
	MinExperience int
	MinRating     float64
	Limit         int
}

// DefaultLawyerPreferences are the thresholds used for booking follow-ups.
var DefaultLawyerPreferences = LawyerPreferences{MinExperience: 5, MinRating: 4.5, Limit: 3}

const (
	weightSimilarity = 0.5
	weightRating     = 0.3
	weightExperience = 0.2
)

// LawyerDirectory lists bookable lawyers.
type LawyerDirectory interface {
	ListAvailable(ctx context.Context) ([]lawyers.Lawyer, error)
}

// LawyerRecommender ranks available lawyers against a case description built
// from the user's recent questions.
type LawyerRecommender struct {
	Directory LawyerDirectory
	Prefs     LawyerPreferences
}

// Recommend returns the best matches for the joined questions.
func (r LawyerRecommender) Recommend(ctx context.Context, recentQuestions []string) ([]LawyerMatch, error) {
	description := strings.TrimSpace(strings.Join(recentQuestions, " "))
	if description == "" || r.Directory == nil {
		return []LawyerMatch{}, nil
	}
	candidates, err := r.Directory.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}
	prefs := r.Prefs
	if prefs.Limit <= 0 {
		prefs = DefaultLawyerPreferences
	}
	return RankLawyers(description, candidates, prefs), nil
}

// RankLawyers scores available candidates as
// 0.5*similarity + 0.3*rating + 0.2*experience, with rating and experience
// min-max scaled over the available set, then applies prefs.
func RankLawyers(description string, candidates []lawyers.Lawyer, prefs LawyerPreferences) []LawyerMatch {
	available := make([]lawyers.Lawyer, 0, len(candidates))
	for _, l := range candidates {
		if l.Available {
			available = append(available, l)
		}
	}
	if len(available) == 0 {
		return []LawyerMatch{}
	}

	docs := make([]string, 0, len(available)+1)
	docs = append(docs, description)
	ratings := make([]float64, len(available))
	years := make([]float64, len(available))
	for i, l := range available {
		docs = append(docs, l.Specialty)
		ratings[i] = l.Rating
		years[i] = float64(l.ExperienceYears)
	}
	vectors := vectorize(docs)
	ratingScaled := minMax(ratings)
	yearsScaled := minMax(years)

	out := make([]LawyerMatch, 0, len(available))
	for i, l := range available {
		if l.ExperienceYears < prefs.MinExperience || l.Rating < prefs.MinRating {
			continue
		}
		sim := cosine(vectors[0], vectors[i+1])
		out = append(out, LawyerMatch{
			ID:              l.ID,
			FullName:        l.FullName,
			Specialty:       l.Specialty,
			ExperienceYears: l.ExperienceYears,
			Rating:          l.Rating,
			SimilarityScore: sim,
			OverallScore:    weightSimilarity*sim + weightRating*ratingScaled[i] + weightExperience*yearsScaled[i],
			AvatarURL:       l.AvatarURL,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].OverallScore > out[j].OverallScore })
	if prefs.Limit > 0 && len(out) > prefs.Limit {
		out = out[:prefs.Limit]
	}
	return out
}

// minMax scales to [0,1]; a constant series scales to 0.
func minMax(values []float64) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	if hi == lo {
		return out
	}
	for i, v := range values {
		out[i] = (v - lo) / (hi - lo)
	}
	return out
}
