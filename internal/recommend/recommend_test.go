package recommend

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"justicia-backend/internal/lawyers"
	"justicia-backend/internal/questions"
)

func TestFrequentRanksExactPairs(t *testing.T) {
	got := Frequent([]HistoryEntry{
		{Question: "A", Category: "x"},
		{Question: "B", Category: "y"},
		{Question: "A", Category: "x"},
	})
	require.Len(t, got, 2)
	assert.Equal(t, Recommendation{Question: "A", Category: "x", Count: 2}, got[0])
	assert.Equal(t, Recommendation{Question: "B", Category: "y", Count: 1}, got[1])
}

func TestFrequentDoesNotMergeNearDuplicates(t *testing.T) {
	got := Frequent([]HistoryEntry{
		{Question: "¿Pensión?", Category: "pensiones"},
		{Question: "¿Pensión? ", Category: "pensiones"},
		{Question: "¿Pensión?", Category: "general"},
	})
	assert.Len(t, got, 3)
}

func TestFrequentCapsAtFive(t *testing.T) {
	var history []HistoryEntry
	for i := 0; i < 8; i++ {
		history = append(history, HistoryEntry{Question: strings.Repeat("q", i+1), Category: "c"})
	}
	got := Frequent(history)
	require.Len(t, got, FrequentCap)
	assert.Equal(t, "q", got[0].Question)
}

func TestSimilarityComparesWithinCategory(t *testing.T) {
	history := []HistoryEntry{
		{Question: "¿Cómo solicito la pensión por invalidez en ONP?", Category: "pensiones"},
		{Question: "¿Qué ajustes razonables pide la ley laboral?", Category: "laboral"},
		{Question: "Requisitos de la pension por invalidez", Category: "pensiones"},
		{Question: "¿Cuánto tarda el trámite en ONP?", Category: "pensiones"},
		{Question: "¿Cuánto tarda el trámite en ONP?", Category: "pensiones"},
		{Question: "Receta de cocina", Category: "pensiones"},
	}
	got, err := TFIDFSimilarity{}.Similar(context.Background(), history)
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.LessOrEqual(t, len(got), 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "Requisitos de la pension por invalidez", got[0].Question)
	for _, r := range got {
		assert.Equal(t, "pensiones", r.Category)
		assert.Greater(t, r.Count, 0)
		assert.LessOrEqual(t, r.Count, 100)
		assert.NotEqual(t, "Receta de cocina", r.Question)
	}
}

func TestSimilarityShortHistory(t *testing.T) {
	got, err := TFIDFSimilarity{}.Similar(context.Background(), []HistoryEntry{{Question: "uno", Category: "general"}})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMergeKeepsOrderAndDuplicates(t *testing.T) {
	a := []Recommendation{{ID: "1", Question: "p"}, {ID: "2", Question: "q"}}
	b := []Recommendation{{ID: "sys-1", Question: "p"}, {ID: "sys-2", Question: "r"}, {ID: "sys-3", Question: "s"}, {ID: "sys-4", Question: "t"}}
	got := Merge(ChatCap, a, b)
	require.Len(t, got, 5)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "sys-1", got[2].ID)
	assert.Equal(t, "p", got[2].Question)
	assert.Equal(t, "sys-3", got[4].ID)
}

func TestTopicBankTagsSyntheticIDs(t *testing.T) {
	bank := TopicBank{Bank: questions.NewMemoryRepo(questions.ReferenceBank()...)}
	got, err := bank.Suggest(context.Background(), "laboral")
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, r := range got {
		assert.True(t, strings.HasPrefix(r.ID, "sys-"))
		assert.Len(t, r.ID, len("sys-")+9)
		assert.Zero(t, r.Count)
	}
	assert.NotEqual(t, got[0].ID, got[1].ID)

	empty, err := bank.Suggest(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

type panickingSimilarity struct{}

func (panickingSimilarity) Similar(ctx context.Context, history []HistoryEntry) ([]Recommendation, error) {
	panic("boom")
}

type slowSimilarity struct{}

func (slowSimilarity) Similar(ctx context.Context, history []HistoryEntry) ([]Recommendation, error) {
	time.Sleep(time.Second)
	return []Recommendation{{ID: "late"}}, nil
}

type failingBank struct{}

func (failingBank) TopByCategory(ctx context.Context, topic string, n int) ([]questions.LegalQuestion, error) {
	return nil, errors.New("db down")
}

func TestAggregatorDegradesProducers(t *testing.T) {
	history := []HistoryEntry{{Question: "¿Pensión?", Category: "pensiones"}}
	bank := TopicBank{Bank: questions.NewMemoryRepo(questions.ReferenceBank()...)}

	agg := &Aggregator{Similarity: panickingSimilarity{}, TopicBank: bank}
	got := agg.ForChat(context.Background(), history, "pensiones")
	require.Len(t, got, 2)
	assert.True(t, strings.HasPrefix(got[0].ID, "sys-"))

	agg = &Aggregator{Similarity: slowSimilarity{}, TopicBank: TopicBank{Bank: failingBank{}}, Timeout: 20 * time.Millisecond}
	got = agg.ForChat(context.Background(), history, "pensiones")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestAggregatorSkipsWithoutHistory(t *testing.T) {
	agg := &Aggregator{Similarity: TFIDFSimilarity{}}
	assert.Empty(t, agg.ForChat(context.Background(), nil, "laboral"))
}

func TestRankLawyersAppliesWeightsAndFilters(t *testing.T) {
	desc := "¿Qué pasa con mi pensión y la seguridad social?"
	all := RankLawyers(desc, lawyers.ReferenceDirectory(), LawyerPreferences{MinExperience: 5, MinRating: 4.5, Limit: 5})
	require.Len(t, all, 5)
	// Highest rating and experience in the directory.
	assert.Equal(t, "Dra. Ana Martínez", all[0].FullName)
	for i := 1; i < len(all); i++ {
		assert.GreaterOrEqual(t, all[i-1].OverallScore, all[i].OverallScore)
	}
	for _, m := range all {
		if m.FullName == "Dr. Javier López" {
			// Lowest rating and experience, so only similarity contributes.
			assert.Greater(t, m.SimilarityScore, 0.0)
			assert.InDelta(t, 0.5*m.SimilarityScore, m.OverallScore, 1e-9)
			continue
		}
		assert.Zero(t, m.SimilarityScore)
	}

	assert.Len(t, RankLawyers(desc, lawyers.ReferenceDirectory(), DefaultLawyerPreferences), 3)

	candidates := append(lawyers.ReferenceDirectory(),
		lawyers.Lawyer{ID: "junior", FullName: "Junior", Specialty: "Pensiones", ExperienceYears: 2, Rating: 5, Available: true},
		lawyers.Lawyer{ID: "off", FullName: "Off", Specialty: "Pensiones", ExperienceYears: 20, Rating: 5, Available: false},
	)
	for _, m := range RankLawyers("pensiones", candidates, LawyerPreferences{MinExperience: 5, MinRating: 4.5, Limit: 10}) {
		assert.NotEqual(t, "junior", m.ID)
		assert.NotEqual(t, "off", m.ID)
	}
}

func TestLawyerRecommenderEmptyDescription(t *testing.T) {
	rec := LawyerRecommender{Directory: lawyers.NewMemoryRepo(lawyers.ReferenceDirectory()...)}
	got, err := rec.Recommend(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFoldStripsAccents(t *testing.T) {
	assert.Equal(t, "pension", fold("Pensión"))
	assert.Equal(t, []string{"tramite", "certificacion"}, tokenize("¿El trámite de certificación?"))
}
