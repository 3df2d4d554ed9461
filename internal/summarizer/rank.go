package summarizer

import (
	"sort"
	"strings"

	"textsum/internal/domain"
)

// ScoreSentences sums the keyword weight of every token in each sentence.
// Tokens missing from freq add nothing. The result is in input order.
func ScoreSentences(sentences []domain.Sentence, freq map[string]float64) []domain.ScoredSentence {
	scored := make([]domain.ScoredSentence, len(sentences))
	for i, sent := range sentences {
		score := 0.0
		for _, tok := range sent.Tokens {
			score += freq[lowerForm(tok)]
		}
		scored[i] = domain.ScoredSentence{Sentence: sent, Score: score}
	}
	return scored
}

// SelectTop picks the n best scored sentences, earlier sentences winning
// ties, and returns them in document order. n must be positive.
func SelectTop(scored []domain.ScoredSentence, n int) []domain.ScoredSentence {
	ranked := make([]domain.ScoredSentence, len(scored))
	copy(ranked, scored)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Sentence.Index < ranked[j].Sentence.Index
	})
	if n > len(ranked) {
		n = len(ranked)
	}
	if n < 0 {
		n = 0
	}
	selected := ranked[:n]
	sort.Slice(selected, func(i, j int) bool {
		return selected[i].Sentence.Index < selected[j].Sentence.Index
	})
	return selected
}

// Join concatenates the original sentence texts with single spaces.
func Join(selected []domain.ScoredSentence) string {
	parts := make([]string, len(selected))
	for i, s := range selected {
		parts[i] = s.Sentence.Text
	}
	return strings.Join(parts, " ")
}
