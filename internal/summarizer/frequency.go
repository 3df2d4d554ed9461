package summarizer

import "sort"

// KeywordWeight is a keyword with its normalized importance.
type KeywordWeight struct {
	Word   string
	Weight float64
}

// KeywordFrequencies counts keywords and divides each count by the largest
// one, so the most frequent keyword weighs exactly 1.0. It returns nil for an
// empty list.
func KeywordFrequencies(keywords []string) map[string]float64 {
	if len(keywords) == 0 {
		return nil
	}
	counts := make(map[string]int, len(keywords))
	maxCount := 0
	for _, k := range keywords {
		counts[k]++
		if counts[k] > maxCount {
			maxCount = counts[k]
		}
	}
	freq := make(map[string]float64, len(counts))
	for k, c := range counts {
		freq[k] = float64(c) / float64(maxCount)
	}
	return freq
}

// RankKeywords orders a frequency map by weight descending, then word.
func RankKeywords(freq map[string]float64) []KeywordWeight {
	out := make([]KeywordWeight, 0, len(freq))
	for w, v := range freq {
		out = append(out, KeywordWeight{Word: w, Weight: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Weight != out[j].Weight {
			return out[i].Weight > out[j].Weight
		}
		return out[i].Word < out[j].Word
	})
	return out
}
