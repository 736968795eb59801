package utils

import (
	"sort"
	"strings"
	"unicode"
)

// KeywordCount is a keyword with its occurrence count.
type KeywordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

var stopWords = map[string]bool{
	"this": true, "that": true, "with": true, "from": true, "have": true,
	"were": true, "been": true, "they": true, "their": true, "there": true,
	"what": true, "when": true, "where": true, "which": true, "while": true,
	"will": true, "would": true, "could": true, "should": true, "about": true,
	"because": true, "some": true, "more": true, "very": true, "just": true,
	"also": true, "then": true, "than": true, "them": true, "these": true,
	"those": true, "into": true, "over": true, "after": true, "before": true,
	"being": true, "doing": true, "during": true, "having": true, "today": true,
}

// ExtractKeywords returns the topN most frequent words across the given
// texts, lowercased, stop-word filtered and ignoring words of length 3
// or less. Ties break alphabetically so the result is deterministic.
func ExtractKeywords(texts []string, topN int) []KeywordCount {
	counts := make(map[string]int)
	for _, text := range texts {
		words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
			return !unicode.IsLetter(r)
		})
		for _, w := range words {
			if len(w) <= 3 || stopWords[w] {
				continue
			}
			counts[w]++
		}
	}

	keywords := make([]KeywordCount, 0, len(counts))
	for w, n := range counts {
		keywords = append(keywords, KeywordCount{Word: w, Count: n})
	}
	sort.Slice(keywords, func(i, j int) bool {
		if keywords[i].Count != keywords[j].Count {
			return keywords[i].Count > keywords[j].Count
		}
		return keywords[i].Word < keywords[j].Word
	})

	if len(keywords) > topN {
		keywords = keywords[:topN]
	}
	return keywords
}
