package services

import (
	"strings"

	"finance-tracker/internal/models"
)

const (
	exactMatchConfidence   = 1.0
	keywordMatchConfidence = 0.9
	fuzzyMatchThreshold    = 0.8

	// keywords shorter than this only match whole words
	minSubstringKeyword = 5
)

type keywordPattern struct {
	keyword    string
	category   string
	confidence float64
}

// CategoryMatcher maps free text such as a merchant or an email subject to
// one of a user's categories.
type CategoryMatcher struct {
	patterns []keywordPattern
}

func NewCategoryMatcher(pool []models.MerchantInfo) *CategoryMatcher {
	patterns := make([]keywordPattern, 0, len(pool)*2)
	for _, merchant := range pool {
		keywords := merchant.Keywords
		if len(keywords) == 0 {
			keywords = []string{merchant.Name}
		}
		for _, keyword := range keywords {
			patterns = append(patterns, keywordPattern{
				keyword:    strings.ToLower(keyword),
				category:   merchant.Category,
				confidence: keywordMatchConfidence,
			})
		}
	}

	return &CategoryMatcher{patterns: patterns}
}

// Match returns the best category for the hints, tried in order, and its
// confidence. Exact names win over keywords, keywords over fuzzy names.
func (m *CategoryMatcher) Match(categories []models.Category, hints ...string) (*models.Category, float64) {
	if len(categories) == 0 {
		return nil, 0
	}

	byName := make(map[string]*models.Category, len(categories))
	for i := range categories {
		byName[categories[i].NormalizedName()] = &categories[i]
	}

	for _, hint := range hints {
		if category, ok := byName[models.NormalizeCategoryName(hint)]; ok {
			return category, exactMatchConfidence
		}
	}

	for _, hint := range hints {
		if name, confidence := m.matchKeyword(hint); name != "" {
			if category, ok := byName[models.NormalizeCategoryName(name)]; ok {
				return category, confidence
			}
		}
	}

	var best *models.Category
	var bestScore float64
	for _, hint := range hints {
		for _, candidate := range fuzzyCandidates(hint) {
			for i := range categories {
				score := calculateSimilarity(candidate, normalizeForMatching(categories[i].Name))
				if score >= fuzzyMatchThreshold && score > bestScore {
					best = &categories[i]
					bestScore = score
				}
			}
		}
	}

	return best, bestScore
}

func (m *CategoryMatcher) matchKeyword(hint string) (string, float64) {
	lowered := strings.ToLower(hint)
	if strings.TrimSpace(lowered) == "" {
		return "", 0
	}

	normalized := normalizeForMatching(lowered)
	words := tokenize(lowered)

	for _, pattern := range m.patterns {
		if len(pattern.keyword) >= minSubstringKeyword {
			if strings.Contains(normalized, normalizeForMatching(pattern.keyword)) {
				return pattern.category, pattern.confidence
			}
			continue
		}
		if words[pattern.keyword] {
			return pattern.category, pattern.confidence
		}
	}

	return "", 0
}

func fuzzyCandidates(hint string) []string {
	whole := normalizeForMatching(hint)
	if whole == "" {
		return nil
	}

	candidates := []string{whole}
	for _, word := range splitWords(strings.ToLower(hint)) {
		if w := normalizeForMatching(word); w != whole && len(w) >= minSubstringKeyword {
			candidates = append(candidates, w)
		}
	}
	return candidates
}

func splitWords(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '.' || r == '-' || r == '/' || r == ':' || r == '\t' || r == '\n'
	})
}

func tokenize(s string) map[string]bool {
	words := make(map[string]bool)
	for _, word := range splitWords(s) {
		words[word] = true
	}
	return words
}

// calculateSimilarity calculates the similarity score between two strings using Levenshtein distance
func calculateSimilarity(s1, s2 string) float64 {
	if s1 == s2 {
		return 1.0
	}

	if len(s1) == 0 || len(s2) == 0 {
		return 0.0
	}

	distance := levenshteinDistance(s1, s2)
	maxLen := len(s1)
	if len(s2) > maxLen {
		maxLen = len(s2)
	}

	return 1.0 - float64(distance)/float64(maxLen)
}

// levenshteinDistance calculates the Levenshtein distance between two strings
func levenshteinDistance(s1, s2 string) int {
	if s1 == s2 {
		return 0
	}

	if len(s1) == 0 {
		return len(s2)
	}

	if len(s2) == 0 {
		return len(s1)
	}

	prev := make([]int, len(s2)+1)
	curr := make([]int, len(s2)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(s1); i++ {
		curr[0] = i
		for j := 1; j <= len(s2); j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(s2)]
}

// normalizeForMatching normalizes strings for consistent matching
func normalizeForMatching(s string) string {
	s = strings.ToLower(s)
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "'", "")
	s = strings.ReplaceAll(s, ".", "")
	return s
}
