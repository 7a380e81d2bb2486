package spam

import (
    "strings"

    "github.com/cloudflare/ahocorasick"
    "go.uber.org/zap"

    "moderation/internal/pkg/logger"
)

// Scores text against the phrase blocklist using Aho-Corasick matching.
// Used by the moderation console for reported content, where a weighted
// score is more useful than the binary verdict of the rule chain.
type PhraseMatcher struct {
    matcher        *ahocorasick.Matcher
    phrases        []string
    phraseScores   map[string]int
    blockThreshold int // Submissions with scores above this are blocked
}

// Contains phrase scoring results
type PhraseResult struct {
    Score   int  // Overall blocklist score
    Blocked bool // Whether content exceeds the block threshold
}

// Creates a new matcher over the built-in blocklist.
func NewPhraseMatcher(blockThreshold int) *PhraseMatcher {
    // Convert phrases to byte slices for the Aho-Corasick matcher
    patterns := make([][]byte, len(blocklistPhrases))
    for i, phrase := range blocklistPhrases {
        patterns[i] = []byte(strings.ToLower(phrase))
    }

    // Set default weights for phrases without explicit weights
    phraseScores := make(map[string]int)
    for _, phrase := range blocklistPhrases {
        if weight, exists := phraseWeights[phrase]; exists {
            phraseScores[phrase] = weight
        } else {
            phraseScores[phrase] = 1 // Default weight
        }
    }

    logger.Log.Info("Initializing phrase matcher",
        zap.Int("phrase_count", len(blocklistPhrases)),
        zap.Int("block_threshold", blockThreshold))

    return &PhraseMatcher{
        matcher:        ahocorasick.NewMatcher(patterns),
        phrases:        blocklistPhrases,
        phraseScores:   phraseScores,
        blockThreshold: blockThreshold,
    }
}

// Scores text against the blocklist.
func (pm *PhraseMatcher) Score(text string) PhraseResult {
    if text == "" {
        return PhraseResult{}
    }

    // Case-insensitive matching
    lowerText := strings.ToLower(text)

    hits := pm.matcher.Match([]byte(lowerText))

    totalScore := 0
    for _, hit := range hits {
        totalScore += pm.phraseScores[pm.phrases[hit]]
    }

    // Longer legitimate content dilutes incidental blocklist hits
    textLength := len([]rune(text))
    if textLength > 5000 && len(hits) > 0 {
        totalScore = (totalScore * 5000) / textLength
    }

    return PhraseResult{
        Score:   totalScore,
        Blocked: totalScore >= pm.blockThreshold,
    }
}
