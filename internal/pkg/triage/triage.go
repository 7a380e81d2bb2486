package triage

import (
    "github.com/pemistahl/lingua-go"

    "moderation/internal/pkg/metrics"
    "moderation/internal/pkg/spam"
    "moderation/internal/pkg/triage/languagedetector"
)

// What the moderation console gets for a reported or flagged
// submission: the rule-chain verdict, the weighted blocklist score, and
// the detected language.
type Report struct {
    Verdict             spam.Verdict `json:"verdict"`
    PhraseScore         int          `json:"phrase_score"`
    Blocked             bool         `json:"blocked"`
    Language            string       `json:"language"`
    NeedsLanguageReview bool         `json:"needs_language_review"`
}

// Languages the platform publishes in; everything else is routed to the
// language review queue instead of auto-publishing.
var supportedLanguages = map[string]struct{}{
    "en": {},
}

// Global language detector singleton to avoid repeated initialization
var languageDetector lingua.LanguageDetector

// Initializes the language detector once
func init() {
    // Build the detector with preloaded models for better performance
    languageDetector = lingua.NewLanguageDetectorBuilder().
        FromAllLanguages().
        WithPreloadedLanguageModels().
        Build()
}

// Runs the full analysis over one submission.
type Analyzer struct {
    phraseMatcher *spam.PhraseMatcher
}

// Creates an Analyzer with the given phrase block threshold.
func NewAnalyzer(phraseBlockThreshold int) *Analyzer {
    return &Analyzer{
        phraseMatcher: spam.NewPhraseMatcher(phraseBlockThreshold),
    }
}

// Produces a triage report for the text. Deterministic apart from
// language detection confidence; no I/O.
func (analyzer *Analyzer) Analyze(text string) Report {
    verdict := spam.Classify(text)
    if verdict.IsSpam {
        metrics.SpamVerdicts.WithLabelValues(verdict.Reason).Inc()
    }

    phrases := analyzer.phraseMatcher.Score(text)
    if phrases.Blocked {
        metrics.PhraseBlocked.Inc()
    }

    language := languagedetector.Detect(languageDetector, text)
    _, supported := supportedLanguages[language]
    needsReview := !supported && language != "unknown"
    if needsReview {
        metrics.LanguageRouted.Inc()
    }

    return Report{
        Verdict:             verdict,
        PhraseScore:         phrases.Score,
        Blocked:             phrases.Blocked,
        Language:            language,
        NeedsLanguageReview: needsReview,
    }
}
