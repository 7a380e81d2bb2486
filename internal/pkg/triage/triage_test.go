package triage

import (
	"testing"

	"go.uber.org/zap"

	"moderation/internal/pkg/logger"
)

func init() {
	logger.Log = zap.NewNop() // Set up a no-op logger to avoid nil pointer dereferences in tests.
}

// An ordinary English submission passes every check.
func TestAnalyzeCleanSubmission(t *testing.T) {
	analyzer := NewAnalyzer(5)

	report := analyzer.Analyze("I really enjoyed this article and learned a lot from the examples.")
	if report.Verdict.IsSpam {
		t.Errorf("expected clean text not to be spam, got reason %q", report.Verdict.Reason)
	}
	if report.Blocked {
		t.Error("expected clean text not to be blocked")
	}
	if report.Language != "en" {
		t.Errorf("expected language 'en', got %q", report.Language)
	}
	if report.NeedsLanguageReview {
		t.Error("expected English text not to need language review")
	}
}

// The rule chain verdict is carried into the report.
func TestAnalyzeSpamVerdict(t *testing.T) {
	analyzer := NewAnalyzer(5)

	report := analyzer.Analyze("wow wow wow wow this is great")
	if !report.Verdict.IsSpam {
		t.Error("expected repeated words to be flagged")
	}
	if report.Verdict.Reason != "Too many repeated words" {
		t.Errorf("expected repeated words reason, got %q", report.Verdict.Reason)
	}
}

// Heavy blocklist hits block the submission even when the rule chain
// stays quiet.
func TestAnalyzePhraseBlock(t *testing.T) {
	analyzer := NewAnalyzer(5)

	report := analyzer.Analyze("Congratulations you won a prize today, claim your prize before it expires.")
	if !report.Blocked {
		t.Errorf("expected blocklist hits to block, got score %d", report.PhraseScore)
	}
}

// Non-English submissions are routed for language review.
func TestAnalyzeLanguageRouting(t *testing.T) {
	analyzer := NewAnalyzer(5)

	report := analyzer.Analyze("Dieser Artikel hat mir wirklich sehr gut gefallen und ich habe viel gelernt.")
	if report.Language != "de" {
		t.Errorf("expected language 'de', got %q", report.Language)
	}
	if !report.NeedsLanguageReview {
		t.Error("expected German text to need language review")
	}
}

// Short text is never routed: detection is inconclusive by design.
func TestAnalyzeShortText(t *testing.T) {
	analyzer := NewAnalyzer(5)

	report := analyzer.Analyze("ok!")
	if report.Language != "unknown" {
		t.Errorf("expected language 'unknown' for short text, got %q", report.Language)
	}
	if report.NeedsLanguageReview {
		t.Error("expected short text not to need language review")
	}
}
