package languagedetector

import (
	"strings"

	"github.com/pemistahl/lingua-go"
	"go.uber.org/zap"

	"moderation/internal/pkg/logger"
)

// Detects the language of a submission and returns the ISO 639-1 code.
// Short or undetectable text comes back as "unknown"; detection is
// advisory and never an error for the caller.
func Detect(detector lingua.LanguageDetector, text string) string {
	const minTextLength = 20
	if len(text) < minTextLength {
		return "unknown"
	}

	detected, exists := detector.DetectLanguageOf(text)
	if !exists {
		logger.Log.Debug("Language detection inconclusive",
			zap.Int("text_length", len(text)))
		return "unknown"
	}

	code := strings.ToLower(detected.IsoCode639_1().String())

	logger.Log.Debug("Language detection result",
		zap.String("detected_language", detected.String()),
		zap.String("iso_code", code))

	return code
}
