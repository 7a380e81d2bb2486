package spam

import (
    "strings"
    "unicode"
)

// Result of classifying a piece of user-submitted text. At most one
// reason is reported even when several heuristics would trigger.
type Verdict struct {
    IsSpam bool   `json:"is_spam"`
    Reason string `json:"reason,omitempty"`
}

// A single heuristic: a predicate plus the reason reported when it fires.
type rule struct {
    match  func(string) bool
    reason string
}

// Ordered rule chain. Order matters: the first rule that fires supplies
// the reason moderators see.
var rules = []rule{
    {hasRepeatedCharacters, "Too many repeated characters"},
    {isAllCaps, "Too many capital letters"},
    {hasRepeatedWords, "Too many repeated words"},
    {hasTooManyURLs, "Too many URLs"},
}

// Evaluates the rule chain against the text, first match wins.
// Pure function: no I/O, no shared state. Empty or whitespace-only
// input is never spam.
func Classify(text string) Verdict {
    if strings.TrimSpace(text) == "" {
        return Verdict{}
    }
    for _, rule := range rules {
        if rule.match(text) {
            return Verdict{IsSpam: true, Reason: rule.reason}
        }
    }
    return Verdict{}
}

// Any single character repeated 5 or more times consecutively.
func hasRepeatedCharacters(text string) bool {
    const runLimit = 5
    var prev rune
    run := 0
    for _, r := range text {
        if r == prev {
            run++
            if run >= runLimit {
                return true
            }
        } else {
            prev = r
            run = 1
        }
    }
    return false
}

// Shouting: longer than 10 characters, contains at least one letter, and
// has no lowercase at all. Pure digits or punctuation equal their own
// uppercasing trivially, so text without letters never matches.
func isAllCaps(text string) bool {
    if len([]rune(text)) <= 10 {
        return false
    }
    hasLetter := false
    for _, r := range text {
        if unicode.IsLetter(r) {
            hasLetter = true
            break
        }
    }
    return hasLetter && text == strings.ToUpper(text)
}

// Any word occurring more than 3 times, case-insensitive. strings.Fields
// drops the empty tokens that consecutive whitespace would produce.
func hasRepeatedWords(text string) bool {
    const occurrenceLimit = 3
    counts := make(map[string]int)
    for _, word := range strings.Fields(strings.ToLower(text)) {
        counts[word]++
        if counts[word] > occurrenceLimit {
            return true
        }
    }
    return false
}

// More than 2 URL scheme prefixes.
func hasTooManyURLs(text string) bool {
    const urlLimit = 2
    return strings.Count(text, "http://")+strings.Count(text, "https://") > urlLimit
}
