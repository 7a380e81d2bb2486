package spam

// Blocklist phrases matched case-insensitively by the PhraseMatcher.
// Curated from what the moderation console most often sees; phrases
// without an explicit weight score 1.
var blocklistPhrases = []string{
    "buy now",
    "click here",
    "limited time offer",
    "act now",
    "free money",
    "make money fast",
    "work from home",
    "no credit check",
    "risk free",
    "100% free",
    "winner winner",
    "congratulations you won",
    "claim your prize",
    "crypto giveaway",
    "double your bitcoin",
    "hot singles",
    "casino bonus",
    "cheap followers",
    "seo services",
    "guest post opportunity",
}

// Heavier weights for phrases that are almost never legitimate.
var phraseWeights = map[string]int{
    "congratulations you won": 3,
    "claim your prize":        3,
    "double your bitcoin":     3,
    "crypto giveaway":         3,
    "make money fast":         2,
    "free money":              2,
    "casino bonus":            2,
    "hot singles":             2,
    "cheap followers":         2,
}
