package useragent

import (
    "strings"

    ua "github.com/mileusna/useragent"
)

// Human-readable device and browser labels derived from a User-Agent
// string. Both fall back to "Unknown" when nothing could be parsed.
type DeviceInfo struct {
    Device  string `json:"device"`
    Browser string `json:"browser"`
}

const unknown = "Unknown"

// Parses a raw User-Agent header. Never fails; unparseable input yields
// Unknown fields.
func Parse(raw string) DeviceInfo {
    if strings.TrimSpace(raw) == "" {
        return DeviceInfo{Device: unknown, Browser: unknown}
    }

    parsed := ua.Parse(raw)

    return DeviceInfo{
        Device:  joinOrUnknown(parsed.Device, formFactor(parsed)),
        Browser: joinOrUnknown(parsed.Name, parsed.Version),
    }
}

// Space-joins the non-empty parts, "Unknown" when all are empty.
func joinOrUnknown(parts ...string) string {
    var kept []string
    for _, part := range parts {
        if part = strings.TrimSpace(part); part != "" {
            kept = append(kept, part)
        }
    }
    if len(kept) == 0 {
        return unknown
    }
    return strings.Join(kept, " ")
}

func formFactor(parsed ua.UserAgent) string {
    switch {
    case parsed.Bot:
        return "bot"
    case parsed.Tablet:
        return "tablet"
    case parsed.Mobile:
        return "mobile"
    case parsed.Desktop:
        return "desktop"
    }
    return ""
}
