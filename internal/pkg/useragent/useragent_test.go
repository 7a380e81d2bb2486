package useragent

import "testing"

// An empty User-Agent yields Unknown for both fields.
func TestParseEmpty(t *testing.T) {
	info := Parse("")
	if info.Device != "Unknown" {
		t.Errorf("expected device 'Unknown', got %q", info.Device)
	}
	if info.Browser != "Unknown" {
		t.Errorf("expected browser 'Unknown', got %q", info.Browser)
	}

	info = Parse("   ")
	if info.Device != "Unknown" || info.Browser != "Unknown" {
		t.Errorf("expected Unknown fields for whitespace input, got %+v", info)
	}
}

// A desktop Chrome User-Agent resolves to a readable browser label.
func TestParseDesktopChrome(t *testing.T) {
	info := Parse("Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	if info.Browser != "Chrome 120.0.0.0" {
		t.Errorf("expected 'Chrome 120.0.0.0', got %q", info.Browser)
	}
	if info.Device != "desktop" {
		t.Errorf("expected device 'desktop', got %q", info.Device)
	}
}

// A mobile Safari User-Agent includes the device name and form factor.
func TestParseMobileSafari(t *testing.T) {
	info := Parse("Mozilla/5.0 (iPhone; CPU iPhone OS 17_1 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.1 Mobile/15E148 Safari/604.1")
	if info.Device != "iPhone mobile" {
		t.Errorf("expected device 'iPhone mobile', got %q", info.Device)
	}
	if info.Browser != "Safari 17.1" {
		t.Errorf("expected 'Safari 17.1', got %q", info.Browser)
	}
}

// Unparseable garbage still never fails.
func TestParseGarbage(t *testing.T) {
	info := Parse("definitely-not-a-user-agent")
	if info.Device == "" || info.Browser == "" {
		t.Errorf("expected non-empty fallback fields, got %+v", info)
	}
}
