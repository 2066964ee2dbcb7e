package domain

import (
	"fmt"
	"strings"
	"time"
)

const maxFractionalDigits = 6

// ParseSessionTime parses an ISO-8601 timestamp as found in session
// files. Fractional seconds longer than six digits are truncated before
// parsing; some producers emit more precision than RFC 3339 allows.
// Timestamps without an offset are treated as UTC.
func ParseSessionTime(raw string) (time.Time, error) {
	normalized := normalizeFractionalSeconds(strings.TrimSpace(raw))
	if normalized == "" {
		return time.Time{}, fmt.Errorf("parse session time: empty value")
	}

	layouts := []string{
		time.RFC3339Nano,
		"2006-01-02T15:04:05.999999999",
		"2006-01-02T15:04:05",
	}
	var lastErr error
	for _, layout := range layouts {
		parsed, err := time.Parse(layout, normalized)
		if err == nil {
			return parsed, nil
		}
		lastErr = err
	}

	return time.Time{}, fmt.Errorf("parse session time %q: %w", raw, lastErr)
}

func normalizeFractionalSeconds(value string) string {
	dot := strings.IndexByte(value, '.')
	if dot < 0 {
		return value
	}

	base := value[:dot]
	frac := value[dot+1:]

	suffix := ""
	for i, r := range frac {
		if r < '0' || r > '9' {
			suffix = frac[i:]
			frac = frac[:i]
			break
		}
	}

	if len(frac) > maxFractionalDigits {
		frac = frac[:maxFractionalDigits]
	}
	if frac == "" {
		return base + suffix
	}

	return base + "." + frac + suffix
}

// ResolveTimestamp picks the effective time for a session file: the
// first present candidate field wins, and the file modification time is
// used only when no candidate is present at all. A present but
// unparsable candidate is an error; falling back to mtime there would
// hand a corrupt file a fresher timestamp than its valid siblings.
func ResolveTimestamp(fields map[string]string, modTime time.Time) (time.Time, bool, error) {
	for _, key := range TimestampFieldCandidates {
		raw, ok := fields[key]
		if !ok || raw == "" {
			continue
		}

		parsed, err := ParseSessionTime(raw)
		if err != nil {
			return time.Time{}, false, err
		}

		return parsed, false, nil
	}

	return modTime, true, nil
}
