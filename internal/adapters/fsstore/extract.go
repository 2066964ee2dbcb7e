package fsstore

import (
	"encoding/json"
	"strconv"

	"github.com/mvbarbosa/session-sweep/internal/domain"
)

// extractSessionFields pulls the session identifier and the raw
// timestamp candidates out of a JSON session document. Identifiers may
// be strings or numbers; timestamp candidates must be strings.
func extractSessionFields(data []byte) (domain.SessionID, map[string]string, error) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return "", nil, domain.ErrMalformedSession
	}

	id := firstIdentifier(doc, domain.IDFieldCandidates)
	if id == "" {
		return "", nil, domain.ErrNoSessionID
	}

	fields := make(map[string]string, len(domain.TimestampFieldCandidates))
	for _, key := range domain.TimestampFieldCandidates {
		if value, ok := doc[key].(string); ok && value != "" {
			fields[key] = value
		}
	}

	return id, fields, nil
}

func firstIdentifier(doc map[string]any, candidates []string) domain.SessionID {
	for _, key := range candidates {
		switch value := doc[key].(type) {
		case string:
			if value != "" {
				return domain.SessionID(value)
			}
		case float64:
			return domain.SessionID(strconv.FormatFloat(value, 'f', -1, 64))
		}
	}

	return ""
}
