package store

import (
	"encoding/json"
	"fmt"
	"strings"
)

func encodeFlags(flags []string) (string, error) {
	if len(flags) == 0 {
		return "", nil
	}
	b, err := json.Marshal(flags)
	if err != nil {
		return "", fmt.Errorf("encode flags: %w", err)
	}
	return string(b), nil
}

// DecodeFlags reverses the JSON encoding used for the plans.flags_json
// column. An empty or blank value means no flags were set.
func DecodeFlags(raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	var flags []string
	if err := json.Unmarshal([]byte(raw), &flags); err != nil {
		return nil, fmt.Errorf("decode flags: %w", err)
	}
	return flags, nil
}
