package config

import (
	"fmt"
	"strings"
)

// parseEnum resolves text, case-insensitively, against the accepted names of
// an enum setting.
func parseEnum[T ~uint8](setting string, names map[string]T, text []byte) (T, error) {
	if v, ok := names[strings.ToUpper(strings.TrimSpace(string(text)))]; ok {
		return v, nil
	}
	var zero T
	return zero, fmt.Errorf("unknown %s: %s", setting, text)
}
