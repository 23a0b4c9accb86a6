package padconfig

import (
	"os"
	"strconv"
)

// LoadFromEnv overrides rule fields from environment variables.
// Malformed booleans are ignored.
//
// Supported variables:
//   - PADKIT_PAD_CHAR: filler character
//   - PADKIT_TRUNCATE: "true" or "false"
//   - PADKIT_USE_ELLIPSIS: "true" or "false"
func (s *RulesSpec) LoadFromEnv() {
	if v := os.Getenv("PADKIT_PAD_CHAR"); v != "" {
		s.PadChar = v
	}
	if v := os.Getenv("PADKIT_TRUNCATE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			s.Truncate = &b
		}
	}
	if v := os.Getenv("PADKIT_USE_ELLIPSIS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			s.UseEllipsis = &b
		}
	}
}
