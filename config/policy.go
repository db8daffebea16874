package config

import (
	"os"
	"strconv"
	"strings"
)

// ValidationPolicy holds the env-tunable room validation rules. Defaults match
// the strict variant: descriptions of at least 5 characters, "spam" forbidden.
type ValidationPolicy struct {
	MinDescriptionLength int
	ForbiddenWords       []string
}

func DefaultValidationPolicy() ValidationPolicy {
	return ValidationPolicy{
		MinDescriptionLength: 5,
		ForbiddenWords:       []string{"spam"},
	}
}

// LoadValidationPolicy reads VALIDATION_MIN_DESCRIPTION and
// VALIDATION_FORBIDDEN_WORDS (comma-separated). An empty forbidden-words value
// disables the substring check entirely.
func LoadValidationPolicy() ValidationPolicy {
	policy := DefaultValidationPolicy()

	if raw := strings.TrimSpace(os.Getenv("VALIDATION_MIN_DESCRIPTION")); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			policy.MinDescriptionLength = n
		}
	}

	if raw, ok := os.LookupEnv("VALIDATION_FORBIDDEN_WORDS"); ok {
		words := make([]string, 0)
		for _, part := range strings.Split(raw, ",") {
			word := strings.ToLower(strings.TrimSpace(part))
			if word != "" {
				words = append(words, word)
			}
		}
		policy.ForbiddenWords = words
	}

	return policy
}
