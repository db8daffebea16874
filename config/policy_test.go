package config

import (
	"testing"
)

func TestLoadValidationPolicyDefaults(t *testing.T) {
	policy := LoadValidationPolicy()
	if policy.MinDescriptionLength != 5 {
		t.Errorf("MinDescriptionLength = %d, want 5", policy.MinDescriptionLength)
	}
	if len(policy.ForbiddenWords) != 1 || policy.ForbiddenWords[0] != "spam" {
		t.Errorf("ForbiddenWords = %v, want [spam]", policy.ForbiddenWords)
	}
}

func TestLoadValidationPolicyFromEnv(t *testing.T) {
	t.Setenv("VALIDATION_MIN_DESCRIPTION", "1")
	t.Setenv("VALIDATION_FORBIDDEN_WORDS", " Viagra , CASINO ,,")

	policy := LoadValidationPolicy()
	if policy.MinDescriptionLength != 1 {
		t.Errorf("MinDescriptionLength = %d, want 1", policy.MinDescriptionLength)
	}
	want := []string{"viagra", "casino"}
	if len(policy.ForbiddenWords) != len(want) {
		t.Fatalf("ForbiddenWords = %v, want %v", policy.ForbiddenWords, want)
	}
	for i, w := range want {
		if policy.ForbiddenWords[i] != w {
			t.Errorf("ForbiddenWords[%d] = %q, want %q", i, policy.ForbiddenWords[i], w)
		}
	}
}

func TestLoadValidationPolicyEmptyForbiddenWordsDisablesCheck(t *testing.T) {
	t.Setenv("VALIDATION_FORBIDDEN_WORDS", "")

	policy := LoadValidationPolicy()
	if len(policy.ForbiddenWords) != 0 {
		t.Errorf("ForbiddenWords = %v, want empty", policy.ForbiddenWords)
	}
}

func TestLoadValidationPolicyIgnoresBadMinLength(t *testing.T) {
	t.Setenv("VALIDATION_MIN_DESCRIPTION", "not-a-number")

	policy := LoadValidationPolicy()
	if policy.MinDescriptionLength != 5 {
		t.Errorf("MinDescriptionLength = %d, want default 5", policy.MinDescriptionLength)
	}
}
