package validation

import (
	"strings"
	"testing"
)

func TestValidateEmail(t *testing.T) {
	valid := []string{
		"ana@example.com",
		"a.b+tag@sub.domain.org",
		"x_y-z@host.co",
	}
	for _, email := range valid {
		if err := ValidateEmail(email); err != nil {
			t.Errorf("ValidateEmail(%q) = %v, want nil", email, err)
		}
	}

	invalid := []string{
		"",
		"not-an-email",
		"@missing-local.com",
		"missing-domain@",
		"spaces in@example.com",
		strings.Repeat("a", 250) + "@x.com",
	}
	for _, email := range invalid {
		if err := ValidateEmail(email); err == nil {
			t.Errorf("ValidateEmail(%q) = nil, want error", email)
		}
	}
}

func TestValidateName(t *testing.T) {
	if err := ValidateName("first_name", "Ana"); err != nil {
		t.Errorf("valid name rejected: %v", err)
	}
	if err := ValidateName("first_name", "  "); err == nil {
		t.Error("blank name accepted")
	}
	if err := ValidateName("last_name", strings.Repeat("x", 101)); err == nil {
		t.Error("oversized name accepted")
	}
}

func TestValidatePassword(t *testing.T) {
	valid := []string{"abcdefg1", "sup3rsecret", "Pa55word!!"}
	for _, pw := range valid {
		if err := ValidatePassword(pw); err != nil {
			t.Errorf("ValidatePassword(%q) = %v, want nil", pw, err)
		}
	}

	invalid := []string{
		"short1",
		"onlyletters",
		"12345678",
		strings.Repeat("a1", 40),
	}
	for _, pw := range invalid {
		if err := ValidatePassword(pw); err == nil {
			t.Errorf("ValidatePassword(%q) = nil, want error", pw)
		}
	}
}
