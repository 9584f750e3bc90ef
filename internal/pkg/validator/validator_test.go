package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // valid UUIDv7
		"0188D0F2-7B8C-7B4A-8A2B-6B8B8B8B8B8B", // valid UUIDv7 (uppercase)
	}
	invalid := []string{
		"123e4567-e89b-12d3-a456-426614174000", // not v7
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",     // missing dashes
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // invalid hex
		"",
	}
	for _, uuid := range valid {
		if !IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = false, want true", uuid)
		}
	}
	for _, uuid := range invalid {
		if IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = true, want false", uuid)
		}
	}
}

func TestIsValidOTPCode(t *testing.T) {
	valid := []string{"000000", "123456", "999999"}
	invalid := []string{"", "12345", "1234567", "12345a", "12 456", "abcdef"}
	for _, code := range valid {
		if !IsValidOTPCode(code) {
			t.Errorf("IsValidOTPCode(%q) = false, want true", code)
		}
	}
	for _, code := range invalid {
		if IsValidOTPCode(code) {
			t.Errorf("IsValidOTPCode(%q) = true, want false", code)
		}
	}
}

func TestIsValidPermissionCode(t *testing.T) {
	valid := []string{"view_schedule", "clock_in_out", "manage_roles", "x1"}
	invalid := []string{"", "a", "View_Schedule", "view-schedule", "1view", "_view", "view schedule"}
	for _, code := range valid {
		if !IsValidPermissionCode(code) {
			t.Errorf("IsValidPermissionCode(%q) = false, want true", code)
		}
	}
	for _, code := range invalid {
		if IsValidPermissionCode(code) {
			t.Errorf("IsValidPermissionCode(%q) = true, want false", code)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2026-02-28"); !ok {
		t.Error("IsValidDate(2026-02-28) = false, want true")
	}
	for _, s := range []string{"2026-13-01", "2026-02-30", "28-02-2026", "2026/02/28", ""} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidDateTime(t *testing.T) {
	valid := []string{
		"2026-01-15T10:30:00Z",
		"2026-01-15T10:30:00+07:00",
		"2026-01-15T10:30:00.123Z",
	}
	invalid := []string{"2026-01-15 10:30:00", "2026-01-15", "", "now"}
	for _, s := range valid {
		if _, ok := IsValidDateTime(s); !ok {
			t.Errorf("IsValidDateTime(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDateTime(s); ok {
			t.Errorf("IsValidDateTime(%q) = true, want false", s)
		}
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "email is required"},
		{Field: "name", Message: "name is required"},
	}
	m := errs.ToMap()
	if len(m) != 2 {
		t.Fatalf("ToMap() has %d entries, want 2", len(m))
	}
	if m["email"] != "email is required" {
		t.Errorf("ToMap()[email] = %q", m["email"])
	}
}
