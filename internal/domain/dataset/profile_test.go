package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "run.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write profile: %v", err)
	}
	return path
}

func TestLoadRunProfile(t *testing.T) {
	path := writeProfile(t, "version = 1\nseed = 42\ngovernance_count = 25\n\n[member_counts]\nAU = 5\nUS = 1\n")

	profile, err := LoadRunProfile(path)
	if err != nil {
		t.Fatalf("LoadRunProfile() error = %v", err)
	}
	if profile.Seed != 42 {
		t.Fatalf("seed = %d", profile.Seed)
	}
	if profile.GovernanceCount == nil || *profile.GovernanceCount != 25 {
		t.Fatalf("governance_count = %v", profile.GovernanceCount)
	}
	if profile.MemberCounts["AU"] != 5 || profile.MemberCounts["US"] != 1 {
		t.Fatalf("member_counts = %v", profile.MemberCounts)
	}
}

func TestLoadRunProfileRejectsBadVersion(t *testing.T) {
	path := writeProfile(t, "version = 2\n")

	_, err := LoadRunProfile(path)
	if !errors.Is(err, ErrInvalidProfileVersion) {
		t.Fatalf("LoadRunProfile() error = %v, want ErrInvalidProfileVersion", err)
	}
}

func TestLoadRunProfileRejectsUnknownCountry(t *testing.T) {
	path := writeProfile(t, "version = 1\n\n[member_counts]\nNZ = 2\n")

	_, err := LoadRunProfile(path)
	if !errors.Is(err, ErrUnknownCountry) {
		t.Fatalf("LoadRunProfile() error = %v, want ErrUnknownCountry", err)
	}
}

func TestLoadRunProfileRejectsNegativeCount(t *testing.T) {
	path := writeProfile(t, "version = 1\n\n[member_counts]\nAU = -1\n")

	_, err := LoadRunProfile(path)
	if !errors.Is(err, ErrInvalidProfileCount) {
		t.Fatalf("LoadRunProfile() error = %v, want ErrInvalidProfileCount", err)
	}
}
