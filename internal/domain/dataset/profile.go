package dataset

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// RunProfile is an optional TOML file overriding generation defaults
// for a run. Absent fields keep the built-in defaults.
//
//	version = 1
//	seed = 42
//	governance_count = 154
//
//	[member_counts]
//	AU = 20
//	US = 3
type RunProfile struct {
	Version         int            `toml:"version"`
	Seed            int64          `toml:"seed"`
	GovernanceCount *int           `toml:"governance_count"`
	MemberCounts    map[string]int `toml:"member_counts"`
}

// LoadRunProfile reads and validates a TOML run profile.
func LoadRunProfile(path string) (RunProfile, error) {
	raw, err := os.ReadFile(strings.TrimSpace(path))
	if err != nil {
		return RunProfile{}, err
	}

	var profile RunProfile
	if err := toml.Unmarshal(raw, &profile); err != nil {
		return RunProfile{}, err
	}
	if err := validateRunProfile(profile); err != nil {
		return RunProfile{}, err
	}
	return profile, nil
}

func validateRunProfile(profile RunProfile) error {
	if profile.Version != 1 {
		return fmt.Errorf("version %d: %w", profile.Version, ErrInvalidProfileVersion)
	}

	if profile.GovernanceCount != nil && *profile.GovernanceCount < 0 {
		return fmt.Errorf("governance_count: %w", ErrInvalidProfileCount)
	}

	for code, count := range profile.MemberCounts {
		if _, err := CountryFor(code); err != nil {
			return err
		}
		if count < 0 {
			return fmt.Errorf("member_counts.%s: %w", code, ErrInvalidProfileCount)
		}
	}
	return nil
}
