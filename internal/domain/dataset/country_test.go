package dataset

import (
	"errors"
	"testing"
)

func TestCountryForKnownCodes(t *testing.T) {
	for _, code := range []string{"AU", "US", "UK", "IN"} {
		profile, err := CountryFor(code)
		if err != nil {
			t.Fatalf("CountryFor(%q) error = %v", code, err)
		}
		if profile.Code != code {
			t.Fatalf("CountryFor(%q) code = %q", code, profile.Code)
		}
		if profile.BalanceMin >= profile.BalanceMax {
			t.Fatalf("CountryFor(%q) balance range inverted", code)
		}
		if profile.IncomeMin >= profile.IncomeMax {
			t.Fatalf("CountryFor(%q) income range inverted", code)
		}
		if len(profile.Personas) == 0 {
			t.Fatalf("CountryFor(%q) has no personas", code)
		}
	}
}

func TestCountryForNormalizesCase(t *testing.T) {
	profile, err := CountryFor(" au ")
	if err != nil {
		t.Fatalf("CountryFor() error = %v", err)
	}
	if profile.Code != "AU" {
		t.Fatalf("CountryFor() code = %q", profile.Code)
	}
}

func TestCountryForUnknownCode(t *testing.T) {
	_, err := CountryFor("NZ")
	if !errors.Is(err, ErrUnknownCountry) {
		t.Fatalf("CountryFor() error = %v, want ErrUnknownCountry", err)
	}
}

func TestDefaultMemberTotal(t *testing.T) {
	if got := DefaultMemberTotal(); got != 28 {
		t.Fatalf("DefaultMemberTotal() = %d, want 28", got)
	}
}

func TestMemberIDFormat(t *testing.T) {
	profile, err := CountryFor("AU")
	if err != nil {
		t.Fatalf("CountryFor() error = %v", err)
	}
	if got := profile.MemberID(1); got != "AU001" {
		t.Fatalf("MemberID(1) = %q", got)
	}
	if got := profile.MemberID(20); got != "AU020" {
		t.Fatalf("MemberID(20) = %q", got)
	}
}
