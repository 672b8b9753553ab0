// Package dataset generates internally consistent demo records for a
// retirement-advisory application: member financial profiles, a static
// regulatory-citation registry, and governance logs referencing those
// members. Values are plausible, not accurate; all randomness flows
// through an injected *rand.Rand so runs are reproducible from a seed.
package dataset

import (
	"fmt"
	"strings"
)

// CountryProfile holds the static generation parameters for one
// supported country. Immutable for the lifetime of a run.
type CountryProfile struct {
	Code            string
	IDPrefix        string
	MemberCount     int
	PreservationAge int
	IncomeMin       int
	IncomeMax       int
	BalanceMin      int
	BalanceMax      int
	Personas        []string
}

// Ranges are in local currency units, which is why IN looks inflated.
var countryTable = []CountryProfile{
	{
		Code:            "AU",
		IDPrefix:        "AU",
		MemberCount:     20,
		PreservationAge: 60,
		IncomeMin:       45000,
		IncomeMax:       130000,
		BalanceMin:      15000,
		BalanceMax:      950000,
		Personas:        []string{"Comfortable", "Wealth Accumulator", "Pre-Retiree Planner", "Cautious Saver", "Late Starter"},
	},
	{
		Code:            "US",
		IDPrefix:        "US",
		MemberCount:     3,
		PreservationAge: 59,
		IncomeMin:       40000,
		IncomeMax:       160000,
		BalanceMin:      10000,
		BalanceMax:      800000,
		Personas:        []string{"401k Maximizer", "Coast FIRE", "Catch-Up Contributor", "Social Security Reliant"},
	},
	{
		Code:            "UK",
		IDPrefix:        "UK",
		MemberCount:     2,
		PreservationAge: 57,
		IncomeMin:       28000,
		IncomeMax:       95000,
		BalanceMin:      8000,
		BalanceMax:      600000,
		Personas:        []string{"Workplace Pension Saver", "SIPP Self-Manager", "State Pension Reliant", "Downsizer"},
	},
	{
		Code:            "IN",
		IDPrefix:        "IN",
		MemberCount:     3,
		PreservationAge: 58,
		IncomeMin:       350000,
		IncomeMax:       2400000,
		BalanceMin:      200000,
		BalanceMax:      9000000,
		Personas:        []string{"EPF Accumulator", "NPS Subscriber", "Gold & Property Saver", "Family Provider"},
	},
}

// Countries returns the supported country profiles in fixed order.
func Countries() []CountryProfile {
	out := make([]CountryProfile, len(countryTable))
	copy(out, countryTable)
	return out
}

// CountryFor looks up the generation parameters for a country code.
// Lookup is case-insensitive; unknown codes fail with ErrUnknownCountry.
func CountryFor(code string) (CountryProfile, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	for _, profile := range countryTable {
		if profile.Code == normalized {
			return profile, nil
		}
	}
	return CountryProfile{}, fmt.Errorf("country %q: %w", code, ErrUnknownCountry)
}

// MemberID builds the member identity for a sequence number within a
// country, e.g. "AU001". Unique within a run for a fixed country.
func (p CountryProfile) MemberID(sequence int) string {
	return fmt.Sprintf("%s%03d", p.IDPrefix, sequence)
}

// DefaultMemberTotal is the number of members produced by a run with
// default per-country counts.
func DefaultMemberTotal() int {
	total := 0
	for _, profile := range countryTable {
		total += profile.MemberCount
	}
	return total
}
