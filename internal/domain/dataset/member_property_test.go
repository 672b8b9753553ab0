//go:build property
// +build property

package dataset

import (
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Property: for any seed and country, generated members satisfy the
// age and pension coherence invariants.
func TestGenerateMemberProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	codes := []string{"AU", "US", "UK", "IN"}

	properties.Property("age stays within [35,75]", prop.ForAll(
		func(seed int64, countryIdx int) bool {
			member, err := GenerateMember(rand.New(rand.NewSource(seed)), codes[countryIdx], 1)
			if err != nil {
				return false
			}
			return member.Age >= 35 && member.Age <= 75
		},
		gen.Int64(),
		gen.IntRange(0, len(codes)-1),
	))

	properties.Property("pension implies retirement past preservation age", prop.ForAll(
		func(seed int64, countryIdx int) bool {
			member, err := GenerateMember(rand.New(rand.NewSource(seed)), codes[countryIdx], 1)
			if err != nil {
				return false
			}
			if member.AccountBasedPension == 0 {
				return true
			}
			return member.EmploymentStatus == EmploymentRetired && member.Age >= member.PreservationAge
		},
		gen.Int64(),
		gen.IntRange(0, len(codes)-1),
	))

	properties.Property("balance stays within the country range", prop.ForAll(
		func(seed int64, countryIdx int) bool {
			country, err := CountryFor(codes[countryIdx])
			if err != nil {
				return false
			}
			member, err := GenerateMember(rand.New(rand.NewSource(seed)), country.Code, 1)
			if err != nil {
				return false
			}
			return member.SuperBalance >= country.BalanceMin && member.SuperBalance <= country.BalanceMax
		},
		gen.Int64(),
		gen.IntRange(0, len(codes)-1),
	))

	properties.TestingRun(t)
}
