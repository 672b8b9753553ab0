package dataset

import "math/rand"

type Gender string

const (
	Male   Gender = "Male"
	Female Gender = "Female"
)

type EmploymentStatus string

const (
	EmploymentRetired      EmploymentStatus = "Retired"
	EmploymentFullTime     EmploymentStatus = "Full-time"
	EmploymentPartTime     EmploymentStatus = "Part-time"
	EmploymentSelfEmployed EmploymentStatus = "Self-employed"
	EmploymentEmployed     EmploymentStatus = "Employed"
)

var (
	genders           = []Gender{Male, Female}
	workingStatuses   = []EmploymentStatus{EmploymentFullTime, EmploymentPartTime, EmploymentSelfEmployed, EmploymentEmployed}
	literacyLevels    = []string{"Low", "Moderate", "High"}
	healthStatuses    = []string{"Poor", "Fair", "Good", "Excellent"}
	homeStatuses      = []string{"Own outright", "Mortgaged", "Renting"}
	ownedHomeStatuses = []string{"Own outright", "Mortgaged"}
	maritalStatuses   = []string{"Single", "Married", "De facto", "Divorced", "Widowed"}
	conservativeRisks = []string{"Conservative", "Moderately Conservative"}
	balancedRisks     = []string{"Moderately Conservative", "Balanced"}
	growthRisks       = []string{"Balanced", "Growth", "High Growth"}
)

// MemberProfile is one synthetic member record. Created once per
// (country, sequence) pair and never mutated afterwards.
type MemberProfile struct {
	MemberID                 string
	Country                  string
	Name                     string
	Age                      int
	Gender                   Gender
	EmploymentStatus         EmploymentStatus
	SuperBalance             int
	AnnualIncomeOutsideSuper int
	Debt                     int
	OtherAssets              int
	AccountBasedPension      int
	Dependents               int
	FinancialLiteracy        string
	HealthStatus             string
	HomeOwnership            string
	RiskProfile              string
	MaritalStatus            string
	PersonaType              string
	PreservationAge          int
}

// GenerateMember produces one member for a country and sequence number.
// Draws happen in a fixed order so a given seed always yields the same
// record; later fields depend on earlier draws (age, retirement).
func GenerateMember(rng *rand.Rand, countryCode string, sequence int) (MemberProfile, error) {
	country, err := CountryFor(countryCode)
	if err != nil {
		return MemberProfile{}, err
	}
	if sequence <= 0 {
		return MemberProfile{}, ErrInvalidSequence
	}

	age := randomRange(rng, 35, 75)
	gender := pick(rng, genders)
	name := pickName(rng, country.Code, gender)
	employment := drawEmploymentStatus(rng, age)
	retired := employment == EmploymentRetired

	member := MemberProfile{
		MemberID:                 country.MemberID(sequence),
		Country:                  country.Code,
		Name:                     name,
		Age:                      age,
		Gender:                   gender,
		EmploymentStatus:         employment,
		SuperBalance:             randomRange(rng, country.BalanceMin, country.BalanceMax),
		AccountBasedPension:      drawAccountBasedPension(rng, retired, age, country.PreservationAge),
		AnnualIncomeOutsideSuper: drawOutsideIncome(rng, retired, country),
		Debt:                     drawDebt(rng, age),
		Dependents:               drawDependents(rng, age),
		FinancialLiteracy:        pick(rng, literacyLevels),
		HealthStatus:             pick(rng, healthStatuses),
		HomeOwnership:            drawHomeOwnership(rng, age),
		OtherAssets:              randomRange(rng, 8000, 450000),
		PersonaType:              pick(rng, country.Personas),
		RiskProfile:              drawRiskProfile(rng, age),
		MaritalStatus:            pick(rng, maritalStatuses),
		PreservationAge:          country.PreservationAge,
	}

	return member, nil
}
