package dataset

import "math/rand"

// Each rule below decides one member field from age and employment
// status. Keeping them as separate functions keeps every conditional
// independently testable.

// drawEmploymentStatus forces Retired at 65 and above, otherwise gives
// a 20% early-retirement chance before drawing a working status.
func drawEmploymentStatus(rng *rand.Rand, age int) EmploymentStatus {
	if age >= 65 || chance(rng, 0.2) {
		return EmploymentRetired
	}
	return pick(rng, workingStatuses)
}

// drawAccountBasedPension is nonzero only for retired members past
// their preservation age, and even then only half the time.
func drawAccountBasedPension(rng *rand.Rand, retired bool, age, preservationAge int) int {
	if !retired || age < preservationAge {
		return 0
	}
	if chance(rng, 0.5) {
		return 0
	}
	return randomRange(rng, 25000, 85000)
}

// drawOutsideIncome gives retirees a small or zero income; working
// members draw from the country's configured income range.
func drawOutsideIncome(rng *rand.Rand, retired bool, country CountryProfile) int {
	if retired {
		if chance(rng, 0.5) {
			return 0
		}
		return randomRange(rng, 5000, 25000)
	}
	return randomRange(rng, country.IncomeMin, country.IncomeMax)
}

// drawDebt shrinks with age; past 60 half of members carry none.
func drawDebt(rng *rand.Rand, age int) int {
	switch {
	case age < 50:
		return randomRange(rng, 30000, 180000)
	case age < 60:
		return randomRange(rng, 20000, 95000)
	default:
		if chance(rng, 0.5) {
			return 0
		}
		return randomRange(rng, 0, 50000)
	}
}

// drawDependents tapers with age; past 60 the draw is weighted 3-in-4
// toward zero with at most one dependent.
func drawDependents(rng *rand.Rand, age int) int {
	switch {
	case age < 45:
		return rng.Intn(4)
	case age < 60:
		return rng.Intn(3)
	default:
		if rng.Intn(4) < 3 {
			return 0
		}
		return 1
	}
}

// drawHomeOwnership restricts members aged 60+ to the owned subset.
func drawHomeOwnership(rng *rand.Rand, age int) string {
	if age >= 60 {
		return pick(rng, ownedHomeStatuses)
	}
	return pick(rng, homeStatuses)
}

// drawRiskProfile leans conservative at 65+, balanced from 55, and
// growth below that.
func drawRiskProfile(rng *rand.Rand, age int) string {
	switch {
	case age >= 65:
		return pick(rng, conservativeRisks)
	case age >= 55:
		return pick(rng, balancedRisks)
	default:
		return pick(rng, growthRisks)
	}
}
