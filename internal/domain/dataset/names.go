package dataset

import "math/rand"

// Static name pools per country locale, split by gender. Demo data only
// needs enough variety to look like a real member table.

var maleFirstNames = map[string][]string{
	"AU": {"Liam", "Jack", "Noah", "Oliver", "Lachlan", "Ethan", "Angus", "Cooper"},
	"US": {"James", "Michael", "Robert", "David", "William", "Richard", "Joseph", "Tyler"},
	"UK": {"Oliver", "George", "Harry", "Arthur", "Alfie", "Henry", "Charlie", "Edward"},
	"IN": {"Aarav", "Vihaan", "Arjun", "Rohan", "Aditya", "Kabir", "Rahul", "Sanjay"},
}

var femaleFirstNames = map[string][]string{
	"AU": {"Charlotte", "Olivia", "Amelia", "Isla", "Mia", "Matilda", "Ruby", "Sienna"},
	"US": {"Mary", "Patricia", "Jennifer", "Linda", "Elizabeth", "Barbara", "Susan", "Ashley"},
	"UK": {"Olivia", "Amelia", "Isabella", "Sophie", "Grace", "Lily", "Freya", "Florence"},
	"IN": {"Ananya", "Diya", "Priya", "Kavya", "Meera", "Sneha", "Pooja", "Lakshmi"},
}

var surnames = map[string][]string{
	"AU": {"Smith", "Jones", "Williams", "Brown", "Wilson", "Taylor", "Nguyen", "Martin", "Thompson", "Walker"},
	"US": {"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Rodriguez", "Martinez"},
	"UK": {"Smith", "Jones", "Taylor", "Brown", "Williams", "Wilson", "Johnson", "Davies", "Patel", "Wright"},
	"IN": {"Sharma", "Patel", "Singh", "Kumar", "Gupta", "Reddy", "Iyer", "Nair", "Mehta", "Joshi"},
}

// pickName draws a full name consistent with gender and country locale.
// Unknown codes fall back to the AU pools so the helper stays total;
// GenerateMember validates the code before calling.
func pickName(rng *rand.Rand, country string, gender Gender) string {
	pool := maleFirstNames
	if gender == Female {
		pool = femaleFirstNames
	}

	firsts, ok := pool[country]
	if !ok {
		firsts = pool["AU"]
	}
	lasts, ok := surnames[country]
	if !ok {
		lasts = surnames["AU"]
	}

	return pick(rng, firsts) + " " + pick(rng, lasts)
}
