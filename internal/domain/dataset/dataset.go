package dataset

import "time"

// Dataset bundles the three generated tables for one run, along with
// the effective seed so a run can be reproduced.
type Dataset struct {
	Members     []MemberProfile
	Citations   []Citation
	Governance  []GovernanceLogEntry
	Seed        int64
	GeneratedAt time.Time
}
