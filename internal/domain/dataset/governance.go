package dataset

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

type JudgeVerdict string

const (
	VerdictPass   JudgeVerdict = "Pass"
	VerdictReview JudgeVerdict = "Review"
)

const (
	maxAgentResponseLen = 1000
	resultPreviewLen    = 120
	governanceWindow    = 180 // days
)

const (
	judgePassResponse   = "Response appropriate and accurate"
	judgeReviewResponse = "Flagged for manual review: response requires human verification"
	errorNote           = "Tool invocation timed out; answer produced from cached regulation summary"
)

var queryTemplates = []string{
	"When can I access my super without penalty?",
	"How much can I safely draw down each year in retirement?",
	"What happens to my account-based pension if I return to work?",
	"Am I eligible for any government age pension on top of my savings?",
	"Should I pay off my mortgage before retiring?",
	"How is my super taxed once I start a pension?",
	"What preservation age applies to me?",
	"Is my current balance on track for a comfortable retirement?",
	"How do spouse contributions affect my retirement position?",
	"What are the risks of staying in a growth option after 60?",
}

var validationModes = []string{"llm_judge", "hybrid", "deterministic"}

var toolNames = []string{"calculate_tax", "check_preservation_age", "estimate_pension"}

// governanceCitationPool is the fixed id set governance entries cite
// from. Entries deliberately do not join against the built registry;
// demo oversight dashboards only need plausible-looking references.
var governanceCitationPool = []string{"CIT-AU-001", "CIT-AU-002", "CIT-AU-003", "CIT-US-001"}

// GovernanceLogEntry is one synthetic audit record representing a
// simulated advisory-agent interaction. Entries are independent and
// never mutated after creation.
type GovernanceLogEntry struct {
	EventID            string
	Timestamp          time.Time
	UserID             string
	SessionID          string
	Country            string
	QueryString        string
	AgentResponse      string
	ResultPreview      string
	Cost               float64
	Citations          []string
	ToolUsed           *string
	JudgeResponse      string
	JudgeVerdict       JudgeVerdict
	ErrorInfo          *string
	ValidationMode     string
	ValidationAttempts int
	TotalTimeSeconds   float64
}

// GenerateGovernanceLogs synthesizes count audit entries referencing
// members, sampling with replacement. A zero count yields an empty
// slice; a negative count fails with ErrInvalidCount and an empty
// member set fails with ErrNoMembers.
func GenerateGovernanceLogs(rng *rand.Rand, now time.Time, members []MemberProfile, count int) ([]GovernanceLogEntry, error) {
	if count < 0 {
		return nil, fmt.Errorf("governance log count %d: %w", count, ErrInvalidCount)
	}
	if count == 0 {
		return []GovernanceLogEntry{}, nil
	}
	if len(members) == 0 {
		return nil, ErrNoMembers
	}

	entries := make([]GovernanceLogEntry, 0, count)
	for i := 0; i < count; i++ {
		member := members[rng.Intn(len(members))]
		ts := drawTimestamp(rng, now)

		query := pick(rng, queryTemplates)
		response := synthesizeResponse(member, query)

		verdict := VerdictPass
		judgeResponse := judgePassResponse
		if !chance(rng, 0.9) {
			verdict = VerdictReview
			judgeResponse = judgeReviewResponse
		}

		var errInfo *string
		if !chance(rng, 0.95) {
			note := errorNote
			errInfo = &note
		}

		entries = append(entries, GovernanceLogEntry{
			EventID:            fmt.Sprintf("GOV-%s-%04d", ts.Format("20060102"), i+1),
			Timestamp:          ts,
			UserID:             member.MemberID,
			SessionID:          uuid.NewString(),
			Country:            member.Country,
			QueryString:        query,
			AgentResponse:      response,
			ResultPreview:      truncate(response, resultPreviewLen),
			Cost:               roundTo(0.001+rng.Float64()*(0.05-0.001), 6),
			Citations:          append([]string(nil), governanceCitationPool...),
			ToolUsed:           drawTool(rng),
			JudgeResponse:      judgeResponse,
			JudgeVerdict:       verdict,
			ErrorInfo:          errInfo,
			ValidationMode:     pick(rng, validationModes),
			ValidationAttempts: 1 + rng.Intn(2),
			TotalTimeSeconds:   roundTo(0.5+rng.Float64()*4.5, 2),
		})
	}

	return entries, nil
}

// drawTimestamp picks a uniform moment over the past 180 days at
// day/hour/minute granularity.
func drawTimestamp(rng *rand.Rand, now time.Time) time.Time {
	day := now.UTC().AddDate(0, 0, -rng.Intn(governanceWindow))
	return time.Date(day.Year(), day.Month(), day.Day(), rng.Intn(24), rng.Intn(60), 0, 0, time.UTC)
}

// drawTool returns nil for the "none" case, otherwise a tool name.
func drawTool(rng *rand.Rand) *string {
	idx := rng.Intn(len(toolNames) + 1)
	if idx == len(toolNames) {
		return nil
	}
	name := toolNames[idx]
	return &name
}

func synthesizeResponse(member MemberProfile, query string) string {
	response := fmt.Sprintf(
		"Regarding %q: based on your profile (age %d, %s, %s resident with a balance of %d), "+
			"the general position is as follows. Preservation age in your jurisdiction is %d, so access rules "+
			"hinge on whether you have reached it and on your employment status. Your recorded risk profile "+
			"is %s and your persona segment is %s, which shapes the drawdown and contribution options worth "+
			"modelling. This is general information only and not personal financial advice; figures shown are "+
			"estimates produced for demonstration purposes.",
		query, member.Age, member.EmploymentStatus, member.Country, member.SuperBalance,
		member.PreservationAge, member.RiskProfile, member.PersonaType,
	)
	return truncate(response, maxAgentResponseLen)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func roundTo(value float64, decimals int) float64 {
	factor := math.Pow10(decimals)
	return math.Round(value*factor) / factor
}
