// Package export serializes generated datasets to columnar files (one
// CSV per table) and to textual batch-insert statements. Both forms
// preserve the column order below; outputs are byte-identical across
// runs except where timestamps enter the data itself.
package export

import (
	"strconv"
	"strings"
	"time"

	"advisorseed/internal/domain/dataset"
)

const timestampLayout = "2006-01-02 15:04:05"

// value is one cell: Text as written to CSV, Quoted marking whether the
// SQL form wraps it in single quotes.
type value struct {
	Text   string
	Quoted bool
}

// Table is one named tabular dataset with a fixed column order.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]value
}

var memberColumns = []string{
	"member_id", "country", "name", "age", "gender", "employment_status",
	"super_balance", "annual_income_outside_super", "debt", "other_assets",
	"account_based_pension", "dependents", "financial_literacy",
	"health_status", "home_ownership", "risk_profile", "marital_status",
	"persona_type", "preservation_age",
}

var citationColumns = []string{
	"citation_id", "country", "authority", "regulation_name",
	"regulation_code", "effective_date", "source_url", "description",
	"tool_type", "last_verified",
}

var governanceColumns = []string{
	"event_id", "timestamp", "user_id", "session_id", "country",
	"query_string", "agent_response", "result_preview", "cost",
	"citations", "tool_used", "judge_response", "judge_verdict",
	"error_info", "validation_mode", "validation_attempts",
	"total_time_seconds",
}

// Tables lays the dataset out as the three named tables consumed by
// downstream loaders.
func Tables(ds dataset.Dataset) []Table {
	return []Table{
		{Name: "member_profiles", Columns: memberColumns, Rows: memberRows(ds.Members)},
		{Name: "citation_registry", Columns: citationColumns, Rows: citationRows(ds.Citations)},
		{Name: "governance", Columns: governanceColumns, Rows: governanceRows(ds.Governance)},
	}
}

func memberRows(members []dataset.MemberProfile) [][]value {
	rows := make([][]value, 0, len(members))
	for _, m := range members {
		rows = append(rows, []value{
			text(m.MemberID),
			text(m.Country),
			text(m.Name),
			number(m.Age),
			text(string(m.Gender)),
			text(string(m.EmploymentStatus)),
			number(m.SuperBalance),
			number(m.AnnualIncomeOutsideSuper),
			number(m.Debt),
			number(m.OtherAssets),
			number(m.AccountBasedPension),
			number(m.Dependents),
			text(m.FinancialLiteracy),
			text(m.HealthStatus),
			text(m.HomeOwnership),
			text(m.RiskProfile),
			text(m.MaritalStatus),
			text(m.PersonaType),
			number(m.PreservationAge),
		})
	}
	return rows
}

func citationRows(citations []dataset.Citation) [][]value {
	rows := make([][]value, 0, len(citations))
	for _, c := range citations {
		rows = append(rows, []value{
			text(c.CitationID),
			text(c.Country),
			text(c.Authority),
			text(c.RegulationName),
			text(c.RegulationCode),
			text(c.EffectiveDate),
			text(c.SourceURL),
			text(c.Description),
			text(string(c.ToolType)),
			timestamp(c.LastVerified),
		})
	}
	return rows
}

func governanceRows(entries []dataset.GovernanceLogEntry) [][]value {
	rows := make([][]value, 0, len(entries))
	for _, g := range entries {
		rows = append(rows, []value{
			text(g.EventID),
			timestamp(g.Timestamp),
			text(g.UserID),
			text(g.SessionID),
			text(g.Country),
			text(g.QueryString),
			text(g.AgentResponse),
			text(g.ResultPreview),
			decimal(g.Cost, 6),
			text(strings.Join(g.Citations, ",")),
			nullable(g.ToolUsed),
			text(g.JudgeResponse),
			text(string(g.JudgeVerdict)),
			nullable(g.ErrorInfo),
			text(g.ValidationMode),
			number(g.ValidationAttempts),
			decimal(g.TotalTimeSeconds, 2),
		})
	}
	return rows
}

func text(s string) value {
	return value{Text: s, Quoted: true}
}

func number(n int) value {
	return value{Text: strconv.Itoa(n)}
}

func decimal(f float64, places int) value {
	return value{Text: strconv.FormatFloat(f, 'f', places, 64)}
}

func timestamp(t time.Time) value {
	return value{Text: t.UTC().Format(timestampLayout), Quoted: true}
}

// nullable renders a nil pointer as SQL NULL (empty text in CSV).
func nullable(s *string) value {
	if s == nil {
		return value{}
	}
	return value{Text: *s, Quoted: true}
}
