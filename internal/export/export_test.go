package export

import (
	"time"

	"advisorseed/internal/domain/dataset"
)

func fixtureDataset() dataset.Dataset {
	tool := "estimate_pension"

	return dataset.Dataset{
		Members: []dataset.MemberProfile{
			{
				MemberID:                 "AU001",
				Country:                  "AU",
				Name:                     "Liam O'Brien",
				Age:                      67,
				Gender:                   dataset.Male,
				EmploymentStatus:         dataset.EmploymentRetired,
				SuperBalance:             420000,
				AnnualIncomeOutsideSuper: 0,
				Debt:                     0,
				OtherAssets:              150000,
				AccountBasedPension:      42000,
				Dependents:               0,
				FinancialLiteracy:        "Moderate",
				HealthStatus:             "Good",
				HomeOwnership:            "Own outright",
				RiskProfile:              "Conservative",
				MaritalStatus:            "Married",
				PersonaType:              "Comfortable",
				PreservationAge:          60,
			},
			{
				MemberID:                 "AU002",
				Country:                  "AU",
				Name:                     "Charlotte Nguyen",
				Age:                      41,
				Gender:                   dataset.Female,
				EmploymentStatus:         dataset.EmploymentFullTime,
				SuperBalance:             98000,
				AnnualIncomeOutsideSuper: 86000,
				Debt:                     145000,
				OtherAssets:              32000,
				AccountBasedPension:      0,
				Dependents:               2,
				FinancialLiteracy:        "High",
				HealthStatus:             "Excellent",
				HomeOwnership:            "Mortgaged",
				RiskProfile:              "Growth",
				MaritalStatus:            "De facto",
				PersonaType:              "Wealth Accumulator",
				PreservationAge:          60,
			},
		},
		Citations: []dataset.Citation{
			{
				CitationID:     "CIT-AU-001",
				Country:        "AU",
				Authority:      "Australian Taxation Office",
				RegulationName: "Superannuation preservation age",
				RegulationCode: "SISR 1994 Sch 1 item 101",
				EffectiveDate:  "2015-07-01",
				SourceURL:      "https://www.ato.gov.au/preservation-age",
				Description:    "Minimum access age for preserved benefits.",
				ToolType:       dataset.ToolTypeBenefit,
				LastVerified:   time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC),
			},
		},
		Governance: []dataset.GovernanceLogEntry{
			{
				EventID:            "GOV-20260810-0001",
				Timestamp:          time.Date(2026, 8, 10, 14, 30, 0, 0, time.UTC),
				UserID:             "AU001",
				SessionID:          "6f1cbb2e-9f7b-4a42-a5a1-2f0d3c9f1a11",
				Country:            "AU",
				QueryString:        "When can I access my super without penalty?",
				AgentResponse:      "You have reached preservation age, so access rules depend on your employment status.",
				ResultPreview:      "You have reached preservation age",
				Cost:               0.012345,
				Citations:          []string{"CIT-AU-001", "CIT-AU-002"},
				ToolUsed:           &tool,
				JudgeResponse:      "Response appropriate and accurate",
				JudgeVerdict:       dataset.VerdictPass,
				ErrorInfo:          nil,
				ValidationMode:     "llm_judge",
				ValidationAttempts: 1,
				TotalTimeSeconds:   2.75,
			},
			{
				EventID:            "GOV-20260811-0002",
				Timestamp:          time.Date(2026, 8, 11, 9, 5, 0, 0, time.UTC),
				UserID:             "AU002",
				SessionID:          "7b0f1d4c-1234-4e9a-bb31-0c5f7a8d2e02",
				Country:            "AU",
				QueryString:        "Should I pay off my mortgage before retiring?",
				AgentResponse:      "That depends on your balance, income and risk profile.",
				ResultPreview:      "That depends on your balance",
				Cost:               0.004100,
				Citations:          []string{"CIT-AU-001"},
				ToolUsed:           nil,
				JudgeResponse:      "Response appropriate and accurate",
				JudgeVerdict:       dataset.VerdictPass,
				ErrorInfo:          nil,
				ValidationMode:     "deterministic",
				ValidationAttempts: 2,
				TotalTimeSeconds:   1.20,
			},
		},
		Seed:        42,
		GeneratedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}
}
