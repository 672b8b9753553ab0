package dataset

import "time"

type ToolType string

const (
	ToolTypeBenefit    ToolType = "benefit"
	ToolTypeTax        ToolType = "tax"
	ToolTypeProjection ToolType = "projection"
)

// Citation is one regulatory-citation record. Content is hand-authored
// and fixed across runs; only LastVerified is stamped per build.
type Citation struct {
	CitationID     string
	Country        string
	Authority      string
	RegulationName string
	RegulationCode string
	EffectiveDate  string
	SourceURL      string
	Description    string
	ToolType       ToolType
	LastVerified   time.Time
}

var citationRegistry = []Citation{
	{
		CitationID:     "CIT-AU-001",
		Country:        "AU",
		Authority:      "Australian Taxation Office",
		RegulationName: "Superannuation preservation age",
		RegulationCode: "SISR 1994 Sch 1 item 101",
		EffectiveDate:  "2015-07-01",
		SourceURL:      "https://www.ato.gov.au/individuals-and-families/super-for-individuals-and-families/super/withdrawing-and-using-your-super/preservation-age",
		Description:    "Minimum age at which preserved superannuation benefits may be accessed.",
		ToolType:       ToolTypeBenefit,
	},
	{
		CitationID:     "CIT-AU-002",
		Country:        "AU",
		Authority:      "Services Australia",
		RegulationName: "Age Pension income test",
		RegulationCode: "Social Security Act 1991 s 1064",
		EffectiveDate:  "2023-09-20",
		SourceURL:      "https://www.servicesaustralia.gov.au/income-test-for-age-pension",
		Description:    "Income thresholds reducing Age Pension entitlement.",
		ToolType:       ToolTypeBenefit,
	},
	{
		CitationID:     "CIT-AU-003",
		Country:        "AU",
		Authority:      "Australian Taxation Office",
		RegulationName: "Superannuation income stream tax offset",
		RegulationCode: "ITAA 1997 s 301-25",
		EffectiveDate:  "2007-07-01",
		SourceURL:      "https://www.ato.gov.au/tax-rates-and-codes/key-superannuation-rates-and-thresholds",
		Description:    "Tax treatment of account-based pension payments after age 60.",
		ToolType:       ToolTypeTax,
	},
	{
		CitationID:     "CIT-US-001",
		Country:        "US",
		Authority:      "Internal Revenue Service",
		RegulationName: "Required minimum distributions",
		RegulationCode: "IRC s 401(a)(9)",
		EffectiveDate:  "2023-01-01",
		SourceURL:      "https://www.irs.gov/retirement-plans/plan-participant-employee/retirement-topics-required-minimum-distributions-rmds",
		Description:    "Mandatory annual withdrawals from qualified retirement accounts.",
		ToolType:       ToolTypeProjection,
	},
	{
		CitationID:     "CIT-US-002",
		Country:        "US",
		Authority:      "Internal Revenue Service",
		RegulationName: "Additional tax on early distributions",
		RegulationCode: "IRC s 72(t)",
		EffectiveDate:  "2020-01-01",
		SourceURL:      "https://www.irs.gov/taxtopics/tc558",
		Description:    "10% additional tax on distributions before age 59 1/2.",
		ToolType:       ToolTypeTax,
	},
	{
		CitationID:     "CIT-UK-001",
		Country:        "UK",
		Authority:      "HM Revenue & Customs",
		RegulationName: "Pension flexibility lump sums",
		RegulationCode: "Finance Act 2004 Pt 4",
		EffectiveDate:  "2015-04-06",
		SourceURL:      "https://www.gov.uk/tax-on-pension/tax-free",
		Description:    "Tax-free and taxable components of flexible pension withdrawals.",
		ToolType:       ToolTypeBenefit,
	},
	{
		CitationID:     "CIT-UK-002",
		Country:        "UK",
		Authority:      "Department for Work and Pensions",
		RegulationName: "State Pension age timetable",
		RegulationCode: "Pensions Act 2014 s 26",
		EffectiveDate:  "2014-05-14",
		SourceURL:      "https://www.gov.uk/state-pension-age",
		Description:    "Legislated schedule of State Pension age increases.",
		ToolType:       ToolTypeProjection,
	},
	{
		CitationID:     "CIT-IN-001",
		Country:        "IN",
		Authority:      "Employees' Provident Fund Organisation",
		RegulationName: "Employees' Pension Scheme",
		RegulationCode: "EPS 1995 para 12",
		EffectiveDate:  "1995-11-16",
		SourceURL:      "https://www.epfindia.gov.in/site_en/Pension.php",
		Description:    "Monthly pension entitlement on superannuation at age 58.",
		ToolType:       ToolTypeBenefit,
	},
	{
		CitationID:     "CIT-IN-002",
		Country:        "IN",
		Authority:      "Income Tax Department",
		RegulationName: "Deduction for retirement contributions",
		RegulationCode: "Income-tax Act 1961 s 80C",
		EffectiveDate:  "2014-04-01",
		SourceURL:      "https://incometaxindia.gov.in/Pages/acts/income-tax-act.aspx",
		Description:    "Deduction cap covering provident fund and pension contributions.",
		ToolType:       ToolTypeTax,
	},
}

// BuildCitationRegistry returns the fixed citation set with
// LastVerified stamped from now. Content is identical across calls.
func BuildCitationRegistry(now time.Time) []Citation {
	out := make([]Citation, len(citationRegistry))
	copy(out, citationRegistry)
	for i := range out {
		out[i].LastVerified = now.UTC()
	}
	return out
}
