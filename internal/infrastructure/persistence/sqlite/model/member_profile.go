package model

type MemberProfile struct {
	MemberID                 string `gorm:"column:member_id;primaryKey;type:text"`
	Country                  string `gorm:"column:country;type:text;not null;index"`
	Name                     string `gorm:"column:name;type:text;not null"`
	Age                      int    `gorm:"column:age;not null"`
	Gender                   string `gorm:"column:gender;type:text;not null"`
	EmploymentStatus         string `gorm:"column:employment_status;type:text;not null"`
	SuperBalance             int    `gorm:"column:super_balance;not null"`
	AnnualIncomeOutsideSuper int    `gorm:"column:annual_income_outside_super;not null"`
	Debt                     int    `gorm:"column:debt;not null"`
	OtherAssets              int    `gorm:"column:other_assets;not null"`
	AccountBasedPension      int    `gorm:"column:account_based_pension;not null"`
	Dependents               int    `gorm:"column:dependents;not null"`
	FinancialLiteracy        string `gorm:"column:financial_literacy;type:text;not null"`
	HealthStatus             string `gorm:"column:health_status;type:text;not null"`
	HomeOwnership            string `gorm:"column:home_ownership;type:text;not null"`
	RiskProfile              string `gorm:"column:risk_profile;type:text;not null"`
	MaritalStatus            string `gorm:"column:marital_status;type:text;not null"`
	PersonaType              string `gorm:"column:persona_type;type:text;not null"`
	PreservationAge          int    `gorm:"column:preservation_age;not null"`
}

func (MemberProfile) TableName() string {
	return "member_profiles"
}
