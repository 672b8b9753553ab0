package model

type Citation struct {
	CitationID     string `gorm:"column:citation_id;primaryKey;type:text"`
	Country        string `gorm:"column:country;type:text;not null;index"`
	Authority      string `gorm:"column:authority;type:text;not null"`
	RegulationName string `gorm:"column:regulation_name;type:text;not null"`
	RegulationCode string `gorm:"column:regulation_code;type:text;not null"`
	EffectiveDate  string `gorm:"column:effective_date;type:text;not null"`
	SourceURL      string `gorm:"column:source_url;type:text;not null"`
	Description    string `gorm:"column:description;type:text;not null"`
	ToolType       string `gorm:"column:tool_type;type:text;not null"`
	LastVerified   string `gorm:"column:last_verified;type:text;not null"`
}

func (Citation) TableName() string {
	return "citation_registry"
}
