package model

type GovernanceLog struct {
	EventID            string  `gorm:"column:event_id;primaryKey;type:text"`
	Timestamp          string  `gorm:"column:timestamp;type:text;not null;index"`
	UserID             string  `gorm:"column:user_id;type:text;not null;index"`
	SessionID          string  `gorm:"column:session_id;type:text;not null"`
	Country            string  `gorm:"column:country;type:text;not null"`
	QueryString        string  `gorm:"column:query_string;type:text;not null"`
	AgentResponse      string  `gorm:"column:agent_response;type:text;not null"`
	ResultPreview      string  `gorm:"column:result_preview;type:text;not null"`
	Cost               float64 `gorm:"column:cost;not null"`
	Citations          string  `gorm:"column:citations;type:text;not null"`
	ToolUsed           *string `gorm:"column:tool_used;type:text"`
	JudgeResponse      string  `gorm:"column:judge_response;type:text;not null"`
	JudgeVerdict       string  `gorm:"column:judge_verdict;type:text;not null"`
	ErrorInfo          *string `gorm:"column:error_info;type:text"`
	ValidationMode     string  `gorm:"column:validation_mode;type:text;not null"`
	ValidationAttempts int     `gorm:"column:validation_attempts;not null"`
	TotalTimeSeconds   float64 `gorm:"column:total_time_seconds;not null"`
}

func (GovernanceLog) TableName() string {
	return "governance"
}
