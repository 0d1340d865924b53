package models

// Report is a single submitted abuse incident. Rows are insert-only.
type Report struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Age         int    `gorm:"not null" json:"age"`
	Location    string `gorm:"type:text;not null" json:"location"`
	EthnicGroup string `gorm:"type:text;not null;index" json:"ethnic_group"`
	TypeOfAbuse string `gorm:"type:text;not null" json:"type_of_abuse"`
	Description string `gorm:"type:text;not null" json:"description"`
}

func (Report) TableName() string {
	return "reports"
}

// ReportSummary is the per-group count returned by the summary query.
type ReportSummary struct {
	EthnicGroup string `json:"ethnic_group"`
	Count       int64  `json:"count"`
}
