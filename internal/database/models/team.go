package models

// Team represents a group of users sharing rules and a money pool
type Team struct {
	BaseModel
	Name        string `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Description string `json:"description" gorm:"size:500" validate:"max=500"`
	JoinCode    string `json:"join_code" gorm:"not null;size:8;uniqueIndex"`
	JoinEnabled bool   `json:"join_enabled" gorm:"not null;default:true"`

	// Relationships
	Members      []TeamMember  `json:"members,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	Rules        []Rule        `json:"rules,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	RuleBreaks   []RuleBreak   `json:"rule_breaks,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	Payments     []Payment     `json:"payments,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	Expenses     []Expense     `json:"expenses,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	JoinRequests []JoinRequest `json:"join_requests,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
