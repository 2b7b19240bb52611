package repository

import (
	"github.com/dkueng01/team-rule-tracker/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RuleBreakRepository handles database operations for rule breaks
type RuleBreakRepository struct {
	db *gorm.DB
}

// NewRuleBreakRepository creates a new rule break repository
func NewRuleBreakRepository(db *gorm.DB) *RuleBreakRepository {
	return &RuleBreakRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *RuleBreakRepository) WithTx(tx *gorm.DB) RuleBreakRepositoryInterface {
	return &RuleBreakRepository{db: tx}
}

// Create creates a new rule break
func (r *RuleBreakRepository) Create(ruleBreak *models.RuleBreak) error {
	return r.db.Create(ruleBreak).Error
}

// GetByID retrieves a rule break scoped by team and id
func (r *RuleBreakRepository) GetByID(teamID, id uuid.UUID) (*models.RuleBreak, error) {
	var ruleBreak models.RuleBreak
	err := r.db.First(&ruleBreak, "id = ? AND team_id = ?", id, teamID).Error
	if err != nil {
		return nil, err
	}
	return &ruleBreak, nil
}

// GetByTeamID retrieves all rule breaks of a team
func (r *RuleBreakRepository) GetByTeamID(teamID uuid.UUID) ([]models.RuleBreak, error) {
	var breaks []models.RuleBreak
	err := r.db.Where("team_id = ?", teamID).Order("date ASC").Find(&breaks).Error
	if err != nil {
		return nil, err
	}
	return breaks, nil
}

// Update updates a rule break
func (r *RuleBreakRepository) Update(ruleBreak *models.RuleBreak) error {
	return r.db.Save(ruleBreak).Error
}

// Delete deletes a rule break scoped by team and id
func (r *RuleBreakRepository) Delete(teamID, id uuid.UUID) error {
	result := r.db.Delete(&models.RuleBreak{}, "id = ? AND team_id = ?", id, teamID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
