package repository

import (
	"github.com/dkueng01/team-rule-tracker/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RuleRepository handles database operations for rules
type RuleRepository struct {
	db *gorm.DB
}

// NewRuleRepository creates a new rule repository
func NewRuleRepository(db *gorm.DB) *RuleRepository {
	return &RuleRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *RuleRepository) WithTx(tx *gorm.DB) RuleRepositoryInterface {
	return &RuleRepository{db: tx}
}

// Create creates a new rule
func (r *RuleRepository) Create(rule *models.Rule) error {
	return r.db.Create(rule).Error
}

// GetByID retrieves a rule scoped by team and id. The team scope prevents
// cross-team id probing.
func (r *RuleRepository) GetByID(teamID, id uuid.UUID) (*models.Rule, error) {
	var rule models.Rule
	err := r.db.First(&rule, "id = ? AND team_id = ?", id, teamID).Error
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

// GetByTeamID retrieves all rules of a team
func (r *RuleRepository) GetByTeamID(teamID uuid.UUID) ([]models.Rule, error) {
	var rules []models.Rule
	err := r.db.Where("team_id = ?", teamID).Order("created_at ASC").Find(&rules).Error
	if err != nil {
		return nil, err
	}
	return rules, nil
}

// Update updates a rule
func (r *RuleRepository) Update(rule *models.Rule) error {
	return r.db.Save(rule).Error
}

// Delete deletes a rule scoped by team and id
func (r *RuleRepository) Delete(teamID, id uuid.UUID) error {
	result := r.db.Delete(&models.Rule{}, "id = ? AND team_id = ?", id, teamID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
