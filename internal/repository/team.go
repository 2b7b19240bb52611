package repository

import (
	"github.com/dkueng01/team-rule-tracker/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamSummary is a team row enriched with membership and rule counts
type TeamSummary struct {
	models.Team
	MemberCount int64 `json:"member_count"`
	RuleCount   int64 `json:"rule_count"`
}

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *TeamRepository) WithTx(tx *gorm.DB) TeamRepositoryInterface {
	return &TeamRepository{db: tx}
}

// Create creates a new team
func (r *TeamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByJoinCode retrieves a team by its join code
func (r *TeamRepository) GetByJoinCode(joinCode string) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "join_code = ?", joinCode).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// Update updates a team
func (r *TeamRepository) Update(team *models.Team) error {
	return r.db.Save(team).Error
}

// Delete deletes a team
func (r *TeamRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Team{}, "id = ?", id).Error
}

// SetJoinCode replaces the team's join code; the previous code stops matching
// immediately since there is a single code column per team.
func (r *TeamRepository) SetJoinCode(teamID uuid.UUID, joinCode string) error {
	result := r.db.Model(&models.Team{}).Where("id = ?", teamID).Update("join_code", joinCode)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SetJoinEnabled toggles whether the team accepts join requests
func (r *TeamRepository) SetJoinEnabled(teamID uuid.UUID, enabled bool) error {
	result := r.db.Model(&models.Team{}).Where("id = ?", teamID).Update("join_enabled", enabled)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetSummariesForUser retrieves the teams the user belongs to, with member
// and rule counts for the overview page.
func (r *TeamRepository) GetSummariesForUser(userID string) ([]TeamSummary, error) {
	var summaries []TeamSummary
	err := r.db.Model(&models.Team{}).
		Select(`teams.*,
			(SELECT COUNT(*) FROM team_members tm2 WHERE tm2.team_id = teams.id) AS member_count,
			(SELECT COUNT(*) FROM rules r WHERE r.team_id = teams.id) AS rule_count`).
		Joins("JOIN team_members tm ON tm.team_id = teams.id").
		Where("tm.user_id = ?", userID).
		Order("teams.created_at ASC").
		Find(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}
