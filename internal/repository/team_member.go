package repository

import (
	"github.com/dkueng01/team-rule-tracker/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamMemberRepository handles database operations for team memberships
type TeamMemberRepository struct {
	db *gorm.DB
}

// NewTeamMemberRepository creates a new team member repository
func NewTeamMemberRepository(db *gorm.DB) *TeamMemberRepository {
	return &TeamMemberRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *TeamMemberRepository) WithTx(tx *gorm.DB) TeamMemberRepositoryInterface {
	return &TeamMemberRepository{db: tx}
}

// Create creates a new membership row
func (r *TeamMemberRepository) Create(member *models.TeamMember) error {
	return r.db.Create(member).Error
}

// GetByTeamAndUser retrieves the unique membership row for a user in a team
func (r *TeamMemberRepository) GetByTeamAndUser(teamID uuid.UUID, userID string) (*models.TeamMember, error) {
	var member models.TeamMember
	err := r.db.First(&member, "team_id = ? AND user_id = ?", teamID, userID).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByTeamID retrieves all members of a team
func (r *TeamMemberRepository) GetByTeamID(teamID uuid.UUID) ([]models.TeamMember, error) {
	var members []models.TeamMember
	err := r.db.Where("team_id = ?", teamID).Order("created_at ASC").Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

// CountByTeamID returns the number of members in a team
func (r *TeamMemberRepository) CountByTeamID(teamID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.TeamMember{}).Where("team_id = ?", teamID).Count(&count).Error
	return count, err
}

// CountOwnedTeams returns how many teams the user owns
func (r *TeamMemberRepository) CountOwnedTeams(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.TeamMember{}).
		Where("user_id = ? AND role = ?", userID, models.RoleOwner).
		Count(&count).Error
	return count, err
}

// Delete removes a membership row scoped by team and user
func (r *TeamMemberRepository) Delete(teamID uuid.UUID, userID string) error {
	result := r.db.Delete(&models.TeamMember{}, "team_id = ? AND user_id = ?", teamID, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
