package repository

import (
	"github.com/dkueng01/team-rule-tracker/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JoinRequestRepository handles database operations for join requests
type JoinRequestRepository struct {
	db *gorm.DB
}

// NewJoinRequestRepository creates a new join request repository
func NewJoinRequestRepository(db *gorm.DB) *JoinRequestRepository {
	return &JoinRequestRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *JoinRequestRepository) WithTx(tx *gorm.DB) JoinRequestRepositoryInterface {
	return &JoinRequestRepository{db: tx}
}

// Create creates a new join request
func (r *JoinRequestRepository) Create(request *models.JoinRequest) error {
	return r.db.Create(request).Error
}

// GetByID retrieves a join request scoped by team and id
func (r *JoinRequestRepository) GetByID(teamID, id uuid.UUID) (*models.JoinRequest, error) {
	var request models.JoinRequest
	err := r.db.First(&request, "id = ? AND team_id = ?", id, teamID).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// GetPendingByTeamAndUser retrieves an unresolved request of a user for a team
func (r *JoinRequestRepository) GetPendingByTeamAndUser(teamID uuid.UUID, userID string) (*models.JoinRequest, error) {
	var request models.JoinRequest
	err := r.db.First(&request,
		"team_id = ? AND user_id = ? AND approved IS NULL AND rejected IS NULL",
		teamID, userID).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// GetPendingByTeamID retrieves all unresolved requests for a team, oldest first
func (r *JoinRequestRepository) GetPendingByTeamID(teamID uuid.UUID) ([]models.JoinRequest, error) {
	var requests []models.JoinRequest
	err := r.db.
		Where("team_id = ? AND approved IS NULL AND rejected IS NULL", teamID).
		Order("created_at ASC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

// Update updates a join request
func (r *JoinRequestRepository) Update(request *models.JoinRequest) error {
	return r.db.Save(request).Error
}
