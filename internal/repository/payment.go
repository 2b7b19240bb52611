package repository

import (
	"github.com/dkueng01/team-rule-tracker/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentRepository handles database operations for payments
type PaymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *PaymentRepository) WithTx(tx *gorm.DB) PaymentRepositoryInterface {
	return &PaymentRepository{db: tx}
}

// Create creates a new payment
func (r *PaymentRepository) Create(payment *models.Payment) error {
	return r.db.Create(payment).Error
}

// GetByID retrieves a payment scoped by team and id
func (r *PaymentRepository) GetByID(teamID, id uuid.UUID) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.First(&payment, "id = ? AND team_id = ?", id, teamID).Error
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// GetByTeamID retrieves all payments of a team
func (r *PaymentRepository) GetByTeamID(teamID uuid.UUID) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.Where("team_id = ?", teamID).Order("date ASC").Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

// Update updates a payment
func (r *PaymentRepository) Update(payment *models.Payment) error {
	return r.db.Save(payment).Error
}

// Delete deletes a payment scoped by team and id
func (r *PaymentRepository) Delete(teamID, id uuid.UUID) error {
	result := r.db.Delete(&models.Payment{}, "id = ? AND team_id = ?", id, teamID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
