package repository

import (
	"github.com/dkueng01/team-rule-tracker/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExpenseRepository handles database operations for expenses
type ExpenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *ExpenseRepository) WithTx(tx *gorm.DB) ExpenseRepositoryInterface {
	return &ExpenseRepository{db: tx}
}

// Create creates a new expense
func (r *ExpenseRepository) Create(expense *models.Expense) error {
	return r.db.Create(expense).Error
}

// GetByID retrieves an expense scoped by team and id
func (r *ExpenseRepository) GetByID(teamID, id uuid.UUID) (*models.Expense, error) {
	var expense models.Expense
	err := r.db.First(&expense, "id = ? AND team_id = ?", id, teamID).Error
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

// GetByTeamID retrieves all expenses of a team
func (r *ExpenseRepository) GetByTeamID(teamID uuid.UUID) ([]models.Expense, error) {
	var expenses []models.Expense
	err := r.db.Where("team_id = ?", teamID).Order("date ASC").Find(&expenses).Error
	if err != nil {
		return nil, err
	}
	return expenses, nil
}

// Update updates an expense
func (r *ExpenseRepository) Update(expense *models.Expense) error {
	return r.db.Save(expense).Error
}

// Delete deletes an expense scoped by team and id
func (r *ExpenseRepository) Delete(teamID, id uuid.UUID) error {
	result := r.db.Delete(&models.Expense{}, "id = ? AND team_id = ?", id, teamID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
