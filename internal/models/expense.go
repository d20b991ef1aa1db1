package models

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense is a dated transaction recorded against a profile.
//
// The date is kept as the string the client sent. Month filtering is a
// literal prefix match on that string, not a calendar comparison.
type Expense struct {
	Model
	ProfileID   uint            `json:"profileId" example:"3"`
	Profile     Profile         `json:"-"`
	Value       decimal.Decimal `json:"value" gorm:"type:DECIMAL(20,8)" example:"129.90" swaggertype:"number"`
	Date        string          `json:"date" example:"2024-01-15"`
	Description string          `json:"description,omitempty" example:"Mercado"`
	Category    string          `json:"category" example:"Alimentação"`
	Recurring   bool            `json:"recurring" example:"false"`
}

// ExpenseEditable are the caller-settable fields of an expense.
type ExpenseEditable struct {
	Value       decimal.Decimal `json:"value" example:"129.90" swaggertype:"number"`
	Date        string          `json:"date" example:"2024-01-15"`
	Description string          `json:"description" example:"Mercado"`
	Category    string          `json:"category" example:"Alimentação"`
	Recurring   bool            `json:"recurring" example:"false"`
}

func (e ExpenseEditable) model(profileID uint) Expense {
	return Expense{
		ProfileID:   profileID,
		Value:       e.Value,
		Date:        e.Date,
		Description: e.Description,
		Category:    e.Category,
		Recurring:   e.Recurring,
	}
}

// Expenses returns all expenses of a profile owned by the user.
func Expenses(db *gorm.DB, userID, profileID uint) ([]Expense, error) {
	_, err := ProfileOwnedBy(db, profileID, userID)
	if err != nil {
		return nil, err
	}

	expenses := make([]Expense, 0)
	err = db.Where("profile_id = ?", profileID).Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	return expenses, nil
}

// CreateExpense records an expense against a profile owned by the user.
func CreateExpense(db *gorm.DB, userID, profileID uint, editable ExpenseEditable) (Expense, error) {
	_, err := ProfileOwnedBy(db, profileID, userID)
	if err != nil {
		return Expense{}, err
	}

	expense := editable.model(profileID)
	err = db.Create(&expense).Error
	if err != nil {
		return Expense{}, err
	}

	return expense, nil
}

// ExpenseOwnedBy returns the expense with the ID if its profile belongs to
// the user.
func ExpenseOwnedBy(db *gorm.DB, id, userID uint) (Expense, error) {
	var expense Expense
	err := db.First(&expense, "id = ? AND profile_id IN (?)", id, ownedProfiles(db, userID)).Error
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return Expense{}, ErrAccessDenied
		}
		return Expense{}, err
	}

	return expense, nil
}

// Update replaces all caller-settable fields of the expense.
func (e *Expense) Update(db *gorm.DB, editable ExpenseEditable) error {
	return db.Model(e).
		Select("Value", "Date", "Description", "Category", "Recurring").
		Updates(editable.model(e.ProfileID)).Error
}

// DeleteExpense deletes the expense with the ID if its profile belongs to the
// user. Like DeleteBudget, it succeeds when nothing matches.
func DeleteExpense(db *gorm.DB, id, userID uint) error {
	return db.Where("id = ? AND profile_id IN (?)", id, ownedProfiles(db, userID)).Delete(&Expense{}).Error
}

// ExpensesNamed returns the expenses of the user's profile with the name,
// optionally restricted to dates starting with the month prefix ("YYYY-MM").
//
// A name that does not resolve to a profile yields an empty list, not an
// error. This is asymmetric with CreateExpenseNamed on purpose: listing a
// profile that was never written to is indistinguishable from listing one
// without expenses.
func ExpensesNamed(db *gorm.DB, userID uint, name, month string) ([]Expense, error) {
	profile, err := ProfileByName(db, userID, name)
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return []Expense{}, nil
		}
		return nil, err
	}

	q := db.Where("profile_id = ?", profile.ID)
	if month != "" {
		q = q.Where("date LIKE ?", month+"%")
	}

	expenses := make([]Expense, 0)
	err = q.Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	return expenses, nil
}

// CreateExpenseNamed records an expense against the user's profile with the
// name. Unlike ExpensesNamed, a missing profile is an error here: creating a
// transaction must never invent the profile it belongs to.
func CreateExpenseNamed(db *gorm.DB, userID uint, name string, editable ExpenseEditable) (Expense, error) {
	profile, err := ProfileByName(db, userID, name)
	if err != nil {
		return Expense{}, err
	}

	expense := editable.model(profile.ID)
	err = db.Create(&expense).Error
	if err != nil {
		return Expense{}, err
	}

	return expense, nil
}
