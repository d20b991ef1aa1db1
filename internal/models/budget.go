package models

import (
	"errors"

	"gorm.io/gorm"
)

// Budget is a percentage allocation for a category label within a profile.
//
// Category labels are free text. Expenses reference them by label only, there
// is no foreign key between the two.
type Budget struct {
	Model
	ProfileID uint    `json:"profileId" example:"3"`
	Profile   Profile `json:"-"`
	Category  string  `json:"category" example:"Moradia"`
	Percent   int     `json:"percent" example:"30"`
}

// BudgetItem is one entry of a full category set replacement.
type BudgetItem struct {
	Category string `json:"category" example:"Moradia"`
	Percent  int    `json:"percent" example:"30"`
}

// ownedProfiles is the subquery restricting child lookups to profiles of the
// user. It is the single place the ownership join is spelled out.
func ownedProfiles(db *gorm.DB, userID uint) *gorm.DB {
	return db.Session(&gorm.Session{NewDB: true}).Model(&Profile{}).Select("id").Where("user_id = ?", userID)
}

// Budgets returns all budget categories of a profile owned by the user.
func Budgets(db *gorm.DB, userID, profileID uint) ([]Budget, error) {
	_, err := ProfileOwnedBy(db, profileID, userID)
	if err != nil {
		return nil, err
	}

	budgets := make([]Budget, 0)
	err = db.Where("profile_id = ?", profileID).Find(&budgets).Error
	if err != nil {
		return nil, err
	}

	return budgets, nil
}

// CreateBudget adds a budget category to a profile owned by the user.
//
// Percent is stored as sent. The API never validated ranges and callers rely
// on that, see DESIGN.md.
func CreateBudget(db *gorm.DB, userID, profileID uint, category string, percent int) (Budget, error) {
	_, err := ProfileOwnedBy(db, profileID, userID)
	if err != nil {
		return Budget{}, err
	}

	budget := Budget{
		ProfileID: profileID,
		Category:  category,
		Percent:   percent,
	}

	err = db.Create(&budget).Error
	if err != nil {
		return Budget{}, err
	}

	return budget, nil
}

// BudgetOwnedBy returns the budget category with the ID if its profile
// belongs to the user.
func BudgetOwnedBy(db *gorm.DB, id, userID uint) (Budget, error) {
	var budget Budget
	err := db.First(&budget, "id = ? AND profile_id IN (?)", id, ownedProfiles(db, userID)).Error
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return Budget{}, ErrAccessDenied
		}
		return Budget{}, err
	}

	return budget, nil
}

// Update replaces the category label and percentage of the budget.
func (b *Budget) Update(db *gorm.DB, category string, percent int) error {
	return db.Model(b).Select("Category", "Percent").Updates(Budget{Category: category, Percent: percent}).Error
}

// DeleteBudget deletes the budget category with the ID if its profile belongs
// to the user. Deleting an ID that does not match anything is not an error,
// so repeated deletes succeed.
func DeleteBudget(db *gorm.DB, id, userID uint) error {
	return db.Where("id = ? AND profile_id IN (?)", id, ownedProfiles(db, userID)).Delete(&Budget{}).Error
}

// ReplaceBudgets atomically replaces the full category set of a profile owned
// by the user.
//
// Delete and re-insert run in one transaction so that concurrent readers
// never observe a partially rewritten set. An empty replacement is valid and
// leaves the profile without categories.
func ReplaceBudgets(db *gorm.DB, userID, profileID uint, items []BudgetItem) ([]Budget, error) {
	budgets := make([]Budget, 0, len(items))

	err := db.Transaction(func(tx *gorm.DB) error {
		_, err := ProfileOwnedBy(tx, profileID, userID)
		if err != nil {
			return err
		}

		err = tx.Where("profile_id = ?", profileID).Delete(&Budget{}).Error
		if err != nil {
			return err
		}

		if len(items) == 0 {
			return nil
		}

		for _, item := range items {
			budgets = append(budgets, Budget{
				ProfileID: profileID,
				Category:  item.Category,
				Percent:   item.Percent,
			})
		}

		return tx.Create(&budgets).Error
	})
	if err != nil {
		return nil, err
	}

	return budgets, nil
}
