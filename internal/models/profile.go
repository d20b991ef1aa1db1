package models

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Profile is a named budget scope, e.g. a household or a savings project.
// Every profile belongs to exactly one user and every budget category and
// expense belongs to exactly one profile.
type Profile struct {
	Model
	UserID uint                `json:"-" gorm:"index"`
	User   User                `json:"-"`
	Name   string              `json:"name" example:"Casa"`
	Income decimal.NullDecimal `json:"income" gorm:"type:DECIMAL(20,8)" swaggertype:"number"`
}

// Profiles returns all profiles of a user.
func Profiles(db *gorm.DB, userID uint) ([]Profile, error) {
	profiles := make([]Profile, 0)
	err := db.Where(&Profile{UserID: userID}).Find(&profiles).Error
	if err != nil {
		return nil, err
	}

	return profiles, nil
}

// CreateProfile creates a profile for a user.
func CreateProfile(db *gorm.DB, userID uint, name string, income decimal.NullDecimal) (Profile, error) {
	profile := Profile{
		UserID: userID,
		Name:   name,
		Income: income,
	}

	err := db.Create(&profile).Error
	if err != nil {
		return Profile{}, err
	}

	return profile, nil
}

// ProfileOwnedBy returns the profile with the ID if it belongs to the user.
//
// A profile that does not exist and a profile that belongs to another user
// fail the same way, existence is never revealed to other users.
func ProfileOwnedBy(db *gorm.DB, id, userID uint) (Profile, error) {
	var profile Profile
	err := db.First(&profile, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return Profile{}, ErrAccessDenied
		}
		return Profile{}, err
	}

	return profile, nil
}

// ProfileByName returns the user's profile with the name.
func ProfileByName(db *gorm.DB, userID uint, name string) (Profile, error) {
	var profile Profile
	err := db.First(&profile, "user_id = ? AND name = ?", userID, name).Error
	if err != nil {
		return Profile{}, err
	}

	return profile, nil
}

// ResolveProfileName returns the user's profile with the name, creating it
// with empty income on first access.
//
// There is no uniqueness constraint on (user_id, name). Two concurrent first
// lookups for the same name can therefore both create a profile, see the
// note in DESIGN.md.
func ResolveProfileName(db *gorm.DB, userID uint, name string) (Profile, error) {
	profile, err := ProfileByName(db, userID, name)
	if err == nil {
		return profile, nil
	}

	if !errors.Is(err, ErrResourceNotFound) {
		return Profile{}, err
	}

	return CreateProfile(db, userID, name, decimal.NullDecimal{})
}

// UpdateIncome sets the income of the profile.
func (p *Profile) UpdateIncome(db *gorm.DB, income decimal.NullDecimal) error {
	return db.Model(p).Select("Income").Updates(Profile{Income: income}).Error
}
