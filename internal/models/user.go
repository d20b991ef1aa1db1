package models

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User is a registered account. It only exists so that tokens have a stable
// identity to point at, all resources hang off profiles.
type User struct {
	Model
	Email    string `json:"email" gorm:"uniqueIndex" example:"ana@example.com"`
	Password string `json:"-"`
}

// SetPassword hashes the cleartext password and stores the hash.
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u.Password = string(hash)
	return nil
}

// CheckPassword reports whether the cleartext password matches the stored hash.
func (u User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}

// CreateUser registers a new user. A duplicate email fails with ErrEmailTaken,
// translated by the create callback from the unique index on users.email.
func CreateUser(db *gorm.DB, email, password string) (User, error) {
	user := User{Email: email}

	err := user.SetPassword(password)
	if err != nil {
		return User{}, err
	}

	err = db.Create(&user).Error
	if err != nil {
		return User{}, err
	}

	return user, nil
}

// UserByLogin returns the user for an email and password combination.
//
// An unknown email and a wrong password fail with the same error so that
// responses do not reveal which of the two was wrong.
func UserByLogin(db *gorm.DB, email, password string) (User, error) {
	var user User
	err := db.First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return User{}, ErrLoginFailed
		}
		return User{}, err
	}

	if !user.CheckPassword(password) {
		return User{}, ErrLoginFailed
	}

	return user, nil
}
