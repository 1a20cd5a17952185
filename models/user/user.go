// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package user holds the identity model. Users are identified by their email
// address; the address is matched case-insensitively through the LowerEmail
// column.
package user

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/taskbrd/taskbrd/models/db"
	"github.com/taskbrd/taskbrd/modules/setting"
	"github.com/taskbrd/taskbrd/modules/timeutil"
	"github.com/taskbrd/taskbrd/modules/util"

	"golang.org/x/crypto/bcrypt"
)

// User represents the object of an individual.
type User struct {
	ID         int64  `xorm:"pk autoincr"`
	Email      string `xorm:"NOT NULL"`
	LowerEmail string `xorm:"UNIQUE NOT NULL"`
	FullName   string
	Passwd     string `xorm:"NOT NULL"`
	IsAdmin    bool

	CreatedUnix timeutil.TimeStamp `xorm:"INDEX created"`
	UpdatedUnix timeutil.TimeStamp `xorm:"INDEX updated"`
}

func init() {
	db.RegisterModel(new(User))
}

// DisplayName returns the full name when set, otherwise the email address
func (u *User) DisplayName() string {
	if fullName := strings.TrimSpace(u.FullName); fullName != "" {
		return fullName
	}
	return u.Email
}

// SetPassword hashes a password using bcrypt and updates the password field
func (u *User) SetPassword(passwd string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(passwd), setting.PasswordHashCost)
	if err != nil {
		return err
	}
	u.Passwd = string(hashed)
	return nil
}

// ValidatePassword checks if the given password matches the one belonging to the user
func (u *User) ValidatePassword(passwd string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Passwd), []byte(passwd)) == nil
}

// NormalizeEmail lower-cases and trims an email address for comparison
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail check if the email address complies with RFC 5322
func ValidateEmail(email string) error {
	if len(email) == 0 {
		return ErrEmailInvalid{email}
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ErrEmailInvalid{email}
	}
	return nil
}

// IsEmailUsed returns true if the email has been used by any user
func IsEmailUsed(ctx context.Context, email string) (bool, error) {
	if len(email) == 0 {
		return true, nil
	}
	return db.GetEngine(ctx).Exist(&User{LowerEmail: NormalizeEmail(email)})
}

// CreateUser creates the record of a new user.
// The caller is responsible for hashing the password beforehand via SetPassword.
func CreateUser(ctx context.Context, u *User) error {
	if err := ValidateEmail(u.Email); err != nil {
		return err
	}
	u.Email = strings.TrimSpace(u.Email)
	u.LowerEmail = NormalizeEmail(u.Email)

	return db.WithTx(ctx, func(ctx context.Context) error {
		isExist, err := IsEmailUsed(ctx, u.Email)
		if err != nil {
			return err
		} else if isExist {
			return ErrEmailAlreadyUsed{Email: u.Email}
		}

		return db.Insert(ctx, u)
	})
}

// GetUserByID returns the user object by given ID if exists.
func GetUserByID(ctx context.Context, id int64) (*User, error) {
	u := new(User)
	has, err := db.GetEngine(ctx).ID(id).Get(u)
	if err != nil {
		return nil, err
	} else if !has {
		return nil, ErrUserNotExist{UID: id}
	}
	return u, nil
}

// GetUserByIDs returns users by their IDs, ordered by id
func GetUserByIDs(ctx context.Context, ids []int64) ([]*User, error) {
	users := make([]*User, 0, len(ids))
	err := db.GetEngine(ctx).In("id", ids).
		Asc("id").
		Find(&users)
	return users, err
}

// GetUserByEmail returns the user object by given email if exists,
// matched case-insensitively.
func GetUserByEmail(ctx context.Context, email string) (*User, error) {
	if len(email) == 0 {
		return nil, ErrUserNotExist{Email: email}
	}

	u := &User{LowerEmail: NormalizeEmail(email)}
	has, err := db.GetByBean(ctx, u)
	if err != nil {
		return nil, err
	} else if !has {
		return nil, ErrUserNotExist{Email: email}
	}
	return u, nil
}

// UpdateUserCols update user according special columns
func UpdateUserCols(ctx context.Context, u *User, cols ...string) error {
	_, err := db.GetEngine(ctx).ID(u.ID).Cols(cols...).Update(u)
	return err
}

// CountUsers returns number of users.
func CountUsers(ctx context.Context) (int64, error) {
	return db.GetEngine(ctx).Count(new(User))
}

// ErrUserNotExist represents a "UserNotExist" kind of error.
type ErrUserNotExist struct {
	UID   int64
	Email string
}

// IsErrUserNotExist checks if an error is a ErrUserNotExist.
func IsErrUserNotExist(err error) bool {
	_, ok := err.(ErrUserNotExist)
	return ok
}

func (err ErrUserNotExist) Error() string {
	return fmt.Sprintf("user does not exist [uid: %d, email: %s]", err.UID, err.Email)
}

// Unwrap unwraps this error as a ErrNotExist error
func (err ErrUserNotExist) Unwrap() error {
	return util.ErrNotExist
}

// ErrEmailAlreadyUsed represents a "EmailAlreadyUsed" kind of error.
type ErrEmailAlreadyUsed struct {
	Email string
}

// IsErrEmailAlreadyUsed checks if an error is a ErrEmailAlreadyUsed.
func IsErrEmailAlreadyUsed(err error) bool {
	_, ok := err.(ErrEmailAlreadyUsed)
	return ok
}

func (err ErrEmailAlreadyUsed) Error() string {
	return fmt.Sprintf("e-mail already in use [email: %s]", err.Email)
}

// Unwrap unwraps this error as a ErrAlreadyExist error
func (err ErrEmailAlreadyUsed) Unwrap() error {
	return util.ErrAlreadyExist
}

// ErrEmailInvalid represents an error where the email address does not comply with RFC 5322
type ErrEmailInvalid struct {
	Email string
}

// IsErrEmailInvalid checks if an error is an ErrEmailInvalid
func IsErrEmailInvalid(err error) bool {
	_, ok := err.(ErrEmailInvalid)
	return ok
}

func (err ErrEmailInvalid) Error() string {
	return fmt.Sprintf("e-mail invalid [email: %s]", err.Email)
}

// Unwrap unwraps this error as a ErrInvalidArgument error
func (err ErrEmailInvalid) Unwrap() error {
	return util.ErrInvalidArgument
}
