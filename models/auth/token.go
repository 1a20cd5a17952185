// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package auth holds the access token model. A token is an opaque 40 char hex
// string handed out at registration and login; only a salted hash of it is
// stored.
package auth

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"github.com/taskbrd/taskbrd/models/db"
	"github.com/taskbrd/taskbrd/modules/base"
	"github.com/taskbrd/taskbrd/modules/timeutil"
	"github.com/taskbrd/taskbrd/modules/util"

	gouuid "github.com/google/uuid"
	"golang.org/x/crypto/pbkdf2"
)

// AccessToken represents an API access token bound to a user.
type AccessToken struct {
	ID             int64  `xorm:"pk autoincr"`
	UID            int64  `xorm:"INDEX"`
	Token          string `xorm:"-"`
	TokenHash      string `xorm:"UNIQUE"` // sha256 of token
	TokenSalt      string
	TokenLastEight string `xorm:"INDEX token_last_eight"`

	CreatedUnix timeutil.TimeStamp `xorm:"INDEX created"`
	UpdatedUnix timeutil.TimeStamp `xorm:"INDEX updated"`
}

func init() {
	db.RegisterModel(new(AccessToken))
}

// NewAccessToken creates new access token. The plain token value is only
// available on t.Token right after creation.
func NewAccessToken(ctx context.Context, t *AccessToken) error {
	salt, err := util.CryptoRandomString(10)
	if err != nil {
		return err
	}
	t.TokenSalt = salt
	t.Token = base.EncodeSha1(gouuid.New().String())
	t.TokenHash = HashToken(t.Token, t.TokenSalt)
	t.TokenLastEight = t.Token[len(t.Token)-8:]
	_, err = db.GetEngine(ctx).Insert(t)
	return err
}

// HashToken hashes the token with the salt
func HashToken(token, salt string) string {
	tempHash := pbkdf2.Key([]byte(token), []byte(salt), 10000, 50, sha256.New)
	return hex.EncodeToString(tempHash)
}

// GetAccessTokenBySHA returns access token by given token value
func GetAccessTokenBySHA(ctx context.Context, token string) (*AccessToken, error) {
	if token == "" {
		return nil, ErrAccessTokenEmpty{}
	}
	// A token is defined as being SHA1 sized, hex encoded
	if len(token) != 40 {
		return nil, ErrAccessTokenNotExist{token}
	}
	for _, x := range []byte(token) {
		if x < '0' || (x > '9' && x < 'a') || x > 'f' {
			return nil, ErrAccessTokenNotExist{token}
		}
	}

	lastEight := token[len(token)-8:]

	tokens := make([]AccessToken, 0, 1)
	err := db.GetEngine(ctx).Where("token_last_eight = ?", lastEight).Find(&tokens)
	if err != nil {
		return nil, err
	} else if len(tokens) == 0 {
		return nil, ErrAccessTokenNotExist{token}
	}

	for _, t := range tokens {
		tempHash := HashToken(token, t.TokenSalt)
		if subtle.ConstantTimeCompare([]byte(t.TokenHash), []byte(tempHash)) == 1 {
			return &t, nil
		}
	}
	return nil, ErrAccessTokenNotExist{token}
}

// UpdateAccessToken updates information of access token. Touching the token
// through xorm refreshes UpdatedUnix, which records when it was last used.
func UpdateAccessToken(ctx context.Context, t *AccessToken) error {
	_, err := db.GetEngine(ctx).ID(t.ID).AllCols().Update(t)
	return err
}

// CountAccessTokens counts a user's access tokens
func CountAccessTokens(ctx context.Context, uid int64) (int64, error) {
	return db.GetEngine(ctx).Count(&AccessToken{UID: uid})
}

// DeleteAccessTokenByID deletes access token by given ID.
func DeleteAccessTokenByID(ctx context.Context, id, userID int64) error {
	cnt, err := db.GetEngine(ctx).ID(id).Delete(&AccessToken{
		UID: userID,
	})
	if err != nil {
		return err
	} else if cnt != 1 {
		return ErrAccessTokenNotExist{}
	}
	return nil
}

// ErrAccessTokenNotExist represents a "AccessTokenNotExist" kind of error.
type ErrAccessTokenNotExist struct {
	Token string
}

// IsErrAccessTokenNotExist checks if an error is a ErrAccessTokenNotExist.
func IsErrAccessTokenNotExist(err error) bool {
	_, ok := err.(ErrAccessTokenNotExist)
	return ok
}

func (err ErrAccessTokenNotExist) Error() string {
	return fmt.Sprintf("access token does not exist [sha: %s]", err.Token)
}

// Unwrap unwraps this error as a ErrNotExist error
func (err ErrAccessTokenNotExist) Unwrap() error {
	return util.ErrNotExist
}

// ErrAccessTokenEmpty represents a "AccessTokenEmpty" kind of error.
type ErrAccessTokenEmpty struct{}

// IsErrAccessTokenEmpty checks if an error is a ErrAccessTokenEmpty.
func IsErrAccessTokenEmpty(err error) bool {
	_, ok := err.(ErrAccessTokenEmpty)
	return ok
}

func (err ErrAccessTokenEmpty) Error() string {
	return "access token is empty"
}

// Unwrap unwraps this error as a ErrInvalidArgument error
func (err ErrAccessTokenEmpty) Unwrap() error {
	return util.ErrInvalidArgument
}
