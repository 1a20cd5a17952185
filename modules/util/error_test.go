// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package util

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSilentWrap(t *testing.T) {
	err := NewNotExistErrorf("board %d does not exist", 42)
	assert.Equal(t, "board 42 does not exist", err.Error())
	assert.True(t, errors.Is(err, ErrNotExist))
	assert.False(t, errors.Is(err, ErrPermissionDenied))

	err = NewInvalidOperationErrorf("cannot remove owner")
	assert.True(t, errors.Is(err, ErrInvalidOperation))

	wrapped := NewSilentWrapErrorf(ErrPermissionDenied, "no access")
	assert.Equal(t, "no access", wrapped.Error())
	assert.True(t, errors.Is(wrapped, ErrPermissionDenied))
}

func TestCryptoRandomString(t *testing.T) {
	cases := []int64{0, 1, 16, 32, 127}
	for _, length := range cases {
		s, err := CryptoRandomString(length)
		assert.NoError(t, err)
		assert.Len(t, s, int(length))
	}

	// two draws colliding would mean the RNG is broken
	s1, err := CryptoRandomString(32)
	assert.NoError(t, err)
	s2, err := CryptoRandomString(32)
	assert.NoError(t, err)
	assert.NotEqual(t, s1, s2)
}
