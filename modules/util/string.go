// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package util

import (
	"crypto/rand"
	"math/big"
)

const alphanumericalChars = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// CryptoRandomString generates a crypto random alphanumerical string, each char is generated from the [0,61] range
func CryptoRandomString(length int64) (string, error) {
	buf := make([]byte, length)
	limit := big.NewInt(int64(len(alphanumericalChars)))
	for i := range buf {
		num, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		buf[i] = alphanumericalChars[num.Int64()]
	}
	return string(buf), nil
}

// OptionalArg returns the first item of an optional arg, or the default value if none was passed
func OptionalArg[T any](arg []T, defaultValue ...T) (ret T) {
	if len(arg) >= 1 {
		return arg[0]
	}
	if len(defaultValue) >= 1 {
		return defaultValue[0]
	}
	return ret
}
