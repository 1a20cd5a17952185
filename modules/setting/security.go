// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	ini "gopkg.in/ini.v1"
)

// Security settings
var (
	MinPasswordLength int
	// PasswordHashCost is the bcrypt work factor for new password hashes
	PasswordHashCost int
)

func loadSecurityFrom(rootCfg *ini.File) {
	sec := rootCfg.Section("security")
	MinPasswordLength = sec.Key("MIN_PASSWORD_LENGTH").MustInt(8)
	PasswordHashCost = sec.Key("PASSWORD_HASH_COST").MustInt(10)
}
