// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package user

import (
	"context"
	"strings"

	"github.com/taskbrd/taskbrd/models/db"

	"xorm.io/builder"
)

// SearchUserOptions contains the options for searching
type SearchUserOptions struct {
	Keyword string // matched against email and full name, case-insensitively
	IsAdmin bool
}

func (opts *SearchUserOptions) toConds() builder.Cond {
	cond := builder.NewCond()
	if len(opts.Keyword) > 0 {
		lowerKeyword := "%" + strings.ToLower(opts.Keyword) + "%"
		cond = cond.And(builder.Or(
			builder.Like{"lower_email", lowerKeyword},
			builder.Like{"LOWER(full_name)", lowerKeyword},
		))
	}
	if opts.IsAdmin {
		cond = cond.And(builder.Eq{"is_admin": true})
	}
	return cond
}

// SearchUsers takes options and returns the matching users sorted by id
func SearchUsers(ctx context.Context, opts *SearchUserOptions) ([]*User, int64, error) {
	sess := db.GetEngine(ctx).Where(opts.toConds()).Asc("id")
	users := make([]*User, 0, 10)
	count, err := sess.FindAndCount(&users)
	return users, count, err
}
