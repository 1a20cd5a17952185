// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package unittest

import (
	"reflect"
	"strings"

	"github.com/taskbrd/taskbrd/models/db"

	"github.com/stretchr/testify/assert"
	"xorm.io/builder"
)

var (
	// these values are copied from the task package to prevent from cycle-import
	taskStatuses   = []string{"to-do", "in-progress", "review", "done"}
	taskPriorities = []string{"low", "medium", "high"}
)

var consistencyCheckMap = make(map[string]func(t assert.TestingT, bean any))

// CheckConsistencyFor test that all matching database entries are consistent
func CheckConsistencyFor(t assert.TestingT, beansToCheck ...any) {
	for _, bean := range beansToCheck {
		sliceType := reflect.SliceOf(reflect.TypeOf(bean))
		sliceValue := reflect.MakeSlice(sliceType, 0, 10)

		ptrToSliceValue := reflect.New(sliceType)
		ptrToSliceValue.Elem().Set(sliceValue)

		assert.NoError(t, db.GetEngine(db.DefaultContext).Table(bean).Find(ptrToSliceValue.Interface()))
		sliceValue = ptrToSliceValue.Elem()

		for i := 0; i < sliceValue.Len(); i++ {
			entity := sliceValue.Index(i).Interface()
			checkForConsistency(t, entity)
		}
	}
}

func checkForConsistency(t assert.TestingT, bean any) {
	tb, err := db.TableInfo(bean)
	assert.NoError(t, err)
	f := consistencyCheckMap[tb.Name]
	if f == nil {
		assert.Fail(t, "unknown bean type: %#v", bean)
		return
	}
	f(t, bean)
}

func init() {
	checkForUserConsistency := func(t assert.TestingT, bean any) {
		user := reflectionWrap(bean)
		assert.Equal(t, user.str("LowerEmail"), strings.ToLower(user.str("Email")), "user: %+v", user)
	}

	checkForBoardConsistency := func(t assert.TestingT, bean any) {
		board := reflectionWrap(bean)
		AssertCountByCond(t, "user", builder.Eq{"id": board.int("OwnerID")}, 1)
		// the owner is always a member of their own board
		AssertCountByCond(t, "board_member", builder.Eq{
			"board_id": board.int("ID"),
			"user_id":  board.int("OwnerID"),
		}, 1)
	}

	checkForBoardMemberConsistency := func(t assert.TestingT, bean any) {
		member := reflectionWrap(bean)
		AssertCountByCond(t, "board", builder.Eq{"id": member.int("BoardID")}, 1)
		AssertCountByCond(t, "user", builder.Eq{"id": member.int("UserID")}, 1)
	}

	checkForTaskConsistency := func(t assert.TestingT, bean any) {
		task := reflectionWrap(bean)
		AssertCountByCond(t, "board", builder.Eq{"id": task.int("BoardID")}, 1)
		assert.Contains(t, taskStatuses, task.str("Status"), "task: %+v", task)
		assert.Contains(t, taskPriorities, task.str("Priority"), "task: %+v", task)
		if task.int("AssigneeID") != 0 {
			AssertCountByCond(t, "user", builder.Eq{"id": task.int("AssigneeID")}, 1)
		}
		if task.int("ReviewerID") != 0 {
			AssertCountByCond(t, "user", builder.Eq{"id": task.int("ReviewerID")}, 1)
		}
	}

	checkForCommentConsistency := func(t assert.TestingT, bean any) {
		comment := reflectionWrap(bean)
		AssertCountByCond(t, "task", builder.Eq{"id": comment.int("TaskID")}, 1)
		AssertCountByCond(t, "user", builder.Eq{"id": comment.int("AuthorID")}, 1)
	}

	checkForAccessTokenConsistency := func(t assert.TestingT, bean any) {
		token := reflectionWrap(bean)
		AssertCountByCond(t, "user", builder.Eq{"id": token.int("UID")}, 1)
	}

	consistencyCheckMap["user"] = checkForUserConsistency
	consistencyCheckMap["board"] = checkForBoardConsistency
	consistencyCheckMap["board_member"] = checkForBoardMemberConsistency
	consistencyCheckMap["task"] = checkForTaskConsistency
	consistencyCheckMap["comment"] = checkForCommentConsistency
	consistencyCheckMap["access_token"] = checkForAccessTokenConsistency
}
