// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package unittest

import (
	"math"

	"github.com/taskbrd/taskbrd/models/db"

	"github.com/stretchr/testify/assert"
	"xorm.io/builder"
)

// NonexistentID an ID that will never exist
const NonexistentID = int64(math.MaxInt64)

func whereConditions(e db.Engine, conditions []any) db.Engine {
	for _, condition := range conditions {
		e = e.Where(condition)
	}
	// query must have the "ORDER BY", otherwise the result is not deterministic
	return e.OrderBy("id")
}

// LoadBeanIfExists loads beans with conditions into it if exists
func LoadBeanIfExists(bean any, conditions ...any) (bool, error) {
	e := db.GetEngine(db.DefaultContext)
	return whereConditions(e, conditions).Get(bean)
}

// AssertExistsAndLoadBean assert that a bean exists and load it from the test database
func AssertExistsAndLoadBean[T any](t assert.TestingT, bean T, conditions ...any) T {
	exists, err := LoadBeanIfExists(bean, conditions...)
	assert.NoError(t, err)
	assert.True(t, exists,
		"Expected to find %+v (of type %T, with conditions %+v), but did not",
		bean, bean, conditions)
	return bean
}

// GetCount get the count of a bean
func GetCount(t assert.TestingT, bean any, conditions ...any) int {
	e := db.GetEngine(db.DefaultContext)
	for _, condition := range conditions {
		e = e.Where(condition)
	}
	count, err := e.Count(bean)
	assert.NoError(t, err)
	return int(count)
}

// GetCountByCond get the count of database entries matching cond
func GetCountByCond(t assert.TestingT, tableName string, cond builder.Cond) int64 {
	e := db.GetEngine(db.DefaultContext)
	count, err := e.Table(tableName).Where(cond).Count()
	assert.NoError(t, err)
	return count
}

// AssertCountByCond test the count of database entries matching cond
func AssertCountByCond(t assert.TestingT, tableName string, cond builder.Cond, expected int) bool {
	return assert.EqualValues(t, expected, GetCountByCond(t, tableName, cond),
		"Failed consistency test, the counted entries (of table %s) was %+v", tableName, cond)
}

// AssertNotExistsBean assert that a bean does not exist in the test database
func AssertNotExistsBean(t assert.TestingT, bean any, conditions ...any) {
	exists, err := LoadBeanIfExists(bean, conditions...)
	assert.NoError(t, err)
	assert.False(t, exists)
}

// AssertCount assert the count of a bean
func AssertCount(t assert.TestingT, bean, expected any) bool {
	return assert.EqualValues(t, expected, GetCount(t, bean))
}
