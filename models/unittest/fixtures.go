// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package unittest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/taskbrd/taskbrd/models/db"

	"gopkg.in/yaml.v3"
)

// FixturesOptions fixtures needs to be loaded options
type FixturesOptions struct {
	Dir   string
	Files []string
}

var fixtureFiles []string

// InitFixtures initialize test fixtures for a test database
func InitFixtures(opts FixturesOptions) error {
	if len(opts.Files) != 0 {
		fixtureFiles = make([]string, 0, len(opts.Files))
		for _, f := range opts.Files {
			fixtureFiles = append(fixtureFiles, filepath.Join(opts.Dir, f))
		}
	} else {
		matches, err := filepath.Glob(filepath.Join(opts.Dir, "*.yml"))
		if err != nil {
			return err
		}
		fixtureFiles = matches
	}

	for _, f := range fixtureFiles {
		if _, err := os.Stat(f); err != nil {
			return fmt.Errorf("missing fixture file %q: %w", f, err)
		}
	}
	return LoadFixtures()
}

// LoadFixtures load fixtures for a test database. The fixture tables are
// wiped first, so every test starts from the same rows.
func LoadFixtures() error {
	e := db.GetEngine(db.DefaultContext)
	for _, file := range fixtureFiles {
		tableName := strings.TrimSuffix(filepath.Base(file), ".yml")

		if _, err := e.Exec(fmt.Sprintf("DELETE FROM `%s`", tableName)); err != nil {
			return fmt.Errorf("unable to wipe table %q: %w", tableName, err)
		}

		rows, err := loadFixtureFile(file)
		if err != nil {
			return err
		}
		for _, row := range rows {
			if _, err := e.Table(tableName).Insert(row); err != nil {
				return fmt.Errorf("unable to insert fixture row into %q: %w", tableName, err)
			}
		}
	}
	return nil
}

func loadFixtureFile(file string) ([]map[string]any, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	var rows []map[string]any
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("unable to parse fixture file %q: %w", file, err)
	}
	return rows, nil
}
