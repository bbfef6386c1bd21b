// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// goose talks to the db itself; every statement fails
	mock.MatchExpectationsInOrder(false)

	err = Migrate(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNilDB))
	assert.Contains(t, err.Error(), "db is nil")
}

func TestEmbeddedMigrations_UsersTable(t *testing.T) {
	data, err := fs.ReadFile(embedMigrations, "00001_create_users.sql")
	require.NoError(t, err)

	sqlText := strings.ToLower(string(data))
	assert.Contains(t, sqlText, "-- +goose up")
	assert.Contains(t, sqlText, "-- +goose down")
	assert.Contains(t, sqlText, "create table if not exists users")
	assert.Contains(t, sqlText, "email              text        not null unique")
	assert.Contains(t, sqlText, "verification_token text unique")
	assert.Contains(t, sqlText, "(not verify) or verification_token is null")
}
