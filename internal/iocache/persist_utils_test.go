package iocache

import (
	"testing"

	"github.com/inkwellhq/inkwell/schema"
)

// TestValidateTableName tests the validateTableName function with various inputs.
func TestValidateTableName(t *testing.T) {
	tests := []struct {
		name      string
		tableName string
		wantErr   bool
	}{
		{
			name:      "valid simple name",
			tableName: "inkwell_state",
			wantErr:   false,
		},
		{
			name:      "valid name with numbers",
			tableName: "state_v2",
			wantErr:   false,
		},
		{
			name:      "valid name starting with underscore",
			tableName: "_state",
			wantErr:   false,
		},
		{
			name:      "valid mixed case",
			tableName: "InkwellState_123",
			wantErr:   false,
		},
		{
			name:      "empty name",
			tableName: "",
			wantErr:   true,
		},
		{
			name:      "starts with number",
			tableName: "123_state",
			wantErr:   true,
		},
		{
			name:      "contains dash",
			tableName: "inkwell-state",
			wantErr:   true,
		},
		{
			name:      "contains space",
			tableName: "inkwell state",
			wantErr:   true,
		},
		{
			name:      "sql injection attempt",
			tableName: "state'; DROP TABLE users; --",
			wantErr:   true,
		},
		{
			name:      "contains dot",
			tableName: "inkwell.state",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTableName(tt.tableName)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateTableName(%q) error = %v, wantErr %v", tt.tableName, err, tt.wantErr)
			}
		})
	}
}

// TestQuoteTableName tests backend-specific identifier quoting.
func TestQuoteTableName(t *testing.T) {
	tests := []struct {
		name    string
		backend schema.DatabaseBackend
		want    string
	}{
		{
			name:    "mysql uses backticks",
			backend: schema.MySQLBackend,
			want:    "`inkwell_state`",
		},
		{
			name:    "postgresql uses double quotes",
			backend: schema.PostgreSQLBackend,
			want:    `"inkwell_state"`,
		},
		{
			name:    "sqlite uses double quotes",
			backend: schema.SQLiteBackend,
			want:    `"inkwell_state"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := quoteTableName("inkwell_state", tt.backend); got != tt.want {
				t.Errorf("quoteTableName() = %s, want %s", got, tt.want)
			}
		})
	}
}

// TestGetPlaceholder tests backend-specific query placeholders.
func TestGetPlaceholder(t *testing.T) {
	if got := getPlaceholder(schema.PostgreSQLBackend); got != "$1" {
		t.Errorf("getPlaceholder(postgresql) = %s, want $1", got)
	}
	if got := getPlaceholder(schema.MySQLBackend); got != "?" {
		t.Errorf("getPlaceholder(mysql) = %s, want ?", got)
	}
	if got := getPlaceholder(schema.SQLiteBackend); got != "?" {
		t.Errorf("getPlaceholder(sqlite) = %s, want ?", got)
	}
}
