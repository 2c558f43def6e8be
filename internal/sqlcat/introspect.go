// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemaforge Authors

// Package sqlcat introspects relational catalogs through information_schema
// and converts table definitions into Avro type-node graphs.
package sqlcat

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/schemaforge/cli/internal/avro"
)

// Supported dialects.
const (
	DialectPostgres = "postgres"
	DialectMySQL    = "mysql"
)

// Column is one row of information_schema.columns, in ordinal position.
type Column struct {
	Table    string
	Name     string
	DataType string
	Nullable bool
}

// Open connects to a database for the given dialect.
func Open(dialect, dsn string) (*sql.DB, error) {
	switch dialect {
	case DialectPostgres, DialectMySQL:
		return sql.Open(driverName(dialect), dsn)
	default:
		return nil, fmt.Errorf("unsupported dialect %q", dialect)
	}
}

func driverName(dialect string) string {
	if dialect == DialectPostgres {
		return "postgres"
	}
	return "mysql"
}

// Introspect reads every table of schemaName and returns one record node per
// table, ready for avro.Sort. Tables carry no dependencies on each other:
// foreign keys relate rows, not type definitions.
func Introspect(ctx context.Context, db *sql.DB, dialect, schemaName, namespace string) ([]avro.Entry, error) {
	cols, err := queryColumns(ctx, db, dialect, schemaName)
	if err != nil {
		return nil, err
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("no tables found in schema %q", schemaName)
	}
	return Tables(cols, dialect, namespace), nil
}

func queryColumns(ctx context.Context, db *sql.DB, dialect, schemaName string) ([]Column, error) {
	query := `SELECT table_name, column_name, data_type, is_nullable
		FROM information_schema.columns
		WHERE table_schema = ?
		ORDER BY table_name, ordinal_position`
	if dialect == DialectPostgres {
		query = strings.Replace(query, "?", "$1", 1)
	}

	rows, err := db.QueryContext(ctx, query, schemaName)
	if err != nil {
		return nil, fmt.Errorf("failed to query information_schema: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var cols []Column
	for rows.Next() {
		var c Column
		var nullable string
		if err := rows.Scan(&c.Table, &c.Name, &c.DataType, &nullable); err != nil {
			return nil, err
		}
		c.Nullable = strings.EqualFold(nullable, "YES")
		cols = append(cols, c)
	}
	return cols, rows.Err()
}

// Tables groups columns into one record node per table, preserving the
// ordinal column order and the table order of the input.
func Tables(cols []Column, dialect, namespace string) []avro.Entry {
	var entries []avro.Entry
	var current *avro.Node

	for _, c := range cols {
		if current == nil || current.Name != c.Table {
			current = &avro.Node{
				Kind:      avro.KindRecord,
				Name:      c.Table,
				Namespace: namespace,
			}
			entries = append(entries, avro.Entry{Node: current})
		}

		expr := columnType(dialect, c.DataType)
		f := avro.Field{Name: c.Name, Type: expr}
		if c.Nullable {
			f.Type = avro.Union{avro.Ref("null"), expr}
		}
		current.Fields = append(current.Fields, f)
	}
	return entries
}

// columnType maps an information_schema data_type to an Avro expression.
func columnType(dialect, dataType string) avro.TypeExpr {
	switch strings.ToLower(dataType) {
	case "smallint", "integer", "int", "mediumint", "tinyint":
		return avro.Ref("int")
	case "bigint":
		return avro.Ref("long")
	case "real", "float":
		return avro.Ref("float")
	case "double precision", "double":
		return avro.Ref("double")
	case "numeric", "decimal":
		return &avro.Logical{Type: "bytes", LogicalType: "decimal", Precision: 38, Scale: 9}
	case "boolean", "bool":
		return avro.Ref("boolean")
	case "bytea", "blob", "binary", "varbinary":
		return avro.Ref("bytes")
	case "date":
		return &avro.Logical{Type: "int", LogicalType: "date"}
	case "timestamp", "timestamp without time zone", "timestamp with time zone", "datetime":
		return &avro.Logical{Type: "long", LogicalType: "timestamp-millis"}
	case "uuid":
		return &avro.Logical{Type: "string", LogicalType: "uuid"}
	case "json", "jsonb":
		return &avro.Map{Values: avro.Ref("string")}
	default:
		// text, varchar, char, enum renderings, and anything exotic.
		return avro.Ref("string")
	}
}
