// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemaforge Authors

package sqlcat

import (
	// Database drivers registered for Open.
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
)
