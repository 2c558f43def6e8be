// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemaforge Authors

package avsc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schemaforge/cli/internal/avro"
)

func TestEmit_ValidSchema(t *testing.T) {
	entries, err := avro.Parse([]byte(`{
		"type": "record",
		"name": "User",
		"fields": [
			{"name": "id", "type": "long"},
			{"name": "email", "type": ["null", "string"], "default": null}
		]
	}`))
	require.NoError(t, err)

	out, err := (&Emitter{}).Emit("user", entries, "")
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"type": "record",
		"name": "User",
		"fields": [
			{"name": "id", "type": "long"},
			{"name": "email", "type": ["null", "string"], "default": null}
		]
	}`, string(out))
}

func TestEmit_OrderedSequenceCompiles(t *testing.T) {
	entries, err := avro.Parse([]byte(`[
		{"type": "record", "name": "Address", "fields": [
			{"name": "street", "type": "string"}
		]},
		{"type": "record", "name": "User", "fields": [
			{"name": "address", "type": "Address"}
		]}
	]`))
	require.NoError(t, err)

	_, err = (&Emitter{}).Emit("user", entries, "")
	assert.NoError(t, err)
}

func TestEmit_DanglingReferenceRejected(t *testing.T) {
	entries, err := avro.Parse([]byte(`{
		"type": "record",
		"name": "User",
		"fields": [{"name": "address", "type": "Address"}]
	}`))
	require.NoError(t, err)

	_, err = (&Emitter{}).Emit("user", entries, "")
	assert.ErrorContains(t, err, "not valid Avro")
}

func TestEmitterMetadata(t *testing.T) {
	e := &Emitter{}
	assert.Equal(t, "avro", e.Name())
	assert.Equal(t, ".avsc", e.FileExtension())
}
