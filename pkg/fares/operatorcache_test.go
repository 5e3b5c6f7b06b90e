package fares

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCachedOperator(t *testing.T) {
	cached, err := json.Marshal(&Operator{
		OperatorCode: "TEST",
		LegalName:    "Test Buses Ltd",
	})
	require.NoError(t, err)

	operator := decodeCachedOperator(string(cached))
	require.NotNil(t, operator)
	assert.Equal(t, "TEST", operator.OperatorCode)
	assert.Equal(t, "Test Buses Ltd", operator.LegalName)
}

func TestDecodeCachedOperatorCorruptedEntry(t *testing.T) {
	// corrupted entries must read as a miss, never as a nil operator hit
	assert.Nil(t, decodeCachedOperator("null"))
	assert.Nil(t, decodeCachedOperator(""))
	assert.Nil(t, decodeCachedOperator("{truncated"))
}
