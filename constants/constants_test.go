package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SHEETS_TABLE", "")

	assert := assert.New(t)
	assert.Equal("8080", GetPort())
	assert.Equal("transposer-sheets", GetSheetsTable())
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DYNAMO_ENDPOINT", "http://dynamo:8000")

	assert := assert.New(t)
	assert.Equal("9090", GetPort())
	assert.Equal("http://dynamo:8000", GetDynamoEndpoint())
}
