package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserPasswordIsWriteOnly(t *testing.T) {
	data, err := json.Marshal(User{ID: 1, Name: "Ada", Email: "ada@example.com", Role: RoleAdmin})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "password")
}
