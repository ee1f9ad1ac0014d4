package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLeadStatus(t *testing.T) {
	for _, valid := range []string{"New", "Contacted", "Qualified", "Lost", "Converted"} {
		status, err := NewLeadStatus(valid)
		require.NoError(t, err, valid)
		assert.Equal(t, valid, status.String())
	}

	for _, invalid := range []string{"", "new", "Open", "CONVERTED"} {
		_, err := NewLeadStatus(invalid)
		assert.Error(t, err, "%q must be rejected", invalid)
	}
}
