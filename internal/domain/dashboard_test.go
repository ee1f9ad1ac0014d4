package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDashboardOpenDealsAndPipelineValue(t *testing.T) {
	d := Dashboard{
		Deals: []Deal{
			{ID: 1, Title: "Rollout", Value: 1000, Stage: DealStageNew},
			{ID: 2, Title: "Renewal", Value: 500, Stage: DealStageNegotiation},
			{ID: 3, Title: "Won already", Value: 9999, Stage: DealStageClosedWon},
			{ID: 4, Title: "Lost", Value: 250, Stage: DealStageClosedLost},
		},
	}

	open := d.OpenDeals()
	assert.Len(t, open, 2)
	assert.Equal(t, 1500.0, d.PipelineValue(), "closed deals do not count toward the pipeline")
}

func TestDashboardEmpty(t *testing.T) {
	var d Dashboard
	assert.Empty(t, d.OpenDeals())
	assert.Zero(t, d.PipelineValue())
}
