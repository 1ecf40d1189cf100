package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCampaignProgressPercentage(t *testing.T) {
	tests := []struct {
		name   string
		raised int64
		goal   int64
		want   int
	}{
		{"zero raised", 0, 1000, 0},
		{"exact half", 500, 1000, 50},
		{"rounds down", 333, 1000, 33},
		{"rounds up", 335, 1000, 34},
		{"rounds half up", 125, 1000, 13},
		{"over goal keeps going", 1500, 1000, 150},
		{"zero goal", 100, 0, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := Campaign{RaisedAmount: tc.raised, GoalAmount: tc.goal}
			assert.Equal(t, tc.want, c.ProgressPercentage())
		})
	}
}

func TestCampaignIsGoalReached(t *testing.T) {
	assert.False(t, (&Campaign{RaisedAmount: 999, GoalAmount: 1000}).IsGoalReached())
	assert.True(t, (&Campaign{RaisedAmount: 1000, GoalAmount: 1000}).IsGoalReached())
	assert.True(t, (&Campaign{RaisedAmount: 1200, GoalAmount: 1000}).IsGoalReached())
}

func TestCampaignValidate(t *testing.T) {
	valid := func() Campaign {
		return Campaign{
			Title:       "Clean Water",
			Description: "Wells for the village",
			Category:    CategoryHealth,
			GoalAmount:  5000,
			Status:      CampaignActive,
			CreatedBy:   "ngo-1",
		}
	}

	c := valid()
	assert.NoError(t, c.Validate())

	c = valid()
	c.Title = "   "
	assert.Error(t, c.Validate())

	c = valid()
	c.Category = "crypto"
	assert.Error(t, c.Validate())

	c = valid()
	c.GoalAmount = 0
	assert.Error(t, c.Validate())
}

func TestCampaignUpdateValidate(t *testing.T) {
	str := func(s string) *string { return &s }

	assert.NoError(t, (&CampaignUpdate{}).Validate())
	assert.NoError(t, (&CampaignUpdate{Title: str("New title")}).Validate())
	assert.Error(t, (&CampaignUpdate{Title: str("  ")}).Validate())

	badCategory := Category("crypto")
	assert.Error(t, (&CampaignUpdate{Category: &badCategory}).Validate())

	badGoal := int64(-5)
	assert.Error(t, (&CampaignUpdate{GoalAmount: &badGoal}).Validate())

	badStatus := CampaignStatus("archived")
	assert.Error(t, (&CampaignUpdate{Status: &badStatus}).Validate())

	closed := CampaignClosed
	assert.NoError(t, (&CampaignUpdate{Status: &closed}).Validate())
}
