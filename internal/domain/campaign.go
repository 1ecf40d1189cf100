package domain

import (
	"math"
	"strings"
	"time"
)

// Category enumerates campaign categories.
type Category string

const (
	CategoryHealth    Category = "health"
	CategoryEducation Category = "education"
	CategoryDisaster  Category = "disaster"
	CategoryOthers    Category = "others"
)

// Categories lists every category in display order.
func Categories() []Category {
	return []Category{CategoryHealth, CategoryEducation, CategoryDisaster, CategoryOthers}
}

// Valid reports whether the category is one of the supported values.
func (c Category) Valid() bool {
	switch c {
	case CategoryHealth, CategoryEducation, CategoryDisaster, CategoryOthers:
		return true
	}
	return false
}

// CampaignStatus enumerates campaign lifecycle states. The exposed API only
// moves campaigns from active to closed; there is no reopen operation.
type CampaignStatus string

const (
	CampaignActive CampaignStatus = "active"
	CampaignClosed CampaignStatus = "closed"
)

// Valid reports whether the status is one of the supported values.
func (s CampaignStatus) Valid() bool {
	return s == CampaignActive || s == CampaignClosed
}

// Campaign is a fundraising goal owned by one NGO. RaisedAmount is a
// materialized aggregate over the donation ledger, maintained inside the
// same transaction as each donation insert.
type Campaign struct {
	ID           string
	Title        string
	Description  string
	Category     Category
	GoalAmount   int64
	RaisedAmount int64
	Status       CampaignStatus
	CreatedBy    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ProgressPercentage returns raised/goal as a whole percentage, 0 when the
// goal amount is zero.
func (c *Campaign) ProgressPercentage() int {
	if c.GoalAmount <= 0 {
		return 0
	}
	return int(math.Round(float64(c.RaisedAmount) / float64(c.GoalAmount) * 100))
}

// IsGoalReached reports whether the raised total has met or passed the goal.
func (c *Campaign) IsGoalReached() bool {
	return c.RaisedAmount >= c.GoalAmount
}

// Validate enforces schema-level invariants before persistence.
func (c *Campaign) Validate() error {
	if strings.TrimSpace(c.Title) == "" || strings.TrimSpace(c.Description) == "" {
		return NewValidation("all fields (title, description, category, goalAmount) are required")
	}
	if !c.Category.Valid() {
		return NewValidation("category must be one of: health, education, disaster, others")
	}
	if c.GoalAmount <= 0 {
		return NewValidation("goal amount must be greater than 0")
	}
	if c.RaisedAmount < 0 {
		return NewValidation("raised amount cannot be negative")
	}
	if c.Status != "" && !c.Status.Valid() {
		return NewValidation("status must be either active or closed")
	}
	return nil
}

// CampaignUpdate carries a partial update; nil fields are left unchanged.
type CampaignUpdate struct {
	Title       *string
	Description *string
	Category    *Category
	GoalAmount  *int64
	Status      *CampaignStatus
}

// Validate checks the provided fields only.
func (u *CampaignUpdate) Validate() error {
	if u.Title != nil && strings.TrimSpace(*u.Title) == "" {
		return NewValidation("title cannot be empty")
	}
	if u.Description != nil && strings.TrimSpace(*u.Description) == "" {
		return NewValidation("description cannot be empty")
	}
	if u.Category != nil && !u.Category.Valid() {
		return NewValidation("category must be one of: health, education, disaster, others")
	}
	if u.GoalAmount != nil && *u.GoalAmount <= 0 {
		return NewValidation("goal amount must be greater than 0")
	}
	if u.Status != nil && !u.Status.Valid() {
		return NewValidation("status must be either active or closed")
	}
	return nil
}
