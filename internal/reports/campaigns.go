package reports

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"donatehub/internal/domain"
	"donatehub/internal/policy"
	"donatehub/internal/query"
	"donatehub/internal/sqlinline"
)

// campaignSortColumns maps the client-facing sort fields to columns. Any
// other input falls back to newest-first.
var campaignSortColumns = map[string]string{
	"createdAt":    "c.created_at",
	"updatedAt":    "c.updated_at",
	"title":        "c.title",
	"goalAmount":   "c.goal_amount",
	"raisedAmount": "c.raised_amount",
}

// CampaignFilters narrows the public campaign listing.
type CampaignFilters struct {
	Status   domain.CampaignStatus
	Category string
	Search   string
}

// CampaignSummary is one row of a campaign listing, annotated with progress
// and creator display info.
type CampaignSummary struct {
	ID                 string         `json:"id"`
	Title              string         `json:"title"`
	Description        string         `json:"description"`
	Category           string         `json:"category"`
	GoalAmount         int64          `json:"goalAmount"`
	RaisedAmount       int64          `json:"raisedAmount"`
	Status             string         `json:"status"`
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
	Creator            domain.UserRef `json:"creator"`
	ProgressPercentage int            `json:"progressPercentage"`
	IsGoalReached      bool           `json:"isGoalReached"`
}

// CampaignList is a page of campaigns plus the pagination envelope.
type CampaignList struct {
	Campaigns  []CampaignSummary `json:"campaigns"`
	Pagination query.Pagination  `json:"pagination"`
}

// ListCampaigns returns the public paginated listing. Status defaults to
// active; category and substring search are optional.
func (s *Service) ListCampaigns(ctx context.Context, filters CampaignFilters, q query.ListQuery) (*CampaignList, error) {
	q = q.Clamp()
	if filters.Status == "" {
		filters.Status = domain.CampaignActive
	}
	if !filters.Status.Valid() {
		return nil, domain.NewValidation("status must be either active or closed")
	}
	if filters.Category != "" && !domain.Category(filters.Category).Valid() {
		return nil, domain.NewValidation("category must be one of: health, education, disaster, others")
	}

	order := q.OrderClause(campaignSortColumns, "c.created_at desc")
	pattern := likePattern(filters.Search)

	rows, err := s.sql.Query(ctx, fmt.Sprintf(sqlinline.QListCampaigns, order),
		string(filters.Status), filters.Category, pattern, q.Limit, q.Offset())
	if err != nil {
		return nil, &domain.InternalError{Err: err}
	}
	defer rows.Close()

	campaigns := []CampaignSummary{}
	for rows.Next() {
		var c CampaignSummary
		err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.Category, &c.GoalAmount,
			&c.RaisedAmount, &c.Status, &c.CreatedAt, &c.UpdatedAt,
			&c.Creator.ID, &c.Creator.FullName, &c.Creator.Username,
			&c.ProgressPercentage, &c.IsGoalReached)
		if err != nil {
			return nil, &domain.InternalError{Err: err}
		}
		campaigns = append(campaigns, c)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.InternalError{Err: err}
	}

	var total int64
	row := s.sql.QueryRow(ctx, sqlinline.QCountCampaigns,
		string(filters.Status), filters.Category, pattern)
	if err := row.Scan(&total); err != nil {
		return nil, &domain.InternalError{Err: err}
	}

	return &CampaignList{Campaigns: campaigns, Pagination: query.NewPagination(total, q)}, nil
}

// CampaignDetail is a single campaign with its live donation count.
type CampaignDetail struct {
	CampaignSummary
	DonationsCount int64 `json:"donationsCount"`
}

// CampaignByID loads one campaign with progress annotations and a live
// count of its donations.
func (s *Service) CampaignByID(ctx context.Context, campaignID string) (*CampaignDetail, error) {
	if _, err := uuid.Parse(campaignID); err != nil {
		return nil, domain.NewValidation("invalid campaign ID")
	}

	var c CampaignDetail
	var createdBy string
	row := s.sql.QueryRow(ctx, sqlinline.QSelectCampaignByID, campaignID)
	err := row.Scan(&c.ID, &c.Title, &c.Description, &c.Category, &c.GoalAmount,
		&c.RaisedAmount, &c.Status, &createdBy, &c.CreatedAt, &c.UpdatedAt,
		&c.Creator.FullName, &c.Creator.Username)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.NewNotFound("campaign not found")
	}
	if err != nil {
		return nil, &domain.InternalError{Err: err}
	}
	c.Creator.ID = createdBy
	c.ProgressPercentage = progressPercent(c.RaisedAmount, c.GoalAmount)
	c.IsGoalReached = c.RaisedAmount >= c.GoalAmount

	row = s.sql.QueryRow(ctx, sqlinline.QCountDonationsByCampaign, campaignID)
	if err := row.Scan(&c.DonationsCount); err != nil {
		return nil, &domain.InternalError{Err: err}
	}
	return &c, nil
}

// OwnCampaign is one row of an NGO's own campaign listing.
type OwnCampaign struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	Category           string    `json:"category"`
	GoalAmount         int64     `json:"goalAmount"`
	RaisedAmount       int64     `json:"raisedAmount"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
	DonationsCount     int64     `json:"donationsCount"`
	ProgressPercentage int       `json:"progressPercentage"`
	IsGoalReached      bool      `json:"isGoalReached"`
}

// OwnCampaignList is a page of the NGO's campaigns.
type OwnCampaignList struct {
	Campaigns  []OwnCampaign    `json:"campaigns"`
	Pagination query.Pagination `json:"pagination"`
}

// OwnCampaigns lists the authenticated NGO's campaigns newest-first with
// per-campaign donation counts, optionally filtered by status.
func (s *Service) OwnCampaigns(ctx context.Context, p domain.Principal, status string, q query.ListQuery) (*OwnCampaignList, error) {
	if err := policy.AllowRole(p, domain.RoleNGO); err != nil {
		return nil, err
	}
	q = q.Clamp()
	if status != "" && !domain.CampaignStatus(status).Valid() {
		status = ""
	}

	rows, err := s.sql.Query(ctx, sqlinline.QListOwnCampaigns, p.ID, status, q.Limit, q.Offset())
	if err != nil {
		return nil, &domain.InternalError{Err: err}
	}
	defer rows.Close()

	campaigns := []OwnCampaign{}
	for rows.Next() {
		var c OwnCampaign
		err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.Category, &c.GoalAmount,
			&c.RaisedAmount, &c.Status, &c.CreatedAt, &c.UpdatedAt,
			&c.DonationsCount, &c.ProgressPercentage, &c.IsGoalReached)
		if err != nil {
			return nil, &domain.InternalError{Err: err}
		}
		campaigns = append(campaigns, c)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.InternalError{Err: err}
	}

	var total int64
	if err := s.sql.QueryRow(ctx, sqlinline.QCountOwnCampaigns, p.ID, status).Scan(&total); err != nil {
		return nil, &domain.InternalError{Err: err}
	}

	return &OwnCampaignList{Campaigns: campaigns, Pagination: query.NewPagination(total, q)}, nil
}

// CategoryStats returns the per-category rollup with every category
// present, zero-filled when it has no campaigns.
func (s *Service) CategoryStats(ctx context.Context) ([]CategoryStat, error) {
	rows, err := s.sql.Query(ctx, sqlinline.QCategoryStats)
	if err != nil {
		return nil, &domain.InternalError{Err: err}
	}
	defer rows.Close()

	byName := map[string]CategoryStat{}
	for rows.Next() {
		var stat CategoryStat
		if err := rows.Scan(&stat.Name, &stat.Count, &stat.TotalRaised, &stat.TotalGoal); err != nil {
			return nil, &domain.InternalError{Err: err}
		}
		byName[stat.Name] = stat
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.InternalError{Err: err}
	}

	stats := make([]CategoryStat, 0, len(domain.Categories()))
	for _, category := range domain.Categories() {
		stat, ok := byName[string(category)]
		if !ok {
			stat = CategoryStat{Name: string(category)}
		}
		stats = append(stats, stat)
	}
	return stats, nil
}
