package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"donatehub/internal/domain"
	"donatehub/internal/infra"
	"donatehub/internal/sqlinline"
)

// CampaignRepository persists campaigns.
type CampaignRepository struct {
	sql infra.SQLExecutor
}

// NewCampaignRepository creates a new campaign repo over the SQL executor
// contract.
func NewCampaignRepository(sql infra.SQLExecutor) *CampaignRepository {
	return &CampaignRepository{sql: sql}
}

// Create inserts a new campaign and fills the generated id, defaults and
// timestamps.
func (r *CampaignRepository) Create(ctx context.Context, campaign *domain.Campaign) error {
	if err := campaign.Validate(); err != nil {
		return err
	}
	row := r.sql.QueryRow(ctx, sqlinline.QInsertCampaign,
		campaign.Title, campaign.Description, string(campaign.Category),
		campaign.GoalAmount, campaign.CreatedBy)
	err := row.Scan(&campaign.ID, &campaign.RaisedAmount, &campaign.Status,
		&campaign.CreatedAt, &campaign.UpdatedAt)
	if err != nil {
		return &domain.InternalError{Err: err}
	}
	return nil
}

// State loads only the owner and lifecycle status, enough for precondition
// checks without pulling the whole row.
func (r *CampaignRepository) State(ctx context.Context, id string) (ownerID string, status domain.CampaignStatus, err error) {
	row := r.sql.QueryRow(ctx, sqlinline.QSelectCampaignState, id)
	err = row.Scan(&ownerID, &status)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", "", domain.NewNotFound("campaign not found")
	}
	if err != nil {
		return "", "", &domain.InternalError{Err: err}
	}
	return ownerID, status, nil
}

// Update applies a partial update; nil fields keep their current value.
func (r *CampaignRepository) Update(ctx context.Context, id string, update domain.CampaignUpdate) (*domain.Campaign, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}
	var category, status *string
	if update.Category != nil {
		category = ptr(string(*update.Category))
	}
	if update.Status != nil {
		status = ptr(string(*update.Status))
	}
	var c domain.Campaign
	row := r.sql.QueryRow(ctx, sqlinline.QUpdateCampaign,
		id, update.Title, update.Description, category, update.GoalAmount, status)
	err := row.Scan(&c.ID, &c.Title, &c.Description, &c.Category, &c.GoalAmount,
		&c.RaisedAmount, &c.Status, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.NewNotFound("campaign not found")
	}
	if err != nil {
		return nil, &domain.InternalError{Err: err}
	}
	return &c, nil
}

// Delete removes a campaign. Callers must verify the zero-donations
// precondition first.
func (r *CampaignRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.sql.Exec(ctx, sqlinline.QDeleteCampaign, id)
	if err != nil {
		return &domain.InternalError{Err: err}
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFound("campaign not found")
	}
	return nil
}

// DonationsCount returns the live number of donations referencing the
// campaign.
func (r *CampaignRepository) DonationsCount(ctx context.Context, id string) (int64, error) {
	var count int64
	row := r.sql.QueryRow(ctx, sqlinline.QCountDonationsByCampaign, id)
	if err := row.Scan(&count); err != nil {
		return 0, &domain.InternalError{Err: err}
	}
	return count, nil
}

func ptr[T any](v T) *T { return &v }
