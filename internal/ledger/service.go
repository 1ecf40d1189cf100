// Package ledger records donations. A donation commit is the only
// multi-step write in the system: the ledger insert and the campaign's
// raised-amount increment happen in one transaction, so the materialized
// total can never drift from the ledger it caches.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"donatehub/internal/domain"
	"donatehub/internal/infra"
	"donatehub/internal/policy"
	"donatehub/internal/sqlinline"
)

// Service applies donation commits against the store.
type Service struct {
	db     infra.DB
	logger zerolog.Logger
}

// NewService creates a ledger service.
func NewService(db infra.DB, logger zerolog.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// RecordDonation inserts a donation and increments the target campaign's
// raised total as a single unit of work. The caller is trusted to have
// completed payment; preconditions cover role, amount, campaign existence
// and lifecycle state. The returned detail is enriched by a read performed
// after the commit.
func (s *Service) RecordDonation(ctx context.Context, p domain.Principal, campaignID string, amount int64) (*domain.DonationDetail, error) {
	if err := policy.AllowRole(p, domain.RoleDonor); err != nil {
		return nil, err
	}
	if campaignID == "" || amount == 0 {
		return nil, domain.NewValidation("campaign ID and donation amount are required")
	}
	if _, err := uuid.Parse(campaignID); err != nil {
		return nil, domain.NewValidation("invalid campaign ID")
	}
	if amount <= 0 {
		return nil, domain.NewValidation("donation amount must be greater than 0")
	}

	var status domain.CampaignStatus
	var ownerID string
	err := s.db.QueryRow(ctx, sqlinline.QSelectCampaignState, campaignID).Scan(&ownerID, &status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.NewNotFound("campaign not found")
	}
	if err != nil {
		return nil, &domain.InternalError{Err: err}
	}
	if status == domain.CampaignClosed {
		return nil, domain.NewStateConflict("cannot donate to a closed campaign")
	}

	var donationID string
	err = s.db.InTx(ctx, func(tx infra.SQLExecutor) error {
		var donatedAt time.Time
		row := tx.QueryRow(ctx, sqlinline.QInsertDonation, p.ID, campaignID, amount)
		if err := row.Scan(&donationID, &donatedAt); err != nil {
			return fmt.Errorf("insert donation: %w", err)
		}
		tag, err := tx.Exec(ctx, sqlinline.QIncrementCampaignRaised, campaignID, amount)
		if err != nil {
			return fmt.Errorf("increment raised amount: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("campaign %s vanished during donation", campaignID)
		}
		return nil
	})
	if err != nil {
		s.logger.Error().Err(err).Str("campaign_id", campaignID).Msg("donation transaction failed")
		return nil, &domain.TransactionError{Err: err}
	}

	detail, err := s.donationDetail(ctx, donationID)
	if err != nil {
		// The commit already happened; only the display enrichment failed.
		s.logger.Error().Err(err).Str("donation_id", donationID).Msg("donation enrichment failed")
		return nil, &domain.InternalError{Err: err}
	}
	return detail, nil
}

func (s *Service) donationDetail(ctx context.Context, donationID string) (*domain.DonationDetail, error) {
	var d domain.DonationDetail
	row := s.db.QueryRow(ctx, sqlinline.QSelectDonationDetail, donationID)
	err := row.Scan(&d.ID, &d.Amount, &d.DonatedAt,
		&d.Donor.ID, &d.Donor.FullName, &d.Donor.Username,
		&d.Campaign.ID, &d.Campaign.Title, &d.Campaign.Description)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
