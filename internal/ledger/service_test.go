package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"donatehub/internal/domain"
	"donatehub/internal/infra"
	"donatehub/internal/sqlinline"
)

const (
	testCampaignID = "7b1f6f51-3a0e-4c89-9d25-02c41c1a2c77"
	testDonationID = "a3c7e8d0-55f1-4b3a-8a6e-9f2d7c4b1e90"
)

// fakeRow satisfies pgx.Row with a scan closure.
type fakeRow struct {
	scan func(dest ...any) error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.scan == nil {
		return pgx.ErrNoRows
	}
	return r.scan(dest...)
}

// fakeDB routes each statement by its constant. InTx hands the fake itself
// to the unit of work and records whether the work was attempted.
type fakeDB struct {
	rows      map[string]fakeRow
	execTag   pgconn.CommandTag
	execErr   error
	txEntered bool
	txErr     error
}

func (f *fakeDB) QueryRow(_ context.Context, query string, _ ...any) pgx.Row {
	if row, ok := f.rows[query]; ok {
		return row
	}
	return fakeRow{}
}

func (f *fakeDB) Exec(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
	return f.execTag, f.execErr
}

func (f *fakeDB) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("unexpected Query call")
}

func (f *fakeDB) InTx(_ context.Context, fn func(infra.SQLExecutor) error) error {
	f.txEntered = true
	if err := fn(f); err != nil {
		f.txErr = err
		return err
	}
	return nil
}

func activeCampaignDB() *fakeDB {
	donatedAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	return &fakeDB{
		execTag: pgconn.NewCommandTag("UPDATE 1"),
		rows: map[string]fakeRow{
			sqlinline.QSelectCampaignState: {scan: func(dest ...any) error {
				*(dest[0].(*string)) = "ngo-1"
				*(dest[1].(*domain.CampaignStatus)) = domain.CampaignActive
				return nil
			}},
			sqlinline.QInsertDonation: {scan: func(dest ...any) error {
				*(dest[0].(*string)) = testDonationID
				*(dest[1].(*time.Time)) = donatedAt
				return nil
			}},
			sqlinline.QSelectDonationDetail: {scan: func(dest ...any) error {
				*(dest[0].(*string)) = testDonationID
				*(dest[1].(*int64)) = 2500
				*(dest[2].(*time.Time)) = donatedAt
				*(dest[3].(*string)) = "donor-1"
				*(dest[4].(*string)) = "Dana Donor"
				*(dest[5].(*string)) = "dana"
				*(dest[6].(*string)) = testCampaignID
				*(dest[7].(*string)) = "Clean Water"
				*(dest[8].(*string)) = "Wells for the village"
				return nil
			}},
		},
	}
}

func TestRecordDonationSuccess(t *testing.T) {
	db := activeCampaignDB()
	svc := NewService(db, zerolog.Nop())
	p := domain.Principal{ID: "donor-1", Role: domain.RoleDonor}

	detail, err := svc.RecordDonation(context.Background(), p, testCampaignID, 2500)
	require.NoError(t, err)
	assert.True(t, db.txEntered)

	assert.Equal(t, testDonationID, detail.ID)
	assert.Equal(t, int64(2500), detail.Amount)
	assert.Equal(t, "Dana Donor", detail.Donor.FullName)
	assert.Equal(t, "Clean Water", detail.Campaign.Title)
}

func TestRecordDonationRequiresDonorRole(t *testing.T) {
	db := activeCampaignDB()
	svc := NewService(db, zerolog.Nop())
	p := domain.Principal{ID: "ngo-1", Role: domain.RoleNGO}

	_, err := svc.RecordDonation(context.Background(), p, testCampaignID, 2500)

	var authErr *domain.AuthorizationError
	assert.ErrorAs(t, err, &authErr)
	assert.False(t, db.txEntered)
}

func TestRecordDonationValidation(t *testing.T) {
	p := domain.Principal{ID: "donor-1", Role: domain.RoleDonor}

	tests := []struct {
		name       string
		campaignID string
		amount     int64
	}{
		{"empty campaign id", "", 100},
		{"zero amount", testCampaignID, 0},
		{"negative amount", testCampaignID, -100},
		{"malformed campaign id", "not-a-uuid", 100},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db := activeCampaignDB()
			svc := NewService(db, zerolog.Nop())

			_, err := svc.RecordDonation(context.Background(), p, tc.campaignID, tc.amount)

			var validationErr *domain.ValidationError
			assert.ErrorAs(t, err, &validationErr)
			assert.False(t, db.txEntered)
		})
	}
}

func TestRecordDonationCampaignNotFound(t *testing.T) {
	db := activeCampaignDB()
	delete(db.rows, sqlinline.QSelectCampaignState)
	svc := NewService(db, zerolog.Nop())
	p := domain.Principal{ID: "donor-1", Role: domain.RoleDonor}

	_, err := svc.RecordDonation(context.Background(), p, testCampaignID, 100)

	var notFound *domain.NotFoundError
	assert.ErrorAs(t, err, &notFound)
	assert.False(t, db.txEntered)
}

func TestRecordDonationRejectsClosedCampaign(t *testing.T) {
	db := activeCampaignDB()
	db.rows[sqlinline.QSelectCampaignState] = fakeRow{scan: func(dest ...any) error {
		*(dest[0].(*string)) = "ngo-1"
		*(dest[1].(*domain.CampaignStatus)) = domain.CampaignClosed
		return nil
	}}
	svc := NewService(db, zerolog.Nop())
	p := domain.Principal{ID: "donor-1", Role: domain.RoleDonor}

	_, err := svc.RecordDonation(context.Background(), p, testCampaignID, 100)

	var conflict *domain.StateConflictError
	assert.ErrorAs(t, err, &conflict)
	assert.False(t, db.txEntered)
}

func TestRecordDonationInsertFailureAbortsTransaction(t *testing.T) {
	db := activeCampaignDB()
	db.rows[sqlinline.QInsertDonation] = fakeRow{scan: func(...any) error {
		return errors.New("connection reset")
	}}
	svc := NewService(db, zerolog.Nop())
	p := domain.Principal{ID: "donor-1", Role: domain.RoleDonor}

	_, err := svc.RecordDonation(context.Background(), p, testCampaignID, 100)

	var txErr *domain.TransactionError
	assert.ErrorAs(t, err, &txErr)
	assert.True(t, db.txEntered)
	assert.Error(t, db.txErr)
}

func TestRecordDonationIncrementFailureAbortsTransaction(t *testing.T) {
	db := activeCampaignDB()
	db.execErr = errors.New("deadlock detected")
	svc := NewService(db, zerolog.Nop())
	p := domain.Principal{ID: "donor-1", Role: domain.RoleDonor}

	_, err := svc.RecordDonation(context.Background(), p, testCampaignID, 100)

	var txErr *domain.TransactionError
	assert.ErrorAs(t, err, &txErr)
	assert.Error(t, db.txErr)
}

func TestRecordDonationVanishedCampaignAbortsTransaction(t *testing.T) {
	db := activeCampaignDB()
	db.execTag = pgconn.NewCommandTag("UPDATE 0")
	svc := NewService(db, zerolog.Nop())
	p := domain.Principal{ID: "donor-1", Role: domain.RoleDonor}

	_, err := svc.RecordDonation(context.Background(), p, testCampaignID, 100)

	var txErr *domain.TransactionError
	assert.ErrorAs(t, err, &txErr)
}

func TestRecordDonationEnrichmentFailureAfterCommit(t *testing.T) {
	db := activeCampaignDB()
	delete(db.rows, sqlinline.QSelectDonationDetail)
	svc := NewService(db, zerolog.Nop())
	p := domain.Principal{ID: "donor-1", Role: domain.RoleDonor}

	_, err := svc.RecordDonation(context.Background(), p, testCampaignID, 100)

	// Commit succeeded; only the display read failed.
	var internal *domain.InternalError
	assert.ErrorAs(t, err, &internal)
	assert.True(t, db.txEntered)
	assert.NoError(t, db.txErr)
}
