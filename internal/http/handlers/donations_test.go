package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"donatehub/internal/domain"
	"donatehub/internal/sqlinline"
)

const testDonationID = "a3c7e8d0-55f1-4b3a-8a6e-9f2d7c4b1e90"

func donationDB() *fakeDB {
	donatedAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	return &fakeDB{
		rows: map[string][][]any{},
		row: map[string]fakeRow{
			markerOf(sqlinline.QSelectCampaignState): {vals: []any{"ngo-1", "active"}},
			markerOf(sqlinline.QInsertDonation):      {vals: []any{testDonationID, donatedAt}},
			markerOf(sqlinline.QSelectDonationDetail): {vals: []any{
				testDonationID, int64(2500), donatedAt,
				"donor-1", "Dana Donor", "dana",
				testCampaignID, "Clean Water", "Wells for the village",
			}},
		},
	}
}

func TestDonationsDonate(t *testing.T) {
	app := newTestApp(donationDB())
	p := domain.Principal{ID: "donor-1", Role: domain.RoleDonor}

	body := `{"campaignId":"` + testCampaignID + `","amount":2500}`
	rec, env := do(t, app.DonationsDonate, http.MethodPost, "/donations/donate", body, &p, nil)

	require.Equal(t, http.StatusCreated, rec.Code)
	data := env.Data.(map[string]any)
	assert.Equal(t, testDonationID, data["id"])
	assert.Equal(t, float64(2500), data["amount"])

	donor := data["donor"].(map[string]any)
	assert.Equal(t, "Dana Donor", donor["fullName"])
	campaign := data["campaign"].(map[string]any)
	assert.Equal(t, "Clean Water", campaign["title"])
}

func TestDonationsDonateRejectsNGO(t *testing.T) {
	app := newTestApp(donationDB())
	p := domain.Principal{ID: "ngo-1", Role: domain.RoleNGO}

	body := `{"campaignId":"` + testCampaignID + `","amount":100}`
	rec, _ := do(t, app.DonationsDonate, http.MethodPost, "/donations/donate", body, &p, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestDonationsDonateClosedCampaign(t *testing.T) {
	db := donationDB()
	db.row[markerOf(sqlinline.QSelectCampaignState)] = fakeRow{vals: []any{"ngo-1", "closed"}}
	app := newTestApp(db)
	p := domain.Principal{ID: "donor-1", Role: domain.RoleDonor}

	body := `{"campaignId":"` + testCampaignID + `","amount":100}`
	rec, env := do(t, app.DonationsDonate, http.MethodPost, "/donations/donate", body, &p, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, env.Message, "closed campaign")
}

func TestDonationsDonateUnknownCampaign(t *testing.T) {
	db := donationDB()
	db.row[markerOf(sqlinline.QSelectCampaignState)] = fakeRow{}
	app := newTestApp(db)
	p := domain.Principal{ID: "donor-1", Role: domain.RoleDonor}

	body := `{"campaignId":"` + testCampaignID + `","amount":100}`
	rec, _ := do(t, app.DonationsDonate, http.MethodPost, "/donations/donate", body, &p, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDonationsDonateValidation(t *testing.T) {
	app := newTestApp(donationDB())
	p := domain.Principal{ID: "donor-1", Role: domain.RoleDonor}

	rec, _ := do(t, app.DonationsDonate, http.MethodPost, "/donations/donate",
		`{"campaignId":"`+testCampaignID+`","amount":-5}`, &p, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = do(t, app.DonationsDonate, http.MethodPost, "/donations/donate",
		`{"amount":100}`, &p, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDonationsHistoryRequiresDonor(t *testing.T) {
	app := newTestApp(donationDB())
	p := domain.Principal{ID: "ngo-1", Role: domain.RoleNGO}

	rec, _ := do(t, app.DonationsHistory, http.MethodGet, "/donations/history", "", &p, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestDonationsGetRejectsBadID(t *testing.T) {
	app := newTestApp(donationDB())
	p := domain.Principal{ID: "donor-1", Role: domain.RoleDonor}

	rec, _ := do(t, app.DonationsGet, http.MethodGet, "/donations/nope",
		"", &p, map[string]string{"donationID": "nope"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
