package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"donatehub/internal/query"
)

type donateRequest struct {
	CampaignID string `json:"campaignId"`
	Amount     int64  `json:"amount"`
}

func (a *App) DonationsDonate(w http.ResponseWriter, r *http.Request) {
	var req donateRequest
	if err := decode(r, &req); err != nil {
		a.fail(w, r, err)
		return
	}

	detail, err := a.Ledger.RecordDonation(r.Context(), a.principal(r), req.CampaignID, req.Amount)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusCreated, "donation made successfully", detail)
}

func (a *App) DonationsHistory(w http.ResponseWriter, r *http.Request) {
	history, err := a.Reports.History(r.Context(), a.principal(r), query.Parse(r.URL.Query()))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, "donation history fetched successfully", history)
}

func (a *App) DonationsSupportedCampaigns(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	list, err := a.Reports.SupportedCampaigns(r.Context(), a.principal(r), values.Get("status"), query.Parse(values))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, "supported campaigns fetched successfully", list)
}

func (a *App) DonationsByCampaign(w http.ResponseWriter, r *http.Request) {
	campaignID := chi.URLParam(r, "campaignID")
	list, err := a.Reports.CampaignDonations(r.Context(), a.principal(r), campaignID, query.Parse(r.URL.Query()))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, "campaign donations fetched successfully", list)
}

func (a *App) DonationsGet(w http.ResponseWriter, r *http.Request) {
	donationID := chi.URLParam(r, "donationID")
	view, err := a.Reports.DonationByID(r.Context(), a.principal(r), donationID)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, "donation fetched successfully", view)
}
