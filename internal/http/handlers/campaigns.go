package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"donatehub/internal/domain"
	"donatehub/internal/policy"
	"donatehub/internal/query"
	"donatehub/internal/reports"
)

func (a *App) CampaignsList(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	filters := reports.CampaignFilters{
		Status:   domain.CampaignStatus(values.Get("status")),
		Category: values.Get("category"),
		Search:   values.Get("search"),
	}
	list, err := a.Reports.ListCampaigns(r.Context(), filters, query.Parse(values))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, "campaigns fetched successfully", list)
}

func (a *App) CampaignsCategories(w http.ResponseWriter, r *http.Request) {
	stats, err := a.Reports.CategoryStats(r.Context())
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, "campaign categories fetched successfully", stats)
}

func (a *App) CampaignsGet(w http.ResponseWriter, r *http.Request) {
	campaignID := chi.URLParam(r, "campaignID")
	if _, err := uuid.Parse(campaignID); err != nil {
		a.fail(w, r, domain.NewValidation("invalid campaign id"))
		return
	}
	detail, err := a.Reports.CampaignByID(r.Context(), campaignID)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, "campaign fetched successfully", detail)
}

// campaignPayload is the write-path response shape, with the derived
// progress fields computed the same way the listings compute them.
type campaignPayload struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	Category           string    `json:"category"`
	GoalAmount         int64     `json:"goalAmount"`
	RaisedAmount       int64     `json:"raisedAmount"`
	Status             string    `json:"status"`
	CreatedBy          string    `json:"createdBy"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
	ProgressPercentage int       `json:"progressPercentage"`
	IsGoalReached      bool      `json:"isGoalReached"`
}

func toCampaignPayload(c *domain.Campaign) campaignPayload {
	return campaignPayload{
		ID:                 c.ID,
		Title:              c.Title,
		Description:        c.Description,
		Category:           string(c.Category),
		GoalAmount:         c.GoalAmount,
		RaisedAmount:       c.RaisedAmount,
		Status:             string(c.Status),
		CreatedBy:          c.CreatedBy,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
		ProgressPercentage: c.ProgressPercentage(),
		IsGoalReached:      c.IsGoalReached(),
	}
}

type createCampaignRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	GoalAmount  int64  `json:"goalAmount"`
}

func (a *App) CampaignsCreate(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if err := decode(r, &req); err != nil {
		a.fail(w, r, err)
		return
	}

	p := a.principal(r)
	campaign := &domain.Campaign{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Category:    domain.Category(req.Category),
		GoalAmount:  req.GoalAmount,
		Status:      domain.CampaignActive,
		CreatedBy:   p.ID,
	}
	if err := a.Campaigns.Create(r.Context(), campaign); err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusCreated, "campaign created successfully", toCampaignPayload(campaign))
}

type updateCampaignRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	GoalAmount  *int64  `json:"goalAmount"`
	Status      *string `json:"status"`
}

func (a *App) CampaignsUpdate(w http.ResponseWriter, r *http.Request) {
	campaignID := chi.URLParam(r, "campaignID")
	if _, err := uuid.Parse(campaignID); err != nil {
		a.fail(w, r, domain.NewValidation("invalid campaign id"))
		return
	}

	var req updateCampaignRequest
	if err := decode(r, &req); err != nil {
		a.fail(w, r, err)
		return
	}

	p := a.principal(r)
	ownerID, _, err := a.Campaigns.State(r.Context(), campaignID)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	if err := policy.AllowOwner(p, ownerID); err != nil {
		a.fail(w, r, domain.NewOwnership("you can only update your own campaigns"))
		return
	}

	update := domain.CampaignUpdate{
		GoalAmount: req.GoalAmount,
	}
	if req.Title != nil {
		update.Title = ptrTo(strings.TrimSpace(*req.Title))
	}
	if req.Description != nil {
		update.Description = ptrTo(strings.TrimSpace(*req.Description))
	}
	if req.Category != nil {
		update.Category = ptrTo(domain.Category(*req.Category))
	}
	if req.Status != nil {
		update.Status = ptrTo(domain.CampaignStatus(*req.Status))
	}

	campaign, err := a.Campaigns.Update(r.Context(), campaignID, update)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, "campaign updated successfully", toCampaignPayload(campaign))
}

func (a *App) CampaignsDelete(w http.ResponseWriter, r *http.Request) {
	campaignID := chi.URLParam(r, "campaignID")
	if _, err := uuid.Parse(campaignID); err != nil {
		a.fail(w, r, domain.NewValidation("invalid campaign id"))
		return
	}

	p := a.principal(r)
	ownerID, _, err := a.Campaigns.State(r.Context(), campaignID)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	if err := policy.AllowOwner(p, ownerID); err != nil {
		a.fail(w, r, domain.NewOwnership("you can only delete your own campaigns"))
		return
	}

	count, err := a.Campaigns.DonationsCount(r.Context(), campaignID)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	if count > 0 {
		a.fail(w, r, domain.NewStateConflict("cannot delete a campaign that has received donations"))
		return
	}

	if err := a.Campaigns.Delete(r.Context(), campaignID); err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, "campaign deleted successfully", nil)
}

func (a *App) CampaignsMine(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	list, err := a.Reports.OwnCampaigns(r.Context(), a.principal(r), values.Get("status"), query.Parse(values))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, "campaigns fetched successfully", list)
}

func ptrTo[T any](v T) *T { return &v }
