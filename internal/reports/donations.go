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

var donationSortColumns = map[string]string{
	"donatedAt": "d.donated_at",
	"amount":    "d.amount",
}

// HistoryEntry is one donation in a donor's history, enriched with the
// campaign and its owning NGO.
type HistoryEntry struct {
	ID        string         `json:"id"`
	Amount    int64          `json:"amount"`
	DonatedAt time.Time      `json:"donatedAt"`
	Campaign  HistoryCampaign `json:"campaign"`
	NGO       domain.UserRef `json:"ngo"`
}

// HistoryCampaign is the campaign subset embedded in history entries.
type HistoryCampaign struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	GoalAmount   int64  `json:"goalAmount"`
	RaisedAmount int64  `json:"raisedAmount"`
	Status       string `json:"status"`
}

// HistoryStats summarizes the donor's whole history regardless of the page.
type HistoryStats struct {
	TotalDonated       int64 `json:"totalDonated"`
	CampaignsSupported int64 `json:"campaignsSupported"`
}

// DonationHistory is a page of a donor's donations with aggregate stats.
type DonationHistory struct {
	Donations  []HistoryEntry   `json:"donations"`
	Stats      HistoryStats     `json:"stats"`
	Pagination query.Pagination `json:"pagination"`
}

// History lists the authenticated donor's donations.
func (s *Service) History(ctx context.Context, p domain.Principal, q query.ListQuery) (*DonationHistory, error) {
	if err := policy.AllowRole(p, domain.RoleDonor); err != nil {
		return nil, err
	}
	q = q.Clamp()
	order := q.OrderClause(donationSortColumns, "d.donated_at desc")

	rows, err := s.sql.Query(ctx, fmt.Sprintf(sqlinline.QDonationHistory, order), p.ID, q.Limit, q.Offset())
	if err != nil {
		return nil, &domain.InternalError{Err: err}
	}
	defer rows.Close()

	donations := []HistoryEntry{}
	for rows.Next() {
		var e HistoryEntry
		err := rows.Scan(&e.ID, &e.Amount, &e.DonatedAt,
			&e.Campaign.ID, &e.Campaign.Title, &e.Campaign.Description, &e.Campaign.Category,
			&e.Campaign.GoalAmount, &e.Campaign.RaisedAmount, &e.Campaign.Status,
			&e.NGO.ID, &e.NGO.FullName, &e.NGO.Username)
		if err != nil {
			return nil, &domain.InternalError{Err: err}
		}
		donations = append(donations, e)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.InternalError{Err: err}
	}

	var total int64
	if err := s.sql.QueryRow(ctx, sqlinline.QCountDonationsByDonor, p.ID).Scan(&total); err != nil {
		return nil, &domain.InternalError{Err: err}
	}

	var stats HistoryStats
	row := s.sql.QueryRow(ctx, sqlinline.QDonorHistoryStats, p.ID)
	if err := row.Scan(&stats.TotalDonated, &stats.CampaignsSupported); err != nil {
		return nil, &domain.InternalError{Err: err}
	}

	return &DonationHistory{
		Donations:  donations,
		Stats:      stats,
		Pagination: query.NewPagination(total, q),
	}, nil
}

// CampaignDonationRow is one donation in a campaign's donation list.
type CampaignDonationRow struct {
	ID        string         `json:"id"`
	Amount    int64          `json:"amount"`
	DonatedAt time.Time      `json:"donatedAt"`
	Donor     domain.UserRef `json:"donor"`
}

// CampaignDonationStats summarizes all donations to one campaign.
type CampaignDonationStats struct {
	TotalAmount int64   `json:"totalAmount"`
	TotalDonors int64   `json:"totalDonors"`
	AvgDonation float64 `json:"avgDonation"`
	MinDonation int64   `json:"minDonation"`
	MaxDonation int64   `json:"maxDonation"`
}

// CampaignDonationList is a page of one campaign's donations plus summary
// stats and the campaign's public progress header.
type CampaignDonationList struct {
	Donations  []CampaignDonationRow `json:"donations"`
	Stats      CampaignDonationStats `json:"stats"`
	Campaign   CampaignProgress      `json:"campaign"`
	Pagination query.Pagination      `json:"pagination"`
}

// CampaignProgress is the public progress header of a campaign.
type CampaignProgress struct {
	Title              string `json:"title"`
	GoalAmount         int64  `json:"goalAmount"`
	RaisedAmount       int64  `json:"raisedAmount"`
	ProgressPercentage int    `json:"progressPercentage"`
}

// CampaignDonations lists donations to one campaign. NGOs may only inspect
// their own campaigns; donors see the public subset for any campaign.
func (s *Service) CampaignDonations(ctx context.Context, p domain.Principal, campaignID string, q query.ListQuery) (*CampaignDonationList, error) {
	if _, err := uuid.Parse(campaignID); err != nil {
		return nil, domain.NewValidation("invalid campaign ID")
	}
	q = q.Clamp()

	var header CampaignProgress
	var createdBy, description, category, status string
	var createdAt, updatedAt time.Time
	row := s.sql.QueryRow(ctx, sqlinline.QSelectCampaignByID, campaignID)
	var creatorName, creatorUsername string
	err := row.Scan(&campaignID, &header.Title, &description, &category, &header.GoalAmount,
		&header.RaisedAmount, &status, &createdBy, &createdAt, &updatedAt,
		&creatorName, &creatorUsername)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.NewNotFound("campaign not found")
	}
	if err != nil {
		return nil, &domain.InternalError{Err: err}
	}
	header.ProgressPercentage = progressPercent(header.RaisedAmount, header.GoalAmount)

	if p.Role == domain.RoleNGO {
		if err := policy.AllowOwner(p, createdBy); err != nil {
			return nil, domain.NewOwnership("you can only view donations for your own campaigns")
		}
	}

	rows, err := s.sql.Query(ctx, sqlinline.QCampaignDonations, campaignID, q.Limit, q.Offset())
	if err != nil {
		return nil, &domain.InternalError{Err: err}
	}
	defer rows.Close()

	donations := []CampaignDonationRow{}
	for rows.Next() {
		var d CampaignDonationRow
		err := rows.Scan(&d.ID, &d.Amount, &d.DonatedAt,
			&d.Donor.ID, &d.Donor.FullName, &d.Donor.Username)
		if err != nil {
			return nil, &domain.InternalError{Err: err}
		}
		donations = append(donations, d)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.InternalError{Err: err}
	}

	var total int64
	if err := s.sql.QueryRow(ctx, sqlinline.QCountDonationsByCampaign, campaignID).Scan(&total); err != nil {
		return nil, &domain.InternalError{Err: err}
	}

	var stats CampaignDonationStats
	row = s.sql.QueryRow(ctx, sqlinline.QCampaignDonationStats, campaignID)
	if err := row.Scan(&stats.TotalAmount, &stats.TotalDonors, &stats.AvgDonation,
		&stats.MinDonation, &stats.MaxDonation); err != nil {
		return nil, &domain.InternalError{Err: err}
	}

	return &CampaignDonationList{
		Donations:  donations,
		Stats:      stats,
		Campaign:   header,
		Pagination: query.NewPagination(total, q),
	}, nil
}

// SupportedCampaign groups a donor's donations to one campaign.
type SupportedCampaign struct {
	CampaignID         string         `json:"campaignId"`
	Title              string         `json:"title"`
	Description        string         `json:"description"`
	Category           string         `json:"category"`
	GoalAmount         int64          `json:"goalAmount"`
	RaisedAmount       int64          `json:"raisedAmount"`
	Status             string         `json:"status"`
	Creator            domain.UserRef `json:"creator"`
	ProgressPercentage int            `json:"progressPercentage"`
	TotalDonated       int64          `json:"totalDonated"`
	DonationCount      int64          `json:"donationCount"`
	LastDonation       time.Time      `json:"lastDonation"`
}

// SupportedCampaignList is a page of the campaigns a donor has supported.
type SupportedCampaignList struct {
	SupportedCampaigns []SupportedCampaign `json:"supportedCampaigns"`
	Pagination         query.Pagination    `json:"pagination"`
}

// SupportedCampaigns groups the donor's donations by campaign, newest
// contribution first, optionally filtered by the campaign's current status.
func (s *Service) SupportedCampaigns(ctx context.Context, p domain.Principal, status string, q query.ListQuery) (*SupportedCampaignList, error) {
	if err := policy.AllowRole(p, domain.RoleDonor); err != nil {
		return nil, err
	}
	q = q.Clamp()
	if status != "" && !domain.CampaignStatus(status).Valid() {
		status = ""
	}

	rows, err := s.sql.Query(ctx, sqlinline.QSupportedCampaigns, p.ID, status, q.Limit, q.Offset())
	if err != nil {
		return nil, &domain.InternalError{Err: err}
	}
	defer rows.Close()

	campaigns := []SupportedCampaign{}
	for rows.Next() {
		var c SupportedCampaign
		err := rows.Scan(&c.CampaignID, &c.TotalDonated, &c.DonationCount, &c.LastDonation,
			&c.Title, &c.Description, &c.Category, &c.GoalAmount, &c.RaisedAmount, &c.Status,
			&c.Creator.ID, &c.Creator.FullName, &c.Creator.Username,
			&c.ProgressPercentage)
		if err != nil {
			return nil, &domain.InternalError{Err: err}
		}
		campaigns = append(campaigns, c)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.InternalError{Err: err}
	}

	var total int64
	if err := s.sql.QueryRow(ctx, sqlinline.QCountSupportedCampaigns, p.ID, status).Scan(&total); err != nil {
		return nil, &domain.InternalError{Err: err}
	}

	return &SupportedCampaignList{
		SupportedCampaigns: campaigns,
		Pagination:         query.NewPagination(total, q),
	}, nil
}

// DonationView is a single donation with full donor and campaign context,
// visible only to the donor or the campaign's owner.
type DonationView struct {
	ID        string            `json:"id"`
	Amount    int64             `json:"amount"`
	DonatedAt time.Time         `json:"donatedAt"`
	Donor     DonationViewDonor `json:"donor"`
	Campaign  DonationViewCampaign `json:"campaign"`
}

// DonationViewDonor includes the donor's email, shown only to the involved
// parties.
type DonationViewDonor struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// DonationViewCampaign is the campaign context of a single donation.
type DonationViewCampaign struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Category     string         `json:"category"`
	GoalAmount   int64          `json:"goalAmount"`
	RaisedAmount int64          `json:"raisedAmount"`
	Status       string         `json:"status"`
	Creator      domain.UserRef `json:"creator"`
}

// DonationByID loads one donation if the principal is the donor or the
// owning NGO.
func (s *Service) DonationByID(ctx context.Context, p domain.Principal, donationID string) (*DonationView, error) {
	if _, err := uuid.Parse(donationID); err != nil {
		return nil, domain.NewValidation("invalid donation ID")
	}

	var v DonationView
	var campaignOwnerID string
	row := s.sql.QueryRow(ctx, sqlinline.QSelectDonationByID, donationID)
	err := row.Scan(&v.ID, &v.Amount, &v.DonatedAt,
		&v.Donor.ID, &v.Donor.FullName, &v.Donor.Username, &v.Donor.Email,
		&v.Campaign.ID, &v.Campaign.Title, &v.Campaign.Description, &v.Campaign.Category,
		&v.Campaign.GoalAmount, &v.Campaign.RaisedAmount, &v.Campaign.Status,
		&campaignOwnerID, &v.Campaign.Creator.FullName, &v.Campaign.Creator.Username)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.NewNotFound("donation not found")
	}
	if err != nil {
		return nil, &domain.InternalError{Err: err}
	}
	v.Campaign.Creator.ID = campaignOwnerID

	if err := policy.AllowOwnerOrDonor(p, v.Donor.ID, campaignOwnerID); err != nil {
		return nil, err
	}
	return &v, nil
}
