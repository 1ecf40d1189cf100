package reports

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"donatehub/internal/domain"
	"donatehub/internal/policy"
	"donatehub/internal/sqlinline"
)

// DonorOverallStats summarizes the donor's giving plus the impact counters
// derived from the campaigns they supported.
type DonorOverallStats struct {
	TotalDonations     int64   `json:"totalDonations"`
	TotalAmount        int64   `json:"totalAmount"`
	AvgDonation        float64 `json:"avgDonation"`
	SupportedCampaigns int64   `json:"supportedCampaigns"`
	GoalReached        int64   `json:"goalReached"`
	StillActive        int64   `json:"stillActive"`
}

// RecentDonation is one of the donor's five latest donations.
type RecentDonation struct {
	ID        string                 `json:"id"`
	Amount    int64                  `json:"amount"`
	DonatedAt time.Time              `json:"donatedAt"`
	Campaign  RecentDonationCampaign `json:"campaign"`
}

// RecentDonationCampaign carries the campaign display fields shown next to
// a recent donation.
type RecentDonationCampaign struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Status      string `json:"status"`
}

// TopCampaign is a campaign ranked by how much this donor gave it.
type TopCampaign struct {
	CampaignID         string         `json:"campaignId"`
	Title              string         `json:"title"`
	Category           string         `json:"category"`
	GoalAmount         int64          `json:"goalAmount"`
	RaisedAmount       int64          `json:"raisedAmount"`
	Status             string         `json:"status"`
	CreatedBy          domain.UserRef `json:"createdBy"`
	TotalDonated       int64          `json:"totalDonated"`
	DonationCount      int64          `json:"donationCount"`
	LastDonation       time.Time      `json:"lastDonation"`
	ProgressPercentage int            `json:"progressPercentage"`
}

// CategoryBreakdown is the donor's giving grouped by campaign category.
type CategoryBreakdown struct {
	Category      string `json:"category"`
	TotalAmount   int64  `json:"totalAmount"`
	DonationCount int64  `json:"donationCount"`
}

// DonorDashboard is the full dashboard payload for one donor.
type DonorDashboard struct {
	OverallStats      DonorOverallStats   `json:"overallStats"`
	RecentDonations   []RecentDonation    `json:"recentDonations"`
	TopCampaigns      []TopCampaign       `json:"topCampaigns"`
	CategoryBreakdown []CategoryBreakdown `json:"categoryBreakdown"`
	MonthlyDonations  []MonthlyPoint      `json:"monthlyDonations"`
}

// DonorDashboardFor aggregates the authenticated donor's giving history.
// Like the NGO dashboard, the underlying queries run concurrently.
func (s *Service) DonorDashboardFor(ctx context.Context, p domain.Principal) (*DonorDashboard, error) {
	if err := policy.AllowRole(p, domain.RoleDonor); err != nil {
		return nil, err
	}

	var dash DonorDashboard
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		row := s.sql.QueryRow(ctx, sqlinline.QDonorDonationStats, p.ID)
		return row.Scan(&dash.OverallStats.TotalDonations, &dash.OverallStats.TotalAmount,
			&dash.OverallStats.AvgDonation, &dash.OverallStats.SupportedCampaigns)
	})
	g.Go(func() error {
		row := s.sql.QueryRow(ctx, sqlinline.QDonorImpactStats, p.ID)
		return row.Scan(&dash.OverallStats.GoalReached, &dash.OverallStats.StillActive)
	})
	g.Go(func() error {
		rows, err := s.sql.Query(ctx, sqlinline.QDonorRecentDonations, p.ID)
		if err != nil {
			return err
		}
		defer rows.Close()
		dash.RecentDonations = []RecentDonation{}
		for rows.Next() {
			var d RecentDonation
			if err := rows.Scan(&d.ID, &d.Amount, &d.DonatedAt,
				&d.Campaign.ID, &d.Campaign.Title, &d.Campaign.Description,
				&d.Campaign.Category, &d.Campaign.Status); err != nil {
				return err
			}
			dash.RecentDonations = append(dash.RecentDonations, d)
		}
		return rows.Err()
	})
	g.Go(func() error {
		rows, err := s.sql.Query(ctx, sqlinline.QDonorTopCampaigns, p.ID)
		if err != nil {
			return err
		}
		defer rows.Close()
		dash.TopCampaigns = []TopCampaign{}
		for rows.Next() {
			var t TopCampaign
			if err := rows.Scan(&t.CampaignID, &t.TotalDonated, &t.DonationCount, &t.LastDonation,
				&t.Title, &t.Category, &t.GoalAmount, &t.RaisedAmount, &t.Status,
				&t.CreatedBy.ID, &t.CreatedBy.FullName, &t.CreatedBy.Username,
				&t.ProgressPercentage); err != nil {
				return err
			}
			dash.TopCampaigns = append(dash.TopCampaigns, t)
		}
		return rows.Err()
	})
	g.Go(func() error {
		rows, err := s.sql.Query(ctx, sqlinline.QDonorByCategory, p.ID)
		if err != nil {
			return err
		}
		defer rows.Close()
		dash.CategoryBreakdown = []CategoryBreakdown{}
		for rows.Next() {
			var b CategoryBreakdown
			if err := rows.Scan(&b.Category, &b.TotalAmount, &b.DonationCount); err != nil {
				return err
			}
			dash.CategoryBreakdown = append(dash.CategoryBreakdown, b)
		}
		return rows.Err()
	})
	g.Go(func() error {
		points, err := s.monthlySeries(ctx, sqlinline.QDonorMonthlyDonations, p.ID)
		if err != nil {
			return err
		}
		dash.MonthlyDonations = points
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, &domain.InternalError{Err: err}
	}
	return &dash, nil
}
