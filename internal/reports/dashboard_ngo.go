package reports

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"donatehub/internal/domain"
	"donatehub/internal/policy"
	"donatehub/internal/sqlinline"
)

// NGOOverallStats combines the campaign-side and donation-side aggregates
// for one NGO.
type NGOOverallStats struct {
	TotalCampaigns      int64   `json:"totalCampaigns"`
	ActiveCampaigns     int64   `json:"activeCampaigns"`
	ClosedCampaigns     int64   `json:"closedCampaigns"`
	TotalGoalAmount     int64   `json:"totalGoalAmount"`
	TotalRaisedAmount   int64   `json:"totalRaisedAmount"`
	TotalDonations      int64   `json:"totalDonations"`
	TotalDonationAmount int64   `json:"totalDonationAmount"`
	UniqueDonors        int64   `json:"uniqueDonors"`
	AvgDonation         float64 `json:"avgDonation"`
	ProgressPercentage  int     `json:"progressPercentage"`
}

// RecentCampaign is one of the NGO's five newest campaigns.
type RecentCampaign struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	GoalAmount   int64     `json:"goalAmount"`
	RaisedAmount int64     `json:"raisedAmount"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

// PerformanceRow ranks one campaign by raised amount, with progress at one
// decimal for the performance table.
type PerformanceRow struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	GoalAmount         int64     `json:"goalAmount"`
	RaisedAmount       int64     `json:"raisedAmount"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"createdAt"`
	DonationsCount     int64     `json:"donationsCount"`
	ProgressPercentage float64   `json:"progressPercentage"`
}

// NGODashboard is the full dashboard payload for one NGO.
type NGODashboard struct {
	OverallStats        NGOOverallStats  `json:"overallStats"`
	RecentCampaigns     []RecentCampaign `json:"recentCampaigns"`
	CampaignPerformance []PerformanceRow `json:"campaignPerformance"`
	MonthlyDonations    []MonthlyPoint   `json:"monthlyDonations"`
}

// NGODashboardFor aggregates the authenticated NGO's campaigns and the
// donations they received. The five underlying queries are independent
// reads and run concurrently; the response is assembled once all complete.
func (s *Service) NGODashboardFor(ctx context.Context, p domain.Principal) (*NGODashboard, error) {
	if err := policy.AllowRole(p, domain.RoleNGO); err != nil {
		return nil, err
	}

	var dash NGODashboard
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		row := s.sql.QueryRow(ctx, sqlinline.QNGOCampaignStats, p.ID)
		return row.Scan(&dash.OverallStats.TotalCampaigns, &dash.OverallStats.ActiveCampaigns,
			&dash.OverallStats.ClosedCampaigns, &dash.OverallStats.TotalGoalAmount,
			&dash.OverallStats.TotalRaisedAmount)
	})
	g.Go(func() error {
		row := s.sql.QueryRow(ctx, sqlinline.QNGODonationStats, p.ID)
		return row.Scan(&dash.OverallStats.TotalDonations, &dash.OverallStats.TotalDonationAmount,
			&dash.OverallStats.UniqueDonors, &dash.OverallStats.AvgDonation)
	})
	g.Go(func() error {
		rows, err := s.sql.Query(ctx, sqlinline.QNGORecentCampaigns, p.ID)
		if err != nil {
			return err
		}
		defer rows.Close()
		dash.RecentCampaigns = []RecentCampaign{}
		for rows.Next() {
			var c RecentCampaign
			if err := rows.Scan(&c.ID, &c.Title, &c.GoalAmount, &c.RaisedAmount, &c.Status, &c.CreatedAt); err != nil {
				return err
			}
			dash.RecentCampaigns = append(dash.RecentCampaigns, c)
		}
		return rows.Err()
	})
	g.Go(func() error {
		rows, err := s.sql.Query(ctx, sqlinline.QNGOCampaignPerformance, p.ID)
		if err != nil {
			return err
		}
		defer rows.Close()
		dash.CampaignPerformance = []PerformanceRow{}
		for rows.Next() {
			var r PerformanceRow
			if err := rows.Scan(&r.ID, &r.Title, &r.GoalAmount, &r.RaisedAmount, &r.Status,
				&r.CreatedAt, &r.DonationsCount, &r.ProgressPercentage); err != nil {
				return err
			}
			dash.CampaignPerformance = append(dash.CampaignPerformance, r)
		}
		return rows.Err()
	})
	g.Go(func() error {
		points, err := s.monthlySeries(ctx, sqlinline.QNGOMonthlyDonations, p.ID)
		if err != nil {
			return err
		}
		dash.MonthlyDonations = points
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, &domain.InternalError{Err: err}
	}

	dash.OverallStats.ProgressPercentage = progressPercent(
		dash.OverallStats.TotalRaisedAmount, dash.OverallStats.TotalGoalAmount)
	return &dash, nil
}

func (s *Service) monthlySeries(ctx context.Context, q string, id string) ([]MonthlyPoint, error) {
	rows, err := s.sql.Query(ctx, q, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	points := []MonthlyPoint{}
	for rows.Next() {
		var point MonthlyPoint
		if err := rows.Scan(&point.Year, &point.Month, &point.TotalAmount, &point.TotalDonations); err != nil {
			return nil, err
		}
		points = append(points, point)
	}
	return points, rows.Err()
}
