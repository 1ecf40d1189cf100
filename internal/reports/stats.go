package reports

import (
	"context"

	"golang.org/x/sync/errgroup"

	"donatehub/internal/domain"
	"donatehub/internal/sqlinline"
)

// PlatformUserStats counts registered users by role.
type PlatformUserStats struct {
	Total  int64 `json:"total"`
	NGOs   int64 `json:"ngos"`
	Donors int64 `json:"donors"`
}

// PlatformCampaignStats counts campaigns and sums their goal and raised
// amounts across the whole platform.
type PlatformCampaignStats struct {
	Total             int64 `json:"total"`
	Active            int64 `json:"active"`
	Closed            int64 `json:"closed"`
	TotalGoalAmount   int64 `json:"totalGoalAmount"`
	TotalRaisedAmount int64 `json:"totalRaisedAmount"`
}

// PlatformDonationStats sums all donations ever recorded.
type PlatformDonationStats struct {
	Total       int64 `json:"total"`
	TotalAmount int64 `json:"totalAmount"`
	AvgAmount   int64 `json:"avgAmount"`
}

// PlatformStats is the public, unauthenticated platform summary.
type PlatformStats struct {
	Users      PlatformUserStats     `json:"users"`
	Campaigns  PlatformCampaignStats `json:"campaigns"`
	Donations  PlatformDonationStats `json:"donations"`
	Categories []CategoryStat        `json:"categories"`
}

// PlatformOverview gathers the public platform counters. The four queries
// run concurrently and require no principal.
func (s *Service) PlatformOverview(ctx context.Context) (*PlatformStats, error) {
	var stats PlatformStats
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		row := s.sql.QueryRow(ctx, sqlinline.QPlatformUserStats)
		return row.Scan(&stats.Users.Total, &stats.Users.NGOs, &stats.Users.Donors)
	})
	g.Go(func() error {
		row := s.sql.QueryRow(ctx, sqlinline.QPlatformCampaignStats)
		return row.Scan(&stats.Campaigns.Total, &stats.Campaigns.Active,
			&stats.Campaigns.TotalGoalAmount, &stats.Campaigns.TotalRaisedAmount)
	})
	g.Go(func() error {
		row := s.sql.QueryRow(ctx, sqlinline.QPlatformDonationStats)
		return row.Scan(&stats.Donations.Total, &stats.Donations.TotalAmount, &stats.Donations.AvgAmount)
	})
	g.Go(func() error {
		rows, err := s.sql.Query(ctx, sqlinline.QPlatformCategoryStats)
		if err != nil {
			return err
		}
		defer rows.Close()
		stats.Categories = []CategoryStat{}
		for rows.Next() {
			var cs CategoryStat
			if err := rows.Scan(&cs.Name, &cs.Count, &cs.TotalRaised, &cs.TotalGoal); err != nil {
				return err
			}
			stats.Categories = append(stats.Categories, cs)
		}
		return rows.Err()
	})

	if err := g.Wait(); err != nil {
		return nil, &domain.InternalError{Err: err}
	}

	stats.Campaigns.Closed = stats.Campaigns.Total - stats.Campaigns.Active
	return &stats, nil
}
