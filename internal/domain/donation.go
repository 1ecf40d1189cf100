package domain

import "time"

// Donation is an immutable ledger record linking one donor to one campaign.
// There is no update or delete path once a donation is committed.
type Donation struct {
	ID         string
	DonorID    string
	CampaignID string
	Amount     int64
	DonatedAt  time.Time
}

// CampaignRef is the denormalized campaign display info attached to
// enriched donation records.
type CampaignRef struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// DonationDetail is a donation enriched with donor and campaign display
// fields, produced by a read performed after the ledger commit.
type DonationDetail struct {
	ID        string      `json:"id"`
	Amount    int64       `json:"amount"`
	DonatedAt time.Time   `json:"donatedAt"`
	Donor     UserRef     `json:"donor"`
	Campaign  CampaignRef `json:"campaign"`
}
