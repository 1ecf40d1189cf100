// Package policy holds the pure authorization predicates. Role membership
// and ownership are independent checks with distinct failure types.
package policy

import "donatehub/internal/domain"

// AllowRole permits the principal iff its role is in the allowed set.
func AllowRole(p domain.Principal, allowed ...domain.Role) error {
	for _, role := range allowed {
		if p.Role == role {
			return nil
		}
	}
	if len(allowed) == 1 {
		return domain.NewAuthorization("access denied, required role: %s", allowed[0])
	}
	return domain.NewAuthorization("access denied for role %q", p.Role)
}

// AllowOwner permits the principal iff it is the owner of the entity.
func AllowOwner(p domain.Principal, ownerID string) error {
	if p.ID == ownerID {
		return nil
	}
	return domain.NewOwnership("you do not own this resource")
}

// AllowOwnerOrDonor permits either party of a donation record: the donor who
// made it or the NGO owning the target campaign.
func AllowOwnerOrDonor(p domain.Principal, donorID, campaignOwnerID string) error {
	if p.ID == donorID || p.ID == campaignOwnerID {
		return nil
	}
	return domain.NewOwnership("you can only view your own donations or donations to your campaigns")
}
