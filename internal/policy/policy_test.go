package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"donatehub/internal/domain"
)

func TestAllowRole(t *testing.T) {
	ngo := domain.Principal{ID: "u1", Role: domain.RoleNGO}
	donor := domain.Principal{ID: "u2", Role: domain.RoleDonor}

	assert.NoError(t, AllowRole(ngo, domain.RoleNGO))
	assert.NoError(t, AllowRole(donor, domain.RoleNGO, domain.RoleDonor))

	err := AllowRole(donor, domain.RoleNGO)
	require.Error(t, err)
	var authErr *domain.AuthorizationError
	assert.ErrorAs(t, err, &authErr)
}

func TestAllowOwner(t *testing.T) {
	p := domain.Principal{ID: "u1", Role: domain.RoleNGO}

	assert.NoError(t, AllowOwner(p, "u1"))

	err := AllowOwner(p, "u2")
	require.Error(t, err)
	var ownErr *domain.OwnershipError
	assert.ErrorAs(t, err, &ownErr)
}

func TestAllowOwnerOrDonor(t *testing.T) {
	donor := domain.Principal{ID: "donor-1", Role: domain.RoleDonor}
	owner := domain.Principal{ID: "ngo-1", Role: domain.RoleNGO}
	stranger := domain.Principal{ID: "other", Role: domain.RoleDonor}

	assert.NoError(t, AllowOwnerOrDonor(donor, "donor-1", "ngo-1"))
	assert.NoError(t, AllowOwnerOrDonor(owner, "donor-1", "ngo-1"))

	err := AllowOwnerOrDonor(stranger, "donor-1", "ngo-1")
	require.Error(t, err)
	var ownErr *domain.OwnershipError
	assert.ErrorAs(t, err, &ownErr)
}
