// api/authz/policy_test.go
package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/firatsalmanoglu/firesafe-api/authz"
)

var (
	admin      = authz.Actor{Role: authz.RoleAdmin, UserID: "adm-1", InstitutionID: "ins-adm"}
	customerL1 = authz.Actor{Role: authz.RoleCustomerL1, UserID: "cus-1", InstitutionID: "ins-cus"}
	customerL2 = authz.Actor{Role: authz.RoleCustomerL2, UserID: "cus-2", InstitutionID: "ins-cus"}
	providerL1 = authz.Actor{Role: authz.RoleProviderL1, UserID: "prv-1", InstitutionID: "ins-prv"}
	providerL2 = authz.Actor{Role: authz.RoleProviderL2, UserID: "prv-2", InstitutionID: "ins-prv"}
	guest      = authz.Actor{Role: authz.RoleGuest}
)

func TestAuthorizeFailsClosed(t *testing.T) {
	own := authz.Ownership{OwnerID: "cus-1", OwnerInsID: "ins-cus"}

	t.Run("unknown role", func(t *testing.T) {
		actor := authz.Actor{Role: "SUPERVISOR", UserID: "x", InstitutionID: "y"}
		for _, op := range []authz.Operation{authz.OpView, authz.OpCreate, authz.OpUpdate, authz.OpDelete} {
			assert.False(t, authz.Authorize(actor, op, authz.KindDevice, own))
		}
		// The role-wide view rules must not treat "not guest" as
		// "authenticated": a role outside the enumeration sees nothing.
		assert.False(t, authz.Authorize(actor, authz.OpView, authz.KindInstitution, authz.Ownership{}))
		assert.False(t, authz.Authorize(actor, authz.OpView, authz.KindUser, authz.Ownership{}))
	})

	t.Run("unknown resource kind", func(t *testing.T) {
		assert.False(t, authz.Authorize(admin, authz.OpView, authz.ResourceKind("Widgets"), own))
	})

	t.Run("empty role", func(t *testing.T) {
		actor := authz.Actor{UserID: "cus-1", InstitutionID: "ins-cus"}
		assert.False(t, authz.Authorize(actor, authz.OpView, authz.KindDevice, own))
		assert.False(t, authz.Authorize(actor, authz.OpView, authz.KindInstitution, authz.Ownership{}))
	})

	t.Run("empty ids never match", func(t *testing.T) {
		actor := authz.Actor{Role: authz.RoleCustomerL1}
		assert.False(t, authz.Authorize(actor, authz.OpView, authz.KindDevice, authz.Ownership{}))
		assert.False(t, authz.Authorize(actor, authz.OpDelete, authz.KindDevice, authz.Ownership{}))
	})
}

func TestAuthorizeDevice(t *testing.T) {
	mine := authz.Ownership{OwnerID: "cus-1", OwnerInsID: "ins-cus", ProviderID: "prv-2", ProviderInsID: "ins-prv"}
	theirs := authz.Ownership{OwnerID: "other", OwnerInsID: "ins-other", ProviderID: "other", ProviderInsID: "ins-other"}

	ownedByL2 := authz.Ownership{OwnerID: "cus-2", OwnerInsID: "ins-cus"}

	t.Run("view", func(t *testing.T) {
		assert.True(t, authz.Authorize(admin, authz.OpView, authz.KindDevice, theirs))
		assert.True(t, authz.Authorize(customerL1, authz.OpView, authz.KindDevice, mine))
		assert.False(t, authz.Authorize(customerL1, authz.OpView, authz.KindDevice, theirs))
		assert.True(t, authz.Authorize(customerL2, authz.OpView, authz.KindDevice, ownedByL2))
		assert.True(t, authz.Authorize(providerL2, authz.OpView, authz.KindDevice, mine))
		assert.False(t, authz.Authorize(providerL1, authz.OpView, authz.KindDevice, mine))
		assert.False(t, authz.Authorize(guest, authz.OpView, authz.KindDevice, mine))
	})

	t.Run("create", func(t *testing.T) {
		assert.True(t, authz.Authorize(admin, authz.OpCreate, authz.KindDevice, authz.Ownership{}))
		assert.True(t, authz.Authorize(customerL1, authz.OpCreate, authz.KindDevice, authz.Ownership{}))
		assert.True(t, authz.Authorize(customerL2, authz.OpCreate, authz.KindDevice, authz.Ownership{}))
		assert.False(t, authz.Authorize(providerL1, authz.OpCreate, authz.KindDevice, authz.Ownership{}))
		assert.False(t, authz.Authorize(guest, authz.OpCreate, authz.KindDevice, authz.Ownership{}))
	})

	t.Run("mutate", func(t *testing.T) {
		// Level 2 customers register devices but cannot change or remove them.
		assert.True(t, authz.Authorize(customerL1, authz.OpDelete, authz.KindDevice, mine))
		assert.False(t, authz.Authorize(customerL2, authz.OpDelete, authz.KindDevice, ownedByL2))
		assert.False(t, authz.Authorize(customerL2, authz.OpUpdate, authz.KindDevice, mine))
		assert.False(t, authz.Authorize(customerL1, authz.OpUpdate, authz.KindDevice, theirs))
		assert.True(t, authz.Authorize(admin, authz.OpDelete, authz.KindDevice, theirs))
		assert.False(t, authz.Authorize(providerL2, authz.OpUpdate, authz.KindDevice, mine))
	})
}

func TestAuthorizeAppointment(t *testing.T) {
	own := authz.Ownership{
		CreatorID:      "prv-2",
		CreatorInsID:   "ins-prv",
		RecipientID:    "cus-2",
		RecipientInsID: "ins-cus",
	}

	t.Run("view sides", func(t *testing.T) {
		assert.True(t, authz.Authorize(customerL2, authz.OpView, authz.KindAppointment, own))
		assert.True(t, authz.Authorize(customerL1, authz.OpView, authz.KindAppointment, own))
		assert.True(t, authz.Authorize(providerL2, authz.OpView, authz.KindAppointment, own))
		assert.True(t, authz.Authorize(providerL1, authz.OpView, authz.KindAppointment, own))

		stranger := authz.Actor{Role: authz.RoleCustomerL2, UserID: "nobody", InstitutionID: "ins-x"}
		assert.False(t, authz.Authorize(stranger, authz.OpView, authz.KindAppointment, own))
	})

	t.Run("recipient side cannot manage", func(t *testing.T) {
		assert.False(t, authz.Authorize(customerL1, authz.OpUpdate, authz.KindAppointment, own))
		assert.False(t, authz.Authorize(customerL2, authz.OpDelete, authz.KindAppointment, own))
		assert.True(t, authz.Authorize(providerL2, authz.OpUpdate, authz.KindAppointment, own))
		assert.True(t, authz.Authorize(providerL1, authz.OpDelete, authz.KindAppointment, own))
	})

	t.Run("create", func(t *testing.T) {
		assert.True(t, authz.Authorize(providerL2, authz.OpCreate, authz.KindAppointment, authz.Ownership{}))
		assert.False(t, authz.Authorize(customerL1, authz.OpCreate, authz.KindAppointment, authz.Ownership{}))
	})
}

func TestAuthorizeInstitution(t *testing.T) {
	own := authz.Ownership{TargetInsID: "ins-cus"}

	assert.True(t, authz.Authorize(customerL2, authz.OpView, authz.KindInstitution, own))
	assert.False(t, authz.Authorize(guest, authz.OpView, authz.KindInstitution, own))

	assert.True(t, authz.Authorize(customerL1, authz.OpCreate, authz.KindInstitution, authz.Ownership{}))
	assert.True(t, authz.Authorize(providerL1, authz.OpCreate, authz.KindInstitution, authz.Ownership{}))
	assert.False(t, authz.Authorize(customerL2, authz.OpCreate, authz.KindInstitution, authz.Ownership{}))

	assert.True(t, authz.Authorize(customerL1, authz.OpUpdate, authz.KindInstitution, own))
	assert.False(t, authz.Authorize(customerL2, authz.OpUpdate, authz.KindInstitution, own))
	assert.False(t, authz.Authorize(providerL1, authz.OpDelete, authz.KindInstitution, own))
	assert.True(t, authz.Authorize(admin, authz.OpDelete, authz.KindInstitution, own))
}

func TestAuthorizeIsgMember(t *testing.T) {
	t.Run("roster is public", func(t *testing.T) {
		assert.True(t, authz.Authorize(guest, authz.OpView, authz.KindIsgMember, authz.Ownership{}))
		assert.True(t, authz.Authorize(authz.Actor{}, authz.OpView, authz.KindIsgMember, authz.Ownership{}))
	})

	t.Run("mutations skip level 1 roles", func(t *testing.T) {
		// Provider level 2 may manage the roster while level 1 may not.
		for _, op := range []authz.Operation{authz.OpCreate, authz.OpUpdate, authz.OpDelete} {
			assert.True(t, authz.Authorize(admin, op, authz.KindIsgMember, authz.Ownership{}))
			assert.True(t, authz.Authorize(providerL2, op, authz.KindIsgMember, authz.Ownership{}))
			assert.False(t, authz.Authorize(providerL1, op, authz.KindIsgMember, authz.Ownership{}))
			assert.False(t, authz.Authorize(customerL1, op, authz.KindIsgMember, authz.Ownership{}))
			assert.False(t, authz.Authorize(customerL2, op, authz.KindIsgMember, authz.Ownership{}))
		}
	})
}

func TestAuthorizeMaintenanceCard(t *testing.T) {
	own := authz.Ownership{ProviderInsID: "ins-prv", CustomerInsID: "ins-cus"}

	assert.True(t, authz.Authorize(customerL2, authz.OpView, authz.KindMaintenanceCard, own))
	assert.True(t, authz.Authorize(providerL1, authz.OpView, authz.KindMaintenanceCard, own))
	assert.False(t, authz.Authorize(guest, authz.OpView, authz.KindMaintenanceCard, own))

	assert.True(t, authz.Authorize(providerL2, authz.OpCreate, authz.KindMaintenanceCard, authz.Ownership{}))
	assert.False(t, authz.Authorize(customerL1, authz.OpCreate, authz.KindMaintenanceCard, authz.Ownership{}))

	assert.True(t, authz.Authorize(providerL1, authz.OpUpdate, authz.KindMaintenanceCard, own))
	assert.True(t, authz.Authorize(providerL2, authz.OpDelete, authz.KindMaintenanceCard, own))
	assert.False(t, authz.Authorize(customerL1, authz.OpDelete, authz.KindMaintenanceCard, own))

	otherProvider := authz.Ownership{ProviderInsID: "ins-prv2", CustomerInsID: "ins-cus"}
	assert.False(t, authz.Authorize(providerL1, authz.OpView, authz.KindMaintenanceCard, otherProvider))
	assert.False(t, authz.Authorize(providerL1, authz.OpUpdate, authz.KindMaintenanceCard, otherProvider))
}

func TestAuthorizeNotification(t *testing.T) {
	own := authz.Ownership{RecipientID: "cus-2", RecipientInsID: "ins-cus"}

	assert.True(t, authz.Authorize(customerL2, authz.OpView, authz.KindNotification, own))
	assert.True(t, authz.Authorize(customerL1, authz.OpView, authz.KindNotification, own))
	assert.False(t, authz.Authorize(providerL2, authz.OpView, authz.KindNotification, own))
	assert.False(t, authz.Authorize(providerL1, authz.OpView, authz.KindNotification, own))

	for _, op := range []authz.Operation{authz.OpCreate, authz.OpUpdate, authz.OpDelete} {
		assert.True(t, authz.Authorize(admin, op, authz.KindNotification, own))
		assert.False(t, authz.Authorize(customerL1, op, authz.KindNotification, own))
		assert.False(t, authz.Authorize(providerL2, op, authz.KindNotification, own))
	}
}

func TestAuthorizeOfferRequest(t *testing.T) {
	own := authz.Ownership{CreatorID: "cus-2", CreatorInsID: "ins-cus", Status: "Aktif"}

	t.Run("view", func(t *testing.T) {
		// Providers browse every request; customers see their institution's.
		assert.True(t, authz.Authorize(providerL1, authz.OpView, authz.KindOfferRequest, own))
		assert.True(t, authz.Authorize(providerL2, authz.OpView, authz.KindOfferRequest, own))
		assert.True(t, authz.Authorize(customerL2, authz.OpView, authz.KindOfferRequest, own))

		stranger := authz.Actor{Role: authz.RoleCustomerL1, InstitutionID: "ins-x"}
		assert.False(t, authz.Authorize(stranger, authz.OpView, authz.KindOfferRequest, own))
	})

	t.Run("create", func(t *testing.T) {
		assert.True(t, authz.Authorize(customerL1, authz.OpCreate, authz.KindOfferRequest, authz.Ownership{}))
		assert.False(t, authz.Authorize(customerL2, authz.OpCreate, authz.KindOfferRequest, authz.Ownership{}))
		assert.False(t, authz.Authorize(providerL1, authz.OpCreate, authz.KindOfferRequest, authz.Ownership{}))
	})

	t.Run("update", func(t *testing.T) {
		assert.True(t, authz.Authorize(customerL1, authz.OpUpdate, authz.KindOfferRequest, own))
		assert.True(t, authz.Authorize(customerL2, authz.OpUpdate, authz.KindOfferRequest, own))
		assert.False(t, authz.Authorize(providerL1, authz.OpUpdate, authz.KindOfferRequest, own))
		assert.False(t, authz.Authorize(providerL2, authz.OpUpdate, authz.KindOfferRequest, own))
	})

	t.Run("delete", func(t *testing.T) {
		assert.True(t, authz.Authorize(customerL1, authz.OpDelete, authz.KindOfferRequest, own))
		assert.False(t, authz.Authorize(customerL2, authz.OpDelete, authz.KindOfferRequest, own))
		assert.False(t, authz.Authorize(providerL1, authz.OpDelete, authz.KindOfferRequest, own))
	})
}

func TestAuthorizeOfferCard(t *testing.T) {
	own := authz.Ownership{
		CreatorID:      "prv-2",
		CreatorInsID:   "ins-prv",
		RecipientID:    "cus-2",
		RecipientInsID: "ins-cus",
	}

	t.Run("view", func(t *testing.T) {
		assert.True(t, authz.Authorize(customerL1, authz.OpView, authz.KindOfferCard, own))
		assert.True(t, authz.Authorize(providerL2, authz.OpView, authz.KindOfferCard, own))

		otherProvider := authz.Actor{Role: authz.RoleProviderL1, InstitutionID: "ins-x"}
		assert.False(t, authz.Authorize(otherProvider, authz.OpView, authz.KindOfferCard, own))
	})

	t.Run("update", func(t *testing.T) {
		assert.True(t, authz.Authorize(providerL1, authz.OpUpdate, authz.KindOfferCard, own))
		assert.True(t, authz.Authorize(providerL2, authz.OpUpdate, authz.KindOfferCard, own))
		assert.False(t, authz.Authorize(customerL1, authz.OpUpdate, authz.KindOfferCard, own))
	})

	t.Run("delete excludes the issuing level 2 provider", func(t *testing.T) {
		// A level 2 provider can issue an offer it then cannot withdraw.
		assert.True(t, authz.Authorize(providerL2, authz.OpCreate, authz.KindOfferCard, authz.Ownership{}))
		assert.False(t, authz.Authorize(providerL2, authz.OpDelete, authz.KindOfferCard, own))
		assert.True(t, authz.Authorize(providerL1, authz.OpDelete, authz.KindOfferCard, own))
		assert.True(t, authz.Authorize(admin, authz.OpDelete, authz.KindOfferCard, own))
	})
}

func TestAuthorizeUser(t *testing.T) {
	own := authz.Ownership{TargetInsID: "ins-cus"}

	assert.True(t, authz.Authorize(providerL2, authz.OpView, authz.KindUser, own))
	assert.False(t, authz.Authorize(guest, authz.OpView, authz.KindUser, own))

	assert.True(t, authz.Authorize(customerL1, authz.OpCreate, authz.KindUser, authz.Ownership{}))
	assert.False(t, authz.Authorize(customerL2, authz.OpCreate, authz.KindUser, authz.Ownership{}))

	assert.True(t, authz.Authorize(customerL1, authz.OpUpdate, authz.KindUser, own))
	assert.False(t, authz.Authorize(providerL1, authz.OpUpdate, authz.KindUser, own))
	assert.False(t, authz.Authorize(customerL2, authz.OpDelete, authz.KindUser, own))
}

func TestCanRespondToOfferRequest(t *testing.T) {
	open := authz.Ownership{CreatorID: "cus-2", CreatorInsID: "ins-cus", Status: "Aktif"}
	cancelled := authz.Ownership{CreatorID: "cus-2", CreatorInsID: "ins-cus", Status: "Iptal"}

	assert.True(t, authz.CanRespondToOfferRequest(providerL1, open))
	assert.True(t, authz.CanRespondToOfferRequest(providerL2, open))
	assert.True(t, authz.CanRespondToOfferRequest(admin, open))

	// The owning customer can view the request but never respond to it.
	assert.False(t, authz.CanRespondToOfferRequest(customerL1, open))
	assert.False(t, authz.CanRespondToOfferRequest(customerL2, open))
	assert.False(t, authz.CanRespondToOfferRequest(guest, open))

	assert.False(t, authz.CanRespondToOfferRequest(providerL1, cancelled))
	assert.False(t, authz.CanRespondToOfferRequest(admin, cancelled))
	assert.False(t, authz.CanRespondToOfferRequest(providerL1, authz.Ownership{}))
}

// Scenario coverage: a level 1 customer's device lifecycle against a
// level 2 colleague and an outside provider.
func TestDeviceLifecycleScenario(t *testing.T) {
	device := authz.Ownership{OwnerID: "cus-1", OwnerInsID: "ins-cus", ProviderID: "prv-2", ProviderInsID: "ins-prv"}

	// The registering level 1 customer has full control.
	assert.True(t, authz.Authorize(customerL1, authz.OpView, authz.KindDevice, device))
	assert.True(t, authz.Authorize(customerL1, authz.OpUpdate, authz.KindDevice, device))
	assert.True(t, authz.Authorize(customerL1, authz.OpDelete, authz.KindDevice, device))

	// A colleague in the same institution is not the owner of record.
	assert.False(t, authz.Authorize(customerL2, authz.OpView, authz.KindDevice, device))

	// The assigned provider technician sees the device but cannot touch it.
	assert.True(t, authz.Authorize(providerL2, authz.OpView, authz.KindDevice, device))
	assert.False(t, authz.Authorize(providerL2, authz.OpUpdate, authz.KindDevice, device))
	assert.False(t, authz.Authorize(providerL2, authz.OpDelete, authz.KindDevice, device))
}
