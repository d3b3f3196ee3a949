// api/authz/actor.go
package authz

// Role is the closed set of roles a session can carry. The customer and
// provider sides each have two tiers: SEVIYE1 is institution-scoped, SEVIYE2
// is scoped to the individual user.
type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleCustomerL1 Role = "MUSTERI_SEVIYE1"
	RoleCustomerL2 Role = "MUSTERI_SEVIYE2"
	RoleProviderL1 Role = "HIZMETSAGLAYICI_SEVIYE1"
	RoleProviderL2 Role = "HIZMETSAGLAYICI_SEVIYE2"
	RoleUser       Role = "USER"
	RoleGuest      Role = "GUEST"
)

// Actor is the acting identity for one request, rebuilt from session state.
// UserID and InstitutionID may be empty; the policy rules treat an empty id
// as "never matches", not as a wildcard.
type Actor struct {
	Role          Role
	UserID        string
	InstitutionID string
}

// Operation selects which column of a resource's rule table applies.
type Operation int

const (
	OpView Operation = iota
	OpCreate
	OpUpdate
	OpDelete
)

func (op Operation) String() string {
	switch op {
	case OpView:
		return "view"
	case OpCreate:
		return "create"
	case OpUpdate:
		return "update"
	case OpDelete:
		return "delete"
	}
	return "unknown"
}

// ResourceKind tags the resource type a decision is being made for.
type ResourceKind string

const (
	KindDevice          ResourceKind = "Devices"
	KindAppointment     ResourceKind = "Appointments"
	KindInstitution     ResourceKind = "Institutions"
	KindIsgMember       ResourceKind = "IsgMembers"
	KindMaintenanceCard ResourceKind = "MaintenanceCards"
	KindNotification    ResourceKind = "Notifications"
	KindOfferRequest    ResourceKind = "OfferRequests"
	KindOfferCard       ResourceKind = "OfferCards"
	KindUser            ResourceKind = "User"
)

func (a Actor) isCustomer() bool {
	return a.Role == RoleCustomerL1 || a.Role == RoleCustomerL2
}

func (a Actor) isProvider() bool {
	return a.Role == RoleProviderL1 || a.Role == RoleProviderL2
}

func (a Actor) isLevel1() bool {
	return a.Role == RoleCustomerL1 || a.Role == RoleProviderL1
}

func (a Actor) isLevel2() bool {
	return a.Role == RoleCustomerL2 || a.Role == RoleProviderL2
}

// isEnumeratedRole reports whether the role is one of the authenticated
// roles in the closed set. Guest and any role string outside the set are
// excluded, so an unrecognized claim value denies rather than passes.
func isEnumeratedRole(role Role) bool {
	switch role {
	case RoleAdmin, RoleCustomerL1, RoleCustomerL2, RoleProviderL1, RoleProviderL2, RoleUser:
		return true
	}
	return false
}
