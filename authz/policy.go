// api/authz/policy.go
package authz

// Offer requests only accept responding offers while in this state.
const offerRequestOpen = "Aktif"

// Authorize computes whether the actor may perform op on a resource of the
// given kind with the given ownership view. It is a pure function: no store
// access, no side effects, safe for concurrent use.
//
// The per-resource rules are deliberate business policy, including the two
// asymmetric cases (IsgMembers create/delete and OfferCards delete skip the
// usual "level 1 is broader than level 2" pattern). Do not normalize them.
func Authorize(actor Actor, op Operation, kind ResourceKind, own Ownership) bool {
	switch kind {
	case KindDevice:
		return authorizeDevice(actor, op, own)
	case KindAppointment:
		return authorizeAppointment(actor, op, own)
	case KindInstitution:
		return authorizeInstitution(actor, op, own)
	case KindIsgMember:
		return authorizeIsgMember(actor, op)
	case KindMaintenanceCard:
		return authorizeMaintenanceCard(actor, op, own)
	case KindNotification:
		return authorizeNotification(actor, op, own)
	case KindOfferRequest:
		return authorizeOfferRequest(actor, op, own)
	case KindOfferCard:
		return authorizeOfferCard(actor, op, own)
	case KindUser:
		return authorizeUser(actor, op, own)
	}
	return false
}

// CanRespondToOfferRequest reports whether the actor may answer an offer
// request with an offer. Distinct from Authorize: customers can view their
// own requests but never respond, and the request must still be open.
func CanRespondToOfferRequest(actor Actor, own Ownership) bool {
	if own.Status != offerRequestOpen {
		return false
	}
	return actor.Role == RoleAdmin || actor.isProvider()
}

func authorizeDevice(actor Actor, op Operation, own Ownership) bool {
	switch op {
	case OpView:
		if actor.Role == RoleAdmin {
			return true
		}
		if actor.isCustomer() {
			return matchID(actor.UserID, own.OwnerID)
		}
		if actor.isProvider() {
			return matchID(actor.UserID, own.ProviderID)
		}
		return false
	case OpCreate:
		return actor.Role == RoleAdmin || actor.isCustomer()
	case OpUpdate, OpDelete:
		// Level 2 customers can register devices but not remove them.
		if actor.Role == RoleAdmin {
			return true
		}
		return actor.Role == RoleCustomerL1 && matchID(actor.UserID, own.OwnerID)
	}
	return false
}

func authorizeAppointment(actor Actor, op Operation, own Ownership) bool {
	switch op {
	case OpView:
		switch actor.Role {
		case RoleAdmin:
			return true
		case RoleCustomerL2:
			return matchID(actor.UserID, own.RecipientID)
		case RoleCustomerL1:
			return matchID(actor.InstitutionID, own.RecipientInsID)
		case RoleProviderL2:
			return matchID(actor.UserID, own.CreatorID)
		case RoleProviderL1:
			return matchID(actor.InstitutionID, own.CreatorInsID)
		}
		return false
	case OpCreate:
		return actor.Role == RoleAdmin || actor.isProvider()
	case OpUpdate, OpDelete:
		// Only the creating (provider) side manages an appointment, never
		// the recipient side.
		switch actor.Role {
		case RoleAdmin:
			return true
		case RoleProviderL2:
			return matchID(actor.UserID, own.CreatorID)
		case RoleProviderL1:
			return matchID(actor.InstitutionID, own.CreatorInsID)
		}
		return false
	}
	return false
}

func authorizeInstitution(actor Actor, op Operation, own Ownership) bool {
	switch op {
	case OpView:
		return isEnumeratedRole(actor.Role)
	case OpCreate:
		return actor.Role == RoleAdmin || actor.Role == RoleCustomerL1 || actor.Role == RoleProviderL1
	case OpUpdate, OpDelete:
		if actor.Role == RoleAdmin {
			return true
		}
		return actor.isLevel1() && matchID(actor.InstitutionID, own.TargetInsID)
	}
	return false
}

func authorizeIsgMember(actor Actor, op Operation) bool {
	switch op {
	case OpView:
		// The safety-officer roster is public to every session.
		return true
	case OpCreate, OpUpdate, OpDelete:
		// Intentionally skips level 1 roles entirely.
		return actor.Role == RoleAdmin || actor.Role == RoleProviderL2
	}
	return false
}

func authorizeMaintenanceCard(actor Actor, op Operation, own Ownership) bool {
	switch op {
	case OpView:
		if actor.Role == RoleAdmin {
			return true
		}
		if actor.isCustomer() {
			return matchID(actor.InstitutionID, own.CustomerInsID)
		}
		if actor.isProvider() {
			return matchID(actor.InstitutionID, own.ProviderInsID)
		}
		return false
	case OpCreate:
		return actor.Role == RoleAdmin || actor.isProvider()
	case OpUpdate, OpDelete:
		// Customers only ever read their maintenance history.
		if actor.Role == RoleAdmin {
			return true
		}
		return actor.isProvider() && matchID(actor.InstitutionID, own.ProviderInsID)
	}
	return false
}

func authorizeNotification(actor Actor, op Operation, own Ownership) bool {
	switch op {
	case OpView:
		if actor.Role == RoleAdmin {
			return true
		}
		if actor.isLevel2() {
			return matchID(actor.UserID, own.RecipientID)
		}
		if actor.isLevel1() {
			return matchID(actor.InstitutionID, own.RecipientInsID)
		}
		return false
	case OpCreate, OpUpdate, OpDelete:
		return actor.Role == RoleAdmin
	}
	return false
}

func authorizeOfferRequest(actor Actor, op Operation, own Ownership) bool {
	switch op {
	case OpView:
		if actor.Role == RoleAdmin || actor.isProvider() {
			// Providers browse every open request on the marketplace.
			return true
		}
		return actor.isCustomer() && matchID(actor.InstitutionID, own.CreatorInsID)
	case OpCreate:
		return actor.Role == RoleAdmin || actor.Role == RoleCustomerL1
	case OpUpdate:
		// Single-entity variant: only the owning (customer) side may edit,
		// level 1 by institution, level 2 by exact creator id.
		switch actor.Role {
		case RoleAdmin:
			return true
		case RoleCustomerL1:
			return matchID(actor.InstitutionID, own.CreatorInsID)
		case RoleCustomerL2:
			return matchID(actor.UserID, own.CreatorID)
		}
		return false
	case OpDelete:
		if actor.Role == RoleAdmin {
			return true
		}
		return actor.Role == RoleCustomerL1 && matchID(actor.InstitutionID, own.CreatorInsID)
	}
	return false
}

func authorizeOfferCard(actor Actor, op Operation, own Ownership) bool {
	switch op {
	case OpView:
		if actor.Role == RoleAdmin {
			return true
		}
		if actor.isCustomer() {
			return matchID(actor.InstitutionID, own.RecipientInsID)
		}
		if actor.isProvider() {
			return matchID(actor.InstitutionID, own.CreatorInsID)
		}
		return false
	case OpCreate:
		return actor.Role == RoleAdmin || actor.isProvider()
	case OpUpdate:
		// Single-entity variant: only the issuing (provider) side may edit.
		switch actor.Role {
		case RoleAdmin:
			return true
		case RoleProviderL1:
			return matchID(actor.InstitutionID, own.CreatorInsID)
		case RoleProviderL2:
			return matchID(actor.UserID, own.CreatorID)
		}
		return false
	case OpDelete:
		// Level 2 providers can issue offers but not withdraw them.
		if actor.Role == RoleAdmin {
			return true
		}
		return actor.Role == RoleProviderL1 && matchID(actor.InstitutionID, own.CreatorInsID)
	}
	return false
}

func authorizeUser(actor Actor, op Operation, own Ownership) bool {
	switch op {
	case OpView:
		return isEnumeratedRole(actor.Role)
	case OpCreate:
		return actor.Role == RoleAdmin || actor.Role == RoleCustomerL1 || actor.Role == RoleProviderL1
	case OpUpdate, OpDelete:
		if actor.Role == RoleAdmin {
			return true
		}
		return actor.isLevel1() && matchID(actor.InstitutionID, own.TargetInsID)
	}
	return false
}
