// api/authz/ownership.go
package authz

// Ownership is the view over a resource instance the policy needs. Each
// resource type fills the subset of fields that exists for it and leaves the
// rest empty; an empty field never satisfies a match.
type Ownership struct {
	// Devices: the owning customer user and the servicing provider user.
	OwnerID       string
	OwnerInsID    string
	ProviderID    string
	ProviderInsID string

	// Appointments, offers and offer requests: who created the record and
	// who it is addressed to.
	CreatorID      string
	CreatorInsID   string
	RecipientID    string
	RecipientInsID string

	// Maintenance cards: the customer side institution (the provider side
	// reuses ProviderInsID above).
	CustomerInsID string

	// Institutions and users: the institution the target itself belongs to
	// (for an institution, its own id).
	TargetInsID string

	// Offer requests: gate for the respond-with-offer capability.
	Status string
}

// matchID reports whether the actor-side id equals the resource-side id.
// Both sides must be present; a missing id fails closed.
func matchID(actorID, resourceID string) bool {
	return actorID != "" && resourceID != "" && actorID == resourceID
}
