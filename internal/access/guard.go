package access

import (
	"github.com/jordanveksler/stayspot-backend/internal/principal"
)

// Owned is any entity with a single owning user: a spot is owned by its
// ownerId, a review by its userId.
type Owned interface {
	OwnedBy() uint
}

// AuthorizeOwner decides whether p may mutate target. The evaluation order is
// fixed: a missing target reports NotFound before the principal is looked at,
// then a missing principal reports Unauthenticated before ownership is
// compared.
func AuthorizeOwner(p *principal.Principal, target Owned) error {
	if target == nil {
		return NotFound("Resource")
	}
	if p == nil {
		return Unauthenticated()
	}
	if p.ID != target.OwnedBy() {
		return NotOwner()
	}
	return nil
}

// RequireAuthenticated is the guard for creates that have no target entity
// yet (posting a review, creating a spot).
func RequireAuthenticated(p *principal.Principal) error {
	if p == nil {
		return Unauthenticated()
	}
	return nil
}
