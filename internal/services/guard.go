package services

// Owned is a resource with exactly one owning user.
type Owned interface {
	OwnerID() uint
}

// AuthorizeOwner allows the mutation only when requesterID owns resource.
func AuthorizeOwner(resource Owned, requesterID uint) error {
	if resource == nil || requesterID == 0 || resource.OwnerID() != requesterID {
		return newError(ErrForbidden, nil, "Unauthorized")
	}
	return nil
}
