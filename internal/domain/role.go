package domain

type Role string

const (
	// RoleRegular users only see and mutate their own rentals and profile.
	RoleRegular Role = "user"
	// RoleStoreAdmin is an admin scoped to the single store they manage.
	RoleStoreAdmin Role = "admin"
	// RoleSuper is a global admin with no store restriction.
	RoleSuper Role = "super"
)

// Actor is the authenticated principal with its role resolved once per
// request. Services receive it explicitly instead of re-deriving the role
// from the user record at every check.
type Actor struct {
	UserID  int32
	Role    Role
	StoreID int32 // managed store, set only for RoleStoreAdmin
}

// ActorFor derives the actor from the two persisted flags: is_admin with a
// managed store means store-admin, is_admin without one means super.
func ActorFor(u *User) Actor {
	a := Actor{UserID: u.ID, Role: RoleRegular}
	if !u.IsAdmin {
		return a
	}
	if u.ManagedStoreID == nil {
		a.Role = RoleSuper
		return a
	}
	a.Role = RoleStoreAdmin
	a.StoreID = *u.ManagedStoreID
	return a
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleStoreAdmin || a.Role == RoleSuper
}

func (a Actor) IsSuper() bool {
	return a.Role == RoleSuper
}

// CanAccessStore reports whether the actor may operate on a resource that
// touches any of the given stores. Supers always may; store-admins only
// when their managed store is among them; regular users never.
func (a Actor) CanAccessStore(storeIDs ...int32) bool {
	switch a.Role {
	case RoleSuper:
		return true
	case RoleStoreAdmin:
		for _, id := range storeIDs {
			if id == a.StoreID {
				return true
			}
		}
	}
	return false
}
