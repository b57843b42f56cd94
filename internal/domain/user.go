package domain

type User struct {
	ID             int32  `json:"user_id"`
	Name           string `json:"name"`
	Address        string `json:"address"`
	PhoneNumber    string `json:"phone_number"`
	JoinDate       string `json:"join_date"`
	Email          string `json:"email"`
	PasswordHash   string `json:"-"`
	IsAdmin        bool   `json:"is_admin"`
	ManagedStoreID *int32 `json:"managed_store_id"`
}

// RoleNames reports the derived role labels exposed in API responses.
func (u *User) RoleNames() []string {
	return []string{string(ActorFor(u).Role)}
}
