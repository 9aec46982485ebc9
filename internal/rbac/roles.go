package rbac

// Role names as the Magic Call API spells them in its JWT claims.
// Keep these stable; they are part of the upstream auth contract.
const (
	RoleAdmin = "ROLE_ADMIN"
	RoleUser  = "ROLE_USER"
)

func IsAdmin(roles []string) bool {
	for _, r := range roles {
		if r == RoleAdmin {
			return true
		}
	}
	return false
}
