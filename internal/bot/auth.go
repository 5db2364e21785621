package bot

// Auth handles admin authorization with O(1) lookup
type Auth struct {
	allowed map[int64]bool
}

// NewAuth creates a new Auth from the fixed admin id allow-set.
func NewAuth(adminIDs []int64) *Auth {
	allowed := make(map[int64]bool, len(adminIDs))
	for _, id := range adminIDs {
		allowed[id] = true
	}
	return &Auth{allowed: allowed}
}

// IsAuthorized checks if a Telegram user id is in the allow-set.
// The zero id is never authorized.
func (a *Auth) IsAuthorized(userID int64) bool {
	if userID == 0 {
		return false
	}
	return a.allowed[userID]
}

// IDs returns the allow-set as a slice (for the dashboard authenticator).
func (a *Auth) IDs() []int64 {
	ids := make([]int64, 0, len(a.allowed))
	for id := range a.allowed {
		ids = append(ids, id)
	}
	return ids
}
