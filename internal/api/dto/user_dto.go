package dto

// SignupRequest payload for new accounts.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Address  string `json:"address"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserRequest payload for profile updates. Only name and address are
// mutable; anything else in the body is ignored.
type UpdateUserRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}
