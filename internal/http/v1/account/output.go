package account

// LoginOutput for POST /account/login
type LoginOutput struct {
	Body Session
}

// RegisterOutput for POST /account/register (201 Created)
type RegisterOutput struct {
	Body Session
}

// MeOutput for GET /account/me
type MeOutput struct {
	Body Profile
}

// ListUsersOutput for GET /account/users
type ListUsersOutput struct {
	Body struct {
		Users []Profile `json:"users"`
	}
}
