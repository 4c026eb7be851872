package account

// LoginInput for POST /account/login
type LoginInput struct {
	Body struct {
		Email    string `json:"email"    format:"email" required:"true" doc:"Account email"    example:"ana@jardinverde.com"`
		Password string `json:"password" minLength:"6"  required:"true" doc:"Account password" example:"hunter22"`
	}
}

// RegisterInput for POST /account/register
type RegisterInput struct {
	Body struct {
		Name     string `json:"name"     minLength:"1" maxLength:"100" required:"true" doc:"First name"       example:"Ana"`
		Surname  string `json:"surname"  minLength:"1" maxLength:"100" required:"true" doc:"Last name"        example:"Flores"`
		Email    string `json:"email"    format:"email"               required:"true" doc:"Account email"    example:"ana@jardinverde.com"`
		Password string `json:"password" minLength:"6"                required:"true" doc:"Account password" example:"hunter22"`
	}
}

// LogoutInput for POST /account/logout (token comes from the bearer header)
type LogoutInput struct{}

// MeInput for GET /account/me
type MeInput struct{}

// ListUsersInput for GET /account/users
type ListUsersInput struct {
	Search string `query:"search" required:"false" doc:"Filter by name or email, case-insensitive" example:"ana"`
}

// GrantAdminInput for POST /account/grant-admin
type GrantAdminInput struct {
	Body struct {
		Email string `json:"email" format:"email" required:"true" doc:"Email of the profile to promote" example:"pedro@jardinverde.com"`
	}
}
