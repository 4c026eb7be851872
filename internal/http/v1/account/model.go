package account

import "github.com/jardinverde/gardenia/internal/entity"

// Profile represents the signed-in profile in responses.
type Profile struct {
	ID      string `json:"id"      doc:"Profile identifier"   example:"uid-9f2c"`
	Name    string `json:"name"    doc:"First name"           example:"Ana"`
	Surname string `json:"surname" doc:"Last name"            example:"Flores"`
	Email   string `json:"email"   doc:"Account email"        example:"ana@jardinverde.com"`
	Role    string `json:"role"    doc:"Assigned role"        example:"admin" enum:"admin,user"`
}

// Session represents an established session in responses.
type Session struct {
	Token   string  `json:"token" doc:"Bearer token for subsequent requests"`
	Profile Profile `json:"profile"`
}

func toHTTPProfile(p entity.Profile) Profile {
	return Profile{
		ID:      p.ID,
		Name:    p.Name,
		Surname: p.Surname,
		Email:   p.Email,
		Role:    string(p.Role),
	}
}
