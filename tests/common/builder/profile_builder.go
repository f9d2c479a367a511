//go:build unit || e2e

package builder

import (
	"estate-booking/internal/domain/user"
)

type ProfileBuilder struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Role      string
}

func NewProfileBuilder() *ProfileBuilder {
	return &ProfileBuilder{
		ID:        "user-1",
		FirstName: "Ada",
		LastName:  "Obi",
		Email:     "ada@example.com",
		Phone:     "+2348012345678",
		Role:      "guest",
	}
}

func (p *ProfileBuilder) With(mutate func(*ProfileBuilder)) *ProfileBuilder {
	mutate(p)
	return p
}

// Build methods
func (p *ProfileBuilder) BuildDomain() (*user.Profile, error) {
	role, err := user.NewRole(p.Role)
	if err != nil {
		return nil, err
	}
	return user.NewProfile(p.ID, p.FirstName, p.LastName, p.Email, p.Phone, role)
}

func (p *ProfileBuilder) MustBuild() *user.Profile {
	profile, err := p.BuildDomain()
	if err != nil {
		panic(err)
	}
	return profile
}

// Fluent builder methods
func (p *ProfileBuilder) WithEmail(email string) *ProfileBuilder {
	p.Email = email
	return p
}

func (p *ProfileBuilder) WithPhone(phone string) *ProfileBuilder {
	p.Phone = phone
	return p
}

func (p *ProfileBuilder) WithRole(role string) *ProfileBuilder {
	p.Role = role
	return p
}
