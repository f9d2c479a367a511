package user

import (
	"errors"
	"strings"
)

var (
	ErrEmptyUserID = errors.New("user id cannot be empty")
	ErrInvalidRole = errors.New("invalid role")
)

// Profile is the signed-in user as returned by the marketplace. Guest-info
// defaults of a new booking draft are taken from it.
type Profile struct {
	id       string
	fullName string
	email    string
	phone    string
	role     Role
}

// NewProfile keeps email and phone as given: profiles created before the
// marketplace validated contact details still have to open a wizard.
func NewProfile(id, firstName, lastName, email, phone string, role Role) (*Profile, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrEmptyUserID
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	name := strings.TrimSpace(strings.TrimSpace(firstName) + " " + strings.TrimSpace(lastName))
	return &Profile{
		id:       id,
		fullName: name,
		email:    strings.TrimSpace(email),
		phone:    strings.TrimSpace(phone),
		role:     role,
	}, nil
}

func (p *Profile) ID() string       { return p.id }
func (p *Profile) FullName() string { return p.fullName }
func (p *Profile) Email() string    { return p.email }
func (p *Profile) Phone() string    { return p.phone }
func (p *Profile) Role() Role       { return p.role }
