package user

import (
	"strings"

	"github.com/google/uuid"
)

// User is the registration aggregate. Self-service registration always yields RoleUser;
// employees and admins are provisioned out of band.
type User struct {
	id           uuid.UUID
	username     Username
	email        Email
	passwordHash string
	firstName    string
	lastName     string
	avatarLink   *string
	role         Role
}

func NewUser(username Username, email Email, passwordHash, firstName, lastName string, avatarLink *string) *User {
	return &User{
		id:           uuid.New(),
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		firstName:    strings.TrimSpace(firstName),
		lastName:     strings.TrimSpace(lastName),
		avatarLink:   avatarLink,
		role:         RoleUser,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Username() Username   { return u.username }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) FirstName() string    { return u.firstName }
func (u *User) LastName() string     { return u.lastName }
func (u *User) AvatarLink() *string  { return u.avatarLink }
func (u *User) Role() Role           { return u.role }
