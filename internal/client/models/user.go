package models

import "strings"

// User is the account returned by a successful user login.
type User struct {
	ID        ID     `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
}

func (u User) DisplayName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		name = u.Email
	}
	return name
}

// Admin is the account returned by a successful admin login.
type Admin struct {
	ID    ID     `json:"id"`
	Email string `json:"email"`
}

// AdminUser is a user account as seen from the admin panel. It has no
// password field: the backend reveals a password once, at creation.
type AdminUser struct {
	ID               ID         `json:"id"`
	Email            string     `json:"email"`
	FirstName        string     `json:"first_name"`
	LastName         string     `json:"last_name"`
	Username         string     `json:"username"`
	CreatedAt        Timestamp  `json:"created_at"`
	IsPremium        bool       `json:"is_premium"`
	PremiumExpiresAt *Timestamp `json:"premium_expires_at"`
}

func (u AdminUser) Key() ID { return u.ID }

func (u AdminUser) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Credentials is a generated login pair shown once to the admin.
type Credentials struct {
	Email    string
	Password string
}

// CreatedUser is the create-user response: the new account plus its
// plaintext password.
type CreatedUser struct {
	AdminUser
	Password string `json:"password"`
}

func (c CreatedUser) Credentials() Credentials {
	return Credentials{Email: c.Email, Password: c.Password}
}

// NewUserInput is the body of a create-user request.
type NewUserInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}
