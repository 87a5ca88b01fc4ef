package model

import "time"

// User is the stored account record. PasswordHash never leaves the service
// layer; every outward-facing representation goes through Profile().
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"nome"`
	Email        string    `json:"email"`
	Rank         string    `json:"patente"`
	Unit         string    `json:"unidade"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// UserProfile is the client-visible account representation.
type UserProfile struct {
	ID        string    `json:"id"`
	Name      string    `json:"nome"`
	Email     string    `json:"email"`
	Rank      string    `json:"patente"`
	Unit      string    `json:"unidade"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserSummary is the nested reporter view embedded in occurrence responses.
type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"nome"`
	Email string `json:"email"`
	Rank  string `json:"patente"`
	Unit  string `json:"unidade"`
}

func (u User) Profile() UserProfile {
	return UserProfile{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Rank:      u.Rank,
		Unit:      u.Unit,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (u User) Summary() UserSummary {
	return UserSummary{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Rank:  u.Rank,
		Unit:  u.Unit,
	}
}

// AuthResult is returned by register and login: the sanitized account plus a
// freshly signed session token.
type AuthResult struct {
	User  UserProfile `json:"user"`
	Token string      `json:"token"`
}
