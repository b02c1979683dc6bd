package models

import "time"

type Role string

const (
	RoleUser      Role = "user"
	RoleOrganizer Role = "organizer"
	RoleAdmin     Role = "admin"
)

type UserProfile struct {
	ID           string    `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	FullName     string    `json:"full_name" db:"full_name"`
	Role         Role      `json:"role" db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

type ArtistProfile struct {
	ID         int       `json:"id" db:"id"`
	UserID     *string   `json:"user_id,omitempty" db:"user_id"`
	Name       string    `json:"name" db:"name"`
	Discipline string    `json:"discipline" db:"discipline"`
	Bio        string    `json:"bio" db:"bio"`
	ImageURL   string    `json:"image_url" db:"image_url"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

type ArtistDetails struct {
	ArtistProfile
	UpcomingEvents []Event `json:"upcoming_events"`
}
