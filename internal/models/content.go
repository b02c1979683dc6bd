package models

import (
	"time"

	"github.com/lib/pq"
)

type ContentStatus string

const (
	ContentDraft     ContentStatus = "draft"
	ContentPublished ContentStatus = "published"
)

type CulturalContent struct {
	ID         int            `json:"id" db:"id"`
	AuthorID   string         `json:"author_id" db:"author_id"`
	AuthorName string         `json:"author_name" db:"author_name"`
	Title      string         `json:"title" db:"title"`
	Body       string         `json:"body" db:"body"`
	Category   string         `json:"category" db:"category"`
	Tags       pq.StringArray `json:"tags" db:"tags"`
	Status     ContentStatus  `json:"status" db:"status"`
	CreatedAt  time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at" db:"updated_at"`
}

type Review struct {
	ID        int       `json:"id" db:"id"`
	EventID   int       `json:"event_id" db:"event_id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Rating    int       `json:"rating" db:"rating"`
	Comment   string    `json:"comment" db:"comment"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type Favorite struct {
	UserID    string    `json:"user_id" db:"user_id"`
	EventID   int       `json:"event_id" db:"event_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
