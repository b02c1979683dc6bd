package models

import (
	"time"

	"github.com/lib/pq"
)

type EventStatus string

const (
	EventPending  EventStatus = "pending"
	EventApproved EventStatus = "approved"
	EventRejected EventStatus = "rejected"
)

type Event struct {
	ID              int            `json:"id" db:"id"`
	OrganizerID     string         `json:"organizer_id" db:"organizer_id"`
	Title           string         `json:"title" db:"title"`
	Description     string         `json:"description" db:"description"`
	Category        string         `json:"category" db:"category"`
	StartAt         time.Time      `json:"start_at" db:"start_at"`
	EndAt           time.Time      `json:"end_at" db:"end_at"`
	VenueName       string         `json:"venue_name" db:"venue_name"`
	Address         string         `json:"address" db:"address"`
	City            string         `json:"city" db:"city"`
	Latitude        *float64       `json:"latitude,omitempty" db:"latitude"`
	Longitude       *float64       `json:"longitude,omitempty" db:"longitude"`
	CoverImageURL   string         `json:"cover_image_url" db:"cover_image_url"`
	Gallery         pq.StringArray `json:"gallery" db:"gallery"`
	IsFree          bool           `json:"is_free" db:"is_free"`
	PriceCents      int64          `json:"price_cents" db:"price_cents"`
	Currency        string         `json:"currency" db:"currency"`
	Capacity        int            `json:"capacity" db:"capacity"`
	Sold            int            `json:"sold" db:"sold"`
	Status          EventStatus    `json:"status" db:"status"`
	RejectionReason string         `json:"rejection_reason,omitempty" db:"rejection_reason"`
	CreatedAt       time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at" db:"updated_at"`
}

func (e *Event) Remaining() int {
	if e.Sold >= e.Capacity {
		return 0
	}
	return e.Capacity - e.Sold
}

// EventDetails is an event together with everything the detail page joins in.
type EventDetails struct {
	Event
	Artists       []ArtistProfile `json:"artists"`
	AverageRating float64         `json:"average_rating"`
	ReviewCount   int             `json:"review_count"`
	Remaining     int             `json:"remaining"`
}

type EventFilter struct {
	Category string
	City     string
	Search   string
	Upcoming bool
	Status   EventStatus
	Limit    int
	Offset   int
}
