package wizard

import (
	"math"
	"strings"
	"time"

	"culturehub/internal/models"
)

type BasicInfo struct {
	Title       string    `json:"title" validate:"required,max=200"`
	Description string    `json:"description" validate:"required,min=20,max=5000"`
	Category    string    `json:"category" validate:"required,oneof=music theatre dance exhibition cinema literature festival workshop other"`
	StartAt     time.Time `json:"start_at" validate:"required"`
	EndAt       time.Time `json:"end_at" validate:"required"`
	ArtistIDs   []int     `json:"artist_ids,omitempty" validate:"dive,gt=0"`
}

type Venue struct {
	VenueName string   `json:"venue_name" validate:"required,max=200"`
	Address   string   `json:"address" validate:"required,max=300"`
	City      string   `json:"city" validate:"required,max=100"`
	Latitude  *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
}

type Media struct {
	CoverImageURL string   `json:"cover_image_url" validate:"required,url"`
	Gallery       []string `json:"gallery,omitempty" validate:"max=10,dive,url"`
}

type Ticketing struct {
	IsFree   bool    `json:"is_free"`
	Price    float64 `json:"price" validate:"gte=0"`
	Currency string  `json:"currency" validate:"omitempty,len=3"`
	Capacity int     `json:"capacity" validate:"required,gt=0,lte=100000"`
}

// PriceCents is the price as stored, rounded to whole cents.
func (t Ticketing) PriceCents() int64 {
	return int64(math.Round(t.Price * 100))
}

// Form is the whole state of an event submission, one section per step.
type Form struct {
	BasicInfo BasicInfo `json:"basic_info"`
	Venue     Venue     `json:"venue"`
	Media     Media     `json:"media"`
	Ticketing Ticketing `json:"ticketing"`
}

// Draft is a partially filled form together with the step it was left on.
type Draft struct {
	Step      Step      `json:"step"`
	Form      Form      `json:"form"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToPayload flattens the form into the row inserted for a new event.
func ToPayload(form *Form, organizerID string) *models.Event {
	event := &models.Event{
		OrganizerID:   organizerID,
		Title:         strings.TrimSpace(form.BasicInfo.Title),
		Description:   strings.TrimSpace(form.BasicInfo.Description),
		Category:      form.BasicInfo.Category,
		StartAt:       form.BasicInfo.StartAt.UTC(),
		EndAt:         form.BasicInfo.EndAt.UTC(),
		VenueName:     strings.TrimSpace(form.Venue.VenueName),
		Address:       strings.TrimSpace(form.Venue.Address),
		City:          strings.TrimSpace(form.Venue.City),
		Latitude:      form.Venue.Latitude,
		Longitude:     form.Venue.Longitude,
		CoverImageURL: form.Media.CoverImageURL,
		Gallery:       append([]string{}, form.Media.Gallery...),
		IsFree:        form.Ticketing.IsFree,
		Currency:      strings.ToLower(form.Ticketing.Currency),
		Capacity:      form.Ticketing.Capacity,
		Status:        models.EventPending,
	}

	if !event.IsFree {
		event.PriceCents = form.Ticketing.PriceCents()
	}
	if event.Currency == "" {
		event.Currency = "eur"
	}

	return event
}
