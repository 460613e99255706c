package models

import (
	"time"

	"oirla/internal/audit"
	id "oirla/pkg/domain"
	str "oirla/pkg/string"
	"oirla/pkg/validation"
)

// EntryType is how attendance is paid for.
type EntryType string

const (
	EntryGorra      EntryType = "gorra"
	EntryGratuito   EntryType = "gratuito"
	EntryBeneficio  EntryType = "beneficio"
	EntryArancelado EntryType = "arancelado"
)

// IsValid reports whether t is one of the known entry types.
func (t EntryType) IsValid() bool {
	switch t {
	case EntryGorra, EntryGratuito, EntryBeneficio, EntryArancelado:
		return true
	default:
		return false
	}
}

// Event is a show published by an artist. Date is YYYY-MM-DD and Time is
// HH:MM, both local to the venue.
type Event struct {
	ID          id.EventID  `json:"id"`
	ArtistID    id.ArtistID `json:"artist_id"`
	Title       string      `json:"title"`
	Date        string      `json:"date"`
	Time        string      `json:"time"`
	Venue       string      `json:"venue"`
	EntryType   EntryType   `json:"entry_type"`
	Price       *float64    `json:"price"`
	TicketURL   string      `json:"ticket_url,omitempty"`
	FlyerURL    string      `json:"flyer_url,omitempty"`
	Description string      `json:"description,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// Snapshot is the audit view of the event.
func (e *Event) Snapshot() audit.Snapshot {
	s := audit.Snapshot{
		"id":          e.ID.String(),
		"artist_id":   e.ArtistID.String(),
		"title":       e.Title,
		"date":        e.Date,
		"time":        e.Time,
		"venue":       e.Venue,
		"entry_type":  string(e.EntryType),
		"price":       nil,
		"ticket_url":  e.TicketURL,
		"flyer_url":   e.FlyerURL,
		"description": e.Description,
	}
	if e.Price != nil {
		s["price"] = *e.Price
	}
	return s
}

// Apply copies the fields of in onto the event.
func (e *Event) Apply(in *Input) {
	e.Title = in.Title
	e.Date = in.Date
	e.Time = in.Time
	e.Venue = in.Venue
	e.EntryType = EntryType(in.EntryType)
	e.Price = in.Price
	e.TicketURL = in.TicketURL
	e.FlyerURL = in.FlyerURL
	e.Description = in.Description
}

// WithArtist is an event joined with its artist, as listed to admins and
// the public.
type WithArtist struct {
	Event
	ArtistName     string `json:"artist_name"`
	ArtistPhoto    string `json:"artist_photo,omitempty"`
	ArtistPhone    string `json:"artist_phone,omitempty"`
	Website        string `json:"website,omitempty"`
	Instagram      string `json:"instagram,omitempty"`
	Spotify        string `json:"spotify,omitempty"`
	AppleMusic     string `json:"apple_music,omitempty"`
	Tidal          string `json:"tidal,omitempty"`
	YouTubeMusic   string `json:"youtube_music,omitempty"`
	YouTubeChannel string `json:"youtube_channel,omitempty"`
}

// Input is the body of event create and update requests.
type Input struct {
	Title       string   `json:"title" validate:"required,notblank,max=200"`
	Date        string   `json:"date" validate:"required,datetime=2006-01-02"`
	Time        string   `json:"time" validate:"required,clock"`
	Venue       string   `json:"venue" validate:"required,notblank,max=200"`
	EntryType   string   `json:"entry_type" validate:"required,oneof=gorra gratuito beneficio arancelado"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	TicketURL   string   `json:"ticket_url" validate:"omitempty,url"`
	FlyerURL    string   `json:"flyer_url" validate:"omitempty,url"`
	Description string   `json:"description" validate:"max=5000"`
}

func (in *Input) Normalize() {
	str.TrimStrings(&in.Title, &in.Date, &in.Time, &in.Venue, &in.EntryType,
		&in.TicketURL, &in.FlyerURL, &in.Description)
	in.Time = padClock(in.Time)
}

func (in *Input) Validate() error {
	if err := validation.Validate(in); err != nil {
		return err
	}
	return validation.CheckEachStringLength(map[string]string{
		"ticket_url": in.TicketURL,
		"flyer_url":  in.FlyerURL,
	}, validation.MaxURLLength)
}

// padClock turns 9:05 into 09:05 so stored and echoed times share one shape.
func padClock(t string) string {
	if len(t) == 4 && t[1] == ':' {
		return "0" + t
	}
	return t
}
