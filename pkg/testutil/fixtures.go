package testutil

import (
	artistmodels "oirla/internal/artist/models"
	authmodels "oirla/internal/auth/models"
	eventmodels "oirla/internal/event/models"
	id "oirla/pkg/domain"
)

// UserBuilder provides a fluent interface for building test users.
type UserBuilder struct {
	user *authmodels.User
}

// NewUserBuilder creates an artist user with sensible defaults.
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		user: authmodels.NewUser("artist@example.com", "digest", id.RoleArtist),
	}
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.user.Email = email
	return b
}

func (b *UserBuilder) WithDigest(digest string) *UserBuilder {
	b.user.PasswordDigest = digest
	return b
}

func (b *UserBuilder) AsAdmin() *UserBuilder {
	b.user.Role = id.RoleAdmin
	return b
}

func (b *UserBuilder) Build() *authmodels.User {
	return b.user
}

// NewProfileFor builds an unvalidated profile owned by user.
func NewProfileFor(user *authmodels.User, name string) *artistmodels.Profile {
	return artistmodels.NewProfile(user.ID, name, "")
}

// EventBuilder provides a fluent interface for building test events.
type EventBuilder struct {
	event *eventmodels.Event
}

// NewEventBuilder creates a free evening event on date for artistID.
func NewEventBuilder(artistID id.ArtistID, date string) *EventBuilder {
	return &EventBuilder{
		event: &eventmodels.Event{
			ID:        id.NewEventID(),
			ArtistID:  artistID,
			Title:     "Test Show",
			Date:      date,
			Time:      "21:00",
			Venue:     "Test Venue",
			EntryType: eventmodels.EntryGratuito,
		},
	}
}

func (b *EventBuilder) WithTitle(title string) *EventBuilder {
	b.event.Title = title
	return b
}

func (b *EventBuilder) WithPrice(price float64) *EventBuilder {
	b.event.EntryType = eventmodels.EntryArancelado
	b.event.Price = &price
	return b
}

func (b *EventBuilder) Build() *eventmodels.Event {
	return b.event
}
