package models

import (
	"time"

	"oirla/internal/audit"
	id "oirla/pkg/domain"
	str "oirla/pkg/string"
	"oirla/pkg/validation"
)

// Profile is the public-facing record of an artist. Optional text fields
// are empty when unset and stored as NULL.
type Profile struct {
	ID             id.ArtistID   `json:"id"`
	IdentityID     id.IdentityID `json:"user_id"`
	Name           string        `json:"name"`
	PhotoURL       string        `json:"photo_url,omitempty"`
	Phone          string        `json:"phone,omitempty"`
	Website        string        `json:"website,omitempty"`
	Spotify        string        `json:"spotify,omitempty"`
	AppleMusic     string        `json:"apple_music,omitempty"`
	Tidal          string        `json:"tidal,omitempty"`
	YouTubeMusic   string        `json:"youtube_music,omitempty"`
	YouTubeChannel string        `json:"youtube_channel,omitempty"`
	Instagram      string        `json:"instagram,omitempty"`
	Validated      bool          `json:"validated"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// NewProfile builds an unvalidated profile owned by identityID.
func NewProfile(identityID id.IdentityID, name, phone string) *Profile {
	return &Profile{
		ID:         id.NewArtistID(),
		IdentityID: identityID,
		Name:       name,
		Phone:      phone,
	}
}

// Snapshot is the audit view of the profile.
func (p *Profile) Snapshot() audit.Snapshot {
	return audit.Snapshot{
		"id":              p.ID.String(),
		"user_id":         p.IdentityID.String(),
		"name":            p.Name,
		"photo_url":       p.PhotoURL,
		"phone":           p.Phone,
		"website":         p.Website,
		"spotify":         p.Spotify,
		"apple_music":     p.AppleMusic,
		"tidal":           p.Tidal,
		"youtube_music":   p.YouTubeMusic,
		"youtube_channel": p.YouTubeChannel,
		"instagram":       p.Instagram,
		"validated":       p.Validated,
	}
}

// Apply copies the editable fields of req onto the profile.
func (p *Profile) Apply(req *UpdateProfileRequest) {
	p.Name = req.Name
	p.PhotoURL = req.PhotoURL
	p.Phone = req.Phone
	p.Website = req.Website
	p.Spotify = req.Spotify
	p.AppleMusic = req.AppleMusic
	p.Tidal = req.Tidal
	p.YouTubeMusic = req.YouTubeMusic
	p.YouTubeChannel = req.YouTubeChannel
	p.Instagram = req.Instagram
}

// WithEmail is a profile joined with its owner's email, as listed to admins.
type WithEmail struct {
	Profile
	Email string `json:"email"`
}

// UpdateProfileRequest replaces every editable field of the caller's profile.
type UpdateProfileRequest struct {
	Name           string `json:"name" validate:"required,notblank,max=200"`
	PhotoURL       string `json:"photo_url" validate:"omitempty,url"`
	Phone          string `json:"phone" validate:"max=50"`
	Website        string `json:"website" validate:"omitempty,url"`
	Spotify        string `json:"spotify" validate:"omitempty,url"`
	AppleMusic     string `json:"apple_music" validate:"omitempty,url"`
	Tidal          string `json:"tidal" validate:"omitempty,url"`
	YouTubeMusic   string `json:"youtube_music" validate:"omitempty,url"`
	YouTubeChannel string `json:"youtube_channel" validate:"omitempty,url"`
	Instagram      string `json:"instagram" validate:"max=200"`
}

func (r *UpdateProfileRequest) Normalize() {
	str.TrimStrings(
		&r.Name, &r.PhotoURL, &r.Phone, &r.Website, &r.Spotify, &r.AppleMusic,
		&r.Tidal, &r.YouTubeMusic, &r.YouTubeChannel, &r.Instagram,
	)
}

func (r *UpdateProfileRequest) Validate() error {
	if err := validation.Validate(r); err != nil {
		return err
	}
	return validation.CheckEachStringLength(map[string]string{
		"photo_url":       r.PhotoURL,
		"website":         r.Website,
		"spotify":         r.Spotify,
		"apple_music":     r.AppleMusic,
		"tidal":           r.Tidal,
		"youtube_music":   r.YouTubeMusic,
		"youtube_channel": r.YouTubeChannel,
	}, validation.MaxURLLength)
}

// ValidateRequest sets the validated flag of an artist.
type ValidateRequest struct {
	Validated *bool `json:"validated" validate:"required"`
}

func (r *ValidateRequest) Validate() error {
	return validation.Validate(r)
}
