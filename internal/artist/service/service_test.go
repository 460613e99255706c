package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks ProfileStore,EventStore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"oirla/internal/artist/models"
	"oirla/internal/artist/service/mocks"
	"oirla/internal/audit"
	eventmodels "oirla/internal/event/models"
	"oirla/internal/platform/metrics"
	"oirla/internal/sentinel"
	id "oirla/pkg/domain"
	dErrors "oirla/pkg/domain-errors"
)

type ArtistServiceSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockProfiles *mocks.MockProfileStore
	mockEvents   *mocks.MockEventStore
	auditStore   *audit.InMemoryStore
	metrics      *metrics.Metrics
	service      *Service
	owner        id.IdentityID
}

func (s *ArtistServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockProfiles = mocks.NewMockProfileStore(s.ctrl)
	s.mockEvents = mocks.NewMockEventStore(s.ctrl)
	s.auditStore = audit.NewInMemoryStore()
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.owner = id.NewIdentityID()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.service = New(s.mockProfiles, s.mockEvents,
		audit.NewRecorder(s.auditStore, logger, audit.WithFailureCounter(s.metrics)),
		WithLogger(logger),
		WithMetrics(s.metrics),
	)
}

func (s *ArtistServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestArtistServiceSuite(t *testing.T) {
	suite.Run(t, new(ArtistServiceSuite))
}

func (s *ArtistServiceSuite) profile() *models.Profile {
	p := models.NewProfile(s.owner, "Banda X", "")
	p.Validated = true
	return p
}

func (s *ArtistServiceSuite) input() *eventmodels.Input {
	return &eventmodels.Input{
		Title:     "Show",
		Date:      "2025-05-01",
		Time:      "21:00",
		Venue:     "La Trastienda",
		EntryType: "gorra",
	}
}

func (s *ArtistServiceSuite) event() *eventmodels.Event {
	return &eventmodels.Event{
		ID:        id.NewEventID(),
		ArtistID:  id.NewArtistID(),
		Title:     "Old title",
		Date:      "2025-04-01",
		Time:      "20:00",
		Venue:     "Niceto",
		EntryType: eventmodels.EntryGratuito,
	}
}

func (s *ArtistServiceSuite) TestGetProfile() {
	s.Run("returns own profile", func() {
		s.SetupTest()
		p := s.profile()
		s.mockProfiles.EXPECT().FindByIdentity(gomock.Any(), s.owner).Return(p, nil)

		got, err := s.service.GetProfile(context.Background(), s.owner)

		s.Require().NoError(err)
		s.Equal(p, got)
	})

	s.Run("missing profile is not found", func() {
		s.SetupTest()
		s.mockProfiles.EXPECT().FindByIdentity(gomock.Any(), s.owner).
			Return(nil, fmt.Errorf("artist profile not found: %w", sentinel.ErrNotFound))

		_, err := s.service.GetProfile(context.Background(), s.owner)

		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func (s *ArtistServiceSuite) TestUpdateProfile() {
	s.Run("updates fields and records prior and new state", func() {
		s.SetupTest()
		p := s.profile()
		s.mockProfiles.EXPECT().FindByIdentity(gomock.Any(), s.owner).Return(p, nil)
		s.mockProfiles.EXPECT().UpdateByIdentity(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, updated *models.Profile) error {
				s.Equal("Banda Y", updated.Name)
				s.True(updated.Validated, "profile update never touches the validated flag")
				return nil
			})

		got, err := s.service.UpdateProfile(context.Background(), s.owner,
			&models.UpdateProfileRequest{Name: "Banda Y", Website: "https://bandax.com.ar"})

		s.Require().NoError(err)
		s.Equal("https://bandax.com.ar", got.Website)
		entries := s.auditStore.ByAction(audit.ActionUpdateProfile)
		s.Require().Len(entries, 1)
		s.Equal("Banda X", entries[0].Prior["name"])
		s.Equal("Banda Y", entries[0].New["name"])
		s.Equal(p.ID.UUID(), entries[0].EntityID)
	})

	s.Run("denylisted name is rejected before any read", func() {
		s.SetupTest()

		_, err := s.service.UpdateProfile(context.Background(), s.owner,
			&models.UpdateProfileRequest{Name: "EMINEM"})

		s.True(dErrors.HasCode(err, dErrors.CodePolicyViolation))
		s.Empty(s.auditStore.Entries())
		s.Equal(1.0, testutil.ToFloat64(s.metrics.PolicyViolations.WithLabelValues("profile")))
	})

	s.Run("write failure leaves no audit record", func() {
		s.SetupTest()
		s.mockProfiles.EXPECT().FindByIdentity(gomock.Any(), s.owner).Return(s.profile(), nil)
		s.mockProfiles.EXPECT().UpdateByIdentity(gomock.Any(), gomock.Any()).Return(errors.New("boom"))

		_, err := s.service.UpdateProfile(context.Background(), s.owner, &models.UpdateProfileRequest{Name: "Banda Y"})

		s.True(dErrors.HasCode(err, dErrors.CodeInternal))
		s.Empty(s.auditStore.Entries())
	})
}

func (s *ArtistServiceSuite) TestCreateEvent() {
	s.Run("creates under the caller and records CREATE_EVENT", func() {
		s.SetupTest()
		s.mockEvents.EXPECT().Create(gomock.Any(), s.owner, gomock.Any()).Return(nil)

		event, err := s.service.CreateEvent(context.Background(), s.owner, s.input())

		s.Require().NoError(err)
		s.False(event.ID.IsNil())
		s.Equal(eventmodels.EntryGorra, event.EntryType)
		entries := s.auditStore.ByAction(audit.ActionCreateEvent)
		s.Require().Len(entries, 1)
		s.Nil(entries[0].Prior)
		s.Equal("Show", entries[0].New["title"])
	})

	s.Run("caller without profile is not found", func() {
		s.SetupTest()
		s.mockEvents.EXPECT().Create(gomock.Any(), s.owner, gomock.Any()).
			Return(fmt.Errorf("artist profile not found: %w", sentinel.ErrNotFound))

		_, err := s.service.CreateEvent(context.Background(), s.owner, s.input())

		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
		s.Empty(s.auditStore.Entries())
	})
}

func (s *ArtistServiceSuite) TestOwnershipIsolation() {
	cases := []struct {
		name     string
		storeErr error
	}{
		{"missing event", fmt.Errorf("event not found: %w", sentinel.ErrNotFound)},
		{"another artist's event", fmt.Errorf("event belongs to another artist: %w", sentinel.ErrForbiddenOwner)},
	}
	for _, tc := range cases {
		s.Run("update "+tc.name, func() {
			s.SetupTest()
			eventID := id.NewEventID()
			s.mockEvents.EXPECT().FindOwned(gomock.Any(), eventID, s.owner).Return(nil, tc.storeErr)

			_, err := s.service.UpdateEvent(context.Background(), s.owner, eventID, s.input())

			s.True(dErrors.HasCode(err, dErrors.CodeNotFoundOrUnauthorized))
			s.Equal(MsgEventNotFoundOrForeign, err.Error())
			s.Empty(s.auditStore.Entries())
		})

		s.Run("delete "+tc.name, func() {
			s.SetupTest()
			eventID := id.NewEventID()
			s.mockEvents.EXPECT().FindOwned(gomock.Any(), eventID, s.owner).Return(nil, tc.storeErr)

			err := s.service.DeleteEvent(context.Background(), s.owner, eventID)

			s.True(dErrors.HasCode(err, dErrors.CodeNotFoundOrUnauthorized))
			s.Empty(s.auditStore.Entries())
		})
	}
}

func (s *ArtistServiceSuite) TestUpdateEvent() {
	s.SetupTest()
	existing := s.event()
	s.mockEvents.EXPECT().FindOwned(gomock.Any(), existing.ID, s.owner).Return(existing, nil)
	s.mockEvents.EXPECT().UpdateOwned(gomock.Any(), gomock.Any(), s.owner).Return(nil)

	updated, err := s.service.UpdateEvent(context.Background(), s.owner, existing.ID, s.input())

	s.Require().NoError(err)
	s.Equal("Show", updated.Title)
	s.Equal(existing.ArtistID, updated.ArtistID)
	entries := s.auditStore.ByAction(audit.ActionUpdateEvent)
	s.Require().Len(entries, 1)
	s.Equal("Old title", entries[0].Prior["title"])
	s.Equal("Show", entries[0].New["title"])
}

func (s *ArtistServiceSuite) TestDeleteEvent() {
	s.Run("deletes and records prior state", func() {
		s.SetupTest()
		existing := s.event()
		gomock.InOrder(
			s.mockEvents.EXPECT().FindOwned(gomock.Any(), existing.ID, s.owner).Return(existing, nil),
			s.mockEvents.EXPECT().DeleteOwned(gomock.Any(), existing.ID, s.owner).Return(nil),
		)

		s.Require().NoError(s.service.DeleteEvent(context.Background(), s.owner, existing.ID))

		entries := s.auditStore.ByAction(audit.ActionDeleteEvent)
		s.Require().Len(entries, 1)
		s.Equal("Old title", entries[0].Prior["title"])
		s.Nil(entries[0].New)
	})

	s.Run("audit failure does not fail the delete", func() {
		s.SetupTest()
		s.auditStore.FailWith(errors.New("audit down"))
		existing := s.event()
		s.mockEvents.EXPECT().FindOwned(gomock.Any(), existing.ID, s.owner).Return(existing, nil)
		s.mockEvents.EXPECT().DeleteOwned(gomock.Any(), existing.ID, s.owner).Return(nil)

		s.Require().NoError(s.service.DeleteEvent(context.Background(), s.owner, existing.ID))
		s.Equal(1.0, testutil.ToFloat64(s.metrics.AuditWriteFailures.WithLabelValues(string(audit.ActionDeleteEvent))))
	})
}

func (s *ArtistServiceSuite) TestListEvents() {
	s.SetupTest()
	s.mockEvents.EXPECT().ListByOwner(gomock.Any(), s.owner).Return([]eventmodels.Event{*s.event()}, nil)

	events, err := s.service.ListEvents(context.Background(), s.owner)

	s.Require().NoError(err)
	s.Len(events, 1)
}
