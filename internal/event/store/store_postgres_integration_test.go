//go:build integration

package store_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	artiststore "oirla/internal/artist/store"
	"oirla/internal/auth/store/user"
	"oirla/internal/event/store"
	"oirla/internal/sentinel"
	id "oirla/pkg/domain"
	"oirla/pkg/testutil"
	"oirla/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *store.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.postgres = containers.GetManager().GetPostgres(s.T())
	s.store = store.NewPostgres(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateAll(context.Background()))
}

func (s *PostgresStoreSuite) TestCreateRequiresProfile() {
	ctx := context.Background()
	owner, artistID := s.postgres.CreateTestArtist(ctx, s.T(), "Divididos", true)

	event := testutil.NewEventBuilder(artistID, "2030-05-01").WithPrice(2500).Build()
	s.Require().NoError(s.store.Create(ctx, owner, event))
	s.Equal(artistID, event.ArtistID)
	s.False(event.CreatedAt.IsZero())

	orphan := testutil.NewEventBuilder(artistID, "2030-05-01").Build()
	err := s.store.Create(ctx, id.NewIdentityID(), orphan)
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestRoundTripsDateTimeAndPrice() {
	ctx := context.Background()
	owner, artistID := s.postgres.CreateTestArtist(ctx, s.T(), "Divididos", true)
	event := testutil.NewEventBuilder(artistID, "2030-12-31").WithPrice(1999.5).Build()
	event.Time = "23:45"
	s.Require().NoError(s.store.Create(ctx, owner, event))

	got, err := s.store.FindOwned(ctx, event.ID, owner)
	s.Require().NoError(err)
	s.Equal("2030-12-31", got.Date)
	s.Equal("23:45", got.Time)
	s.Require().NotNil(got.Price)
	s.InDelta(1999.5, *got.Price, 0.001)
}

func (s *PostgresStoreSuite) TestOwnershipMissVersusForeign() {
	ctx := context.Background()
	owner, artistID := s.postgres.CreateTestArtist(ctx, s.T(), "Owner", true)
	intruder, _ := s.postgres.CreateTestArtist(ctx, s.T(), "Intruder", true)
	eventID := s.postgres.CreateTestEvent(ctx, s.T(), artistID, "Show", "2030-06-01")

	_, err := s.store.FindOwned(ctx, eventID, intruder)
	s.ErrorIs(err, sentinel.ErrForbiddenOwner)
	_, err = s.store.FindOwned(ctx, id.NewEventID(), owner)
	s.ErrorIs(err, sentinel.ErrNotFound)

	foreign := testutil.NewEventBuilder(artistID, "2030-07-01").WithTitle("Hijacked").Build()
	foreign.ID = eventID
	s.ErrorIs(s.store.UpdateOwned(ctx, foreign, intruder), sentinel.ErrForbiddenOwner)
	s.ErrorIs(s.store.DeleteOwned(ctx, eventID, intruder), sentinel.ErrForbiddenOwner)
	s.ErrorIs(s.store.DeleteOwned(ctx, id.NewEventID(), owner), sentinel.ErrNotFound)

	got, err := s.store.FindByID(ctx, eventID)
	s.Require().NoError(err)
	s.Equal("Show", got.Title)

	s.Require().NoError(s.store.DeleteOwned(ctx, eventID, owner))
	_, err = s.store.FindByID(ctx, eventID)
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestDeletingIdentityCascadesToProfileAndEvents() {
	ctx := context.Background()
	owner, artistID := s.postgres.CreateTestArtist(ctx, s.T(), "Eminem", false)
	for _, date := range []string{"2030-01-01", "2030-01-02", "2030-01-03"} {
		s.postgres.CreateTestEvent(ctx, s.T(), artistID, "Show", date)
	}
	_, otherArtist := s.postgres.CreateTestArtist(ctx, s.T(), "Keeper", true)
	s.postgres.CreateTestEvent(ctx, s.T(), otherArtist, "Stays", "2030-01-01")

	s.Require().NoError(user.NewPostgres(s.postgres.DB).Delete(ctx, owner))

	s.Zero(s.postgres.Count(ctx, s.T(), "events", "artist_id = $1", artistID.UUID()))
	s.Equal(1, s.postgres.Count(ctx, s.T(), "events", ""))
	_, err := artiststore.NewPostgres(s.postgres.DB).FindByID(ctx, artistID)
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestPublicQueriesHideUnvalidatedArtists() {
	ctx := context.Background()
	_, validated := s.postgres.CreateTestArtist(ctx, s.T(), "Validado", true)
	_, pending := s.postgres.CreateTestArtist(ctx, s.T(), "Pendiente", false)
	inMonth := s.postgres.CreateTestEvent(ctx, s.T(), validated, "Abril", "2030-04-30")
	s.postgres.CreateTestEvent(ctx, s.T(), validated, "Mayo", "2030-05-01")
	hidden := s.postgres.CreateTestEvent(ctx, s.T(), pending, "Oculto", "2030-04-10")

	calendar, err := s.store.ListValidatedBetween(ctx, "2030-04-01", "2030-04-30")
	s.Require().NoError(err)
	s.Require().Len(calendar, 1)
	s.Equal(inMonth, calendar[0].ID)
	s.Equal("Validado", calendar[0].ArtistName)

	_, err = s.store.FindValidated(ctx, hidden)
	s.ErrorIs(err, sentinel.ErrNotFound)

	byArtist, err := s.store.ListUpcomingByArtist(ctx, pending, "2030-01-01")
	s.Require().NoError(err)
	s.Empty(byArtist)

	all, err := s.store.ListAll(ctx)
	s.Require().NoError(err)
	s.Len(all, 3)
}

func (s *PostgresStoreSuite) TestUpcomingIsChronologicalAndCapped() {
	ctx := context.Background()
	_, artistID := s.postgres.CreateTestArtist(ctx, s.T(), "Prolífico", true)
	s.postgres.CreateTestEvent(ctx, s.T(), artistID, "Pasado", "2029-12-31")
	for day := 1; day <= 12; day++ {
		s.postgres.CreateTestEvent(ctx, s.T(), artistID, "Show", fmt.Sprintf("2030-03-%02d", 13-day))
	}

	upcoming, err := s.store.ListUpcoming(ctx, "2030-01-01", store.UpcomingLimit)
	s.Require().NoError(err)
	s.Require().Len(upcoming, store.UpcomingLimit)
	s.Equal("2030-03-01", upcoming[0].Date)
	for i := 1; i < len(upcoming); i++ {
		s.LessOrEqual(upcoming[i-1].Date, upcoming[i].Date)
	}
}
