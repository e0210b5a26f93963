package impl

import (
	"context"
	"log/slog"
	"math"
	"testing"
	"time"

	"attendance/config"
	"attendance/internal/domain/entity"
	domainerrors "attendance/internal/domain/errors"
	"attendance/internal/domain/geo"
	mockUsecase "attendance/internal/mocks/usecase"
	"attendance/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var venue = entity.Coordinates{Lat: 40.7128, Lng: -74.0060}

// geofenceServiceFixtures holds all test dependencies for geofence service tests.
type geofenceServiceFixtures struct {
	service        usecase.GeofenceUsecase
	checkinUsecase *mockUsecase.MockCheckinUsecase
	venueUsecase   *mockUsecase.MockVenueUsecase
}

func createTestGeofenceService(t *testing.T) geofenceServiceFixtures {
	checkinUsecase := mockUsecase.NewMockCheckinUsecase(t)
	venueUsecase := mockUsecase.NewMockVenueUsecase(t)

	return geofenceServiceFixtures{
		service:        NewGeofenceService(checkinUsecase, venueUsecase, &config.Config{}, slog.New(slog.DiscardHandler)),
		checkinUsecase: checkinUsecase,
		venueUsecase:   venueUsecase,
	}
}

// offsetNorth returns a point roughly meters north of c.
func offsetNorth(c entity.Coordinates, meters float64) entity.Coordinates {
	return entity.Coordinates{Lat: c.Lat + meters/geo.EarthRadiusMeters*180/math.Pi, Lng: c.Lng}
}

func TestGeofenceService_CheckInRadius(t *testing.T) {
	tests := []struct {
		name         string
		coords       entity.Coordinates
		radius       float64
		wantIn       bool
		wantRadius   float64
		wantDistance float64
	}{
		{name: "at venue", coords: venue, radius: 150, wantIn: true, wantRadius: 150, wantDistance: 0},
		{name: "inside default radius", coords: offsetNorth(venue, 100), radius: 0, wantIn: true, wantRadius: 150, wantDistance: 100},
		{name: "outside default radius", coords: offsetNorth(venue, 200), radius: 0, wantIn: false, wantRadius: 150, wantDistance: 200},
		{name: "negative radius falls back", coords: offsetNorth(venue, 149), radius: -5, wantIn: true, wantRadius: 150, wantDistance: 149},
		{name: "NaN radius falls back", coords: offsetNorth(venue, 151), radius: math.NaN(), wantIn: false, wantRadius: 150, wantDistance: 151},
		{name: "infinite radius falls back", coords: offsetNorth(venue, 151), radius: math.Inf(1), wantIn: false, wantRadius: 150, wantDistance: 151},
		{name: "custom radius", coords: offsetNorth(venue, 400), radius: 500, wantIn: true, wantRadius: 500, wantDistance: 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestGeofenceService(t)
			ctx := context.Background()
			eventID := uuid.New()

			fx.venueUsecase.EXPECT().ResolveEventCoordinates(ctx, eventID).Return(venue, true)

			result, err := fx.service.CheckInRadius(ctx, &usecase.RadiusCheckInput{
				EventID:      eventID,
				UserID:       uuid.New(),
				Coords:       tt.coords,
				RadiusMeters: tt.radius,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantIn, result.InRadius)
			assert.Equal(t, tt.wantRadius, result.RadiusMeters)
			assert.InDelta(t, tt.wantDistance, result.DistanceMeters, math.Max(0.5, tt.wantDistance*0.05))
			assert.Equal(t, result.DistanceMeters <= result.RadiusMeters, result.InRadius)
		})
	}
}

func TestGeofenceService_CheckInRadius_BoundaryIsInclusive(t *testing.T) {
	fx := createTestGeofenceService(t)
	ctx := context.Background()
	eventID := uuid.New()
	point := offsetNorth(venue, 120)
	exact := geo.Distance(point.Point(), venue.Point())

	fx.venueUsecase.EXPECT().ResolveEventCoordinates(ctx, eventID).Return(venue, true)

	result, err := fx.service.CheckInRadius(ctx, &usecase.RadiusCheckInput{
		EventID:      eventID,
		UserID:       uuid.New(),
		Coords:       point,
		RadiusMeters: exact,
	})
	require.NoError(t, err)
	assert.True(t, result.InRadius)
}

func TestGeofenceService_CheckInRadius_Errors(t *testing.T) {
	t.Run("venue unresolved", func(t *testing.T) {
		fx := createTestGeofenceService(t)
		ctx := context.Background()
		eventID := uuid.New()

		fx.venueUsecase.EXPECT().ResolveEventCoordinates(ctx, eventID).Return(entity.Coordinates{}, false)

		_, err := fx.service.CheckInRadius(ctx, &usecase.RadiusCheckInput{EventID: eventID, UserID: uuid.New(), Coords: venue})
		assert.ErrorIs(t, err, domainerrors.ErrVenueCoordinatesRequired)
	})

	t.Run("invalid coordinates", func(t *testing.T) {
		fx := createTestGeofenceService(t)

		_, err := fx.service.CheckInRadius(context.Background(), &usecase.RadiusCheckInput{
			EventID: uuid.New(),
			UserID:  uuid.New(),
			Coords:  entity.Coordinates{Lat: 0, Lng: 181},
		})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("missing user", func(t *testing.T) {
		fx := createTestGeofenceService(t)

		_, err := fx.service.CheckInRadius(context.Background(), &usecase.RadiusCheckInput{EventID: uuid.New(), Coords: venue})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func withLocation(a *entity.Attendance, c entity.Coordinates) *entity.Attendance {
	a.LastLocation = &entity.LocationSample{Coordinates: c, RecordedAt: testNow.Add(-time.Minute)}

	return a
}

func TestGeofenceService_AutoCheckOut_OutsideRadius(t *testing.T) {
	fx := createTestGeofenceService(t)
	ctx := context.Background()
	eventID := uuid.New()
	userID := uuid.New()
	active := withLocation(activeAttendance(eventID, userID), offsetNorth(venue, 500))
	closed := *active
	closed.Close(testNow, entity.AutomaticInitiator())

	fx.checkinUsecase.EXPECT().GetActiveCheckin(ctx, eventID, userID).Return(active, nil)
	fx.venueUsecase.EXPECT().ResolveEventCoordinates(ctx, eventID).Return(venue, true)
	fx.checkinUsecase.EXPECT().CheckOut(ctx, eventID, userID, entity.AutomaticInitiator()).Return(&closed, nil)

	got, err := fx.service.AutoCheckOut(ctx, eventID, userID)
	require.NoError(t, err)
	assert.False(t, got.IsCheckedIn)
	assert.True(t, got.CheckedOutBy.IsAutomatic())
}

func TestGeofenceService_AutoCheckOut_BackInRadius(t *testing.T) {
	fx := createTestGeofenceService(t)
	ctx := context.Background()
	eventID := uuid.New()
	userID := uuid.New()
	active := withLocation(activeAttendance(eventID, userID), offsetNorth(venue, 20))

	fx.checkinUsecase.EXPECT().GetActiveCheckin(ctx, eventID, userID).Return(active, nil)
	fx.venueUsecase.EXPECT().ResolveEventCoordinates(ctx, eventID).Return(venue, true)

	_, err := fx.service.AutoCheckOut(ctx, eventID, userID)
	assert.ErrorIs(t, err, domainerrors.ErrBackInRadius)
	fx.checkinUsecase.AssertNotCalled(t, "CheckOut", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGeofenceService_AutoCheckOut_WithoutStoredLocation(t *testing.T) {
	fx := createTestGeofenceService(t)
	ctx := context.Background()
	eventID := uuid.New()
	userID := uuid.New()
	active := activeAttendance(eventID, userID)
	closed := *active
	closed.Close(testNow, entity.AutomaticInitiator())

	fx.checkinUsecase.EXPECT().GetActiveCheckin(ctx, eventID, userID).Return(active, nil)
	fx.checkinUsecase.EXPECT().CheckOut(ctx, eventID, userID, entity.AutomaticInitiator()).Return(&closed, nil)

	got, err := fx.service.AutoCheckOut(ctx, eventID, userID)
	require.NoError(t, err)
	assert.False(t, got.IsCheckedIn)
	fx.venueUsecase.AssertNotCalled(t, "ResolveEventCoordinates", mock.Anything, mock.Anything)
}

func TestGeofenceService_AutoCheckOut_Errors(t *testing.T) {
	t.Run("not checked in", func(t *testing.T) {
		fx := createTestGeofenceService(t)
		ctx := context.Background()
		eventID := uuid.New()
		userID := uuid.New()

		fx.checkinUsecase.EXPECT().GetActiveCheckin(ctx, eventID, userID).Return(nil, domainerrors.ErrNotCheckedIn)

		_, err := fx.service.AutoCheckOut(ctx, eventID, userID)
		assert.ErrorIs(t, err, domainerrors.ErrNotCheckedIn)
	})

	t.Run("venue unresolved propagates", func(t *testing.T) {
		fx := createTestGeofenceService(t)
		ctx := context.Background()
		eventID := uuid.New()
		userID := uuid.New()
		active := withLocation(activeAttendance(eventID, userID), venue)

		fx.checkinUsecase.EXPECT().GetActiveCheckin(ctx, eventID, userID).Return(active, nil)
		fx.venueUsecase.EXPECT().ResolveEventCoordinates(ctx, eventID).Return(entity.Coordinates{}, false)

		_, err := fx.service.AutoCheckOut(ctx, eventID, userID)
		assert.ErrorIs(t, err, domainerrors.ErrVenueCoordinatesRequired)
	})

	t.Run("racing check-out", func(t *testing.T) {
		fx := createTestGeofenceService(t)
		ctx := context.Background()
		eventID := uuid.New()
		userID := uuid.New()

		fx.checkinUsecase.EXPECT().GetActiveCheckin(ctx, eventID, userID).Return(activeAttendance(eventID, userID), nil)
		fx.checkinUsecase.EXPECT().CheckOut(ctx, eventID, userID, entity.AutomaticInitiator()).Return(nil, domainerrors.ErrNotCheckedIn)

		_, err := fx.service.AutoCheckOut(ctx, eventID, userID)
		assert.ErrorIs(t, err, domainerrors.ErrNotCheckedIn)
	})
}

func TestGeofenceService_TrackLocation(t *testing.T) {
	fx := createTestGeofenceService(t)
	ctx := context.Background()
	eventID := uuid.New()
	userID := uuid.New()
	updated := withLocation(activeAttendance(eventID, userID), venue)

	fx.checkinUsecase.EXPECT().RecordLocation(ctx, eventID, userID, venue).Return(updated, nil)

	got, err := fx.service.TrackLocation(ctx, eventID, userID, venue)
	require.NoError(t, err)
	assert.Equal(t, venue, got.LastLocation.Coordinates)
}

func TestGeofenceService_GeofenceStatus(t *testing.T) {
	fx := createTestGeofenceService(t)
	ctx := context.Background()
	eventID := uuid.New()
	near := withLocation(activeAttendance(eventID, uuid.New()), offsetNorth(venue, 50))
	far := withLocation(activeAttendance(eventID, uuid.New()), offsetNorth(venue, 900))
	unknown := activeAttendance(eventID, uuid.New())

	fx.checkinUsecase.EXPECT().ListCheckedIn(ctx, eventID).Return([]*entity.Attendance{near, far, unknown}, nil)
	fx.venueUsecase.EXPECT().ResolveEventCoordinates(ctx, eventID).Return(venue, true)

	report, err := fx.service.GeofenceStatus(ctx, eventID, 0)
	require.NoError(t, err)
	assert.Equal(t, 150.0, report.RadiusMeters)
	require.NotNil(t, report.Venue)
	require.Len(t, report.Attendees, 3)

	assert.True(t, *report.Attendees[0].InRadius)
	assert.False(t, *report.Attendees[1].InRadius)
	assert.Nil(t, report.Attendees[2].DistanceMeters)

	require.NotNil(t, report.Bounds)
	assert.True(t, report.Bounds.Contains(venue.Point()))
	assert.True(t, report.Bounds.Contains(far.LastLocation.Point()))
}

func TestGeofenceService_GeofenceStatus_NoVenue(t *testing.T) {
	fx := createTestGeofenceService(t)
	ctx := context.Background()
	eventID := uuid.New()

	fx.checkinUsecase.EXPECT().ListCheckedIn(ctx, eventID).Return([]*entity.Attendance{}, nil)
	fx.venueUsecase.EXPECT().ResolveEventCoordinates(ctx, eventID).Return(entity.Coordinates{}, false)

	report, err := fx.service.GeofenceStatus(ctx, eventID, 300)
	require.NoError(t, err)
	assert.Nil(t, report.Venue)
	assert.Nil(t, report.Bounds)
	assert.Equal(t, 300.0, report.RadiusMeters)
}
