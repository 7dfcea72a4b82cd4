package service_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/russia-map/backend/internal/domain"
	"github.com/pkordes/russia-map/backend/internal/service"
	"github.com/pkordes/russia-map/backend/internal/store"
)

func newMarkerService(t *testing.T) (*service.MarkerService, collections) {
	t.Helper()
	c := newCollections(t)
	return service.NewMarkerService(c.markers, c.comments), c
}

// ---- Create ----------------------------------------------------------------

func TestMarkerService_Create_AppliesDefaults(t *testing.T) {
	svc, _ := newMarkerService(t)

	got, err := svc.Create(context.Background(), markerInput("", 4))

	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, 55.75, got.Lat)
	assert.Equal(t, 37.62, got.Lng)
	assert.Equal(t, 4, got.Rating)
	assert.Equal(t, domain.UnknownCity, got.City)
	assert.Equal(t, domain.AnonymousUser, got.UserID)
	assert.NotEmpty(t, got.Timestamp)
	assert.Empty(t, got.UpdatedAt, "updated_at is set only by update")
}

func TestMarkerService_Create_KeepsCallerValues(t *testing.T) {
	svc, _ := newMarkerService(t)
	in := markerInput("Казань", 3)
	in["timestamp"] = "2025-06-01T10:00:00"
	in["user_id"] = "u-42"

	got, err := svc.Create(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, "Казань", got.City)
	assert.Equal(t, "2025-06-01T10:00:00", got.Timestamp)
	assert.Equal(t, "u-42", got.UserID)
}

func TestMarkerService_Create_IDsAreDistinct(t *testing.T) {
	svc, _ := newMarkerService(t)
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		m, err := svc.Create(ctx, markerInput("", i))
		require.NoError(t, err)
		require.NotEmpty(t, m.ID)
		require.False(t, seen[m.ID], "duplicate id %s", m.ID)
		seen[m.ID] = true
	}
}

func TestMarkerService_Create_MissingRating_LeavesStoreUnchanged(t *testing.T) {
	svc, c := newMarkerService(t)
	ctx := context.Background()
	_, err := svc.Create(ctx, markerInput("", 1))
	require.NoError(t, err)

	in := markerInput("", 1)
	delete(in, "rating")
	_, err = svc.Create(ctx, in)

	require.ErrorIs(t, err, domain.ErrValidation)
	assert.True(t, isValidationOn(err, "rating"))
	all, err := c.markers.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestMarkerService_Create_StorageFailure(t *testing.T) {
	svc := service.NewMarkerService(failingCollection[domain.Marker](), failingCollection[domain.Comment]())

	_, err := svc.Create(context.Background(), markerInput("", 1))

	assert.ErrorIs(t, err, domain.ErrIO)
}

// TestMarkerService_Create_Concurrent checks that N simultaneous creates all
// land in the collection with distinct ids.
func TestMarkerService_Create_Concurrent(t *testing.T) {
	svc, _ := newMarkerService(t)
	ctx := context.Background()

	const n = 40
	ids := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			m, err := svc.Create(ctx, markerInput("", i%5))
			if assert.NoError(t, err) {
				ids <- m.ID
			}
		}(i)
	}
	wg.Wait()
	close(ids)

	unique := map[string]struct{}{}
	for id := range ids {
		unique[id] = struct{}{}
	}
	assert.Len(t, unique, n)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, n)
}

// ---- List / ListByCity / GetByID -------------------------------------------

func TestMarkerService_List_StorageOrder(t *testing.T) {
	svc, _ := newMarkerService(t)
	ctx := context.Background()
	first, err := svc.Create(ctx, markerInput("Б", 1))
	require.NoError(t, err)
	second, err := svc.Create(ctx, markerInput("А", 2))
	require.NoError(t, err)

	got, err := svc.List(ctx)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, first.ID, got[0].ID)
	assert.Equal(t, second.ID, got[1].ID)
}

func TestMarkerService_List_Empty(t *testing.T) {
	svc, _ := newMarkerService(t)

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMarkerService_ListByCity_CaseInsensitive(t *testing.T) {
	svc, _ := newMarkerService(t)
	ctx := context.Background()
	moscow, err := svc.Create(ctx, markerInput("Moscow", 5))
	require.NoError(t, err)
	_, err = svc.Create(ctx, markerInput("Kazan", 5))
	require.NoError(t, err)

	for _, query := range []string{"moscow", "MOSCOW", "Moscow"} {
		got, err := svc.ListByCity(ctx, query)
		require.NoError(t, err)
		require.Len(t, got, 1, query)
		assert.Equal(t, moscow.ID, got[0].ID)
	}
}

func TestMarkerService_ListByCity_Cyrillic(t *testing.T) {
	svc, _ := newMarkerService(t)
	ctx := context.Background()
	_, err := svc.Create(ctx, markerInput("Москва", 5))
	require.NoError(t, err)

	got, err := svc.ListByCity(ctx, "москва")

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestMarkerService_ListByCity_NoMatch(t *testing.T) {
	svc, _ := newMarkerService(t)
	ctx := context.Background()
	_, err := svc.Create(ctx, markerInput("Moscow", 5))
	require.NoError(t, err)

	got, err := svc.ListByCity(ctx, "Paris")

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMarkerService_GetByID(t *testing.T) {
	svc, _ := newMarkerService(t)
	ctx := context.Background()
	created, err := svc.Create(ctx, markerInput("", 2))
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = svc.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- Update ----------------------------------------------------------------

func TestMarkerService_Update_OnlyAllowListedFields(t *testing.T) {
	svc, _ := newMarkerService(t)
	ctx := context.Background()
	created, err := svc.Create(ctx, markerInput("Moscow", 2))
	require.NoError(t, err)

	got, err := svc.Update(ctx, created.ID, domain.RawInput{
		"comment": "updated",
		"lat":     1.0,
		"city":    "Elsewhere",
		"id":      "new-id",
	})

	require.NoError(t, err)
	assert.Equal(t, "updated", got.Comment)
	assert.Equal(t, 2, got.Rating, "rating was not in the patch")
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Lat, got.Lat)
	assert.Equal(t, created.Lng, got.Lng)
	assert.Equal(t, created.City, got.City)
	assert.NotEmpty(t, got.UpdatedAt)

	stored, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, got, stored, "update must be persisted")
}

func TestMarkerService_Update_Rating(t *testing.T) {
	svc, _ := newMarkerService(t)
	ctx := context.Background()
	created, err := svc.Create(ctx, markerInput("", 2))
	require.NoError(t, err)

	got, err := svc.Update(ctx, created.ID, domain.RawInput{"rating": "5"})

	require.NoError(t, err)
	assert.Equal(t, 5, got.Rating)
	assert.Equal(t, created.Comment, got.Comment)
}

func TestMarkerService_Update_NotFound(t *testing.T) {
	svc, c := newMarkerService(t)
	ctx := context.Background()
	_, err := svc.Create(ctx, markerInput("", 2))
	require.NoError(t, err)
	before, err := c.markers.Load(ctx)
	require.NoError(t, err)

	_, err = svc.Update(ctx, "missing", domain.RawInput{"comment": "x"})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	after, err := c.markers.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestMarkerService_Update_BadRating(t *testing.T) {
	svc, _ := newMarkerService(t)
	ctx := context.Background()
	created, err := svc.Create(ctx, markerInput("", 2))
	require.NoError(t, err)

	_, err = svc.Update(ctx, created.ID, domain.RawInput{"rating": "great"})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

// ---- Delete ----------------------------------------------------------------

func TestMarkerService_Delete_CascadesToComments(t *testing.T) {
	c := newCollections(t)
	markers := service.NewMarkerService(c.markers, c.comments)
	comments := service.NewCommentService(c.markers, c.comments)
	ctx := context.Background()

	doomed, err := markers.Create(ctx, markerInput("", 1))
	require.NoError(t, err)
	survivor, err := markers.Create(ctx, markerInput("", 1))
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err := comments.Create(ctx, doomed.ID, domain.RawInput{"comment": "bye"})
		require.NoError(t, err)
	}
	kept, err := comments.Create(ctx, survivor.ID, domain.RawInput{"comment": "stay"})
	require.NoError(t, err)

	require.NoError(t, markers.Delete(ctx, doomed.ID))

	left, err := comments.ListByMarker(ctx, doomed.ID)
	require.NoError(t, err)
	assert.Empty(t, left)

	all, err := markers.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, survivor.ID, all[0].ID)

	remaining, err := c.comments.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Comment{kept}, remaining)
}

func TestMarkerService_Delete_AbsentIsNoOp(t *testing.T) {
	svc, c := newMarkerService(t)
	ctx := context.Background()
	_, err := svc.Create(ctx, markerInput("", 1))
	require.NoError(t, err)
	before, err := c.markers.Load(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "missing"))

	after, err := c.markers.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

// TestMarkerService_Delete_CascadeFailure_KeepsMarkerDeleted checks the
// documented partial-failure window: the marker write stands, no rollback.
func TestMarkerService_Delete_CascadeFailure_KeepsMarkerDeleted(t *testing.T) {
	c := newCollections(t)
	ctx := context.Background()
	created, err := service.NewMarkerService(c.markers, c.comments).Create(ctx, markerInput("", 1))
	require.NoError(t, err)

	svc := service.NewMarkerService(c.markers, failingCollection[domain.Comment]())
	err = svc.Delete(ctx, created.ID)

	require.ErrorIs(t, err, domain.ErrIO)
	all, err := c.markers.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, all, "marker delete is not rolled back")
}

func TestMarkerService_Delete_MarkerWriteFailure_SkipsCascade(t *testing.T) {
	cascadeCalled := false
	comments := &mockCollection[domain.Comment]{
		mutate: func(context.Context, store.MutateFunc[domain.Comment]) error {
			cascadeCalled = true
			return nil
		},
	}
	svc := service.NewMarkerService(failingCollection[domain.Marker](), comments)

	err := svc.Delete(context.Background(), "any")

	assert.ErrorIs(t, err, domain.ErrIO)
	assert.False(t, cascadeCalled)
}
