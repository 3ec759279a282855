package guidesync

import (
	"context"
	"testing"
	"time"

	"guidetrack-backend/lib/sqliteutil"
	"guidetrack-backend/lib/telemetry"
	"guidetrack-backend/services/guidesync/db"

	"github.com/stretchr/testify/require"
)

func setup(t testing.TB) (Service, func()) {
	cleanup := telemetry.SetupForTesting("test:services/guidesync")

	sqlite, err := sqliteutil.OpenDB(db.Schema, ":memory:")
	if err != nil {
		t.Fatal(err)
	}

	return NewService(sqlite), func() {
		sqlite.Close()
		cleanup()
	}
}

func testOrder(id int64) Order {
	return Order{
		Id:          id,
		Status:      "Entregado",
		GuideNumber: "240011258639",
		CreatedAt:   time.Date(2024, time.November, 21, 15, 45, 0, 0, time.UTC),
		Warehouse:   "Bodega Principal",
		Carrier:     "Coordinadora",
		Store:       "Tienda Norte",
		Product:     "2 x Zapatos",
		Tenant:      "colombia",
	}
}

func TestLastKnownId(t *testing.T) {
	service, cleanup := setup(t)
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	last, err := service.LastKnownId(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(0), last)

	for _, id := range []int64{5, 12, 7} {
		recorded, err := service.Record(ctx, testOrder(id), nil)
		require.NoError(t, err)
		require.True(t, recorded)
	}

	last, err = service.LastKnownId(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(12), last)
}

func TestRecordWithHistory(t *testing.T) {
	service, cleanup := setup(t)
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	history := []StatusEvent{
		{
			Status:     "Recibido",
			Comment:    "",
			OccurredAt: time.Date(2024, time.November, 20, 9, 0, 0, 0, time.UTC),
			CreatedBy:  "sistema",
		},
		{
			Status:    "Entregado",
			Comment:   "entregado en porteria",
			CreatedBy: "mensajero",
		},
	}
	recorded, err := service.Record(ctx, testOrder(42), history)
	require.NoError(t, err)
	require.True(t, recorded)

	events, err := service.StatusEvents(ctx, 42)
	require.NoError(t, err)
	require.Len(t, events, 2)
	require.Equal(t, "Recibido", events[0].Status)
	require.True(t, events[0].OccurredAt.Valid)
	// an event whose timestamp never parsed is stored with a null
	require.False(t, events[1].OccurredAt.Valid)
	require.Equal(t, "mensajero", events[1].CreatedBy)
}

func TestRecordDuplicateIsSkipped(t *testing.T) {
	service, cleanup := setup(t)
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	recorded, err := service.Record(ctx, testOrder(7), []StatusEvent{{Status: "Recibido"}})
	require.NoError(t, err)
	require.True(t, recorded)

	// same id again: skipped as a whole, no error, no duplicated history
	recorded, err = service.Record(ctx, testOrder(7), []StatusEvent{{Status: "Recibido"}})
	require.NoError(t, err)
	require.False(t, recorded)

	events, err := service.StatusEvents(ctx, 7)
	require.NoError(t, err)
	require.Len(t, events, 1)
}

func TestRecordNullCreationDate(t *testing.T) {
	service, cleanup := setup(t)
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	order := testOrder(9)
	order.CreatedAt = time.Time{}
	recorded, err := service.Record(ctx, order, nil)
	require.NoError(t, err)
	require.True(t, recorded)

	stored, err := service.Order(ctx, 9)
	require.NoError(t, err)
	require.False(t, stored.CreatedAt.Valid)
}

func TestFilterNewIds(t *testing.T) {
	filtered := FilterNewIds([]int64{3, 5, 9, 12, 20}, 9)
	require.Equal(t, []int64{12, 20}, filtered)

	require.Empty(t, FilterNewIds([]int64{3, 5}, 9))
	require.Equal(t, []int64{3, 5}, FilterNewIds([]int64{3, 5}, 0))
}
