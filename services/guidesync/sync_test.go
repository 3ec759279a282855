package guidesync

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"guidetrack-backend/lib/scrapers/guideadmin"

	"github.com/stretchr/testify/require"
)

func guideFixture(id int64) string {
	return fmt.Sprintf(`
<html><body>
<div dusk="id">
	<div class="flex"><div class="w-1/4 md:w-1/4">ID</div><div class="w-3/4 md:w-3/4">%d</div></div>
</div>
<div dusk="ComputedField">
	<div class="flex"><div class="w-1/4 md:w-1/4">Estado</div><div class="w-3/4 md:w-3/4">Entregado</div></div>
</div>
<div dusk="number">
	<div class="flex"><div class="w-1/4 md:w-1/4">Guía</div><div class="w-3/4 md:w-3/4">2400%d</div></div>
</div>
<div dusk="fechas">
	<div class="flex"><div class="w-1/4 md:w-1/4">Fecha</div><div class="w-3/4 md:w-3/4">11/21/2024, 03:45 PM GMT-5</div></div>
</div>
<div dusk="throughCellar">
	<div class="flex"><div class="w-1/4 md:w-1/4">Bodega</div><div class="w-3/4 md:w-3/4">Principal</div></div>
</div>
<div dusk="transportadora">
	<div class="flex"><div class="w-1/4 md:w-1/4">Transportadora</div><div class="w-3/4 md:w-3/4">Coordinadora</div></div>
</div>
<div dusk="throughStore">
	<div class="flex"><div class="w-1/4 md:w-1/4">Tienda</div><div class="w-3/4 md:w-3/4">Tienda Norte</div></div>
</div>
<div dusk="productos">
	<div class="flex"><div class="w-1/4 md:w-1/4">Productos</div><div class="w-3/4 md:w-3/4">2 x Zapatos</div></div>
</div>
<div dusk="order">
	<div class="flex"><div class="w-1/4 md:w-1/4">Orden</div><div class="w-3/4 md:w-3/4">SO-%d</div></div>
</div>
<table dusk="guide-status-history">
	<thead><tr><th>Estado</th><th>Comentarios</th><th>Fecha y Hora</th><th>Creado Por</th><th>Acciones</th></tr></thead>
	<tbody>
		<tr><td>Recibido</td><td>—</td><td>11/20/2024, 09:00 AM GMT-5</td><td>sistema</td><td><button>Ver</button></td></tr>
		<tr><td>Entregado</td><td>en porteria</td><td>11/21/2024, 03:45 PM GMT-5</td><td>mensajero</td><td><button>Ver</button></td></tr>
	</tbody>
</table>
</body></html>`, id, id, id)
}

func TestSync(t *testing.T) {
	service, cleanup := setup(t)
	defer cleanup()

	var requests atomic.Int64
	mux := http.NewServeMux()
	mux.HandleFunc("/guides/", func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		var id int64
		_, err := fmt.Sscanf(r.URL.Path, "/guides/%d", &id)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		if id == 20 {
			// detail view that never finishes rendering
			w.Write([]byte(`<html><body><div id="app"></div></body></html>`))
			return
		}
		w.Write([]byte(guideFixture(id)))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client, err := guideadmin.NewClient(guideadmin.Colombia, guideadmin.Session{
		SessionToken: "session",
		XsrfToken:    "xsrf",
	}, guideadmin.ClientOptions{
		BaseUrl:      server.URL + "/guides/",
		ReadyTimeout: time.Nanosecond,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()

	// id 9 was stored by an earlier run, it sets the resume watermark
	recorded, err := service.Record(ctx, testOrder(9), nil)
	require.NoError(t, err)
	require.True(t, recorded)

	stats, err := service.Sync(ctx, client, []int64{3, 5, 9, 12, 20})
	require.NoError(t, err)
	require.Equal(t, 5, stats.Candidates)
	require.Equal(t, 3, stats.Filtered)
	require.Equal(t, 1, stats.Recorded)
	require.Equal(t, 1, stats.NotReady)
	// ids at or below the watermark never reach the network
	require.Equal(t, int64(2), requests.Load())

	order, err := service.Order(ctx, 12)
	require.NoError(t, err)
	require.Equal(t, "Entregado", order.Status)
	require.Equal(t, "240012", order.GuideNumber)
	require.Equal(t, "Coordinadora", order.Carrier)
	require.Equal(t, "SO-12", order.SourceOrderID)
	require.Equal(t, "colombia", order.Tenant)
	require.True(t, order.CreatedAt.Valid)
	require.Equal(t,
		time.Date(2024, time.November, 21, 20, 45, 0, 0, time.UTC).Unix(),
		order.CreatedAt.Int64,
	)

	events, err := service.StatusEvents(ctx, 12)
	require.NoError(t, err)
	require.Len(t, events, 2)
	require.Equal(t, "Recibido", events[0].Status)
	require.Equal(t, "", events[0].Comment)
	require.Equal(t, "en porteria", events[1].Comment)
	require.Equal(t, "mensajero", events[1].CreatedBy)

	// rerunning records nothing: everything stored is at or below the new
	// watermark, only the guide that never became ready is retried
	stats, err = service.Sync(ctx, client, []int64{3, 5, 9, 12, 20})
	require.NoError(t, err)
	require.Equal(t, 0, stats.Recorded)
	require.Equal(t, 4, stats.Filtered)
	require.Equal(t, 1, stats.NotReady)
	require.Equal(t, int64(3), requests.Load())
}
