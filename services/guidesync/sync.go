package guidesync

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"guidetrack-backend/lib/scrapers/guideadmin"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/guidesync")

// FilterNewIds drops every candidate at or below the resume watermark,
// preserving list order.
func FilterNewIds(ids []int64, watermark int64) []int64 {
	var out []int64
	for _, id := range ids {
		if id > watermark {
			out = append(out, id)
		}
	}
	return out
}

type SyncStats struct {
	Candidates int
	Filtered   int
	Recorded   int
	NotReady   int
	Duplicates int
}

// Sync runs the whole fetch/extract/normalize/persist pipeline over the
// candidate ids, sequentially, on one shared authenticated session. A page
// that never becomes ready only costs that one guide; anything wrong with
// the store or the session aborts the run.
func (s Service) Sync(ctx context.Context, client *guideadmin.Client, ids []int64) (SyncStats, error) {
	ctx, span := tracer.Start(ctx, "Sync")
	defer span.End()

	stats := SyncStats{Candidates: len(ids)}

	watermark, err := s.LastKnownId(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to read resume watermark")
		return stats, err
	}

	pending := FilterNewIds(ids, watermark)
	stats.Filtered = len(ids) - len(pending)
	slog.InfoContext(ctx, "starting sync",
		"tenant", client.Tenant.Name,
		"candidates", len(ids),
		"watermark", watermark,
		"pending", len(pending),
	)

	for _, id := range pending {
		err := s.syncOne(ctx, client, id, &stats)
		if errors.Is(err, guideadmin.ErrPageNotReady) {
			slog.WarnContext(ctx, "guide page not ready, skipping", "id", id)
			stats.NotReady++
			continue
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "sync aborted")
			return stats, err
		}
	}

	span.SetAttributes(
		attribute.Int("recorded", stats.Recorded),
		attribute.Int("not_ready", stats.NotReady),
	)
	return stats, nil
}

func (s Service) syncOne(ctx context.Context, client *guideadmin.Client, id int64, stats *SyncStats) error {
	ctx, span := tracer.Start(ctx, "syncOne")
	defer span.End()
	span.SetAttributes(attribute.Int64("guide_id", id))

	tenant := client.Tenant

	doc, err := client.Fetch(ctx, id)
	if err != nil {
		return err
	}

	extract := guideadmin.ExtractOrder(ctx, doc, tenant)
	if len(extract.Missing) > 0 {
		slog.WarnContext(ctx, "some fields did not resolve",
			"id", id,
			"tenant", tenant.Name,
			"fields", extract.Missing,
		)
	}
	rows := guideadmin.ExtractStatusHistory(ctx, doc, tenant)

	order := buildOrder(ctx, id, extract, tenant)
	history := buildHistory(rows, tenant)

	recorded, err := s.Record(ctx, order, history)
	if err != nil {
		return err
	}
	if !recorded {
		slog.InfoContext(ctx, "guide already stored, skipped", "id", id)
		stats.Duplicates++
		return nil
	}
	stats.Recorded++
	slog.InfoContext(ctx, "guide recorded",
		"id", id,
		"status", order.Status,
		"history_rows", len(history),
	)
	return nil
}

func buildOrder(ctx context.Context, requestedId int64, extract guideadmin.OrderExtract, tenant guideadmin.Tenant) Order {
	fields := extract.Fields

	id := requestedId
	if raw, ok := fields[guideadmin.FieldId]; ok {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed != requestedId {
			slog.WarnContext(ctx, "page id does not match requested id",
				"requested", requestedId,
				"extracted", raw,
			)
		}
		if err == nil {
			id = parsed
		}
	}

	createdAt, ok := guideadmin.ParseGuideTime(tenant, fields[guideadmin.FieldCreationDate])
	if !ok && fields[guideadmin.FieldCreationDate] != "" {
		slog.WarnContext(ctx, "creation date did not parse, storing null",
			"id", id,
			"raw", fields[guideadmin.FieldCreationDate],
		)
	}

	return Order{
		Id:            id,
		Status:        fields[guideadmin.FieldStatus],
		GuideNumber:   fields[guideadmin.FieldGuideNumber],
		CreatedAt:     createdAt,
		Warehouse:     fields[guideadmin.FieldWarehouse],
		Carrier:       fields[guideadmin.FieldCarrier],
		Store:         fields[guideadmin.FieldStore],
		Product:       fields[guideadmin.FieldProduct],
		SourceOrderId: fields[guideadmin.FieldSourceOrderId],
		Tenant:        tenant.Name,
	}
}

func buildHistory(rows []map[string]string, tenant guideadmin.Tenant) []StatusEvent {
	cols := tenant.History
	events := make([]StatusEvent, len(rows))
	for i, row := range rows {
		occurredAt, _ := guideadmin.ParseGuideTime(tenant, row[cols.Timestamp])
		events[i] = StatusEvent{
			Status:     row[cols.Status],
			Comment:    row[cols.Comment],
			OccurredAt: occurredAt,
			CreatedBy:  row[cols.Actor],
		}
	}
	return events
}
