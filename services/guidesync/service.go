package guidesync

import (
	"context"
	"database/sql"
	"time"

	"guidetrack-backend/services/guidesync/db"

	_ "modernc.org/sqlite"
)

// Service owns the one store handle used for the whole run.
type Service struct {
	db  *sql.DB
	qry *db.Queries
}

func NewService(database *sql.DB) Service {
	return Service{
		db:  database,
		qry: db.New(database),
	}
}

// Order is one shipment guide as scraped off the admin panel. A zero
// CreatedAt means the panel's date string did not parse and is stored as
// null.
type Order struct {
	Id            int64
	Status        string
	GuideNumber   string
	CreatedAt     time.Time
	Warehouse     string
	Carrier       string
	Store         string
	Product       string
	SourceOrderId string
	Tenant        string
}

// StatusEvent is one row of a guide's status timeline. Rows keep the
// order the panel rendered them in, which is not guaranteed to be
// chronological.
type StatusEvent struct {
	Status     string
	Comment    string
	OccurredAt time.Time
	CreatedBy  string
}

func nullUnix(t time.Time) sql.NullInt64 {
	if t.IsZero() {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: t.Unix(), Valid: true}
}

// LastKnownId returns the resume watermark: the highest guide id already
// stored, or 0 when the store is empty.
func (s Service) LastKnownId(ctx context.Context) (int64, error) {
	return s.qry.GetLastOrderId(ctx)
}

// Record persists an order together with its status history in a single
// transaction, so a crash can never leave an order without the history
// that came off the same page. An id that is already stored is skipped
// as a whole (history included) and reported via the boolean.
func (s Service) Record(ctx context.Context, order Order, history []StatusEvent) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()
	txqry := s.qry.WithTx(tx)

	inserted, err := txqry.CreateOrder(ctx, db.CreateOrderParams{
		ID:            order.Id,
		Status:        order.Status,
		GuideNumber:   order.GuideNumber,
		CreatedAt:     nullUnix(order.CreatedAt),
		Warehouse:     order.Warehouse,
		Carrier:       order.Carrier,
		Store:         order.Store,
		Product:       order.Product,
		SourceOrderID: order.SourceOrderId,
		Tenant:        order.Tenant,
	})
	if err != nil {
		return false, err
	}
	if inserted == 0 {
		return false, nil
	}

	for _, event := range history {
		err := txqry.CreateStatusEvent(ctx, db.CreateStatusEventParams{
			OrderID:    order.Id,
			Status:     event.Status,
			Comment:    event.Comment,
			OccurredAt: nullUnix(event.OccurredAt),
			CreatedBy:  event.CreatedBy,
		})
		if err != nil {
			return false, err
		}
	}
	return true, tx.Commit()
}

func (s Service) Order(ctx context.Context, id int64) (db.Order, error) {
	return s.qry.GetOrder(ctx, id)
}

func (s Service) Orders(ctx context.Context, limit int64) ([]db.Order, error) {
	return s.qry.ListOrders(ctx, limit)
}

func (s Service) StatusEvents(ctx context.Context, orderId int64) ([]db.StatusEvent, error) {
	return s.qry.ListStatusEvents(ctx, orderId)
}
