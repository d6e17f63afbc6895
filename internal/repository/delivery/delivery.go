package delivery

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"deliverytracker/internal/entities"
	"deliverytracker/internal/repository"
	"deliverytracker/internal/service/delivery"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

const table = "deliveries"

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// даты хранятся как DATE, наружу отдаются строкой YYYY-MM-DD
var columns = []string{
	"id",
	"order_number",
	"location",
	"rider_name",
	"staff_name",
	"to_char(pickup_date, 'YYYY-MM-DD')",
	"to_char(delivery_date, 'YYYY-MM-DD')",
	"status",
	"customer_signature",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

var searchColumns = []string{"order_number", "location", "rider_name", "staff_name"}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error) {
	m := FromDomainModify(&deliveryModify)

	query, args, err := insertBuilder().
		Values(m.OrderNumber, m.Location, m.RiderName, m.StaffName, m.PickupDate, m.DeliveryDate, m.Status, m.CustomerSignature).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository create error: %w", err)
	}

	var model DeliveryDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(model.scanDest()...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, delivery.ErrOrderNumberExists
		}
		return nil, fmt.Errorf("unexpected delivery repository create error: %w", err)
	}

	return ToDomain(&model), nil
}

// CreateBatch вставляет записи одним pgx.Batch, в транзакции из ctx если она есть.
func (r *Repository) CreateBatch(ctx context.Context, deliveries []entities.DeliveryModify) error {
	batch := &pgx.Batch{}
	for i := range deliveries {
		m := FromDomainModify(&deliveries[i])
		query, args, err := insertBuilder().
			Values(m.OrderNumber, m.Location, m.RiderName, m.StaffName, m.PickupDate, m.DeliveryDate, m.Status, m.CustomerSignature).
			ToSql()
		if err != nil {
			return fmt.Errorf("unexpected delivery repository create batch error: %w", err)
		}
		batch.Queue(query, args...)
	}

	results := r.querier.SendBatch(ctx, batch)
	defer results.Close()

	for range deliveries {
		if _, err := results.Exec(); err != nil {
			if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
				return delivery.ErrOrderNumberExists
			}
			return fmt.Errorf("unexpected delivery repository create batch error: %w", err)
		}
	}

	return nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Delivery, error) {
	d, err := r.getOne(ctx, sq.Eq{"id": id})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, delivery.ErrDeliveryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository getbyid error: %w", err)
	}
	return d, nil
}

func (r *Repository) GetByOrderNumber(ctx context.Context, orderNumber string) (*entities.Delivery, error) {
	d, err := r.getOne(ctx, sq.Eq{"order_number": orderNumber})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, delivery.ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository getbyordernumber error: %w", err)
	}
	return d, nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Delivery, error) {
	deliveries, err := r.list(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository getall error: %w", err)
	}
	return deliveries, nil
}

func (r *Repository) GetByStatus(ctx context.Context, status entities.DeliveryStatusType) ([]entities.Delivery, error) {
	deliveries, err := r.list(ctx, sq.Eq{"status": status.String()})
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository getbystatus error: %w", err)
	}
	return deliveries, nil
}

// Search регистронезависимая подстрока по четырем текстовым колонкам,
// спецсимволы LIKE в запросе экранируются.
func (r *Repository) Search(ctx context.Context, query string) ([]entities.Delivery, error) {
	pattern := "%" + likeEscaper.Replace(query) + "%"

	or := make(sq.Or, 0, len(searchColumns))
	for _, column := range searchColumns {
		or = append(or, sq.ILike{column: pattern})
	}

	deliveries, err := r.list(ctx, or)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository search error: %w", err)
	}
	return deliveries, nil
}

func (r *Repository) Update(ctx context.Context, id int64, deliveryModify entities.DeliveryModify) (*entities.Delivery, error) {
	m := FromDomainModify(&deliveryModify)

	builder := qb.Update(table)

	// опциональные поля
	if m.OrderNumber != nil {
		builder = builder.Set("order_number", m.OrderNumber)
	}
	if m.Location != nil {
		builder = builder.Set("location", m.Location)
	}
	if m.RiderName != nil {
		builder = builder.Set("rider_name", m.RiderName)
	}
	if m.StaffName != nil {
		builder = builder.Set("staff_name", m.StaffName)
	}
	if m.PickupDate != nil {
		builder = builder.Set("pickup_date", m.PickupDate)
	}
	if m.DeliveryDate != nil {
		builder = builder.Set("delivery_date", m.DeliveryDate)
	}
	if m.Status != nil {
		builder = builder.Set("status", m.Status)
	}
	if m.CustomerSignature != nil {
		builder = builder.Set("customer_signature", m.CustomerSignature)
	}
	if m.ClearCustomerSignature {
		builder = builder.Set("customer_signature", nil)
	}

	builder = builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix(returning)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository update error: %w", err)
	}

	var model DeliveryDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(model.scanDest()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrDeliveryNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, delivery.ErrOrderNumberExists
		}
		return nil, fmt.Errorf("unexpected delivery repository update error: %w", err)
	}

	return ToDomain(&model), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.querier.Exec(ctx, `DELETE FROM deliveries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("unexpected delivery repository delete error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return delivery.ErrDeliveryNotFound
	}
	return nil
}

// Confirm переводит запись в Delivered только если она еще не Delivered.
// Если условие не выполнилось, возвращается ErrDeliveryNotFound.
func (r *Repository) Confirm(ctx context.Context, id int64, signature string) (*entities.Delivery, error) {
	query, args, err := qb.Update(table).
		Set("status", entities.DeliveryDelivered.String()).
		Set("customer_signature", signature).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Where(sq.NotEq{"status": entities.DeliveryDelivered.String()}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository confirm error: %w", err)
	}

	var model DeliveryDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(model.scanDest()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository confirm error: %w", err)
	}

	return ToDomain(&model), nil
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.querier.QueryRow(ctx, `SELECT COUNT(*) FROM deliveries`).Scan(&count); err != nil {
		return 0, fmt.Errorf("unexpected delivery repository count error: %w", err)
	}
	return count, nil
}

func insertBuilder() sq.InsertBuilder {
	return qb.Insert(table).Columns(
		"order_number",
		"location",
		"rider_name",
		"staff_name",
		"pickup_date",
		"delivery_date",
		"status",
		"customer_signature",
	)
}

func (r *Repository) getOne(ctx context.Context, where sq.Sqlizer) (*entities.Delivery, error) {
	query, args, err := qb.Select(columns...).From(table).Where(where).ToSql()
	if err != nil {
		return nil, err
	}

	var model DeliveryDB
	if err := r.querier.QueryRow(ctx, query, args...).Scan(model.scanDest()...); err != nil {
		return nil, err
	}
	return ToDomain(&model), nil
}

func (r *Repository) list(ctx context.Context, where sq.Sqlizer) ([]entities.Delivery, error) {
	builder := qb.Select(columns...).From(table).OrderBy("id")
	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	models := make([]DeliveryDB, 0, 8)
	for rows.Next() {
		var model DeliveryDB
		if err := rows.Scan(model.scanDest()...); err != nil {
			return nil, err
		}
		models = append(models, model)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ToDomainList(models), nil
}
