package weights

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymplates/internal/plates"
	"github.com/2beens/gymplates/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrPlateWeightNotFound = errors.New("plate weight not found")

const schemaSQL = `
CREATE TABLE IF NOT EXISTS plate_weight
(
    id         SERIAL PRIMARY KEY,
    user_id    VARCHAR          NOT NULL,
    weight     DOUBLE PRECISION NOT NULL CHECK (weight > 0),
    quantity   INTEGER          NOT NULL CHECK (quantity >= 0),
    created_at TIMESTAMPTZ      NOT NULL,
    updated_at TIMESTAMPTZ      NOT NULL,
    UNIQUE (user_id, weight)
);
CREATE INDEX IF NOT EXISTS ix_plate_weight_user_id ON plate_weight (user_id);
`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) EnsureSchema(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.weights.ensureSchema")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := r.db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create plate_weight table: %w", err)
	}
	return nil
}

// List returns the user's plates, heaviest first.
func (r *Repo) List(ctx context.Context, userID string) (_ []PlateWeight, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.weights.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, weight, quantity, created_at, updated_at
			FROM plate_weight
			WHERE user_id = $1
			ORDER BY weight DESC;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var weights []PlateWeight
	for rows.Next() {
		var w PlateWeight
		if err := rows.Scan(&w.ID, &w.UserID, &w.Weight, &w.Quantity, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		weights = append(weights, w)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("weights.count", len(weights)))
	return weights, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *PlateWeight, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.weights.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	var w PlateWeight
	err = r.db.QueryRow(
		ctx,
		`SELECT id, user_id, weight, quantity, created_at, updated_at
			FROM plate_weight
			WHERE id = $1;`,
		id,
	).Scan(&w.ID, &w.UserID, &w.Weight, &w.Quantity, &w.CreatedAt, &w.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrPlateWeightNotFound
	}
	if err != nil {
		return nil, err
	}

	return &w, nil
}

// InitDefaults stores the given inventory for a user that has no plates yet.
// Returns false (and changes nothing) if the user already has some.
func (r *Repo) InitDefaults(ctx context.Context, userID string, defaults plates.Inventory) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.weights.initDefaults")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	var inserted int64
	err = pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		// serializes concurrent first logins of the same user
		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1));`, userID); err != nil {
			return fmt.Errorf("lock user weights: %w", err)
		}

		var exists bool
		if err := tx.QueryRow(
			ctx,
			`SELECT EXISTS(SELECT 1 FROM plate_weight WHERE user_id = $1);`,
			userID,
		).Scan(&exists); err != nil {
			return fmt.Errorf("check existing weights: %w", err)
		}
		if exists {
			return nil
		}

		now := time.Now()
		for _, p := range defaults {
			tag, err := tx.Exec(
				ctx,
				`INSERT INTO plate_weight (user_id, weight, quantity, created_at, updated_at)
					VALUES ($1, $2, $3, $4, $4)
					ON CONFLICT (user_id, weight) DO NOTHING;`,
				userID, p.Weight, p.Quantity, now,
			)
			if err != nil {
				return fmt.Errorf("insert default weight %v: %w", p.Weight, err)
			}
			inserted += tag.RowsAffected()
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	created := inserted > 0
	span.SetAttributes(attribute.Bool("created", created))
	return created, nil
}

// Set creates or updates the user's plate of the given weight. A quantity of
// zero or less removes it; nil is returned in that case.
func (r *Repo) Set(ctx context.Context, userID string, weight float64, quantity int) (_ *PlateWeight, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.weights.set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("user.id", userID),
		attribute.Float64("weight", weight),
		attribute.Int("quantity", quantity),
	)

	if quantity <= 0 {
		if _, err := r.db.Exec(
			ctx,
			`DELETE FROM plate_weight WHERE user_id = $1 AND weight = $2;`,
			userID, weight,
		); err != nil {
			return nil, err
		}
		return nil, nil
	}

	now := time.Now()
	w := PlateWeight{
		UserID:    userID,
		Weight:    weight,
		Quantity:  quantity,
		UpdatedAt: now,
	}
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO plate_weight (user_id, weight, quantity, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $4)
			ON CONFLICT (user_id, weight)
				DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = EXCLUDED.updated_at
			RETURNING id, created_at;`,
		userID, weight, quantity, now,
	).Scan(&w.ID, &w.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("upsert weight: %w", err)
	}

	return &w, nil
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.weights.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM plate_weight WHERE id = $1;`,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrPlateWeightNotFound
	}
	return nil
}
