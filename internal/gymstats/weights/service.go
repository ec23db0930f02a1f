package weights

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/gymplates/internal/plates"
	"github.com/2beens/gymplates/internal/telemetry/metrics"
	"github.com/2beens/gymplates/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var ErrNotOwner = errors.New("plate weight belongs to another user")

//go:generate mockgen -source=$GOFILE -destination=weights_mocks_test.go -package=weights_test

type weightsRepo interface {
	List(ctx context.Context, userID string) ([]PlateWeight, error)
	Get(ctx context.Context, id int) (*PlateWeight, error)
	InitDefaults(ctx context.Context, userID string, defaults plates.Inventory) (bool, error)
	Set(ctx context.Context, userID string, weight float64, quantity int) (*PlateWeight, error)
	Delete(ctx context.Context, id int) error
}

type CalculateParams struct {
	UserID       string
	ExerciseName string
	TotalWeight  float64
	// BarWeight overrides the configured bar weight when set.
	BarWeight *float64
}

type Service struct {
	repo             weightsRepo
	cache            *InventoryCache
	metricsManager   *metrics.Manager
	defaultBarWeight float64
}

func NewService(
	repo weightsRepo,
	cache *InventoryCache,
	metricsManager *metrics.Manager,
	defaultBarWeight float64,
) *Service {
	return &Service{
		repo:             repo,
		cache:            cache,
		metricsManager:   metricsManager,
		defaultBarWeight: defaultBarWeight,
	}
}

// Weights lists the stored inventory rows of a user, heaviest first.
func (s *Service) Weights(ctx context.Context, userID string) (_ []PlateWeight, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.weights.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	weights, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list weights: %w", err)
	}
	if weights == nil {
		weights = []PlateWeight{}
	}
	return weights, nil
}

// Inventory returns the user's plates in solver form, served from cache when possible.
func (s *Service) Inventory(ctx context.Context, userID string) (_ plates.Inventory, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.weights.inventory")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if inventory, ok := s.cache.Get(userID); ok {
		s.metricsManager.CounterInventoryCache.WithLabelValues("hit").Inc()
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return inventory, nil
	}
	s.metricsManager.CounterInventoryCache.WithLabelValues("miss").Inc()

	generation := s.cache.Generation(userID)
	weights, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list weights: %w", err)
	}

	inventory := ToInventory(weights)
	if !s.cache.SetIfGeneration(userID, inventory, generation) {
		log.Debugf("inventory of user %s changed while loading, not caching", userID)
	}
	return inventory, nil
}

func (s *Service) InitDefaults(ctx context.Context, userID string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.weights.initDefaults")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	created, err := s.repo.InitDefaults(ctx, userID, plates.DefaultInventory())
	if err != nil {
		return false, fmt.Errorf("init default weights: %w", err)
	}
	if created {
		s.cache.Invalidate(userID)
		log.Debugf("default plate inventory created for user %s", userID)
	}
	return created, nil
}

// SetWeight upserts the quantity of one plate weight. A quantity <= 0 removes
// the plate, in which case the returned PlateWeight is nil.
func (s *Service) SetWeight(ctx context.Context, userID string, weight float64, quantity int) (_ *PlateWeight, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.weights.set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := plates.ValidateWeight(weight); err != nil {
		return nil, err
	}

	pw, err := s.repo.Set(ctx, userID, weight, quantity)
	if err != nil {
		return nil, fmt.Errorf("set weight: %w", err)
	}
	s.cache.Invalidate(userID)
	return pw, nil
}

func (s *Service) DeleteWeight(ctx context.Context, userID string, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.weights.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	pw, err := s.repo.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get weight %d: %w", id, err)
	}
	if pw.UserID != userID {
		return ErrNotOwner
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete weight %d: %w", id, err)
	}
	s.cache.Invalidate(userID)
	return nil
}

func (s *Service) BarWeight(_ string) float64 {
	return s.defaultBarWeight
}

// Calculate works out the per-side plates for an exercise. Exercises not done
// with a loaded barbell come back with Applicable set to false.
func (s *Service) Calculate(ctx context.Context, params CalculateParams) (_ *Loadout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.weights.calculate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("exercise", params.ExerciseName),
		attribute.Float64("total", params.TotalWeight),
	)

	barWeight := s.BarWeight(params.UserID)
	if params.BarWeight != nil {
		barWeight = *params.BarWeight
	}

	loadout := &Loadout{
		ExerciseName: params.ExerciseName,
		Applicable:   plates.IsBarbellExercise(params.ExerciseName),
		TotalWeight:  params.TotalWeight,
		BarWeight:    barWeight,
		Plates:       []float64{},
	}
	if !loadout.Applicable {
		return loadout, nil
	}

	inventory, err := s.Inventory(ctx, params.UserID)
	if err != nil {
		return nil, err
	}

	solve := plates.Solve
	loadout.Policy = PolicyRegular
	if plates.IsDeadlift(params.ExerciseName) {
		solve = plates.SolveForDeadlift
		loadout.Policy = PolicyDeadlift
	}

	solution, err := solve(params.TotalWeight, barWeight, inventory)
	if err != nil {
		return nil, fmt.Errorf("solve %s: %w", loadout.Policy, err)
	}

	loadout.Plates = solution.Plates
	loadout.Display = plates.Format(solution.Plates)
	loadout.Residual = solution.Residual
	loadout.Exact = solution.Exact()

	s.metricsManager.CounterPlateCalculations.WithLabelValues(loadout.Policy).Inc()
	s.metricsManager.HistogramPlatesPerSide.Observe(float64(len(solution.Plates)))
	if !loadout.Exact {
		s.metricsManager.CounterApproximateLoads.WithLabelValues(loadout.Policy).Inc()
		log.WithFields(log.Fields{
			"user":     params.UserID,
			"exercise": params.ExerciseName,
			"total":    params.TotalWeight,
			"bar":      barWeight,
			"residual": solution.Residual,
		}).Warn("cannot load exact total with available plates")
	}

	span.SetAttributes(attribute.String("loadout", loadout.Display))
	return loadout, nil
}
