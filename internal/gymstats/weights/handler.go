package weights

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/gymplates/internal/middleware"
	"github.com/2beens/gymplates/internal/plates"
	"github.com/2beens/gymplates/internal/telemetry/metrics"
	"github.com/2beens/gymplates/internal/telemetry/tracing"
	"github.com/2beens/gymplates/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

type setWeightRequest struct {
	Weight   float64 `json:"weight"`
	Quantity int     `json:"quantity"`
}

type calculateRequest struct {
	ExerciseName string   `json:"exerciseName"`
	TotalWeight  float64  `json:"totalWeight"`
	BarWeight    *float64 `json:"barWeight,omitempty"`
}

type barWeightResponse struct {
	BarWeight float64 `json:"barWeight"`
}

type classifyResponse struct {
	Exercise string `json:"exercise"`
	Barbell  bool   `json:"barbell"`
	Deadlift bool   `json:"deadlift"`
}

func (h *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	metricsManager *metrics.Manager,
	allowedRequestsPerMin int,
) {
	platesRouter := mainRouter.PathPrefix("/plates").Subrouter()
	platesRouter.HandleFunc("/classify", h.HandleClassify).Methods("GET", "OPTIONS").Name("classify")
	platesRouter.HandleFunc("/{userId}/weights", h.HandleList).Methods("GET", "OPTIONS").Name("list-weights")
	platesRouter.HandleFunc("/{userId}/weights", h.HandleSet).Methods("PUT", "OPTIONS").Name("set-weight")
	platesRouter.HandleFunc("/{userId}/weights/defaults", h.HandleInitDefaults).Methods("POST", "OPTIONS").Name("init-weights")
	platesRouter.HandleFunc("/{userId}/weights/{id}", h.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-weight")
	platesRouter.HandleFunc("/{userId}/barweight", h.HandleBarWeight).Methods("GET", "OPTIONS").Name("bar-weight")
	platesRouter.HandleFunc("/{userId}/calculate", h.HandleCalculate).Methods("POST", "OPTIONS").Name("calculate")

	platesRouter.Use(middleware.RateLimit(rateLimiter, "plates", allowedRequestsPerMin, metricsManager))
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weights.list")
	defer span.End()

	userID := mux.Vars(r)["userId"]
	weights, err := h.service.Weights(ctx, userID)
	if err != nil {
		log.Errorf("list weights for user %s: %s", userID, err)
		http.Error(w, "failed to get weights", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, weights, http.StatusOK)
}

func (h *Handler) HandleInitDefaults(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weights.initDefaults")
	defer span.End()

	userID := mux.Vars(r)["userId"]
	created, err := h.service.InitDefaults(ctx, userID)
	if err != nil {
		log.Errorf("init default weights for user %s: %s", userID, err)
		http.Error(w, "failed to init default weights", http.StatusInternalServerError)
		return
	}

	if created {
		pkg.WriteResponse(w, pkg.ContentType.Text, "created", http.StatusCreated)
		return
	}
	pkg.WriteResponse(w, pkg.ContentType.Text, "already initialized", http.StatusOK)
}

func (h *Handler) HandleSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weights.set")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req setWeightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("set weight, unmarshal json params: %s", err)
		http.Error(w, "set weight failed", http.StatusBadRequest)
		return
	}

	userID := mux.Vars(r)["userId"]
	pw, err := h.service.SetWeight(ctx, userID, req.Weight, req.Quantity)
	if errors.Is(err, plates.ErrInvalidArgument) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Errorf("set weight for user %s: %s", userID, err)
		http.Error(w, "set weight failed", http.StatusInternalServerError)
		return
	}

	if pw == nil {
		pkg.WriteResponse(w, pkg.ContentType.Text, "removed", http.StatusOK)
		return
	}
	pkg.WriteJSON(w, pw, http.StatusOK)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weights.delete")
	defer span.End()

	vars := mux.Vars(r)
	userID := vars["userId"]
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "invalid weight id", http.StatusBadRequest)
		return
	}

	err = h.service.DeleteWeight(ctx, userID, id)
	switch {
	case errors.Is(err, ErrPlateWeightNotFound):
		http.Error(w, "weight not found", http.StatusNotFound)
		return
	case errors.Is(err, ErrNotOwner):
		log.Warnf("user %s tried to delete weight %d of another user", userID, id)
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	case err != nil:
		log.Errorf("delete weight %d for user %s: %s", id, userID, err)
		http.Error(w, "delete weight failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "deleted")
}

func (h *Handler) HandleBarWeight(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	pkg.WriteJSON(w, barWeightResponse{BarWeight: h.service.BarWeight(userID)}, http.StatusOK)
}

func (h *Handler) HandleCalculate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weights.calculate")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req calculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("calculate, unmarshal json params: %s", err)
		http.Error(w, "calculate failed", http.StatusBadRequest)
		return
	}

	loadout, err := h.service.Calculate(ctx, CalculateParams{
		UserID:       mux.Vars(r)["userId"],
		ExerciseName: req.ExerciseName,
		TotalWeight:  req.TotalWeight,
		BarWeight:    req.BarWeight,
	})
	if errors.Is(err, plates.ErrInvalidArgument) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Errorf("calculate loadout: %s", err)
		http.Error(w, "calculate failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, loadout, http.StatusOK)
}

func (h *Handler) HandleClassify(w http.ResponseWriter, r *http.Request) {
	exercise := r.URL.Query().Get("exercise")
	if exercise == "" {
		http.Error(w, "missing exercise", http.StatusBadRequest)
		return
	}

	pkg.WriteJSON(w, classifyResponse{
		Exercise: exercise,
		Barbell:  plates.IsBarbellExercise(exercise),
		Deadlift: plates.IsDeadlift(exercise),
	}, http.StatusOK)
}
