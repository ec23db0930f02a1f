package internal

import (
	"context"
	"net/http"
	"time"

	"github.com/2beens/gymplates/pkg"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

type dbPinger interface {
	Ping(ctx context.Context) error
}

type healthResponse struct {
	Postgres string `json:"postgres"`
	Redis    string `json:"redis"`
}

// HealthHandler reports whether the backing stores answer pings.
type HealthHandler struct {
	redisClient redis.Cmdable
	db          dbPinger
	timeout     time.Duration
}

func NewHealthHandler(redisClient redis.Cmdable, db dbPinger) *HealthHandler {
	return &HealthHandler{
		redisClient: redisClient,
		db:          db,
		timeout:     2 * time.Second,
	}
}

func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	resp := healthResponse{Postgres: "ok", Redis: "ok"}
	status := http.StatusOK

	if err := h.db.Ping(ctx); err != nil {
		log.Errorf("health, ping postgres: %s", err)
		resp.Postgres = "unavailable"
		status = http.StatusServiceUnavailable
	}
	if err := h.redisClient.Ping(ctx).Err(); err != nil {
		log.Errorf("health, ping redis: %s", err)
		resp.Redis = "unavailable"
		status = http.StatusServiceUnavailable
	}

	pkg.WriteJSON(w, resp, status)
}
