package serverapp

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"farmstead/internal/config"
	"farmstead/internal/farm"
	"farmstead/internal/httpmw"
	"farmstead/internal/model"
	"farmstead/internal/telemetry"
)

type Options struct {
	Config *config.Config
	Logger *log.Logger
	// Rand overrides the event randomness source; nil picks one from the
	// config seed (or the clock when the seed is zero).
	Rand farm.Rand
}

func NewHandler(opts Options) (http.Handler, error) {
	if opts.Config == nil {
		return nil, errors.New("config is required")
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}

	catalog, err := opts.Config.Catalog()
	if err != nil {
		return nil, err
	}

	rng := opts.Rand
	if rng == nil {
		if seed := opts.Config.Events.Seed; seed != 0 {
			rng = farm.NewSeededRand(seed)
		} else {
			rng = farm.NewRand()
		}
	}

	world := opts.Config.World
	repo := farm.NewMemoryRepo(func() *model.FarmState {
		return model.NewFarmState(world.PlotCount, world.StartingBalance, opts.Config.StartingSeeds())
	})

	telemetryRepo := telemetry.NewMemoryRepository()

	farmHandler := farm.NewHandler(
		repo,
		catalog,
		farm.Rules{Goal: world.Goal},
		farm.EventPolicy{PestBelow: opts.Config.Events.PestBelow, RainBelow: opts.Config.Events.RainBelow},
		rng,
	)
	farmHandler.SetTelemetry(telemetryRepo)

	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"service": "farmstead",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if _, err := repo.Load("default"); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{
				"ok":    false,
				"error": "farm storage unavailable",
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"service": "farmstead",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	mux.HandleFunc("/api/farm/state", farmHandler.GetState)
	mux.HandleFunc("/api/farm/cmd", farmHandler.Command)

	mux.HandleFunc("/api/farm/new", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeJSON(w, http.StatusMethodNotAllowed, map[string]any{"error": "method not allowed"})
			return
		}
		farmID := uuid.NewString()
		if _, err := repo.Load(farmID); err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"farmId": farmID})
	})

	mux.HandleFunc("/api/config", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(opts.Config); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	})

	mux.HandleFunc("/api/stats", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeJSON(w, http.StatusMethodNotAllowed, map[string]any{"error": "method not allowed"})
			return
		}
		events, err := telemetryRepo.GetEvents(time.Time{}, nil)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
			return
		}
		stats, err := telemetry.CalculateStats(events, time.Time{})
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, stats)
	})

	return httpmw.Chain(
		mux,
		httpmw.WithAccessLog(opts.Logger),
		httpmw.WithRequestID,
		httpmw.WithRecover(opts.Logger),
	), nil
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
