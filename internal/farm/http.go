package farm

import (
	"encoding/json"
	"fmt"
	"net/http"

	"farmstead/internal/model"
	"farmstead/internal/telemetry"
)

// Handler handles farm-related HTTP requests. Every mutation goes through
// the command endpoint so the server stays authoritative over game state.
type Handler struct {
	repo           Repo
	catalog        *model.Catalog
	rules          Rules
	events         EventPolicy
	rng            Rand
	tel            telemetry.Repository
	farmIDResolver func(*http.Request) string
}

// NewHandler creates a new farm handler.
func NewHandler(repo Repo, catalog *model.Catalog, rules Rules, events EventPolicy, rng Rand) *Handler {
	return &Handler{
		repo:    repo,
		catalog: catalog,
		rules:   rules,
		events:  events,
		rng:     rng,
	}
}

// SetTelemetry attaches an event recorder shared by all sessions.
func (h *Handler) SetTelemetry(repo telemetry.Repository) { h.tel = repo }

// SetFarmIDResolver overrides how the session ID is derived from a request.
func (h *Handler) SetFarmIDResolver(fn func(*http.Request) string) {
	h.farmIDResolver = fn
}

func (h *Handler) farmIDFromRequest(r *http.Request) string {
	if h.farmIDResolver != nil {
		if id := h.farmIDResolver(r); id != "" {
			return id
		}
	}
	farmID := r.URL.Query().Get("farm")
	if farmID == "" {
		farmID = "default"
	}
	return farmID
}

func (h *Handler) engineFor(state *model.FarmState) *Engine {
	e := NewEngine(state, h.catalog, h.rules, h.events, h.rng)
	if h.tel != nil {
		e.SetTelemetry(h.tel)
	}
	return e
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}

func decodeJSON(r *http.Request, out any) error {
	dec := json.NewDecoder(r.Body)
	return dec.Decode(out)
}

// FarmStateResponse is the response for GET /api/farm/state.
type FarmStateResponse struct {
	Day       int             `json:"day"`
	Balance   int             `json:"balance"`
	Goal      int             `json:"goal"`
	Plots     []model.Plot    `json:"plots"`
	Inventory model.Inventory `json:"inventory"`
	Done      bool            `json:"done"`
	Revision  string          `json:"revision"`
}

// GET /api/farm/state
func (h *Handler) GetState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	farmID := h.farmIDFromRequest(r)

	state, err := h.repo.Load(farmID)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	snap := state.Clone()

	writeJSON(w, http.StatusOK, FarmStateResponse{
		Day:       snap.Day,
		Balance:   snap.Balance,
		Goal:      h.rules.Goal,
		Plots:     snap.Plots,
		Inventory: snap.Inventory,
		Done:      snap.Done,
		Revision:  fmt.Sprintf("%d", snap.Revision),
	})
}

// CommandRequest is the request body for POST /api/farm/cmd.
type CommandRequest struct {
	Cmd            string         `json:"cmd"`
	Args           map[string]any `json:"args"`
	ClientRevision string         `json:"clientRevision,omitempty"`
}

// CommandResponse is the response for POST /api/farm/cmd.
type CommandResponse struct {
	OK          bool   `json:"ok"`
	NewRevision string `json:"newRevision"`
	Result      any    `json:"result,omitempty"`
	Error       string `json:"error,omitempty"`
	Code        string `json:"code,omitempty"`
}

// POST /api/farm/cmd
func (h *Handler) Command(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	farmID := h.farmIDFromRequest(r)

	var req CommandRequest
	if err := decodeJSON(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}

	state, err := h.repo.Load(farmID)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	serverRevision := fmt.Sprintf("%d", state.Revision)
	if req.ClientRevision != "" && req.ClientRevision != serverRevision {
		writeJSON(w, http.StatusConflict, CommandResponse{
			OK:          false,
			NewRevision: serverRevision,
			Error:       "farm revision conflict",
		})
		return
	}

	result, err := h.executeCommand(state, req.Cmd, req.Args)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, CommandResponse{
			OK:          false,
			NewRevision: fmt.Sprintf("%d", state.Revision),
			Error:       err.Error(),
			Code:        ErrorCode(err),
		})
		return
	}

	if err := h.repo.Save(farmID, state); err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, CommandResponse{
		OK:          true,
		NewRevision: fmt.Sprintf("%d", state.Revision),
		Result:      result,
	})
}

// executeCommand dispatches the command to the matching engine operation.
func (h *Handler) executeCommand(state *model.FarmState, cmd string, args map[string]any) (any, error) {
	if state.Done && cmd != "farm.quit" {
		return nil, ErrGameOver
	}

	e := h.engineFor(state)

	switch cmd {
	case "farm.plant":
		crop, err := getString(args, "crop")
		if err != nil {
			return nil, err
		}
		plot, err := getInt(args, "plot")
		if err != nil {
			return nil, err
		}
		return e.Plant(model.CropKind(crop), plot)
	case "farm.water":
		plot, err := getInt(args, "plot")
		if err != nil {
			return nil, err
		}
		return e.Water(plot)
	case "farm.harvest":
		plot, err := getInt(args, "plot")
		if err != nil {
			return nil, err
		}
		return e.Harvest(plot)
	case "market.buy_seed":
		crop, err := getString(args, "crop")
		if err != nil {
			return nil, err
		}
		return e.BuySeed(model.CropKind(crop))
	case "world.end_day":
		return e.AdvanceDay(), nil
	case "farm.quit":
		e.Quit()
		return map[string]any{"done": true}, nil
	default:
		return nil, fmt.Errorf("unknown command: %s", cmd)
	}
}

// Helper to get string from args
func getString(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok {
		return "", fmt.Errorf("missing required field: %s", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("field %s must be a string", key)
	}
	return s, nil
}

// Helper to get int from args (JSON numbers are float64)
func getInt(args map[string]any, key string) (int, error) {
	v, ok := args[key]
	if !ok {
		return 0, fmt.Errorf("missing required field: %s", key)
	}
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("field %s must be a number", key)
	}
	return int(f), nil
}
