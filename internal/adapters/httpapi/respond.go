package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/daehan-dev/fleetworks-go/internal/application/common"
	"github.com/daehan-dev/fleetworks-go/internal/domain/shared"
)

// errorBody is the JSON error envelope: a machine-readable kind plus a
// human-readable message.
type errorBody struct {
	Error struct {
		Kind    string `json:"kind"`
		Message string `json:"message"`
	} `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError maps domain errors onto HTTP statuses. Validation-style
// failures are 400, state conflicts 409, eligibility refusals 403 and
// missing resources 404; anything unrecognized is a 500 and gets logged.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	kind, status := classify(err)

	if status == http.StatusInternalServerError {
		common.LoggerFromContext(r.Context()).Log("ERROR", "request failed", map[string]interface{}{
			"path":  r.URL.Path,
			"error": err.Error(),
		})
	}

	var body errorBody
	body.Error.Kind = kind
	body.Error.Message = err.Error()
	if status == http.StatusInternalServerError {
		body.Error.Message = "internal server error"
	}
	writeJSON(w, status, body)
}

func classify(err error) (string, int) {
	var (
		validationErr     *shared.ValidationError
		invalidRecipe     *shared.InvalidRecipeError
		invalidDockNumber *shared.InvalidDockNumberError
		insufficientRes   *shared.InsufficientResourcesError
		insufficientItems *shared.InsufficientItemsError
		dockOccupied      *shared.DockOccupiedError
		dockEmpty         *shared.DockEmptyError
		dockBusy          *shared.DockBusyError
		notMatured        *shared.NotMaturedError
		skipWindow        *shared.SkipWindowNotReachedError
		sortieNotReady    *shared.SortieNotReadyError
		playerNotFound    *shared.PlayerNotFoundError
		shipNotFound      *shared.ShipNotFoundError
		noTemplateErr     *shared.NoTemplateAvailableError
	)

	switch {
	case errors.As(err, &validationErr):
		return "validation_failed", http.StatusBadRequest
	case errors.As(err, &invalidRecipe):
		return "invalid_recipe", http.StatusBadRequest
	case errors.As(err, &invalidDockNumber):
		return "invalid_dock_number", http.StatusBadRequest
	case errors.As(err, &insufficientRes):
		return "insufficient_resources", http.StatusConflict
	case errors.As(err, &insufficientItems):
		return "insufficient_items", http.StatusConflict
	case errors.As(err, &dockOccupied):
		return "dock_occupied", http.StatusConflict
	case errors.As(err, &dockEmpty):
		return "dock_empty", http.StatusConflict
	case errors.As(err, &dockBusy):
		return "dock_busy", http.StatusConflict
	case errors.As(err, &notMatured):
		return "not_matured", http.StatusConflict
	case errors.As(err, &skipWindow):
		return "skip_window_not_reached", http.StatusConflict
	case errors.As(err, &sortieNotReady):
		return "sortie_not_ready", http.StatusForbidden
	case errors.As(err, &playerNotFound):
		return "player_not_found", http.StatusNotFound
	case errors.As(err, &shipNotFound):
		return "ship_not_found", http.StatusNotFound
	case errors.As(err, &noTemplateErr):
		return "no_template_available", http.StatusInternalServerError
	default:
		return "internal", http.StatusInternalServerError
	}
}
