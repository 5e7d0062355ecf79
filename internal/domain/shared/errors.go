package shared

import "fmt"

// DomainError is the base error type for all domain errors
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(message string) *DomainError {
	return &DomainError{Message: message}
}

// Construction errors

// InvalidDockNumberError indicates a dock number outside 1..4
type InvalidDockNumberError struct {
	*DomainError
	DockNumber int
}

func NewInvalidDockNumberError(dockNumber int) *InvalidDockNumberError {
	return &InvalidDockNumberError{
		DomainError: &DomainError{Message: fmt.Sprintf("invalid dock number: %d", dockNumber)},
		DockNumber:  dockNumber,
	}
}

// DockOccupiedError indicates a build was requested on a non-empty dock
type DockOccupiedError struct {
	*DomainError
	DockNumber int
}

func NewDockOccupiedError(dockNumber int) *DockOccupiedError {
	return &DockOccupiedError{
		DomainError: &DomainError{Message: fmt.Sprintf("dock %d already has a build in progress", dockNumber)},
		DockNumber:  dockNumber,
	}
}

// DockEmptyError indicates a completion or skip was requested on an empty dock
type DockEmptyError struct {
	*DomainError
	DockNumber int
}

func NewDockEmptyError(dockNumber int) *DockEmptyError {
	return &DockEmptyError{
		DomainError: &DomainError{Message: fmt.Sprintf("dock %d has no build in progress", dockNumber)},
		DockNumber:  dockNumber,
	}
}

// DockBusyError indicates another tutorial build is still in progress.
// The tutorial allows exactly one concurrent build across all docks.
type DockBusyError struct {
	*DomainError
}

func NewDockBusyError() *DockBusyError {
	return &DockBusyError{
		DomainError: &DomainError{Message: "a tutorial build is already in progress, collect it before starting the next one"},
	}
}

// NotMaturedError indicates a completion was requested before the build finished
type NotMaturedError struct {
	*DomainError
	DockNumber int
}

func NewNotMaturedError(dockNumber int) *NotMaturedError {
	return &NotMaturedError{
		DomainError: &DomainError{Message: fmt.Sprintf("build on dock %d is not finished yet", dockNumber)},
		DockNumber:  dockNumber,
	}
}

// SkipWindowNotReachedError indicates a free skip with >= 60s remaining
type SkipWindowNotReachedError struct {
	*DomainError
	RemainingMillis int64
}

func NewSkipWindowNotReachedError(remainingMillis int64) *SkipWindowNotReachedError {
	return &SkipWindowNotReachedError{
		DomainError:     &DomainError{Message: "free instant completion is only available under one minute remaining"},
		RemainingMillis: remainingMillis,
	}
}

// InsufficientItemsError indicates the player holds no instant-build consumables
type InsufficientItemsError struct {
	*DomainError
}

func NewInsufficientItemsError() *InsufficientItemsError {
	return &InsufficientItemsError{
		DomainError: &DomainError{Message: "not enough instant construction materials"},
	}
}

// InsufficientResourcesError indicates a debit larger than at least one counter
type InsufficientResourcesError struct {
	*DomainError
}

func NewInsufficientResourcesError() *InsufficientResourcesError {
	return &InsufficientResourcesError{
		DomainError: &DomainError{Message: "not enough resources"},
	}
}

// InvalidRecipeError indicates a malformed or mismatched build request
type InvalidRecipeError struct {
	*DomainError
}

func NewInvalidRecipeError(message string) *InvalidRecipeError {
	return &InvalidRecipeError{DomainError: &DomainError{Message: message}}
}

// NoTemplateAvailableError indicates empty ship reference data; this is a
// server misconfiguration, not a client-correctable failure
type NoTemplateAvailableError struct {
	*DomainError
}

func NewNoTemplateAvailableError() *NoTemplateAvailableError {
	return &NoTemplateAvailableError{
		DomainError: &DomainError{Message: "no ship templates configured"},
	}
}

// PlayerNotFoundError indicates a request for an unknown player id
type PlayerNotFoundError struct {
	*DomainError
	PlayerID int
}

func NewPlayerNotFoundError(playerID int) *PlayerNotFoundError {
	return &PlayerNotFoundError{
		DomainError: &DomainError{Message: fmt.Sprintf("player not found: %d", playerID)},
		PlayerID:    playerID,
	}
}

// Ship and fleet errors

// ShipNotFoundError indicates a ship that does not exist or is not owned by the caller
type ShipNotFoundError struct {
	*DomainError
	ShipID int
}

func NewShipNotFoundError(shipID int) *ShipNotFoundError {
	return &ShipNotFoundError{
		DomainError: &DomainError{Message: fmt.Sprintf("ship not found or not owned by player: %d", shipID)},
		ShipID:      shipID,
	}
}

// ValidationError carries a field-level request validation failure
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// SortieNotReadyError indicates a fleet that fails a sortie eligibility check
type SortieNotReadyError struct {
	*DomainError
}

func NewSortieNotReadyError(message string) *SortieNotReadyError {
	return &SortieNotReadyError{DomainError: &DomainError{Message: message}}
}
