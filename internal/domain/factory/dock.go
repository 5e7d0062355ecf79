package factory

import (
	"time"

	"github.com/daehan-dev/fleetworks-go/internal/domain/shared"
)

// DockCount is the fixed number of construction docks per player
const DockCount = 4

// FreeSkipWindow is the remaining-duration threshold under which a build may
// be completed instantly without consuming an item.
const FreeSkipWindow = 60 * time.Second

// DockStatus is the derived lifecycle state of a dock. Complete is never
// stored: it is Building observed after the completion timestamp has passed.
type DockStatus string

const (
	DockStatusEmpty    DockStatus = "empty"
	DockStatusBuilding DockStatus = "building"
	DockStatusComplete DockStatus = "complete"
)

// ValidDockNumber reports whether n names one of the four docks
func ValidDockNumber(n int) bool {
	return n >= 1 && n <= DockCount
}

// UnlockLevel returns the commander level required to use a dock.
// Docks 1 and 2 are always available.
func UnlockLevel(dockNumber int) int {
	switch dockNumber {
	case 3:
		return 5
	case 4:
		return 20
	default:
		return 0
	}
}

// Dock is one construction slot. TemplateID and CompletionTime are both nil
// exactly when the dock is empty; a build in progress sets both.
type Dock struct {
	ID             int
	PlayerID       shared.PlayerID
	Number         int
	TemplateID     *int
	CompletionTime *time.Time
}

// IsEmpty reports whether no build occupies the dock
func (d *Dock) IsEmpty() bool {
	return d.TemplateID == nil
}

// Status derives the dock state from the provided wall-clock time
func (d *Dock) Status(now time.Time) DockStatus {
	if d.IsEmpty() {
		return DockStatusEmpty
	}
	if now.Before(*d.CompletionTime) {
		return DockStatusBuilding
	}
	return DockStatusComplete
}

// Remaining returns the time left until maturity, never negative
func (d *Dock) Remaining(now time.Time) time.Duration {
	if d.IsEmpty() {
		return 0
	}
	remaining := d.CompletionTime.Sub(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// StartBuild occupies an empty dock with a build finishing at completes
func (d *Dock) StartBuild(templateID int, completes time.Time) error {
	if !d.IsEmpty() {
		return shared.NewDockOccupiedError(d.Number)
	}
	d.TemplateID = &templateID
	d.CompletionTime = &completes
	return nil
}

// Skip forces the build into maturity. The free variant requires the
// remaining duration to be inside the skip window; the item variant is
// unconditional (the item has already been consumed by the caller). Applying
// a skip to an already-matured dock is a harmless no-op.
func (d *Dock) Skip(now time.Time, free bool) error {
	if d.IsEmpty() {
		return shared.NewDockEmptyError(d.Number)
	}
	remaining := d.CompletionTime.Sub(now)
	if remaining <= 0 {
		return nil
	}
	if free && remaining >= FreeSkipWindow {
		return shared.NewSkipWindowNotReachedError(remaining.Milliseconds())
	}
	matured := now.Add(-time.Second)
	d.CompletionTime = &matured
	return nil
}

// Collect validates maturity, empties the dock and returns the template id
// of the finished build.
func (d *Dock) Collect(now time.Time) (int, error) {
	if d.IsEmpty() {
		return 0, shared.NewDockEmptyError(d.Number)
	}
	if now.Before(*d.CompletionTime) {
		return 0, shared.NewNotMaturedError(d.Number)
	}
	templateID := *d.TemplateID
	d.TemplateID = nil
	d.CompletionTime = nil
	return templateID, nil
}
