package factory

import (
	"fmt"

	"github.com/daehan-dev/fleetworks-go/internal/domain/player"
	"github.com/daehan-dev/fleetworks-go/internal/domain/shared"
	"github.com/daehan-dev/fleetworks-go/internal/domain/ship"
)

// TutorialBuildCount is the number of builds governed by fixed recipes
const TutorialBuildCount = 4

// Phase is the build phase discriminator: the first four builds follow fixed
// tutorial recipes, everything after is a player-priced random construction.
type Phase struct {
	Tutorial bool
	Step     int // 1..4, only meaningful when Tutorial
}

// PhaseForShipCount derives the build phase from the player's ship count
func PhaseForShipCount(shipCount int) Phase {
	if shipCount < TutorialBuildCount {
		return Phase{Tutorial: true, Step: shipCount + 1}
	}
	return Phase{}
}

type tutorialRecipe struct {
	cost       player.Resources
	templateID int
}

// Fixed tutorial recipes. Steps 1-3 finish in one minute regardless of the
// template's configured duration; step 4 uses the template duration.
var tutorialRecipes = map[int]tutorialRecipe{
	1: {cost: player.Resources{Fuel: 30, Ammo: 30, Steel: 30, Bauxite: 30}, templateID: 1},
	2: {cost: player.Resources{Fuel: 30, Ammo: 30, Steel: 30, Bauxite: 30}, templateID: 2},
	3: {cost: player.Resources{Fuel: 30, Ammo: 30, Steel: 30, Bauxite: 30}, templateID: 3},
	4: {cost: player.Resources{Fuel: 200, Ammo: 30, Steel: 250, Bauxite: 30}, templateID: 5},
}

// Normal-phase construction tiers. The declared cost must match one exactly.
var (
	TierSmall   = player.Resources{Fuel: 100, Ammo: 100, Steel: 100, Bauxite: 100}
	TierLarge   = player.Resources{Fuel: 300, Ammo: 300, Steel: 300, Bauxite: 300}
	TierSpecial = player.Resources{Fuel: 500, Ammo: 500, Steel: 500, Bauxite: 500}
)

// Selection is the resolver's answer: which template to build and how long
type Selection struct {
	Template        ship.Template
	DurationMinutes int
}

// Resolver decides template and duration for a build request. Normal-phase
// template selection goes through an injectable randomness source.
type Resolver struct {
	rand shared.RandSource
}

// NewResolver creates a recipe resolver
func NewResolver(rand shared.RandSource) *Resolver {
	return &Resolver{rand: rand}
}

// Resolve maps (ship count, declared cost) onto a template and duration.
// templates is the full ship_master catalog; an empty catalog is a fatal
// misconfiguration.
func (r *Resolver) Resolve(shipCount int, declared player.Resources, templates []ship.Template) (Selection, error) {
	if len(templates) == 0 {
		return Selection{}, shared.NewNoTemplateAvailableError()
	}

	phase := PhaseForShipCount(shipCount)
	if phase.Tutorial {
		return r.resolveTutorial(phase.Step, declared, templates)
	}
	return r.resolveNormal(declared, templates)
}

func (r *Resolver) resolveTutorial(step int, declared player.Resources, templates []ship.Template) (Selection, error) {
	recipe, ok := tutorialRecipes[step]
	if !ok {
		return Selection{}, shared.NewInvalidRecipeError(fmt.Sprintf("no tutorial recipe for step %d", step))
	}
	if !declared.Equals(recipe.cost) {
		return Selection{}, shared.NewInvalidRecipeError("tutorial construction requires the exact recommended resources")
	}

	tpl, ok := findTemplate(templates, recipe.templateID)
	if !ok {
		return Selection{}, shared.NewNoTemplateAvailableError()
	}

	duration := 1
	if step == TutorialBuildCount {
		duration = tpl.BuildTimeMinutes
	}
	return Selection{Template: tpl, DurationMinutes: duration}, nil
}

func (r *Resolver) resolveNormal(declared player.Resources, templates []ship.Template) (Selection, error) {
	if !declared.Equals(TierSmall) && !declared.Equals(TierLarge) && !declared.Equals(TierSpecial) {
		return Selection{}, shared.NewInvalidRecipeError("construction cost must match a build tier")
	}
	tpl := templates[r.rand.Intn(len(templates))]
	return Selection{Template: tpl, DurationMinutes: tpl.BuildTimeMinutes}, nil
}

func findTemplate(templates []ship.Template, id int) (ship.Template, bool) {
	for _, tpl := range templates {
		if tpl.ID == id {
			return tpl, true
		}
	}
	return ship.Template{}, false
}
