package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	catalogqueries "github.com/daehan-dev/fleetworks-go/internal/application/catalog/queries"
	factorycommands "github.com/daehan-dev/fleetworks-go/internal/application/factory/commands"
	factoryqueries "github.com/daehan-dev/fleetworks-go/internal/application/factory/queries"
	fleetcommands "github.com/daehan-dev/fleetworks-go/internal/application/fleet/commands"
	fleetqueries "github.com/daehan-dev/fleetworks-go/internal/application/fleet/queries"
	playerqueries "github.com/daehan-dev/fleetworks-go/internal/application/player/queries"
	shipqueries "github.com/daehan-dev/fleetworks-go/internal/application/ship/queries"
	sortiecommands "github.com/daehan-dev/fleetworks-go/internal/application/sortie/commands"
	"github.com/daehan-dev/fleetworks-go/internal/domain/fleet"
	"github.com/daehan-dev/fleetworks-go/internal/domain/player"
	"github.com/daehan-dev/fleetworks-go/internal/domain/shared"
)

var validate = validator.New()

func decodeBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return shared.NewValidationError("body", "malformed JSON body")
	}
	if err := validate.Struct(dst); err != nil {
		return shared.NewValidationError("body", err.Error())
	}
	return nil
}

func mustPlayerID(w http.ResponseWriter, r *http.Request) (shared.PlayerID, bool) {
	id, ok := PlayerIDFromContext(r.Context())
	if !ok {
		writeError(w, r, shared.NewValidationError("X-Player-ID", "missing player identity"))
	}
	return id, ok
}

// --- factory ---

type beginBuildRequest struct {
	DockNumber int `json:"dock_number" validate:"required,min=1,max=4"`
	Fuel       int `json:"fuel" validate:"min=0"`
	Ammo       int `json:"ammo" validate:"min=0"`
	Steel      int `json:"steel" validate:"min=0"`
	Bauxite    int `json:"bauxite" validate:"min=0"`
}

type beginBuildResponse struct {
	DockNumber      int       `json:"dock_number"`
	DurationMinutes int       `json:"duration_minutes"`
	CompletionTime  time.Time `json:"completion_time"`
}

func (s *Server) handleBeginBuild(w http.ResponseWriter, r *http.Request) {
	playerID, ok := mustPlayerID(w, r)
	if !ok {
		return
	}
	var req beginBuildRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	res, err := s.mediator.Send(r.Context(), &factorycommands.BeginBuildCommand{
		PlayerID:   playerID,
		DockNumber: req.DockNumber,
		Cost: player.Resources{
			Fuel:    req.Fuel,
			Ammo:    req.Ammo,
			Steel:   req.Steel,
			Bauxite: req.Bauxite,
		},
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	result := res.(*factorycommands.BeginBuildResult)
	writeJSON(w, http.StatusOK, beginBuildResponse{
		DockNumber:      result.DockNumber,
		DurationMinutes: result.DurationMinutes,
		CompletionTime:  result.CompletionTime,
	})
}

type skipBuildRequest struct {
	DockNumber int  `json:"dock_number" validate:"required,min=1,max=4"`
	UseItem    bool `json:"use_item"`
}

type skipBuildResponse struct {
	DockNumber   int  `json:"dock_number"`
	ItemConsumed bool `json:"item_consumed"`
}

func (s *Server) handleSkipBuild(w http.ResponseWriter, r *http.Request) {
	playerID, ok := mustPlayerID(w, r)
	if !ok {
		return
	}
	var req skipBuildRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	res, err := s.mediator.Send(r.Context(), &factorycommands.SkipBuildCommand{
		PlayerID:   playerID,
		DockNumber: req.DockNumber,
		UseItem:    req.UseItem,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	result := res.(*factorycommands.SkipBuildResult)
	writeJSON(w, http.StatusOK, skipBuildResponse{
		DockNumber:   result.DockNumber,
		ItemConsumed: result.ItemConsumed,
	})
}

type completeBuildRequest struct {
	DockNumber int `json:"dock_number" validate:"required,min=1,max=4"`
}

type completeBuildResponse struct {
	ShipID     int    `json:"ship_id"`
	TemplateID int    `json:"template_id"`
	ShipName   string `json:"ship_name"`
}

func (s *Server) handleCompleteBuild(w http.ResponseWriter, r *http.Request) {
	playerID, ok := mustPlayerID(w, r)
	if !ok {
		return
	}
	var req completeBuildRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	res, err := s.mediator.Send(r.Context(), &factorycommands.CompleteBuildCommand{
		PlayerID:   playerID,
		DockNumber: req.DockNumber,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	result := res.(*factorycommands.CompleteBuildResult)
	writeJSON(w, http.StatusOK, completeBuildResponse{
		ShipID:     result.ShipID,
		TemplateID: result.TemplateID,
		ShipName:   result.ShipName,
	})
}

type dockResponse struct {
	DockNumber      int        `json:"dock_number"`
	Status          string     `json:"status"`
	TemplateID      *int       `json:"template_id,omitempty"`
	ShipName        string     `json:"ship_name,omitempty"`
	CompletionTime  *time.Time `json:"completion_time,omitempty"`
	RemainingMillis int64      `json:"remaining_millis"`
	UnlockLevel     int        `json:"unlock_level"`
}

func (s *Server) handleListDocks(w http.ResponseWriter, r *http.Request) {
	playerID, ok := mustPlayerID(w, r)
	if !ok {
		return
	}
	res, err := s.mediator.Send(r.Context(), &factoryqueries.ListDocksQuery{PlayerID: playerID})
	if err != nil {
		writeError(w, r, err)
		return
	}
	result := res.(*factoryqueries.ListDocksResult)

	docks := make([]dockResponse, 0, len(result.Docks))
	for _, d := range result.Docks {
		docks = append(docks, dockResponse{
			DockNumber:      d.DockNumber,
			Status:          string(d.Status),
			TemplateID:      d.TemplateID,
			ShipName:        d.ShipName,
			CompletionTime:  d.CompletionTime,
			RemainingMillis: d.RemainingMillis,
			UnlockLevel:     d.UnlockLevel,
		})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"docks": docks})
}

// --- fleets ---

type fleetSlotResponse struct {
	ShipID     int    `json:"ship_id"`
	TemplateID int    `json:"template_id"`
	Name       string `json:"name"`
	Level      int    `json:"level"`
	CurrentHP  int    `json:"current_hp"`
}

type fleetResponse struct {
	FleetNo int                  `json:"fleet_no"`
	Name    string               `json:"name"`
	Slots   []*fleetSlotResponse `json:"slots"`
}

func (s *Server) handleListFleets(w http.ResponseWriter, r *http.Request) {
	playerID, ok := mustPlayerID(w, r)
	if !ok {
		return
	}
	res, err := s.mediator.Send(r.Context(), &fleetqueries.ListFleetsQuery{PlayerID: playerID})
	if err != nil {
		writeError(w, r, err)
		return
	}
	result := res.(*fleetqueries.ListFleetsResult)

	fleets := make([]fleetResponse, 0, len(result.Fleets))
	for _, f := range result.Fleets {
		slots := make([]*fleetSlotResponse, len(f.Slots))
		for i, slot := range f.Slots {
			if slot == nil {
				continue
			}
			slots[i] = &fleetSlotResponse{
				ShipID:     slot.ShipID,
				TemplateID: slot.TemplateID,
				Name:       slot.Name,
				Level:      slot.Level,
				CurrentHP:  slot.CurrentHP,
			}
		}
		fleets = append(fleets, fleetResponse{FleetNo: f.FleetNo, Name: f.Name, Slots: slots})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"fleets": fleets})
}

type updateFleetRequest struct {
	ShipIDs []*int `json:"ship_ids" validate:"max=6"`
}

func (s *Server) handleUpdateFleet(w http.ResponseWriter, r *http.Request) {
	playerID, ok := mustPlayerID(w, r)
	if !ok {
		return
	}
	fleetNo, err := strconv.Atoi(r.PathValue("fleetNo"))
	if err != nil {
		writeError(w, r, shared.NewValidationError("fleetNo", "fleet number must be numeric"))
		return
	}
	var req updateFleetRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	var shipIDs [fleet.SlotCount]*int
	copy(shipIDs[:], req.ShipIDs)

	res, err := s.mediator.Send(r.Context(), &fleetcommands.UpdateFleetCommand{
		PlayerID: playerID,
		FleetNo:  fleetNo,
		ShipIDs:  shipIDs,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	result := res.(*fleetcommands.UpdateFleetResult)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"fleet_no": result.Fleet.FleetNo,
		"name":     result.Fleet.Name,
		"ship_ids": result.Fleet.ShipIDs,
	})
}

// --- ships ---

type equippedItemResponse struct {
	EquipmentID int    `json:"equipment_id"`
	MasterID    int    `json:"master_id"`
	Name        string `json:"name"`
}

type shipDetailResponse struct {
	ShipID     int                    `json:"ship_id"`
	TemplateID int                    `json:"template_id"`
	Name       string                 `json:"name"`
	ShipType   string                 `json:"ship_type"`
	Level      int                    `json:"level"`
	Exp        int                    `json:"exp"`
	Fuel       int                    `json:"fuel"`
	FuelMax    int                    `json:"fuel_max"`
	Ammo       int                    `json:"ammo"`
	AmmoMax    int                    `json:"ammo_max"`
	Stats      shipStatsResponse      `json:"stats"`
	Equipped   []equippedItemResponse `json:"equipped"`
}

type shipStatsResponse struct {
	HP        int `json:"hp"`
	CurrentHP int `json:"current_hp"`
	Firepower int `json:"firepower"`
	Torpedo   int `json:"torpedo"`
	AA        int `json:"aa"`
	Armor     int `json:"armor"`
}

func (s *Server) handleGetShip(w http.ResponseWriter, r *http.Request) {
	playerID, ok := mustPlayerID(w, r)
	if !ok {
		return
	}
	shipID, err := strconv.Atoi(r.PathValue("shipId"))
	if err != nil {
		writeError(w, r, shared.NewValidationError("shipId", "ship id must be numeric"))
		return
	}

	res, err := s.mediator.Send(r.Context(), &shipqueries.GetShipQuery{
		PlayerID: playerID,
		ShipID:   shipID,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	result := res.(*shipqueries.GetShipResult)

	equipped := make([]equippedItemResponse, 0, len(result.Equipped))
	for _, item := range result.Equipped {
		equipped = append(equipped, equippedItemResponse{
			EquipmentID: item.Instance.ID,
			MasterID:    item.Master.ID,
			Name:        item.Master.Name,
		})
	}
	writeJSON(w, http.StatusOK, shipDetailResponse{
		ShipID:     result.Instance.ID,
		TemplateID: result.Master.ID,
		Name:       result.Master.Name,
		ShipType:   result.Master.ShipType,
		Level:      result.Instance.Level,
		Exp:        result.Instance.Exp,
		Fuel:       result.Instance.Fuel,
		FuelMax:    result.Master.FuelMax,
		Ammo:       result.Instance.Ammo,
		AmmoMax:    result.Master.AmmoMax,
		Stats: shipStatsResponse{
			HP:        result.FinalStats.HP,
			CurrentHP: result.FinalStats.CurrentHP,
			Firepower: result.FinalStats.Firepower,
			Torpedo:   result.FinalStats.Torpedo,
			AA:        result.FinalStats.AA,
			Armor:     result.FinalStats.Armor,
		},
		Equipped: equipped,
	})
}

// --- catalog ---

type templateResponse struct {
	TemplateID       int    `json:"template_id"`
	Name             string `json:"name"`
	ShipType         string `json:"ship_type"`
	HPBase           int    `json:"hp_base"`
	HPMax            int    `json:"hp_max"`
	FirepowerBase    int    `json:"firepower_base"`
	FirepowerMax     int    `json:"firepower_max"`
	TorpedoBase      int    `json:"torpedo_base"`
	TorpedoMax       int    `json:"torpedo_max"`
	AABase           int    `json:"aa_base"`
	AAMax            int    `json:"aa_max"`
	ArmorBase        int    `json:"armor_base"`
	ArmorMax         int    `json:"armor_max"`
	FuelMax          int    `json:"fuel_max"`
	AmmoMax          int    `json:"ammo_max"`
	BuildTimeMinutes int    `json:"build_time_minutes"`
}

func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	res, err := s.mediator.Send(r.Context(), &catalogqueries.ListTemplatesQuery{})
	if err != nil {
		writeError(w, r, err)
		return
	}
	result := res.(*catalogqueries.ListTemplatesResult)

	templates := make([]templateResponse, 0, len(result.Templates))
	for _, t := range result.Templates {
		templates = append(templates, templateResponse{
			TemplateID:       t.ID,
			Name:             t.Name,
			ShipType:         t.ShipType,
			HPBase:           t.HPBase,
			HPMax:            t.HPMax,
			FirepowerBase:    t.FirepowerBase,
			FirepowerMax:     t.FirepowerMax,
			TorpedoBase:      t.TorpedoBase,
			TorpedoMax:       t.TorpedoMax,
			AABase:           t.AABase,
			AAMax:            t.AAMax,
			ArmorBase:        t.ArmorBase,
			ArmorMax:         t.ArmorMax,
			FuelMax:          t.FuelMax,
			AmmoMax:          t.AmmoMax,
			BuildTimeMinutes: t.BuildTimeMinutes,
		})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"ships": templates})
}

// --- player ---

type playerResponse struct {
	PlayerID       int    `json:"player_id"`
	Nickname       string `json:"nickname"`
	CommanderLevel int    `json:"commander_level"`
	Fuel           int    `json:"fuel"`
	Ammo           int    `json:"ammo"`
	Steel          int    `json:"steel"`
	Bauxite        int    `json:"bauxite"`
	InstantBuild   int    `json:"instant_build"`
}

func (s *Server) handleGetPlayer(w http.ResponseWriter, r *http.Request) {
	playerID, ok := mustPlayerID(w, r)
	if !ok {
		return
	}
	res, err := s.mediator.Send(r.Context(), &playerqueries.GetPlayerQuery{PlayerID: playerID})
	if err != nil {
		writeError(w, r, err)
		return
	}
	result := res.(*playerqueries.GetPlayerResult)
	writeJSON(w, http.StatusOK, playerResponse{
		PlayerID:       result.PlayerID,
		Nickname:       result.Nickname,
		CommanderLevel: result.CommanderLevel,
		Fuel:           result.Resources.Fuel,
		Ammo:           result.Resources.Ammo,
		Steel:          result.Resources.Steel,
		Bauxite:        result.Resources.Bauxite,
		InstantBuild:   result.InstantBuild,
	})
}

// --- sortie ---

type startSortieRequest struct {
	FleetNo int `json:"fleet_no" validate:"required,min=1,max=4"`
	MapID   int `json:"map_id" validate:"required,min=1"`
}

func (s *Server) handleStartSortie(w http.ResponseWriter, r *http.Request) {
	playerID, ok := mustPlayerID(w, r)
	if !ok {
		return
	}
	var req startSortieRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	res, err := s.mediator.Send(r.Context(), &sortiecommands.StartSortieCommand{
		PlayerID: playerID,
		FleetNo:  req.FleetNo,
		MapID:    req.MapID,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	result := res.(*sortiecommands.StartSortieResult)
	writeJSON(w, http.StatusOK, map[string]string{"sortie_id": result.SortieID})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
