package galaxy

import "github.com/astralfront/supremacy/internal/model"

// Project derives one faction's fog-of-war view from canonical state.
//
// The projection rule: a planet's state block is present iff the planet
// is discovered or owned by the viewing faction; privileged fields
// (loyalty, garrison, commanders, uprising) are present only for owned
// planets. Canonical state itself never leaves the game actor, so this
// must be re-applied after every state mutation.
func Project(state *model.GameState, side model.Faction) *model.GameView {
	view := &model.GameView{
		Planets:       make(map[model.PlanetID]*model.PlanetView, len(state.Planets)),
		Sectors:       make(map[model.SectorID]model.SectorMetadata, len(state.Sectors)),
		Side:          side,
		Notifications: append([]string{}, state.Notifications...),
	}

	for id, sector := range state.Sectors {
		view.Sectors[id] = sector
	}

	for id, planet := range state.Planets {
		view.Planets[id] = projectPlanet(planet, side)
	}

	if faction := state.Factions[side]; faction != nil {
		view.Faction = model.FactionView{Resources: faction.Resources}
	}

	return view
}

func projectPlanet(planet *model.PlanetState, side model.Faction) *model.PlanetView {
	pv := &model.PlanetView{Metadata: planet.Metadata}

	owned := planet.Owner == side
	if !planet.Discovered && !owned {
		return pv
	}

	pv.State = &model.PlanetStateView{
		Owner:            planet.Owner,
		EnergySpots:      planet.EnergySpots,
		NaturalResources: planet.NaturalResources,
		Discovered:       planet.Discovered,
	}

	if owned {
		loyalty := planet.Loyalty
		garrison := planet.GarrisonRequirement
		uprising := planet.InUprising
		general := planet.General
		commander := planet.Commander

		pv.State.Loyalty = &loyalty
		pv.State.GarrisonRequirement = &garrison
		pv.State.InUprising = &uprising
		pv.State.General = &general
		pv.State.Commander = &commander
	}

	return pv
}
