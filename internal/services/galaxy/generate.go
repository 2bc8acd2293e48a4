package galaxy

import (
	"fmt"
	"strings"

	"github.com/astralfront/supremacy/internal/dependencies/random"
	"github.com/astralfront/supremacy/internal/model"
)

// Galaxy map dimensions and generation ranges
const (
	mapExtent        = 1000
	maxEnergySpots   = 5
	maxNaturalRes    = 5
	maxGarrison      = 8
	planetPictures   = 20
	startingRefined  = 1000
	startingMines    = 1
	startingRefinery = 1
)

// nameSyllables feed the procedural name generator
var nameSyllables = []string{
	"al", "bes", "cor", "dan", "end", "fel", "gar", "hon",
	"ith", "jun", "kes", "lor", "mon", "nar", "ord", "pax",
	"quel", "rur", "sul", "tor", "umb", "vex", "wor", "yav", "zef",
}

// generate builds the canonical state of a brand new game. Inner-rim
// sectors (the first third) start discovered for both sides; everything
// else is hidden until scouted.
func generate(gameID model.GameID, settings model.GameSettings, rnd random.Random) *model.GameState {
	sectorCount := settings.GalaxySize.SectorCount()

	state := &model.GameState{
		ID:            gameID,
		Turn:          0,
		Planets:       make(map[model.PlanetID]*model.PlanetState, sectorCount*model.PlanetsPerSector),
		Sectors:       make(map[model.SectorID]model.SectorMetadata, sectorCount),
		Factions:      make(map[model.Faction]*model.FactionState, 2),
		Notifications: []string{},
	}

	for i := 0; i < sectorCount; i++ {
		sector := model.SectorMetadata{
			ID:   model.SectorID(fmt.Sprintf("sector-%02d", i+1)),
			Name: generateName(rnd) + " Sector",
			Location: model.Point{
				X: rnd.Intn(mapExtent),
				Y: rnd.Intn(mapExtent),
			},
			InnerRim: i < sectorCount/3,
		}
		state.Sectors[sector.ID] = sector

		for j := 0; j < model.PlanetsPerSector; j++ {
			planet := generatePlanet(sector, i+1, j+1, rnd)
			state.Planets[planet.Metadata.ID] = planet
		}
	}

	for _, faction := range model.PlayableFactions() {
		state.Factions[faction] = buildFactionState(state, faction)
	}

	return state
}

func generatePlanet(sector model.SectorMetadata, sectorNum, planetNum int, rnd random.Random) *model.PlanetState {
	return &model.PlanetState{
		Metadata: model.PlanetMetadata{
			ID:       model.PlanetID(fmt.Sprintf("planet-%02d-%02d", sectorNum, planetNum)),
			Name:     generateName(rnd),
			SectorID: sector.ID,
			Picture:  fmt.Sprintf("planet-%02d.png", rnd.Intn(planetPictures)),
			Size:     1 + rnd.Intn(5),
			Position: model.Point{
				X: rnd.Intn(mapExtent),
				Y: rnd.Intn(mapExtent),
			},
		},
		Loyalty:             rnd.Intn(101),
		Owner:               rollOwner(rnd),
		EnergySpots:         rnd.Intn(maxEnergySpots + 1),
		NaturalResources:    rnd.Intn(maxNaturalRes + 1),
		GarrisonRequirement: 1 + rnd.Intn(maxGarrison),
		InUprising:          false,
		General:             "",
		Commander:           "",
		Discovered:          sector.InnerRim,
	}
}

// rollOwner gives each side roughly a third of the galaxy and leaves
// the rest neutral
func rollOwner(rnd random.Random) model.Faction {
	switch rnd.Intn(3) {
	case 0:
		return model.FactionEmpire
	case 1:
		return model.FactionRebellion
	default:
		return model.FactionNeutral
	}
}

// buildFactionState aggregates a faction's position by filtering planets
// on owner. The controlled list is exactly the owned planet set.
func buildFactionState(state *model.GameState, faction model.Faction) *model.FactionState {
	controlled := []model.PlanetID{}
	for id, planet := range state.Planets {
		if planet.Owner == faction {
			controlled = append(controlled, id)
		}
	}

	return &model.FactionState{
		Resources: model.FactionResources{
			Mines:      startingMines,
			Refineries: startingRefinery,
			Refined:    startingRefined,
		},
		Objectives:          objectivesFor(faction),
		ControlledPlanetIDs: controlled,
	}
}

func objectivesFor(faction model.Faction) []string {
	if faction == model.FactionEmpire {
		return []string{"Locate and destroy the Rebellion headquarters"}
	}
	return []string{"Rally the galaxy and overthrow the Empire"}
}

func generateName(rnd random.Random) string {
	var b strings.Builder
	count := 2 + rnd.Intn(2)
	for i := 0; i < count; i++ {
		b.WriteString(nameSyllables[rnd.Intn(len(nameSyllables))])
	}
	name := b.String()
	return strings.ToUpper(name[:1]) + name[1:]
}
