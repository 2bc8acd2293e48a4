package model

// GameID uniquely identifies a game
type GameID string

// PlanetID uniquely identifies a planet within a game
type PlanetID string

// SectorID uniquely identifies a sector within a game
type SectorID string

// Faction is one side of a game; it is also the partition key for
// fog-of-war view projection
type Faction string

const (
	FactionEmpire    Faction = "Empire"
	FactionRebellion Faction = "Rebellion"
	FactionNeutral   Faction = "Neutral"
)

// Playable reports whether the faction can be chosen by a player
func (f Faction) Playable() bool {
	return f == FactionEmpire || f == FactionRebellion
}

// Opponent returns the opposing playable faction
func (f Faction) Opponent() Faction {
	if f == FactionEmpire {
		return FactionRebellion
	}
	return FactionEmpire
}

// PlayableFactions lists the two sides of every game
func PlayableFactions() []Faction {
	return []Faction{FactionEmpire, FactionRebellion}
}

// GalaxySize determines how many sectors a new game is generated with
type GalaxySize string

const (
	GalaxySmall  GalaxySize = "Small"
	GalaxyMedium GalaxySize = "Medium"
	GalaxyLarge  GalaxySize = "Large"
)

// PlanetsPerSector is fixed regardless of galaxy size
const PlanetsPerSector = 10

// SectorCount returns the number of sectors for the size, or 0 if the
// size is unknown
func (g GalaxySize) SectorCount() int {
	switch g {
	case GalaxySmall:
		return 10
	case GalaxyMedium:
		return 15
	case GalaxyLarge:
		return 20
	default:
		return 0
	}
}

// GameSettings are the creator's choices for a new game
type GameSettings struct {
	Faction      Faction    `json:"faction"`
	Difficulty   string     `json:"difficulty"`
	GalaxySize   GalaxySize `json:"galaxySize"`
	WinCondition string     `json:"winCondition"`
	Mode         string     `json:"mode"`
}

// Point is a 2-D galaxy map location
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// SectorMetadata describes a sector; it never changes after generation
type SectorMetadata struct {
	ID       SectorID `json:"id"`
	Name     string   `json:"name"`
	Location Point    `json:"location"`
	InnerRim bool     `json:"innerRim"`
}

// PlanetMetadata is the immutable part of a planet
type PlanetMetadata struct {
	ID       PlanetID `json:"id"`
	Name     string   `json:"name"`
	SectorID SectorID `json:"sectorId"`
	Picture  string   `json:"picture"`
	Size     int      `json:"size"`
	Position Point    `json:"position"`
}

// PlanetState is the canonical, unfiltered state of a planet
type PlanetState struct {
	Metadata            PlanetMetadata `json:"metadata"`
	Loyalty             int            `json:"loyalty"`
	Owner               Faction        `json:"owner"`
	EnergySpots         int            `json:"energySpots"`
	NaturalResources    int            `json:"naturalResources"`
	GarrisonRequirement int            `json:"garrisonRequirement"`
	InUprising          bool           `json:"inUprising"`
	General             string         `json:"general"`
	Commander           string         `json:"commander"`
	Discovered          bool           `json:"isDiscovered"`
}

// FactionResources is a faction's economy counters
type FactionResources struct {
	Mines      int `json:"mines"`
	Refineries int `json:"refineries"`
	Refined    int `json:"refined"`
}

// FactionState aggregates one faction's position in the game.
// ControlledPlanetIDs is always exactly the set of planets whose owner
// equals the faction.
type FactionState struct {
	Resources           FactionResources `json:"resources"`
	Objectives          []string         `json:"objectives"`
	ControlledPlanetIDs []PlanetID       `json:"controlledPlanetIds"`
}

// GameState is the one authoritative copy of a game's data. It is never
// sent to clients; clients only ever see faction views derived from it.
type GameState struct {
	ID            GameID                       `json:"id"`
	Turn          int                          `json:"turn"`
	Planets       map[PlanetID]*PlanetState    `json:"planets"`
	Sectors       map[SectorID]SectorMetadata  `json:"sectors"`
	Factions      map[Faction]*FactionState    `json:"factions"`
	Notifications []string                     `json:"notifications"`
}
