package model

// PlanetStateView is the fog-of-war filtered state block of a planet.
// The privileged pointer fields are populated only for planets owned by
// the viewing faction.
type PlanetStateView struct {
	Owner            Faction `json:"owner"`
	EnergySpots      int     `json:"energySpots"`
	NaturalResources int     `json:"naturalResources"`
	Discovered       bool    `json:"isDiscovered"`

	Loyalty             *int    `json:"loyalty,omitempty"`
	GarrisonRequirement *int    `json:"garrisonRequirement,omitempty"`
	InUprising          *bool   `json:"inUprising,omitempty"`
	General             *string `json:"general,omitempty"`
	Commander           *string `json:"commander,omitempty"`
}

// PlanetView is one planet as a faction sees it. Metadata is always
// present; State is present iff the planet is discovered or owned by
// the viewing faction.
type PlanetView struct {
	Metadata PlanetMetadata   `json:"metadata"`
	State    *PlanetStateView `json:"state,omitempty"`
}

// Visible reports whether the planet's state block is exposed
func (p *PlanetView) Visible() bool {
	return p.State != nil
}

// FactionView exposes only a faction's public resource counters
type FactionView struct {
	Resources FactionResources `json:"resources"`
}

// GameView is the faction-filtered projection of a game, precomputed
// per faction and served verbatim to that faction's players
type GameView struct {
	Planets       map[PlanetID]*PlanetView    `json:"planets"`
	Sectors       map[SectorID]SectorMetadata `json:"sectors"`
	Faction       FactionView                 `json:"faction"`
	Side          Faction                     `json:"side"`
	Notifications []string                    `json:"notifications"`
}
