package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/astralfront/supremacy/internal/api/response"
	"github.com/astralfront/supremacy/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case TokenResult:
		o.printTokenResult(v)
	case CreateGameResult:
		o.printCreateGameResult(v)
	case GameViewResult:
		o.printGameViewResult(v)
	case GameListResult:
		o.printGameListResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// TokenResult wraps an issued token pair
type TokenResult struct {
	Pair response.TokenPair `json:"tokens"`
}

// CreateGameResult wraps a created game id
type CreateGameResult struct {
	GameID string `json:"gameId"`
}

// GameViewResult wraps a player's view of a game
type GameViewResult struct {
	GameID string          `json:"gameId"`
	View   *model.GameView `json:"view"`
}

// GameListResult wraps the game list
type GameListResult struct {
	List response.GameList `json:"games"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printTokenResult(r TokenResult) {
	fmt.Printf("Client: %s\n", r.Pair.ClientID)
	fmt.Printf("Access Token: %s\n", r.Pair.AccessToken)
	fmt.Printf("  expires %s\n", formatExpiry(r.Pair.AccessTokenExpiry))
	fmt.Printf("Refresh Token: %s\n", r.Pair.RefreshToken)
	fmt.Printf("  expires %s\n", formatExpiry(r.Pair.RefreshTokenExpiry))
}

func (o *Output) printCreateGameResult(r CreateGameResult) {
	fmt.Printf("Game created: %s\n", r.GameID)
}

func (o *Output) printGameViewResult(r GameViewResult) {
	v := r.View

	fmt.Printf("Game: %s\n", r.GameID)
	fmt.Printf("Side: %s\n", v.Side)
	fmt.Printf("Resources: %d refined, %d mines, %d refineries\n",
		v.Faction.Resources.Refined, v.Faction.Resources.Mines, v.Faction.Resources.Refineries)

	owned, discovered, fogged := 0, 0, 0
	for _, p := range v.Planets {
		switch {
		case p.State == nil:
			fogged++
		case p.State.Owner == v.Side:
			owned++
		default:
			discovered++
		}
	}
	fmt.Printf("Planets: %d owned, %d discovered, %d unexplored\n", owned, discovered, fogged)

	// Sector listing, inner rim first
	ids := make([]model.SectorID, 0, len(v.Sectors))
	for id := range v.Sectors {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	fmt.Printf("Sectors (%d):\n", len(ids))
	for _, id := range ids {
		sector := v.Sectors[id]
		rim := "outer rim"
		if sector.InnerRim {
			rim = "inner rim"
		}
		fmt.Printf("  - %s (%s)\n", sector.Name, rim)
	}

	if len(v.Notifications) > 0 {
		fmt.Println("Notifications:")
		for _, n := range v.Notifications {
			fmt.Printf("  - %s\n", n)
		}
	}
}

func (o *Output) printGameListResult(r GameListResult) {
	if len(r.List.Games) == 0 {
		fmt.Println("No games in progress")
		return
	}

	fmt.Printf("Games (%d):\n", len(r.List.Games))
	for _, g := range r.List.Games {
		fmt.Printf("  - %s playing %s, last played %s\n",
			g.GameID, g.Side, formatExpiry(g.LastPlayed))
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}

func formatExpiry(millis int64) string {
	return time.UnixMilli(millis).Local().Format(time.RFC3339)
}
