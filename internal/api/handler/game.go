package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/astralfront/supremacy/internal/api/middleware"
	"github.com/astralfront/supremacy/internal/api/request"
	"github.com/astralfront/supremacy/internal/api/response"
	"github.com/astralfront/supremacy/internal/model"
	"github.com/astralfront/supremacy/internal/services/galaxy"
	"github.com/astralfront/supremacy/internal/services/identity"
	"github.com/astralfront/supremacy/internal/services/matchmaker"
)

// GameHandler handles game creation, projection and listing
type GameHandler struct {
	matchmakerService *matchmaker.Service
	galaxyService     *galaxy.Service
	identityService   *identity.Service
}

// NewGameHandler creates a new game handler
func NewGameHandler(
	matchmakerService *matchmaker.Service,
	galaxyService *galaxy.Service,
	identityService *identity.Service,
) *GameHandler {
	return &GameHandler{
		matchmakerService: matchmakerService,
		galaxyService:     galaxyService,
		identityService:   identityService,
	}
}

// Create handles POST /api/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	ident := middleware.MustGetIdentity(r.Context())
	settings := model.GameSettings{
		Faction:      model.Faction(req.Faction),
		Difficulty:   req.Difficulty,
		GalaxySize:   model.GalaxySize(req.GalaxySize),
		WinCondition: req.WinCondition,
		Mode:         req.Mode,
	}

	gameID, err := h.matchmakerService.CreateGame(r.Context(), *ident, settings)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.CreateGameResponse{
		GameID: string(gameID),
	})
}

// Get handles GET /api/games/{gameId}, returning the requesting
// player's fogged view of the galaxy
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	gameID := model.GameID(mux.Vars(r)["gameId"])
	if gameID == "" {
		WriteError(w, NewInvalidRequestError("gameId is required"))
		return
	}

	ident := middleware.MustGetIdentity(r.Context())
	view, err := h.galaxyService.View(r.Context(), gameID, ident.UserID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, view)
}

// List handles GET /api/games, returning the user's in-progress games
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	ident := middleware.MustGetIdentity(r.Context())

	games, err := h.identityService.Games(r.Context(), ident.Username)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameListFromModel(games))
}
