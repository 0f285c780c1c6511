package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lukeharte/wizard-arena/internal/chooser"
	"github.com/lukeharte/wizard-arena/internal/constants"
	"github.com/lukeharte/wizard-arena/internal/engine"
	"github.com/lukeharte/wizard-arena/internal/game"
	"github.com/lukeharte/wizard-arena/internal/service"
	"github.com/lukeharte/wizard-arena/internal/storage"
)

type MatchHandler struct {
	repo          storage.Repository
	enemyChooser  chooser.Chooser
	actionTimeout time.Duration
}

func NewMatchHandler(repo storage.Repository, enemyChooser chooser.Chooser, actionTimeout time.Duration) *MatchHandler {
	return &MatchHandler{repo: repo, enemyChooser: enemyChooser, actionTimeout: actionTimeout}
}

type CreateMatchRequest struct {
	Description string `json:"description"`
	EnemyName   string `json:"enemy_name"`
}

// actionView is one selectable move, numbered for SubmitAction.
type actionView struct {
	Index      int     `json:"index"`
	Type       string  `json:"type"`
	Name       string  `json:"name"`
	Spell      string  `json:"spell_type,omitempty"`
	Target     string  `json:"target"`
	Element    string  `json:"element"`
	Accuracy   float64 `json:"accuracy"`
	ManaCost   int     `json:"mana_cost"`
	MinValue   float64 `json:"min_value"`
	MaxValue   float64 `json:"max_value"`
	Affordable bool    `json:"affordable"`
}

func actionCatalog(ps *engine.PlayerState) []actionView {
	actions := game.AvailableActions(ps.Wizard)
	out := make([]actionView, 0, len(actions))
	for i, a := range actions {
		p := a.Preview()
		out = append(out, actionView{
			Index:      i,
			Type:       string(p.Type),
			Name:       a.Name(),
			Spell:      string(p.Spell),
			Target:     string(p.Target),
			Element:    string(p.Element),
			Accuracy:   p.Accuracy,
			ManaCost:   p.ManaCost,
			MinValue:   p.MinValue,
			MaxValue:   p.MaxValue,
			Affordable: p.ManaCost <= ps.CurrentMana,
		})
	}
	return out
}

func matchView(m *storage.Match, gs *engine.GameState) gin.H {
	playerState := gs.Players[m.PlayerSeat]
	enemyState := gs.Players[1-m.PlayerSeat]
	return gin.H{
		"match":   m,
		"player":  playerState,
		"enemy":   enemyState,
		"actions": actionCatalog(playerState),
	}
}

func (h *MatchHandler) CreateMatch(c *gin.Context) {
	var req CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if req.Description == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrDescriptionRequired})
		return
	}
	if len(req.Description) > maxDescriptionLen {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrDescriptionExceeds})
		return
	}

	email := c.GetString("userEmail")
	name := c.GetString("userName")

	var playerUUID string
	if u, err := h.repo.GetStatsByEmail(email); err == nil {
		playerUUID = u.PlayerUUID
	}

	m, gs, err := service.CreateMatch(h.repo, service.CreateMatchRequest{
		PlayerEmail: email,
		PlayerUUID:  playerUUID,
		PlayerName:  name,
		Description: req.Description,
		EnemyName:   req.EnemyName,
	}, h.actionTimeout)
	if err != nil {
		if errors.Is(err, service.ErrEnemyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedCreateMatch, constants.JSONKeyDetails: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, matchView(m, gs))
}

func (h *MatchHandler) GetMatch(c *gin.Context) {
	code, ok := normalizeJoinCode(c.Param("matchCode"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidMatchCode})
		return
	}
	m, err := h.repo.FindMatchByJoinCode(code)
	if err != nil || m == nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrMatchNotFound})
		return
	}
	if m.PlayerEmail != c.GetString("userEmail") {
		c.JSON(http.StatusForbidden, gin.H{constants.JSONKeyError: constants.ErrMatchNotFound})
		return
	}
	gs, err := service.LoadState(m)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: err.Error()})
		return
	}
	c.JSON(http.StatusOK, matchView(m, gs))
}

func (h *MatchHandler) ListActiveMatches(c *gin.Context) {
	matches, err := h.repo.GetActiveMatchesByEmail(c.GetString("userEmail"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"matches": matches})
}

type SubmitActionRequest struct {
	Action *int `json:"action" binding:"required"`
}

func (h *MatchHandler) SubmitAction(c *gin.Context) {
	code, ok := normalizeJoinCode(c.Param("matchCode"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidMatchCode})
		return
	}
	var req SubmitActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	m, gs, err := service.SubmitAction(h.repo, h.enemyChooser, code, c.GetString("userEmail"), *req.Action, h.actionTimeout)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, matchView(m, gs))
}

func (h *MatchHandler) Resign(c *gin.Context) {
	code, ok := normalizeJoinCode(c.Param("matchCode"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidMatchCode})
		return
	}
	m, err := service.Resign(h.repo, code, c.GetString("userEmail"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"match": m})
}

// respondServiceError maps service sentinels to HTTP statuses.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMatchNotFound), errors.Is(err, service.ErrNotYourMatch):
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrMatchNotFound})
	case errors.Is(err, service.ErrMatchNotInProgress):
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrMatchNotInProgress})
	case errors.Is(err, service.ErrInvalidAction), errors.Is(err, service.ErrActionNotAffordable):
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedStoreAction, constants.JSONKeyDetails: err.Error()})
	}
}
