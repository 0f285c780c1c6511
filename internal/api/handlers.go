package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lukeharte/wizard-arena/internal/constants"
	"github.com/lukeharte/wizard-arena/internal/roster"
	"github.com/lukeharte/wizard-arena/internal/storage"
	"github.com/lukeharte/wizard-arena/internal/wizardgen"
)

// maxDescriptionLen bounds the free-text wizard description accepted from
// clients before it is sent to the generator.
const maxDescriptionLen = 300

// Health reports process liveness.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Roster lists the built-in enemy wizards available as opponents.
func Roster(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"enemies": roster.Enemies()})
}

type PlayerHandler struct {
	repo storage.Repository
}

func NewPlayerHandler(repo storage.Repository) *PlayerHandler {
	return &PlayerHandler{repo: repo}
}

// Leaderboard returns the top players by wins.
func (h *PlayerHandler) Leaderboard(c *gin.Context) {
	players, err := h.repo.GetTopPlayers(20)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"players": players})
}

// GetPlayerStats returns the signed-in player's profile and lifetime stats.
func (h *PlayerHandler) GetPlayerStats(c *gin.Context) {
	u, err := h.repo.GetStatsByEmail(c.GetString("userEmail"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: "player not found"})
		return
	}
	c.JSON(http.StatusOK, u)
}

type UpdatePlayerRequest struct {
	PlayerName string `json:"player_name"`
}

// UpdatePlayerStats lets the player change their display name.
func (h *PlayerHandler) UpdatePlayerStats(c *gin.Context) {
	var req UpdatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	name := strings.TrimSpace(req.PlayerName)
	if name == "" || len(name) > 64 {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	u, err := h.repo.GetStatsByEmail(c.GetString("userEmail"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: "player not found"})
		return
	}
	u.PlayerName = name
	if err := h.repo.SaveUser(u); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: err.Error()})
		return
	}
	c.JSON(http.StatusOK, u)
}

type WizardHandler struct {
	repo storage.Repository
}

func NewWizardHandler(repo storage.Repository) *WizardHandler {
	return &WizardHandler{repo: repo}
}

type GenerateWizardRequest struct {
	Description string `json:"description"`
}

// GenerateWizard builds (or loads from cache) the wizard a description would
// produce, without starting a match. Lets players preview before committing.
func (h *WizardHandler) GenerateWizard(c *gin.Context) {
	var req GenerateWizardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if strings.TrimSpace(req.Description) == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrDescriptionRequired})
		return
	}
	if len(req.Description) > maxDescriptionLen {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrDescriptionExceeds})
		return
	}
	w, source, err := wizardgen.GetOrCreateWizard(h.repo, req.Description)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{constants.JSONKeyError: constants.ErrGenerationFailed, constants.JSONKeyDetails: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"wizard": w, "source": source})
}
