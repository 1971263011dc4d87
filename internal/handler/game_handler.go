package handler

import (
	"fmt"
	"net/http"

	"jubbisoft/internal/domain"
	"jubbisoft/internal/middleware"
	"jubbisoft/internal/service"
	"jubbisoft/pkg/cloudinary"

	"github.com/gin-gonic/gin"
)

type GameHandler struct {
	games *service.GameService
	cloud cloudinary.Client
}

func NewGameHandler(games *service.GameService, cloud cloudinary.Client) *GameHandler {
	return &GameHandler{games: games, cloud: cloud}
}

// ListAvailable returns the storefront: available games, newest first.
func (h *GameHandler) ListAvailable(c *gin.Context) {
	games, err := h.games.GetAllAvailable()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"games": games})
}

// ListAll returns every game, including unavailable ones (admin).
func (h *GameHandler) ListAll(c *gin.Context) {
	games, err := h.games.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"games": games})
}

func (h *GameHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	game, err := h.games.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, game)
}

func (h *GameHandler) Create(c *gin.Context) {
	var in service.CreateGameInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	game, err := h.games.Create(in, middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, game)
}

func (h *GameHandler) Edit(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if !h.ownsOrAdmin(c, id) {
		return
	}
	var in service.EditGameInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	game, err := h.games.Edit(id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, game)
}

func (h *GameHandler) ToggleAvailability(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if !h.ownsOrAdmin(c, id) {
		return
	}
	game, err := h.games.ToggleAvailability(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, game)
}

func (h *GameHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if !h.ownsOrAdmin(c, id) {
		return
	}
	if err := h.games.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// Purchase buys a game for the authenticated user and returns the
// resulting transaction, approved or failed.
func (h *GameHandler) Purchase(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	txn, err := h.games.Purchase(id, middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, txn)
}

// MyLibrary returns the games the authenticated user owns.
func (h *GameHandler) MyLibrary(c *gin.Context) {
	games, err := h.games.GetPurchasedBy(middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"games": games})
}

// MyPublished returns the games the authenticated user published.
func (h *GameHandler) MyPublished(c *gin.Context) {
	games, err := h.games.GetAllByPublisherID(middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"games": games})
}

// UploadCover uploads a cover image to Cloudinary and returns its URL; the
// client passes it back on game create/edit.
func (h *GameHandler) UploadCover(c *gin.Context) {
	if h.cloud == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "uploads are not configured"})
		return
	}
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file"})
		return
	}
	defer file.Close()
	publicID := fmt.Sprintf("cover_%d_%s", middleware.GetUserID(c), header.Filename)
	url, thumb, err := h.cloud.UploadImage(c.Request.Context(), file, "game-covers", publicID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "upload failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url, "thumbnail_url": thumb})
}

// ownsOrAdmin blocks catalog mutations by anyone other than the game's
// publisher or an admin.
func (h *GameHandler) ownsOrAdmin(c *gin.Context, gameID uint) bool {
	role, _ := c.Get("role")
	if role == domain.RoleAdmin {
		return true
	}
	game, err := h.games.GetByID(gameID)
	if err != nil {
		respondError(c, err)
		return false
	}
	if game.PublisherID != middleware.GetUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return false
	}
	return true
}
