package handlers

import (
	"net/http"

	"frotalog/internal/http/middleware"
	"frotalog/internal/services"
	"frotalog/internal/socket"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var trackingHub = socket.NewHub()

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// CORS is enforced by the HTTP middleware; the upgrade itself accepts
	// any origin that got this far.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type positionsRequest struct {
	Points []services.IncomingPoint `json:"points"`
}

// POST /api/tracking/positions
func RecordTrackingPositions(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req positionsRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.TrackingService{Hub: trackingHub, RequestID: middleware.GetRequestID(c)}
	points, err := svc.RecordPositions(userID, req.Points)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"saved": len(points), "points": points})
}

// GET /api/tracking/latest
func GetLatestPositions(c *gin.Context) {
	userID := middleware.GetUserID(c)

	svc := services.TrackingService{}
	points, err := svc.Latest(userID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "falha ao carregar posições", err)
		return
	}
	c.JSON(http.StatusOK, points)
}

// GET /api/tracking/live (websocket)
func TrackingLiveFeed(c *gin.Context) {
	userID := middleware.GetUserID(c)

	conn, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "falha no upgrade do websocket", err)
		return
	}

	trackingHub.Register(userID, conn)
	defer func() {
		trackingHub.Unregister(userID, conn)
		_ = conn.Close()
	}()

	// the feed is one-way; reading only detects disconnects
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
