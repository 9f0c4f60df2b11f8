// Package ws is the websocket transport: handshake authentication,
// frame decoding, and per-connection pumps. All collaborative state
// lives behind the service facade.
package ws

import (
	"context"
	"cooksync/contract"
	"cooksync/observability"
	"cooksync/services"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The mobile clients connect from app webviews without an Origin
	// the server could meaningfully pin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type Server struct {
	log        *slog.Logger
	identities contract.IIdentityProvider
	service    services.ICollabService
	monitor    *observability.Monitor
	bufferSize int
}

func NewServer(log *slog.Logger, identities contract.IIdentityProvider,
	service services.ICollabService, monitor *observability.Monitor,
	bufferSize int) *Server {
	return &Server{
		log:        log,
		identities: identities,
		service:    service,
		monitor:    monitor,
		bufferSize: bufferSize,
	}
}

// Router wires the HTTP surface: the websocket endpoint plus liveness
// and stats.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/ws", s.handleWS)
	router.GET("/healthz", s.handleHealth)
	router.GET("/stats", s.handleStats)
	return router
}

// handleWS authenticates the handshake and hands the connection to the
// pumps. Authentication runs exactly once, before registration: a bad
// token aborts here with no partial state created.
func (s *Server) handleWS(c *gin.Context) {
	token := bearerToken(c)

	identity, err := s.identities.Authenticate(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.log.Warn("Failed to upgrade connection", "error", err)
		return
	}

	sink := NewConnSink(s.bufferSize)
	s.service.Connect(identity, sink)

	// The request context dies when this handler returns; the pumps live
	// for the whole connection, so they get their own context.
	client := NewClient(s.log, conn, identity, sink, s.service)
	ctx := context.Background()
	go client.WritePump(ctx)
	go client.ReadPump(ctx)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"connections": s.service.ConnectionCount(),
	})
}

func (s *Server) handleStats(c *gin.Context) {
	c.JSON(http.StatusOK, s.monitor.Snapshot())
}

// bearerToken accepts the token either as an Authorization header or as
// a query parameter; browser websocket clients cannot set headers.
func bearerToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return c.Query("token")
}
