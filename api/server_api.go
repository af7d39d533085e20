package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	mc "github.com/saeidalz13/battleship-sim/models/connection"
)

const (
	StageProd = "prod"
	StageDev  = "dev"
)

const (
	defaultPort       int           = 9191
	readHeaderTimeout time.Duration = time.Second * 5

	SpectatePath string = "/battleship/spectate"
)

var upgrader = websocket.Upgrader{
	// good average time since this is not a high-latency operation such as video streaming
	HandshakeTimeout: time.Second * 5,

	// spectators only receive small JSON messages
	ReadBufferSize:  1024,
	WriteBufferSize: 2048,
}

type Server struct {
	port           int
	stage          string
	logger         *zap.Logger
	SessionManager mc.SessionManager
}

type Option func(*Server) error

func NewServer(sessionManager mc.SessionManager, optFuncs ...Option) *Server {
	server := Server{
		SessionManager: sessionManager,
		stage:          StageDev,
	}
	for _, opt := range optFuncs {
		if err := opt(&server); err != nil {
			panic(err)
		}
	}
	if server.port == 0 {
		server.port = defaultPort
	}
	if server.logger == nil {
		server.logger = zap.NewNop()
	}

	return &server
}

func WithPort(port int) Option {
	return func(s *Server) error {
		if port < 1 || port > 65535 {
			return fmt.Errorf("invalid port: %d", port)
		}
		s.port = port
		return nil
	}
}

func WithStage(stage string) Option {
	return func(s *Server) error {
		if stage != StageProd && stage != StageDev {
			return fmt.Errorf("invalid type of development stage: %s", stage)
		}
		s.stage = stage
		return nil
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *Server) error {
		s.logger = logger
		return nil
	}
}

func (s *Server) checkOrigin(r *http.Request) bool {
	// spectators of a local game may connect from anywhere in dev
	if s.stage == StageDev {
		return true
	}
	origin := r.Header.Get("Origin")
	return origin == "" || origin == "http://"+r.Host || origin == "https://"+r.Host
}

// HandleSpectate upgrades the request and keeps the spectator registered
// until its connection closes.
func (s *Server) HandleSpectate(w http.ResponseWriter, r *http.Request) {
	u := upgrader
	u.CheckOrigin = s.checkOrigin

	// use Upgrade method to make a websocket connection
	conn, err := u.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("could not upgrade spectator connection", zap.Error(err))
		return
	}

	session := s.SessionManager.GenerateNewSession(conn)
	s.logger.Info("a new spectator connected",
		zap.String("session", session.Id()),
		zap.String("remote_addr", conn.RemoteAddr().String()),
	)

	session.DrainReads()
	s.SessionManager.TerminateSession(session.Id())
}

func (s *Server) Routes(mux *http.ServeMux) {
	mux.HandleFunc("GET "+SpectatePath, s.HandleSpectate)
}

func (s *Server) Addr() string {
	return fmt.Sprintf("0.0.0.0:%d", s.port)
}

// ListenAndServe blocks serving spectators. Run it on its own goroutine.
func (s *Server) ListenAndServe() error {
	mux := http.NewServeMux()
	s.Routes(mux)

	httpServer := &http.Server{
		Addr:              s.Addr(),
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	s.logger.Info("listening for spectators", zap.String("addr", httpServer.Addr), zap.String("path", SpectatePath))
	return httpServer.ListenAndServe()
}
