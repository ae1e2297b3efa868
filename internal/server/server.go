package server

import (
	"net/http"

	logger "github.com/chi-middleware/logrus-logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"lanchat/internal/handlers"
	"lanchat/internal/relay"
	"lanchat/internal/ws"
)

type Server struct {
	Addr  string
	Port  string
	Store handlers.MessageLister
	Hub   *ws.Hub
	Relay *relay.Relay
	Log   *logrus.Logger
}

func NewServer(addr, port string, store handlers.MessageLister, hub *ws.Hub, rl *relay.Relay, log *logrus.Logger) *Server {
	return &Server{
		Addr:  addr,
		Port:  port,
		Store: store,
		Hub:   hub,
		Relay: rl,
		Log:   log,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	// middlewares
	r.Use(logger.Logger("router", s.Log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET"},
	}))

	// Mount routes
	r.Get("/", (&handlers.HomeHandler{Store: s.Store, Log: s.Log}).ServeHTTP)
	r.Get("/generate_qr", (&handlers.QRHandler{Port: s.Port, Log: s.Log}).ServeHTTP)
	r.Get("/messages", (&handlers.MessagesHandler{Store: s.Store, Log: s.Log}).ServeHTTP)
	r.Get("/health", handlers.HealthCheck)

	// WebSocket endpoint
	r.Get("/ws", (&handlers.WSHandler{Hub: s.Hub, Relay: s.Relay, Log: s.Log}).ServeHTTP)

	return r
}

func (s *Server) Run() error {
	s.Log.Infof("server running on %s", s.Addr)
	return http.ListenAndServe(s.Addr, s.Router())
}
