package api

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/teris-io/shortid"

	"github.com/kmuller/go-messenger/internal/chat"
	"github.com/kmuller/go-messenger/internal/config"
	"github.com/kmuller/go-messenger/internal/database"
	"github.com/kmuller/go-messenger/internal/stats"
)

type MessengerApp struct {
	log   *log.Logger
	chat  *chat.Service
	repo  database.MessengerRepository
	mux   *http.Server
	stats stats.StatsProvider
	sid   *shortid.Shortid
}

func NewMessengerApp(mux *http.ServeMux, logger *log.Logger, svc *chat.Service, repo database.MessengerRepository, sp stats.StatsProvider, cfg *config.Config) *MessengerApp {
	s := &MessengerApp{
		log:   logger,
		chat:  svc,
		repo:  repo,
		stats: sp,
		sid:   shortid.GetDefault(),
	}

	mux.HandleFunc("GET /healthz", s.healthCheck)

	mux.HandleFunc("POST /api/profiles", s.createProfile)
	mux.HandleFunc("GET /api/profiles", s.getProfileByUsername)
	mux.HandleFunc("GET /api/profiles/{id}", s.getProfile)
	mux.HandleFunc("PATCH /api/profiles/{id}", s.updateProfile)
	mux.HandleFunc("DELETE /api/profiles/{id}", s.deleteProfile)
	mux.HandleFunc("GET /api/profiles/{id}/group-chats", s.getProfileGroupChats)
	mux.HandleFunc("DELETE /api/profiles/{id}/memberships", s.deleteProfileMemberships)

	mux.HandleFunc("POST /api/group-chats", s.createGroupChat)
	mux.HandleFunc("GET /api/group-chats/{id}", s.getGroupChat)
	mux.HandleFunc("PATCH /api/group-chats/{id}", s.updateGroupChat)
	mux.HandleFunc("DELETE /api/group-chats/{id}", s.deleteGroupChat)

	mux.HandleFunc("POST /api/group-chats/{id}/members", s.addMember)
	mux.HandleFunc("GET /api/group-chats/{id}/members", s.listMembers)
	mux.HandleFunc("DELETE /api/group-chats/{id}/members", s.removeAllMembers)
	mux.HandleFunc("DELETE /api/group-chats/{id}/members/{profileId}", s.removeMember)

	mux.HandleFunc("POST /api/group-chats/{id}/messages", s.postGroupMessage)
	mux.HandleFunc("GET /api/group-chats/{id}/messages", s.listGroupMessages)
	mux.HandleFunc("DELETE /api/group-chats/{id}/messages", s.deleteGroupMessagesOfChat)
	mux.HandleFunc("GET /api/group-chats/{id}/members/{profileId}/messages", s.listAuthorMessages)
	mux.HandleFunc("DELETE /api/group-chats/{id}/members/{profileId}/messages", s.deleteAuthorMessages)
	mux.HandleFunc("GET /api/group-messages/{id}", s.getGroupMessage)
	mux.HandleFunc("PATCH /api/group-messages/{id}", s.updateGroupMessage)
	mux.HandleFunc("DELETE /api/group-messages/{id}", s.deleteGroupMessage)

	mux.HandleFunc("POST /api/private-messages", s.sendPrivateMessage)
	mux.HandleFunc("GET /api/private-messages", s.listPrivateChat)
	mux.HandleFunc("DELETE /api/private-messages", s.deletePrivateChat)
	mux.HandleFunc("GET /api/private-messages/{id}", s.getPrivateMessage)
	mux.HandleFunc("PATCH /api/private-messages/{id}", s.updatePrivateMessage)
	mux.HandleFunc("DELETE /api/private-messages/{id}", s.deletePrivateMessage)

	h := handlers.CORS(
		handlers.MaxAge(3600),
		handlers.AllowedOrigins(cfg.AllowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Origin", "Content-Type", "Accept"}),
		handlers.AllowCredentials(),
	)(mux)

	h = handlers.CombinedLoggingHandler(os.Stdout, h)
	h = s.requestIdHandler(h)
	h = s.errorHandler(h)

	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: h,
	}

	s.mux = srv

	if sp != nil {
		for _, name := range []string{
			stats.ProfilesCreated,
			stats.ProfilesDeleted,
			stats.GroupChatsCreated,
			stats.GroupChatsDeleted,
			stats.GroupMessagesPosted,
			stats.PrivateMessagesSent,
		} {
			sp.RegisterMetric(name)
		}
	}

	return s
}

func (s *MessengerApp) incr(name string) {
	if s.stats != nil {
		s.stats.Incr(name)
	}
}

func (s *MessengerApp) Start() error {
	s.log.Printf("starting server on %s\n", s.mux.Addr)
	return s.mux.ListenAndServe()
}

func (s *MessengerApp) Shutdown(ctx context.Context) error {
	s.log.Println("shutting down HTTP server...")
	if err := s.mux.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	return nil
}

func (s *MessengerApp) healthCheck(w http.ResponseWriter, _ *http.Request) {
	if err := s.repo.Ping(); err != nil {
		s.log.Println("health check:", err)
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
