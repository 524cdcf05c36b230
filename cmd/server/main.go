// File: cmd/server/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/graceworks/churchos/internal/config"
	"github.com/graceworks/churchos/internal/domain"
	"github.com/graceworks/churchos/internal/handlers"
	"github.com/graceworks/churchos/internal/middleware"
	"github.com/graceworks/churchos/internal/ratelimit"
	"github.com/graceworks/churchos/internal/realtime"
	"github.com/graceworks/churchos/internal/repository/announcement"
	"github.com/graceworks/churchos/internal/repository/audit"
	"github.com/graceworks/churchos/internal/repository/branch"
	"github.com/graceworks/churchos/internal/repository/campaign"
	"github.com/graceworks/churchos/internal/repository/event"
	"github.com/graceworks/churchos/internal/repository/group"
	"github.com/graceworks/churchos/internal/repository/invitation"
	"github.com/graceworks/churchos/internal/repository/message"
	"github.com/graceworks/churchos/internal/repository/prayer"
	"github.com/graceworks/churchos/internal/repository/stats"
	"github.com/graceworks/churchos/internal/repository/user"
	"github.com/graceworks/churchos/internal/repository/volunteer"
	"github.com/graceworks/churchos/internal/seed"
	"github.com/graceworks/churchos/internal/services"
	"github.com/graceworks/churchos/internal/services/ai"
	"github.com/graceworks/churchos/internal/services/bible"
)

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Max-Age", "86400")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func main() {
	cfg := config.Load()
	logger := services.NewProductionLogger("churchos")

	db, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{})
	if err != nil {
		log.Fatalf("DB Error: %v", err)
	}

	if err := db.AutoMigrate(
		&domain.Church{}, &domain.Branch{}, &domain.User{},
		&domain.Group{}, &domain.GroupMember{}, &domain.Message{},
		&domain.Event{}, &domain.MeetingAttendance{},
		&domain.PrayerRequest{}, &domain.Announcement{},
		&domain.Campaign{}, &domain.Contribution{},
		&domain.AuditLog{}, &domain.Invitation{},
		&domain.VolunteerNeed{}, &domain.VolunteerSignup{},
	); err != nil {
		log.Fatalf("DB Migration Error: %v", err)
	}

	if err := seed.Run(db); err != nil {
		log.Fatalf("DB Seed Error: %v", err)
	}

	// --- Repositories ---
	userRepo := user.NewUserRepository(db)
	branchRepo := branch.NewBranchRepository(db)
	groupRepo := group.NewGroupRepository(db)
	messageRepo := message.NewMessageRepository(db)
	eventRepo := event.NewEventRepository(db)
	prayerRepo := prayer.NewPrayerRepository(db)
	announcementRepo := announcement.NewAnnouncementRepository(db)
	campaignRepo := campaign.NewCampaignRepository(db)
	volunteerRepo := volunteer.NewVolunteerRepository(db)
	auditRepo := audit.NewAuditRepository(db)
	invitationRepo := invitation.NewInvitationRepository(db)
	statsRepo := stats.NewStatsRepository(db)

	// --- Realtime ---
	registry := realtime.NewRegistry()
	dispatcher := realtime.NewDispatcher(registry)

	// --- Services ---
	authService, err := services.NewAuthService(userRepo, invitationRepo, cfg.JWTSecretKey, logger)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize Auth Service: %v", err)
	}
	chatService, err := services.NewChatService(messageRepo, dispatcher, logger)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize Chat Service: %v", err)
	}
	groupService, err := services.NewGroupService(groupRepo, messageRepo, logger)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize Group Service: %v", err)
	}
	directoryService, err := services.NewDirectoryService(userRepo, branchRepo, statsRepo, campaignRepo, logger)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize Directory Service: %v", err)
	}
	eventService, err := services.NewEventService(eventRepo, logger)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize Event Service: %v", err)
	}
	announcementService, err := services.NewAnnouncementService(announcementRepo, logger)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize Announcement Service: %v", err)
	}
	prayerService, err := services.NewPrayerService(prayerRepo, logger)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize Prayer Service: %v", err)
	}
	campaignService, err := services.NewCampaignService(campaignRepo, logger)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize Campaign Service: %v", err)
	}
	volunteerService, err := services.NewVolunteerService(volunteerRepo, logger)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize Volunteer Service: %v", err)
	}
	adminService, err := services.NewAdminService(userRepo, branchRepo, invitationRepo, auditRepo, logger)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize Admin Service: %v", err)
	}

	// AI is optional: without a key the endpoints answer 503.
	var provider ai.CompletionProvider
	if cfg.OpenAIAPIKey != "" {
		aiConfig := ai.DefaultConfig()
		aiConfig.APIKey = cfg.OpenAIAPIKey
		aiConfig.BaseURL = cfg.OpenAIBaseURL
		aiConfig.Model = cfg.OpenAIModel
		provider, err = ai.NewOpenAIProvider(aiConfig)
		if err != nil {
			log.Fatalf("FATAL: Failed to initialize AI provider: %v", err)
		}
	} else {
		log.Println("OPENAI_API_KEY not set; AI endpoints disabled")
	}
	aiService, err := services.NewAIService(provider, eventRepo, logger)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize AI Service: %v", err)
	}

	bibleConfig := bible.DefaultConfig()
	bibleConfig.BaseURL = cfg.BibleAPIBaseURL
	bibleClient, err := bible.NewClient(bibleConfig)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize Bible client: %v", err)
	}

	// --- Handlers ---
	sessionHandler := handlers.NewSessionHandler(authService)
	directoryHandler := handlers.NewDirectoryHandler(directoryService)
	groupHandler := handlers.NewGroupHandler(groupService)
	messageHandler := handlers.NewMessageHandler(chatService)
	wsHandler := handlers.NewWSHandler(registry)
	eventHandler := handlers.NewEventHandler(eventService, aiService)
	announcementHandler := handlers.NewAnnouncementHandler(announcementService)
	prayerHandler := handlers.NewPrayerHandler(prayerService)
	campaignHandler := handlers.NewCampaignHandler(campaignService)
	volunteerHandler := handlers.NewVolunteerHandler(volunteerService)
	adminHandler := handlers.NewAdminHandler(adminService)
	aiHandler := handlers.NewAIHandler(aiService)
	bibleHandler := handlers.NewBibleHandler(bibleClient)

	// --- Router Setup ---
	r := mux.NewRouter()
	sessionMiddleware := middleware.NewSessionMiddleware(authService)
	adminMiddleware := middleware.RequireRole(userRepo, domain.RoleSuperAdmin, domain.RoleBranchAdmin)

	loginLimiter := ratelimit.NewMemoryRateLimiter(ratelimit.LoginConfig())
	defer loginLimiter.Close()
	messageLimiter := ratelimit.NewMemoryRateLimiter(ratelimit.MessageConfig())
	defer messageLimiter.Close()

	r.Use(corsMiddleware)
	r.Use(middleware.RecoverPanic)
	r.Use(middleware.LoggingMiddleware)

	// --- Public Routes ---
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}).Methods("GET")

	loginChain := middleware.RateLimitMiddleware(loginLimiter, "session")(
		middleware.AuthSuccessMiddleware(loginLimiter, "session")(
			http.HandlerFunc(sessionHandler.Create)))
	r.Handle("/api/session", loginChain).Methods("POST")
	r.HandleFunc("/api/register", sessionHandler.Register).Methods("POST")

	// --- Protected Routes ---
	protected := r.PathPrefix("/").Subrouter()
	protected.Use(sessionMiddleware)

	protected.HandleFunc("/ws", wsHandler.Serve).Methods("GET")

	api := protected.PathPrefix("/api").Subrouter()
	api.HandleFunc("/me", directoryHandler.Me).Methods("GET")
	api.HandleFunc("/me/contributions", campaignHandler.MyContributions).Methods("GET")
	api.HandleFunc("/branches", directoryHandler.Branches).Methods("GET")
	api.HandleFunc("/stats", directoryHandler.Stats).Methods("GET")
	api.HandleFunc("/stats/branches-comparison", directoryHandler.BranchComparison).Methods("GET")

	api.HandleFunc("/groups", groupHandler.List).Methods("GET")
	api.HandleFunc("/groups/{id:[0-9]+}", groupHandler.Detail).Methods("GET")
	api.Handle("/messages",
		middleware.RateLimitMiddleware(messageLimiter, "messages")(
			http.HandlerFunc(messageHandler.Create))).Methods("POST")

	api.HandleFunc("/events", eventHandler.List).Methods("GET")
	api.HandleFunc("/events", eventHandler.Create).Methods("POST")
	api.HandleFunc("/events/{id:[0-9]+}/attendance", eventHandler.Attendance).Methods("POST")
	api.HandleFunc("/events/{id:[0-9]+}/notes", eventHandler.Notes).Methods("POST")
	api.HandleFunc("/events/{id:[0-9]+}/summarize", eventHandler.Summarize).Methods("POST")

	api.HandleFunc("/prayer-requests", prayerHandler.List).Methods("GET")
	api.HandleFunc("/prayer-requests", prayerHandler.Create).Methods("POST")
	api.HandleFunc("/announcements", announcementHandler.List).Methods("GET")
	api.HandleFunc("/announcements", announcementHandler.Create).Methods("POST")

	api.HandleFunc("/campaigns", campaignHandler.List).Methods("GET")
	api.HandleFunc("/campaigns/{id:[0-9]+}/contributions", campaignHandler.Contributions).Methods("GET")
	api.HandleFunc("/contributions", campaignHandler.CreateContribution).Methods("POST")

	api.HandleFunc("/volunteer-needs", volunteerHandler.ListNeeds).Methods("GET")
	api.HandleFunc("/volunteer-needs", volunteerHandler.CreateNeed).Methods("POST")
	api.HandleFunc("/volunteer-signups", volunteerHandler.CreateSignup).Methods("POST")
	api.HandleFunc("/my-signups", volunteerHandler.MySignups).Methods("GET")

	api.HandleFunc("/ai/announcement-draft", aiHandler.DraftAnnouncement).Methods("POST")
	api.HandleFunc("/ai/insights", aiHandler.Insights).Methods("POST")
	api.HandleFunc("/bible/{reference}", bibleHandler.Lookup).Methods("GET")

	// --- Admin Routes ---
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(adminMiddleware)
	admin.HandleFunc("/users", adminHandler.ListUsers).Methods("GET")
	admin.HandleFunc("/users/{id:[0-9]+}/role", adminHandler.ChangeRole).Methods("POST")
	admin.HandleFunc("/branches", adminHandler.CreateBranch).Methods("POST")
	admin.HandleFunc("/audit-logs", adminHandler.AuditLogs).Methods("GET")
	admin.HandleFunc("/invitations", adminHandler.ListInvitations).Methods("GET")
	admin.HandleFunc("/invitations", adminHandler.CreateInvitation).Methods("POST")

	// --- Server with graceful shutdown ---
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("ChurchOS server listening on :%s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
