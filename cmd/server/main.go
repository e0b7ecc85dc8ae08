package main

import (
	"log"
	"net/http"
	"time"

	"github.com/calebfernandez/levelup/internal/auth"
	"github.com/calebfernandez/levelup/internal/config"
	"github.com/calebfernandez/levelup/internal/database"
	"github.com/calebfernandez/levelup/internal/handlers"
	"github.com/calebfernandez/levelup/internal/services"
	"github.com/calebfernandez/levelup/internal/store/postgres"
	"github.com/calebfernandez/levelup/internal/utils"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"golang.org/x/time/rate"
)

func main() {
	// Load configuration
	cfg := config.LoadConfig()

	// Initialize database
	db, err := database.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Stores
	userStore := postgres.NewUserStore(db.DB)
	logStore := postgres.NewLogStore(db.DB)
	planStore := postgres.NewPlanStore(db.DB)

	// Token utilities and email service
	jwtUtil := utils.NewJWTUtil(cfg.JWTSecret, cfg.JWTExpiration)
	resetUtil := auth.NewResetTokenUtil(cfg.JWTSecret, cfg.ResetTokenMaxAge)
	emailService := services.NewEmailService(cfg)

	// Create router
	router := mux.NewRouter()

	resetLimiter := rate.NewLimiter(rate.Every(time.Hour), 3) // 3 requests per hour

	// Health check endpoint
	router.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods("GET")

	authMiddleware := handlers.JWTMiddleware(jwtUtil)

	// Auth routes
	authRouter := router.PathPrefix("/api/auth").Subrouter()
	{
		authRouter.HandleFunc("/signup", handlers.Signup(userStore)).Methods("POST")
		authRouter.HandleFunc("/login", handlers.Login(userStore, jwtUtil)).Methods("POST")
		authRouter.HandleFunc("/forgot-password", handlers.RateLimitMiddleware(resetLimiter)(handlers.ForgotPassword(userStore, resetUtil, emailService))).Methods("POST")
		authRouter.HandleFunc("/reset-password/{token}", handlers.ResetPassword(userStore, resetUtil)).Methods("POST")
		authRouter.Handle("/logout", authMiddleware(handlers.Logout(userStore))).Methods("POST")
		authRouter.Handle("/status", authMiddleware(handlers.Status(userStore))).Methods("GET")
	}

	// Authenticated routes
	apiRouter := router.PathPrefix("/api").Subrouter()
	apiRouter.Use(authMiddleware)
	{
		// Details
		apiRouter.HandleFunc("/details", handlers.GetDetails(userStore)).Methods("GET")
		apiRouter.HandleFunc("/details", handlers.UpdateDetails(userStore)).Methods("POST")

		// Weight logs
		apiRouter.HandleFunc("/logs", handlers.ListLogs(logStore)).Methods("GET")
		apiRouter.HandleFunc("/logs", handlers.AppendLog(logStore)).Methods("POST")

		// Plans
		apiRouter.HandleFunc("/generate-plan", handlers.GeneratePlan()).Methods("POST")
		apiRouter.HandleFunc("/plans", handlers.ListPlans(planStore)).Methods("GET")
		apiRouter.HandleFunc("/plans", handlers.SavePlan(planStore)).Methods("POST")

		// Account deletion (cascades to logs and plans)
		apiRouter.HandleFunc("/account", handlers.DeleteAccount(userStore)).Methods("DELETE")
	}

	// CORS configuration
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	// Start server
	log.Printf("Server running on port %s", cfg.AppPort)
	log.Fatal(http.ListenAndServe(":"+cfg.AppPort, corsHandler.Handler(router)))
}
