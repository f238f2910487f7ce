package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"

	"github.com/sahlimouna/gari-app/internal/api"
	"github.com/sahlimouna/gari-app/internal/auth"
	"github.com/sahlimouna/gari-app/internal/repository"
	"github.com/sahlimouna/gari-app/internal/service"
)

func main() {
	godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL not set")
	}
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET not set")
	}

	database, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	if err := database.Ping(); err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	parkingRepo := repository.NewParkingRepository(database)
	reservationRepo := repository.NewReservationRepository(database)
	paymentRepo := repository.NewPaymentRepository(database)
	notificationRepo := repository.NewNotificationRepository(database)
	userRepo := repository.NewUserRepository(database)

	var uploader service.PlateImageUploader
	if storage, err := service.NewS3Storage(context.Background()); err != nil {
		log.Printf("Object storage unavailable, license plate uploads disabled: %v", err)
	} else {
		uploader = storage
	}

	sessions := auth.NewSessionBroadcaster()
	unsubscribe := sessions.Subscribe(func(ev auth.SessionEvent) {
		if ev.SignedIn {
			log.Printf("Session opened for %s", ev.Email)
		}
	})
	defer unsubscribe()

	catalogSvc := service.NewCatalogService(parkingRepo)
	notificationSvc := service.NewNotificationService(notificationRepo, userRepo, parkingRepo)
	reservationSvc := service.NewReservationService(reservationRepo, uploader, notificationSvc)
	paymentSvc := service.NewPaymentService(paymentRepo)
	profileSvc := service.NewProfileService(userRepo)
	authSvc := service.NewAuthService(userRepo, notificationRepo, sessions, jwtSecret)

	feed := service.NewSimulatedAvailabilityFeed()
	if parkings, err := parkingRepo.ListParkings(); err != nil {
		log.Printf("Could not seed availability feed: %v", err)
	} else {
		feed.Seed(parkings)
	}
	scheduler := cron.New()
	scheduler.AddFunc("@every 10s", feed.Tick)
	scheduler.Start()
	defer scheduler.Stop()

	authHandler := api.NewAuthHandler(authSvc)
	parkingHandler := api.NewParkingHandler(catalogSvc, feed)
	reservationHandler := api.NewReservationHandler(reservationSvc)
	paymentHandler := api.NewPaymentHandler(paymentSvc)
	notificationHandler := api.NewNotificationHandler(notificationSvc)
	profileHandler := api.NewProfileHandler(profileSvc)
	webhookHandler := api.NewStripeWebhookHandler(os.Getenv("STRIPE_WEBHOOK_SECRET"),
		reservationSvc, paymentSvc, catalogSvc, notificationSvc)

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/login", authHandler.LoginPage).Methods("GET")
	r.HandleFunc("/api/auth/signup", authHandler.SignUp).Methods("POST")
	r.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/api/auth/demo", authHandler.DemoLogin).Methods("POST")
	r.HandleFunc("/api/parkings", parkingHandler.ListParkings).Methods("GET")
	r.HandleFunc("/api/parkings/{id}", parkingHandler.GetParking).Methods("GET")
	r.HandleFunc("/api/quote", parkingHandler.Quote).Methods("POST")
	r.HandleFunc("/api/webhooks/stripe", webhookHandler.HandleWebhook).Methods("POST")

	// Session-gated endpoints
	gated := r.PathPrefix("/api").Subrouter()
	gated.Use(auth.SessionGate(jwtSecret))
	gated.HandleFunc("/reservations", reservationHandler.CreateReservation).Methods("POST")
	gated.HandleFunc("/reservations/{id}", reservationHandler.GetReservation).Methods("GET")
	gated.HandleFunc("/parkings/{id}/availability", parkingHandler.Availability).Methods("GET")
	gated.HandleFunc("/payments/card", paymentHandler.SubmitCard).Methods("POST")
	gated.HandleFunc("/payments", paymentHandler.GetPaymentHistory).Methods("GET")
	gated.HandleFunc("/notifications", notificationHandler.ListNotifications).Methods("GET")
	gated.HandleFunc("/profile", profileHandler.GetProfile).Methods("GET")
	gated.HandleFunc("/profile", profileHandler.UpdateProfile).Methods("PUT")

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Gari server running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, cors(r)))
}
