package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/priyeshgu/kqrgaushala-be/handlers/catalog"
	"github.com/priyeshgu/kqrgaushala-be/handlers/donations"
	"github.com/priyeshgu/kqrgaushala-be/handlers/newsletter"
	"github.com/priyeshgu/kqrgaushala-be/handlers/orders"
	"github.com/priyeshgu/kqrgaushala-be/handlers/receipts"
	"github.com/priyeshgu/kqrgaushala-be/handlers/translation"
	"github.com/priyeshgu/kqrgaushala-be/migrations"
	"github.com/priyeshgu/kqrgaushala-be/seed"
	"github.com/priyeshgu/kqrgaushala-be/services"
	"github.com/priyeshgu/kqrgaushala-be/store"
	"github.com/priyeshgu/kqrgaushala-be/utils"
)

func init() {
	if err := godotenv.Load(); err != nil {
		// It's okay if the .env file isn't found; environment variables may be set elsewhere
		log.Println("No .env file found or error loading .env file:", err)
	}
}

func main() {
	db, err := utils.ConnectDatabase()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := migrations.Run(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Seed Initial Data
	if err := seed.Products(db); err != nil {
		log.Fatalf("Failed to seed donation products: %v", err)
	}

	st := store.New(db)
	payments := services.NewPaymentService(
		os.Getenv("RAZORPAY_KEY_ID"),
		os.Getenv("RAZORPAY_KEY_SECRET"),
	)
	mailer := services.NewMailer(services.MailerConfig{
		Sender:       os.Getenv("SMTP_USER"),
		ClientID:     os.Getenv("GMAIL_CLIENT_ID"),
		ClientSecret: os.Getenv("GMAIL_CLIENT_SECRET"),
		RefreshToken: os.Getenv("GMAIL_REFRESH_TOKEN"),
	})
	translator, err := services.NewTranslator(context.Background(), os.Getenv("AWS_REGION"))
	if err != nil {
		log.Fatalf("Failed to configure translator: %v", err)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          12 * time.Hour,
	}))

	// Routes setup
	donations.RegisterDonationRoutes(r, st)
	catalog.RegisterCatalogRoutes(r, st)
	orders.RegisterOrderRoutes(r, payments)
	newsletter.RegisterNewsletterRoutes(r, st)
	receipts.RegisterReceiptRoutes(r, mailer)
	translation.RegisterTranslationRoutes(r, translator)

	r.GET("/health", func(c *gin.Context) {
		if err := st.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server is running on http://localhost:%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to run server: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	// Release pooled connections before exit.
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}
