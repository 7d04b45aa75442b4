package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"parkpalace-backend/config"
	"parkpalace-backend/controllers"
	"parkpalace-backend/routes"
	"parkpalace-backend/services"
)

func main() {
	// .env is optional; plain environment variables work too.
	if err := godotenv.Load(); err != nil {
		log.Info(".env not found, continuing with environment variables")
	}

	if os.Getenv("JWT_SECRET") == "" {
		log.Warn("JWT_SECRET is not set, using an insecure development secret")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.WithError(err).Fatal("database connect failed")
	}
	db := config.DB
	log.Info("database connection established")

	roomService := services.NewRoomService(db)
	menuService := services.NewMenuService(db)
	bookingService := services.NewBookingService(db)
	authService := services.NewAuthService(db)
	userService := services.NewUserService(db)

	roomController := controllers.NewRoomController(roomService)
	menuController := controllers.NewMenuController(menuService)
	bookingController := controllers.NewBookingController(bookingService)
	authController := controllers.NewAuthController(authService)
	userController := controllers.NewUserController(userService)

	router := routes.SetupRouter(
		roomController,
		menuController,
		bookingController,
		authController,
		userController,
		authService,
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.WithField("addr", addr).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("listen failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Fatal("forced shutdown")
	}

	log.Info("server stopped gracefully")
}
