// File: cmd/server/init.go
package main

import (
	"blood_donation_backend/internal/app"
	"blood_donation_backend/internal/config"
	"blood_donation_backend/internal/donation"
	"blood_donation_backend/internal/firebase"
	"blood_donation_backend/internal/payment"
	"blood_donation_backend/internal/platform/database"
	"blood_donation_backend/internal/platform/logger"
	"blood_donation_backend/internal/stats"
	"blood_donation_backend/internal/user"
)

// initializeServer wires the full dependency graph by hand: platform
// clients, repositories, services, handlers, then the HTTP server. The
// returned cleanup closes everything the graph opened.
func initializeServer(cfg *config.Config) (*app.Server, func(), error) {
	appLogger, err := logger.New(cfg)
	if err != nil {
		return nil, nil, err
	}

	mongoClient, err := database.NewMongoClient(cfg)
	if err != nil {
		_ = appLogger.Sync()
		return nil, nil, err
	}
	db := database.NewDatabase(mongoClient, cfg)

	cleanup := func() {
		database.CloseMongoClient(mongoClient)
		_ = appLogger.Sync()
	}

	firebaseService, err := firebase.NewService(cfg, appLogger.Named("Firebase"))
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	userRepo := user.NewMongoRepository(db)
	donationRepo := donation.NewMongoRepository(db)
	paymentRepo := payment.NewMongoRepository(db)

	userService := user.NewService(userRepo, appLogger.Named("UserService"))
	donationService := donation.NewService(donationRepo, userService, appLogger.Named("DonationService"))
	paymentService := payment.NewService(paymentRepo, payment.NewStripeCheckout(cfg), cfg, appLogger.Named("PaymentService"))
	statsService := stats.NewService(userRepo, donationRepo, paymentRepo, appLogger.Named("StatsService"))

	userHandler := user.NewHandler(userService, appLogger.Named("UserHandler"))
	donationHandler := donation.NewHandler(donationService, appLogger.Named("DonationHandler"))
	paymentHandler := payment.NewHandler(paymentService, appLogger.Named("PaymentHandler"))
	statsHandler := stats.NewHandler(statsService, appLogger.Named("StatsHandler"))

	server, err := app.NewServer(cfg, appLogger, userHandler, donationHandler, paymentHandler, statsHandler, firebaseService)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	return server, cleanup, nil
}
