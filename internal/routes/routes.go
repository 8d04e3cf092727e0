package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"sms-payment-backend/internal/classifier"
	"sms-payment-backend/internal/config"
	handler "sms-payment-backend/internal/handlers"
	"sms-payment-backend/internal/repository"
	service "sms-payment-backend/internal/services/verification"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	messageRepo := repository.NewMessageRepository(db)
	verificationRepo := repository.NewVerificationRepository(db)

	engine := service.NewEngine(messageRepo, verificationRepo, cfg.PhonePolicy)

	smsHandler := handler.NewSMSHandler(
		classifier.New(),
		messageRepo,
		verificationRepo,
		engine,
		cfg.RequiredAmount,
	)

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// SMS ingestion routes
	sms := api.Group("/sms")
	sms.POST("/receive", smsHandler.ReceiveSMS)

	// Verification routes
	payments := api.Group("/payments")
	payments.POST("/verify", smsHandler.VerifyPayment)
	payments.POST("/verify-client", smsHandler.VerifyPaymentWithClient)
	payments.GET("/:txid/verifications", smsHandler.ListVerifications)

	// Stored message routes
	api.GET("/messages", smsHandler.ListMessages)
}
