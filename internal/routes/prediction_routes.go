package routes

import (
	"medequip-backend/config"
	"medequip-backend/internal/handler"
	"medequip-backend/internal/prediction"
	"medequip-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupPredictionRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	repo := repository.NewServiceRecordRepository(db)
	client := prediction.NewClient(cfg.MLServiceURL, cfg.MLTimeout)
	hdl := handler.NewPredictionHandler(repo, client)

	app.Post("/predict", hdl.Predict)
}
