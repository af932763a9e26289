package routes

import (
	"medequip-backend/config"
	"medequip-backend/internal/handler"
	"medequip-backend/internal/mailer"
	"medequip-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupTechnicianRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	repo := repository.NewTechnicianRepository(db)
	mail := mailer.New(cfg)
	hdl := handler.NewTechnicianHandler(repo, mail, cfg)

	api := app.Group("/api/technicians")
	api.Post("/", hdl.Create)
	api.Get("/", hdl.GetAll)
	api.Put("/password", hdl.SetPassword)
	api.Post("/:id/assignments", hdl.SendAssignment)
}
