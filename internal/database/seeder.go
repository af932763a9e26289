package database

import (
	"log"

	"medequip-backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedAll(db *gorm.DB) {
	// 1. Seed sample service records (matched by device code at predict time)
	records := []model.ServiceRecord{
		{DeviceID: "VENT-004", Reason: "Pressure sensor drift", Description: "Recalibrated inspiratory pressure sensor, replaced O-ring"},
		{DeviceID: "VENT-004", Reason: "Routine check", Description: "Annual preventive maintenance"},
		{DeviceID: "XRAY-9", Reason: "Tube overheating", Description: "Replaced cooling fan, cleaned filters"},
		{DeviceID: "INF-207", Reason: "Occlusion alarm", Description: "Replaced pump mechanism"},
	}
	for _, r := range records {
		db.FirstOrCreate(&r, model.ServiceRecord{DeviceID: r.DeviceID, Reason: r.Reason})
	}

	// 2. Seed an admin technician with a usable password
	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("could not hash seed password:", err)
	}
	admin := model.Technician{
		Name:     "Admin",
		Email:    "admin@medequip.local",
		Password: string(hashed),
	}
	db.FirstOrCreate(&admin, model.Technician{Email: admin.Email})

	log.Println("Seeding done:", len(records), "service records, 1 technician")
}
