package repository

import (
	"medequip-backend/internal/model"

	"gorm.io/gorm"
)

type TechnicianRepository interface {
	Create(t *model.Technician) error
	FindByID(id uint) (*model.Technician, error)
	FindByEmail(email string) (*model.Technician, error)
	UpdatePassword(id uint, hashed string) error
	GetAll() ([]model.Technician, error)
}

type technicianRepository struct {
	db *gorm.DB
}

func NewTechnicianRepository(db *gorm.DB) TechnicianRepository {
	return &technicianRepository{db}
}

func (r *technicianRepository) Create(t *model.Technician) error {
	return r.db.Create(t).Error
}

func (r *technicianRepository) FindByID(id uint) (*model.Technician, error) {
	var t model.Technician
	err := r.db.First(&t, id).Error
	return &t, err
}

func (r *technicianRepository) FindByEmail(email string) (*model.Technician, error) {
	var t model.Technician
	err := r.db.Where("email = ?", email).First(&t).Error
	return &t, err
}

func (r *technicianRepository) UpdatePassword(id uint, hashed string) error {
	return r.db.Model(&model.Technician{}).Where("id = ?", id).Update("password", hashed).Error
}

func (r *technicianRepository) GetAll() ([]model.Technician, error) {
	var techs []model.Technician
	err := r.db.Find(&techs).Error
	return techs, err
}
