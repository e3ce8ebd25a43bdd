package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service is a fixed catalog entry. The catalog is seeded at startup and
// served read-only; appointments copy the service fields by value.
type Service struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Slug        string    `gorm:"uniqueIndex;not null" json:"slug"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Price       float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Duration    int       `json:"duration"` // in minutes
	Icon        string    `json:"icon"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}

// DefaultServices is the stock barbershop catalog.
var DefaultServices = []Service{
	{
		Slug:        "classic-cut",
		Name:        "Corte Clásico",
		Duration:    30,
		Price:       10000,
		Description: "Corte tradicional con tijera y máquina, incluye lavado",
		Icon:        "✂️",
	},
	{
		Slug:        "beard-trim",
		Name:        "Arreglo de Barba",
		Duration:    20,
		Price:       5000,
		Description: "Perfilado y arreglo de barba con navaja",
		Icon:        "🧔",
	},
	{
		Slug:        "complete-service",
		Name:        "Servicio Completo",
		Duration:    45,
		Price:       14000,
		Description: "Corte + barba + lavado + peinado",
		Icon:        "💫",
	},
	{
		Slug:        "kids-cut",
		Name:        "Corte Infantil",
		Duration:    25,
		Price:       7000,
		Description: "Corte especial para niños hasta 12 años",
		Icon:        "👶",
	},
}
