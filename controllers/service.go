// controllers/service.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"wavebarber-backend/config"
	"wavebarber-backend/models"
	"wavebarber-backend/utils"
)

// GetServices retrieves the service catalog. The catalog is reference
// data seeded at startup and not editable at runtime.
func GetServices(c *gin.Context) {
	var services []models.Service
	if err := config.DB.Order("price ASC").Find(&services).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	c.JSON(http.StatusOK, services)
}

// GetService retrieves a single catalog entry by slug.
func GetService(c *gin.Context) {
	var service models.Service
	if err := config.DB.Where("slug = ?", c.Param("slug")).First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, service)
}

// SeedServices inserts the stock catalog on first run. Existing rows are
// left untouched so price edits done directly in the database survive
// restarts.
func SeedServices(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Service{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, service := range models.DefaultServices {
		if err := db.Create(&service).Error; err != nil {
			return err
		}
	}
	config.Log.Info().Int("services", len(models.DefaultServices)).Msg("service catalog seeded")
	return nil
}
