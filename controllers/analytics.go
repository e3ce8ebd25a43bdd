// controllers/analytics.go
package controllers

import (
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"wavebarber-backend/config"
	"wavebarber-backend/models"
	"wavebarber-backend/schedule"
	"wavebarber-backend/utils"
)

// MonthlyRevenue is the revenue realized in one calendar month.
type MonthlyRevenue struct {
	Month string  `json:"month"` // "2025-08"
	Total float64 `json:"total"`
}

// DailyRevenue is the revenue realized on one calendar day.
type DailyRevenue struct {
	Date  string  `json:"date"` // "2025-08-01"
	Total float64 `json:"total"`
}

// AnalyticsSummary is the owner revenue report. Revenue counts
// appointments whose slot has passed and whose status is neither
// cancelled nor no-show.
type AnalyticsSummary struct {
	TotalAppointments int              `json:"totalAppointments"`
	TotalCuts         int              `json:"totalCuts"`
	TotalRevenue      float64          `json:"totalRevenue"`
	GrowthRate        float64          `json:"growthRate"`
	Monthly           []MonthlyRevenue `json:"monthly"`
	Daily             []DailyRevenue   `json:"daily"`
	TopServices       []ServiceCount   `json:"topServices"`
}

// ServiceCount ranks a service by realized bookings.
type ServiceCount struct {
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

// GetAnalytics computes the revenue report from the active appointment set.
// Dates are stored as labels without a year, so each one is reconstructed
// relative to now before bucketing.
func GetAnalytics(c *gin.Context) {
	var appointments []models.Appointment
	if err := config.DB.Find(&appointments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	now := time.Now()
	summary := AnalyticsSummary{TotalAppointments: len(appointments)}

	monthTotals := map[string]float64{}
	dayTotals := map[string]float64{}
	serviceTotals := map[string]*ServiceCount{}

	for _, a := range appointments {
		if a.Status == models.StatusCancelled || a.Status == models.StatusNoShow {
			continue
		}
		at := schedule.ParseDateLabel(a.Date, a.Time, now)
		if at.IsZero() || at.After(now) {
			continue
		}

		summary.TotalCuts++
		summary.TotalRevenue += a.ServicePrice
		monthTotals[at.Format("2006-01")] += a.ServicePrice
		dayTotals[at.Format("2006-01-02")] += a.ServicePrice

		if sc, ok := serviceTotals[a.ServiceName]; ok {
			sc.Count++
			sc.Revenue += a.ServicePrice
		} else {
			serviceTotals[a.ServiceName] = &ServiceCount{Name: a.ServiceName, Count: 1, Revenue: a.ServicePrice}
		}
	}

	for month, total := range monthTotals {
		summary.Monthly = append(summary.Monthly, MonthlyRevenue{Month: month, Total: total})
	}
	sort.Slice(summary.Monthly, func(i, j int) bool { return summary.Monthly[i].Month < summary.Monthly[j].Month })

	for day, total := range dayTotals {
		summary.Daily = append(summary.Daily, DailyRevenue{Date: day, Total: total})
	}
	sort.Slice(summary.Daily, func(i, j int) bool { return summary.Daily[i].Date < summary.Daily[j].Date })

	for _, sc := range serviceTotals {
		summary.TopServices = append(summary.TopServices, *sc)
	}
	sort.Slice(summary.TopServices, func(i, j int) bool {
		return summary.TopServices[i].Revenue > summary.TopServices[j].Revenue
	})

	currentMonth := monthTotals[now.Format("2006-01")]
	previousMonth := monthTotals[now.AddDate(0, -1, 0).Format("2006-01")]
	summary.GrowthRate = growthPercentage(currentMonth, previousMonth)

	c.JSON(http.StatusOK, summary)
}

func growthPercentage(current, previous float64) float64 {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}
	return ((current - previous) / previous) * 100
}
