package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wavebarber-backend/models"
)

func TestGetCustomRangesSkipsCorruptedDay(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, db.Create(&models.CustomTimeRange{
		Day: "friday", Start: "22:00", End: "23:00",
	}).Error)
	// A row with a day the binding would never accept must not take the
	// handler down.
	require.NoError(t, db.Create(&models.CustomTimeRange{
		Day: "monday", Start: "10:00", End: "11:00",
	}).Error)

	c, w := testContext(t, "")
	GetCustomRanges(c)
	require.Equal(t, http.StatusOK, w.Code)

	var grouped map[string][]models.CustomTimeRange
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &grouped))
	assert.Len(t, grouped["friday"], 1)
	assert.Len(t, grouped["saturday"], 0)
	assert.NotContains(t, grouped, "monday")
}
