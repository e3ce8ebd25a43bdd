package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wavebarber-backend/config"
	"wavebarber-backend/utils"
)

type LoginInput struct {
	Pin string `json:"pin" binding:"required,len=4,numeric"`
}

// Login unlocks the owner dashboard: a valid PIN yields a session token.
func Login(c *gin.Context) {
	var input LoginInput

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.CheckOwnerPIN(input.Pin) {
		config.Log.Warn().Str("ip", c.ClientIP()).Msg("failed PIN attempt")
		utils.RespondWithError(c, http.StatusUnauthorized, "Incorrect PIN")
		return
	}

	token, err := utils.GenerateToken()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
	})
}
