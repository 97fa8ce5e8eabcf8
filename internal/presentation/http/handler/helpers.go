package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sewlanka/pos-api/internal/domain/enum"
)

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// GetUsername extracts the username from the Gin context
func GetUsername(c *gin.Context) string {
	username, exists := c.Get("username")
	if !exists {
		return ""
	}
	return username.(string)
}

// GetUserLevel extracts the user level from the Gin context
func GetUserLevel(c *gin.Context) enum.UserLevel {
	level, exists := c.Get("user_level")
	if !exists {
		return enum.UserLevelCashier
	}
	return level.(enum.UserLevel)
}

// IsManager checks if the user holds the L2 (manager) level
func IsManager(c *gin.Context) bool {
	return GetUserLevel(c) == enum.UserLevelManager
}
