package api

import (
	"context"  // Context for Redis operations
	"errors"   // Error kind matching
	"net/http" // HTTP status codes
	"strconv"  // String conversion
	"time"     // Cache TTL

	"bank_backend/internal/domain" // Importing domain models
	"bank_backend/internal/utils"  // Cache helpers

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library

	"github.com/sirupsen/logrus" // Logging library
)

// invalidateAccountCache drops the cached entry for one account
func invalidateAccountCache(rdb *redis.Client, id string) {
	_ = utils.DeleteCache(context.Background(), rdb, "account:id:"+id)
}

// GetAccountHandler returns one account by id
func GetAccountHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idStr := c.Param("id") // Path parameter
		// Id must be numeric
		if _, err := strconv.Atoi(idStr); err != nil {
			fail(c, domain.ErrInvalidInput) // Non-numeric id is a bad request
			return
		}
		ctx := context.Background()       // Context for Redis operations
		cacheKey := "account:id:" + idStr // Per-account cache key
		var account domain.Account        // Account struct to hold data
		// Try the cache first
		found, err := utils.GetCache(ctx, rdb, cacheKey, &account)
		if err == nil && found {
			c.JSON(http.StatusOK, account) // Return cached account
			return
		}
		// Look up by primary key
		if err := db.First(&account, "i_id = ?", idStr).Error; err != nil {
			// A missing row keeps the legacy 400 wire contract
			if errors.Is(err, gorm.ErrRecordNotFound) {
				fail(c, domain.ErrInvalidInput)
				return
			}
			logrus.WithFields(logrus.Fields{
				"account_id": idStr,       // Requested id
				"error":      err.Error(), // Error message
			}).Error("Failed to fetch account")
			fail(c, err) // Unexpected store failure maps to 500
			return
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, account, 60*time.Second) // Cache for 60 seconds
		c.JSON(http.StatusOK, account)                                  // Return the account
	}
}

// CreateAccountRequest represents an account creation request; id is the
// owning user's id
type CreateAccountRequest struct {
	ID uint `json:"id" form:"id" binding:"required"` // Owning user id must be provided and nonzero
}

// CreateAccountHandler creates a new account with a zero balance
func CreateAccountHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateAccountRequest // Bind JSON or form request to struct
		// The owning user id is required
		if err := c.ShouldBind(&req); err != nil {
			fail(c, domain.ErrInvalidInput) // Missing id is a bad request
			return
		}
		account := domain.Account{UserID: req.ID} // Balance starts at 0
		// Insert the new account
		if err := db.Create(&account).Error; err != nil {
			// A broken user reference reports 401 on the wire
			if errors.Is(err, gorm.ErrForeignKeyViolated) {
				logrus.WithField("user_id", req.ID).Warn("Account creation for unknown user")
				fail(c, domain.ErrNotPermitted)
				return
			}
			logrus.WithFields(logrus.Fields{
				"user_id": req.ID,      // Owning user id
				"error":   err.Error(), // Error message
			}).Error("Failed to create account")
			fail(c, err) // Unexpected store failure maps to 500
			return
		}
		// Log successful account creation
		logrus.WithFields(logrus.Fields{
			"account_id": account.ID, // New account id
			"user_id":    req.ID,     // Owning user id
		}).Info("Account created")
		c.Status(http.StatusNoContent) // The contract returns 204 without the generated id
	}
}

// DeleteAccountHandler deletes one account by id
func DeleteAccountHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idStr := c.Param("id") // Path parameter
		// Id must be numeric
		if _, err := strconv.Atoi(idStr); err != nil {
			fail(c, domain.ErrInvalidInput) // Non-numeric id is a bad request
			return
		}
		res := db.Delete(&domain.Account{}, "i_id = ?", idStr) // Delete by primary key
		if res.Error != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": idStr,             // Requested id
				"error":      res.Error.Error(), // Error message
			}).Error("Failed to delete account")
			fail(c, res.Error) // Unexpected store failure maps to 500
			return
		}
		// A delete that matched nothing reports 204 on the wire
		if res.RowsAffected != 1 {
			fail(c, domain.ErrNoEffect)
			return
		}
		invalidateAccountCache(rdb, idStr) // Invalidate the account cache
		c.Status(http.StatusOK)            // Row removed
	}
}
