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

const usersListCacheKey = "users:all" // Cache key for the full user list

// invalidateUserCache drops the cached user list and, when id is non-empty,
// the per-user cache entry
func invalidateUserCache(rdb *redis.Client, id string) {
	ctx := context.Background()                        // Context for Redis operations
	_ = utils.DeleteCache(ctx, rdb, usersListCacheKey) // Invalidate list cache
	if id != "" {
		_ = utils.DeleteCache(ctx, rdb, "users:id:"+id) // Invalidate per-user cache
	}
}

// ListUsersHandler returns every user
func ListUsersHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background() // Context for Redis operations
		var users []domain.User     // Slice to hold users
		// Try the cache first
		found, err := utils.GetCache(ctx, rdb, usersListCacheKey, &users)
		if err == nil && found {
			c.JSON(http.StatusOK, users) // Return cached list
			return
		}
		// Fetch all users from the store
		if err := db.Find(&users).Error; err != nil {
			logrus.WithField("error", err.Error()).Error("Failed to list users")
			fail(c, err) // Unexpected store failure maps to 500
			return
		}
		_ = utils.SetCache(ctx, rdb, usersListCacheKey, users, 60*time.Second) // Cache for 60 seconds
		c.JSON(http.StatusOK, users)                                          // Return the list
	}
}

// GetUserHandler returns one user by id
func GetUserHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idStr := c.Param("id") // Path parameter
		// Id must be numeric
		if _, err := strconv.Atoi(idStr); err != nil {
			fail(c, domain.ErrInvalidInput) // Non-numeric id is a bad request
			return
		}
		ctx := context.Background()     // Context for Redis operations
		cacheKey := "users:id:" + idStr // Per-user cache key
		var user domain.User            // User struct to hold data
		// Try the cache first
		found, err := utils.GetCache(ctx, rdb, cacheKey, &user)
		if err == nil && found {
			c.JSON(http.StatusOK, user) // Return cached user
			return
		}
		// Look up by primary key
		if err := db.First(&user, "i_id = ?", idStr).Error; err != nil {
			// A missing row keeps the legacy 400 wire contract
			if errors.Is(err, gorm.ErrRecordNotFound) {
				fail(c, domain.ErrInvalidInput)
				return
			}
			logrus.WithFields(logrus.Fields{
				"user_id": idStr,       // Requested id
				"error":   err.Error(), // Error message
			}).Error("Failed to fetch user")
			fail(c, err) // Unexpected store failure maps to 500
			return
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, user, 60*time.Second) // Cache for 60 seconds
		c.JSON(http.StatusOK, user)                                  // Return the user
	}
}

// CreateUserRequest represents a user creation request
type CreateUserRequest struct {
	FirstName string `json:"firstName" form:"firstName" binding:"required"` // First name must be provided
	LastName  string `json:"lastName" form:"lastName" binding:"required"`   // Last name must be provided
	EmailID   string `json:"emailId" form:"emailId" binding:"required"`     // Email must be provided
}

// CreateUserHandler creates a new user
func CreateUserHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateUserRequest // Bind JSON or form request to struct
		// All three fields are required
		if err := c.ShouldBind(&req); err != nil {
			fail(c, domain.ErrInvalidInput) // Missing fields are a bad request
			return
		}
		user := domain.User{
			FirstName: req.FirstName, // First name
			LastName:  req.LastName,  // Last name
			EmailID:   req.EmailID,   // Email address
		}
		// Insert the new user
		if err := db.Create(&user).Error; err != nil {
			logrus.WithField("error", err.Error()).Error("Failed to create user")
			fail(c, err) // Unexpected store failure maps to 500
			return
		}
		invalidateUserCache(rdb, "")    // Invalidate the user list cache
		c.Status(http.StatusNoContent)  // The contract returns 204 without the generated id
	}
}

// DeleteUserHandler deletes one user by id
func DeleteUserHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idStr := c.Param("id") // Path parameter
		// Id must be numeric
		if _, err := strconv.Atoi(idStr); err != nil {
			fail(c, domain.ErrInvalidInput) // Non-numeric id is a bad request
			return
		}
		res := db.Delete(&domain.User{}, "i_id = ?", idStr) // Delete by primary key
		if res.Error != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": idStr,             // Requested id
				"error":   res.Error.Error(), // Error message
			}).Error("Failed to delete user")
			fail(c, res.Error) // Unexpected store failure maps to 500
			return
		}
		// A delete that matched nothing reports 204 on the wire
		if res.RowsAffected != 1 {
			fail(c, domain.ErrNoEffect)
			return
		}
		invalidateUserCache(rdb, idStr) // Invalidate user caches
		c.Status(http.StatusOK)         // Row removed
	}
}

// UpdateUserRequest represents a partial user update; every field is optional
type UpdateUserRequest struct {
	FirstName *string `json:"firstName" form:"firstName"` // Optional first name
	LastName  *string `json:"lastName" form:"lastName"`   // Optional last name
	EmailID   *string `json:"emailId" form:"emailId"`     // Optional email address
}

// UpdateUserHandler applies a partial update to one user. All present fields
// go out in a single UPDATE; an empty patch issues no statement at all, and
// an id that matches nothing still reports success, as the API always has.
func UpdateUserHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idStr := c.Param("id") // Path parameter
		// Id must be numeric
		if _, err := strconv.Atoi(idStr); err != nil {
			fail(c, domain.ErrInvalidInput) // Non-numeric id is a bad request
			return
		}
		var req UpdateUserRequest // Bind JSON or form request to struct
		_ = c.ShouldBind(&req)    // A missing or unreadable body is an empty patch
		updates := map[string]any{}
		// Empty strings count as absent, matching the legacy presence checks
		if req.FirstName != nil && *req.FirstName != "" {
			updates["v_firstName"] = *req.FirstName // New first name
		}
		if req.LastName != nil && *req.LastName != "" {
			updates["v_lastName"] = *req.LastName // New last name
		}
		if req.EmailID != nil && *req.EmailID != "" {
			updates["v_email"] = *req.EmailID // New email address
		}
		if len(updates) > 0 {
			// Apply all present fields in one statement
			if err := db.Model(&domain.User{}).Where("i_id = ?", idStr).Updates(updates).Error; err != nil {
				logrus.WithFields(logrus.Fields{
					"user_id": idStr,       // Requested id
					"error":   err.Error(), // Error message
				}).Error("Failed to update user")
				fail(c, err) // Unexpected store failure maps to 500
				return
			}
			invalidateUserCache(rdb, idStr) // Invalidate user caches
		}
		c.Status(http.StatusOK) // Success even when the patch was empty
	}
}
