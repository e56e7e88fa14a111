package api

import (
	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// RegisterRoutes wires every endpoint onto the router. The store handle and
// Redis client are injected here instead of living on a global.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client) {
	// Account routes
	account := r.Group("/account")
	account.GET("/:id", GetAccountHandler(db, rdb))                       // Fetch one account
	account.POST("/", CreateAccountHandler(db, rdb))                      // Create an account
	account.DELETE("/:id", DeleteAccountHandler(db, rdb))                 // Delete an account
	account.POST("/add/:id/:amount", AddFundsHandler(db, rdb))            // Credit an account
	account.POST("/withdraw/:id/:amount", WithdrawFundsHandler(db, rdb))  // Debit an account

	// User routes
	users := r.Group("/users")
	users.GET("", ListUsersHandler(db, rdb))        // List all users
	users.GET("/:id", GetUserHandler(db, rdb))      // Fetch one user
	users.POST("/", CreateUserHandler(db, rdb))     // Create a user
	users.DELETE("/:id", DeleteUserHandler(db, rdb)) // Delete a user
	users.PUT("/:id", UpdateUserHandler(db, rdb))   // Partially update a user
}
