package api

import (
	"net/http" // HTTP status codes
	"strconv"  // String conversion
	"time"     // Timestamps for operation logs

	"bank_backend/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin" // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"             // GORM ORM library

	"github.com/sirupsen/logrus" // Logging library
)

// operationParams parses the id and amount path parameters. Both must be
// numeric and the amount strictly positive.
func operationParams(c *gin.Context) (int64, int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64) // Account id
	if err != nil {
		return 0, 0, domain.ErrInvalidInput // Non-numeric id
	}
	amount, err := strconv.ParseInt(c.Param("amount"), 10, 64) // Operation amount
	if err != nil || amount <= 0 {
		return 0, 0, domain.ErrInvalidInput // Non-numeric or non-positive amount
	}
	return id, amount, nil
}

// AddFundsHandler credits an account in a single statement
func AddFundsHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, amount, err := operationParams(c) // Parse and validate parameters
		if err != nil {
			fail(c, err) // Invalid parameters are a bad request
			return
		}
		// Atomic increment; one statement keeps concurrent adds safe
		res := db.Model(&domain.Account{}).
			Where("i_id = ?", id).
			Update("i_balance", gorm.Expr("i_balance + ?", amount))
		if res.Error != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": id,                // Target account
				"amount":     amount,            // Credit amount
				"error":      res.Error.Error(), // Error message
			}).Error("Add funds failed")
			fail(c, res.Error) // Unexpected store failure maps to 500
			return
		}
		// No matching account reports 401 on the wire
		if res.RowsAffected != 1 {
			fail(c, domain.ErrNotPermitted)
			return
		}
		// Log successful credit
		logrus.WithFields(logrus.Fields{
			"account_id": id,                              // Target account
			"amount":     amount,                          // Credit amount
			"type":       "add",                           // Operation type
			"timestamp":  time.Now().Format(time.RFC3339), // Current timestamp
		}).Info("Balance credited")
		invalidateAccountCache(rdb, strconv.FormatInt(id, 10)) // Invalidate the account cache
		c.Status(http.StatusOK)                                // Operation applied
	}
}

// WithdrawFundsHandler debits an account. The balance check and the debit
// are one conditional UPDATE checked by affected-row count, so concurrent
// withdrawals can never overdraw. A withdrawal that would leave the balance
// at exactly zero is rejected, matching the API's historical boundary.
func WithdrawFundsHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, amount, err := operationParams(c) // Parse and validate parameters
		if err != nil {
			fail(c, err) // Invalid parameters are a bad request
			return
		}
		// Conditional decrement; the WHERE clause enforces i_balance - amount > 0
		res := db.Model(&domain.Account{}).
			Where("i_id = ? AND i_balance - ? > 0", id, amount).
			Update("i_balance", gorm.Expr("i_balance - ?", amount))
		if res.Error != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": id,                // Target account
				"amount":     amount,            // Debit amount
				"error":      res.Error.Error(), // Error message
			}).Error("Withdraw failed")
			fail(c, res.Error) // Unexpected store failure maps to 500
			return
		}
		// Missing account and insufficient balance both report 401 on the wire
		if res.RowsAffected != 1 {
			fail(c, domain.ErrNotPermitted)
			return
		}
		// Log successful debit
		logrus.WithFields(logrus.Fields{
			"account_id": id,                              // Target account
			"amount":     amount,                          // Debit amount
			"type":       "withdraw",                      // Operation type
			"timestamp":  time.Now().Format(time.RFC3339), // Current timestamp
		}).Info("Balance debited")
		invalidateAccountCache(rdb, strconv.FormatInt(id, 10)) // Invalidate the account cache
		c.Status(http.StatusOK)                                // Operation applied
	}
}
