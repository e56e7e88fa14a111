package api

import (
	"io"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"bank_backend/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	logrus.SetOutput(io.Discard) // Keep handler logs out of test output
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// newTestEnv spins up a gin router over a fresh in-memory database with
// foreign keys enforced, mirroring the MySQL schema the server migrates.
func newTestEnv(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := "file:" + name + "?mode=memory&cache=shared&_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection so every statement hits the same in-memory database
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Account{}))
	r := gin.New()
	RegisterRoutes(r, db, nil) // no Redis in tests; handlers run uncached
	return db, r
}

// doRequest runs one request through the router and records the response
func doRequest(r *gin.Engine, method, path, body, contentType string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

// seedUser inserts a user directly through the store
func seedUser(t *testing.T, db *gorm.DB, first, last, email string) domain.User {
	t.Helper()
	u := domain.User{FirstName: first, LastName: last, EmailID: email}
	require.NoError(t, db.Create(&u).Error)
	return u
}

// seedAccount inserts an account with a given balance directly through the store
func seedAccount(t *testing.T, db *gorm.DB, userID uint, balance int64) domain.Account {
	t.Helper()
	a := domain.Account{UserID: userID, Balance: balance}
	require.NoError(t, db.Create(&a).Error)
	return a
}

// fetchBalance reads an account balance back from the store
func fetchBalance(t *testing.T, db *gorm.DB, id uint) int64 {
	t.Helper()
	var account domain.Account
	require.NoError(t, db.First(&account, "i_id = ?", id).Error)
	return account.Balance
}
