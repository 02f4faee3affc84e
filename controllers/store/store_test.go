package storeController_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"storerate/config"
	"storerate/database"
	"storerate/middleware"
	"storerate/models"
	storeRoutes "storerate/routers/storeRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupApp(t *testing.T) *fiber.App {
	config.AppConfig = &config.Config{
		JWTKey:    "test-secret",
		SaltRound: bcrypt.MinCost,
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Store{}, &models.Rating{}))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	storeRoutes.SetupStoreRoutes(app)
	return app
}

func normalToken(t *testing.T) string {
	user := models.User{Name: "Alice", Email: "alice@example.com", Password: "x", Role: models.RoleNormal}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)
	return token
}

func listStores(t *testing.T, app *fiber.App, path, token string) (*http.Response, []interface{}) {
	req := httptest.NewRequest("GET", path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]interface{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &decoded))

	if resp.StatusCode != fiber.StatusOK {
		return resp, nil
	}
	data, ok := decoded["data"].(map[string]interface{})
	require.True(t, ok)
	stores, ok := data["stores"].([]interface{})
	require.True(t, ok)
	return resp, stores
}

func TestListStoresWithAverages(t *testing.T) {
	app := setupApp(t)
	token := normalToken(t)

	rated := models.Store{Name: "Rated Store", OwnerID: 50}
	unrated := models.Store{Name: "Unrated Store", OwnerID: 51}
	require.NoError(t, database.Database.Db.Create(&rated).Error)
	require.NoError(t, database.Database.Db.Create(&unrated).Error)

	require.NoError(t, database.Database.Db.Create(&models.Rating{UserID: 1, StoreID: rated.ID, Value: 3}).Error)
	require.NoError(t, database.Database.Db.Create(&models.Rating{UserID: 2, StoreID: rated.ID, Value: 5}).Error)

	resp, stores := listStores(t, app, "/stores", token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Len(t, stores, 2)

	byName := map[string]map[string]interface{}{}
	for _, s := range stores {
		row := s.(map[string]interface{})
		byName[row["name"].(string)] = row
	}

	assert.InDelta(t, 4.0, byName["Rated Store"]["averageRating"].(float64), 1e-9)
	assert.Equal(t, float64(2), byName["Rated Store"]["ratingCount"])

	assert.Nil(t, byName["Unrated Store"]["averageRating"], "unrated store must carry null, not 0")
	assert.Equal(t, float64(0), byName["Unrated Store"]["ratingCount"])
}

func TestListStoresSearch(t *testing.T) {
	app := setupApp(t)
	token := normalToken(t)

	require.NoError(t, database.Database.Db.Create(&models.Store{Name: "Corner Shop", Address: "High Street", OwnerID: 50}).Error)
	require.NoError(t, database.Database.Db.Create(&models.Store{Name: "Book Nook", Address: "Mill Lane", OwnerID: 51}).Error)

	resp, stores := listStores(t, app, "/stores?q=Corner", token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Len(t, stores, 1)
	assert.Equal(t, "Corner Shop", stores[0].(map[string]interface{})["name"])

	// Address matches too
	resp, stores = listStores(t, app, "/stores?q=Mill", token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Len(t, stores, 1)
	assert.Equal(t, "Book Nook", stores[0].(map[string]interface{})["name"])
}

func TestListStoresRequiresAuth(t *testing.T) {
	app := setupApp(t)

	resp, _ := listStores(t, app, "/stores", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
