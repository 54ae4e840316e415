package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/miracle-naturals/miracle-api/initializers"
	"github.com/miracle-naturals/miracle-api/models"
	"github.com/miracle-naturals/miracle-api/routes"
)

// setupTestServer wires the full route table against an in-memory database
// and an in-process redis, replacing the package globals for the duration of
// the test.
func setupTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sqlite: %v", err)
	}
	// A fresh :memory: database comes with every new connection.
	sqlDB.SetMaxOpenConns(1)
	initializers.DB = db
	initializers.SyncDatabase()

	mr := miniredis.RunT(t)
	initializers.Redis = redis.NewClient(&redis.Options{Addr: mr.Addr()})

	server := gin.New()
	routes.DefaultRoutes(server)
	routes.AuthRoutes(server)
	routes.ProductRoutes(server)
	routes.CartRoutes(server)
	routes.MediaRoutes(server)
	return server
}

type testRequest struct {
	method  string
	path    string
	body    any
	token   string
	cookies []*http.Cookie
}

func performRequest(t *testing.T, server *gin.Engine, r testRequest) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if r.body != nil {
		data, err := json.Marshal(r.body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(r.method, r.path, reader)
	req.Header.Set("Content-Type", "application/json")
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}
	for _, cookie := range r.cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func seedCategory(t *testing.T, name string) models.Category {
	t.Helper()
	category := models.Category{Name: name, Description: name + " products"}
	if err := initializers.DB.Create(&category).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	return category
}

func seedProduct(t *testing.T, categoryID uint, name string, price float64, active bool) models.Product {
	t.Helper()
	product := models.Product{
		CategoryID:  categoryID,
		Name:        name,
		Description: "about " + name,
		Price:       price,
		Stock:       50,
		IsActive:    true,
	}
	if err := initializers.DB.Create(&product).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	if !active {
		if err := initializers.DB.Model(&product).Update("is_active", false).Error; err != nil {
			t.Fatalf("deactivate product: %v", err)
		}
	}
	return product
}

func uintParam(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "cart_session" {
			return cookie
		}
	}
	t.Fatal("no cart_session cookie in response")
	return nil
}
