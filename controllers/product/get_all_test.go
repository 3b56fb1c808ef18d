package productcontroller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shoplane/storefront-api/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func listRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/products", GetProducts(db, nil))
	return r
}

func seed(t *testing.T, db *gorm.DB, products ...models.Product) {
	t.Helper()
	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			t.Fatalf("failed to seed product: %v", err)
		}
	}
}

func listProducts(t *testing.T, r *gin.Engine, query string) []models.Product {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products"+query, nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var products []models.Product
	if err := json.Unmarshal(w.Body.Bytes(), &products); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	return products
}

func TestGetProductsSearchIsCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)
	seed(t, db,
		models.Product{Name: "Walnut Desk", Price: 200, Stock: 3},
		models.Product{Name: "Office Chair", Description: "pairs with any desk", Price: 90, Stock: 5},
		models.Product{Name: "Floor Lamp", Price: 45, Stock: 8},
	)
	r := listRouter(db)

	got := listProducts(t, r, "?search=DESK")
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
}

func TestGetProductsFeaturedFilter(t *testing.T) {
	db := setupTestDB(t)
	seed(t, db,
		models.Product{Name: "A", Price: 10, Featured: true},
		models.Product{Name: "B", Price: 20},
	)
	r := listRouter(db)

	got := listProducts(t, r, "?featured=true")
	if len(got) != 1 || got[0].Name != "A" {
		t.Errorf("featured filter returned %+v", got)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products?featured=banana", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for invalid featured", w.Code)
	}
}

func TestGetProductsPriceRange(t *testing.T) {
	db := setupTestDB(t)
	seed(t, db,
		models.Product{Name: "Cheap", Price: 5},
		models.Product{Name: "Mid", Price: 50},
		models.Product{Name: "Expensive", Price: 500},
	)
	r := listRouter(db)

	got := listProducts(t, r, "?min_price=10&max_price=100")
	if len(got) != 1 || got[0].Name != "Mid" {
		t.Errorf("price range returned %+v", got)
	}
}

func TestGetProductsCategoryFilter(t *testing.T) {
	db := setupTestDB(t)
	seed(t, db,
		models.Product{Name: "A", Price: 10, Category: "lighting"},
		models.Product{Name: "B", Price: 20, Category: "seating"},
	)
	r := listRouter(db)

	got := listProducts(t, r, "?category=lighting")
	if len(got) != 1 || got[0].Name != "A" {
		t.Errorf("category filter returned %+v", got)
	}
}

func TestGetProductsSortWhitelist(t *testing.T) {
	db := setupTestDB(t)
	seed(t, db,
		models.Product{Name: "B", Price: 20},
		models.Product{Name: "A", Price: 10},
	)
	r := listRouter(db)

	got := listProducts(t, r, "?sort_by=price&order=asc")
	if len(got) != 2 || got[0].Name != "A" {
		t.Errorf("expected ascending price order, got %+v", got)
	}

	// Unknown column must not reach ORDER BY.
	got = listProducts(t, r, "?sort_by=no_such_column&order=asc")
	if len(got) != 2 {
		t.Errorf("expected fallback sort to return all rows, got %d", len(got))
	}
}
