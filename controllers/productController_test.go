package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/miracle-naturals/miracle-api/initializers"
	"github.com/miracle-naturals/miracle-api/models"
)

func TestGetProducts(t *testing.T) {
	server := setupTestServer(t)
	skincare := seedCategory(t, "Skincare")
	teas := seedCategory(t, "Teas")
	soap := seedProduct(t, skincare.ID, "Moringa Soap", 4.50, true)
	balm := seedProduct(t, skincare.ID, "Moringa Balm", 9.00, true)
	tea := seedProduct(t, teas.ID, "Moringa Tea", 6.25, true)
	seedProduct(t, skincare.ID, "Retired Scrub", 3.00, false)

	// Spread creation times so recency and price order disagree: newest first
	// is Tea, Balm, Soap while cheapest first is Soap, Tea, Balm.
	now := time.Now()
	for i, p := range []models.Product{soap, balm, tea} {
		stamp := now.Add(time.Duration(i-3) * time.Hour)
		if err := initializers.DB.Model(&p).Update("created_at", stamp).Error; err != nil {
			t.Fatalf("stamp product: %v", err)
		}
	}

	t.Run("never returns inactive products", func(t *testing.T) {
		w := performRequest(t, server, testRequest{method: "GET", path: "/products"})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		var products []models.Product
		decodeBody(t, w, &products)
		if len(products) != 3 {
			t.Fatalf("got %d products, want 3", len(products))
		}
		for _, p := range products {
			if p.Name == "Retired Scrub" {
				t.Error("inactive product returned from list endpoint")
			}
		}
	})

	t.Run("filters by category id", func(t *testing.T) {
		w := performRequest(t, server, testRequest{method: "GET", path: "/products?category=" + uintParam(teas.ID)})
		var products []models.Product
		decodeBody(t, w, &products)
		if len(products) != 1 || products[0].Name != "Moringa Tea" {
			t.Fatalf("got %+v, want only Moringa Tea", products)
		}
	})

	t.Run("search matches name or description case-insensitively", func(t *testing.T) {
		w := performRequest(t, server, testRequest{method: "GET", path: "/products?search=soap"})
		var products []models.Product
		decodeBody(t, w, &products)
		if len(products) != 1 || products[0].Name != "Moringa Soap" {
			t.Fatalf("got %+v, want only Moringa Soap", products)
		}
	})

	t.Run("orders newest first by default", func(t *testing.T) {
		w := performRequest(t, server, testRequest{method: "GET", path: "/products"})
		var products []models.Product
		decodeBody(t, w, &products)
		if len(products) != 3 {
			t.Fatalf("got %d products, want 3", len(products))
		}
		if products[0].Name != "Moringa Tea" || products[2].Name != "Moringa Soap" {
			t.Errorf("default order = %s, %s, %s; want Tea, Balm, Soap (newest first)",
				products[0].Name, products[1].Name, products[2].Name)
		}
	})

	t.Run("ordering by price replaces the recency default", func(t *testing.T) {
		w := performRequest(t, server, testRequest{method: "GET", path: "/products?ordering=price"})
		var products []models.Product
		decodeBody(t, w, &products)
		if len(products) != 3 {
			t.Fatalf("got %d products, want 3", len(products))
		}
		if products[0].Name != "Moringa Soap" || products[1].Name != "Moringa Tea" || products[2].Name != "Moringa Balm" {
			t.Errorf("ordering=price gave %s, %s, %s; want Soap, Tea, Balm (cheapest first)",
				products[0].Name, products[1].Name, products[2].Name)
		}
	})

	t.Run("ordering by -price is most expensive first", func(t *testing.T) {
		w := performRequest(t, server, testRequest{method: "GET", path: "/products?ordering=-price"})
		var products []models.Product
		decodeBody(t, w, &products)
		if len(products) != 3 || products[0].Name != "Moringa Balm" || products[2].Name != "Moringa Soap" {
			t.Fatalf("ordering=-price gave %+v, want Balm first and Soap last", products)
		}
	})

	t.Run("ignores unknown ordering values", func(t *testing.T) {
		w := performRequest(t, server, testRequest{method: "GET", path: "/products?ordering=stock"})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		var products []models.Product
		decodeBody(t, w, &products)
		if len(products) != 3 {
			t.Fatalf("got %d products, want 3", len(products))
		}
	})
}

func TestGetProductsByCategoryName(t *testing.T) {
	server := setupTestServer(t)
	skincare := seedCategory(t, "Skincare")
	teas := seedCategory(t, "Teas")
	seedProduct(t, skincare.ID, "Moringa Soap", 4.50, true)
	seedProduct(t, teas.ID, "Moringa Tea", 6.25, true)
	seedProduct(t, skincare.ID, "Retired Scrub", 3.00, false)

	fetch := func(t *testing.T, name string) []models.Product {
		w := performRequest(t, server, testRequest{method: "GET", path: "/products-by-category/" + name})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		var products []models.Product
		decodeBody(t, w, &products)
		return products
	}

	t.Run("category name match is case-insensitive", func(t *testing.T) {
		upper := fetch(t, "Skincare")
		lower := fetch(t, "skincare")
		if len(upper) != 1 || len(lower) != 1 || upper[0].ID != lower[0].ID {
			t.Fatalf("Skincare gave %+v, skincare gave %+v; want identical single result", upper, lower)
		}
	})

	t.Run("all bypasses the category filter regardless of case", func(t *testing.T) {
		for _, name := range []string{"all", "All", "ALL"} {
			products := fetch(t, name)
			if len(products) != 2 {
				t.Errorf("%q returned %d products, want 2 (every active product)", name, len(products))
			}
		}
	})

	t.Run("unknown category is a 404", func(t *testing.T) {
		w := performRequest(t, server, testRequest{method: "GET", path: "/products-by-category/nope"})
		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", w.Code)
		}
	})
}

func TestProductCRUD(t *testing.T) {
	server := setupTestServer(t)
	skincare := seedCategory(t, "Skincare")

	t.Run("create requires an existing category", func(t *testing.T) {
		w := performRequest(t, server, testRequest{
			method: "POST",
			path:   "/products",
			body:   map[string]any{"categoryId": 999, "name": "Ghost", "price": 1.0},
		})
		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", w.Code)
		}
	})

	t.Run("create then retrieve", func(t *testing.T) {
		w := performRequest(t, server, testRequest{
			method: "POST",
			path:   "/products",
			body:   map[string]any{"categoryId": skincare.ID, "name": "Moringa Oil", "price": 12.5, "stock": 10},
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
		}
		var created models.Product
		decodeBody(t, w, &created)

		w = performRequest(t, server, testRequest{method: "GET", path: "/products/" + uintParam(created.ID)})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		var fetched models.Product
		decodeBody(t, w, &fetched)
		if fetched.Name != "Moringa Oil" || fetched.Category.Name != "Skincare" {
			t.Errorf("fetched %+v, want Moringa Oil in Skincare", fetched)
		}
	})

	t.Run("update rejects an unknown category", func(t *testing.T) {
		product := seedProduct(t, skincare.ID, "Moringa Powder", 7.0, true)

		w := performRequest(t, server, testRequest{
			method: "PUT",
			path:   "/products/" + uintParam(product.ID),
			body:   map[string]any{"categoryId": 9999, "name": "Moringa Powder", "price": 7.0},
		})
		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404: %s", w.Code, w.Body.String())
		}

		var stored models.Product
		if err := initializers.DB.First(&stored, product.ID).Error; err != nil {
			t.Fatalf("reload product: %v", err)
		}
		if stored.CategoryID != skincare.ID {
			t.Errorf("categoryId = %d, want unchanged %d", stored.CategoryID, skincare.ID)
		}
	})

	t.Run("update with a valid category persists", func(t *testing.T) {
		product := seedProduct(t, skincare.ID, "Moringa Caps", 15.0, true)
		teas := seedCategory(t, "Loose Teas")

		w := performRequest(t, server, testRequest{
			method: "PUT",
			path:   "/products/" + uintParam(product.ID),
			body:   map[string]any{"categoryId": teas.ID, "name": "Moringa Caps", "price": 13.0},
		})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
		}
		var updated models.Product
		decodeBody(t, w, &updated)
		if updated.CategoryID != teas.ID || updated.Price != 13.0 || updated.Category.Name != "Loose Teas" {
			t.Errorf("updated = %+v, want price 13 in Loose Teas", updated)
		}
	})

	t.Run("retrieving an unknown product is a 404", func(t *testing.T) {
		w := performRequest(t, server, testRequest{method: "GET", path: "/products/4242"})
		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", w.Code)
		}
	})
}
