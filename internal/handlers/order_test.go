package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"backend/internal/middleware"
	"backend/internal/models"
	"backend/internal/validate"
)

func TestCreateOrderEmptyItemsFailsValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/orders/", validate.Fields(CreateOrderRules...), CreateOrder(nil))

	body := `{"items": [], "tax": "50", "total": "550"}`
	req := httptest.NewRequest("POST", "/api/orders/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty items, got %d", w.Code)
	}

	var resp struct {
		Errors []validate.FieldError `json:"errors"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp.Errors) != 1 || resp.Errors[0].Msg != "Items Required" {
		t.Fatalf("expected Items Required, got %+v", resp.Errors)
	}
}

func TestListMyOrdersScopedToOwnerEmail(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("find filtered by the caller's email", func(mt *mtest.T) {
		userID := primitive.NewObjectID()
		userDoc := bson.D{
			{Key: "_id", Value: userID},
			{Key: "name", Value: "Ravi"},
			{Key: "email", Value: "owner@example.com"},
			{Key: "password", Value: "hash"},
		}
		orderDoc := bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "name", Value: "Ravi"},
			{Key: "email", Value: "owner@example.com"},
			{Key: "mobile", Value: "9876543210"},
			{Key: "total", Value: "550"},
			{Key: "tax", Value: "50"},
			{Key: "items", Value: bson.A{bson.D{
				{Key: "name", Value: "Tee"},
				{Key: "brand", Value: "X"},
				{Key: "price", Value: 500.0},
				{Key: "qty", Value: 1},
			}}},
		}
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "shopping.users", mtest.FirstBatch, userDoc),
			mtest.CreateCursorResponse(0, "shopping.orders", mtest.FirstBatch, orderDoc),
		)

		gin.SetMode(gin.TestMode)
		r := gin.New()
		r.GET("/api/orders/all", func(c *gin.Context) { c.Set("userId", userID) },
			ListMyOrders(mt.DB))

		req := httptest.NewRequest("GET", "/api/orders/all", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			mt.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp struct {
			Orders []models.Order `json:"orders"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			mt.Fatalf("invalid response body: %v", err)
		}
		if len(resp.Orders) != 1 || resp.Orders[0].Email != "owner@example.com" {
			mt.Fatalf("unexpected orders: %+v", resp.Orders)
		}

		// the query sent to the store must be scoped to the owner's email,
		// never unfiltered
		scoped := false
		for {
			evt := mt.GetStartedEvent()
			if evt == nil {
				break
			}
			if evt.CommandName != "find" {
				continue
			}
			coll, _ := evt.Command.Lookup("find").StringValueOK()
			if coll != "orders" {
				continue
			}
			email, ok := evt.Command.Lookup("filter", "email").StringValueOK()
			if !ok || email != "owner@example.com" {
				mt.Fatalf("orders find not scoped to owner email: %s", evt.Command)
			}
			scoped = true
		}
		if !scoped {
			mt.Fatal("no find command recorded against the orders collection")
		}
	})
}

func TestCreateOrderStoreFailureIsInternalError(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("user lookup failure", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    11600,
			Name:    "InterruptedAtShutdown",
			Message: "interrupted at shutdown",
		}))

		gin.SetMode(gin.TestMode)
		r := gin.New()
		r.POST("/api/orders/", func(c *gin.Context) { c.Set("userId", primitive.NewObjectID()) },
			validate.Fields(CreateOrderRules...), CreateOrder(mt.DB))

		body := `{"items": [{"name": "Tee", "brand": "X", "price": 500, "qty": 1}], "tax": "50", "total": "550"}`
		req := httptest.NewRequest("POST", "/api/orders/", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			mt.Fatalf("expected 500 for a store failure, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestCreateOrderRejectsUnauthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/orders/", middleware.Authenticate("test-secret"),
		validate.Fields(CreateOrderRules...), CreateOrder(nil))

	body := `{"items": [{"name": "Tee", "brand": "X", "price": 500, "qty": 1}], "tax": "50", "total": "550"}`
	req := httptest.NewRequest("POST", "/api/orders/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a token, got %d", w.Code)
	}
}
