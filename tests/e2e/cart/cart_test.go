//go:build e2e

package cart_test

import (
	"net/http"
	"testing"

	"perfume-order-api/internal/domain/customer"
	"perfume-order-api/internal/handler/dto/request"
	"perfume-order-api/internal/handler/dto/response"
	"perfume-order-api/tests/common/authtest"
	"perfume-order-api/tests/common/dbtest"
	"perfume-order-api/tests/common/httptest"
	"perfume-order-api/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	cartURL      = "/api/cart"
	cartItemsURL = "/api/cart/items"
	undoURL      = "/api/cart/undo"
	redoURL      = "/api/cart/redo"
)

type CartSuite struct {
	e2e.SharedSuite
}

func (s *CartSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestCartSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(CartSuite))
}

func (s *CartSuite) login(customerID uuid.UUID) string {
	return authtest.NewJWTHelper(s.Config.JWT).GenerateToken(s.T(), customerID, customer.RoleUser)
}

// =============================================================================
// TestCartLifecycle - add, merge, modify, remove against Postgres
// =============================================================================

func (s *CartSuite) TestCartLifecycle() {
	s.Run("Normal case: add merges quantities and view reports the total", func() {
		t := s.T()
		customerID := dbtest.CreateTestCustomer(t, s.DB, string(customer.RoleUser))
		productID := dbtest.CreateTestProduct(t, s.DB, "50.00", 10)
		token := s.login(customerID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, cartItemsURL, request.AddCartItemRequest{ProductID: productID, Quantity: 2}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, cartItemsURL, request.AddCartItemRequest{ProductID: productID, Quantity: 3}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, cartURL, nil, token)
		var view response.CartResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &view)
		require.Len(t, view.Items, 1)
		s.Equal(5, view.Items[0].Quantity)
		s.Equal("250", view.Total.String())
		s.Equal(1, view.ItemCount)
	})

	s.Run("Normal case: modify and remove keep the stored cart in sync", func() {
		t := s.T()
		customerID := dbtest.CreateTestCustomer(t, s.DB, string(customer.RoleUser))
		a := dbtest.CreateTestProduct(t, s.DB, "10.00", 10)
		b := dbtest.CreateTestProduct(t, s.DB, "20.00", 10)
		token := s.login(customerID)

		httptest.PerformRequest(t, s.Router, http.MethodPost, cartItemsURL, request.AddCartItemRequest{ProductID: a, Quantity: 1}, token)
		httptest.PerformRequest(t, s.Router, http.MethodPost, cartItemsURL, request.AddCartItemRequest{ProductID: b, Quantity: 1}, token)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, cartItemsURL, request.UpdateCartItemRequest{ProductID: a, Quantity: 4}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, cartItemsURL+"/"+b.String(), nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		s.Equal(1, dbtest.CountRows(t, s.DB, "cart_items"))
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, cartURL, nil, token)
		var view response.CartResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &view)
		s.Equal("40", view.Total.String())
	})

	s.Run("Error case: stock shortfall leaves the cart unchanged", func() {
		t := s.T()
		customerID := dbtest.CreateTestCustomer(t, s.DB, string(customer.RoleUser))
		productID := dbtest.CreateTestProduct(t, s.DB, "10.00", 2)
		token := s.login(customerID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, cartItemsURL, request.AddCartItemRequest{ProductID: productID, Quantity: 3}, token)

		httptest.AssertErrorResponse(t, w, http.StatusConflict, "insufficient stock")
		s.Equal(0, dbtest.CountRows(t, s.DB, "cart_items"))
	})

	s.Run("Error case: unknown product is 404", func() {
		t := s.T()
		customerID := dbtest.CreateTestCustomer(t, s.DB, string(customer.RoleUser))
		token := s.login(customerID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, cartItemsURL, request.AddCartItemRequest{ProductID: uuid.New(), Quantity: 1}, token)

		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "product not found")
	})

	s.Run("Error case: cart endpoints require a token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, cartURL, nil, "")
		s.Equal(http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestUndoRedo - history drives the stored cart
// =============================================================================

func (s *CartSuite) TestUndoRedo() {
	s.Run("Normal case: undo restores the stored cart and redo reapplies", func() {
		t := s.T()
		customerID := dbtest.CreateTestCustomer(t, s.DB, string(customer.RoleUser))
		a := dbtest.CreateTestProduct(t, s.DB, "10.00", 10)
		b := dbtest.CreateTestProduct(t, s.DB, "20.00", 10)
		token := s.login(customerID)

		httptest.PerformRequest(t, s.Router, http.MethodPost, cartItemsURL, request.AddCartItemRequest{ProductID: a, Quantity: 1}, token)
		httptest.PerformRequest(t, s.Router, http.MethodPost, cartItemsURL, request.AddCartItemRequest{ProductID: b, Quantity: 1}, token)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, undoURL, nil, token)
		var undone response.CartResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &undone)
		require.Len(t, undone.Items, 1)
		s.Equal(a.String(), undone.Items[0].ProductID)
		s.Equal(1, dbtest.CountRows(t, s.DB, "cart_items"))

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, undoURL, nil, token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &undone)
		s.Empty(undone.Items)
		s.Equal(0, dbtest.CountRows(t, s.DB, "cart_items"))

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, undoURL, nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Nothing to undo")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, redoURL, nil, token)
		var redone response.CartResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &redone)
		s.Len(redone.Items, 1)
		s.Equal(1, dbtest.CountRows(t, s.DB, "cart_items"))
	})

	s.Run("Normal case: a new change after undo discards the redo branch", func() {
		t := s.T()
		customerID := dbtest.CreateTestCustomer(t, s.DB, string(customer.RoleUser))
		a := dbtest.CreateTestProduct(t, s.DB, "10.00", 10)
		b := dbtest.CreateTestProduct(t, s.DB, "20.00", 10)
		token := s.login(customerID)

		httptest.PerformRequest(t, s.Router, http.MethodPost, cartItemsURL, request.AddCartItemRequest{ProductID: a, Quantity: 1}, token)
		httptest.PerformRequest(t, s.Router, http.MethodPost, undoURL, nil, token)
		httptest.PerformRequest(t, s.Router, http.MethodPost, cartItemsURL, request.AddCartItemRequest{ProductID: b, Quantity: 2}, token)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, redoURL, nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Nothing to redo")
	})
}
