//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"perfume-order-api/internal/domain/cart"
	"perfume-order-api/internal/domain/customer"
	"perfume-order-api/internal/domain/history"
	"perfume-order-api/internal/handler/api"
	resdto "perfume-order-api/internal/handler/dto/response"
	"perfume-order-api/internal/pkg/errs"
	"perfume-order-api/internal/usecase/commands"
	"perfume-order-api/internal/usecase/queries"
	"perfume-order-api/tests/common/builder"
	"perfume-order-api/tests/common/httptest"
	"perfume-order-api/tests/common/testutil"
	commandsmock "perfume-order-api/tests/mock/commands"
	queriesmock "perfume-order-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CartHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCartCommands
	mockQueries  *queriesmock.MockCartQueries
	handler      *api.CartHandler
	customerID   uuid.UUID
}

func (s *CartHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCartCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCartQueries(s.mockCtrl)
	s.handler = api.NewCartHandler(s.mockCommands, s.mockQueries)
	s.customerID = uuid.New()

	authMiddleware := fakeAuth(s.customerID, customer.RoleUser)

	s.router.GET("/cart", authMiddleware, s.handler.View)
	s.router.POST("/cart/items", authMiddleware, s.handler.AddItem)
	s.router.PUT("/cart/items", authMiddleware, s.handler.UpdateItem)
	s.router.DELETE("/cart/items/:productId", authMiddleware, s.handler.RemoveItem)
	s.router.POST("/cart/undo", authMiddleware, s.handler.Undo)
	s.router.POST("/cart/redo", authMiddleware, s.handler.Redo)
}

func (s *CartHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCartHandlerSuite(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}

// ================================================================================
// TestAddItem
// ================================================================================

func (s *CartHandlerTestSuite) TestAddItem() {
	url := "/cart/items"
	line := builder.NewCartLineBuilder().BuildDomain()
	reqBody := builder.NewCartLineBuilder().With(func(b *builder.CartLineBuilder) {
		b.ProductID = line.ProductID
		b.Quantity = line.Quantity
	}).BuildAddRequestDTO()

	s.Run("success: returns the current lines with total", func() {
		s.mockCommands.EXPECT().
			AddItem(gomock.Any(), s.customerID, commands.AddItemRequest{ProductID: line.ProductID, Quantity: line.Quantity}).
			Return([]cart.Line{line}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Items, 1)
		s.Equal(line.ProductID.String(), body.Items[0].ProductID)
		s.True(line.Subtotal().Equal(body.Total))
		s.Equal(1, body.ItemCount)
	})

	validation := []struct {
		name   string
		mutate func(m map[string]any)
	}{
		{name: "missing product_id", mutate: testutil.Field("product_id", nil)},
		{name: "missing quantity", mutate: testutil.Field("quantity", nil)},
		{name: "zero quantity", mutate: testutil.Field("quantity", 0)},
		{name: "negative quantity", mutate: testutil.Field("quantity", -2)},
		{name: "quantity above the limit", mutate: testutil.Field("quantity", 10001)},
		{name: "malformed product_id", mutate: testutil.Field("product_id", "not-a-uuid")},
	}
	for _, tc := range validation {
		s.Run("error: 400 on "+tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		})
	}

	s.Run("error: 404 when the product does not exist", func() {
		s.mockCommands.EXPECT().AddItem(gomock.Any(), s.customerID, gomock.Any()).
			Return(nil, errs.Wrap(commands.ErrProductNotFound, "add item"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "product not found")
	})

	s.Run("error: 409 with stock detail when stock is short", func() {
		stockErr := &commands.InsufficientStockError{ProductID: line.ProductID, ProductName: line.Name, Requested: 9, Available: 2}
		s.mockCommands.EXPECT().AddItem(gomock.Any(), s.customerID, gomock.Any()).Return(nil, stockErr)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, line.Name)
		s.Contains(rec.Body.String(), `"available":2`)
		s.Contains(rec.Body.String(), `"requested":9`)
	})

	s.Run("error: 500 on unexpected failure", func() {
		s.mockCommands.EXPECT().AddItem(gomock.Any(), s.customerID, gomock.Any()).
			Return(nil, errs.Wrap(errs.ErrDatabaseOperationFailed, "replace lines"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestUpdateItem / TestRemoveItem
// ================================================================================

func (s *CartHandlerTestSuite) TestUpdateItem() {
	line := builder.NewCartLineBuilder().BuildDomain()
	reqBody := builder.NewCartLineBuilder().With(func(b *builder.CartLineBuilder) {
		b.ProductID = line.ProductID
		b.Quantity = 4
	}).BuildUpdateRequestDTO()

	s.Run("success: passes the absolute quantity through", func() {
		line.Quantity = 4
		s.mockCommands.EXPECT().
			UpdateItem(gomock.Any(), s.customerID, commands.UpdateItemRequest{ProductID: line.ProductID, Quantity: 4}).
			Return([]cart.Line{line}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/cart/items", reqBody, "bearer-token")

		var body resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(4, body.Items[0].Quantity)
	})

	s.Run("error: 400 on quantity above the limit", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("quantity", 10001))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/cart/items", body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 404 when the line is not in the cart", func() {
		s.mockCommands.EXPECT().UpdateItem(gomock.Any(), s.customerID, gomock.Any()).Return(nil, cart.ErrLineNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/cart/items", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "product is not in the cart")
	})
}

func (s *CartHandlerTestSuite) TestRemoveItem() {
	productID := uuid.New()

	s.Run("success: returns remaining lines", func() {
		s.mockCommands.EXPECT().RemoveItem(gomock.Any(), s.customerID, productID).Return([]cart.Line{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cart/items/"+productID.String(), nil, "bearer-token")

		var body resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body.Items)
		s.Equal(0, body.ItemCount)
	})

	s.Run("error: 400 on malformed product id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cart/items/xyz", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid product id")
	})
}

// ================================================================================
// TestView
// ================================================================================

func (s *CartHandlerTestSuite) TestView() {
	s.Run("success: returns items, total and item count", func() {
		a := builder.NewCartLineBuilder().With(func(b *builder.CartLineBuilder) {
			b.Quantity = 2
			b.UnitPrice = decimal.RequireFromString("45.50")
		}).BuildView()
		b := builder.NewCartLineBuilder().With(func(b *builder.CartLineBuilder) {
			b.Quantity = 1
			b.UnitPrice = decimal.RequireFromString("10.00")
		}).BuildView()
		s.mockQueries.EXPECT().View(gomock.Any(), s.customerID).Return(&queries.CartView{
			Items:     []queries.CartLineView{a, b},
			Total:     decimal.RequireFromString("101.00"),
			ItemCount: 2,
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cart", nil, "bearer-token")

		var body resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Items, 2)
		s.Equal("101", body.Total.String())
		s.Equal(2, body.ItemCount)
		s.Equal("91", body.Items[0].Subtotal.String())
	})
}

// ================================================================================
// TestUndoRedo
// ================================================================================

func (s *CartHandlerTestSuite) TestUndoRedo() {
	line := builder.NewCartLineBuilder().BuildDomain()

	s.Run("success: undo returns the restored lines", func() {
		s.mockCommands.EXPECT().Undo(gomock.Any(), s.customerID).Return([]cart.Line{line}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart/undo", nil, "bearer-token")

		var body resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Items, 1)
	})

	s.Run("error: 409 when there is nothing to undo", func() {
		s.mockCommands.EXPECT().Undo(gomock.Any(), s.customerID).Return(nil, history.ErrNothingToUndo)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart/undo", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Nothing to undo")
	})

	s.Run("error: 409 when there is nothing to redo", func() {
		s.mockCommands.EXPECT().Redo(gomock.Any(), s.customerID).Return(nil, history.ErrNothingToRedo)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart/redo", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Nothing to redo")
	})
}

func fakeAuth(customerID uuid.UUID, role customer.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("customer_id", customerID)
		c.Set("customer_role", role)
		c.Next()
	}
}
