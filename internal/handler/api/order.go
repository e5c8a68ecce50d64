package api

import (
	"net/http"

	reqdto "perfume-order-api/internal/handler/dto/request"
	resdto "perfume-order-api/internal/handler/dto/response"
	"perfume-order-api/internal/handler/httperr"
	"perfume-order-api/internal/handler/middleware"
	"perfume-order-api/internal/usecase/commands"
	"perfume-order-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	cmds commands.OrderCommands
	q    queries.OrderQueries
}

func NewOrderHandler(cmds commands.OrderCommands, q queries.OrderQueries) *OrderHandler {
	return &OrderHandler{cmds: cmds, q: q}
}

// @Summary Checkout
// @Description Turn the authenticated customer's cart into an order shipped to one of their addresses
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CheckoutRequest true "Shipping address"
// @Success 201 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} map[string]string
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/orders/checkout [post]
func (h *OrderHandler) Checkout(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.Checkout(c.Request.Context(), customerID, req.ToCommand())
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondCreated(c, view)
}

// @Summary Guest checkout
// @Description Place an order without an account using contact details and an explicit item list
// @Tags orders
// @Accept json
// @Produce json
// @Param request body reqdto.GuestCheckoutRequest true "Guest order"
// @Success 201 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/orders/guest-checkout [post]
func (h *OrderHandler) GuestCheckout(c *gin.Context) {
	var req reqdto.GuestCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.GuestCheckout(c.Request.Context(), req.ToCommand())
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondCreated(c, view)
}

// @Summary Order history
// @Description List the authenticated customer's orders, newest first
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.OrderResponse
// @Failure 401 {object} map[string]string
// @Router /api/orders/history [get]
func (h *OrderHandler) History(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	views, err := h.q.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondList(c, views)
}

// @Summary Get order
// @Description Get an order by ID. Customers only see their own orders.
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} map[string]string
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order id", nil)
		return
	}
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	role, _ := middleware.GetRole(c)

	view, err := h.q.GetByID(c.Request.Context(), id, customerID, role)
	if err != nil {
		respondError(c, err)
		return
	}
	res, err := resdto.FromOrderView(view)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List all orders
// @Description Admin only
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.OrderResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /api/orders [get]
func (h *OrderHandler) ListAll(c *gin.Context) {
	views, err := h.q.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondList(c, views)
}

// @Summary Update order status
// @Description Admin only. Any listed status may follow any other.
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body reqdto.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} httperr.Response
// @Router /api/orders/{id}/status [put]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order id", nil)
		return
	}
	var req reqdto.UpdateOrderStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	view, err := h.cmds.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	res, err := resdto.FromOrderView(view)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *OrderHandler) respondCreated(c *gin.Context, view *queries.OrderView) {
	res, err := resdto.FromOrderView(view)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Location", "/api/orders/"+res.ID)
	c.JSON(http.StatusCreated, res)
}

func (h *OrderHandler) respondList(c *gin.Context, views []*queries.OrderView) {
	res, err := resdto.FromOrderViews(views)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
