package api

import (
	"net/http"

	"perfume-order-api/internal/domain/catalog"
	"perfume-order-api/internal/domain/customer"
	"perfume-order-api/internal/domain/order"
	resdto "perfume-order-api/internal/handler/dto/response"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

type EnumHandler struct{}

func NewEnumHandler() *EnumHandler {
	return &EnumHandler{}
}

// @Summary List enums
// @Description Perfume categories, genders, roles and order statuses
// @Tags enums
// @Produce json
// @Success 200 {object} resdto.EnumsResponse
// @Router /api/enums [get]
func (h *EnumHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.EnumsResponse{
		Categories:    lo.Map(catalog.AllCategories(), func(v catalog.Category, _ int) string { return string(v) }),
		Genders:       lo.Map(catalog.AllGenders(), func(v catalog.Gender, _ int) string { return string(v) }),
		Roles:         lo.Map(customer.AllRoles(), func(v customer.Role, _ int) string { return string(v) }),
		OrderStatuses: lo.Map(order.AllStatuses(), func(v order.Status, _ int) string { return string(v) }),
	})
}
