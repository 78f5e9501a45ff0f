package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rupeshmutkule/Shophub/models"
	"github.com/rupeshmutkule/Shophub/services"
)

type OrderController struct {
	service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{service: service}
}

// CreateOrder godoc
// @Summary Place an order
// @Description Create a new order from the checkout form. The total is taken from the request as-is.
// @Tags Orders
// @Accept json
// @Produce json
// @Param order body models.CreateOrderRequest true "Order data"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]string
// @Router /api/orders [post]
func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	order, err := ctrl.service.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order placed successfully",
		"orderId": order.ID,
	})
}

// GetOrders godoc
// @Summary List orders
// @Description List orders newest first. With ?email= only that customer's orders come back; without it, all orders (admin view).
// @Tags Orders
// @Produce json
// @Param email query string false "Customer email (case-insensitive exact match)"
// @Success 200 {array} models.Order
// @Failure 500 {object} map[string]string
// @Router /api/orders [get]
func (ctrl *OrderController) GetOrders(c *gin.Context) {
	email := c.Query("email")

	orders, err := ctrl.service.ListForCustomer(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, orders)
}

// UpdateOrderStatus godoc
// @Summary Update order status
// @Description Set an order's status. "rejected" deletes the order and returns an acknowledgement instead of the order.
// @Tags Orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param status body models.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} models.Order
// @Failure 500 {object} map[string]string
// @Router /api/orders/{id}/status [patch]
func (ctrl *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	order, deleted, err := ctrl.service.SetStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if deleted {
		c.JSON(http.StatusOK, gin.H{"message": "Order rejected and removed"})
		return
	}

	// An unknown id serializes to null, matching the original backend.
	c.JSON(http.StatusOK, order)
}

// DeleteOrder godoc
// @Summary Cancel an order
// @Description Delete an order by id. No ownership check; unknown ids ack success too.
// @Tags Orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/orders/{id} [delete]
func (ctrl *OrderController) DeleteOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := ctrl.service.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order cancelled successfully"})
}
