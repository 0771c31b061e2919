package handler

import (
	"net/http"

	"github.com/cardapio/cardapio/backend/food-service/internal/food"
	"github.com/cardapio/cardapio/backend/food-service/internal/food/service"
	"github.com/gin-gonic/gin"
)

// RegisterFoodRoutes mounts POST /food and GET /food.
func RegisterFoodRoutes(r gin.IRouter, svc *service.Service) {
	r.POST("/food", func(c *gin.Context) {
		var req food.FoodRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if _, err := svc.Create(c.Request.Context(), req); err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		c.Status(http.StatusOK)
	})

	r.GET("/food", func(c *gin.Context) {
		list, err := svc.List(c.Request.Context())
		if err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		c.JSON(http.StatusOK, list)
	})
}
