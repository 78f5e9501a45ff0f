package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rupeshmutkule/Shophub/models"
)

type ContactController struct{}

func NewContactController() *ContactController {
	return &ContactController{}
}

// SubmitContact godoc
// @Summary Submit the contact form
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body models.ContactRequest true "Contact message"
// @Success 200 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/contact [post]
func (ctrl *ContactController) SubmitContact(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	_, err := models.DB.Exec(c.Request.Context(),
		"INSERT INTO contacts (name, query, address, created_at) VALUES ($1, $2, $3, $4)",
		req.Name, req.Query, req.Address, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message received"})
}
