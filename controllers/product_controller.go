package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rupeshmutkule/Shophub/models"
	"github.com/rupeshmutkule/Shophub/repositories"
	"github.com/rupeshmutkule/Shophub/services"
)

const productCacheKey = "products_list"

type ProductController struct {
	repo       *repositories.ProductRepository
	seeder     *services.ProductService
	cloudinary *models.CloudinaryService
}

func NewProductController(repo *repositories.ProductRepository, seeder *services.ProductService, cloudinary *models.CloudinaryService) *ProductController {
	return &ProductController{repo: repo, seeder: seeder, cloudinary: cloudinary}
}

func invalidateProductCache() {
	if models.RedisClient == nil {
		return
	}
	models.RedisClient.Del(context.Background(), productCacheKey)
}

// GetAllProducts godoc
// @Summary Get all products
// @Description List the whole catalog. Served from Redis for five minutes when available.
// @Tags Products
// @Produce json
// @Success 200 {array} models.Product
// @Failure 500 {object} map[string]string
// @Router /api/products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	ctx := c.Request.Context()

	if models.RedisClient != nil {
		cached, err := models.RedisClient.Get(ctx, productCacheKey).Result()
		if err == nil {
			c.Data(http.StatusOK, "application/json", []byte(cached))
			return
		}
	}

	products, err := ctrl.repo.FindAll(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if models.RedisClient != nil {
		if jsonData, err := json.Marshal(products); err == nil {
			models.RedisClient.Set(ctx, productCacheKey, string(jsonData), 5*time.Minute)
		}
	}

	c.JSON(http.StatusOK, products)
}

// CreateProduct godoc
// @Summary Add a product
// @Tags Products
// @Accept json
// @Produce json
// @Param product body models.Product true "Product data"
// @Success 200 {object} models.Product
// @Failure 500 {object} map[string]string
// @Router /api/products [post]
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := ctrl.repo.Create(c.Request.Context(), &product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	invalidateProductCache()
	c.JSON(http.StatusOK, product)
}

// UpdateProduct godoc
// @Summary Update a product
// @Tags Products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param product body models.Product true "Product data"
// @Success 200 {object} models.Product
// @Failure 500 {object} map[string]string
// @Router /api/products/{id} [put]
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	updated, err := ctrl.repo.Update(c.Request.Context(), id, &product)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	invalidateProductCache()
	c.JSON(http.StatusOK, updated)
}

// DeleteProduct godoc
// @Summary Delete a product
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/products/{id} [delete]
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := ctrl.repo.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	invalidateProductCache()
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

// SeedProducts godoc
// @Summary Seed the catalog
// @Description Import 25 demo products from fakestoreapi.com unless the catalog already has them.
// @Tags Products
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/seed [post]
func (ctrl *ProductController) SeedProducts(c *gin.Context) {
	seeded, err := ctrl.seeder.Seed(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if !seeded {
		c.JSON(http.StatusOK, gin.H{"message": "Database already seeded (>=25 products)."})
		return
	}

	invalidateProductCache()
	c.JSON(http.StatusOK, gin.H{"message": "Database seeded successfully with 25 products!"})
}

// UploadPhoto godoc
// @Summary Upload a product photo
// @Description Upload an image to Cloudinary and get back the hosted URL for the product form.
// @Tags Products
// @Accept multipart/form-data
// @Produce json
// @Param photo formData file true "Image file"
// @Success 200 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/upload [post]
func (ctrl *ProductController) UploadPhoto(c *gin.Context) {
	if ctrl.cloudinary == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "image uploads not configured"})
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := ctrl.cloudinary.ValidateImageFile(fileHeader); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	url, publicID, err := ctrl.cloudinary.UploadImage(c.Request.Context(), file, fileHeader.Filename)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url, "public_id": publicID})
}
