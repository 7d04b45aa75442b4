package controllers

import (
	"net/http"
	"strings"

	"parkpalace-backend/models"
	"parkpalace-backend/serializers"
	"parkpalace-backend/services"
	"parkpalace-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type MenuController struct {
	Service *services.MenuService
}

func NewMenuController(service *services.MenuService) *MenuController {
	return &MenuController{Service: service}
}

// GET /api/menu
func (mc *MenuController) GetMenu(c *gin.Context) {
	items, err := mc.Service.List()
	if err != nil {
		respondServiceError(c, err, "Failed to load menu")
		return
	}
	c.JSON(http.StatusOK, serializers.SerializeMenuItems(items))
}

// GET /api/menu/category/:category
func (mc *MenuController) GetMenuByCategory(c *gin.Context) {
	items, err := mc.Service.ListByCategory(c.Param("category"))
	if err != nil {
		respondServiceError(c, err, "Failed to load menu")
		return
	}
	c.JSON(http.StatusOK, serializers.SerializeMenuItems(items))
}

type menuItemPayload struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	ImageURL    string   `json:"imageUrl"`
	Dietary     []string `json:"dietary"`
	Available   *bool    `json:"available"`
}

// POST /api/admin/menu
func (mc *MenuController) CreateMenuItem(c *gin.Context) {
	var payload menuItemPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	payload.Name = strings.TrimSpace(payload.Name)
	payload.Category = strings.TrimSpace(payload.Category)
	switch {
	case payload.Name == "":
		utils.JSONError(c, http.StatusBadRequest, "name is required")
		return
	case strings.TrimSpace(payload.Description) == "":
		utils.JSONError(c, http.StatusBadRequest, "description is required")
		return
	case payload.Category == "":
		utils.JSONError(c, http.StatusBadRequest, "category is required")
		return
	case payload.Price < 0:
		utils.JSONError(c, http.StatusBadRequest, "price must not be negative")
		return
	}

	available := true
	if payload.Available != nil {
		available = *payload.Available
	}
	item := models.MenuItem{
		Name:        payload.Name,
		Description: payload.Description,
		Price:       payload.Price,
		Category:    payload.Category,
		ImageURL:    payload.ImageURL,
		Dietary:     datatypes.NewJSONSlice(payload.Dietary),
		Available:   available,
	}
	if err := mc.Service.Create(&item); err != nil {
		respondServiceError(c, err, "Failed to create menu item")
		return
	}
	c.JSON(http.StatusCreated, serializers.SerializeMenuItem(item))
}

// PUT /api/admin/menu/:id
func (mc *MenuController) UpdateMenuItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		utils.JSONError(c, http.StatusNotFound, services.ErrMenuItemNotFound.Error())
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	stripProtectedFields(updates)
	normalizeTagUpdate(updates, "dietary")

	item, err := mc.Service.Update(id, updates)
	if err != nil {
		respondServiceError(c, err, "Failed to update menu item")
		return
	}
	c.JSON(http.StatusOK, serializers.SerializeMenuItem(item))
}

// DELETE /api/admin/menu/:id
func (mc *MenuController) DeleteMenuItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		utils.JSONError(c, http.StatusNotFound, services.ErrMenuItemNotFound.Error())
		return
	}
	if err := mc.Service.Delete(id); err != nil {
		respondServiceError(c, err, "Failed to delete menu item")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Menu item deleted")
}
