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

type RoomController struct {
	Service *services.RoomService
}

func NewRoomController(service *services.RoomService) *RoomController {
	return &RoomController{Service: service}
}

// GET /api/rooms
func (rc *RoomController) GetRooms(c *gin.Context) {
	rooms, err := rc.Service.List()
	if err != nil {
		respondServiceError(c, err, "Failed to load rooms")
		return
	}
	c.JSON(http.StatusOK, serializers.SerializeRooms(rooms))
}

// GET /api/rooms/featured
func (rc *RoomController) GetFeaturedRooms(c *gin.Context) {
	rooms, err := rc.Service.ListFeatured()
	if err != nil {
		respondServiceError(c, err, "Failed to load rooms")
		return
	}
	c.JSON(http.StatusOK, serializers.SerializeRooms(rooms))
}

// GET /api/rooms/:id
func (rc *RoomController) GetRoomByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		utils.JSONError(c, http.StatusNotFound, services.ErrRoomNotFound.Error())
		return
	}
	room, err := rc.Service.GetByID(id)
	if err != nil {
		respondServiceError(c, err, "Failed to load room")
		return
	}
	c.JSON(http.StatusOK, serializers.SerializeRoom(room))
}

type roomPayload struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	ImageURL    string   `json:"imageUrl"`
	Capacity    int      `json:"capacity"`
	Size        string   `json:"size"`
	Amenities   []string `json:"amenities"`
	Featured    bool     `json:"featured"`
}

// POST /api/admin/rooms
func (rc *RoomController) CreateRoom(c *gin.Context) {
	var payload roomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	payload.Name = strings.TrimSpace(payload.Name)
	switch {
	case payload.Name == "":
		utils.JSONError(c, http.StatusBadRequest, "name is required")
		return
	case strings.TrimSpace(payload.Description) == "":
		utils.JSONError(c, http.StatusBadRequest, "description is required")
		return
	case payload.Price < 0:
		utils.JSONError(c, http.StatusBadRequest, "price must not be negative")
		return
	case payload.Capacity <= 0:
		utils.JSONError(c, http.StatusBadRequest, "capacity must be a positive integer")
		return
	}

	room := models.Room{
		Name:        payload.Name,
		Description: payload.Description,
		Price:       payload.Price,
		ImageURL:    payload.ImageURL,
		Capacity:    payload.Capacity,
		Size:        payload.Size,
		Amenities:   datatypes.NewJSONSlice(payload.Amenities),
		Featured:    payload.Featured,
	}
	if err := rc.Service.Create(&room); err != nil {
		respondServiceError(c, err, "Failed to create room")
		return
	}
	c.JSON(http.StatusCreated, serializers.SerializeRoom(room))
}

// PUT/PATCH /api/admin/rooms/:id
func (rc *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		utils.JSONError(c, http.StatusNotFound, services.ErrRoomNotFound.Error())
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	stripProtectedFields(updates)
	normalizeTagUpdate(updates, "amenities")

	room, err := rc.Service.Update(id, updates)
	if err != nil {
		respondServiceError(c, err, "Failed to update room")
		return
	}
	c.JSON(http.StatusOK, serializers.SerializeRoom(room))
}

// DELETE /api/admin/rooms/:id
func (rc *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		utils.JSONError(c, http.StatusNotFound, services.ErrRoomNotFound.Error())
		return
	}
	if err := rc.Service.Delete(id); err != nil {
		respondServiceError(c, err, "Failed to delete room")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Room deleted")
}

// stripProtectedFields drops system-assigned columns from partial updates.
func stripProtectedFields(updates map[string]interface{}) {
	for _, key := range []string{"id", "created_at", "createdAt", "updated_at", "updatedAt", "deleted_at"} {
		delete(updates, key)
	}
}

// normalizeTagUpdate converts a tag field arriving as a JSON array or a
// legacy comma-joined string into a JSON slice GORM can write.
func normalizeTagUpdate(updates map[string]interface{}, key string) {
	value, ok := updates[key]
	if !ok {
		return
	}
	switch v := value.(type) {
	case string:
		updates[key] = datatypes.NewJSONSlice(serializers.SplitTags(v))
	case []interface{}:
		tags := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				tags = append(tags, strings.TrimSpace(s))
			}
		}
		updates[key] = datatypes.NewJSONSlice(tags)
	default:
		delete(updates, key)
	}
}
