package controllers

import (
	"errors"
	"net/http"

	"parkpalace-backend/services"
	"parkpalace-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-sql-driver/mysql"
)

const mysqlDuplicateEntry = 1062

type UserController struct {
	Service *services.UserService
}

func NewUserController(service *services.UserService) *UserController {
	return &UserController{Service: service}
}

// GET /api/admin/users
func (uc *UserController) GetUsers(c *gin.Context) {
	users, err := uc.Service.List()
	if err != nil {
		respondServiceError(c, err, "Failed to load users")
		return
	}
	c.JSON(http.StatusOK, users)
}

type createUserPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /api/admin/users
func (uc *UserController) CreateUser(c *gin.Context) {
	var payload createUserPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, err := uc.Service.Create(payload.Username, payload.Password)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			utils.JSONError(c, http.StatusConflict, "Username already exists")
			return
		}
		respondServiceError(c, err, "Failed to create user")
		return
	}
	c.JSON(http.StatusCreated, user)
}

// DELETE /api/admin/users/:id
func (uc *UserController) DeleteUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		utils.JSONError(c, http.StatusNotFound, services.ErrUserNotFound.Error())
		return
	}
	if err := uc.Service.Delete(id); err != nil {
		respondServiceError(c, err, "Failed to delete user")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "User deleted")
}
