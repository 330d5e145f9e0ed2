package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/staff-portal/models"
	"github.com/yeremiapane/staff-portal/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

var validRoles = map[string]bool{
	models.RoleAdmin:          true,
	models.RoleStaff:          true,
	models.RoleDivisionCC:     true,
	models.RoleDivisionalHead: true,
	models.RoleHOD:            true,
}

// Register user baru
func (uc *UserController) Register(c *gin.Context) {
	type request struct {
		Name       string `json:"name" binding:"required"`
		Email      string `json:"email" binding:"required,email"`
		Password   string `json:"password" binding:"required,min=8"`
		Role       string `json:"role" binding:"required"`
		DivisionID *uint  `json:"division_id"`
		StaffType  string `json:"staff_type"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !validRoles[req.Role] {
		utils.RespondError(c, http.StatusBadRequest, errors.New("unknown role: "+req.Role))
		return
	}

	// Hash password
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	user := models.User{
		Name:       req.Name,
		Email:      req.Email,
		Password:   string(hashed),
		Role:       req.Role,
		DivisionID: req.DivisionID,
		StaffType:  req.StaffType,
	}

	if err := uc.DB.Create(&user).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New user registered: %s (role=%s)", user.Email, user.Role)

	utils.RespondJSON(c, http.StatusCreated, "User registered", gin.H{
		"user_id": user.ID,
	})
}

// Login user -> return JWT
func (uc *UserController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var user models.User
	if err := uc.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Login successful for user: %s, role: %s", user.Email, user.Role)

	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"token":     token,
		"user_id":   user.ID,
		"user_role": strings.ToLower(user.Role),
	})
}

// Logout -> blacklist token yang sedang dipakai
func (uc *UserController) Logout(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if token != "" {
		utils.BlacklistToken(token)
	}
	utils.RespondJSON(c, http.StatusOK, "Logged out", nil)
}

// GetProfile -> memeriksa user dari JWT
func (uc *UserController) GetProfile(c *gin.Context) {
	userIDInterface, exists := c.Get("user_id")
	if !exists {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	userID, ok := userIDInterface.(uint)
	if !ok {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("invalid user id type"))
		return
	}

	var user models.User
	if err := uc.DB.Preload("Division").First(&user, userID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Profile data retrieved successfully", gin.H{
		"id":          user.ID,
		"name":        user.Name,
		"email":       user.Email,
		"role":        user.Role,
		"division_id": user.DivisionID,
		"staff_type":  user.StaffType,
	})
}

// GetAllUsers -> endpoint khusus Admin
func (uc *UserController) GetAllUsers(c *gin.Context) {
	var users []models.User
	if err := uc.DB.Preload("Division").Find(&users).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "All users", users)
}

// GetUserByID (Admin)
func (uc *UserController) GetUserByID(c *gin.Context) {
	idStr := c.Param("user_id")
	id, _ := strconv.Atoi(idStr)

	var user models.User
	if err := uc.DB.Preload("Division").First(&user, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "User detail", user)
}

// UpdateUser -> Admin mengubah role/divisi/staff type
func (uc *UserController) UpdateUser(c *gin.Context) {
	idStr := c.Param("user_id")
	id, _ := strconv.Atoi(idStr)

	var user models.User
	if err := uc.DB.First(&user, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var body struct {
		Name       *string `json:"name"`
		Role       *string `json:"role"`
		DivisionID *uint   `json:"division_id"`
		StaffType  *string `json:"staff_type"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if body.Name != nil {
		user.Name = *body.Name
	}
	if body.Role != nil {
		if !validRoles[*body.Role] {
			utils.RespondError(c, http.StatusBadRequest, errors.New("unknown role: "+*body.Role))
			return
		}
		user.Role = *body.Role
	}
	if body.DivisionID != nil {
		user.DivisionID = body.DivisionID
	}
	if body.StaffType != nil {
		user.StaffType = *body.StaffType
	}

	if err := uc.DB.Save(&user).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "User updated", user)
}

// DeleteUser -> Admin menghapus akun berikut notifikasi miliknya
func (uc *UserController) DeleteUser(c *gin.Context) {
	idStr := c.Param("user_id")
	id, _ := strconv.Atoi(idStr)

	var user models.User
	if err := uc.DB.First(&user, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if err := uc.DB.Where("user_id = ?", user.ID).Delete(&models.Notification{}).Error; err != nil {
		utils.ErrorLogger.Printf("Failed to delete notifications for user %d: %v", user.ID, err)
	}

	if err := uc.DB.Delete(&user).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("User %d (%s) deleted", user.ID, user.Email)
	utils.RespondJSON(c, http.StatusOK, "User deleted", gin.H{"user_id": user.ID})
}
