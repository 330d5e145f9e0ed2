package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/staff-portal/models"
	"github.com/yeremiapane/staff-portal/utils"
	"gorm.io/gorm"
)

type DivisionController struct {
	DB *gorm.DB
}

func NewDivisionController(db *gorm.DB) *DivisionController {
	return &DivisionController{DB: db}
}

// GetAllDivisions
func (dc *DivisionController) GetAllDivisions(c *gin.Context) {
	var divisions []models.Division
	if err := dc.DB.Preload("CC").Preload("Head").Find(&divisions).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All divisions", divisions)
}

// CreateDivision
func (dc *DivisionController) CreateDivision(c *gin.Context) {
	var body struct {
		Name   string `json:"name" binding:"required"`
		CCID   *uint  `json:"cc_id"`
		HeadID *uint  `json:"head_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := dc.validateChain(body.CCID, body.HeadID); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	division := models.Division{
		Name:   body.Name,
		CCID:   body.CCID,
		HeadID: body.HeadID,
	}
	if err := dc.DB.Create(&division).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Division created", division)
}

// GetDivisionByID
func (dc *DivisionController) GetDivisionByID(c *gin.Context) {
	idStr := c.Param("division_id")
	id, _ := strconv.Atoi(idStr)

	var division models.Division
	if err := dc.DB.Preload("CC").Preload("Head").First(&division, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Division detail", division)
}

// UpdateDivision -> ganti nama atau rantai approval (CC/Head)
func (dc *DivisionController) UpdateDivision(c *gin.Context) {
	idStr := c.Param("division_id")
	id, _ := strconv.Atoi(idStr)

	var division models.Division
	if err := dc.DB.First(&division, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var body struct {
		Name   *string `json:"name"`
		CCID   *uint   `json:"cc_id"`
		HeadID *uint   `json:"head_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := dc.validateChain(body.CCID, body.HeadID); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if body.Name != nil {
		division.Name = *body.Name
	}
	if body.CCID != nil {
		division.CCID = body.CCID
	}
	if body.HeadID != nil {
		division.HeadID = body.HeadID
	}

	if err := dc.DB.Save(&division).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Division updated", division)
}

// DeleteDivision
func (dc *DivisionController) DeleteDivision(c *gin.Context) {
	idStr := c.Param("division_id")
	id, _ := strconv.Atoi(idStr)

	if err := dc.DB.Delete(&models.Division{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Division deleted", gin.H{"division_id": id})
}

// validateChain memastikan CC dan Head yang ditunjuk memang ada dan punya
// role yang sesuai
func (dc *DivisionController) validateChain(ccID, headID *uint) error {
	if ccID != nil {
		var cc models.User
		if err := dc.DB.First(&cc, *ccID).Error; err != nil {
			return errors.New("cc user not found")
		}
		if cc.Role != models.RoleDivisionCC && cc.Role != models.RoleAdmin {
			return errors.New("cc user must have the division_cc role")
		}
	}
	if headID != nil {
		var head models.User
		if err := dc.DB.First(&head, *headID).Error; err != nil {
			return errors.New("head user not found")
		}
		if !models.IsApproverRole(head.Role) && head.Role != models.RoleAdmin {
			return errors.New("head user must have the divisional_head or hod role")
		}
	}
	return nil
}
