package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/staff-portal/models"
	"github.com/yeremiapane/staff-portal/services"
	"github.com/yeremiapane/staff-portal/utils"
	"gorm.io/gorm"
)

type LeaveController struct {
	DB      *gorm.DB
	Service *services.LeaveService
}

func NewLeaveController(db *gorm.DB) *LeaveController {
	return &LeaveController{
		DB:      db,
		Service: services.NewLeaveService(db),
	}
}

// SubmitLeave -> buat pengajuan cuti (status 'pending')
func (lc *LeaveController) SubmitLeave(c *gin.Context) {
	actor, ok := lc.currentUser(c)
	if !ok {
		return
	}

	type reqBody struct {
		LeaveType     string `json:"leave_type" binding:"required"`
		LeaveDays     int    `json:"leave_days" binding:"required,gt=0"`
		StartDate     string `json:"start_date" binding:"required"` // YYYY-MM-DD
		EndDate       string `json:"end_date" binding:"required"`   // YYYY-MM-DD
		Reason        string `json:"reason" binding:"required"`
		ActingOfficer string `json:"acting_officer"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	startDate, err := time.Parse("2006-01-02", body.StartDate)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("start_date must be YYYY-MM-DD"))
		return
	}
	endDate, err := time.Parse("2006-01-02", body.EndDate)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("end_date must be YYYY-MM-DD"))
		return
	}
	if endDate.Before(startDate) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("end_date must not be before start_date"))
		return
	}

	leave, err := lc.Service.Submit(actor, services.SubmitLeaveInput{
		LeaveType:     body.LeaveType,
		LeaveDays:     body.LeaveDays,
		StartDate:     startDate,
		EndDate:       endDate,
		Reason:        body.Reason,
		ActingOfficer: body.ActingOfficer,
	})
	if err != nil {
		lc.respondWorkflowError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Leave application submitted", leave)
}

// GetMyLeaves -> riwayat pengajuan milik user yang login
func (lc *LeaveController) GetMyLeaves(c *gin.Context) {
	actor, ok := lc.currentUser(c)
	if !ok {
		return
	}

	var leaves []models.LeaveApplication
	if err := lc.DB.Where("applicant_id = ?", actor.ID).
		Order("created_at DESC").
		Find(&leaves).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "My leave applications", leaves)
}

// GetPendingReviews -> inbox recommender/approver
func (lc *LeaveController) GetPendingReviews(c *gin.Context) {
	actor, ok := lc.currentUser(c)
	if !ok {
		return
	}

	var leaves []models.LeaveApplication
	if err := lc.DB.Preload("Applicant").
		Where("(recommender_id = ? AND status = ?) OR (approver_id = ? AND status = ?)",
			actor.ID, models.LeaveStatusPending, actor.ID, models.LeaveStatusRecommended).
		Order("created_at ASC").
		Find(&leaves).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Leave applications awaiting your review", leaves)
}

// GetLeaveByID -> detail 1 pengajuan
func (lc *LeaveController) GetLeaveByID(c *gin.Context) {
	idStr := c.Param("leave_id")
	id, _ := strconv.Atoi(idStr)

	var leave models.LeaveApplication
	if err := lc.DB.Preload("Applicant").First(&leave, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Leave application detail", leave)
}

// RecommendLeave -> tahap recommender: rekomendasikan atau tolak
func (lc *LeaveController) RecommendLeave(c *gin.Context) {
	actor, ok := lc.currentUser(c)
	if !ok {
		return
	}

	idStr := c.Param("leave_id")
	id, _ := strconv.Atoi(idStr)

	var body struct {
		Recommend *bool  `json:"recommend" binding:"required"`
		Remarks   string `json:"remarks"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if !*body.Recommend && body.Remarks == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("remarks required when rejecting"))
		return
	}

	leave, err := lc.Service.Recommend(actor, uint(id), *body.Recommend, body.Remarks)
	if err != nil {
		lc.respondWorkflowError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Leave application reviewed", leave)
}

// DecideLeave -> tahap approver: setujui atau tolak
func (lc *LeaveController) DecideLeave(c *gin.Context) {
	actor, ok := lc.currentUser(c)
	if !ok {
		return
	}

	idStr := c.Param("leave_id")
	id, _ := strconv.Atoi(idStr)

	var body struct {
		Approve *bool  `json:"approve" binding:"required"`
		Remarks string `json:"remarks"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if !*body.Approve && body.Remarks == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("remarks required when rejecting"))
		return
	}

	leave, err := lc.Service.Decide(actor, uint(id), *body.Approve, body.Remarks)
	if err != nil {
		lc.respondWorkflowError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Leave application decided", leave)
}

// currentUser -> load user penuh dari user_id di context; merespon sendiri
// kalau gagal supaya handler tinggal return
func (lc *LeaveController) currentUser(c *gin.Context) (models.User, bool) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return models.User{}, false
	}

	var user models.User
	if err := lc.DB.First(&user, userID).Error; err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user not found"))
		return models.User{}, false
	}
	return user, true
}

func (lc *LeaveController) respondWorkflowError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		utils.RespondError(c, http.StatusNotFound, err)
	case errors.Is(err, services.ErrNotAuthorized):
		utils.RespondError(c, http.StatusForbidden, err)
	case errors.Is(err, services.ErrInvalidState):
		utils.RespondError(c, http.StatusConflict, err)
	case errors.Is(err, services.ErrNoDivision), errors.Is(err, services.ErrNoApprovalChain):
		utils.RespondError(c, http.StatusBadRequest, err)
	default:
		utils.RespondError(c, http.StatusInternalServerError, err)
	}
}
