package controllers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-pdf/fpdf"
	"github.com/google/uuid"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/yeremiapane/staff-portal/models"
	"github.com/yeremiapane/staff-portal/utils"
	"gorm.io/gorm"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// GetDashboardStats mengambil statistik untuk dashboard admin
func (ac *AdminController) GetDashboardStats(c *gin.Context) {
	today := time.Now().Format("2006-01-02")

	var stats struct {
		TotalUsers     int64 `json:"total_users"`
		TotalDivisions int64 `json:"total_divisions"`
		LeaveStats     struct {
			Pending     int64 `json:"pending"`
			Recommended int64 `json:"recommended"`
			Approved    int64 `json:"approved"`
			Rejected    int64 `json:"rejected"`
			Today       int64 `json:"today"`
		} `json:"leave_stats"`
		TaskStats struct {
			Open       int64 `json:"open"`
			InProgress int64 `json:"in_progress"`
			Done       int64 `json:"done"`
		} `json:"task_stats"`
		UnreadNotifications int64 `json:"unread_notifications"`
	}

	ac.DB.Model(&models.User{}).Count(&stats.TotalUsers)
	ac.DB.Model(&models.Division{}).Count(&stats.TotalDivisions)

	ac.DB.Model(&models.LeaveApplication{}).Where("status = ?", models.LeaveStatusPending).Count(&stats.LeaveStats.Pending)
	ac.DB.Model(&models.LeaveApplication{}).Where("status = ?", models.LeaveStatusRecommended).Count(&stats.LeaveStats.Recommended)
	ac.DB.Model(&models.LeaveApplication{}).Where("status = ?", models.LeaveStatusApproved).Count(&stats.LeaveStats.Approved)
	ac.DB.Model(&models.LeaveApplication{}).Where("status = ?", models.LeaveStatusRejected).Count(&stats.LeaveStats.Rejected)
	ac.DB.Model(&models.LeaveApplication{}).Where("DATE(created_at) = ?", today).Count(&stats.LeaveStats.Today)

	ac.DB.Model(&models.Task{}).Where("status = ?", models.TaskStatusOpen).Count(&stats.TaskStats.Open)
	ac.DB.Model(&models.Task{}).Where("status = ?", models.TaskStatusInProgress).Count(&stats.TaskStats.InProgress)
	ac.DB.Model(&models.Task{}).Where("status = ?", models.TaskStatusDone).Count(&stats.TaskStats.Done)

	ac.DB.Model(&models.Notification{}).Where("is_read = ?", false).Count(&stats.UnreadNotifications)

	utils.RespondJSON(c, http.StatusOK, "Dashboard stats retrieved successfully", stats)
}

// ExportLeaveCSV -> laporan pengajuan cuti sebagai CSV
func (ac *AdminController) ExportLeaveCSV(c *gin.Context) {
	leaves, err := ac.leavesForReport(c)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	filename := fmt.Sprintf("leave-report-%s.csv", uuid.NewString())
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename="+filename)

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write([]string{"ID", "Applicant", "Type", "Days", "Start", "End", "Status", "Recommender", "Approver"})
	for _, leave := range leaves {
		writer.Write([]string{
			strconv.FormatUint(uint64(leave.ID), 10),
			leave.Applicant.Name,
			leave.LeaveType,
			strconv.Itoa(leave.LeaveDays),
			leave.StartDate.Format("2006-01-02"),
			leave.EndDate.Format("2006-01-02"),
			leave.Status,
			strconv.FormatUint(uint64(leave.RecommenderID), 10),
			strconv.FormatUint(uint64(leave.ApproverID), 10),
		})
	}
}

// ExportLeavePDF -> laporan pengajuan cuti sebagai PDF
func (ac *AdminController) ExportLeavePDF(c *gin.Context) {
	leaves, err := ac.leavesForReport(c)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Leave Applications Report")
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 10)
	headers := []string{"ID", "Applicant", "Type", "Days", "Start", "End", "Status"}
	widths := []float64{15, 60, 35, 20, 30, 30, 35}
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, leave := range leaves {
		row := []string{
			strconv.FormatUint(uint64(leave.ID), 10),
			leave.Applicant.Name,
			leave.LeaveType,
			strconv.Itoa(leave.LeaveDays),
			leave.StartDate.Format("2006-01-02"),
			leave.EndDate.Format("2006-01-02"),
			leave.Status,
		}
		for i, cell := range row {
			pdf.CellFormat(widths[i], 8, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	filename := fmt.Sprintf("leave-report-%s.pdf", uuid.NewString())
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", "attachment; filename="+filename)

	if err := pdf.Output(c.Writer); err != nil {
		utils.ErrorLogger.Printf("Failed to render leave report PDF: %v", err)
	}
}

// LeaveSubmissionChart -> grafik batang jumlah pengajuan per bulan (PNG)
func (ac *AdminController) LeaveSubmissionChart(c *gin.Context) {
	var leaves []models.LeaveApplication
	if err := ac.DB.Find(&leaves).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	perMonth := make(map[string]float64)
	for _, leave := range leaves {
		perMonth[leave.CreatedAt.Format("2006-01")]++
	}

	// 12 bulan terakhir supaya sumbu x stabil
	var bars []chart.Value
	month := time.Now().AddDate(0, -11, 0)
	for i := 0; i < 12; i++ {
		key := month.Format("2006-01")
		bars = append(bars, chart.Value{
			Label: month.Format("Jan 06"),
			Value: perMonth[key],
		})
		month = month.AddDate(0, 1, 0)
	}

	graph := chart.BarChart{
		Title:    "Leave Applications per Month",
		Height:   512,
		BarWidth: 40,
		Bars:     bars,
	}

	c.Header("Content-Type", "image/png")
	if err := graph.Render(chart.PNG, c.Writer); err != nil {
		utils.ErrorLogger.Printf("Failed to render leave chart: %v", err)
	}
}

func (ac *AdminController) leavesForReport(c *gin.Context) ([]models.LeaveApplication, error) {
	tx := ac.DB.Preload("Applicant").Order("created_at DESC")

	if status := c.Query("status"); status != "" {
		tx = tx.Where("status = ?", status)
	}
	if from := c.Query("from"); from != "" {
		tx = tx.Where("start_date >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		tx = tx.Where("end_date <= ?", to)
	}

	var leaves []models.LeaveApplication
	if err := tx.Find(&leaves).Error; err != nil {
		return nil, err
	}
	return leaves, nil
}
