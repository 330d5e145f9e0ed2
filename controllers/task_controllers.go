package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/staff-portal/models"
	"github.com/yeremiapane/staff-portal/services"
	"github.com/yeremiapane/staff-portal/utils"
	"gorm.io/gorm"
)

type TaskController struct {
	DB       *gorm.DB
	Notifier *services.NotificationService
}

func NewTaskController(db *gorm.DB) *TaskController {
	return &TaskController{
		DB:       db,
		Notifier: services.NewNotificationService(db),
	}
}

var validTaskStatus = map[string]bool{
	models.TaskStatusOpen:       true,
	models.TaskStatusInProgress: true,
	models.TaskStatusDone:       true,
}

// GetAllTasks
func (tc *TaskController) GetAllTasks(c *gin.Context) {
	var tasks []models.Task
	if err := tc.DB.Preload("Assignee").Preload("CreatedBy").Find(&tasks).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All tasks", tasks)
}

// GetMyTasks -> task yang di-assign ke user yang login
func (tc *TaskController) GetMyTasks(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	var tasks []models.Task
	if err := tc.DB.Preload("CreatedBy").
		Where("assignee_id = ?", userID).
		Order("created_at DESC").
		Find(&tasks).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "My tasks", tasks)
}

// CreateTask -> assignment memicu notifikasi task_assigned ke assignee
func (tc *TaskController) CreateTask(c *gin.Context) {
	creatorID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	type reqBody struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
		AssigneeID  *uint  `json:"assignee_id"`
		DueDate     string `json:"due_date"` // YYYY-MM-DD, opsional
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var dueDate *time.Time
	if body.DueDate != "" {
		parsed, err := time.Parse("2006-01-02", body.DueDate)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("due_date must be YYYY-MM-DD"))
			return
		}
		dueDate = &parsed
	}

	task := models.Task{
		Title:       body.Title,
		Description: body.Description,
		AssigneeID:  body.AssigneeID,
		CreatedByID: creatorID,
		Status:      models.TaskStatusOpen,
		DueDate:     dueDate,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := tc.DB.Create(&task).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if task.AssigneeID != nil {
		tc.notifyAssignment(task)
	}

	utils.RespondJSON(c, http.StatusCreated, "Task created", task)
}

// GetTaskByID
func (tc *TaskController) GetTaskByID(c *gin.Context) {
	idStr := c.Param("task_id")
	id, _ := strconv.Atoi(idStr)

	var task models.Task
	if err := tc.DB.Preload("Assignee").Preload("CreatedBy").First(&task, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Task detail", task)
}

// UpdateTask -> ganti status/assignee; re-assignment memicu notifikasi baru
func (tc *TaskController) UpdateTask(c *gin.Context) {
	idStr := c.Param("task_id")
	id, _ := strconv.Atoi(idStr)

	var task models.Task
	if err := tc.DB.First(&task, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var body struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Status      *string `json:"status"`
		AssigneeID  *uint   `json:"assignee_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reassigned := false
	if body.Title != nil {
		task.Title = *body.Title
	}
	if body.Description != nil {
		task.Description = *body.Description
	}
	if body.Status != nil {
		if !validTaskStatus[*body.Status] {
			utils.RespondError(c, http.StatusBadRequest, errors.New("unknown status: "+*body.Status))
			return
		}
		task.Status = *body.Status
	}
	if body.AssigneeID != nil {
		if task.AssigneeID == nil || *task.AssigneeID != *body.AssigneeID {
			reassigned = true
		}
		task.AssigneeID = body.AssigneeID
	}

	if err := tc.DB.Save(&task).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if reassigned {
		tc.notifyAssignment(task)
	}

	utils.RespondJSON(c, http.StatusOK, "Task updated", task)
}

// DeleteTask
func (tc *TaskController) DeleteTask(c *gin.Context) {
	idStr := c.Param("task_id")
	id, _ := strconv.Atoi(idStr)

	if err := tc.DB.Delete(&models.Task{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Task deleted", gin.H{"task_id": id})
}

func (tc *TaskController) notifyAssignment(task models.Task) {
	taskID := task.ID
	tc.Notifier.Create(services.NotificationInput{
		UserID:  *task.AssigneeID,
		Type:    models.NotifTaskAssigned,
		Title:   "Task Assigned",
		Message: fmt.Sprintf("You have been assigned the task: %s", task.Title),
		TaskID:  &taskID,
	})
}
