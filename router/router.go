package router

import (
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/staff-portal/controllers"
	"github.com/yeremiapane/staff-portal/middlewares"
	"github.com/yeremiapane/staff-portal/models"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	// Apply security middlewares
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.LoggerMiddleware())

	// Inisialisasi controller
	userCtrl := controllers.NewUserController(db)
	divisionCtrl := controllers.NewDivisionController(db)
	leaveCtrl := controllers.NewLeaveController(db)
	notificationCtrl := controllers.NewNotificationController(db)
	taskCtrl := controllers.NewTaskController(db)
	adminCtrl := controllers.NewAdminController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Rate limiter untuk login/register
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// WebSocket untuk live notification (token via query param)
	wsGroup := r.Group("/ws")
	wsGroup.Use(middlewares.WebSocketAuthMiddleware())
	{
		wsGroup.GET("/notifications", controllers.NotificationStreamHandler)
	}

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/api")
	auth.Use(middlewares.AuthMiddleware())

	auth.GET("/profile", userCtrl.GetProfile)
	auth.POST("/logout", userCtrl.Logout)

	// LEAVE APPLICATIONS
	auth.POST("/leaves", leaveCtrl.SubmitLeave)
	auth.GET("/leaves", leaveCtrl.GetMyLeaves)
	auth.GET("/leaves/reviews", leaveCtrl.GetPendingReviews)
	auth.GET("/leaves/:leave_id", leaveCtrl.GetLeaveByID)
	auth.POST("/leaves/:leave_id/recommend", leaveCtrl.RecommendLeave)
	auth.POST("/leaves/:leave_id/decide", leaveCtrl.DecideLeave)

	// NOTIFICATIONS (pemilik saja)
	auth.GET("/notifications", notificationCtrl.GetMyNotifications)
	auth.GET("/notifications/unread-count", notificationCtrl.GetUnreadCount)
	auth.PATCH("/notifications/:notif_id/read", notificationCtrl.MarkAsRead)
	auth.POST("/notifications/read-all", notificationCtrl.MarkAllAsRead)

	// TASKS
	auth.GET("/tasks", taskCtrl.GetMyTasks)
	auth.GET("/tasks/:task_id", taskCtrl.GetTaskByID)
	auth.POST("/tasks", middlewares.RequireRoles(models.RoleDivisionCC, models.RoleDivisionalHead, models.RoleHOD), taskCtrl.CreateTask)
	auth.PATCH("/tasks/:task_id", taskCtrl.UpdateTask)

	// DIVISIONS (read untuk semua user login)
	auth.GET("/divisions", divisionCtrl.GetAllDivisions)
	auth.GET("/divisions/:division_id", divisionCtrl.GetDivisionByID)

	// ----------------------------------------------------------------
	//                      ADMIN ROUTES
	// ----------------------------------------------------------------
	admin := auth.Group("/admin")
	admin.Use(middlewares.AdminOnly())

	admin.GET("/users", userCtrl.GetAllUsers)
	admin.GET("/users/:user_id", userCtrl.GetUserByID)
	admin.PATCH("/users/:user_id", userCtrl.UpdateUser)
	admin.DELETE("/users/:user_id", userCtrl.DeleteUser)

	admin.POST("/divisions", divisionCtrl.CreateDivision)
	admin.PATCH("/divisions/:division_id", divisionCtrl.UpdateDivision)
	admin.DELETE("/divisions/:division_id", divisionCtrl.DeleteDivision)

	admin.GET("/tasks", taskCtrl.GetAllTasks)
	admin.DELETE("/tasks/:task_id", taskCtrl.DeleteTask)

	admin.GET("/notifications", notificationCtrl.GetAllNotifications)
	admin.GET("/dashboard/stats", adminCtrl.GetDashboardStats)

	// Routes untuk report dengan middleware logger
	reportGroup := admin.Group("/reports")
	reportGroup.Use(middlewares.ReportLoggerMiddleware())
	{
		reportGroup.GET("/leaves/export", adminCtrl.ExportLeaveCSV)
		reportGroup.GET("/leaves/export-pdf", adminCtrl.ExportLeavePDF)
		reportGroup.GET("/leaves/chart", adminCtrl.LeaveSubmissionChart)
	}

	return r
}
