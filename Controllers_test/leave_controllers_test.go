package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/yeremiapane/staff-portal/controllers"
	"github.com/yeremiapane/staff-portal/models"
	"github.com/yeremiapane/staff-portal/utils"
)

// setupLeaveRouter -> endpoint leave atas nama satu user (auth disimulasikan)
func setupLeaveRouter(db *gorm.DB, user models.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", user.ID)
		c.Set("role", user.Role)
		c.Next()
	})

	leaveCtrl := controllers.NewLeaveController(db)
	router.POST("/leaves", leaveCtrl.SubmitLeave)
	router.GET("/leaves", leaveCtrl.GetMyLeaves)
	router.GET("/leaves/reviews", leaveCtrl.GetPendingReviews)
	router.GET("/leaves/:leave_id", leaveCtrl.GetLeaveByID)
	router.POST("/leaves/:leave_id/recommend", leaveCtrl.RecommendLeave)
	router.POST("/leaves/:leave_id/decide", leaveCtrl.DecideLeave)
	return router
}

func seedWorkflowUsers(db *gorm.DB) (alice, carol, dave models.User) {
	carol = models.User{Name: "Carol", Email: "carol@example.com", Password: "secret", Role: models.RoleDivisionCC}
	dave = models.User{Name: "Dave", Email: "dave@example.com", Password: "secret", Role: models.RoleDivisionalHead}
	db.Create(&carol)
	db.Create(&dave)

	division := models.Division{Name: "Engineering", CCID: &carol.ID, HeadID: &dave.ID}
	db.Create(&division)

	alice = models.User{Name: "Alice", Email: "alice@example.com", Password: "secret", Role: models.RoleStaff, DivisionID: &division.ID}
	db.Create(&alice)
	return alice, carol, dave
}

func TestLeaveWorkflowOverHTTP(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB()
	alice, carol, dave := seedWorkflowUsers(db)

	aliceRouter := setupLeaveRouter(db, alice)
	carolRouter := setupLeaveRouter(db, carol)
	daveRouter := setupLeaveRouter(db, dave)

	// Alice mengajukan cuti
	payload := map[string]interface{}{
		"leave_type": "casual",
		"leave_days": 3,
		"start_date": "2025-06-02",
		"end_date":   "2025-06-04",
		"reason":     "Family event",
	}
	payloadBytes, _ := json.Marshal(payload)
	req, _ := http.NewRequest("POST", "/leaves", bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	aliceRouter.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	var createResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &createResp))
	data := createResp["data"].(map[string]interface{})
	assert.Equal(t, "pending", data["status"])
	leaveID := int(data["id"].(float64))
	url := "/leaves/" + strconv.Itoa(leaveID)

	// Dave (approver) mencoba recommend -> 403
	recommendBody, _ := json.Marshal(map[string]interface{}{"recommend": true})
	req, _ = http.NewRequest("POST", url+"/recommend", bytes.NewBuffer(recommendBody))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	daveRouter.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Pengajuan muncul di inbox Carol
	req, _ = http.NewRequest("GET", "/leaves/reviews", nil)
	w = httptest.NewRecorder()
	carolRouter.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	var inboxResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &inboxResp))
	assert.Len(t, inboxResp["data"].([]interface{}), 1)

	// Carol merekomendasikan
	req, _ = http.NewRequest("POST", url+"/recommend", bytes.NewBuffer(recommendBody))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	carolRouter.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Carol mencoba recommend lagi -> 409
	req, _ = http.NewRequest("POST", url+"/recommend", bytes.NewBuffer(recommendBody))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	carolRouter.ServeHTTP(w, req)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Dave menyetujui
	decideBody, _ := json.Marshal(map[string]interface{}{"approve": true})
	req, _ = http.NewRequest("POST", url+"/decide", bytes.NewBuffer(decideBody))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	daveRouter.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var decideResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &decideResp))
	assert.Equal(t, "approved", decideResp["data"].(map[string]interface{})["status"])

	// Terminal: keputusan kedua ditolak
	req, _ = http.NewRequest("POST", url+"/decide", bytes.NewBuffer(decideBody))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	daveRouter.ServeHTTP(w, req)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Riwayat Alice memuat pengajuan approved
	req, _ = http.NewRequest("GET", "/leaves", nil)
	w = httptest.NewRecorder()
	aliceRouter.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	var myResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &myResp))
	leaves := myResp["data"].([]interface{})
	assert.Len(t, leaves, 1)
	assert.Equal(t, "approved", leaves[0].(map[string]interface{})["status"])
}

func TestRejectWithoutRemarks(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB()
	alice, carol, _ := seedWorkflowUsers(db)

	aliceRouter := setupLeaveRouter(db, alice)
	carolRouter := setupLeaveRouter(db, carol)

	payload := map[string]interface{}{
		"leave_type": "sick",
		"leave_days": 1,
		"start_date": "2025-07-01",
		"end_date":   "2025-07-01",
		"reason":     "Flu",
	}
	payloadBytes, _ := json.Marshal(payload)
	req, _ := http.NewRequest("POST", "/leaves", bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	aliceRouter.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	var createResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &createResp))
	leaveID := int(createResp["data"].(map[string]interface{})["id"].(float64))

	// Tolak tanpa remarks -> 400
	body, _ := json.Marshal(map[string]interface{}{"recommend": false})
	req, _ = http.NewRequest("POST", "/leaves/"+strconv.Itoa(leaveID)+"/recommend", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	carolRouter.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
