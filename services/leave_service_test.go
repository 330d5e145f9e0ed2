package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yeremiapane/staff-portal/models"
	"github.com/yeremiapane/staff-portal/utils"
)

// setupWorkflowDB -> SQLite in-memory + seed Alice (staff), Carol (CC),
// Dave (head) dalam satu divisi
func setupWorkflowDB(t *testing.T) (*gorm.DB, models.User, models.User, models.User) {
	t.Helper()
	utils.InitLogger()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Division{},
		&models.User{},
		&models.LeaveApplication{},
		&models.Notification{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	carol := models.User{Name: "Carol", Email: "carol@example.com", Password: "secret", Role: models.RoleDivisionCC}
	dave := models.User{Name: "Dave", Email: "dave@example.com", Password: "secret", Role: models.RoleDivisionalHead}
	db.Create(&carol)
	db.Create(&dave)

	division := models.Division{Name: "Engineering", CCID: &carol.ID, HeadID: &dave.ID}
	db.Create(&division)

	alice := models.User{Name: "Alice", Email: "alice@example.com", Password: "secret", Role: models.RoleStaff, DivisionID: &division.ID}
	db.Create(&alice)

	return db, alice, carol, dave
}

func submitTestLeave(t *testing.T, svc *LeaveService, applicant models.User) *models.LeaveApplication {
	t.Helper()
	leave, err := svc.Submit(applicant, SubmitLeaveInput{
		LeaveType:     "casual",
		LeaveDays:     3,
		StartDate:     time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC),
		Reason:        "Family event",
		ActingOfficer: "Bob",
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	return leave
}

func notificationCount(db *gorm.DB) int64 {
	var count int64
	db.Model(&models.Notification{}).Count(&count)
	return count
}

func TestSubmitBindsApprovalChainAndNotifies(t *testing.T) {
	db, alice, carol, dave := setupWorkflowDB(t)
	svc := NewLeaveService(db)

	leave := submitTestLeave(t, svc, alice)

	assert.Equal(t, models.LeaveStatusPending, leave.Status)
	assert.Equal(t, carol.ID, leave.RecommenderID)
	assert.Equal(t, dave.ID, leave.ApproverID)

	// Tepat dua notifikasi: satu untuk recommender, satu untuk approver
	var notifs []models.Notification
	db.Order("id ASC").Find(&notifs)
	assert.Len(t, notifs, 2)

	assert.Equal(t, carol.ID, notifs[0].UserID)
	assert.Equal(t, models.NotifLeaveApplication, notifs[0].Type)
	assert.Contains(t, notifs[0].Message, "Alice")

	assert.Equal(t, dave.ID, notifs[1].UserID)
	assert.Equal(t, models.NotifLeaveApplication, notifs[1].Type)
	assert.Contains(t, notifs[1].Message, "may require your approval")

	for _, notif := range notifs {
		assert.False(t, notif.Read)
		assert.NotNil(t, notif.LeaveID)
		assert.Equal(t, leave.ID, *notif.LeaveID)
		assert.Equal(t, "Alice", notif.ApplicantName)
	}
}

func TestSubmitWithoutDivision(t *testing.T) {
	db, _, _, _ := setupWorkflowDB(t)
	svc := NewLeaveService(db)

	loner := models.User{Name: "Eve", Email: "eve@example.com", Password: "secret", Role: models.RoleStaff}
	db.Create(&loner)

	_, err := svc.Submit(loner, SubmitLeaveInput{LeaveType: "casual", LeaveDays: 1})
	assert.ErrorIs(t, err, ErrNoDivision)
	assert.EqualValues(t, 0, notificationCount(db))
}

func TestSubmitWithIncompleteApprovalChain(t *testing.T) {
	db, alice, _, _ := setupWorkflowDB(t)
	svc := NewLeaveService(db)

	// Divisi tanpa Head
	division := models.Division{Name: "Orphaned"}
	db.Create(&division)
	alice.DivisionID = &division.ID
	db.Save(&alice)

	_, err := svc.Submit(alice, SubmitLeaveInput{LeaveType: "casual", LeaveDays: 1})
	assert.ErrorIs(t, err, ErrNoApprovalChain)
}

func TestRecommendByNonDesignatedActor(t *testing.T) {
	db, alice, _, dave := setupWorkflowDB(t)
	svc := NewLeaveService(db)

	leave := submitTestLeave(t, svc, alice)
	before := notificationCount(db)

	// Dave adalah approver, bukan recommender
	_, err := svc.Recommend(dave, leave.ID, true, "")
	assert.ErrorIs(t, err, ErrNotAuthorized)

	// Record tidak berubah, tidak ada notifikasi baru
	var reloaded models.LeaveApplication
	db.First(&reloaded, leave.ID)
	assert.Equal(t, models.LeaveStatusPending, reloaded.Status)
	assert.Nil(t, reloaded.RecommendedBy)
	assert.Equal(t, before, notificationCount(db))
}

func TestRecommendStampsMetadataAndNotifiesApprover(t *testing.T) {
	db, alice, carol, dave := setupWorkflowDB(t)
	svc := NewLeaveService(db)

	leave := submitTestLeave(t, svc, alice)
	before := notificationCount(db)

	updated, err := svc.Recommend(carol, leave.ID, true, "No schedule conflicts")
	assert.NoError(t, err)
	assert.Equal(t, models.LeaveStatusRecommended, updated.Status)
	assert.NotNil(t, updated.RecommendedBy)
	assert.Equal(t, carol.ID, *updated.RecommendedBy)
	assert.NotNil(t, updated.RecommendedAt)
	assert.Equal(t, "No schedule conflicts", updated.RecommendRemark)

	// Tepat satu notifikasi baru, ke approver
	assert.Equal(t, before+1, notificationCount(db))
	var notif models.Notification
	db.Order("id DESC").First(&notif)
	assert.Equal(t, dave.ID, notif.UserID)
	assert.Equal(t, models.NotifLeaveRecommendation, notif.Type)
	assert.Contains(t, notif.Message, "recommended")
}

func TestRecommenderRejectsFromPending(t *testing.T) {
	db, alice, carol, dave := setupWorkflowDB(t)
	svc := NewLeaveService(db)

	leave := submitTestLeave(t, svc, alice)

	updated, err := svc.Recommend(carol, leave.ID, false, "Short staffed that week")
	assert.NoError(t, err)
	assert.Equal(t, models.LeaveStatusRejected, updated.Status)
	assert.Equal(t, "Short staffed that week", updated.RejectionReason)

	var notif models.Notification
	db.Order("id DESC").First(&notif)
	assert.Equal(t, dave.ID, notif.UserID)
	assert.Equal(t, models.NotifLeaveRecommendation, notif.Type)
	assert.Contains(t, notif.Message, "rejected")
}

func TestDecideApproveNotifiesApplicant(t *testing.T) {
	db, alice, carol, dave := setupWorkflowDB(t)
	svc := NewLeaveService(db)

	leave := submitTestLeave(t, svc, alice)
	_, err := svc.Recommend(carol, leave.ID, true, "")
	assert.NoError(t, err)

	updated, err := svc.Decide(dave, leave.ID, true, "Enjoy your leave")
	assert.NoError(t, err)
	assert.Equal(t, models.LeaveStatusApproved, updated.Status)
	assert.NotNil(t, updated.ApprovedBy)
	assert.Equal(t, dave.ID, *updated.ApprovedBy)
	assert.NotNil(t, updated.ApprovedAt)

	var notif models.Notification
	db.Order("id DESC").First(&notif)
	assert.Equal(t, alice.ID, notif.UserID)
	assert.Equal(t, models.NotifLeaveApproval, notif.Type)
}

func TestDecideRejectNotifiesApplicant(t *testing.T) {
	db, alice, carol, dave := setupWorkflowDB(t)
	svc := NewLeaveService(db)

	leave := submitTestLeave(t, svc, alice)
	_, err := svc.Recommend(carol, leave.ID, true, "")
	assert.NoError(t, err)

	updated, err := svc.Decide(dave, leave.ID, false, "Critical release that week")
	assert.NoError(t, err)
	assert.Equal(t, models.LeaveStatusRejected, updated.Status)
	assert.Equal(t, "Critical release that week", updated.RejectionReason)

	var notif models.Notification
	db.Order("id DESC").First(&notif)
	assert.Equal(t, alice.ID, notif.UserID)
	assert.Equal(t, models.NotifLeaveRejection, notif.Type)
	assert.Contains(t, notif.Message, "Critical release that week")
}

func TestInvalidStateTransitions(t *testing.T) {
	db, alice, carol, dave := setupWorkflowDB(t)
	svc := NewLeaveService(db)

	leave := submitTestLeave(t, svc, alice)

	// Approver tidak boleh melompati tahap rekomendasi
	_, err := svc.Decide(dave, leave.ID, true, "")
	assert.ErrorIs(t, err, ErrInvalidState)

	_, err = svc.Recommend(carol, leave.ID, true, "")
	assert.NoError(t, err)

	// Recommend kedua kalinya tidak valid
	_, err = svc.Recommend(carol, leave.ID, true, "")
	assert.ErrorIs(t, err, ErrInvalidState)

	_, err = svc.Decide(dave, leave.ID, true, "")
	assert.NoError(t, err)

	// Status terminal: tidak ada transisi lagi, record tidak berubah
	before := notificationCount(db)
	_, err = svc.Decide(dave, leave.ID, false, "changed my mind")
	assert.ErrorIs(t, err, ErrInvalidState)

	var reloaded models.LeaveApplication
	db.First(&reloaded, leave.ID)
	assert.Equal(t, models.LeaveStatusApproved, reloaded.Status)
	assert.Empty(t, reloaded.RejectionReason)
	assert.Equal(t, before, notificationCount(db))
}

func TestFullWorkflowScenario(t *testing.T) {
	db, alice, carol, dave := setupWorkflowDB(t)
	svc := NewLeaveService(db)

	// Alice mengajukan cuti casual 3 hari
	leave := submitTestLeave(t, svc, alice)
	assert.Equal(t, models.LeaveStatusPending, leave.Status)
	assert.EqualValues(t, 2, notificationCount(db))

	// Carol merekomendasikan
	leave2, err := svc.Recommend(carol, leave.ID, true, "")
	assert.NoError(t, err)
	assert.Equal(t, models.LeaveStatusRecommended, leave2.Status)
	assert.EqualValues(t, 3, notificationCount(db))

	// Dave menyetujui
	leave3, err := svc.Decide(dave, leave.ID, true, "")
	assert.NoError(t, err)
	assert.Equal(t, models.LeaveStatusApproved, leave3.Status)
	assert.EqualValues(t, 4, notificationCount(db))

	var last models.Notification
	db.Order("id DESC").First(&last)
	assert.Equal(t, alice.ID, last.UserID)
	assert.Equal(t, models.NotifLeaveApproval, last.Type)
}
