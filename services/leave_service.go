package services

import (
	"errors"
	"time"

	"github.com/yeremiapane/staff-portal/models"
	"github.com/yeremiapane/staff-portal/utils"
	"gorm.io/gorm"
)

var (
	// ErrNotAuthorized -> aktor bukan recommender/approver yang ditunjuk
	ErrNotAuthorized = errors.New("you are not the designated reviewer for this leave application")
	// ErrInvalidState -> transisi dari status terminal atau status yang tidak cocok
	ErrInvalidState = errors.New("leave application status does not allow this action")
	// ErrNoApprovalChain -> divisi pemohon belum punya CC/Head
	ErrNoApprovalChain = errors.New("division has no recommender or approver configured")
	// ErrNoDivision -> pemohon tidak terdaftar di divisi mana pun
	ErrNoDivision = errors.New("applicant does not belong to any division")
)

// LeaveService memegang state machine pengajuan cuti. Mutasi status dan
// notifikasi dikirim berurutan tapi TIDAK dalam satu transaksi: kalau proses
// mati di antaranya, status tetap tersimpan dan notifikasi bisa hilang.
type LeaveService struct {
	DB       *gorm.DB
	Notifier *NotificationService
}

func NewLeaveService(db *gorm.DB) *LeaveService {
	return &LeaveService{
		DB:       db,
		Notifier: NewNotificationService(db),
	}
}

type SubmitLeaveInput struct {
	LeaveType     string
	LeaveDays     int
	StartDate     time.Time
	EndDate       time.Time
	Reason        string
	ActingOfficer string
}

// Submit membuat pengajuan baru berstatus pending dan mengikat recommender
// (Division CC) serta approver (Division Head) dari divisi pemohon.
func (ls *LeaveService) Submit(applicant models.User, input SubmitLeaveInput) (*models.LeaveApplication, error) {
	if applicant.DivisionID == nil {
		return nil, ErrNoDivision
	}

	var division models.Division
	if err := ls.DB.First(&division, *applicant.DivisionID).Error; err != nil {
		return nil, err
	}
	if division.CCID == nil || division.HeadID == nil {
		return nil, ErrNoApprovalChain
	}

	leave := models.LeaveApplication{
		ApplicantID:   applicant.ID,
		LeaveType:     input.LeaveType,
		LeaveDays:     input.LeaveDays,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		Reason:        input.Reason,
		ActingOfficer: input.ActingOfficer,
		RecommenderID: *division.CCID,
		ApproverID:    *division.HeadID,
		Status:        models.LeaveStatusPending,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	if err := ls.DB.Create(&leave).Error; err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Leave application %d submitted by user %d (recommender=%d approver=%d)",
		leave.ID, applicant.ID, leave.RecommenderID, leave.ApproverID)

	ls.dispatch(NotificationsForSubmit(leave, applicant.Name))
	return &leave, nil
}

// Recommend -> tahap pertama; hanya recommender yang terikat yang boleh.
// recommend=false berarti recommender menolak langsung dari pending.
func (ls *LeaveService) Recommend(actor models.User, leaveID uint, recommend bool, remarks string) (*models.LeaveApplication, error) {
	var leave models.LeaveApplication
	if err := ls.DB.First(&leave, leaveID).Error; err != nil {
		return nil, err
	}

	if actor.ID != leave.RecommenderID {
		return nil, ErrNotAuthorized
	}
	if leave.Status != models.LeaveStatusPending {
		return nil, ErrInvalidState
	}

	now := time.Now()
	leave.RecommendedBy = &actor.ID
	leave.RecommendedAt = &now
	if recommend {
		leave.Status = models.LeaveStatusRecommended
		leave.RecommendRemark = remarks
	} else {
		leave.Status = models.LeaveStatusRejected
		leave.RejectionReason = remarks
	}

	if err := ls.DB.Save(&leave).Error; err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Leave application %d %s by recommender %d",
		leave.ID, leave.Status, actor.ID)

	ls.dispatch(NotificationsForRecommendation(leave, ls.applicantName(leave.ApplicantID), recommend))
	return &leave, nil
}

// Decide -> keputusan akhir; hanya approver yang terikat yang boleh.
func (ls *LeaveService) Decide(actor models.User, leaveID uint, approve bool, remarks string) (*models.LeaveApplication, error) {
	var leave models.LeaveApplication
	if err := ls.DB.First(&leave, leaveID).Error; err != nil {
		return nil, err
	}

	if actor.ID != leave.ApproverID {
		return nil, ErrNotAuthorized
	}
	if leave.Status != models.LeaveStatusRecommended {
		return nil, ErrInvalidState
	}

	now := time.Now()
	leave.ApprovedBy = &actor.ID
	leave.ApprovedAt = &now
	if approve {
		leave.Status = models.LeaveStatusApproved
		leave.ApprovalRemark = remarks
	} else {
		leave.Status = models.LeaveStatusRejected
		leave.RejectionReason = remarks
	}

	if err := ls.DB.Save(&leave).Error; err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Leave application %d %s by approver %d",
		leave.ID, leave.Status, actor.ID)

	ls.dispatch(NotificationsForDecision(leave, approve))
	return &leave, nil
}

// dispatch mengeksekusi hasil mapping satu per satu, tanpa retry dan tanpa
// batching. Kegagalan create sudah ditelan di NotificationService.
func (ls *LeaveService) dispatch(inputs []NotificationInput) {
	for _, input := range inputs {
		ls.Notifier.Create(input)
	}
}

func (ls *LeaveService) applicantName(applicantID uint) string {
	var applicant models.User
	if err := ls.DB.First(&applicant, applicantID).Error; err != nil {
		utils.ErrorLogger.Printf("Failed to load applicant %d: %v", applicantID, err)
		return "A staff member"
	}
	return applicant.Name
}
