package services

import (
	"fmt"

	"github.com/yeremiapane/staff-portal/models"
)

// Mapping murni dari transisi workflow ke notifikasi yang harus dibuat.
// Fungsi-fungsi ini tidak menyentuh database; LeaveService yang mengeksekusi
// hasilnya lewat NotificationService.Create satu per satu.

// NotificationsForSubmit -> dua notifikasi: recommender dan approver
func NotificationsForSubmit(leave models.LeaveApplication, applicantName string) []NotificationInput {
	leaveID := leave.ID
	return []NotificationInput{
		{
			UserID:        leave.RecommenderID,
			Type:          models.NotifLeaveApplication,
			Title:         "New Leave Application",
			Message: fmt.Sprintf("%s submitted a %s leave application for %d day(s). Please review and recommend.",
				applicantName, leave.LeaveType, leave.LeaveDays),
			LeaveID:       &leaveID,
			ApplicantName: applicantName,
		},
		{
			UserID:        leave.ApproverID,
			Type:          models.NotifLeaveApplication,
			Title:         "New Leave Application",
			Message: fmt.Sprintf("%s submitted a %s leave application that may require your approval.",
				applicantName, leave.LeaveType),
			LeaveID:       &leaveID,
			ApplicantName: applicantName,
		},
	}
}

// NotificationsForRecommendation -> satu notifikasi ke approver; isi pesan
// tergantung hasil review recommender
func NotificationsForRecommendation(leave models.LeaveApplication, applicantName string, recommended bool) []NotificationInput {
	leaveID := leave.ID
	message := fmt.Sprintf("The leave application from %s has been recommended and awaits your decision.", applicantName)
	if !recommended {
		message = fmt.Sprintf("The leave application from %s was rejected at the recommendation stage.", applicantName)
	}

	return []NotificationInput{
		{
			UserID:        leave.ApproverID,
			Type:          models.NotifLeaveRecommendation,
			Title:         "Leave Recommendation",
			Message:       message,
			LeaveID:       &leaveID,
			ApplicantName: applicantName,
		},
	}
}

// NotificationsForDecision -> satu notifikasi ke pemohon untuk keputusan akhir
func NotificationsForDecision(leave models.LeaveApplication, approved bool) []NotificationInput {
	leaveID := leave.ID

	notifType := models.NotifLeaveApproval
	title := "Leave Approved"
	message := fmt.Sprintf("Your %s leave application for %d day(s) has been approved.", leave.LeaveType, leave.LeaveDays)
	if !approved {
		notifType = models.NotifLeaveRejection
		title = "Leave Rejected"
		message = fmt.Sprintf("Your %s leave application has been rejected. Reason: %s", leave.LeaveType, leave.RejectionReason)
	}

	return []NotificationInput{
		{
			UserID:  leave.ApplicantID,
			Type:    notifType,
			Title:   title,
			Message: message,
			LeaveID: &leaveID,
		},
	}
}
