package domain

// RequestStatus represents the review stage of an internship request.
type RequestStatus string

const (
	RequestStatusSubmitted      RequestStatus = "SUBMITTED"
	RequestStatusUnderReview    RequestStatus = "UNDER_REVIEW"
	RequestStatusApproved       RequestStatus = "APPROVED"
	RequestStatusMentorAssigned RequestStatus = "MENTOR_ASSIGNED"
	RequestStatusSignedOff      RequestStatus = "SIGNED_OFF"
	RequestStatusInProgress     RequestStatus = "IN_PROGRESS"
	RequestStatusCompleted      RequestStatus = "COMPLETED"
	RequestStatusRejected       RequestStatus = "REJECTED"
)

func (s RequestStatus) String() string { return string(s) }

func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusSubmitted, RequestStatusUnderReview, RequestStatusApproved,
		RequestStatusMentorAssigned, RequestStatusSignedOff, RequestStatusInProgress,
		RequestStatusCompleted, RequestStatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether a request in this status can never move again.
func (s RequestStatus) IsTerminal() bool {
	return s == RequestStatusCompleted || s == RequestStatusRejected
}

// Decision represents a reviewer's verdict on a request or batch candidate.
type Decision string

const (
	DecisionApprove Decision = "APPROVE"
	DecisionReject  Decision = "REJECT"
)

func (d Decision) String() string { return string(d) }

func (d Decision) IsValid() bool {
	return d == DecisionApprove || d == DecisionReject
}

// BatchStatus is the derived review state of a forwarded batch.
type BatchStatus string

const (
	BatchStatusPendingReview      BatchStatus = "PENDING_REVIEW"
	BatchStatusPartiallyDecided   BatchStatus = "PARTIALLY_DECIDED"
	BatchStatusApprovedByReviewer BatchStatus = "APPROVED_BY_REVIEWER"
	BatchStatusRejectedByReviewer BatchStatus = "REJECTED_BY_REVIEWER"
)

func (s BatchStatus) String() string { return string(s) }

func (s BatchStatus) IsValid() bool {
	switch s {
	case BatchStatusPendingReview, BatchStatusPartiallyDecided,
		BatchStatusApprovedByReviewer, BatchStatusRejectedByReviewer:
		return true
	}
	return false
}

// AssignmentStatus represents the lifecycle state of a mentor assignment.
type AssignmentStatus string

const (
	AssignmentStatusActive    AssignmentStatus = "ACTIVE"
	AssignmentStatusCompleted AssignmentStatus = "COMPLETED"
	AssignmentStatusCancelled AssignmentStatus = "CANCELLED"
)

func (s AssignmentStatus) String() string { return string(s) }

func (s AssignmentStatus) IsValid() bool {
	switch s {
	case AssignmentStatusActive, AssignmentStatusCompleted, AssignmentStatusCancelled:
		return true
	}
	return false
}

// StaffRole identifies the workflow role of a staff member.
type StaffRole string

const (
	StaffRoleCoordinator    StaffRole = "COORDINATOR"
	StaffRoleDepartmentHead StaffRole = "DEPARTMENT_HEAD"
	StaffRoleMentor         StaffRole = "MENTOR"
)

func (r StaffRole) String() string { return string(r) }

func (r StaffRole) IsValid() bool {
	switch r {
	case StaffRoleCoordinator, StaffRoleDepartmentHead, StaffRoleMentor:
		return true
	}
	return false
}

// MentorTier determines a mentor's default assignment capacity.
type MentorTier string

const (
	MentorTierSenior  MentorTier = "SENIOR"
	MentorTierRegular MentorTier = "REGULAR"
)

func (t MentorTier) String() string { return string(t) }

func (t MentorTier) IsValid() bool {
	return t == MentorTierSenior || t == MentorTierRegular
}

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeCandidate  EntityType = "CANDIDATE"
	EntityTypeRequest    EntityType = "REQUEST"
	EntityTypeBatch      EntityType = "BATCH"
	EntityTypeAssignment EntityType = "ASSIGNMENT"
	EntityTypeReport     EntityType = "REPORT"
)

func (t EntityType) String() string { return string(t) }

func (t EntityType) IsValid() bool {
	switch t {
	case EntityTypeCandidate, EntityTypeRequest, EntityTypeBatch,
		EntityTypeAssignment, EntityTypeReport:
		return true
	}
	return false
}

// AuditAction identifies the mutating operation recorded in the audit log.
type AuditAction string

const (
	AuditActionSubmit       AuditAction = "SUBMIT"
	AuditActionBeginReview  AuditAction = "BEGIN_REVIEW"
	AuditActionApprove      AuditAction = "APPROVE"
	AuditActionReject       AuditAction = "REJECT"
	AuditActionFinalApprove AuditAction = "FINAL_APPROVE"
	AuditActionForward      AuditAction = "FORWARD"
	AuditActionBatchDecide  AuditAction = "BATCH_DECIDE"
	AuditActionAssignMentor AuditAction = "ASSIGN_MENTOR"
	AuditActionStart        AuditAction = "START"
	AuditActionComplete     AuditAction = "COMPLETE"
	AuditActionRollback     AuditAction = "ROLLBACK"
	AuditActionFileReport   AuditAction = "FILE_REPORT"
)

func (a AuditAction) String() string { return string(a) }

// NotificationPriority controls delivery urgency hints for channel adapters.
type NotificationPriority string

const (
	NotificationPriorityLow    NotificationPriority = "LOW"
	NotificationPriorityNormal NotificationPriority = "NORMAL"
	NotificationPriorityHigh   NotificationPriority = "HIGH"
)

func (p NotificationPriority) String() string { return string(p) }
