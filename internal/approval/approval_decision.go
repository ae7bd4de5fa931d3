package approval

import (
	approvalerrors "hr-backoffice/internal/approval/errors"
	"hr-backoffice/internal/domain"
	"hr-backoffice/internal/shared/apperror"

	"github.com/google/uuid"
)

// ValidateDecision checks an approver's decision payload. Only APPROVED and
// REJECTED may be decided by an approver; cancellation has its own path.
func ValidateDecision(status domain.RequestStatus, approverID uuid.UUID) error {
	var violations []string
	if status != domain.StatusApproved && status != domain.StatusRejected {
		violations = append(violations, approvalerrors.MsgInvalidStatus)
	}
	if approverID == uuid.Nil {
		violations = append(violations, approvalerrors.MsgInvalidApproverID)
	}
	if len(violations) > 0 {
		return apperror.Validation(violations)
	}
	return nil
}
