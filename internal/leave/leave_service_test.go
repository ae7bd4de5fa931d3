package leave_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	approvalerrors "hr-backoffice/internal/approval/errors"
	"hr-backoffice/internal/balance"
	balanceerrors "hr-backoffice/internal/balance/errors"
	balanceMock "hr-backoffice/internal/balance/mock"
	"hr-backoffice/internal/domain"
	"hr-backoffice/internal/leave"
	leaveerrors "hr-backoffice/internal/leave/errors"
	leaveMock "hr-backoffice/internal/leave/mock"
	"hr-backoffice/internal/leavetype"
	lookupMock "hr-backoffice/internal/lookup/mock"
	"hr-backoffice/internal/messaging/kafka"
	kafkaMock "hr-backoffice/internal/messaging/kafka/mock"
	"hr-backoffice/internal/shared/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service leave.Service
	repo    *leaveMock.MockRepository
	lookup  *lookupMock.MockLookup
	ledger  *balanceMock.MockLedger
	outbox  *kafkaMock.MockOutboxRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	t.Cleanup(func() { db.Close() })
	repo := leaveMock.NewMockRepository(ctrl)
	lk := lookupMock.NewMockLookup(ctrl)
	ledger := balanceMock.NewMockLedger(ctrl)
	outbox := kafkaMock.NewMockOutboxRepository(ctrl)

	svc := leave.NewService(db, repo, lk, ledger,
		leave.WithClock(fixedClock),
		leave.WithOutbox(outbox),
	)

	return &serviceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: svc,
		repo:    repo,
		lookup:  lk,
		ledger:  ledger,
		outbox:  outbox,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func pendingLeave(employeeID, leaveTypeID uuid.UUID) *leave.LeaveRequest {
	return &leave.LeaveRequest{
		ID:          uuid.New(),
		EmployeeID:  employeeID,
		LeaveTypeID: leaveTypeID,
		StartDate:   *day("2026-10-19"),
		EndDate:     *day("2026-10-21"),
		TotalDays:   3,
		Reason:      "flu",
		Status:      domain.StatusPending,
		CreatedBy:   employeeID,
		IsActive:    true,
	}
}

func TestLeaveService_Create(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()
	leaveTypeID := uuid.New()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := leave.CreateLeaveRequest{
			EmployeeID:  employeeID.String(),
			LeaveTypeID: leaveTypeID.String(),
			StartDate:   "2026-10-19",
			EndDate:     "2026-10-21",
			Reason:      "flu",
		}

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.lookup.EXPECT().EmployeeExists(ctx, employeeID).Return(true, nil)
		deps.lookup.EXPECT().LeaveTypeByID(ctx, leaveTypeID).Return(&leavetype.LeaveType{ID: leaveTypeID, MaxDaysPerYear: 10, IsActive: true}, nil)
		deps.repo.EXPECT().HasOverlappingPeriod(ctx, employeeID, gomock.Any(), gomock.Any(), nil).Return(false, nil)
		deps.lookup.EXPECT().HolidaysInRange(ctx, gomock.Any(), gomock.Any()).Return(nil, nil)
		deps.lookup.EXPECT().CurrentBalance(ctx, employeeID, leaveTypeID, 2026).Return(balance.Snapshot{Total: 10, Remaining: 10, Fresh: true}, nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, l *leave.LeaveRequest) error {
			assert.Equal(t, employeeID, l.EmployeeID)
			assert.Equal(t, 3, l.TotalDays)
			assert.Equal(t, domain.StatusPending, l.Status)
			assert.Equal(t, employeeID, l.CreatedBy)
			assert.Nil(t, l.ApprovedBy)
			assert.Nil(t, l.DecidedAt)
			return nil
		})

		resp, err := deps.service.Create(ctx, employeeID.String(), req)

		assert.NoError(t, err)
		assert.Equal(t, "PENDING", resp.Status)
		assert.Equal(t, 3, resp.TotalDays)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative - validation failure lists every violation", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := leave.CreateLeaveRequest{
			EmployeeID:  "not-a-uuid",
			LeaveTypeID: leaveTypeID.String(),
			StartDate:   "19/10/2026",
			EndDate:     "2026-10-21",
		}

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.lookup.EXPECT().LeaveTypeByID(ctx, leaveTypeID).Return(&leavetype.LeaveType{ID: leaveTypeID, IsActive: true}, nil)

		_, err := deps.service.Create(ctx, employeeID.String(), req)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeValidationFailed, appErr.Code)
		assert.Equal(t, []string{
			leaveerrors.MsgInvalidEmployeeID,
			leaveerrors.MsgReasonRequired,
			leaveerrors.MsgStartDateRequired,
		}, appErr.Details)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative - invalid actor", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Create(ctx, "", leave.CreateLeaveRequest{})

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidActorID)
	})
}

func TestLeaveService_Update(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()
	leaveTypeID := uuid.New()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		existing := pendingLeave(employeeID, leaveTypeID)

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDForUpdate(ctx, existing.ID).Return(existing, nil)
		deps.lookup.EXPECT().EmployeeExists(ctx, employeeID).Return(true, nil)
		deps.lookup.EXPECT().LeaveTypeByID(ctx, leaveTypeID).Return(&leavetype.LeaveType{ID: leaveTypeID, MaxDaysPerYear: 10, IsActive: true}, nil)
		deps.repo.EXPECT().HasOverlappingPeriod(ctx, employeeID, gomock.Any(), gomock.Any(), &existing.ID).Return(false, nil)
		deps.lookup.EXPECT().HolidaysInRange(ctx, gomock.Any(), gomock.Any()).Return(nil, nil)
		deps.lookup.EXPECT().CurrentBalance(ctx, employeeID, leaveTypeID, 2026).Return(balance.Snapshot{Total: 10, Remaining: 10}, nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, l *leave.LeaveRequest) error {
			assert.Equal(t, 5, l.TotalDays)
			assert.Equal(t, "family event", l.Reason)
			return nil
		})

		resp, err := deps.service.Update(ctx, employeeID.String(), existing.ID.String(), leave.UpdateLeaveRequest{
			LeaveTypeID: leaveTypeID.String(),
			StartDate:   "2026-10-19",
			EndDate:     "2026-10-23",
			Reason:      "family event",
		})

		assert.NoError(t, err)
		assert.Equal(t, "2026-10-23", resp.EndDate)
	})

	t.Run("negative - missing request", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDForUpdate(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Update(ctx, employeeID.String(), id.String(), leave.UpdateLeaveRequest{})

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, []string{leaveerrors.MsgInvalidLeaveRequestID}, appErr.Details)
	})

	t.Run("negative - someone else updates", func(t *testing.T) {
		deps := setupServiceTest(t)
		existing := pendingLeave(employeeID, leaveTypeID)
		stranger := uuid.New()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDForUpdate(ctx, existing.ID).Return(existing, nil)

		_, err := deps.service.Update(ctx, stranger.String(), existing.ID.String(), leave.UpdateLeaveRequest{
			LeaveTypeID: leaveTypeID.String(),
			StartDate:   "2026-10-26",
			EndDate:     "2026-10-30",
			Reason:      "hijacked",
		})

		assert.ErrorIs(t, err, approvalerrors.ErrNotRequester)
		assert.Equal(t, "flu", existing.Reason)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestLeaveService_Decide(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()
	leaveTypeID := uuid.New()
	approverID := uuid.New()

	t.Run("success - approve consumes balance and queues event", func(t *testing.T) {
		deps := setupServiceTest(t)
		l := pendingLeave(employeeID, leaveTypeID)
		note := "get well soon"

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDForUpdate(ctx, l.ID).Return(l, nil)
		deps.ledger.EXPECT().WithTx(gomock.Any()).Return(deps.ledger)
		deps.ledger.EXPECT().Consume(ctx, employeeID, leaveTypeID, 2026, 3, l.ID).
			Return(balance.EmployeeLeaveBalance{Sequence: 1, Total: 10, Used: 3, Remaining: 7}, nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e kafka.OutboxEvent) error {
			assert.Equal(t, l.ID.String(), e.AggregateID)
			return nil
		})
		deps.repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, got *leave.LeaveRequest) error {
			assert.Equal(t, domain.StatusApproved, got.Status)
			assert.Equal(t, approverID, *got.ApprovedBy)
			assert.True(t, today.Equal(*got.DecidedAt))
			assert.Equal(t, note, *got.DecisionNote)
			return nil
		})

		resp, err := deps.service.Decide(ctx, approverID.String(), l.ID.String(), leave.DecisionRequest{Status: "APPROVED", Note: &note})

		assert.NoError(t, err)
		assert.Equal(t, "APPROVED", resp.Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("success - reject leaves the ledger alone", func(t *testing.T) {
		deps := setupServiceTest(t)
		l := pendingLeave(employeeID, leaveTypeID)

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDForUpdate(ctx, l.ID).Return(l, nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

		resp, err := deps.service.Decide(ctx, approverID.String(), l.ID.String(), leave.DecisionRequest{Status: "REJECTED"})

		assert.NoError(t, err)
		assert.Equal(t, "REJECTED", resp.Status)
		assert.Equal(t, approverID.String(), *resp.ApprovedBy)
	})

	t.Run("negative - insufficient balance rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		l := pendingLeave(employeeID, leaveTypeID)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDForUpdate(ctx, l.ID).Return(l, nil)
		deps.ledger.EXPECT().WithTx(gomock.Any()).Return(deps.ledger)
		deps.ledger.EXPECT().Consume(ctx, employeeID, leaveTypeID, 2026, 3, l.ID).
			Return(balance.EmployeeLeaveBalance{}, balanceerrors.ErrInsufficientBalance)

		_, err := deps.service.Decide(ctx, approverID.String(), l.ID.String(), leave.DecisionRequest{Status: "APPROVED"})

		assert.ErrorIs(t, err, balanceerrors.ErrInsufficientBalance)
		assert.Equal(t, domain.StatusPending, l.Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative - already decided", func(t *testing.T) {
		deps := setupServiceTest(t)
		l := pendingLeave(employeeID, leaveTypeID)
		l.Status = domain.StatusRejected

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDForUpdate(ctx, l.ID).Return(l, nil)

		_, err := deps.service.Decide(ctx, approverID.String(), l.ID.String(), leave.DecisionRequest{Status: "APPROVED"})

		assert.ErrorIs(t, err, approvalerrors.ErrNotPending)
	})

	t.Run("negative - invalid decision payload", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Decide(ctx, "", uuid.NewString(), leave.DecisionRequest{Status: "CANCELLED"})

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, []string{"Invalid Status", "Invalid Approver ID"}, appErr.Details)
	})

	t.Run("negative - not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDForUpdate(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Decide(ctx, approverID.String(), id.String(), leave.DecisionRequest{Status: "APPROVED"})

		assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
	})
}

func TestLeaveService_Cancel(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()
	leaveTypeID := uuid.New()

	t.Run("success - requester cancels", func(t *testing.T) {
		deps := setupServiceTest(t)
		l := pendingLeave(employeeID, leaveTypeID)

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDForUpdate(ctx, l.ID).Return(l, nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

		resp, err := deps.service.Cancel(ctx, employeeID.String(), l.ID.String())

		assert.NoError(t, err)
		assert.Equal(t, "CANCELLED", resp.Status)
		assert.Nil(t, resp.ApprovedBy)
		assert.NotNil(t, resp.DecidedAt)
	})

	t.Run("negative - someone else cancels", func(t *testing.T) {
		deps := setupServiceTest(t)
		l := pendingLeave(employeeID, leaveTypeID)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDForUpdate(ctx, l.ID).Return(l, nil)

		_, err := deps.service.Cancel(ctx, uuid.NewString(), l.ID.String())

		assert.ErrorIs(t, err, approvalerrors.ErrNotRequester)
	})
}

func TestLeaveService_Balance(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()
	leaveTypeID := uuid.New()

	t.Run("success - defaults to current year", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.lookup.EXPECT().CurrentBalance(ctx, employeeID, leaveTypeID, 2026).
			Return(balance.Snapshot{EmployeeID: employeeID, LeaveTypeID: leaveTypeID, Year: 2026, Sequence: 1, Total: 10, Used: 3, Remaining: 7}, nil)

		resp, err := deps.service.CurrentBalance(ctx, leave.BalanceQuery{EmployeeID: employeeID.String(), LeaveTypeID: leaveTypeID.String()})

		assert.NoError(t, err)
		assert.Equal(t, 7, resp.Remaining)
		assert.Equal(t, resp.Total, resp.Used+resp.Remaining)
	})

	t.Run("success - history", func(t *testing.T) {
		deps := setupServiceTest(t)
		source := uuid.New()
		deps.ledger.EXPECT().History(ctx, employeeID, leaveTypeID, 2025).Return([]balance.EmployeeLeaveBalance{
			{ID: uuid.New(), Sequence: 1, Total: 12, Used: 2, Remaining: 10, SourceRequestID: &source, CreatedAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
		}, nil)

		resp, err := deps.service.BalanceHistory(ctx, leave.BalanceQuery{EmployeeID: employeeID.String(), LeaveTypeID: leaveTypeID.String(), Year: 2025})

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, source.String(), *resp[0].SourceRequestID)
	})

	t.Run("negative - invalid ids", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.CurrentBalance(ctx, leave.BalanceQuery{})

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, []string{leaveerrors.MsgInvalidEmployeeID, leaveerrors.MsgInvalidLeaveTypeID}, appErr.Details)
	})

	t.Run("negative - ledger error", func(t *testing.T) {
		deps := setupServiceTest(t)
		dbErr := errors.New("timeout")
		deps.ledger.EXPECT().History(ctx, employeeID, leaveTypeID, 2026).Return(nil, dbErr)

		_, err := deps.service.BalanceHistory(ctx, leave.BalanceQuery{EmployeeID: employeeID.String(), LeaveTypeID: leaveTypeID.String()})

		assert.ErrorIs(t, err, dbErr)
	})
}
