package leave_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	approvalerrors "hr-backoffice/internal/approval/errors"
	"hr-backoffice/internal/leave"
	leaveerrors "hr-backoffice/internal/leave/errors"
	"hr-backoffice/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	createFn         func(ctx context.Context, actorID string, req leave.CreateLeaveRequest) (leave.LeaveResponse, error)
	updateFn         func(ctx context.Context, actorID, id string, req leave.UpdateLeaveRequest) (leave.LeaveResponse, error)
	decideFn         func(ctx context.Context, approverID, id string, req leave.DecisionRequest) (leave.LeaveResponse, error)
	cancelFn         func(ctx context.Context, actorID, id string) (leave.LeaveResponse, error)
	getByIDFn        func(ctx context.Context, id string) (leave.LeaveResponse, error)
	listByEmployeeFn func(ctx context.Context, employeeID string) ([]leave.LeaveResponse, error)
	currentBalanceFn func(ctx context.Context, q leave.BalanceQuery) (leave.BalanceResponse, error)
	balanceHistoryFn func(ctx context.Context, q leave.BalanceQuery) ([]leave.BalanceEntryResponse, error)
}

func (f *fakeService) Create(ctx context.Context, actorID string, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	return f.createFn(ctx, actorID, req)
}

func (f *fakeService) Update(ctx context.Context, actorID, id string, req leave.UpdateLeaveRequest) (leave.LeaveResponse, error) {
	return f.updateFn(ctx, actorID, id, req)
}

func (f *fakeService) Decide(ctx context.Context, approverID, id string, req leave.DecisionRequest) (leave.LeaveResponse, error) {
	return f.decideFn(ctx, approverID, id, req)
}

func (f *fakeService) Cancel(ctx context.Context, actorID, id string) (leave.LeaveResponse, error) {
	return f.cancelFn(ctx, actorID, id)
}

func (f *fakeService) GetByID(ctx context.Context, id string) (leave.LeaveResponse, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeService) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveResponse, error) {
	return f.listByEmployeeFn(ctx, employeeID)
}

func (f *fakeService) CurrentBalance(ctx context.Context, q leave.BalanceQuery) (leave.BalanceResponse, error) {
	return f.currentBalanceFn(ctx, q)
}

func (f *fakeService) BalanceHistory(ctx context.Context, q leave.BalanceQuery) ([]leave.BalanceEntryResponse, error) {
	return f.balanceHistoryFn(ctx, q)
}

type apiEnvelope struct {
	Ok   bool            `json:"ok"`
	Data json.RawMessage `json:"data"`
	Meta *struct {
		Total int64 `json:"total"`
	} `json:"meta"`
	Error *struct {
		Code    string   `json:"code"`
		Message string   `json:"message"`
		Details []string `json:"details"`
	} `json:"error"`
}

func newTestContext(method, target string, body any) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	c.Request = httptest.NewRequest(method, target, &buf)
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestHandler_Create(t *testing.T) {
	actorID := uuid.NewString()

	t.Run("success", func(t *testing.T) {
		svc := &fakeService{
			createFn: func(_ context.Context, actor string, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
				assert.Equal(t, actorID, actor)
				assert.Equal(t, "2026-10-19", req.StartDate)
				return leave.LeaveResponse{ID: uuid.NewString(), Status: "PENDING", TotalDays: 3}, nil
			},
		}
		h := leave.NewHandler(svc)

		c, w := newTestContext(http.MethodPost, "/leaves", leave.CreateLeaveRequest{
			EmployeeID: actorID, StartDate: "2026-10-19", EndDate: "2026-10-21", Reason: "flu",
		})
		c.Set("employee_id", actorID)
		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decode(t, w)
		assert.True(t, env.Ok)
		var got leave.LeaveResponse
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, "PENDING", got.Status)
	})

	t.Run("negative - validation failed", func(t *testing.T) {
		svc := &fakeService{
			createFn: func(context.Context, string, leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
				return leave.LeaveResponse{}, apperror.Validation([]string{
					leaveerrors.MsgReasonRequired,
					leaveerrors.MsgStartDateInPast,
				})
			},
		}
		h := leave.NewHandler(svc)

		c, w := newTestContext(http.MethodPost, "/leaves", leave.CreateLeaveRequest{})
		c.Set("employee_id", actorID)
		h.Create(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		env := decode(t, w)
		assert.False(t, env.Ok)
		assert.Equal(t, apperror.CodeValidationFailed, env.Error.Code)
		assert.Equal(t, []string{leaveerrors.MsgReasonRequired, leaveerrors.MsgStartDateInPast}, env.Error.Details)
	})

	t.Run("negative - malformed body", func(t *testing.T) {
		h := leave.NewHandler(&fakeService{})

		gin.SetMode(gin.TestMode)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/leaves", bytes.NewBufferString("{"))
		c.Request.Header.Set("Content-Type", "application/json")
		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_Decide(t *testing.T) {
	approverID := uuid.NewString()
	leaveID := uuid.NewString()

	t.Run("success", func(t *testing.T) {
		svc := &fakeService{
			decideFn: func(_ context.Context, approver, id string, req leave.DecisionRequest) (leave.LeaveResponse, error) {
				assert.Equal(t, approverID, approver)
				assert.Equal(t, leaveID, id)
				assert.Equal(t, "APPROVED", req.Status)
				return leave.LeaveResponse{ID: id, Status: "APPROVED", ApprovedBy: &approver}, nil
			},
		}
		h := leave.NewHandler(svc)

		c, w := newTestContext(http.MethodPost, "/leaves/"+leaveID+"/decision", leave.DecisionRequest{Status: "APPROVED"})
		c.Params = gin.Params{{Key: "id", Value: leaveID}}
		c.Set("employee_id", approverID)
		h.Decide(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("negative - not pending", func(t *testing.T) {
		svc := &fakeService{
			decideFn: func(context.Context, string, string, leave.DecisionRequest) (leave.LeaveResponse, error) {
				return leave.LeaveResponse{}, approvalerrors.ErrNotPending
			},
		}
		h := leave.NewHandler(svc)

		c, w := newTestContext(http.MethodPost, "/leaves/"+leaveID+"/decision", leave.DecisionRequest{Status: "REJECTED"})
		c.Params = gin.Params{{Key: "id", Value: leaveID}}
		c.Set("employee_id", approverID)
		h.Decide(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, apperror.CodeInvalidState, decode(t, w).Error.Code)
	})
}

func TestHandler_Cancel(t *testing.T) {
	t.Run("negative - not requester", func(t *testing.T) {
		svc := &fakeService{
			cancelFn: func(context.Context, string, string) (leave.LeaveResponse, error) {
				return leave.LeaveResponse{}, approvalerrors.ErrNotRequester
			},
		}
		h := leave.NewHandler(svc)

		c, w := newTestContext(http.MethodPost, "/leaves/x/cancel", nil)
		c.Params = gin.Params{{Key: "id", Value: "x"}}
		h.Cancel(c)

		assert.False(t, decode(t, w).Ok)
		assert.NotEqual(t, http.StatusOK, w.Code)
	})
}

func TestHandler_GetByID(t *testing.T) {
	t.Run("negative - not found", func(t *testing.T) {
		svc := &fakeService{
			getByIDFn: func(context.Context, string) (leave.LeaveResponse, error) {
				return leave.LeaveResponse{}, leaveerrors.ErrLeaveNotFound
			},
		}
		h := leave.NewHandler(svc)

		id := uuid.NewString()
		c, w := newTestContext(http.MethodGet, "/leaves/"+id, nil)
		c.Params = gin.Params{{Key: "id", Value: id}}
		h.GetByID(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandler_ListByEmployee(t *testing.T) {
	employeeID := uuid.NewString()
	svc := &fakeService{
		listByEmployeeFn: func(_ context.Context, eid string) ([]leave.LeaveResponse, error) {
			assert.Equal(t, employeeID, eid)
			return make([]leave.LeaveResponse, 5), nil
		},
	}
	h := leave.NewHandler(svc)

	c, w := newTestContext(http.MethodGet, "/employees/"+employeeID+"/leaves?page=2&page_size=2", nil)
	c.Params = gin.Params{{Key: "employee_id", Value: employeeID}}
	h.ListByEmployee(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decode(t, w)
	var items []leave.LeaveResponse
	assert.NoError(t, json.Unmarshal(env.Data, &items))
	assert.Len(t, items, 2)
	assert.Equal(t, int64(5), env.Meta.Total)
}

func TestHandler_CurrentBalance(t *testing.T) {
	employeeID := uuid.NewString()
	leaveTypeID := uuid.NewString()

	t.Run("success", func(t *testing.T) {
		svc := &fakeService{
			currentBalanceFn: func(_ context.Context, q leave.BalanceQuery) (leave.BalanceResponse, error) {
				assert.Equal(t, 2026, q.Year)
				return leave.BalanceResponse{Total: 10, Used: 3, Remaining: 7}, nil
			},
		}
		h := leave.NewHandler(svc)

		c, w := newTestContext(http.MethodGet, "/leave-balances?employee_id="+employeeID+"&leave_type_id="+leaveTypeID+"&year=2026", nil)
		h.CurrentBalance(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var got leave.BalanceResponse
		assert.NoError(t, json.Unmarshal(decode(t, w).Data, &got))
		assert.Equal(t, 7, got.Remaining)
	})

	t.Run("negative - missing query", func(t *testing.T) {
		h := leave.NewHandler(&fakeService{})

		c, w := newTestContext(http.MethodGet, "/leave-balances?employee_id=nope", nil)
		h.CurrentBalance(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, apperror.CodeValidationFailed, decode(t, w).Error.Code)
	})
}
