package attendancerequest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hr-backoffice/internal/attendancerequest"
	reqerrors "hr-backoffice/internal/attendancerequest/errors"
	"hr-backoffice/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	attendancerequest.Service
	createFn func(ctx context.Context, actorID string, req attendancerequest.CreateAttendanceRequest) (attendancerequest.AttendanceRequestResponse, error)
	decideFn func(ctx context.Context, approverID, id string, req attendancerequest.DecisionRequest) (attendancerequest.AttendanceRequestResponse, error)
}

func (f *fakeService) Create(ctx context.Context, actorID string, req attendancerequest.CreateAttendanceRequest) (attendancerequest.AttendanceRequestResponse, error) {
	return f.createFn(ctx, actorID, req)
}

func (f *fakeService) Decide(ctx context.Context, approverID, id string, req attendancerequest.DecisionRequest) (attendancerequest.AttendanceRequestResponse, error) {
	return f.decideFn(ctx, approverID, id, req)
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string   `json:"code"`
		Details []string `json:"details"`
	} `json:"error"`
}

func postJSON(t *testing.T, target string, body any) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	payload, err := json.Marshal(body)
	assert.NoError(t, err)
	c.Request = httptest.NewRequest(http.MethodPost, target, bytes.NewReader(payload))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestHandler_Create(t *testing.T) {
	actorID := uuid.NewString()

	t.Run("success", func(t *testing.T) {
		svc := &fakeService{
			createFn: func(_ context.Context, actor string, req attendancerequest.CreateAttendanceRequest) (attendancerequest.AttendanceRequestResponse, error) {
				assert.Equal(t, actorID, actor)
				assert.Equal(t, 45, *req.BreakMinutes)
				return attendancerequest.AttendanceRequestResponse{ID: uuid.NewString(), Status: "PENDING"}, nil
			},
		}
		h := attendancerequest.NewHandler(svc)

		c, w := postJSON(t, "/attendance-requests", map[string]any{
			"employee_id":   actorID,
			"from_date":     "2026-10-12",
			"to_date":       "2026-10-12",
			"clock_in":      "2026-10-12T08:00:00Z",
			"clock_out":     "2026-10-12T17:00:00Z",
			"break_minutes": 45,
			"location":      "OFFICE",
			"reason_type":   "FORGOT_CLOCK_IN",
		})
		c.Set("employee_id", actorID)
		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		var env apiEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.True(t, env.Ok)
	})

	t.Run("negative - validation failed", func(t *testing.T) {
		svc := &fakeService{
			createFn: func(context.Context, string, attendancerequest.CreateAttendanceRequest) (attendancerequest.AttendanceRequestResponse, error) {
				return attendancerequest.AttendanceRequestResponse{}, apperror.Validation([]string{reqerrors.MsgClockOutBeforeIn})
			},
		}
		h := attendancerequest.NewHandler(svc)

		c, w := postJSON(t, "/attendance-requests", map[string]any{})
		c.Set("employee_id", actorID)
		h.Create(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		var env apiEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.Equal(t, []string{reqerrors.MsgClockOutBeforeIn}, env.Error.Details)
	})
}

func TestHandler_Decide(t *testing.T) {
	t.Run("negative - not found", func(t *testing.T) {
		svc := &fakeService{
			decideFn: func(context.Context, string, string, attendancerequest.DecisionRequest) (attendancerequest.AttendanceRequestResponse, error) {
				return attendancerequest.AttendanceRequestResponse{}, reqerrors.ErrAttendanceRequestNotFound
			},
		}
		h := attendancerequest.NewHandler(svc)
		id := uuid.NewString()

		c, w := postJSON(t, "/attendance-requests/"+id+"/decision", attendancerequest.DecisionRequest{Status: "APPROVED"})
		c.Params = gin.Params{{Key: "id", Value: id}}
		c.Set("employee_id", uuid.NewString())
		h.Decide(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
