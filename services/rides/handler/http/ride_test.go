package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/fastaxi/dispatch/internal/pkg/errs"
	"github.com/fastaxi/dispatch/internal/pkg/models"
	"github.com/fastaxi/dispatch/services/rides/mocks"
)

func setupHandler(t *testing.T) (*RideHandler, *mocks.MockRideUC, *echo.Echo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockRideUC(ctrl)
	handler := NewRideHandler(mockUC)
	e := echo.New()
	return handler, mockUC, e
}

func TestCreateRequest_Created(t *testing.T) {
	handler, mockUC, e := setupHandler(t)

	body := `{
		"client_name": "Siti",
		"client_phone": "+628111",
		"pickup_location": {"latitude": -6.175392, "longitude": 106.827153},
		"destination_location": {"latitude": -6.265392, "longitude": 106.917153}
	}`

	mockUC.EXPECT().
		CreateRequest(gomock.Any(), gomock.Any()).
		Return(&models.RideRequest{
			RequestID:      uuid.New(),
			Status:         models.RideStatusRequested,
			RequiredPoints: 150,
		}, nil)

	req := httptest.NewRequest(http.MethodPost, "/rides", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.CreateRequest(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
}

func TestCreateRequest_MissingClient(t *testing.T) {
	handler, _, e := setupHandler(t)

	body := `{"pickup_location": {"latitude": -6.2, "longitude": 106.8}}`
	req := httptest.NewRequest(http.MethodPost, "/rides", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.CreateRequest(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateRequest_InvalidCoordinates(t *testing.T) {
	handler, mockUC, e := setupHandler(t)

	body := `{"client_name": "Siti", "client_phone": "+628111"}`
	mockUC.EXPECT().
		CreateRequest(gomock.Any(), gomock.Any()).
		Return(nil, errs.ErrInvalidCoordinates)

	req := httptest.NewRequest(http.MethodPost, "/rides", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.CreateRequest(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAccept_Conflicts(t *testing.T) {
	tests := []struct {
		name       string
		ucErr      error
		wantStatus int
	}{
		{"already taken", errs.ErrAlreadyTaken, http.StatusConflict},
		{"driver busy", errs.ErrDriverBusy, http.StatusConflict},
		{"invalid state", errs.ErrInvalidState, http.StatusConflict},
		{"not found", errs.ErrNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mockUC, e := setupHandler(t)

			mockUC.EXPECT().
				AcceptRide(gomock.Any(), "req-1", "driver-001").
				Return(nil, tt.ucErr)

			body := `{"driver_id": "driver-001"}`
			req := httptest.NewRequest(http.MethodPost, "/rides/req-1/accept", strings.NewReader(body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetParamNames("requestID")
			c.SetParamValues("req-1")

			err := handler.Accept(c)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestAccept_Success(t *testing.T) {
	handler, mockUC, e := setupHandler(t)

	requestID := uuid.New()
	mockUC.EXPECT().
		AcceptRide(gomock.Any(), requestID.String(), "driver-001").
		Return(&models.RideRequest{
			RequestID: requestID,
			DriverID:  "driver-001",
			Status:    models.RideStatusAccepted,
		}, nil)

	body := `{"driver_id": "driver-001"}`
	req := httptest.NewRequest(http.MethodPost, "/rides/"+requestID.String()+"/accept", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("requestID")
	c.SetParamValues(requestID.String())

	err := handler.Accept(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCancel_InvalidActor(t *testing.T) {
	handler, _, e := setupHandler(t)

	body := `{"actor": "dispatcher"}`
	req := httptest.NewRequest(http.MethodPost, "/rides/req-1/cancel", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("requestID")
	c.SetParamValues("req-1")

	err := handler.Cancel(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListRequests(t *testing.T) {
	handler, mockUC, e := setupHandler(t)

	mockUC.EXPECT().
		ListRequests(gomock.Any()).
		Return([]*models.RideRequest{
			{RequestID: uuid.New(), Status: models.RideStatusCompleted, DriverID: "driver-001"},
			{RequestID: uuid.New(), Status: models.RideStatusRequested},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/rides", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.ListRequests(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), string(models.RideStatusCompleted))
	assert.Contains(t, rec.Body.String(), string(models.RideStatusRequested))
}

func TestGetRequest_NotFound(t *testing.T) {
	handler, mockUC, e := setupHandler(t)

	mockUC.EXPECT().
		GetRequest(gomock.Any(), "ghost").
		Return(nil, errs.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/rides/ghost", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("requestID")
	c.SetParamValues("ghost")

	err := handler.GetRequest(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
