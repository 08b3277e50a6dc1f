package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/fastaxi/dispatch/internal/pkg/errs"
	"github.com/fastaxi/dispatch/internal/pkg/models"
	"github.com/fastaxi/dispatch/services/ledger/mocks"
)

func setupHandler(t *testing.T) (*LedgerHandler, *mocks.MockLedgerUC, *echo.Echo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockLedgerUC(ctrl)
	handler := NewLedgerHandler(mockUC)
	e := echo.New()
	return handler, mockUC, e
}

func TestGetPoints_Success(t *testing.T) {
	handler, mockUC, e := setupHandler(t)

	last := time.Now()
	mockUC.EXPECT().
		GetBalance(gomock.Any(), "driver-001").
		Return(&models.PointBalance{DriverID: "driver-001", Points: 120, LastActivity: &last}, nil)

	req := httptest.NewRequest(http.MethodGet, "/drivers/driver-001/points", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("driverID")
	c.SetParamValues("driver-001")

	err := handler.GetPoints(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"points":120`)
}

func TestGetPoints_UnknownDriver(t *testing.T) {
	handler, mockUC, e := setupHandler(t)

	mockUC.EXPECT().
		GetBalance(gomock.Any(), "ghost").
		Return(nil, errs.ErrDriverNotFound)

	req := httptest.NewRequest(http.MethodGet, "/drivers/ghost/points", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("driverID")
	c.SetParamValues("ghost")

	err := handler.GetPoints(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetHistory_Success(t *testing.T) {
	handler, mockUC, e := setupHandler(t)

	mockUC.EXPECT().
		GetHistory(gomock.Any(), "driver-001").
		Return([]*models.PointEntry{
			{DriverID: "driver-001", Change: -150, Reason: models.PointReasonRideCompleted},
			{DriverID: "driver-001", Change: 100, Reason: models.PointReasonNewRegister},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/drivers/driver-001/points/history", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("driverID")
	c.SetParamValues("driver-001")

	err := handler.GetHistory(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "rideCompleted")
	assert.Contains(t, rec.Body.String(), "newRegister")
}
