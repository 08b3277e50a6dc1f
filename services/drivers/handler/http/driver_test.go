package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/fastaxi/dispatch/internal/pkg/errs"
	"github.com/fastaxi/dispatch/internal/pkg/models"
	"github.com/fastaxi/dispatch/services/drivers/mocks"
)

func setupHandler(t *testing.T) (*DriverHandler, *mocks.MockDriverUC, *echo.Echo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockDriverUC(ctrl)
	handler := NewDriverHandler(mockUC)
	e := echo.New()
	return handler, mockUC, e
}

func TestRegister_Success(t *testing.T) {
	handler, mockUC, e := setupHandler(t)

	body := `{
		"driver_id": "driver-001",
		"name": "Budi Santoso",
		"phone_number": "+6281234567890",
		"cars": [{"license_plate": "B 1234 ABC", "color": "red", "car_type": "sedan"}]
	}`

	mockUC.EXPECT().
		RegisterOrUpdateDriver(gomock.Any(), gomock.Any()).
		Return(&models.Driver{
			DriverID: "driver-001",
			Name:     "Budi Santoso",
			Status:   models.DriverStatusPending,
			Points:   100,
		}, "session-token", nil)

	req := httptest.NewRequest(http.MethodPost, "/drivers/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Register(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "session-token")
}

func TestRegister_MissingFields(t *testing.T) {
	handler, _, e := setupHandler(t)

	body := `{"name": "Budi"}`
	req := httptest.NewRequest(http.MethodPost, "/drivers/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Register(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSetOnline_NotFound(t *testing.T) {
	handler, mockUC, e := setupHandler(t)

	mockUC.EXPECT().
		SetOnline(gomock.Any(), "ghost", gomock.Any()).
		Return(errs.ErrNotFound)

	req := httptest.NewRequest(http.MethodPost, "/drivers/ghost/online", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("driverID")
	c.SetParamValues("ghost")

	err := handler.SetOnline(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateLocation_InvalidCoordinates(t *testing.T) {
	handler, mockUC, e := setupHandler(t)

	mockUC.EXPECT().
		UpdateLocation(gomock.Any(), "driver-001", 95.0, 106.8).
		Return(errs.ErrInvalidCoordinates)

	body := `{"latitude": 95.0, "longitude": 106.8}`
	req := httptest.NewRequest(http.MethodPut, "/drivers/driver-001/location", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("driverID")
	c.SetParamValues("driver-001")

	err := handler.UpdateLocation(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateLocation_MissingCoordinates(t *testing.T) {
	handler, _, e := setupHandler(t)

	body := `{"latitude": -6.2}`
	req := httptest.NewRequest(http.MethodPut, "/drivers/driver-001/location", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("driverID")
	c.SetParamValues("driver-001")

	err := handler.UpdateLocation(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListDrivers(t *testing.T) {
	handler, mockUC, e := setupHandler(t)

	mockUC.EXPECT().
		ListDrivers(gomock.Any()).
		Return([]*models.Driver{
			{DriverID: "driver-001", Name: "Budi Santoso", Status: models.DriverStatusPending},
			{DriverID: "driver-002", Name: "Agus Wijaya", Status: models.DriverStatusActive},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/drivers", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.ListDrivers(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "driver-001")
	assert.Contains(t, rec.Body.String(), "driver-002")
}

func TestGetSummary(t *testing.T) {
	handler, mockUC, e := setupHandler(t)

	mockUC.EXPECT().
		AvailableSummary(gomock.Any()).
		Return(&models.DriverSummary{OnlineCount: 7, AvailableCount: 5}, nil)

	req := httptest.NewRequest(http.MethodGet, "/drivers/summary", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.GetSummary(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"online_count":7`)
	assert.Contains(t, rec.Body.String(), `"available_count":5`)
}
