package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	aggregatedomain "github.com/gridbits/enertrack/internal/aggregate/domain"
	"github.com/gridbits/enertrack/internal/config"
	devicedomain "github.com/gridbits/enertrack/internal/device/domain"
	"github.com/gridbits/enertrack/internal/observability"
	obsmetrics "github.com/gridbits/enertrack/internal/observability/metrics"
	usagedomain "github.com/gridbits/enertrack/internal/usage/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type deviceStub struct {
	devices map[string]*devicedomain.Device
}

func newDeviceStub() *deviceStub {
	return &deviceStub{devices: map[string]*devicedomain.Device{}}
}

func (s *deviceStub) Register(ctx context.Context, req devicedomain.RegisterRequest) (*devicedomain.Device, error) {
	if _, ok := s.devices[req.DeviceID]; ok {
		return nil, devicedomain.ErrAlreadyRegistered
	}
	device := &devicedomain.Device{
		DeviceID:   req.DeviceID,
		DeviceType: req.DeviceType,
		Owner:      req.Caller,
		IsActive:   true,
	}
	s.devices[req.DeviceID] = device
	return device, nil
}

func (s *deviceStub) Get(ctx context.Context, deviceID string) (*devicedomain.Device, error) {
	device, ok := s.devices[deviceID]
	if !ok {
		return nil, devicedomain.ErrNotFound
	}
	return device, nil
}

func (s *deviceStub) ListByOwner(ctx context.Context, owner string) ([]devicedomain.Device, error) {
	var out []devicedomain.Device
	for _, d := range s.devices {
		if d.Owner == owner {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (s *deviceStub) AssertOwner(ctx context.Context, deviceID, caller string) error {
	device, ok := s.devices[deviceID]
	if !ok {
		return devicedomain.ErrNotFound
	}
	if device.Owner != caller {
		return devicedomain.ErrNotOwner
	}
	return nil
}

type usageStub struct {
	devices *deviceStub
	records []usagedomain.EnergyRecord
}

func (s *usageStub) Record(ctx context.Context, req usagedomain.RecordRequest) (*usagedomain.EnergyRecord, error) {
	if err := s.devices.AssertOwner(ctx, req.DeviceID, req.Caller); err != nil {
		return nil, err
	}
	if req.EnergyUsage < 0 {
		return nil, usagedomain.ErrInvalidAmount
	}
	record := usagedomain.EnergyRecord{
		ID:          1,
		DeviceID:    req.DeviceID,
		EnergyUsage: req.EnergyUsage,
		DataSource:  req.DataSource,
		Metadata:    req.Metadata,
	}
	s.records = append(s.records, record)
	return &record, nil
}

func (s *usageStub) ListRange(ctx context.Context, deviceID string, from, to int64) ([]usagedomain.EnergyRecord, error) {
	if _, err := s.devices.Get(ctx, deviceID); err != nil {
		return nil, err
	}
	return nil, nil
}

type aggregateStub struct{}

func (aggregateStub) Get(ctx context.Context, deviceID string, monthBucket int64) (aggregatedomain.MonthlyAggregate, error) {
	return aggregatedomain.MonthlyAggregate{DeviceID: deviceID, MonthBucket: monthBucket}, nil
}

func setupTestServer(t *testing.T) (*gin.Engine, *deviceStub) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	registry := obsmetrics.NewRegistry()
	engine := NewEngine(observability.Config{}, obsmetrics.NewHTTPMetrics(registry), registry)

	devices := newDeviceStub()
	srv := NewServer(ServerParams{
		Gin:          engine,
		Cfg:          config.Config{},
		Log:          zap.NewNop(),
		DeviceSvc:    devices,
		UsageSvc:     &usageStub{devices: devices},
		AggregateSvc: aggregateStub{},
	})
	srv.RegisterAPIRoutes()
	return engine, devices
}

func doRequest(engine *gin.Engine, method, path, caller, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if caller != "" {
		req.Header.Set("X-Account-Id", caller)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestRegisterDeviceEndpoint(t *testing.T) {
	engine, _ := setupTestServer(t)

	w := doRequest(engine, http.MethodPost, "/api/devices", "acct-1",
		`{"device_id":"device1","device_type":"solar_panel"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data devicedomain.Device `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "device1", resp.Data.DeviceID)
	assert.Equal(t, "acct-1", resp.Data.Owner)
	assert.True(t, resp.Data.IsActive)
}

func TestRegisterRequiresCaller(t *testing.T) {
	engine, _ := setupTestServer(t)

	w := doRequest(engine, http.MethodPost, "/api/devices", "",
		`{"device_id":"device1","device_type":"solar_panel"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterDuplicateConflict(t *testing.T) {
	engine, _ := setupTestServer(t)

	body := `{"device_id":"device1","device_type":"solar_panel"}`
	require.Equal(t, http.StatusOK, doRequest(engine, http.MethodPost, "/api/devices", "acct-1", body).Code)

	w := doRequest(engine, http.MethodPost, "/api/devices", "acct-1", body)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already_registered")
}

func TestGetUnknownDeviceNotFound(t *testing.T) {
	engine, _ := setupTestServer(t)

	w := doRequest(engine, http.MethodGet, "/api/devices/ghost", "", "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestRecordEnergyNonOwnerForbidden(t *testing.T) {
	engine, _ := setupTestServer(t)

	require.Equal(t, http.StatusOK, doRequest(engine, http.MethodPost, "/api/devices", "acct-1",
		`{"device_id":"device1","device_type":"solar_panel"}`).Code)

	w := doRequest(engine, http.MethodPost, "/api/devices/device1/energy", "acct-2",
		`{"energy_usage":100,"data_source":"smart_meter"}`)
	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "not_owner")
}

func TestRecordEnergyNegativeAmount(t *testing.T) {
	engine, _ := setupTestServer(t)

	require.Equal(t, http.StatusOK, doRequest(engine, http.MethodPost, "/api/devices", "acct-1",
		`{"device_id":"device1","device_type":"solar_panel"}`).Code)

	w := doRequest(engine, http.MethodPost, "/api/devices/device1/energy", "acct-1",
		`{"energy_usage":-5,"data_source":"smart_meter"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_amount")
}

func TestEnergyDataBadRange(t *testing.T) {
	engine, _ := setupTestServer(t)

	require.Equal(t, http.StatusOK, doRequest(engine, http.MethodPost, "/api/devices", "acct-1",
		`{"device_id":"device1","device_type":"solar_panel"}`).Code)

	w := doRequest(engine, http.MethodGet, "/api/devices/device1/energy?from=abc&to=0", "", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEnergyDataEmptyRangeIsOK(t *testing.T) {
	engine, _ := setupTestServer(t)

	require.Equal(t, http.StatusOK, doRequest(engine, http.MethodPost, "/api/devices", "acct-1",
		`{"device_id":"device1","device_type":"solar_panel"}`).Code)

	w := doRequest(engine, http.MethodGet, "/api/devices/device1/energy?from=0&to=0", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":[]}`, w.Body.String())
}

func TestMonthlyAggregateZeroDefault(t *testing.T) {
	engine, _ := setupTestServer(t)

	w := doRequest(engine, http.MethodGet, "/api/devices/device1/aggregates/1750000000", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data aggregatedomain.MonthlyAggregate `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Zero(t, resp.Data.TotalEnergyUsage)
	assert.Zero(t, resp.Data.DaysRecorded)
}
