package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	usagedomain "github.com/gridbits/enertrack/internal/usage/domain"
)

type recordEnergyRequest struct {
	EnergyUsage int64  `json:"energy_usage"`
	DataSource  string `json:"data_source"`
	Metadata    string `json:"metadata"`
}

func (s *Server) RecordEnergyUsage(c *gin.Context) {
	deviceID := strings.TrimSpace(c.Param("id"))
	c.Set("device_id", deviceID)

	var req recordEnergyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	record, err := s.usageSvc.Record(c.Request.Context(), usagedomain.RecordRequest{
		DeviceID:    deviceID,
		EnergyUsage: req.EnergyUsage,
		DataSource:  strings.TrimSpace(req.DataSource),
		Metadata:    req.Metadata,
		Caller:      CallerFromRequest(c),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"record_id": record.ID.String()}})
}

func (s *Server) GetDeviceEnergyData(c *gin.Context) {
	deviceID := strings.TrimSpace(c.Param("id"))

	from, err := parseTimestamp(c.Query("from"))
	if err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}
	to, err := parseTimestamp(c.Query("to"))
	if err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	records, err := s.usageSvc.ListRange(c.Request.Context(), deviceID, from, to)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if records == nil {
		records = []usagedomain.EnergyRecord{}
	}

	c.JSON(http.StatusOK, gin.H{"data": records})
}

func (s *Server) GetMonthlyAggregate(c *gin.Context) {
	deviceID := strings.TrimSpace(c.Param("id"))

	month, err := parseTimestamp(c.Param("month"))
	if err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	aggregate, err := s.aggregateSvc.Get(c.Request.Context(), deviceID, month)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": aggregate})
}

func parseTimestamp(value string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(value), 10, 64)
}
