package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	devicedomain "github.com/gridbits/enertrack/internal/device/domain"
)

type registerDeviceRequest struct {
	DeviceID   string `json:"device_id"`
	DeviceType string `json:"device_type"`
}

func (s *Server) RegisterDevice(c *gin.Context) {
	var req registerDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}
	c.Set("device_id", strings.TrimSpace(req.DeviceID))

	device, err := s.deviceSvc.Register(c.Request.Context(), devicedomain.RegisterRequest{
		DeviceID:   strings.TrimSpace(req.DeviceID),
		DeviceType: strings.TrimSpace(req.DeviceType),
		Caller:     CallerFromRequest(c),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": device})
}

func (s *Server) GetDevice(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	device, err := s.deviceSvc.Get(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": device})
}

func (s *Server) ListDevices(c *gin.Context) {
	owner := strings.TrimSpace(c.Query("owner"))
	if owner == "" {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	devices, err := s.deviceSvc.ListByOwner(c.Request.Context(), owner)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": devices})
}
