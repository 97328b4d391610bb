package events

// Event types written to the device_events outbox.
const (
	EventDeviceRegistered = "device.registered"
	EventUsageRecorded    = "usage.recorded"
)

// DeviceRegisteredPayload captures the minimal data external observers need
// to react to a registration.
type DeviceRegisteredPayload struct {
	DeviceID   string `json:"device_id"`
	DeviceType string `json:"device_type"`
	Owner      string `json:"owner"`
}

func (p DeviceRegisteredPayload) ToMap() map[string]any {
	return map[string]any{
		"device_id":   p.DeviceID,
		"device_type": p.DeviceType,
		"owner":       p.Owner,
	}
}

// UsageRecordedPayload captures the minimal data needed to follow up on a
// recorded reading.
type UsageRecordedPayload struct {
	RecordID   string `json:"record_id"`
	DeviceID   string `json:"device_id"`
	DayBucket  int64  `json:"day_bucket"`
	DataSource string `json:"data_source"`
}

func (p UsageRecordedPayload) ToMap() map[string]any {
	return map[string]any{
		"record_id":   p.RecordID,
		"device_id":   p.DeviceID,
		"day_bucket":  p.DayBucket,
		"data_source": p.DataSource,
	}
}
