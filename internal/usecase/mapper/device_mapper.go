// Package mapper translates device data between raw message fields, transport records
// and domain entities. All functions are pure.
package mapper

import (
	"math"
	"strconv"
	"strings"

	"monitoring/internal/domain/entity"
	domainerrors "monitoring/internal/domain/errors"
	"monitoring/internal/usecase"

	"github.com/google/uuid"
)

// ToRecord parses raw message values into a DeviceRecord.
// It fails with ErrInvalidIdentifier for malformed UUIDs and with ErrInvalidNumber when the
// consumption threshold is not a finite, non-negative number.
func ToRecord(rawID, rawOwnerID, rawMaxConsumption string) (*usecase.DeviceRecord, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return nil, err
	}

	ownerID, err := ParseID(rawOwnerID)
	if err != nil {
		return nil, err
	}

	maxConsumption, err := parseConsumption(rawMaxConsumption)
	if err != nil {
		return nil, err
	}

	return &usecase.DeviceRecord{
		ID:                   id,
		OwnerID:              ownerID,
		MaxHourlyConsumption: maxConsumption,
	}, nil
}

// canonicalUUIDLen is the length of the hyphenated 8-4-4-4-12 form.
const canonicalUUIDLen = 36

// ParseID parses a UUID in its canonical hyphenated form. The urn, braced and
// unhyphenated forms accepted by uuid.Parse are rejected.
func ParseID(raw string) (uuid.UUID, error) {
	trimmed := strings.TrimSpace(raw)
	if len(trimmed) != canonicalUUIDLen {
		return uuid.Nil, domainerrors.ErrInvalidIdentifier.WithDetails(strconv.Quote(raw))
	}

	id, err := uuid.Parse(trimmed)
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidIdentifier.WithDetails(strconv.Quote(raw))
	}

	return id, nil
}

func parseConsumption(raw string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return 0, domainerrors.ErrInvalidNumber.WithDetails(strconv.Quote(raw))
	}

	return value, nil
}

// ToEntity copies a DeviceRecord into a Device entity.
func ToEntity(record *usecase.DeviceRecord) *entity.Device {
	if record == nil {
		return nil
	}

	return &entity.Device{
		ID:                   record.ID,
		OwnerID:              record.OwnerID,
		MaxHourlyConsumption: record.MaxHourlyConsumption,
	}
}

// FromEntity copies a Device entity into a DeviceRecord.
func FromEntity(device *entity.Device) *usecase.DeviceRecord {
	if device == nil {
		return nil
	}

	return &usecase.DeviceRecord{
		ID:                   device.ID,
		OwnerID:              device.OwnerID,
		MaxHourlyConsumption: device.MaxHourlyConsumption,
	}
}

// FromEntities maps a slice of devices, skipping nil entries.
func FromEntities(devices []*entity.Device) []*usecase.DeviceRecord {
	records := make([]*usecase.DeviceRecord, 0, len(devices))
	for _, device := range devices {
		if device == nil {
			continue
		}
		records = append(records, FromEntity(device))
	}

	return records
}
