package mapper

import (
	"strings"
	"testing"

	"monitoring/internal/domain/entity"
	domainerrors "monitoring/internal/domain/errors"
	"monitoring/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToRecord_Success(t *testing.T) {
	record, err := ToRecord(
		"11111111-1111-1111-1111-111111111111",
		" 22222222-2222-2222-2222-222222222222 ",
		"5",
	)
	require.NoError(t, err)
	assert.Equal(t, uuid.MustParse("11111111-1111-1111-1111-111111111111"), record.ID)
	assert.Equal(t, uuid.MustParse("22222222-2222-2222-2222-222222222222"), record.OwnerID)
	assert.InDelta(t, 5.0, record.MaxHourlyConsumption, 1e-9)
}

func TestToRecord_AcceptsZeroAndFractions(t *testing.T) {
	id := uuid.New().String()

	record, err := ToRecord(id, id, "0")
	require.NoError(t, err)
	assert.Zero(t, record.MaxHourlyConsumption)

	record, err = ToRecord(id, id, "12.75")
	require.NoError(t, err)
	assert.InDelta(t, 12.75, record.MaxHourlyConsumption, 1e-9)
}

func TestToRecord_InvalidIdentifier(t *testing.T) {
	valid := uuid.New().String()

	tests := []struct {
		name    string
		id      string
		ownerID string
	}{
		{name: "bad device id", id: "device-1", ownerID: valid},
		{name: "bad owner id", id: valid, ownerID: "owner"},
		{name: "empty device id", id: "", ownerID: valid},
		{name: "urn form", id: "urn:uuid:" + valid, ownerID: valid},
		{name: "braced form", id: "{" + valid + "}", ownerID: valid},
		{name: "unhyphenated form", id: strings.ReplaceAll(valid, "-", ""), ownerID: valid},
		{name: "urn owner", id: valid, ownerID: "urn:uuid:" + valid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := ToRecord(tt.id, tt.ownerID, "1")
			require.Error(t, err)
			assert.Nil(t, record)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidIdentifier))
		})
	}
}

func TestToRecord_InvalidNumber(t *testing.T) {
	id := uuid.New().String()

	for _, raw := range []string{"", "abc", "-1", "-0.5", "NaN", "Inf", "1e400"} {
		t.Run(raw, func(t *testing.T) {
			record, err := ToRecord(id, id, raw)
			require.Error(t, err)
			assert.Nil(t, record)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidNumber))
		})
	}
}

func TestEntityRoundTrip(t *testing.T) {
	record := &usecase.DeviceRecord{
		ID:                   uuid.New(),
		OwnerID:              uuid.New(),
		MaxHourlyConsumption: 42.5,
	}

	device := ToEntity(record)
	assert.Equal(t, record.ID, device.ID)
	assert.Equal(t, record.OwnerID, device.OwnerID)
	assert.InDelta(t, record.MaxHourlyConsumption, device.MaxHourlyConsumption, 1e-9)

	assert.Equal(t, record, FromEntity(device))
}

func TestMapper_NilInputs(t *testing.T) {
	assert.Nil(t, ToEntity(nil))
	assert.Nil(t, FromEntity(nil))
}

func TestFromEntities_SkipsNil(t *testing.T) {
	devices := []*entity.Device{
		{ID: uuid.New(), OwnerID: uuid.New(), MaxHourlyConsumption: 1},
		nil,
		{ID: uuid.New(), OwnerID: uuid.New(), MaxHourlyConsumption: 2},
	}

	records := FromEntities(devices)
	require.Len(t, records, 2)
	assert.Equal(t, devices[0].ID, records[0].ID)
	assert.Equal(t, devices[2].ID, records[1].ID)
}
