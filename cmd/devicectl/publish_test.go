package main

import (
	"testing"

	"monitoring/internal/codec/devicemsg"
	"monitoring/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testDeviceID = "11111111-1111-1111-1111-111111111111"
	testOwnerID  = "22222222-2222-2222-2222-222222222222"
)

func TestBuildEvent_RegisterDecodesBothWays(t *testing.T) {
	event, err := buildEvent(publishInput{intent: "register", id: testDeviceID, owner: testOwnerID, max: "5", requestID: "req-1"})
	require.NoError(t, err)
	assert.Equal(t, entity.IntentRegister, event.Intent)
	assert.Equal(t, "req-1", event.RequestID)

	for _, decoder := range []devicemsg.Decoder{devicemsg.NewKeyedDecoder(), devicemsg.PositionalDecoder{}} {
		record, err := decoder.DecodeRecord(event.Payload)
		require.NoError(t, err)
		assert.Equal(t, &devicemsg.Record{ID: testDeviceID, OwnerID: testOwnerID, MaxHourlyConsumption: "5"}, record)
	}
}

func TestBuildEvent_DeleteCarriesOnlyID(t *testing.T) {
	event, err := buildEvent(publishInput{intent: "delete", id: testDeviceID, owner: testOwnerID})
	require.NoError(t, err)
	assert.Equal(t, `{"type":"delete","id":"`+testDeviceID+`"}`, event.Payload)
	assert.NotEmpty(t, event.RequestID)
}

func TestBuildEvent_Raw(t *testing.T) {
	event, err := buildEvent(publishInput{intent: "update", raw: "{garbage}"})
	require.NoError(t, err)
	assert.Equal(t, "{garbage}", event.Payload)
}

func TestBuildEvent_Errors(t *testing.T) {
	_, err := buildEvent(publishInput{intent: "archive", id: testDeviceID})
	require.Error(t, err)

	_, err = buildEvent(publishInput{intent: "register"})
	require.Error(t, err)
}
