package messaging

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"monitoring/internal/domain/constants"
	"monitoring/internal/domain/entity"
	"monitoring/internal/domain/service"

	"github.com/pkg/errors"
)

// PushEnvelope is the body Pub/Sub push subscriptions POST to an HTTP endpoint.
// The local publisher produces the same shape.
type PushEnvelope struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewPushEnvelope wraps an event the way Pub/Sub push delivers it.
func NewPushEnvelope(event *service.DeviceEvent, messageID string, publishTime time.Time) *PushEnvelope {
	envelope := &PushEnvelope{
		Subscription: "projects/local/subscriptions/device-" + event.Intent.String(),
	}
	envelope.Message.Data = base64.StdEncoding.EncodeToString([]byte(event.Payload))
	envelope.Message.Attributes = eventAttributes(event)
	envelope.Message.MessageID = messageID
	envelope.Message.PublishTime = publishTime.UTC().Format(time.RFC3339)

	return envelope
}

// ToMessage decodes the envelope payload. The intent comes from the endpoint path when
// set, otherwise from the intent attribute.
func (e *PushEnvelope) ToMessage(pathIntent string) (*Message, error) {
	data, err := base64.StdEncoding.DecodeString(e.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode message data")
	}

	intent := pathIntent
	if intent == "" {
		intent = e.Message.Attributes[constants.AttributeIntent]
	}

	return &Message{
		ID:         e.Message.MessageID,
		Intent:     entity.Intent(intent),
		Data:       data,
		Attributes: e.Message.Attributes,
		Source:     SourcePush,
	}, nil
}

// Marshal encodes the envelope as JSON.
func (e *PushEnvelope) Marshal() ([]byte, error) {
	body, err := json.Marshal(e)

	return body, errors.WithStack(err)
}
