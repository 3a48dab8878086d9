package devicemsg

import (
	"encoding/json"
	"strings"

	domainerrors "monitoring/internal/domain/errors"

	"github.com/pkg/errors"
)

// JSON keys of the keyed layout.
const (
	KeyID                   = "id"
	KeyOwnerID              = "ownerId"
	KeyMaxHourlyConsumption = "maxHourlyConsumption"
)

// Decoder modes accepted by NewDecoder.
const (
	ModeKeyed      = "keyed"
	ModePositional = "positional"
)

// Decoder extracts raw device fields from an inbound message.
type Decoder interface {
	// DecodeRecord returns the ID, owner ID and max hourly consumption of a message.
	DecodeRecord(raw string) (*Record, error)

	// DecodeID returns only the device ID of a message.
	DecodeID(raw string) (string, error)
}

// NewDecoder returns the decoder for the given mode. An empty mode selects the keyed decoder.
func NewDecoder(mode string) (Decoder, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", ModeKeyed:
		return NewKeyedDecoder(), nil
	case ModePositional:
		return PositionalDecoder{}, nil
	default:
		return nil, errors.Errorf("unknown decoder mode: %s", mode)
	}
}

// KeyedDecoder reads device fields from a JSON object by key name and falls back to the
// positional layout when the message is not a JSON object or lacks one of the keys.
type KeyedDecoder struct {
	fallback PositionalDecoder
}

// NewKeyedDecoder creates a KeyedDecoder with the positional fallback.
func NewKeyedDecoder() *KeyedDecoder {
	return &KeyedDecoder{}
}

// DecodeRecord implements Decoder.
func (d *KeyedDecoder) DecodeRecord(raw string) (*Record, error) {
	obj, ok := decodeObject(raw)
	if !ok || !hasKeys(obj, KeyID, KeyOwnerID, KeyMaxHourlyConsumption) {
		return d.fallback.DecodeRecord(raw)
	}

	id, err := scalar(obj, KeyID)
	if err != nil {
		return nil, err
	}
	ownerID, err := scalar(obj, KeyOwnerID)
	if err != nil {
		return nil, err
	}
	maxConsumption, err := scalar(obj, KeyMaxHourlyConsumption)
	if err != nil {
		return nil, err
	}

	return &Record{
		ID:                   id,
		OwnerID:              ownerID,
		MaxHourlyConsumption: maxConsumption,
	}, nil
}

// DecodeID implements Decoder.
func (d *KeyedDecoder) DecodeID(raw string) (string, error) {
	obj, ok := decodeObject(raw)
	if !ok || !hasKeys(obj, KeyID) {
		return d.fallback.DecodeID(raw)
	}

	return scalar(obj, KeyID)
}

func decodeObject(raw string) (map[string]any, bool) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	var obj map[string]any
	if err := dec.Decode(&obj); err != nil || obj == nil {
		return nil, false
	}
	// Trailing data means the text is not a single JSON object.
	if dec.More() {
		return nil, false
	}

	return obj, true
}

func hasKeys(obj map[string]any, keys ...string) bool {
	for _, key := range keys {
		if _, ok := obj[key]; !ok {
			return false
		}
	}

	return true
}

func scalar(obj map[string]any, key string) (string, error) {
	switch value := obj[key].(type) {
	case string:
		return strings.TrimSpace(value), nil
	case json.Number:
		return value.String(), nil
	default:
		return "", domainerrors.ErrMalformedMessage.WithDetails("field " + key + " must be a string or a number")
	}
}
