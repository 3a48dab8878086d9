// Package devicemsg decodes inbound device lifecycle messages.
//
// Two layouts are understood. The keyed layout is a flat JSON object read by key name:
//
//	{"type":"register","id":"<uuid>","ownerId":"<uuid>","maxHourlyConsumption":"5"}
//
// The positional layout is the legacy wire contract and is read by field position only.
// Every '{', '}' and '"' is removed wherever it occurs, the remainder is split on ',' and
// each segment is split at its first ':'. Empty trailing segments are dropped. Position 0 is
// a tag and is ignored, position 1 is the device ID, position 2 the owner ID and position 3
// the max hourly consumption.
// Reordering fields breaks positional consumers silently, and a quoted comma inside a
// value shifts every following position.
package devicemsg

import (
	"fmt"
	"strings"

	domainerrors "monitoring/internal/domain/errors"
)

// Field positions of the positional layout.
const (
	PositionTag                  = 0
	PositionID                   = 1
	PositionOwnerID              = 2
	PositionMaxHourlyConsumption = 3
)

const (
	minRecordSegments = PositionMaxHourlyConsumption + 1
	minIDSegments     = PositionID + 1
)

var structuralChars = strings.NewReplacer("{", "", "}", "", `"`, "")

// Fields is the ordered list of trimmed values of a positional message.
type Fields []string

// Record holds the raw device fields of a message before they are parsed.
type Record struct {
	ID                   string
	OwnerID              string
	MaxHourlyConsumption string
}

// Decode splits a positional message into its values, left to right.
// It fails with ErrMalformedMessage when fewer than four segments are present
// or one of the device fields has no ':' separator.
func Decode(raw string) (Fields, error) {
	return decode(raw, minRecordSegments)
}

// Record returns the device fields found at their fixed positions.
// The receiver must come from Decode.
func (f Fields) Record() *Record {
	return &Record{
		ID:                   f[PositionID],
		OwnerID:              f[PositionOwnerID],
		MaxHourlyConsumption: f[PositionMaxHourlyConsumption],
	}
}

func decode(raw string, minSegments int) (Fields, error) {
	segments := dropTrailingEmpty(strings.Split(structuralChars.Replace(raw), ","))
	if len(segments) < minSegments {
		return nil, domainerrors.ErrMalformedMessage.WithDetails(
			fmt.Sprintf("expected at least %d segments, got %d", minSegments, len(segments)),
		)
	}

	fields := make(Fields, 0, len(segments))
	for idx, segment := range segments {
		_, value, found := strings.Cut(segment, ":")
		if !found {
			// Only positions that are read need a separator; the tag and any extra
			// segments are kept as they are.
			if idx >= PositionID && idx < minSegments {
				return nil, domainerrors.ErrMalformedMessage.WithDetails(
					fmt.Sprintf("segment %d has no ':' separator", idx),
				)
			}
			value = segment
		}
		fields = append(fields, strings.TrimSpace(value))
	}

	return fields, nil
}

// dropTrailingEmpty removes empty segments from the end, so a trailing comma is ignored.
func dropTrailingEmpty(segments []string) []string {
	for len(segments) > 0 && segments[len(segments)-1] == "" {
		segments = segments[:len(segments)-1]
	}

	return segments
}

// PositionalDecoder reads device fields by position only.
type PositionalDecoder struct{}

// DecodeRecord returns the device fields at positions 1 to 3.
func (PositionalDecoder) DecodeRecord(raw string) (*Record, error) {
	fields, err := Decode(raw)
	if err != nil {
		return nil, err
	}

	return fields.Record(), nil
}

// DecodeID returns the device ID at position 1. Only two segments are required.
func (PositionalDecoder) DecodeID(raw string) (string, error) {
	fields, err := decode(raw, minIDSegments)
	if err != nil {
		return "", err
	}

	return fields[PositionID], nil
}
