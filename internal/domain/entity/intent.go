package entity

// Intent is the declared purpose of an inbound device lifecycle message.
type Intent string

const (
	// IntentRegister announces a new device.
	IntentRegister Intent = "register"
	// IntentUpdate replaces the fields of an existing device.
	IntentUpdate Intent = "update"
	// IntentDelete removes a device.
	IntentDelete Intent = "delete"
)

// String returns the string representation of the Intent.
func (i Intent) String() string {
	return string(i)
}

// IsValid checks if the Intent is a known value.
func (i Intent) IsValid() bool {
	switch i {
	case IntentRegister, IntentUpdate, IntentDelete:
		return true
	default:
		return false
	}
}

// IsUpsert reports whether the intent results in an insert-or-replace.
// Register and update share the same store operation.
func (i Intent) IsUpsert() bool {
	return i == IntentRegister || i == IntentUpdate
}

// Intents lists every known intent in a stable order.
func Intents() []Intent {
	return []Intent{IntentRegister, IntentUpdate, IntentDelete}
}
