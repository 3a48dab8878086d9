package model

// All returns every model owned by this service, in migration order.
func All() []any {
	return []any{
		&DeviceModel{},
		&ChatMessageModel{},
	}
}
