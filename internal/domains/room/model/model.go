package model

import "roomapi/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID       = "id"
	FieldName     = "name"
	FieldIsBooked = "is_booked"
)

type Room struct {
	ID       int64  `db:"id"        generated:"true"`
	Name     string `db:"name"`
	IsBooked bool   `db:"is_booked"`
	model.Metadata
}
