package dto

import (
	"bytes"
	"encoding/json"
	"fmt"

	"roomapi/internal/domains/room/model"
	"roomapi/shared/constant"
	gDto "roomapi/shared/dto"
	"roomapi/shared/failure"
	gModel "roomapi/shared/model"
	"roomapi/shared/timezone"
	"roomapi/shared/validator"
)

const MessageRoomCreated = "Room created successfully"

var jsonNull = []byte("null")

// CreateRoomRequest is the body of POST /room. IsBooked is a pointer so that an absent flag
// can be told apart from false.
type CreateRoomRequest struct {
	Name     string `json:"name"      validate:"required"`
	IsBooked *bool  `json:"is_booked" validate:"required"`

	// type errors found while decoding, reported alongside tag validation
	invalid failure.FieldErrors
}

// UnmarshalJSON decodes field by field so a wrong type on one field does not hide errors on the
// others. null counts as absent and an empty array counts as an empty object.
// is_booked also accepts 1, 0, "1" and "0".
func (c *CreateRoomRequest) UnmarshalJSON(data []byte) error {
	raw := map[string]json.RawMessage{}

	if err := json.Unmarshal(data, &raw); err != nil {
		var list []json.RawMessage
		if json.Unmarshal(data, &list) != nil || len(list) > 0 {
			return err //nolint:wrapcheck
		}
	}

	c.invalid = failure.FieldErrors{}

	if value, ok := present(raw, model.FieldName); ok {
		if err := json.Unmarshal(value, &c.Name); err != nil {
			c.invalid.Add(model.FieldName, model.FieldName+" must be a string")
		}
	}

	if value, ok := present(raw, model.FieldIsBooked); ok {
		booked, err := parseBool(value)
		if err != nil {
			c.invalid.Add(model.FieldIsBooked, model.FieldIsBooked+" must be true or false")
		} else {
			c.IsBooked = &booked
		}
	}

	return nil
}

func present(raw map[string]json.RawMessage, field string) (json.RawMessage, bool) {
	value, ok := raw[field]
	if !ok || bytes.Equal(bytes.TrimSpace(value), jsonNull) {
		return nil, false
	}

	return value, true
}

func parseBool(value json.RawMessage) (bool, error) {
	switch string(bytes.TrimSpace(value)) {
	case "true", "1", `"1"`:
		return true, nil
	case "false", "0", `"0"`:
		return false, nil
	}

	return false, fmt.Errorf("not a boolean: %s", value)
}

// Validate returns a 422 failure listing every offending field, or nil.
func (c *CreateRoomRequest) Validate(nameMaxLength int) error {
	if nameMaxLength <= 0 {
		nameMaxLength = constant.DefaultRoomNameMaxLength
	}

	fields := failure.FieldErrors{}
	fields.Merge(c.invalid)

	for field, messages := range validator.Fields(c) {
		if !fields.Has(field) {
			fields[field] = messages
		}
	}

	if c.Name != constant.Empty && !fields.Has(model.FieldName) {
		fields.Merge(validator.VarFields(model.FieldName, c.Name, fmt.Sprintf("max=%d", nameMaxLength)))
	}

	return failure.Unprocessable(constant.ResponseErrorValidation, fields) //nolint:wrapcheck
}

func (c *CreateRoomRequest) ToModel() model.Room {
	now := timezone.Now()

	booked := false
	if c.IsBooked != nil {
		booked = *c.IsBooked
	}

	return model.Room{
		Name:     c.Name,
		IsBooked: booked,
		Metadata: gModel.Metadata{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

type RoomResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	IsBooked bool   `json:"is_booked"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Name = model.Name
	r.IsBooked = model.IsBooked
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room) {
	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

type CreateRoomResponse struct {
	Message string       `json:"message"`
	Room    RoomResponse `json:"room"`
}
