package room_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"roomapi/infras/database/databasetest"
	"roomapi/infras/kafka"
	"roomapi/infras/otel/mocks"
	"roomapi/internal/domains/room/repository"
	"roomapi/internal/domains/room/service"
	"roomapi/internal/handlers/room"
	"roomapi/shared/cache"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roomBody struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	IsBooked  bool   `json:"is_booked"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := databasetest.Config(t)
	otl := mocks.NewOtel()

	repo := repository.New(databasetest.NewTx(t), otl)
	svc := service.New(repo, cfg, cache.NewNoop(), otl, kafka.New(cfg))
	handler := room.New(svc, otl)

	router := chi.NewRouter()
	handler.Router(router)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return server
}

func do(t *testing.T, method, url, body string) (int, []byte) {
	t.Helper()

	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	defer res.Body.Close()

	var raw json.RawMessage
	require.NoError(t, json.NewDecoder(res.Body).Decode(&raw))

	return res.StatusCode, raw
}

func TestCreateRoom(t *testing.T) {
	server := newServer(t)

	code, body := do(t, http.MethodPost, server.URL+"/room", `{"name":"Room1","is_booked":false}`)
	require.Equal(t, http.StatusCreated, code)

	var created struct {
		Message string   `json:"message"`
		Room    roomBody `json:"room"`
	}
	require.NoError(t, json.Unmarshal(body, &created))

	assert.Equal(t, "Room created successfully", created.Message)
	assert.Positive(t, created.Room.ID)
	assert.Equal(t, "Room1", created.Room.Name)
	assert.False(t, created.Room.IsBooked)
	assert.NotEmpty(t, created.Room.CreatedAt)
	assert.NotEmpty(t, created.Room.UpdatedAt)
}

func TestCreateRoom_Validation(t *testing.T) {
	server := newServer(t)

	tests := []struct {
		name       string
		body       string
		wantFields []string
	}{
		{name: "empty object", body: `{}`, wantFields: []string{"name", "is_booked"}},
		{name: "empty body", body: ``, wantFields: []string{"name", "is_booked"}},
		{name: "empty array", body: `[]`, wantFields: []string{"name", "is_booked"}},
		{name: "missing flag", body: `{"name":"Room1"}`, wantFields: []string{"is_booked"}},
		{name: "name too long", body: `{"name":"Ballroom","is_booked":true}`, wantFields: []string{"name"}},
		{name: "wrong types", body: `{"name":true,"is_booked":"no"}`, wantFields: []string{"name", "is_booked"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := do(t, http.MethodPost, server.URL+"/room", tt.body)
			require.Equal(t, http.StatusUnprocessableEntity, code)

			var res struct {
				Message string              `json:"message"`
				Errors  map[string][]string `json:"errors"`
			}
			require.NoError(t, json.Unmarshal(body, &res))

			assert.NotEmpty(t, res.Message)
			assert.Len(t, res.Errors, len(tt.wantFields))

			for _, field := range tt.wantFields {
				assert.NotEmpty(t, res.Errors[field], field)
			}
		})
	}

	code, body := do(t, http.MethodGet, server.URL+"/rooms", "")
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"rooms":[]}`, string(body), "rejected payloads must not be stored")
}

func TestCreateRoom_MalformedJSON(t *testing.T) {
	server := newServer(t)

	for _, payload := range []string{`{"name":`, `["Room1"]`, `"Room1"`} {
		code, body := do(t, http.MethodPost, server.URL+"/room", payload)

		assert.Equal(t, http.StatusBadRequest, code, payload)
		assert.Contains(t, string(body), "failed to decode request body", payload)
	}
}

func TestGetRooms(t *testing.T) {
	server := newServer(t)

	code, body := do(t, http.MethodGet, server.URL+"/rooms", "")
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"rooms":[]}`, string(body))

	for _, name := range []string{"Alpha", "Bravo", "Charlie"} {
		code, _ := do(t, http.MethodPost, server.URL+"/room", fmt.Sprintf(`{"name":%q,"is_booked":true}`, name))
		require.Equal(t, http.StatusCreated, code)
	}

	code, body = do(t, http.MethodGet, server.URL+"/rooms", "")
	require.Equal(t, http.StatusOK, code)

	var res struct {
		Rooms []roomBody `json:"rooms"`
	}
	require.NoError(t, json.Unmarshal(body, &res))
	require.Len(t, res.Rooms, 3)

	assert.Equal(t, "Alpha", res.Rooms[0].Name)
	assert.Equal(t, "Charlie", res.Rooms[2].Name)
	assert.Less(t, res.Rooms[0].ID, res.Rooms[1].ID)
	assert.True(t, res.Rooms[1].IsBooked)
}

func TestGetRoomByID(t *testing.T) {
	server := newServer(t)

	code, body := do(t, http.MethodPost, server.URL+"/room", `{"name":"Room1","is_booked":1}`)
	require.Equal(t, http.StatusCreated, code)

	var created struct {
		Room roomBody `json:"room"`
	}
	require.NoError(t, json.Unmarshal(body, &created))

	t.Run("round trip", func(t *testing.T) {
		code, body := do(t, http.MethodGet, fmt.Sprintf("%s/room/%d", server.URL, created.Room.ID), "")
		require.Equal(t, http.StatusOK, code)

		var got roomBody
		require.NoError(t, json.Unmarshal(body, &got))

		assert.Equal(t, created.Room, got)
		assert.True(t, got.IsBooked)
	})

	for _, id := range []string{"99999", "0", "-1", "abc"} {
		t.Run("not found "+id, func(t *testing.T) {
			code, body := do(t, http.MethodGet, server.URL+"/room/"+id, "")

			assert.Equal(t, http.StatusNotFound, code)
			assert.JSONEq(t, `{"error":"room not found"}`, string(body))
		})
	}
}
