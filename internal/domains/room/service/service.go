package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"roomapi/config"
	"roomapi/infras/kafka"
	"roomapi/infras/otel"
	"roomapi/internal/domains/room/model"
	"roomapi/internal/domains/room/model/dto"
	"roomapi/internal/domains/room/repository"
	"roomapi/shared"
	"roomapi/shared/cache"
	"roomapi/shared/constant"
	gDto "roomapi/shared/dto"
	"roomapi/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetRoom    = "room:get"
	cacheGetAllRoom = "room:gets"

	// cacheRoomsGeneration is bumped on every create. Lists are cached under their generation, so a
	// list read from the store before a create can never be served after it.
	cacheRoomsGeneration = "room:generation"

	EventRoomCreated = "room.created"
)

// ErrRoomNotFound is returned by Get for unknown ids.
var ErrRoomNotFound = failure.NotFound("room not found")

type Room interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) (dto.RoomResponse, error)
	GetAll(ctx context.Context) (dto.GetRoomsResponse, error)
	Get(ctx context.Context, id int64) (dto.RoomResponse, error)
}

type serviceImpl struct {
	repo  repository.Room
	cfg   *config.Config
	cache cache.Cache
	otel  otel.Otel
	kafka kafka.Client
}

func New(repo repository.Room, cfg *config.Config, cache cache.Cache, otel otel.Otel, kafka kafka.Client) Room {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		kafka: kafka,
	}
}

// RoomCreatedEvent is published on the configured topic, keyed by room id.
type RoomCreatedEvent struct {
	Type string           `json:"type"`
	Room dto.RoomResponse `json:"room"`
}

// Create validates req and persists the room. Validation failures never reach the store.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = req.Validate(s.cfg.Room.NameMaxLength); err != nil {
		return res, err //nolint:wrapcheck
	}

	room := req.ToModel()

	room.ID, err = s.repo.Insert(ctx, room)
	if err != nil {
		log.Error().Err(err).Msg("failed to create room")

		return res, fmt.Errorf("failed to create room: %w", err)
	}

	res.FromModel(room)
	scope.SetAttribute("room.id", room.ID)

	if _, err := s.cache.Increment(ctx, cacheRoomsGeneration, 0); err != nil {
		log.Error().Err(err).Msg("failed to bump rooms cache generation")
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllRoom)
	s.publishCreated(ctx, res)

	return res, nil
}

func (s *serviceImpl) publishCreated(ctx context.Context, room dto.RoomResponse) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+"."+EventRoomCreated)
	defer scope.End()

	err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topic, kafka.Message{
		Key:   strconv.FormatInt(room.ID, 10),
		Value: RoomCreatedEvent{Type: EventRoomCreated, Room: room},
	})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("room_id", room.ID).Msg("failed to publish room created event")
	}
}

// generation returns the current list generation. It must be read before the store.
func (s *serviceImpl) generation(ctx context.Context) int64 {
	var generation int64

	if err := s.cache.Get(ctx, cacheRoomsGeneration, &generation); err != nil && !errors.Is(err, cache.Nil) {
		log.Warn().Err(err).Msg("failed to read rooms cache generation")
	}

	return generation
}

// GetAll returns every room ordered by id.
func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetAllRoom, strconv.FormatInt(s.generation(ctx), 10))

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for rooms")

		return res, nil
	}

	params := gDto.QueryParams{SortBy: model.FieldID, SortDir: gDto.SortDirAsc}

	models, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.FromModels(models)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save rooms to cache")
	}

	return res, nil
}

// Get returns the room with id, or a not-found failure.
func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if id <= 0 {
		return res, ErrRoomNotFound
	}

	cacheKey := shared.BuildCacheKey(cacheGetRoom, strconv.FormatInt(id, 10))

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for room")

		return res, nil
	}

	room, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == 0 {
		return res, ErrRoomNotFound
	}

	res.FromModel(room)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save room to cache")
	}

	return res, nil
}
