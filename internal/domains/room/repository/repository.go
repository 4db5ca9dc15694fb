package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"roomapi/infras/database"
	"roomapi/infras/otel"
	"roomapi/internal/domains/room/model"
	gDto "roomapi/shared/dto"
	gRepo "roomapi/shared/repository"
)

// Room is the store of rooms. Rooms are only ever added and read.
type Room interface {
	Insert(ctx context.Context, model model.Room) (int64, error)
	Get(ctx context.Context, filter gDto.Condition) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.Condition) ([]model.Room, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
}

func New(db *database.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
