package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"studio/infras/otel"
	"studio/infras/postgres"
	"studio/internal/domains/class/model"
	gDto "studio/shared/dto"
	gRepo "studio/shared/repository"
)

type Class interface {
	Insert(ctx context.Context, model model.Class) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Class, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Class, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Class]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Class {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Class](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
