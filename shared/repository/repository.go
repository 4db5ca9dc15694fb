package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"reflect"
	"roomapi/infras/database"
	"roomapi/infras/otel"
	"roomapi/shared/constant"
	"roomapi/shared/dto"
	"roomapi/shared/logger"
	"strings"

	"github.com/jmoiron/sqlx"
)

// Repository is a generic sqlx repository over the table backing T. Columns come from the db tags of T,
// embedded structs included; fields tagged generated:"true" are filled by the store and skipped on insert.
type Repository[T any] struct {
	db            *database.Connection
	otel          otel.Otel
	entity        string
	table         string
	primaryColumn string
	selectColumns string
	sortable      []string
	insertQuery   string
	InsertColumns []string
}

func NewRepository[T any](entityName, tableName, primaryColumn string, dbConnection *database.Connection, otl otel.Otel) Repository[T] {
	var zero T

	columns, insertColumns := getColumns(reflect.TypeOf(zero))

	qualified := make([]string, 0, len(columns))
	sortable := make([]string, 0, 2*len(columns))

	for _, col := range columns {
		qualified = append(qualified, tableName+"."+col)
		sortable = append(sortable, col, tableName+"."+col)
	}

	return Repository[T]{
		db:            dbConnection,
		otel:          otl,
		entity:        entityName,
		table:         tableName,
		primaryColumn: primaryColumn,
		selectColumns: strings.Join(qualified, ", "),
		sortable:      sortable,
		insertQuery:   insertQuery(tableName, primaryColumn, insertColumns),
		InsertColumns: insertColumns,
	}
}

// Insert writes model and returns the primary key assigned by the store.
func (repo *Repository[T]) Insert(ctx context.Context, model T) (int64, error) {
	ctx, scope := repo.scope(ctx, "Insert")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, repo.insertQuery)

	stmt, err := repo.db.Write.PrepareNamedContext(ctx, repo.insertQuery)
	if err != nil {
		return 0, repo.fail(scope, "prepare insert", err)
	}
	defer stmt.Close()

	var id int64
	if err = stmt.GetContext(ctx, &id, model); err != nil {
		return 0, repo.fail(scope, "insert", err)
	}

	return id, nil
}

// Get returns the first row matching filter, or the zero T when nothing matches.
func (repo *Repository[T]) Get(ctx context.Context, filter dto.Condition) (T, error) {
	ctx, scope := repo.scope(ctx, "Get")
	defer scope.End()

	var model T

	where, args := repo.where(filter)
	query := strings.TrimSpace(fmt.Sprintf("SELECT %s FROM %s %s", repo.selectColumns, repo.table, where))
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	stmt, err := repo.prepareRead(ctx, query)
	if err != nil {
		return model, repo.fail(scope, "prepare get", err)
	}
	defer stmt.Close()

	err = stmt.GetContext(ctx, &model, args)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return model, nil
	case err != nil:
		return model, repo.fail(scope, "get", err)
	}

	return model, nil
}

// GetAll returns every row matching filter, ordered and paged by params. It never returns a nil slice.
func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.Condition) ([]T, error) {
	ctx, scope := repo.scope(ctx, "GetAll")
	defer scope.End()

	models := []T{}

	where, args := repo.where(filter)
	clauses := []string{
		fmt.Sprintf("SELECT %s FROM %s", repo.selectColumns, repo.table),
		where,
		params.OrderBy(repo.sortable),
		params.LimitOffset(args),
	}

	query := joinClauses(clauses)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	stmt, err := repo.prepareRead(ctx, query)
	if err != nil {
		return models, repo.fail(scope, "prepare list", err)
	}
	defer stmt.Close()

	if err = stmt.SelectContext(ctx, &models, args); err != nil {
		return models, repo.fail(scope, "list", err)
	}

	return models, nil
}

func (repo *Repository[T]) scope(ctx context.Context, operation string) (context.Context, otel.Scope) {
	name := strings.Join([]string{constant.OtelRepositoryScopeName, repo.entity, operation}, ".")

	return repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, name)
}

func (repo *Repository[T]) fail(scope otel.Scope, action string, err error) error {
	logger.ErrorWithStack(err)
	scope.TraceError(err)

	return fmt.Errorf("%s %s: %w", action, repo.entity, err)
}

func (repo *Repository[T]) prepareRead(ctx context.Context, query string) (*sqlx.NamedStmt, error) {
	return repo.db.Read.PrepareNamedContext(ctx, query)
}

func (repo *Repository[T]) where(filter dto.Condition) (string, map[string]any) {
	if filter == nil {
		return "", map[string]any{}
	}

	where, args := filter.Where()
	if where == "" {
		return "", map[string]any{}
	}

	return "WHERE " + where, args
}

func insertQuery(table, primaryColumn string, columns []string) string {
	params := make([]string, len(columns))
	for i, col := range columns {
		params[i] = ":" + col
	}

	return fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		table, strings.Join(columns, ", "), strings.Join(params, ", "), primaryColumn,
	)
}

func joinClauses(clauses []string) string {
	nonEmpty := clauses[:0]

	for _, clause := range clauses {
		if clause != "" {
			nonEmpty = append(nonEmpty, clause)
		}
	}

	return strings.Join(nonEmpty, " ")
}

func getColumns(reflectType reflect.Type) (columns, insertColumns []string) {
	for i := range reflectType.NumField() {
		field := reflectType.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			nested, nestedInsert := getColumns(field.Type)
			columns = append(columns, nested...)
			insertColumns = append(insertColumns, nestedInsert...)

			continue
		}

		name := field.Tag.Get("db")
		if name == "" || name == "-" {
			continue
		}

		columns = append(columns, name)

		if field.Tag.Get("generated") != "true" {
			insertColumns = append(insertColumns, name)
		}
	}

	return columns, insertColumns
}
