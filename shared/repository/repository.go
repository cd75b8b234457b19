package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"
	"venuely/infras/otel"
	"venuely/infras/postgres"
	"venuely/shared/constant"
	"venuely/shared/dto"
	"venuely/shared/logger"

	"github.com/jmoiron/sqlx"
)

var errRequiredFilter = errors.New("required filter")

type column struct {
	name  string
	table string
	alias string
}

type execer interface {
	NamedExecContext(ctx context.Context, query string, arg any) (sql.Result, error)
}

// joiner is implemented by read models that select across tables. Fields tagged
// `table:"other"` are read from the joined table and never inserted.
type joiner interface {
	GetJoinQuery() string
}

// Repository builds named-parameter SQL for the db-tagged fields of T.
type Repository[T any] struct {
	db            *postgres.Connection
	otel          otel.Otel
	table         string
	entity        string
	primaryColumn string
	columns       []column
	insertColumns []string
	join          string
}

func NewRepository[T any](entityName, tableName, primaryColumn string, db *postgres.Connection, otl otel.Otel) Repository[T] {
	var zero T

	columns, insertColumns := getColumns(tableName, reflect.TypeOf(zero))

	join := ""
	if j, ok := any(zero).(joiner); ok {
		join = j.GetJoinQuery()
	}

	return Repository[T]{
		db:            db,
		otel:          otl,
		table:         tableName,
		entity:        entityName,
		primaryColumn: primaryColumn,
		columns:       columns,
		insertColumns: insertColumns,
		join:          join,
	}
}

func (repo *Repository[T]) scope(ctx context.Context, op string) (context.Context, otel.Scope) {
	return repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entity, op))
}

// fail logs and traces err, then wraps it with the operation and entity name.
func (repo *Repository[T]) fail(scope otel.Scope, action string, err error) error {
	logger.ErrorWithStack(err)
	scope.TraceError(err)

	return fmt.Errorf("failed to %s (%s): %w", action, repo.entity, err)
}

func (repo *Repository[T]) insertQuery(suffix string) string {
	placeholders := make([]string, len(repo.insertColumns))
	for i, col := range repo.insertColumns {
		placeholders[i] = ":" + col
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", repo.table, strings.Join(repo.insertColumns, ", "), strings.Join(placeholders, ", "))
	if suffix != "" {
		query += " " + suffix
	}

	return query
}

func (repo *Repository[T]) exec(ctx context.Context, exec execer, op, action, query string, arg any) (int64, error) {
	ctx, scope := repo.scope(ctx, op)
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := exec.NamedExecContext(ctx, query, arg)
	if err != nil {
		return 0, repo.fail(scope, action, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to read affected rows (%s): %w", repo.entity, err)
	}

	return affected, nil
}

// read prepares query against the read pool and hands the statement to fn.
func (repo *Repository[T]) read(ctx context.Context, op, action, query string, fn func(ctx context.Context, stmt *sqlx.NamedStmt) error) error {
	ctx, scope := repo.scope(ctx, op)
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	stmt, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		return repo.fail(scope, "prepare statement", err)
	}
	defer stmt.Close()

	if err = fn(ctx, stmt); err != nil {
		return repo.fail(scope, action, err)
	}

	return nil
}

func (repo *Repository[T]) Insert(ctx context.Context, model T) error {
	_, err := repo.exec(ctx, repo.db.Write, "Insert", "insert data", repo.insertQuery(""), model)

	return err
}

func (repo *Repository[T]) InsertTx(ctx context.Context, sqltx *sqlx.Tx, model T) error {
	_, err := repo.exec(ctx, sqltx, "InsertTx", "insert data", repo.insertQuery(""), model)

	return err
}

// InsertIgnoreConflictTx inserts the row unless it collides on conflictColumns.
// The boolean reports whether a new row was written.
func (repo *Repository[T]) InsertIgnoreConflictTx(ctx context.Context, sqltx *sqlx.Tx, model T, conflictColumns ...string) (bool, error) {
	conflict := "ON CONFLICT DO NOTHING"
	if len(conflictColumns) > 0 {
		conflict = fmt.Sprintf("ON CONFLICT (%s) DO NOTHING", strings.Join(conflictColumns, ", "))
	}

	affected, err := repo.exec(ctx, sqltx, "InsertIgnoreConflictTx", "insert data", repo.insertQuery(conflict), model)

	return affected > 0, err
}

func (repo *Repository[T]) Exist(ctx context.Context, filter dto.FilterGroup) (bool, error) {
	where, args := whereClause(filter)
	if where == "" {
		return false, errRequiredFilter
	}

	exist := false
	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s %s)", repo.table, where)

	err := repo.read(ctx, "Exist", "check exist data", query, func(ctx context.Context, stmt *sqlx.NamedStmt) error {
		return stmt.GetContext(ctx, &exist, args)
	})

	return exist, err
}

// Get returns the zero T when no row matches.
func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup, columns ...string) (T, error) {
	var model T

	where, args := whereClause(filter)
	query := fmt.Sprintf("SELECT %s FROM %s %s %s", repo.selectList(columns), repo.table, repo.join, where)

	err := repo.read(ctx, "Get", "get data", query, func(ctx context.Context, stmt *sqlx.NamedStmt) error {
		if err := stmt.GetContext(ctx, &model, args); !errors.Is(err, sql.ErrNoRows) {
			return err
		}

		return nil
	})

	return model, err
}

// GetAll orders by params.SortBy only when the caller has set SortDir too, and pages
// only when Limit is positive. SortBy must come from an allow-list.
func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error) {
	var models []T

	query, args := repo.listQuery(params, filter, columns)

	err := repo.read(ctx, "GetAll", "get all data", query, func(ctx context.Context, stmt *sqlx.NamedStmt) error {
		return stmt.SelectContext(ctx, &models, args)
	})

	return models, err
}

func (repo *Repository[T]) listQuery(params dto.QueryParams, filter dto.FilterGroup, columns []string) (string, map[string]any) {
	where, args := whereClause(filter)

	clauses := []string{fmt.Sprintf("SELECT %s FROM %s %s %s", repo.selectList(columns), repo.table, repo.join, where)}

	if params.SortBy != "" && params.SortDir != "" {
		clauses = append(clauses, fmt.Sprintf("ORDER BY %s %s", params.SortBy, params.SortDir))
	}

	if params.Limit > 0 {
		args["limit"] = params.Limit
		args["offset"] = params.Offset()

		clauses = append(clauses, "LIMIT :limit OFFSET :offset")
	}

	return strings.Join(clauses, " "), args
}

func (repo *Repository[T]) Count(ctx context.Context, filter dto.FilterGroup) (int, error) {
	count := 0

	where, args := whereClause(filter)
	query := fmt.Sprintf("SELECT COUNT(%s.%s) FROM %s %s %s", repo.table, repo.primaryColumn, repo.table, repo.join, where)

	err := repo.read(ctx, "Count", "count data", query, func(ctx context.Context, stmt *sqlx.NamedStmt) error {
		return stmt.GetContext(ctx, &count, args)
	})

	return count, err
}

func (repo *Repository[T]) Delete(ctx context.Context, filter dto.FilterGroup) error {
	where, args := whereClause(filter)
	if where == "" {
		return errRequiredFilter
	}

	_, err := repo.exec(ctx, repo.db.Write, "Delete", "delete data", fmt.Sprintf("DELETE FROM %s %s", repo.table, where), args)

	return err
}

func (repo *Repository[T]) Update(ctx context.Context, fields map[string]any, filter dto.FilterGroup) error {
	_, err := repo.update(ctx, repo.db.Write, "Update", fields, filter)

	return err
}

// UpdateAffected behaves like Update and reports how many rows matched the filter.
func (repo *Repository[T]) UpdateAffected(ctx context.Context, fields map[string]any, filter dto.FilterGroup) (int64, error) {
	return repo.update(ctx, repo.db.Write, "UpdateAffected", fields, filter)
}

func (repo *Repository[T]) UpdateAffectedTx(ctx context.Context, sqltx *sqlx.Tx, fields map[string]any, filter dto.FilterGroup) (int64, error) {
	return repo.update(ctx, sqltx, "UpdateAffectedTx", fields, filter)
}

// update binds the SET values under their column names. A filter on a column that is
// also being set needs its own ArgName.
func (repo *Repository[T]) update(ctx context.Context, exec execer, op string, fields map[string]any, filter dto.FilterGroup) (int64, error) {
	where, args := whereClause(filter)
	if where == "" {
		return 0, errRequiredFilter
	}

	sets := make([]string, 0, len(fields))
	cols := make([]string, 0, len(fields))
	for col := range fields {
		cols = append(cols, col)
	}
	slices.Sort(cols)

	for _, col := range cols {
		sets = append(sets, fmt.Sprintf("%s = :%s", col, col))
	}

	maps.Copy(args, fields)

	return repo.exec(ctx, exec, op, "update data", fmt.Sprintf("UPDATE %s SET %s %s", repo.table, strings.Join(sets, ", "), where), args)
}

// selectList renders the qualified column list, restricted to only when given.
func (repo *Repository[T]) selectList(only []string) string {
	list := make([]string, 0, len(repo.columns))

	for _, col := range repo.columns {
		if len(only) > 0 && !slices.Contains(only, col.name) {
			continue
		}

		switch {
		case col.table == "":
			list = append(list, col.name)
		case col.alias != "":
			list = append(list, fmt.Sprintf("%s.%s AS %s", col.table, col.name, col.alias))
		default:
			list = append(list, col.table+"."+col.name)
		}
	}

	return strings.Join(list, ", ")
}

func whereClause(filter dto.FilterGroup) (string, map[string]any) {
	where, args := filter.GetWhereClause()
	if where == "" {
		return "", map[string]any{}
	}

	return "WHERE " + where, args
}

// getColumns walks the db tags of typ, descending into embedded structs. A `column` tag
// selects a differently named source column under the db tag as alias.
func getColumns(table string, typ reflect.Type) (columns []column, insertColumns []string) {
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			cols, inserts := getColumns(table, field.Type)
			columns = append(columns, cols...)
			insertColumns = append(insertColumns, inserts...)

			continue
		}

		dbTag := field.Tag.Get("db")
		if dbTag == "" || dbTag == "-" {
			continue
		}

		source := field.Tag.Get("table")
		if source == "" {
			source = table
		}

		if source == table {
			insertColumns = append(insertColumns, dbTag)
		}

		if name := field.Tag.Get("column"); name != "" {
			columns = append(columns, column{name: name, table: source, alias: dbTag})
		} else {
			columns = append(columns, column{name: dbTag, table: source})
		}
	}

	return columns, insertColumns
}
