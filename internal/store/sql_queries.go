package store

import (
	sq "github.com/Masterminds/squirrel"
)

const localStorageTable = "local_storage"

var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildGetItemQuery(key string) (string, []any, error) {
	return sqlite.
		Select("value").
		From(localStorageTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

// buildSetItemQuery builds an upsert keyed by the primary key.
func buildSetItemQuery(key, value string) (string, []any, error) {
	return sqlite.
		Insert(localStorageTable).
		Columns("key", "value", "updated_at").
		Values(key, value, sq.Expr("CURRENT_TIMESTAMP")).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func buildRemoveItemQuery(key string) (string, []any, error) {
	return sqlite.
		Delete(localStorageTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

func buildKeysQuery() (string, []any, error) {
	return sqlite.
		Select("key").
		From(localStorageTable).
		OrderBy("key").
		ToSql()
}

func buildClearQuery() (string, []any, error) {
	return sqlite.
		Delete(localStorageTable).
		ToSql()
}
