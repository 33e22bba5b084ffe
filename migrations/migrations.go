// migrations содержит SQL-миграции каталога пользователей в формате goose.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
