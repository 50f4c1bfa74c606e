package postgres

import (
	"context"
	"database/sql"
)

// Queryer é a superfície de consulta usada pelos repositórios. Todas as
// operações recebem o contexto da requisição para propagar cancelamento
// até o banco.
type Queryer interface {
	ExecContext(ctx context.Context, sql string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, sql string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, sql string, args ...interface{}) *sql.Row
}
