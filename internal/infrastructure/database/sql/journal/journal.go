package journal

import (
	"context"
	"fmt"
	"miniAppRelay/internal/domain/tgbot"

	"github.com/doug-martin/goqu/v9"
	// диалект для постгреса.
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	callsTable = "bot_api_calls"
	callsCap   = 20
)

type APICall = tgbot.APICall

// Journal журнал исходящих запросов к Bot API для админки.
type Journal struct {
	db *pgxpool.Pool
}

func New(pgxPool *pgxpool.Pool) *Journal {
	return &Journal{db: pgxPool}
}

func (j *Journal) Record(ctx context.Context, call *APICall) error {
	sqlCmd, _, _ := goqu.Dialect("postgres").
		Insert(callsTable).
		Cols("method", "chat_id", "ok", "description", "created_at").
		Vals(goqu.Vals{goqu.L("$1"), goqu.L("$2"), goqu.L("$3"), goqu.L("$4"), goqu.L("$5")}).
		ToSQL()

	if _, err := j.db.Exec(ctx, sqlCmd, call.Method, call.ChatID, call.Ok, call.Description, call.CreatedAt); err != nil {
		return fmt.Errorf("ошибка при добавлении в таблицу %s: %w", callsTable, err)
	}

	return nil
}

// Recent последние limit записей, от новых к старым.
func (j *Journal) Recent(ctx context.Context, limit uint) ([]APICall, error) {
	sqlCmd, _, _ := goqu.Dialect("postgres").
		From(callsTable).
		Select("method", "chat_id", "ok", "description", "created_at").
		Order(goqu.I("call_id").Desc()).
		Limit(limit).
		ToSQL()

	rows, err := j.db.Query(ctx, sqlCmd)
	if err != nil {
		return nil, fmt.Errorf("ошибка при чтении журнала запросов: %w", err)
	}

	defer rows.Close()

	calls := make([]APICall, 0, callsCap)

	for rows.Next() {
		var call APICall

		if err = rows.Scan(&call.Method, &call.ChatID, &call.Ok, &call.Description, &call.CreatedAt); err != nil {
			return nil, fmt.Errorf("ошибка при чтении строки: %w", err)
		}

		calls = append(calls, call)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при обходе строк журнала: %w", err)
	}

	return calls, nil
}
