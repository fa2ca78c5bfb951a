package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type CompetitionRepository interface {
	Init(ctx context.Context) error
	Save(ctx context.Context, record *entity.CompetitionRecord) error
	List(ctx context.Context, limit int) ([]entity.CompetitionRecord, error)
}

type competitionRepository struct {
	conn *sql.DB
}

func NewCompetitionRepository(conn *sql.DB) CompetitionRepository {
	return &competitionRepository{
		conn: conn,
	}
}

func (that *competitionRepository) Init(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS competitions (
		id             INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id     TEXT    NOT NULL,
		player_x_name  TEXT    NOT NULL,
		player_o_name  TEXT    NOT NULL,
		total_rounds   INTEGER NOT NULL,
		wins_x         INTEGER NOT NULL,
		wins_o         INTEGER NOT NULL,
		draws          INTEGER NOT NULL,
		overall_winner TEXT    NOT NULL,
		finished_at    INTEGER NOT NULL
	)`

	if _, err := that.conn.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("can't create table: %w", err)
	}

	return nil
}

// Save - archives a finished competition and sets record.ID.
func (that *competitionRepository) Save(ctx context.Context, record *entity.CompetitionRecord) error {
	query := `INSERT INTO competitions
		(session_id, player_x_name, player_o_name, total_rounds, wins_x, wins_o, draws, overall_winner, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := that.conn.ExecContext(ctx, query,
		record.SessionID,
		record.PlayerXName,
		record.PlayerOName,
		record.TotalRounds,
		record.Standings.WinsX,
		record.Standings.WinsO,
		record.Standings.Draws,
		string(record.OverallWinner),
		record.FinishedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("can't save competition: %w", err)
	}

	if record.ID, err = result.LastInsertId(); err != nil {
		return fmt.Errorf("can't read competition id: %w", err)
	}

	return nil
}

// List - returns up to limit archived competitions, newest first.
func (that *competitionRepository) List(ctx context.Context, limit int) ([]entity.CompetitionRecord, error) {
	query := `SELECT id, session_id, player_x_name, player_o_name, total_rounds, wins_x, wins_o, draws, overall_winner, finished_at
		FROM competitions ORDER BY finished_at DESC, id DESC LIMIT ?`

	rows, err := that.conn.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("can't list competitions: %w", err)
	}
	defer rows.Close()

	records := make([]entity.CompetitionRecord, 0)
	for rows.Next() {
		var (
			record     entity.CompetitionRecord
			winner     string
			finishedAt int64
		)

		if err = rows.Scan(
			&record.ID,
			&record.SessionID,
			&record.PlayerXName,
			&record.PlayerOName,
			&record.TotalRounds,
			&record.Standings.WinsX,
			&record.Standings.WinsO,
			&record.Standings.Draws,
			&winner,
			&finishedAt,
		); err != nil {
			return nil, fmt.Errorf("can't scan competition: %w", err)
		}

		record.OverallWinner = entity.Mark(winner)
		record.FinishedAt = time.UnixMilli(finishedAt).UTC()
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't list competitions: %w", err)
	}

	return records, nil
}
