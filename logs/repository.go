// Package logs records selfplay games in a sqlite database.
package logs

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // repository assumes sqlite
)

type Repository struct {
	db *sqlx.DB

	insert *sqlx.NamedStmt
}

type Game struct {
	ID        int64     `db:"id"`
	Timestamp time.Time `db:"time"`
	Seed      int64     `db:"seed"`
	Width     int       `db:"width"`
	Height    int       `db:"height"`
	Mode      string    `db:"mode"`
	Generator string    `db:"generator"`
	Weights   string    `db:"weights"`
	Pieces    int       `db:"pieces"`
	Lines     int       `db:"lines"`
	Tetrises  int       `db:"tetrises"`
	ToppedOut bool      `db:"topped_out"`
}

func Open(path string) (*Repository, error) {
	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err = db.Exec(createGameTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("create games table: %w", err)
	}
	if _, err = db.Exec(createSummaryView); err != nil {
		db.Close()
		return nil, fmt.Errorf("create game_summary view: %w", err)
	}

	repo := &Repository{db: db}
	repo.insert, err = db.PrepareNamed(insertStmt)
	if err != nil {
		repo.Close()
		return nil, fmt.Errorf("prepare: %w", err)
	}
	return repo, nil
}

func (r *Repository) InsertGame(g *Game) error {
	_, err := r.insert.Exec(g)
	return err
}

func (r *Repository) InsertGames(gs []*Game) error {
	txn, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer txn.Rollback()
	stmt := txn.NamedStmt(r.insert)
	for _, g := range gs {
		if _, e := stmt.Exec(g); e != nil {
			return e
		}
	}
	return txn.Commit()
}

// Games returns every recorded game played in `mode`, oldest first.
// An empty mode selects all games.
func (r *Repository) Games(mode string) ([]Game, error) {
	var out []Game
	var err error
	if mode == "" {
		err = r.db.Select(&out, selectAllGames)
	} else {
		err = r.db.Select(&out, selectGamesByMode, mode)
	}
	if err != nil {
		return nil, fmt.Errorf("select games: %w", err)
	}
	return out, nil
}

type Summary struct {
	Mode      string  `db:"mode"`
	Generator string  `db:"generator"`
	Games     int     `db:"games"`
	MeanLines float64 `db:"mean_lines"`
	MaxLines  int     `db:"max_lines"`
}

// Summaries aggregates recorded games by mode and generator.
func (r *Repository) Summaries() ([]Summary, error) {
	var out []Summary
	if err := r.db.Select(&out, selectSummaries); err != nil {
		return nil, fmt.Errorf("select summaries: %w", err)
	}
	return out, nil
}

func (r *Repository) Close() {
	if r.insert != nil {
		r.insert.Close()
	}
	r.db.Close()
}
