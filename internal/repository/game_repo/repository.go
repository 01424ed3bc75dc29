package game_repo

import (
	"bowling_backend/internal/model"
	"bowling_backend/internal/repository"
	"bowling_backend/pkg/bowling"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table          = "games"
	colID          = "id"
	colUserID      = "user_id"
	colSeriesID    = "series_id"
	colInputMode   = "input_mode"
	colFrames      = "frames"
	colFrameScores = "frame_scores"
	colTotalScore  = "total_score"
	colMaxScore    = "max_score"
	colComplete    = "complete"
	colSaved       = "saved"
	colCreatedAt   = "created_at"
	colUpdatedAt   = "updated_at"
)

var columns = []string{
	colID, colUserID, colSeriesID, colInputMode, colFrames, colFrameScores,
	colTotalScore, colMaxScore, colComplete, colSaved, colCreatedAt, colUpdatedAt,
}

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewGameRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.GameRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
	}
}

// CreateGame - сохраняет новую игру
func (r *repo) CreateGame(ctx context.Context, game *model.Game) error {
	frames, scores, err := encodeFrames(game)
	if err != nil {
		return err
	}

	query := sq.Insert(table).
		Columns(columns...).
		Values(game.ID, game.UserID, nullable(game.SeriesID), game.InputMode, frames, scores,
			game.TotalScore, game.MaxScore, game.Complete, game.Saved, game.CreatedAt, game.UpdatedAt).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

// GetGame - игра пользователя по ID
func (r *repo) GetGame(ctx context.Context, userID int, id string) (*model.Game, error) {
	return r.getGame(ctx, userID, id, "")
}

// GetGameForUpdate - игра с блокировкой строки до конца транзакции
func (r *repo) GetGameForUpdate(ctx context.Context, userID int, id string) (*model.Game, error) {
	return r.getGame(ctx, userID, id, "FOR UPDATE")
}

func (r *repo) getGame(ctx context.Context, userID int, id string, suffix string) (*model.Game, error) {
	query := sq.Select(columns...).
		From(table).
		Where(sq.Eq{colID: id, colUserID: userID}).
		PlaceholderFormat(sq.Dollar)
	if suffix != "" {
		query = query.Suffix(suffix)
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	game, err := scanGame(r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrGameNotFound
		}
		return nil, err
	}
	return game, nil
}

// UpdateGame - перезаписывает броски и пересчитанные очки игры
func (r *repo) UpdateGame(ctx context.Context, game *model.Game) error {
	frames, scores, err := encodeFrames(game)
	if err != nil {
		return err
	}

	query := sq.Update(table).
		Set(colFrames, frames).
		Set(colFrameScores, scores).
		Set(colTotalScore, game.TotalScore).
		Set(colMaxScore, game.MaxScore).
		Set(colComplete, game.Complete).
		Set(colSaved, game.Saved).
		Set(colInputMode, game.InputMode).
		Set(colUpdatedAt, game.UpdatedAt).
		Where(sq.Eq{colID: game.ID, colUserID: game.UserID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	res, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrGameNotFound
	}
	return nil
}

// DeleteGame - удаляет игру пользователя
func (r *repo) DeleteGame(ctx context.Context, userID int, id string) error {
	query := sq.Delete(table).
		Where(sq.Eq{colID: id, colUserID: userID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	res, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrGameNotFound
	}
	return nil
}

// ListGames - последние игры пользователя, новые первыми
func (r *repo) ListGames(ctx context.Context, userID int, limit int) ([]*model.Game, error) {
	query := sq.Select(columns...).
		From(table).
		Where(sq.Eq{colUserID: userID}).
		OrderBy(colCreatedAt + " DESC").
		PlaceholderFormat(sq.Dollar)
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}
	return r.list(ctx, query)
}

// ListSeriesGames - игры серии в порядке создания
func (r *repo) ListSeriesGames(ctx context.Context, userID int, seriesID string) ([]*model.Game, error) {
	query := sq.Select(columns...).
		From(table).
		Where(sq.Eq{colUserID: userID, colSeriesID: seriesID}).
		OrderBy(colCreatedAt, colID).
		PlaceholderFormat(sq.Dollar)
	return r.list(ctx, query)
}

func (r *repo) list(ctx context.Context, query sq.SelectBuilder) ([]*model.Game, error) {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var games []*model.Game
	for rows.Next() {
		game, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		games = append(games, game)
	}
	return games, rows.Err()
}

func scanGame(row pgx.Row) (*model.Game, error) {
	var (
		game     model.Game
		seriesID *string
		frames   []byte
		scores   []byte
	)
	err := row.Scan(&game.ID, &game.UserID, &seriesID, &game.InputMode, &frames, &scores,
		&game.TotalScore, &game.MaxScore, &game.Complete, &game.Saved, &game.CreatedAt, &game.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if seriesID != nil {
		game.SeriesID = *seriesID
	}
	if err := json.Unmarshal(frames, &game.Frames); err != nil {
		return nil, fmt.Errorf("decode frames of game %s: %w", game.ID, err)
	}
	game.Frames = bowling.CloneFrames(game.Frames)
	if err := json.Unmarshal(scores, &game.FrameScores); err != nil {
		return nil, fmt.Errorf("decode frame scores of game %s: %w", game.ID, err)
	}
	return &game, nil
}

func encodeFrames(game *model.Game) (frames []byte, scores []byte, err error) {
	frames, err = json.Marshal(game.Frames)
	if err != nil {
		return nil, nil, err
	}
	scores, err = json.Marshal(game.FrameScores)
	if err != nil {
		return nil, nil, err
	}
	return frames, scores, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
