// Package flashcards provides the PostgreSQL-backed repository implementing
// the filtered, paginated flashcard listing and CRUD.
package flashcards

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/avolkovs/techcards/internal/common"
	"github.com/avolkovs/techcards/internal/dbx"
	"github.com/avolkovs/techcards/internal/server/models"
	"github.com/lib/pq"
)

// PostgresRepository implements flashcard storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const cardColumns = "id, question, answer, tech, categories, difficulty, created_at, updated_at"

var likeReplacer = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likeEscape neutralizes LIKE metacharacters in a user-supplied term so the
// search matches it literally. Pairs with ESCAPE '\' in the pattern.
func likeEscape(s string) string {
	return likeReplacer.Replace(s)
}

// whereClause composes the filter conjunction. Dimensions are ANDed;
// within search, question and answer are ORed. An empty filter yields an
// empty clause, matching everything.
func whereClause(f models.ListFilter) (string, []any) {
	var conds []string
	var args []any

	if tech, ok := f.Tech.Constraint(); ok {
		args = append(args, string(tech))
		conds = append(conds, fmt.Sprintf("tech = $%d", len(args)))
	}
	if f.Category != "" {
		args = append(args, f.Category)
		conds = append(conds, fmt.Sprintf("$%d = ANY (categories)", len(args)))
	}
	if f.Search != "" {
		args = append(args, likeEscape(f.Search))
		n := len(args)
		conds = append(conds, fmt.Sprintf("(question ILIKE '%%' || $%d || '%%' ESCAPE '\\' OR answer ILIKE '%%' || $%d || '%%' ESCAPE '\\')", n, n))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func scanCard(scan func(dest ...any) error) (*models.Flashcard, error) {
	card := &models.Flashcard{Categories: []string{}}
	var difficulty sql.NullString
	err := scan(
		&card.ID, &card.Question, &card.Answer, &card.Tech,
		pq.Array(&card.Categories), &difficulty, &card.CreatedAt, &card.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if card.Categories == nil {
		card.Categories = []string{}
	}
	if difficulty.Valid {
		d := models.Difficulty(difficulty.String)
		card.Difficulty = &d
	}
	return card, nil
}

func difficultyArg(d *models.Difficulty) any {
	if d == nil {
		return nil
	}
	return string(*d)
}

// List returns one page of matching cards ordered by creation time
// descending. The id tiebreaker keeps the order total, so pages with a
// fixed filter are disjoint and exhaustive.
func (r *PostgresRepository) List(ctx context.Context, filter models.ListFilter, limit, offset int) ([]*models.Flashcard, error) {
	where, args := whereClause(filter)
	query := fmt.Sprintf(
		"SELECT %s FROM flashcards%s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d",
		cardColumns, where, len(args)+1, len(args)+2,
	)
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Flashcard, 0, limit)
	for rows.Next() {
		card, err := scanCard(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, card)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Count(ctx context.Context, filter models.ListFilter) (int64, error) {
	where, args := whereClause(filter)
	query := "SELECT COUNT(*) FROM flashcards" + where

	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return count, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Flashcard, error) {
	query := fmt.Sprintf("SELECT %s FROM flashcards WHERE id = $1", cardColumns)

	card, err := scanCard(r.db.QueryRowContext(ctx, query, id).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return card, nil
}

func (r *PostgresRepository) Create(ctx context.Context, card *models.Flashcard) (*models.Flashcard, error) {
	query := `
		INSERT INTO flashcards (id, question, answer, tech, categories, difficulty)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		card.ID, card.Question, card.Answer, string(card.Tech),
		pq.Array(card.Categories), difficultyArg(card.Difficulty),
	).Scan(&card.CreatedAt, &card.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return card, nil
}

func (r *PostgresRepository) Update(ctx context.Context, card *models.Flashcard) (*models.Flashcard, error) {
	query := `
		UPDATE flashcards
		SET question = $2, answer = $3, tech = $4, categories = $5, difficulty = $6, updated_at = now()
		WHERE id = $1
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		card.ID, card.Question, card.Answer, string(card.Tech),
		pq.Array(card.Categories), difficultyArg(card.Difficulty),
	).Scan(&card.CreatedAt, &card.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return card, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM flashcards WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) DistinctCategories(ctx context.Context) ([]string, error) {
	query := "SELECT DISTINCT unnest(categories) AS tag FROM flashcards ORDER BY tag"

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	tags := make([]string, 0)
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tags, nil
}
