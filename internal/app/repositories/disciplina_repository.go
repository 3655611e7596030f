package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/yigit/cadastro/internal/app/models"
	"github.com/yigit/cadastro/internal/pkg/apperrors"
	"github.com/yigit/cadastro/internal/pkg/dberrors"
	"github.com/yigit/cadastro/internal/pkg/logger"
)

// DisciplinaRepository handles database operations for disciplinas
type DisciplinaRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewDisciplinaRepository creates a new disciplina repository
func NewDisciplinaRepository(db DBTX) *DisciplinaRepository {
	return &DisciplinaRepository{
		db: db,
		sb: statementBuilder(),
	}
}

// WithTx returns a repository bound to tx
func (r *DisciplinaRepository) WithTx(tx pgx.Tx) *DisciplinaRepository {
	return NewDisciplinaRepository(tx)
}

func (r *DisciplinaRepository) listQuery() (string, []interface{}, error) {
	return r.sb.Select("id", "name").
		From("disciplinas").
		OrderBy("name ASC", "id ASC").
		ToSql()
}

// ListOrderedByName retrieves all disciplinas ordered alphabetically
func (r *DisciplinaRepository) ListOrderedByName(ctx context.Context) ([]*models.Disciplina, error) {
	sql, args, err := r.listQuery()
	if err != nil {
		return nil, fmt.Errorf("failed to build list disciplinas query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list disciplinas query")
		return nil, fmt.Errorf("error querying disciplinas: %w", err)
	}
	defer rows.Close()

	disciplinas := []*models.Disciplina{}
	for rows.Next() {
		d := &models.Disciplina{}
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, fmt.Errorf("error scanning disciplina row: %w", err)
		}
		disciplinas = append(disciplinas, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating disciplina rows: %w", err)
	}

	return disciplinas, nil
}

func (r *DisciplinaRepository) getByIDQuery(id int64) (string, []interface{}, error) {
	return r.sb.Select("id", "name").
		From("disciplinas").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
}

// GetByID retrieves a disciplina by ID
func (r *DisciplinaRepository) GetByID(ctx context.Context, id int64) (*models.Disciplina, error) {
	sql, args, err := r.getByIDQuery(id)
	if err != nil {
		return nil, fmt.Errorf("failed to build get disciplina query: %w", err)
	}

	d := &models.Disciplina{}
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&d.ID, &d.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDisciplinaNotFound
		}
		logger.Error().Err(err).Int64("disciplinaID", id).Msg("Error scanning disciplina row")
		return nil, fmt.Errorf("error retrieving disciplina: %w", err)
	}

	return d, nil
}

func (r *DisciplinaRepository) createQuery(d *models.Disciplina) (string, []interface{}, error) {
	return r.sb.Insert("disciplinas").
		Columns("name").
		Values(d.Name).
		Suffix("RETURNING id").
		ToSql()
}

// Create creates a new disciplina and sets its ID
func (r *DisciplinaRepository) Create(ctx context.Context, d *models.Disciplina) error {
	sql, args, err := r.createQuery(d)
	if err != nil {
		return fmt.Errorf("failed to build create disciplina query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&d.ID); err != nil {
		if dberrors.IsDuplicateConstraintError(err, dberrors.DisciplinasNameKey) {
			return apperrors.ErrDisciplinaAlreadyExists
		}
		return fmt.Errorf("error creating disciplina: %w", err)
	}

	return nil
}
