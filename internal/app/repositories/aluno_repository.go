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

// AlunoRepository handles database operations for alunos
type AlunoRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewAlunoRepository creates a new aluno repository
func NewAlunoRepository(db DBTX) *AlunoRepository {
	return &AlunoRepository{
		db: db,
		sb: statementBuilder(),
	}
}

// selectWithDisciplina selects alunos joined with the name of their disciplina
func (r *AlunoRepository) selectWithDisciplina() squirrel.SelectBuilder {
	return r.sb.Select("a.id", "a.username", "a.disciplina_id", "d.name").
		From("alunos a").
		Join("disciplinas d ON d.id = a.disciplina_id")
}

func (r *AlunoRepository) findByUsernameQuery(username string) (string, []interface{}, error) {
	return r.sb.Select("id", "username", "disciplina_id").
		From("alunos").
		Where(squirrel.Eq{"username": username}).
		Limit(1).
		ToSql()
}

// FindByUsername returns the aluno whose username equals username exactly,
// or nil when there is none.
func (r *AlunoRepository) FindByUsername(ctx context.Context, username string) (*models.Aluno, error) {
	sql, args, err := r.findByUsernameQuery(username)
	if err != nil {
		return nil, fmt.Errorf("failed to build find aluno query: %w", err)
	}

	a := &models.Aluno{}
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&a.ID, &a.Username, &a.DisciplinaID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		logger.Error().Err(err).Str("username", username).Msg("Error scanning aluno row")
		return nil, fmt.Errorf("error retrieving aluno: %w", err)
	}

	return a, nil
}

func (r *AlunoRepository) insertIfAbsentQuery(a *models.Aluno) (string, []interface{}, error) {
	return r.sb.Insert("alunos").
		Columns("username", "disciplina_id").
		Values(a.Username, a.DisciplinaID).
		Suffix("ON CONFLICT ON CONSTRAINT " + dberrors.AlunosUsernameKey + " DO NOTHING RETURNING id").
		ToSql()
}

// InsertIfAbsent inserts a in a single statement that does nothing when the
// username is taken. created is false when another row already holds the
// username; a.ID is only set when created is true.
func (r *AlunoRepository) InsertIfAbsent(ctx context.Context, a *models.Aluno) (bool, error) {
	sql, args, err := r.insertIfAbsentQuery(a)
	if err != nil {
		return false, fmt.Errorf("failed to build insert aluno query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&a.ID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		if dberrors.IsForeignKeyViolation(err, dberrors.AlunosDisciplinaIDFkey) {
			return false, apperrors.ErrInvalidDisciplina
		}
		logger.Error().Err(err).Str("username", a.Username).Msg("Error inserting aluno")
		return false, fmt.Errorf("error inserting aluno: %w", err)
	}

	return true, nil
}

func (r *AlunoRepository) scanAlunos(ctx context.Context, sql string, args []interface{}) ([]*models.Aluno, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing alunos query")
		return nil, fmt.Errorf("error querying alunos: %w", err)
	}
	defer rows.Close()

	alunos := []*models.Aluno{}
	for rows.Next() {
		a := &models.Aluno{}
		if err := rows.Scan(&a.ID, &a.Username, &a.DisciplinaID, &a.DisciplinaName); err != nil {
			return nil, fmt.Errorf("error scanning aluno row: %w", err)
		}
		alunos = append(alunos, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating aluno rows: %w", err)
	}

	return alunos, nil
}

func (r *AlunoRepository) listAllQuery() (string, []interface{}, error) {
	return r.selectWithDisciplina().OrderBy("a.id ASC").ToSql()
}

// ListAll retrieves every aluno in insertion order
func (r *AlunoRepository) ListAll(ctx context.Context) ([]*models.Aluno, error) {
	sql, args, err := r.listAllQuery()
	if err != nil {
		return nil, fmt.Errorf("failed to build list alunos query: %w", err)
	}
	return r.scanAlunos(ctx, sql, args)
}

func (r *AlunoRepository) listByDisciplinaIDQuery(disciplinaID int64) (string, []interface{}, error) {
	return r.selectWithDisciplina().
		Where(squirrel.Eq{"a.disciplina_id": disciplinaID}).
		OrderBy("a.id ASC").
		ToSql()
}

// ListByDisciplinaID retrieves the alunos registered against one disciplina
func (r *AlunoRepository) ListByDisciplinaID(ctx context.Context, disciplinaID int64) ([]*models.Aluno, error) {
	sql, args, err := r.listByDisciplinaIDQuery(disciplinaID)
	if err != nil {
		return nil, fmt.Errorf("failed to build list alunos by disciplina query: %w", err)
	}
	return r.scanAlunos(ctx, sql, args)
}

func (r *AlunoRepository) listPageQuery(offset, limit uint64) (string, []interface{}, error) {
	return r.selectWithDisciplina().
		OrderBy("a.id ASC").
		Offset(offset).
		Limit(limit).
		ToSql()
}

// ListPage retrieves one page of alunos
func (r *AlunoRepository) ListPage(ctx context.Context, offset, limit uint64) ([]*models.Aluno, error) {
	sql, args, err := r.listPageQuery(offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to build list alunos page query: %w", err)
	}
	return r.scanAlunos(ctx, sql, args)
}

// Count returns the number of alunos
func (r *AlunoRepository) Count(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").From("alunos").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count alunos query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting alunos: %w", err)
	}
	return total, nil
}
