package services

import (
	"context"
	"sort"
	"sync"

	"github.com/yigit/cadastro/internal/app/models"
	"github.com/yigit/cadastro/internal/pkg/apperrors"
)

// memoryStore is an in-memory stand-in for both repositories
type memoryStore struct {
	mu          sync.Mutex
	disciplinas []*models.Disciplina
	alunos      []*models.Aluno
	nextAlunoID int64
	// hideOnFind makes FindByUsername miss so InsertIfAbsent has to resolve the conflict
	hideOnFind bool
}

func newMemoryStore(disciplinas ...*models.Disciplina) *memoryStore {
	return &memoryStore{disciplinas: disciplinas, nextAlunoID: 1}
}

func (m *memoryStore) ListOrderedByName(ctx context.Context) ([]*models.Disciplina, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := append([]*models.Disciplina(nil), m.disciplinas...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memoryStore) GetByID(ctx context.Context, id int64) (*models.Disciplina, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.disciplina(id)
}

func (m *memoryStore) disciplina(id int64) (*models.Disciplina, error) {
	for _, d := range m.disciplinas {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, apperrors.ErrDisciplinaNotFound
}

func (m *memoryStore) FindByUsername(ctx context.Context, username string) (*models.Aluno, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.hideOnFind {
		return nil, nil
	}
	for _, a := range m.alunos {
		if a.Username == username {
			return a, nil
		}
	}
	return nil, nil
}

func (m *memoryStore) InsertIfAbsent(ctx context.Context, a *models.Aluno) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, err := m.disciplina(a.DisciplinaID)
	if err != nil {
		return false, apperrors.ErrInvalidDisciplina
	}
	for _, existing := range m.alunos {
		if existing.Username == a.Username {
			return false, nil
		}
	}
	a.ID = m.nextAlunoID
	m.nextAlunoID++
	stored := *a
	stored.DisciplinaName = d.Name
	m.alunos = append(m.alunos, &stored)
	return true, nil
}

func (m *memoryStore) ListAll(ctx context.Context) ([]*models.Aluno, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*models.Aluno(nil), m.alunos...), nil
}

func (m *memoryStore) ListByDisciplinaID(ctx context.Context, disciplinaID int64) ([]*models.Aluno, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []*models.Aluno{}
	for _, a := range m.alunos {
		if a.DisciplinaID == disciplinaID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memoryStore) ListPage(ctx context.Context, offset, limit uint64) ([]*models.Aluno, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if offset >= uint64(len(m.alunos)) {
		return []*models.Aluno{}, nil
	}
	end := offset + limit
	if end > uint64(len(m.alunos)) {
		end = uint64(len(m.alunos))
	}
	return append([]*models.Aluno(nil), m.alunos[offset:end]...), nil
}

func (m *memoryStore) Count(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.alunos)), nil
}
