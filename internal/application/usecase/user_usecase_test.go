package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Taller-api/internal/application/dto"
	"github.com/jhoicas/Taller-api/internal/application/usecase"
	"github.com/jhoicas/Taller-api/internal/domain"
	"github.com/jhoicas/Taller-api/internal/domain/entity"
)

// fakeUserRepo guarda usuarios en memoria.
type fakeUserRepo struct {
	users  map[int64]*entity.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*entity.User), nextID: 1}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	u.ID = r.nextID
	r.nextID++
	cu := *u
	r.users[u.ID] = &cu
	return nil
}

func (r *fakeUserRepo) GetByID(id int64) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cu := *u
	return &cu, nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cu := *u
			return &cu, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cu := *u
			return &cu, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List() ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		cu := *u
		out = append(out, &cu)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	cu := *u
	r.users[u.ID] = &cu
	return nil
}

func seedUser(t *testing.T, repo *fakeUserRepo, username, email string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("original123"), bcrypt.MinCost)
	require.NoError(t, err)
	u := &entity.User{Username: username, Email: email, PasswordHash: string(hash), Name: username}
	require.NoError(t, repo.Create(u))
	return u
}

func strPtr(v string) *string { return &v }

func TestUserList_NoExponeHashes(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "ana", "ana@taller.local")
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.List()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "ana", out[0].Username)
}

func TestUserUpdate_SoloElPropioPerfil(t *testing.T) {
	repo := newFakeUserRepo()
	ana := seedUser(t, repo, "ana", "ana@taller.local")
	seedUser(t, repo, "beto", "beto@taller.local")
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Update(ana.ID, ana.ID+1, dto.UpdateUserRequest{Name: strPtr("Otro")})
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"un usuario no puede editar el perfil de otro")
}

func TestUserUpdate_CambiaNombreYUsername(t *testing.T) {
	repo := newFakeUserRepo()
	ana := seedUser(t, repo, "ana", "ana@taller.local")
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.Update(ana.ID, ana.ID, dto.UpdateUserRequest{
		Username: strPtr("ana.maria"),
		Name:     strPtr("Ana María"),
	})
	require.NoError(t, err)
	assert.Equal(t, "ana.maria", out.Username)
	assert.Equal(t, "Ana María", out.Name)
}

func TestUserUpdate_UsernameOcupado(t *testing.T) {
	repo := newFakeUserRepo()
	ana := seedUser(t, repo, "ana", "ana@taller.local")
	seedUser(t, repo, "beto", "beto@taller.local")
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Update(ana.ID, ana.ID, dto.UpdateUserRequest{Username: strPtr("beto")})
	assert.ErrorIs(t, err, domain.ErrUsernameAlreadyExists)
}

func TestUserUpdate_PasswordSeRehashea(t *testing.T) {
	repo := newFakeUserRepo()
	ana := seedUser(t, repo, "ana", "ana@taller.local")
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Update(ana.ID, ana.ID, dto.UpdateUserRequest{Password: strPtr("nueva-clave")})
	require.NoError(t, err)

	stored, _ := repo.GetByID(ana.ID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("nueva-clave")))
}

func TestUserUpdate_PasswordCorta(t *testing.T) {
	repo := newFakeUserRepo()
	ana := seedUser(t, repo, "ana", "ana@taller.local")
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Update(ana.ID, ana.ID, dto.UpdateUserRequest{Password: strPtr("abc")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
