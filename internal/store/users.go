package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"candidate-tracker/internal/domain"
	"candidate-tracker/internal/mapper"
)

var ErrEmailExists = errors.New("email already registered")

func (s *Store) AddUser(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireRoleLocked("manage users", domain.RoleAdmin); err != nil {
		return nil, err
	}

	for i := range s.users {
		if s.users[i].Email == input.Email {
			return nil, ErrEmailExists
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := domain.User{
		ID:           uuid.New(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         input.Role,
		Department:   input.Department,
		CreatedAt:    now(),
	}

	stored, err := s.gw.Users.Insert(ctx, mapper.UserToRow(u))
	if err != nil {
		return nil, err
	}
	created := mapper.UserFromRow(stored)
	s.users = append(s.users, created)
	return &created, nil
}

// UpdateUserRole is the only user mutation after creation.
func (s *Store) UpdateUserRole(ctx context.Context, id uuid.UUID, role domain.Role) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireRoleLocked("manage users", domain.RoleAdmin); err != nil {
		return nil, err
	}

	idx := -1
	for i := range s.users {
		if s.users[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, &domain.NotFoundError{Entity: "user", ID: id.String()}
	}

	updated := s.users[idx]
	updated.Role = role

	stored, err := s.gw.Users.Update(ctx, id, mapper.UserToRow(updated))
	if err != nil {
		return nil, err
	}
	s.users[idx] = mapper.UserFromRow(stored)
	out := s.users[idx]
	return &out, nil
}
