package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/hrconsole/hr-console-backend/internal/domain/user"
)

type userRepository struct {
	mu    sync.RWMutex
	users map[string]user.User
}

func NewUserRepository() user.UserRepository {
	return &userRepository{users: make(map[string]user.User)}
}

func cloneUser(u user.User) user.User {
	if u.Profile != nil {
		p := *u.Profile
		u.Profile = &p
	}
	return u
}

func (r *userRepository) emailTakenLocked(email, exceptID string) bool {
	for id, u := range r.users {
		if id != exceptID && strings.EqualFold(u.Email, email) {
			return true
		}
	}
	return false
}

func (r *userRepository) Create(ctx context.Context, newUser user.User) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.emailTakenLocked(newUser.Email, "") {
		return user.User{}, user.ErrUserEmailExists
	}
	if newUser.ID == "" {
		newUser.ID = newID()
	}
	ts := now()
	newUser.CreatedAt, newUser.UpdatedAt = ts, ts
	r.users[newUser.ID] = cloneUser(newUser)
	return cloneUser(newUser), nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return cloneUser(u), nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (r *userRepository) ListByIDs(ctx context.Context, ids []string) ([]user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool, len(ids))
	var result []user.User
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if u, ok := r.users[id]; ok {
			result = append(result, cloneUser(u))
		}
	}
	sortUsers(result)
	return result, nil
}

func (r *userRepository) ListByRoles(ctx context.Context, roles ...user.Role) ([]user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []user.User
	for _, u := range r.users {
		for _, role := range roles {
			if u.Role == role {
				result = append(result, cloneUser(u))
				break
			}
		}
	}
	sortUsers(result)
	return result, nil
}

func (r *userRepository) Update(ctx context.Context, u user.User) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.users[u.ID]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	if r.emailTakenLocked(u.Email, u.ID) {
		return user.User{}, user.ErrUserEmailExists
	}
	u.CreatedAt = existing.CreatedAt
	u.UpdatedAt = now()
	r.users[u.ID] = cloneUser(u)
	return cloneUser(u), nil
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return user.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *userRepository) DeleteByRole(ctx context.Context, role user.Role) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var deleted int64
	for id, u := range r.users {
		if u.Role == role {
			delete(r.users, id)
			deleted++
		}
	}
	return deleted, nil
}

func sortUsers(users []user.User) {
	sortByCreated(users,
		func(u user.User) time.Time { return u.CreatedAt },
		func(u user.User) string { return u.ID },
	)
}
