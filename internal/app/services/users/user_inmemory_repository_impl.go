package users

import (
	"context"
	"strings"
	"sync"
)

type userInMemoryRepository struct {
	mu       sync.RWMutex
	accounts []UserAccount
}

func NewUserInMemoryRepository(seed []UserAccount) UserRepository {
	accounts := make([]UserAccount, len(seed))
	copy(accounts, seed)
	return &userInMemoryRepository{accounts: accounts}
}

func (r *userInMemoryRepository) FindByEmail(ctx context.Context, email string) (*UserAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.accounts {
		if strings.EqualFold(a.Email, email) {
			account := a
			return &account, nil
		}
	}
	return nil, nil
}

func (r *userInMemoryRepository) Insert(ctx context.Context, account *UserAccount) (*UserAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accounts = append(r.accounts, *account)
	inserted := *account
	return &inserted, nil
}
