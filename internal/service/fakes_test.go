package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/leon37/argyle/internal/model"
	"github.com/leon37/argyle/internal/repository"
)

// 内存版仓储，只给测试用

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]model.User // key: id
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]model.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		out := u
		return &out, nil
	}
	return nil, repository.ErrNotFound
}

type fakeSongRepo struct {
	mu     sync.Mutex
	nextID uint
	clock  time.Time
	songs  map[uint]model.Song
}

func newFakeSongRepo() *fakeSongRepo {
	return &fakeSongRepo{
		nextID: 1,
		clock:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		songs:  make(map[uint]model.Song),
	}
}

func (r *fakeSongRepo) Create(_ context.Context, song *model.Song) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	song.ID = r.nextID
	r.nextID++
	// 单调递增的创建时间，让排序断言可控
	r.clock = r.clock.Add(time.Minute)
	song.CreatedAt = r.clock
	r.songs[song.ID] = *song
	return nil
}

func (r *fakeSongRepo) ListByOwner(_ context.Context, userID string) ([]model.Song, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Song
	for _, s := range r.songs {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *fakeSongRepo) GetByID(_ context.Context, id uint) (*model.Song, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.songs[id]; ok {
		out := s
		return &out, nil
	}
	return nil, repository.ErrNotFound
}

func (r *fakeSongRepo) Update(_ context.Context, song *model.Song) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.songs[song.ID] = *song
	return nil
}

func (r *fakeSongRepo) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.songs, id)
	return nil
}
