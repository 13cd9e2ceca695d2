package repository

import (
	"context"

	"github.com/leon37/argyle/internal/model"
	"gorm.io/gorm"
)

// SongRepo 定义接口 (为了方便 Mock)
// 查询按归属拆成显式方法，不在业务层拼动态条件
type SongRepo interface {
	Create(ctx context.Context, song *model.Song) error
	// ListByOwner 返回某用户的全部作品，新的在前
	ListByOwner(ctx context.Context, userID string) ([]model.Song, error)
	// GetByID 没找到时返回 gorm.ErrRecordNotFound
	GetByID(ctx context.Context, id uint) (*model.Song, error)
	Update(ctx context.Context, song *model.Song) error
	Delete(ctx context.Context, id uint) error
}

// songRepo 实现
type songRepo struct {
	db *gorm.DB
}

// NewSongRepo 构造函数
func NewSongRepo(db *gorm.DB) SongRepo {
	return &songRepo{db: db}
}

// Create 插入一条记录
func (r *songRepo) Create(ctx context.Context, song *model.Song) error {
	// WithContext 确保请求超时能传递到数据库层
	return r.db.WithContext(ctx).Create(song).Error
}

func (r *songRepo) ListByOwner(ctx context.Context, userID string) ([]model.Song, error) {
	var songs []model.Song
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&songs).Error
	if err != nil {
		return nil, err
	}
	return songs, nil
}

func (r *songRepo) GetByID(ctx context.Context, id uint) (*model.Song, error) {
	var song model.Song
	err := r.db.WithContext(ctx).First(&song, id).Error
	if err != nil {
		return nil, err
	}
	return &song, nil
}

func (r *songRepo) Update(ctx context.Context, song *model.Song) error {
	return r.db.WithContext(ctx).Save(song).Error
}

func (r *songRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Song{}, id).Error
}
