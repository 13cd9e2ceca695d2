package service

import (
	"context"
	"errors"

	"github.com/leon37/argyle/internal/auth"
	"github.com/leon37/argyle/internal/model"
	"github.com/leon37/argyle/internal/repository"
)

// SongInput 创建作品的参数 (DTO)，归属用户永远取当前身份，不收前端传的
type SongInput struct {
	Title    string
	Sequence string
	KeyInfo  string
	BPM      int
	Notes    string
	IsPublic bool
}

// SongUpdate 更新作品的参数，nil 表示该字段不动
type SongUpdate struct {
	Title    *string
	Sequence *string
	KeyInfo  *string
	BPM      *int
	Notes    *string
	IsPublic *bool
}

// SongView 返回给前端的完整结果 (VO)，比实体多一个作者名
type SongView struct {
	model.Song
	AuthorName string `json:"author_name"`
}

// SongService 作品的归属与可见性策略都收在这一层
type SongService struct {
	songRepo repository.SongRepo
	userRepo repository.UserRepo
}

// NewSongService 构造函数 (依赖注入)
func NewSongService(songRepo repository.SongRepo, userRepo repository.UserRepo) *SongService {
	return &SongService{songRepo: songRepo, userRepo: userRepo}
}

// List 列出当前用户自己的作品，新的在前
// 匿名请求返回空列表而不是报错，前端不用区分"没登录"和"没数据"
func (s *SongService) List(ctx context.Context, identity auth.Identity) ([]SongView, error) {
	if identity.IsAnonymous() {
		return []SongView{}, nil
	}

	songs, err := s.songRepo.ListByOwner(ctx, identity.UserID())
	if err != nil {
		return nil, err
	}

	views := make([]SongView, 0, len(songs))
	for _, song := range songs {
		views = append(views, SongView{Song: song, AuthorName: identity.User().Name})
	}
	return views, nil
}

// Create 新建作品，归属固定为当前身份
func (s *SongService) Create(ctx context.Context, identity auth.Identity, input SongInput) (*SongView, error) {
	if identity.IsAnonymous() {
		return nil, ErrUnauthorized
	}

	song := &model.Song{
		UserID:   identity.UserID(),
		Title:    input.Title,
		Sequence: input.Sequence,
		KeyInfo:  input.KeyInfo,
		BPM:      input.BPM,
		Notes:    input.Notes,
		IsPublic: input.IsPublic,
	}
	if err := s.songRepo.Create(ctx, song); err != nil {
		return nil, err
	}

	return &SongView{Song: *song, AuthorName: identity.User().Name}, nil
}

// Get 读取单个作品
// 作品不存在、或者存在但既不是自己的也不公开，统一返回 ErrSongNotFound
func (s *SongService) Get(ctx context.Context, identity auth.Identity, id uint) (*SongView, error) {
	song, err := s.songRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSongNotFound
		}
		return nil, err
	}

	if song.UserID != identity.UserID() && !song.IsPublic {
		return nil, ErrSongNotFound
	}

	return &SongView{Song: *song, AuthorName: s.authorName(ctx, song.UserID)}, nil
}

// Update 更新作品 (带归属权校验)
// 非作者（哪怕作品是公开的）拿到的错误和"不存在"完全一样
func (s *SongService) Update(ctx context.Context, identity auth.Identity, id uint, input SongUpdate) (*SongView, error) {
	if identity.IsAnonymous() {
		return nil, ErrUnauthorized
	}

	existing, err := s.songRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSongNotFound
		}
		return nil, err
	}

	if existing.UserID != identity.UserID() {
		return nil, ErrSongNotFound
	}

	if input.Title != nil {
		existing.Title = *input.Title
	}
	if input.Sequence != nil {
		existing.Sequence = *input.Sequence
	}
	if input.KeyInfo != nil {
		existing.KeyInfo = *input.KeyInfo
	}
	if input.BPM != nil {
		existing.BPM = *input.BPM
	}
	if input.Notes != nil {
		existing.Notes = *input.Notes
	}
	if input.IsPublic != nil {
		existing.IsPublic = *input.IsPublic
	}

	if err := s.songRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	return &SongView{Song: *existing, AuthorName: identity.User().Name}, nil
}

// Delete 删除作品 (带归属权校验)，错误口径同 Update
func (s *SongService) Delete(ctx context.Context, identity auth.Identity, id uint) error {
	if identity.IsAnonymous() {
		return ErrUnauthorized
	}

	existing, err := s.songRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrSongNotFound
		}
		return err
	}

	if existing.UserID != identity.UserID() {
		return ErrSongNotFound
	}

	return s.songRepo.Delete(ctx, id)
}

// authorName 查作者展示名，查不到就留空，不影响主流程
func (s *SongService) authorName(ctx context.Context, userID string) string {
	owner, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return ""
	}
	return owner.Name
}
