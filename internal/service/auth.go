package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/leon37/argyle/internal/model"
	"github.com/leon37/argyle/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	userRepo repository.UserRepo
	// dummyHash 预生成的假哈希。邮箱查无此人时也拿它比对一次，
	// 让成功和失败路径耗时接近，防止用响应时间探测账号是否存在
	dummyHash []byte
}

func NewAuthService(userRepo repository.UserRepo) *AuthService {
	dummy, err := bcrypt.GenerateFromPassword([]byte("argyle-timing-equalizer"), bcrypt.DefaultCost)
	if err != nil {
		// bcrypt 对固定明文生成失败只可能是 cost 配置坏了，属于编程错误
		panic(err)
	}
	return &AuthService{userRepo: userRepo, dummyHash: dummy}
}

// Signup 注册逻辑
// 邮箱已存在且设置过密码 -> 重复注册报错；
// 邮箱已存在但没有密码（受邀占位账号）-> 本次注册补全密码和姓名，完成该账号
func (s *AuthService) Signup(ctx context.Context, email, password, name string) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	existing, err := s.userRepo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		if existing.HasUsablePassword() {
			return nil, ErrDuplicateEmail
		}
		// 受邀账号：补全而不是报错
		existing.Password = string(hash)
		if name != "" {
			existing.Name = name
		}
		if err := s.userRepo.Update(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil

	case errors.Is(err, repository.ErrNotFound):
		id, err := uuid.NewV7()
		if err != nil {
			return nil, err
		}
		user := &model.User{
			ID:       id.String(),
			Email:    email,
			Password: string(hash),
			Name:     name,
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, err
		}
		return user, nil

	default:
		return nil, err
	}
}

// Login 登录逻辑，校验通过返回用户
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		// 查无此人也要做一次等价的哈希比对，见 dummyHash 的说明
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
		return nil, ErrInvalidCredentials
	}

	// 受邀账号还没设置密码，不允许登录
	if !user.HasUsablePassword() {
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GetUser 按 ID 取用户，给访问网关解析身份用
func (s *AuthService) GetUser(ctx context.Context, id string) (*model.User, error) {
	return s.userRepo.GetByID(ctx, id)
}
