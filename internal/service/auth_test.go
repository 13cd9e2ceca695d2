package service

import (
	"context"
	"testing"

	"github.com/leon37/argyle/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSignupThenLogin(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(newFakeUserRepo())
	ctx := context.Background()

	created, err := svc.Signup(ctx, "a@x.com", "Secret123", "A")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "a@x.com", created.Email)
	assert.Equal(t, "A", created.Name)
	assert.NotEqual(t, "Secret123", created.Password, "密码必须存哈希")

	logged, err := svc.Login(ctx, "a@x.com", "Secret123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, logged.ID)
	assert.Equal(t, created.Email, logged.Email)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(newFakeUserRepo())
	ctx := context.Background()

	_, err := svc.Signup(ctx, "a@x.com", "Secret123", "A")
	require.NoError(t, err)

	_, err = svc.Signup(ctx, "a@x.com", "Another456", "B")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestSignup_CompletesInvitedAccount(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := NewAuthService(repo)
	ctx := context.Background()

	// 受邀占位账号：有邮箱没密码
	invited := &model.User{ID: "invited-1", Email: "guest@x.com", Name: "Placeholder"}
	require.NoError(t, repo.Create(ctx, invited))

	// 设置密码前不能登录
	_, err := svc.Login(ctx, "guest@x.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// 本人注册补全账号而不是报重复
	completed, err := svc.Signup(ctx, "guest@x.com", "Secret123", "Guest")
	require.NoError(t, err)
	assert.Equal(t, "invited-1", completed.ID, "应该补全原账号，而不是新建")
	assert.Equal(t, "Guest", completed.Name)
	require.NoError(t,
		bcrypt.CompareHashAndPassword([]byte(completed.Password), []byte("Secret123")))

	// 补全之后可以正常登录
	logged, err := svc.Login(ctx, "guest@x.com", "Secret123")
	require.NoError(t, err)
	assert.Equal(t, "invited-1", logged.ID)

	// 补全之后同邮箱再注册就是正经的重复
	_, err = svc.Signup(ctx, "guest@x.com", "Other456", "X")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(newFakeUserRepo())
	ctx := context.Background()

	_, err := svc.Signup(ctx, "a@x.com", "Secret123", "A")
	require.NoError(t, err)

	// 邮箱不存在和密码错误必须是同一个错误
	_, unknownErr := svc.Login(ctx, "nobody@x.com", "Secret123")
	_, badPassErr := svc.Login(ctx, "a@x.com", "WrongPass")

	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	assert.ErrorIs(t, badPassErr, ErrInvalidCredentials)
	assert.Equal(t, unknownErr, badPassErr)
}
