package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/sebasMaldonado10/API-viandas/internal/auth"
	"github.com/sebasMaldonado10/API-viandas/internal/config"
	"github.com/sebasMaldonado10/API-viandas/internal/datamodels/user"
)

// UserService 用户注册/登录
type UserService struct {
	repo user.Repository
	jwt  *config.JWTConfig
}

// NewUserService 创建用户服务
func NewUserService(repo user.Repository, jwt *config.JWTConfig) *UserService {
	return &UserService{repo: repo, jwt: jwt}
}

func newSalt() string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}

func hashPassword(raw, salt string) string {
	h := sha256.Sum256([]byte(raw + salt))
	return hex.EncodeToString(h[:])
}

// Register 注册用户。用户名统一小写，角色默认 client。
func (s *UserService) Register(ctx context.Context, username, password, role, phone string) (*user.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" || password == "" {
		return nil, ErrInvalid
	}
	if role == "" {
		role = user.RoleClient
	}
	if !user.ValidRole(role) {
		return nil, ErrInvalid
	}

	if _, err := s.repo.GetByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	u := &user.User{
		Username: username,
		Salt:     newSalt(),
		Role:     role,
		Phone:    phone,
	}
	u.Password = hashPassword(password, u.Salt)
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login 校验凭证并签发携带角色的 JWT
func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrBadCredentials
		}
		return "", err
	}
	if hashPassword(password, u.Salt) != u.Password {
		return "", ErrBadCredentials
	}
	return auth.GenerateToken(s.jwt, u.ID, u.Username, u.Role)
}

// GetByID 查询用户（/me 使用）
func (s *UserService) GetByID(ctx context.Context, id int64) (*user.User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}
