package authsdk

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
	ErrNoToken      = errors.New("no token provided")
)

// Issuer 令牌签发方
const Issuer = "newsbangla24"

// Claims JWT 自定义声明
// sid 指向服务端会话，注销后令牌即失效
type Claims struct {
	UserID    uint   `json:"user_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// UserContext 用户上下文信息
type UserContext struct {
	UserID    uint
	Name      string
	Email     string
	Role      string
	SessionID string
}

// IsZero 未登录用户
func (u *UserContext) IsZero() bool {
	return u == nil || u.UserID == 0
}

// GenerateToken 签发 HS256 访问令牌，过期时间与会话保持一致
func GenerateToken(secret string, user UserContext, issuedAt, expiresAt time.Time) (string, error) {
	if secret == "" {
		return "", errors.New("jwt secret is empty")
	}

	claims := &Claims{
		UserID:    user.UserID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		SessionID: user.SessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Subject:   strconv.FormatUint(uint64(user.UserID), 10),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken 解析并验证 JWT token
func ParseToken(tokenString, secret string) (*UserContext, error) {
	return ParseTokenAt(tokenString, secret, time.Now())
}

// ParseTokenAt 以指定时间校验有效期（测试中配合假时钟使用）
func ParseTokenAt(tokenString, secret string, now time.Time) (*UserContext, error) {
	if tokenString == "" {
		return nil, ErrNoToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// 验证签名算法
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	}, jwt.WithIssuer(Issuer), jwt.WithTimeFunc(func() time.Time { return now }))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return &UserContext{
			UserID:    claims.UserID,
			Name:      claims.Name,
			Email:     claims.Email,
			Role:      claims.Role,
			SessionID: claims.SessionID,
		}, nil
	}

	return nil, ErrInvalidToken
}
