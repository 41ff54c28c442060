package authsdk

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

var issued = time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)

func sampleUser() UserContext {
	return UserContext{UserID: 3, Name: "Tanvir", Email: "reporter@newsbangla24.com", Role: "reporter", SessionID: "sess-1"}
}

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken(testSecret, sampleUser(), issued, issued.Add(time.Hour))
	require.NoError(t, err)

	got, err := ParseTokenAt(token, testSecret, issued.Add(30*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, sampleUser(), *got)
}

func TestParseToken_Errors(t *testing.T) {
	valid, err := GenerateToken(testSecret, sampleUser(), issued, issued.Add(time.Hour))
	require.NoError(t, err)

	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID:           3,
		RegisteredClaims: jwt.RegisteredClaims{Issuer: "someone-else", ExpiresAt: jwt.NewNumericDate(issued.Add(time.Hour))},
	})
	foreignToken, err := foreign.SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		secret string
		at     time.Time
		want   error
	}{
		{"空令牌", "", testSecret, issued, ErrNoToken},
		{"令牌过期", valid, testSecret, issued.Add(2 * time.Hour), ErrExpiredToken},
		{"密钥错误", valid, "other-secret", issued, ErrInvalidToken},
		{"格式错误", "not-a-jwt", testSecret, issued, ErrInvalidToken},
		{"签发方不符", foreignToken, testSecret, issued, ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTokenAt(tt.token, tt.secret, tt.at)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestGenerateToken_EmptySecret(t *testing.T) {
	_, err := GenerateToken("", sampleUser(), issued, issued.Add(time.Hour))
	assert.Error(t, err)
}

func TestExtractToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		cookie  string
		want    string
		wantErr error
	}{
		{"Bearer 头", "Bearer abc.def", "", "abc.def", nil},
		{"头优先于 cookie", "Bearer from-header", "from-cookie", "from-header", nil},
		{"只有 cookie", "", "from-cookie", "from-cookie", nil},
		{"非 Bearer 头", "Basic dXNlcg==", "", "", ErrInvalidToken},
		{"没有令牌", "", "", "", ErrNoToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: CookieAuthToken, Value: tt.cookie})
			}

			got, err := ExtractToken(req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUserContextRoundTrip(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.True(t, UserFrom(req.Context()).IsZero())
	assert.Empty(t, ExtractSessionID(req))

	u := sampleUser()
	ctx := WithUser(req.Context(), &u)
	assert.Equal(t, uint(3), UserFrom(ctx).UserID)

	req.AddCookie(&http.Cookie{Name: CookieUserSession, Value: "sess-1"})
	assert.Equal(t, "sess-1", ExtractSessionID(req))
}
