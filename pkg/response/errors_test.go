package response

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBusinessError_HTTPStatus(t *testing.T) {
	tests := []struct {
		err  *BusinessError
		want int
	}{
		{NewInvalid("bad"), http.StatusBadRequest},
		{NewBusinessError(WithErrorCode(ParseError)), http.StatusBadRequest},
		{NewBusinessError(WithErrorCode(Unauthorized)), http.StatusUnauthorized},
		{NewForbidden("no"), http.StatusForbidden},
		{NewNotFound("missing"), http.StatusNotFound},
		{NewConflict("dup"), http.StatusConflict},
		{NewBusinessError(WithErrorCode(TooManyRequests)), http.StatusTooManyRequests},
		{NewInternal("boom", nil), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.err.HTTPStatus(), "code %d", tt.err.Code)
	}
}

func TestBusinessError_Wrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewInternal("failed to load article", cause)

	assert.Equal(t, "failed to load article: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "not found", NewNotFound("not found").Error())
}

func TestResponses(t *testing.T) {
	ok := SuccessResponse(map[string]int{"n": 1})
	assert.Equal(t, "success", ok.Message)
	assert.Equal(t, Success, ok.Code)

	fail := ErrorResponse(NotFound, "article not found")
	assert.Equal(t, NotFound, fail.Code)
	assert.Nil(t, fail.Data)

	custom := CustomResponse(WithMessage("created"), WithCode(Success), WithData(7))
	assert.Equal(t, Response{Message: "created", Code: Success, Data: 7}, custom)
}
