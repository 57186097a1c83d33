package jwtservice_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/serene/internal/error_values"
	"github.com/limbo/serene/pkg/entity"
	jwtservice "github.com/limbo/serene/pkg/jwt_service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := jwtservice.New("secret")
	name := "test_name"
	user := &entity.User{ID: uuid.New(), Name: &name}

	token, err := svc.GenerateToken(user)
	require.NoError(t, err)
	claims, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, name, claims.Username)
	assert.False(t, claims.Anonymous)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestAnonymousToken(t *testing.T) {
	svc := jwtservice.New("secret")
	token, err := svc.GenerateToken(&entity.User{ID: uuid.New(), Anonymous: true})
	require.NoError(t, err)
	claims, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.True(t, claims.Anonymous)
	assert.Empty(t, claims.Username)
}

func TestInvalidTokens(t *testing.T) {
	svc := jwtservice.New("secret")
	other, err := jwtservice.New("other").GenerateToken(&entity.User{ID: uuid.New()})
	require.NoError(t, err)

	_, err = svc.ParseToken(other)
	assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)

	_, err = svc.ParseToken("not.a.token")
	assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)

	expired, err := jwtservice.New("secret").WithTTL(time.Nanosecond).GenerateToken(&entity.User{ID: uuid.New()})
	require.NoError(t, err)
	time.Sleep(time.Second)
	_, err = svc.ParseToken(expired)
	assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
}
