package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextUserID(t *testing.T) {
	assert.Equal(t, "u1", NextUserID(0))
	assert.Equal(t, "u3", NextUserID(2))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ana@example.com", NormalizeEmail("  Ana@Example.COM "))
}

func TestPublicOmitsHash(t *testing.T) {
	u := &User{
		ID:           "u1",
		Email:        "ana@example.com",
		Name:         "Ana",
		PasswordHash: "$2a$10$secret",
		AgeVerified:  true,
		CreatedAt:    time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	payload, err := json.Marshal(u.Public())
	require.NoError(t, err)
	assert.NotContains(t, string(payload), "passwordHash")
	assert.NotContains(t, string(payload), "secret")
	assert.Contains(t, string(payload), `"ageVerified":true`)
}
