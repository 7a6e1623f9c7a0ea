package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	PasswordCost = bcrypt.MinCost
}

func TestHashPassword(t *testing.T) {
	password := "testpassword"
	hashedPassword, err := HashPassword(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hashedPassword)
	assert.NotEqual(t, password, hashedPassword)
}

func TestCheckPasswordHash(t *testing.T) {
	password := "testpassword"
	hashedPassword, _ := HashPassword(password)

	assert.True(t, CheckPasswordHash(password, hashedPassword))
	assert.False(t, CheckPasswordHash("wrongpassword", hashedPassword))
}

func TestIsEmail(t *testing.T) {
	assert.True(t, IsEmail("test@example.com"))
	assert.True(t, IsEmail("another.test@sub.domain.co.uk"))

	assert.False(t, IsEmail("invalid-email"))
	assert.False(t, IsEmail("@example.com"))
	assert.False(t, IsEmail("Jane <jane@example.com>"))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "clean-water-for-tamale", Slugify("  Clean Water for Tamale! "))
	assert.Equal(t, "school-books-2025", Slugify("School -- Books (2025)"))
	assert.Equal(t, "", Slugify("!!!"))
}

func TestNewReference(t *testing.T) {
	a := NewReference("CH")
	b := NewReference("CH")
	assert.True(t, strings.HasPrefix(a, "CH-"))
	assert.Len(t, a, len("CH-20250101-")+12)
	assert.NotEqual(t, a, b)
}
