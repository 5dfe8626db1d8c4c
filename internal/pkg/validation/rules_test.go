package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("jane.doe@example.com"))
	assert.True(t, ValidEmail("a+b@sub.domain.org"))
	assert.False(t, ValidEmail("not-an-email"))
	assert.False(t, ValidEmail("missing@tld"))
	assert.False(t, ValidEmail(""))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "jane@example.com", NormalizeEmail("Jane@Example.COM"))
	assert.Equal(t, "jane@example.com", NormalizeEmail("  jane@example.com "))
	assert.Equal(t, "jane@example.com", NormalizeEmail("jane@example.com"))
	assert.Equal(t, "", NormalizeEmail("   "))
}

func TestValidPassword(t *testing.T) {
	assert.True(t, ValidPassword("12345678"))
	assert.False(t, ValidPassword("1234567"))
	assert.False(t, ValidPassword(""))
}

func TestValidName(t *testing.T) {
	assert.True(t, ValidName("Jo"))
	assert.False(t, ValidName("J"))
	assert.False(t, ValidName(""))
	assert.False(t, ValidName(strings.Repeat("a", 101)))
}

func TestValidGraduationYear(t *testing.T) {
	assert.True(t, ValidGraduationYear(2024))
	assert.True(t, ValidGraduationYear(1950))
	assert.True(t, ValidGraduationYear(2100))
	assert.False(t, ValidGraduationYear(1949))
	assert.False(t, ValidGraduationYear(2101))
}
