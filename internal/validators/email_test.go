package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ana@x.com", NormalizeEmail("  Ana@X.com "))
}

func TestIsEmail(t *testing.T) {
	assert.True(t, IsEmail("ana@x.com"))
	assert.False(t, IsEmail("Ana <ana@x.com>"))
	assert.False(t, IsEmail("ana@localhost"))
	assert.False(t, IsEmail("ana"))
	assert.False(t, IsEmail(""))
}
