package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateResetToken(t *testing.T) {
	a, err := GenerateResetToken()
	assert.NoError(t, err)
	assert.Len(t, a, 64)

	b, err := GenerateResetToken()
	assert.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestSpecialties(t *testing.T) {
	assert.Equal(t, "Networks,Printers", JoinSpecialties([]string{" Networks ", "", "Printers"}))
	assert.Equal(t, []string{"Networks", "Printers"}, SplitSpecialties("Networks, Printers,"))
	assert.Nil(t, SplitSpecialties("  "))
	assert.Equal(t, "", JoinSpecialties(nil))
}
