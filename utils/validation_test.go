package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("ana@example.com"))
	assert.False(t, ValidateEmail("ana@example"))
	assert.False(t, ValidateEmail("not an email"))
}

func TestValidatePhone(t *testing.T) {
	assert.True(t, ValidatePhone("0722123456"))
	assert.True(t, ValidatePhone("+40 722 123 456"))
	assert.False(t, ValidatePhone("12345"))
}

func TestValidateIBAN(t *testing.T) {
	assert.True(t, ValidateIBAN("RO49AAAA1B31007593840000"))
	assert.True(t, ValidateIBAN("ro49 aaaa 1b31 0075 9384 0000"))
	assert.False(t, ValidateIBAN("DE89370400440532013000"))
	assert.False(t, ValidateIBAN("RO49AAAA"))
}

func TestValidateClockTime(t *testing.T) {
	assert.True(t, ValidateClockTime("09:30"))
	assert.True(t, ValidateClockTime("23:59"))
	assert.False(t, ValidateClockTime("24:00"))
	assert.False(t, ValidateClockTime("9:30"))
	assert.False(t, ValidateClockTime("09:60"))
}

func TestValidatePassword(t *testing.T) {
	assert.Empty(t, ValidatePassword("Parola123"))
	assert.NotEmpty(t, ValidatePassword("short"))
	assert.NotEmpty(t, ValidatePassword("alllowercase1"))
	assert.NotEmpty(t, ValidatePassword("NODIGITSHERE"))
}
