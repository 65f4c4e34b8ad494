package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatorEmail(t *testing.T) {
	t.Parallel()

	v := newValidator()
	v.checkEmail("a@x.com")
	assert.False(t, v.hasErrors())

	v = newValidator()
	v.checkEmail("not-an-email")
	assert.Contains(t, v.errors, "email")
}

func TestValidatorPassword(t *testing.T) {
	t.Parallel()

	v := newValidator()
	v.checkPassword("Secret123")
	assert.False(t, v.hasErrors())

	v = newValidator()
	v.checkPassword("short")
	assert.Contains(t, v.errors, "password")
}

func TestValidatorPriority(t *testing.T) {
	t.Parallel()

	for _, p := range []priority{priorityLow, priorityMedium, priorityHigh} {
		v := newValidator()
		v.checkPriority(p)
		assert.False(t, v.hasErrors(), p)
	}

	v := newValidator()
	v.checkPriority("URGENT")
	assert.Contains(t, v.errors, "priority")
}

func TestValidatorFirstMessagePerKeyWins(t *testing.T) {
	t.Parallel()

	v := newValidator()
	v.checkCond(false, "name", "first")
	v.checkCond(false, "name", "second")
	assert.Equal(t, "first", v.errors["name"])
}
