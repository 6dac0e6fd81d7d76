package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReminderLockName(t *testing.T) {
	l := &ReminderLock{}
	assert.Equal(t, "lovenote:reminder:lock:2026-10-15T21:00", l.name("2026-10-15T21:00"))
}

func TestHostOwner(t *testing.T) {
	assert.NotEmpty(t, hostOwner())
}
