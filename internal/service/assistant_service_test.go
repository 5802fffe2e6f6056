package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSessionLockReusedAcrossTurns(t *testing.T) {
	as := &assistantService{}
	id := uuid.New()

	first := as.sessionLock(id)
	second := as.sessionLock(id)

	assert.Same(t, first, second)
	assert.NotSame(t, first, as.sessionLock(uuid.New()))
}

func TestSessionLockEvictedOnDelete(t *testing.T) {
	as := &assistantService{}
	id := uuid.New()

	before := as.sessionLock(id)
	as.evictSessionLock(id)

	assert.NotSame(t, before, as.sessionLock(id))
}
