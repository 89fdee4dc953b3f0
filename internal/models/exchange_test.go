package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestActiveRequest(t *testing.T) {
	first := &ExchangeRequest{ID: uuid.New(), Status: ExchangeRejected}
	second := &ExchangeRequest{ID: uuid.New(), Status: ExchangePending}
	third := &ExchangeRequest{ID: uuid.New(), Status: ExchangePending}

	// First pending wins
	assert.Equal(t, second, ActiveRequest([]*ExchangeRequest{first, second, third}))

	// No pending: fall back to creation order
	assert.Equal(t, first, ActiveRequest([]*ExchangeRequest{first, {ID: uuid.New(), Status: ExchangeAccepted}}))

	assert.Nil(t, ActiveRequest(nil))
}

func TestExchangeStatusResolved(t *testing.T) {
	assert.False(t, ExchangePending.Resolved())
	assert.True(t, ExchangeAccepted.Resolved())
	assert.True(t, ExchangeRejected.Resolved())
}

func TestBookConditionValid(t *testing.T) {
	assert.True(t, ConditionNew.Valid())
	assert.True(t, ConditionGood.Valid())
	assert.True(t, ConditionWorn.Valid())
	assert.False(t, BookCondition("Mint").Valid())
	assert.False(t, BookCondition("").Valid())
}
