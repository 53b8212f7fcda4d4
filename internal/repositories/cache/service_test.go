package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateKey(t *testing.T) {
	s := NewCacheService(nil, time.Hour)

	// Entity type leads the key so "fee_rule:*" invalidation catches every
	// cached rule regardless of kind or destination.
	key := s.GenerateKey("fee_rule", "deposit", "FR:EUR:BANK")
	assert.Equal(t, "fee_rule:deposit:FR:EUR:BANK", key)

	key = s.GenerateKey("user", "id", 42)
	assert.Equal(t, "user:id:42", key)
}
