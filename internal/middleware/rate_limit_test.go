package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenBucketExhaustion(t *testing.T) {
	tb := NewTokenBucket(3, 1)

	assert.True(t, tb.Allow())
	assert.True(t, tb.Allow())
	assert.True(t, tb.Allow())
	// 桶空后拒绝
	assert.False(t, tb.Allow())
}

func TestTokenBucketRefill(t *testing.T) {
	tb := NewTokenBucket(1, 100)
	assert.True(t, tb.Allow())
	assert.False(t, tb.Allow())

	// 补充后恢复可用，且不超过容量
	time.Sleep(1100 * time.Millisecond)
	assert.True(t, tb.Allow())
	assert.False(t, tb.Allow())
}
