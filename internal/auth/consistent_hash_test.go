package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRingStableMapping(t *testing.T) {
	ring := NewConsistentHashRing([]string{"node-a", "node-b", "node-c"}, 50)

	// 同一个 key 多次查询落到同一节点
	first := ring.GetNode("some-token")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ring.GetNode("some-token"))
	}
	assert.Contains(t, []string{"node-a", "node-b", "node-c"}, first)
}

func TestRingDefaultNode(t *testing.T) {
	ring := NewConsistentHashRing(nil, 0)
	assert.Equal(t, "auth-node-default", ring.GetNode("anything"))
}

func TestRingAddIdempotent(t *testing.T) {
	ring := NewConsistentHashRing([]string{"node-a"}, 10)
	before := len(ring.keys)
	ring.Add("node-a")
	assert.Equal(t, before, len(ring.keys))

	ring.Add("node-b")
	assert.Equal(t, before*2, len(ring.keys))
}

func TestRingSpreadsKeys(t *testing.T) {
	ring := NewConsistentHashRing([]string{"node-a", "node-b", "node-c"}, 100)
	seen := make(map[string]int)
	keys := []string{"t1", "t2", "t3", "t4", "t5", "t6", "t7", "t8", "t9", "t10",
		"u1", "u2", "u3", "u4", "u5", "u6", "u7", "u8", "u9", "u10"}
	for _, k := range keys {
		seen[ring.GetNode(k)]++
	}
	// 足够多的 key 下不应全部压在一个节点上
	assert.Greater(t, len(seen), 1)
}
