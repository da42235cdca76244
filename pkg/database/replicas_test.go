package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/variantlab/abtest/ent"
)

func newTestClientWithReplicas(strategy string, fallback bool, replicas ...*replicaConnection) *ClientWithReplicas {
	return &ClientWithReplicas{
		Client:       &Client{Ent: ent.NewClient()},
		readReplicas: replicas,
		config: ReplicaConfig{
			LoadBalanceStrategy: strategy,
			FallbackToPrimary:   fallback,
		},
	}
}

func TestGetReadClient(t *testing.T) {
	t.Run("Success - no replicas falls back to primary", func(t *testing.T) {
		c := newTestClientWithReplicas("round-robin", true)

		assert.Same(t, c.Ent, c.GetReadClient())
	})

	t.Run("Success - healthy replica serves reads", func(t *testing.T) {
		replica := &replicaConnection{entCli: ent.NewClient(), healthy: true}
		c := newTestClientWithReplicas("round-robin", true, replica)

		assert.Same(t, replica.entCli, c.GetReadClient())
		assert.NotSame(t, c.Ent, c.GetReadClient())
	})

	t.Run("Success - unhealthy replica falls back to primary", func(t *testing.T) {
		replica := &replicaConnection{entCli: ent.NewClient(), healthy: false}
		c := newTestClientWithReplicas("round-robin", true, replica)

		assert.Same(t, c.Ent, c.GetReadClient())
	})

	t.Run("Success - round-robin alternates between replicas", func(t *testing.T) {
		replicaA := &replicaConnection{entCli: ent.NewClient(), healthy: true}
		replicaB := &replicaConnection{entCli: ent.NewClient(), healthy: true}
		c := newTestClientWithReplicas("round-robin", true, replicaA, replicaB)

		seen := map[*ent.Client]int{}
		for i := 0; i < 4; i++ {
			seen[c.GetReadClient()]++
		}

		assert.Equal(t, 2, seen[replicaA.entCli])
		assert.Equal(t, 2, seen[replicaB.entCli])
	})

	t.Run("Success - write client is always primary", func(t *testing.T) {
		replica := &replicaConnection{entCli: ent.NewClient(), healthy: true}
		c := newTestClientWithReplicas("round-robin", true, replica)

		assert.Same(t, c.Ent, c.GetWriteClient())
	})
}

func TestDefaultReplicaConfig(t *testing.T) {
	cfg := DefaultReplicaConfig()

	assert.Empty(t, cfg.ReadReplicaURLs)
	assert.Equal(t, "round-robin", cfg.LoadBalanceStrategy)
	assert.True(t, cfg.FallbackToPrimary)
}
