package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/variantlab/abtest/ent"
)

// ReplicaConfig configures read replica routing
type ReplicaConfig struct {
	// ReadReplicaURLs lists the replica connection strings. Empty means
	// every query goes to the primary.
	ReadReplicaURLs []string

	// LoadBalanceStrategy is "round-robin" or "random"
	LoadBalanceStrategy string

	// FallbackToPrimary routes reads to the primary when the selected
	// replica is unhealthy
	FallbackToPrimary bool

	// HealthCheckInterval is how often replicas are pinged; 0 disables
	// health checking
	HealthCheckInterval time.Duration
}

// DefaultReplicaConfig returns the default replica routing configuration
func DefaultReplicaConfig() ReplicaConfig {
	return ReplicaConfig{
		LoadBalanceStrategy: "round-robin",
		FallbackToPrimary:   true,
		HealthCheckInterval: 30 * time.Second,
	}
}

// ClientWithReplicas is a Client whose read traffic can be spread over
// read replicas. Writes always hit the embedded primary. Assignment and
// event volume dwarfs the management surface, so the hot read paths are
// the ones worth offloading.
type ClientWithReplicas struct {
	*Client

	readReplicas []*replicaConnection
	replicaMu    sync.RWMutex

	rrIndex uint64
	config  ReplicaConfig

	healthCheckStop chan struct{}
	healthCheckWg   sync.WaitGroup
}

type replicaConnection struct {
	db      *sql.DB
	entCli  *ent.Client
	url     string
	healthy bool
	mu      sync.RWMutex
}

// NewClientWithReplicas connects to the primary and to every configured
// read replica. A replica that fails to connect is skipped with a warning
// rather than failing startup.
func NewClientWithReplicas(primaryURL string, poolCfg PoolConfig, sslCfg *SSLConfig, replicaCfg ReplicaConfig) (*ClientWithReplicas, error) {
	primary, err := NewClientWithPoolAndSSL(primaryURL, poolCfg, sslCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create primary client: %w", err)
	}

	client := &ClientWithReplicas{
		Client:          primary,
		readReplicas:    make([]*replicaConnection, 0, len(replicaCfg.ReadReplicaURLs)),
		config:          replicaCfg,
		healthCheckStop: make(chan struct{}),
	}

	for _, url := range replicaCfg.ReadReplicaURLs {
		replica, err := connectReplica(url, poolCfg, sslCfg)
		if err != nil {
			log.Printf("⚠️  Skipping read replica %s: %v", url, err)
			continue
		}
		client.readReplicas = append(client.readReplicas, replica)
	}

	if len(client.readReplicas) == 0 {
		log.Printf("ℹ️  No read replicas configured, all queries use the primary")
		return client, nil
	}

	log.Printf("✅ Connected to %d read replica(s)", len(client.readReplicas))
	if replicaCfg.HealthCheckInterval > 0 {
		client.startHealthChecking()
	}
	return client, nil
}

func connectReplica(replicaURL string, poolCfg PoolConfig, sslCfg *SSLConfig) (*replicaConnection, error) {
	connStr, err := BuildConnectionString(replicaURL, sslCfg)
	if err != nil {
		return nil, fmt.Errorf("failed building connection string: %w", err)
	}

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed opening connection: %w", err)
	}

	// Replicas carry only part of the read load, so half the primary's pool
	maxOpen := poolCfg.MaxOpenConns / 2
	if maxOpen < 5 {
		maxOpen = 5
	}
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(poolCfg.MaxIdleConns)
	db.SetConnMaxLifetime(poolCfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(poolCfg.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping replica: %w", err)
	}

	return &replicaConnection{
		db:      db,
		entCli:  ent.NewClient(ent.Driver(entsql.OpenDB(dialect.Postgres, db))),
		url:     replicaURL,
		healthy: true,
	}, nil
}

// GetReadClient returns an ent client for read-only queries. It prefers a
// healthy replica and falls back to the primary.
func (c *ClientWithReplicas) GetReadClient() *ent.Client {
	replica := c.selectReplica()
	if replica != nil && replica.isHealthy() {
		return replica.entCli
	}

	if c.config.FallbackToPrimary || replica == nil {
		return c.Ent
	}

	// No fallback requested: take any healthy replica before giving up
	c.replicaMu.RLock()
	defer c.replicaMu.RUnlock()
	for _, r := range c.readReplicas {
		if r.isHealthy() {
			return r.entCli
		}
	}
	return c.Ent
}

// GetWriteClient returns the primary ent client
func (c *ClientWithReplicas) GetWriteClient() *ent.Client {
	return c.Ent
}

func (c *ClientWithReplicas) selectReplica() *replicaConnection {
	c.replicaMu.RLock()
	defer c.replicaMu.RUnlock()

	if len(c.readReplicas) == 0 {
		return nil
	}

	if c.config.LoadBalanceStrategy == "random" {
		return c.readReplicas[rand.Intn(len(c.readReplicas))]
	}
	index := atomic.AddUint64(&c.rrIndex, 1)
	return c.readReplicas[index%uint64(len(c.readReplicas))]
}

func (r *replicaConnection) isHealthy() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.healthy
}

func (c *ClientWithReplicas) startHealthChecking() {
	c.healthCheckWg.Add(1)

	go func() {
		defer c.healthCheckWg.Done()

		ticker := time.NewTicker(c.config.HealthCheckInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				c.checkReplicaHealth()
			case <-c.healthCheckStop:
				return
			}
		}
	}()

	log.Printf("✅ Replica health checking started (interval: %s)", c.config.HealthCheckInterval)
}

func (c *ClientWithReplicas) checkReplicaHealth() {
	c.replicaMu.RLock()
	defer c.replicaMu.RUnlock()

	for _, replica := range c.readReplicas {
		go func(r *replicaConnection) {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			err := r.db.PingContext(ctx)

			r.mu.Lock()
			wasHealthy := r.healthy
			r.healthy = err == nil
			r.mu.Unlock()

			if wasHealthy && err != nil {
				log.Printf("⚠️  Read replica unhealthy: %s (%v)", r.url, err)
			} else if !wasHealthy && err == nil {
				log.Printf("✅ Read replica recovered: %s", r.url)
			}
		}(replica)
	}
}

// Close closes the primary and every replica connection
func (c *ClientWithReplicas) Close() error {
	close(c.healthCheckStop)
	c.healthCheckWg.Wait()

	c.replicaMu.Lock()
	for _, replica := range c.readReplicas {
		if err := replica.entCli.Close(); err != nil {
			log.Printf("⚠️  Error closing replica connection: %v", err)
		}
	}
	c.replicaMu.Unlock()

	return c.Client.Close()
}
