package lambda

import (
	"context"
	"sync"

	"outreach-api/internal/config"
	"outreach-api/pkg/server"
)

// ConnectionManager keeps the service container alive across warm
// invocations of a Lambda function
type ConnectionManager struct {
	container   *server.Container
	mu          sync.RWMutex
	initialized bool
	config      *config.Config
}

var (
	globalConnectionManager *ConnectionManager
	connectionManagerOnce   sync.Once
)

// GetConnectionManager returns the global connection manager instance
func GetConnectionManager() *ConnectionManager {
	connectionManagerOnce.Do(func() {
		globalConnectionManager = &ConnectionManager{}
	})
	return globalConnectionManager
}

// Initialize builds the container from configuration. It is a no-op once a
// container exists.
func (cm *ConnectionManager) Initialize(ctx context.Context, cfg *config.Config) error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.initialized {
		return nil
	}

	container, err := server.NewContainer(ctx, cfg)
	if err != nil {
		return err
	}

	cm.config = cfg
	cm.container = container
	cm.initialized = true
	return nil
}

// GetContainer returns the service container, initializing it from the
// environment on first use. A failed initialization is retried on the next
// invocation.
func (cm *ConnectionManager) GetContainer(ctx context.Context) (*server.Container, error) {
	cm.mu.RLock()
	if cm.initialized && cm.container != nil {
		container := cm.container
		cm.mu.RUnlock()
		return container, nil
	}
	cm.mu.RUnlock()

	cfg, err := config.GetOptimizedConfig()
	if err != nil {
		return nil, err
	}

	if err := cm.Initialize(ctx, cfg); err != nil {
		return nil, err
	}

	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.container, nil
}

// Cleanup closes the container and resets the manager. The next
// GetContainer reloads configuration from the environment.
func (cm *ConnectionManager) Cleanup() error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	var err error
	if cm.container != nil {
		err = cm.container.Close()
		cm.container = nil
	}

	cm.config = nil
	cm.initialized = false
	return err
}

// Shutdown is registered with the Lambda runtime and releases pooled
// connections before the sandbox is terminated
func (cm *ConnectionManager) Shutdown() {
	cm.mu.RLock()
	container := cm.container
	cm.mu.RUnlock()

	if err := cm.Cleanup(); err != nil && container != nil {
		container.Logger.WithError(err).Warn("Failed to clean up container on shutdown")
	}
}
