package shutdown

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"kun/internal/logger"
)

const componentTimeout = 10 * time.Second

// Component is anything that needs an orderly stop at exit.
type Component struct {
	Name string
	Stop func()
}

// Manager runs registered components in reverse order exactly once,
// whether shutdown comes from the window closing or a signal.
type Manager struct {
	mu         sync.Mutex
	components []Component
	logger     logger.Logger
	done       chan struct{}
	once       sync.Once
}

func NewManager(log logger.Logger) *Manager {
	if log == nil {
		log = logger.Nop{}
	}
	return &Manager{
		logger: log,
		done:   make(chan struct{}),
	}
}

func (m *Manager) Register(name string, stop func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.components = append(m.components, Component{Name: name, Stop: stop})
}

// Listen triggers shutdown on SIGINT/SIGTERM.
func (m *Manager) Listen() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		select {
		case sig := <-sigChan:
			m.logger.Info("ShutdownManager", "shutdown signal received", map[string]interface{}{
				"signal": sig.String(),
			})
			m.Shutdown()
		case <-m.done:
		}
	}()
}

func (m *Manager) Shutdown() {
	m.once.Do(m.run)
}

func (m *Manager) run() {
	m.mu.Lock()
	components := make([]Component, len(m.components))
	copy(components, m.components)
	m.mu.Unlock()

	m.logger.Info("ShutdownManager", "shutdown sequence initiated", map[string]interface{}{
		"components": len(components),
	})

	for i := len(components) - 1; i >= 0; i-- {
		component := components[i]

		finished := make(chan struct{})
		go func() {
			defer close(finished)
			component.Stop()
		}()

		select {
		case <-finished:
			m.logger.Debug("ShutdownManager", "component stopped", map[string]interface{}{
				"component": component.Name,
			})
		case <-time.After(componentTimeout):
			m.logger.Warning("ShutdownManager", "component shutdown timeout", map[string]interface{}{
				"component": component.Name,
			})
		}
	}

	close(m.done)
	m.logger.Info("ShutdownManager", "shutdown sequence completed", nil)
}

func (m *Manager) Done() <-chan struct{} {
	return m.done
}
