package service

import (
	"errors"
	"fmt"
	"log"
)

// Service defines the lifecycle interface for infrastructure subsystems
// Services manage long-lived resources outside the simulation: the audio device, the status listener
//
// Lifecycle:
//  1. Construction (via package constructor)
//  2. Start() - acquire resources, launch background goroutines
//  3. [runtime operation]
//  4. Stop() - halt goroutines, release resources
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Start begins service operation
	Start() error

	// Stop halts service operation and releases resources
	// Must be idempotent - safe to call multiple times
	Stop() error
}

// Hub starts services in registration order and stops them in reverse
// Every service is optional: one failing to start leaves the others running
type Hub struct {
	services []Service
	running  map[string]bool
}

func NewHub() *Hub {
	return &Hub{running: make(map[string]bool)}
}

// Register adds s; names must be unique
func (h *Hub) Register(s Service) error {
	for _, existing := range h.services {
		if existing.Name() == s.Name() {
			return fmt.Errorf("service %q already registered", s.Name())
		}
	}
	h.services = append(h.services, s)
	return nil
}

// StartAll starts every registered service not yet running
// Returns the joined start errors
func (h *Hub) StartAll() error {
	var errs []error
	for _, s := range h.services {
		if h.running[s.Name()] {
			continue
		}
		if err := s.Start(); err != nil {
			errs = append(errs, fmt.Errorf("start %s: %w", s.Name(), err))
			log.Printf("service: %s failed to start: %v", s.Name(), err)
			continue
		}
		h.running[s.Name()] = true
		log.Printf("service: %s started", s.Name())
	}
	return errors.Join(errs...)
}

// StopAll stops running services in reverse registration order
func (h *Hub) StopAll() error {
	var errs []error
	for i := len(h.services) - 1; i >= 0; i-- {
		s := h.services[i]
		if !h.running[s.Name()] {
			continue
		}
		if err := s.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("stop %s: %w", s.Name(), err))
		}
		delete(h.running, s.Name())
		log.Printf("service: %s stopped", s.Name())
	}
	return errors.Join(errs...)
}

// Running reports whether the named service started successfully and has not been stopped
func (h *Hub) Running(name string) bool {
	return h.running[name]
}
