package service

import (
	"sort"
	"time"
)

// Phase orders services within the post-sweep pass of a frame.
type Phase int

const (
	PhaseSpawn  Phase = iota // 0: refill the population
	PhaseCensus              // 1: periodic reporting
)

// Service is per-tick work that lives outside the entity population. The
// manager drives entities; the runner drives everything around them, once
// per frame after the sweep.
type Service interface {
	Phase() Phase
	Tick(dt time.Duration)
}

// Runner executes services in phase order each frame. Services sharing a
// phase run in registration order.
type Runner struct {
	services []Service
	sorted   bool
}

func NewRunner() *Runner {
	return &Runner{
		services: make([]Service, 0, 8),
	}
}

func (r *Runner) Register(s Service) {
	r.services = append(r.services, s)
	r.sorted = false
}

func (r *Runner) Tick(dt time.Duration) {
	r.ensureSorted()
	for _, s := range r.services {
		s.Tick(dt)
	}
}

func (r *Runner) ensureSorted() {
	if !r.sorted {
		sort.SliceStable(r.services, func(i, j int) bool {
			return r.services[i].Phase() < r.services[j].Phase()
		})
		r.sorted = true
	}
}
