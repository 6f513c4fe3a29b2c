package search

import (
	"github.com/poiesic/kazipot/core"
)

// QueryMonitor provides hooks to observe the query-understanding pipeline.
// Implement this interface to track intermediate stages during analysis.
type QueryMonitor interface {
	Start(query string)
	ExactMatch(hit core.Hit)
	AfterSingleMatch(hits []core.Hit, remaining []string)
	AfterListDetection(limit int, words []string)
	AfterLocationResolve(level Level, location string, global bool)
	AfterTypeResolve(rewritten string)
	Relaxed(level Level)
	Finish(hits []core.Hit)
}

// noopMonitor is a no-op implementation of QueryMonitor
type noopMonitor struct{}

var _ QueryMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                                 {}
func (n *noopMonitor) ExactMatch(_ core.Hit)                          {}
func (n *noopMonitor) AfterSingleMatch(_ []core.Hit, _ []string)      {}
func (n *noopMonitor) AfterListDetection(_ int, _ []string)           {}
func (n *noopMonitor) AfterLocationResolve(_ Level, _ string, _ bool) {}
func (n *noopMonitor) AfterTypeResolve(_ string)                      {}
func (n *noopMonitor) Relaxed(_ Level)                                {}
func (n *noopMonitor) Finish(_ []core.Hit)                            {}
