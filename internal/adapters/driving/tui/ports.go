package tui

import (
	"errors"

	"github.com/jyotish-labs/hora-cli/internal/core/ports/driven"
	"github.com/jyotish-labs/hora-cli/internal/core/ports/driving"
)

// Ports provides access to core services via driving ports.
type Ports struct {
	// Chart assembles charts and serves interpretations. Required.
	Chart driving.ChartService

	// Export renders charts to PDF. Optional; without it the export
	// key reports that export is unavailable.
	Export driving.ExportService

	// Sessions holds the transient form state. Required.
	Sessions driven.SessionStore
}

// Validate checks that the required ports are present.
func (p *Ports) Validate() error {
	if p == nil {
		return errors.New("ports not configured")
	}
	if p.Chart == nil {
		return errors.New("chart service is required")
	}
	if p.Sessions == nil {
		return errors.New("session store is required")
	}
	return nil
}
