package scheduler

import (
	customerrors "meeting-scheduler/errors"
	"meeting-scheduler/models"
)

// Options are the caps and search settings of a scheduling run.
type Options struct {
	// RepCap is the maximum number of meetings per rep.
	RepCap int `json:"rep_cap"`
	// PeakCap and AcceleratingCap are the per-supplier maximums by type.
	PeakCap         int `json:"peak_cap"`
	AcceleratingCap int `json:"accelerating_cap"`
	// Seeds is the number of independent passes tried.
	Seeds int `json:"seeds"`
	// BaseSeed is the seed of pass 0; pass i uses BaseSeed+i.
	BaseSeed int64 `json:"base_seed"`
	// Workers bounds concurrent passes. 0 means GOMAXPROCS.
	Workers int `json:"workers"`
}

// DefaultOptions mirrors the forum defaults.
func DefaultOptions() Options {
	return Options{
		RepCap:          12,
		PeakCap:         6,
		AcceleratingCap: 3,
		Seeds:           25,
		BaseSeed:        1,
	}
}

// Validate fails fast on caps or seed counts that would only ever produce an
// empty schedule.
func (o Options) Validate() error {
	checks := []struct {
		field string
		value int
	}{
		{"rep_cap", o.RepCap},
		{"peak_cap", o.PeakCap},
		{"accelerating_cap", o.AcceleratingCap},
		{"seeds", o.Seeds},
	}
	for _, c := range checks {
		if c.value <= 0 {
			return &customerrors.ConfigError{Field: c.field, Value: c.value, Err: customerrors.ErrInvalidConfig}
		}
	}
	if o.Workers < 0 {
		return &customerrors.ConfigError{Field: "workers", Value: o.Workers, Err: customerrors.ErrInvalidConfig}
	}
	return nil
}

// SupplierCap returns the meeting cap for a supplier type.
func (o Options) SupplierCap(t models.SupplierType) int {
	if t == models.SupplierPeak {
		return o.PeakCap
	}
	return o.AcceleratingCap
}
