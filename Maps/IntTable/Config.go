package IntTable

import (
	"errors"
	"fmt"
	"math"

	"github.com/hashicorp/go-multierror"
)

const (
	DefaultCapacity uint    = 8
	DefaultGrowAt   float64 = 0.75
	DefaultShrinkAt float64 = 0.25
	// MaxCapacity bounds the bucket count. A full table stops growing and its chains get longer instead.
	MaxCapacity uint = math.MaxInt>>1 + 1
)

var (
	ErrCapacity  = errors.New("invalid capacity")
	ErrThreshold = errors.New("invalid load threshold")
)

// Config of an IntTable. The load factor is Size/Cap.
type Config struct {
	Capacity uint    //initial number of buckets, also the one Clear goes back to. 0 means DefaultCapacity.
	GrowAt   float64 //Insert doubles Cap when the load factor goes above it.
	ShrinkAt float64 //Remove halves Cap when the load factor goes below it and the table isn't empty. At most GrowAt/2.
}

func DefaultConfig() Config {
	return Config{Capacity: DefaultCapacity, GrowAt: DefaultGrowAt, ShrinkAt: DefaultShrinkAt}
}

// Validate reports every problem with c at once.
func (c Config) Validate() error {
	var result *multierror.Error
	if c.Capacity > MaxCapacity {
		result = multierror.Append(result, fmt.Errorf("%w: %d is above %d", ErrCapacity, c.Capacity, MaxCapacity))
	}
	if !(c.GrowAt > 0) || math.IsInf(c.GrowAt, 1) {
		result = multierror.Append(result, fmt.Errorf("%w: grow threshold %v must be positive", ErrThreshold, c.GrowAt))
	}
	// halving at most doubles the load, so a shrink can't land the table above GrowAt.
	if !(c.ShrinkAt >= 0) || !(c.ShrinkAt < c.GrowAt) || c.ShrinkAt > c.GrowAt/2 {
		result = multierror.Append(result, fmt.Errorf("%w: shrink threshold %v must be in [0, %v/2]", ErrThreshold, c.ShrinkAt, c.GrowAt))
	}
	return result.ErrorOrNil()
}
