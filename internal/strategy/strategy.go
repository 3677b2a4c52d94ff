package strategy

import "inventory-release/internal/model"

// Context is what a strategy sees in one period. Accumulated and Remaining are
// stock sold and still on hand before this period's release.
type Context struct {
	Index       int
	Period      int
	IsLast      bool
	Price       float64
	Accumulated float64
	Remaining   float64
}

type Strategy interface {
	Name() string
	Decide(ctx Context) (model.Release, error)
}
