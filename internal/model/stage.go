package model

// Stage labels which branch of the release policy produced a quantity.
// Keep these values stable; they are intended for CSV output.
type Stage string

const (
	StageMyopic      Stage = "stage 1"
	StageRationing   Stage = "stage 2"
	StageLiquidation Stage = "liquidation"
	StageOutOfStock  Stage = "out of stock"

	// StageOffline and StageBaseline label releases from the non-threshold strategies.
	StageOffline  Stage = "offline"
	StageBaseline Stage = "baseline"
)

// Release is a requested sale quantity for a period.
type Release struct {
	Quantity float64
	Stage    Stage
}
