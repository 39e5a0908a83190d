package constants

// Exposure status cutoffs, expressed as percentage of the nearest threshold.
const (
	ExceededPercentage    = 100.0
	WarningPercentage     = 80.0
	ApproachingPercentage = 50.0
)

// Report cache settings
const (
	ExposureCacheKeyPrefix = "sails:nexus:exposure"
)
