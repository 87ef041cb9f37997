package model

// Environment names for server behavior switches.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope carries the per-request identity context through use cases.
type Scope struct {
	UserID string
}
