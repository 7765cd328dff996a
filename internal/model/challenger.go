package model

// ChallengerDefinition is the configuration shape of a challenger
type ChallengerDefinition struct {
	Name        string `yaml:"name" json:"name"`
	DisplayName string `yaml:"display_name" json:"display_name"`
	Endpoint    string `yaml:"endpoint" json:"endpoint"`
}

// Challenger is a registered opponent. Records are built once when the
// registry is initialized and never modified afterwards.
type Challenger struct {
	Name        string
	DisplayName string
	Endpoint    string // base URL of the external opponent service
}
