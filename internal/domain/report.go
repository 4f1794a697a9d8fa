package domain

import "time"

// Report bundles every reading computed for one instant.
type Report struct {
	Instant     time.Time         `json:"instant" yaml:"instant"`
	LunarDate   LunarDate         `json:"lunar_date" yaml:"lunar_date"`
	Composition PillarComposition `json:"pillar_composition" yaml:"pillar_composition"`
	QiMen       *QiMenChart       `json:"qi_men" yaml:"qi_men"`
	Taiyi       *TaiyiDivination  `json:"taiyi" yaml:"taiyi"`
}

// Configuration holds the command line settings loaded from YAML.
type Configuration struct {
	Location    string `yaml:"location" json:"location"`
	Format      string `yaml:"format" json:"format"`
	TimeFrame   string `yaml:"time_frame,omitempty" json:"time_frame,omitempty"`
	Concurrency int    `yaml:"concurrency" json:"concurrency"`
	Verbose     bool   `yaml:"verbose" json:"verbose"`
}

// DefaultConfiguration is used when no config file is given.
func DefaultConfiguration() Configuration {
	return Configuration{
		Location:    "Asia/Shanghai",
		Format:      "console",
		Concurrency: 4,
	}
}
