package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// VerifyConfig holds settings for scenario verification.
type VerifyConfig struct {
	// Workers is the number of scenarios replayed at once
	Workers int `yaml:"workers" validate:"min=0,max=256"`

	// FailFast stops scheduling scenarios after the first failure
	FailFast bool `yaml:"fail_fast"`

	// Tags restricts the run to scenarios carrying one of these tags
	Tags []string `yaml:"tags" validate:"dive,required"`

	// MaxPlies bounds the length of any one scenario (0 = no limit)
	MaxPlies int `yaml:"max_plies" validate:"min=0"`
}

// NewVerifyConfig creates a VerifyConfig with default values.
// Zero workers means one per CPU.
func NewVerifyConfig() *VerifyConfig {
	return &VerifyConfig{}
}

// Validate checks settings that struct tags cannot express.
func (v *VerifyConfig) Validate() error {
	for i, tag := range v.Tags {
		for j := 0; j < i; j++ {
			if v.Tags[j] == tag {
				return fmt.Errorf("tag %q listed twice: %w", tag, errors.ErrInvalidConfig)
			}
		}
	}
	return nil
}
