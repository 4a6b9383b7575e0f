package validate

import (
	"fmt"
	"regexp"

	"github.com/initializ/rulekit/types"
)

var (
	bundleIDPattern = regexp.MustCompile(`^[a-z0-9-]+$`)
	semverPattern   = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-((?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*)(?:\.(?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*))*))?(?:\+([0-9a-zA-Z-]+(?:\.[0-9a-zA-Z-]+)*))?$`)

	knownAgents    = map[string]bool{"cursor": true, "windsurf": true, "custom": true}
	knownProviders = map[string]bool{"openai": true, "ollama": true}
)

// ValidationResult holds errors and warnings from config validation.
type ValidationResult struct {
	Errors   []string
	Warnings []string
}

// IsValid returns true if there are no validation errors.
func (r *ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

// ValidateConfig checks a Config for errors and warnings.
func ValidateConfig(cfg *types.Config) *ValidationResult {
	r := &ValidationResult{}

	if cfg.BundleID == "" {
		r.Errors = append(r.Errors, "bundle_id is required")
	} else if !bundleIDPattern.MatchString(cfg.BundleID) {
		r.Errors = append(r.Errors, fmt.Sprintf("bundle_id %q must match ^[a-z0-9-]+$", cfg.BundleID))
	}

	if cfg.Version == "" {
		r.Errors = append(r.Errors, "version is required")
	} else if !semverPattern.MatchString(cfg.Version) {
		r.Errors = append(r.Errors, fmt.Sprintf("version %q is not valid semver", cfg.Version))
	}

	if cfg.Agent != "" && !knownAgents[cfg.Agent] {
		r.Warnings = append(r.Warnings, fmt.Sprintf("unknown agent %q (known: cursor, windsurf, custom)", cfg.Agent))
	}

	if cfg.Eval.Provider != "" && !knownProviders[cfg.Eval.Provider] {
		r.Errors = append(r.Errors, fmt.Sprintf("eval.provider %q must be one of: openai, ollama", cfg.Eval.Provider))
	}
	if cfg.Eval.Provider != "" && cfg.Eval.Model == "" {
		r.Warnings = append(r.Warnings, "eval.provider is set but eval.model is empty")
	}
	if cfg.Eval.BaseBaseURL != "" && cfg.Eval.BaseModel == "" {
		r.Warnings = append(r.Warnings, "eval.base_base_url is set but eval.base_model is empty")
	}

	return r
}
