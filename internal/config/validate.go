package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Valid enum values for configuration fields.
var (
	ValidThemes         = []string{"default", "dracula", "nord", "none"}
	ValidAnalysts       = []string{"market", "social", "news", "fundamentals"}
	ValidResearchDepths = []int{1, 3, 5}
	ValidQuickModels    = []string{"gpt-4o-mini", "gpt-4.1-nano", "gpt-4.1-mini", "gpt-4o"}
	ValidDeepModels     = []string{"gpt-4.1-nano", "gpt-4.1-mini", "gpt-4o", "o4-mini", "o3-mini", "o3", "o1"}
)

// Validate checks enum fields. Empty strings are allowed and mean default.
func (c *Config) Validate() error {
	if err := validateEnum(c.Theme, "theme", ValidThemes); err != nil {
		return err
	}
	for i, a := range c.Analysis.Analysts {
		if err := validateEnum(a, fmt.Sprintf("analysis.analysts[%d]", i), ValidAnalysts); err != nil {
			return err
		}
	}
	if c.Analysis.ResearchDepth != 0 && !slices.Contains(ValidResearchDepths, c.Analysis.ResearchDepth) {
		opts := make([]string, len(ValidResearchDepths))
		for i, d := range ValidResearchDepths {
			opts[i] = strconv.Itoa(d)
		}
		return fmt.Errorf("invalid analysis.research_depth %d: must be %s", c.Analysis.ResearchDepth, strings.Join(opts, ", "))
	}
	if err := validateEnum(c.Analysis.QuickModel, "analysis.quick_model", ValidQuickModels); err != nil {
		return err
	}
	return validateEnum(c.Analysis.DeepModel, "analysis.deep_model", ValidDeepModels)
}

// validateEnum checks that value (if non-empty) is one of the allowed values.
// Returns a formatted error mentioning the field name and allowed options.
func validateEnum(value, field string, allowed []string) error {
	if value == "" {
		return nil
	}
	if !slices.Contains(allowed, value) {
		return fmt.Errorf("invalid %s %q: must be %s", field, value, formatOptions(allowed))
	}
	return nil
}

// formatOptions formats a list of allowed values for error messages.
// E.g., ["a", "b", "c"] -> `"a", "b", or "c"`
func formatOptions(opts []string) string {
	quoted := make([]string, len(opts))
	for i, o := range opts {
		quoted[i] = fmt.Sprintf("%q", o)
	}
	if len(quoted) <= 2 {
		return strings.Join(quoted, " or ")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}
