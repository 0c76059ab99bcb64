package utils

import (
	"fmt"
	"regexp"
)

// Request limits
const (
	MaxIDLength   = 128
	MaxParamCount = 32
	MaxParamDepth = 2
)

// ToolIDPattern allows alphanumeric, hyphens, underscores, and dots (for service.tool format)
var ToolIDPattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

// ValidateToolID checks length and character set of a tool ID
func ValidateToolID(toolID string) error {
	if toolID == "" {
		return fmt.Errorf("tool ID is required")
	}
	if len(toolID) > MaxIDLength {
		return fmt.Errorf("tool ID exceeds %d characters", MaxIDLength)
	}
	if !ToolIDPattern.MatchString(toolID) {
		return fmt.Errorf("tool ID %q contains invalid characters", toolID)
	}
	return nil
}

// ValidateParams bounds the size and nesting of a parameter map
func ValidateParams(params map[string]interface{}) error {
	if len(params) > MaxParamCount {
		return fmt.Errorf("too many parameters: %d exceeds maximum %d", len(params), MaxParamCount)
	}
	return checkDepth(params, 0, MaxParamDepth)
}

func checkDepth(data interface{}, currentDepth int, maxDepth int) error {
	if currentDepth > maxDepth {
		return fmt.Errorf("parameter nesting depth %d exceeds maximum %d", currentDepth, maxDepth)
	}

	switch v := data.(type) {
	case map[string]interface{}:
		for _, value := range v {
			if err := checkDepth(value, currentDepth+1, maxDepth); err != nil {
				return err
			}
		}
	case []interface{}:
		for _, value := range v {
			if err := checkDepth(value, currentDepth+1, maxDepth); err != nil {
				return err
			}
		}
	}
	return nil
}
