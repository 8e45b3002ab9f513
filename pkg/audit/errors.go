package audit

import (
	"errors"
	"fmt"
)

// RuleDefinitionError reports an invalid rule definition at write time.
type RuleDefinitionError struct {
	Field   string
	Message string
}

func (e *RuleDefinitionError) Error() string {
	return fmt.Sprintf("invalid rule definition field '%s': %s", e.Field, e.Message)
}

// NewRuleDefinitionError creates a new rule definition error
func NewRuleDefinitionError(field, message string) error {
	return &RuleDefinitionError{Field: field, Message: message}
}

// IsRuleDefinitionError checks if an error is a rule definition error
func IsRuleDefinitionError(err error) bool {
	var re *RuleDefinitionError
	return errors.As(err, &re)
}
