package config

import (
	"fmt"
)

type InvalidYAMLError struct {
	Wrapped error
}

func (e *InvalidYAMLError) Error() string {
	return fmt.Sprintf(".pyqa.yml is not a valid yaml document: %v", e.Wrapped)
}

type SchemaViolationError struct {
	Wrapped error
}

func (e *SchemaViolationError) Error() string {
	return fmt.Sprintf(".pyqa.yml does not match the configuration schema: %v", e.Wrapped)
}

type MissingPropertyError struct {
	Property string
}

func (e *MissingPropertyError) Error() string {
	return fmt.Sprintf(".pyqa.yml is missing required property: %s", e.Property)
}

type InvalidTargetError struct {
	Target string
	Reason string
}

func (e *InvalidTargetError) Error() string {
	return fmt.Sprintf(".pyqa.yml target '%s' is invalid: %s", e.Target, e.Reason)
}

type InvalidLineLengthError struct {
	Property string
	Value    int
}

func (e *InvalidLineLengthError) Error() string {
	return fmt.Sprintf(".pyqa.yml property %s must be a positive integer, got %d", e.Property, e.Value)
}
