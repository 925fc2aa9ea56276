package employee

import "errors"

// Employee domain errors
var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrIqamaNoExists    = errors.New("iqama number already registered")
)
