package service

import (
	"fmt"
)

type ErrResourceNotFound struct {
	error
}

func NewErrResourceNotFound(id uint, resourceType string) *ErrResourceNotFound {
	return &ErrResourceNotFound{fmt.Errorf("%s %d not found", resourceType, id)}
}

func NewErrBuildingTypeNotFound(id uint) *ErrResourceNotFound {
	return NewErrResourceNotFound(id, "building type")
}

type ErrCatalogUnavailable struct {
	error
}

func NewErrCatalogUnavailable(resource string, err error) *ErrCatalogUnavailable {
	return &ErrCatalogUnavailable{fmt.Errorf("failed to load %s: %w", resource, err)}
}

type ErrInvalidSeed struct {
	error
}

func NewErrInvalidSeed(source string, err error) *ErrInvalidSeed {
	return &ErrInvalidSeed{fmt.Errorf("invalid seed %s: %w", source, err)}
}
