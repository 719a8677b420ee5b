// Package repository declares the data access contracts of the service.
// Implementations live in subpackages (postgres) and contain no business logic.
package repository

import "errors"

// ErrSlugConflict is returned when a write would give two pages the same slug.
var ErrSlugConflict = errors.New("slug already in use")

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
type PageResult[T any] struct {
	Items []T
	Total int
}
