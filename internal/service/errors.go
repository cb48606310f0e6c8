package service

import "errors"

var (
	// ErrNotFound is returned when the requested entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrSectionNotFound is returned when a content patch names an unknown
	// section id. Structural edits never return it: those no-op instead.
	ErrSectionNotFound = errors.New("section not found")
	// ErrSlugTaken is returned when a page slug is already in use.
	ErrSlugTaken = errors.New("slug already in use")
	// ErrInvalidPagePattern is returned when a display rule contains a page
	// pattern the matcher cannot honour.
	ErrInvalidPagePattern = errors.New("invalid page pattern")
	// ErrTypeImmutable is returned when an update tries to change a section's
	// type; the content shape is type-dependent, so delete and recreate.
	ErrTypeImmutable = errors.New("section type cannot be changed")
)
