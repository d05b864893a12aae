package resource

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyResourceName   = errors.New("resource name cannot be empty")
	ErrResourceNameTooLong = errors.New("resource name is too long (max 255 characters)")
	ErrResourceInactive    = errors.New("resource is not accepting reservations")
)

const MaxResourceNameLength = 255

// Resource is a bookable teacher/instructor. Availability and buffers are
// scoped to one resource.
type Resource struct {
	id        uuid.UUID
	name      string
	subject   string
	active    bool
	createdAt time.Time
	updatedAt time.Time
}

func NewResource(id uuid.UUID, name, subject string, active bool) (*Resource, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrEmptyResourceName
	}
	if len(trimmed) > MaxResourceNameLength {
		return nil, ErrResourceNameTooLong
	}
	return &Resource{
		id:      id,
		name:    trimmed,
		subject: strings.TrimSpace(subject),
		active:  active,
	}, nil
}

func ReconstructResource(id uuid.UUID, name, subject string, active bool, createdAt, updatedAt time.Time) *Resource {
	return &Resource{
		id:        id,
		name:      name,
		subject:   subject,
		active:    active,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r *Resource) EnsureBookable() error {
	if !r.active {
		return ErrResourceInactive
	}
	return nil
}

func (r *Resource) ID() uuid.UUID        { return r.id }
func (r *Resource) Name() string         { return r.name }
func (r *Resource) Subject() string      { return r.subject }
func (r *Resource) Active() bool         { return r.active }
func (r *Resource) CreatedAt() time.Time { return r.createdAt }
func (r *Resource) UpdatedAt() time.Time { return r.updatedAt }
