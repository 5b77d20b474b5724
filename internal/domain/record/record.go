// Package record defines the stored unit of the service: one attribute
// object of a schema with an identity and timestamps.
package record

import (
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/attrd/internal/domain"
	"github.com/jsamuelsen11/attrd/internal/domain/attr"
)

// msgRequired is the validation message for mandatory fields.
const msgRequired = "is required"

// Record is a stored attribute object.
type Record struct {
	ID        uuid.UUID
	Schema    string
	Object    *attr.Object
	CreatedAt time.Time
	UpdatedAt time.Time
}

// New returns a Record with a fresh ID wrapping obj.
func New(obj *attr.Object, now time.Time) *Record {
	return &Record{
		ID:        uuid.New(),
		Schema:    obj.Schema().Name(),
		Object:    obj,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate checks that the record is complete and that its object belongs
// to the schema it names.
func (r *Record) Validate() error {
	fields := make(map[string]string)

	if r.ID == uuid.Nil {
		fields["id"] = msgRequired
	}
	if r.Schema == "" {
		fields["schema"] = msgRequired
	}
	if r.Object == nil {
		fields["object"] = msgRequired
	} else if r.Object.Schema().Name() != r.Schema {
		fields["object"] = "belongs to schema " + r.Object.Schema().Name()
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Clone returns a copy whose object can be written without affecting r.
func (r *Record) Clone() *Record {
	c := *r
	if r.Object != nil {
		c.Object = r.Object.Clone()
	}
	return &c
}

// ParseID parses a record ID, reporting malformed input as a validation
// error.
func ParseID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, &domain.ValidationError{Fields: map[string]string{"id": "must be a UUID"}}
	}
	return id, nil
}
