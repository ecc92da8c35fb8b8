package ledgerly

import (
	"encoding/json"
	"time"
)

// Resource is a typed in-memory representation of one JSON object or
// collection returned by the API. Concrete types are selected by the resource
// factory from the response's resolved URL path.
type Resource interface {
	ResourceKind() string
}

// Links represents resource links.
type Links map[string]Link

// Link represents a single link.
type Link struct {
	Href   string `json:"href"             yaml:"href"`
	Method string `json:"method,omitempty" yaml:"method,omitempty"`
}

// Entity is the base structure embedded by all typed API entities.
type Entity struct {
	ID          string     `json:"id,omitempty"          yaml:"id,omitempty"`
	CreatedTime *time.Time `json:"createdTime,omitempty" yaml:"createdTime,omitempty"`
	UpdatedTime *time.Time `json:"updatedTime,omitempty" yaml:"updatedTime,omitempty"`
	Links       Links      `json:"_links,omitempty"      yaml:"-"`
	Embedded    Embedded   `json:"_embedded,omitempty"   yaml:"-"`
}

// Embedded is the reserved container for related sub-resources nested in a
// response body. Entries stay raw JSON until resolved, so embedded resources
// are wrapped in their typed entity only at access time.
type Embedded map[string]json.RawMessage

// Has reports whether a named sub-resource is present.
func (e Embedded) Has(name string) bool {
	_, ok := e[name]

	return ok
}

// Resolve wraps the named sub-resource in its registered entity type using
// the default factory. Unknown names resolve to a generic resource.
func (e Embedded) Resolve(name string) (Resource, error) {
	return DefaultFactory().CreateEmbedded(name, e[name])
}

// Collection wraps one page of a list response: the decoded items plus the
// pagination metadata from the collection envelope.
type Collection struct {
	Path   string     `json:"-"      yaml:"-"`
	Total  int        `json:"total"  yaml:"total"`
	Offset int        `json:"offset" yaml:"offset"`
	Limit  int        `json:"limit"  yaml:"limit"`
	Items  []Resource `json:"-"      yaml:"-"`
}

// ResourceKind implements Resource.
func (c *Collection) ResourceKind() string {
	return "collection"
}

// HasMore reports whether pages remain beyond this one.
func (c *Collection) HasMore() bool {
	return c.Offset+len(c.Items) < c.Total
}

// GenericResource wraps a decoded body whose path matched no registered
// resource pattern. It is never an error to receive one.
type GenericResource struct {
	Path   string
	Fields map[string]interface{}
}

// ResourceKind implements Resource.
func (g *GenericResource) ResourceKind() string {
	return "resource"
}

// String returns a field value as a string, or "" when absent.
func (g *GenericResource) String(key string) string {
	value, ok := g.Fields[key].(string)
	if !ok {
		return ""
	}

	return value
}
