package ledgerly

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"sync"
)

var versionSegmentPattern = regexp.MustCompile(`^v\d+(\.\d+)*$`)

// Factory resolves a response's URL path and decoded JSON body into a typed
// resource. Paths are matched against registered segment patterns where a
// segment is either a literal or a {wildcard} standing for an identifier;
// the most specific match (most literal segments) wins. Unmatched paths fall
// back to a generic resource wrapper, never an error.
type Factory struct {
	patterns []patternEntry
	embedded map[string]func() Resource
}

type patternEntry struct {
	segments []string
	newFn    func() Resource
}

// NewFactory creates a factory with the standard resource table registered.
func NewFactory() *Factory {
	factory := &Factory{embedded: make(map[string]func() Resource)}

	factory.Register("customers/{id}", func() Resource { return &Customer{} })
	factory.Register("plans/{id}", func() Resource { return &Plan{} })
	factory.Register("subscriptions/{id}", func() Resource { return &Subscription{} })
	factory.Register("invoices/{id}", func() Resource { return &Invoice{} })
	factory.Register("transactions/{id}", func() Resource { return &Transaction{} })
	factory.Register("bank-accounts/{id}", func() Resource { return &BankAccount{} })
	factory.Register("payment-cards/{id}", func() Resource { return &PaymentCard{} })
	factory.Register("websites/{id}", func() Resource { return &Website{} })

	// Action endpoints respond with the acted-on entity.
	factory.Register("subscriptions/{id}/cancellation", func() Resource { return &Subscription{} })
	factory.Register("invoices/{id}/issuance", func() Resource { return &Invoice{} })
	factory.Register("bank-accounts/{id}/deactivation", func() Resource { return &BankAccount{} })
	factory.Register("payment-cards/{id}/deactivation", func() Resource { return &PaymentCard{} })

	factory.RegisterEmbedded("customer", func() Resource { return &Customer{} })
	factory.RegisterEmbedded("plan", func() Resource { return &Plan{} })
	factory.RegisterEmbedded("subscription", func() Resource { return &Subscription{} })
	factory.RegisterEmbedded("invoice", func() Resource { return &Invoice{} })
	factory.RegisterEmbedded("transaction", func() Resource { return &Transaction{} })
	factory.RegisterEmbedded("bankAccount", func() Resource { return &BankAccount{} })
	factory.RegisterEmbedded("paymentCard", func() Resource { return &PaymentCard{} })
	factory.RegisterEmbedded("website", func() Resource { return &Website{} })

	return factory
}

var (
	defaultFactory     *Factory
	defaultFactoryOnce sync.Once
)

// DefaultFactory returns the process-wide factory with the standard resource
// table.
func DefaultFactory() *Factory {
	defaultFactoryOnce.Do(func() {
		defaultFactory = NewFactory()
	})

	return defaultFactory
}

// Register adds a path pattern for a resource type.
func (f *Factory) Register(pattern string, newFn func() Resource) {
	f.patterns = append(f.patterns, patternEntry{
		segments: strings.Split(strings.Trim(pattern, "/"), "/"),
		newFn:    newFn,
	})
}

// RegisterEmbedded adds a type for a named _embedded container.
func (f *Factory) RegisterEmbedded(name string, newFn func() Resource) {
	f.embedded[name] = newFn
}

// Create constructs the typed resource for a resolved path and response
// body. A collection envelope body produces a Collection; an empty body
// produces an empty instance of the matched type.
func (f *Factory) Create(path string, body []byte) (Resource, error) {
	segments := splitPath(path)

	trimmed := bytes.TrimSpace(body)
	if isCollectionBody(trimmed) {
		return f.createCollection(path, segments, trimmed)
	}

	return f.createEntity(path, segments, trimmed)
}

// CreateEmbedded constructs the typed resource for a named _embedded
// container. Unknown names resolve to a generic resource.
func (f *Factory) CreateEmbedded(name string, raw json.RawMessage) (Resource, error) {
	newFn, ok := f.embedded[name]
	if !ok {
		return genericFromBody(name, raw), nil
	}

	resource := newFn()
	if len(raw) > 0 {
		err := json.Unmarshal(raw, resource)
		if err != nil {
			return nil, fmt.Errorf("decoding embedded %s: %w", name, err)
		}
	}

	return resource, nil
}

func (f *Factory) createEntity(path string, segments []string, body []byte) (Resource, error) {
	entry, ok := f.match(segments)
	if !ok {
		return genericFromBody(path, body), nil
	}

	resource := entry.newFn()
	if len(body) > 0 {
		err := json.Unmarshal(body, resource)
		if err != nil {
			// A body that does not fit the typed shape still resolves, as a
			// generic wrapper.
			return genericFromBody(path, body), nil
		}
	}

	return resource, nil
}

// collectionEnvelope is the recognizable "list of items plus pagination
// metadata" shape.
type collectionEnvelope struct {
	Data   []json.RawMessage `json:"data"`
	Total  *int              `json:"total"`
	Offset *int              `json:"offset"`
	Limit  *int              `json:"limit"`
}

func (f *Factory) createCollection(path string, segments []string, body []byte) (Resource, error) {
	var envelope collectionEnvelope

	if len(body) > 0 && body[0] == '[' {
		// Bare JSON array: items without pagination metadata.
		err := json.Unmarshal(body, &envelope.Data)
		if err != nil {
			return genericFromBody(path, body), nil
		}
	} else {
		err := json.Unmarshal(body, &envelope)
		if err != nil {
			return genericFromBody(path, body), nil
		}
	}

	collection := &Collection{
		Path:  path,
		Total: len(envelope.Data),
		Items: make([]Resource, 0, len(envelope.Data)),
	}

	if envelope.Total != nil {
		collection.Total = *envelope.Total
	}

	if envelope.Offset != nil {
		collection.Offset = *envelope.Offset
	}

	if envelope.Limit != nil {
		collection.Limit = *envelope.Limit
	}

	for _, raw := range envelope.Data {
		item, err := f.createItem(segments, raw)
		if err != nil {
			return nil, err
		}

		collection.Items = append(collection.Items, item)
	}

	return collection, nil
}

// createItem resolves one collection item: a self link embedded in the item
// takes precedence, otherwise the item is typed by the collection's element
// pattern.
func (f *Factory) createItem(collectionSegments []string, raw json.RawMessage) (Resource, error) {
	var hints struct {
		Links struct {
			Self struct {
				Href string `json:"href"`
			} `json:"self"`
		} `json:"_links"`
	}

	_ = json.Unmarshal(raw, &hints)

	if hints.Links.Self.Href != "" {
		return f.createEntity(hints.Links.Self.Href, splitPath(hints.Links.Self.Href), raw)
	}

	elementSegments := append(append([]string{}, collectionSegments...), "-")
	path := strings.Join(elementSegments, "/")

	return f.createEntity(path, elementSegments, raw)
}

// match finds the most specific registered pattern for the path segments.
func (f *Factory) match(segments []string) (patternEntry, bool) {
	best := patternEntry{}
	bestLiterals := -1
	found := false

	for _, entry := range f.patterns {
		literals, ok := matchSegments(entry.segments, segments)
		if ok && literals > bestLiterals {
			best = entry
			bestLiterals = literals
			found = true
		}
	}

	return best, found
}

func matchSegments(pattern, segments []string) (int, bool) {
	if len(pattern) != len(segments) {
		return 0, false
	}

	literals := 0

	for i, expected := range pattern {
		if strings.HasPrefix(expected, "{") && strings.HasSuffix(expected, "}") {
			continue
		}

		if expected != segments[i] {
			return 0, false
		}

		literals++
	}

	return literals, true
}

// splitPath normalizes a resolved path into its segments: the scheme and
// host of an absolute URL and the API version prefix are stripped.
func splitPath(path string) []string {
	if strings.Contains(path, "://") {
		parsed, err := url.Parse(path)
		if err == nil {
			path = parsed.Path
		}
	}

	path, _, _ = strings.Cut(path, "?")

	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}

	segments := strings.Split(trimmed, "/")
	if versionSegmentPattern.MatchString(segments[0]) {
		segments = segments[1:]
	}

	return segments
}

func genericFromBody(path string, body []byte) *GenericResource {
	generic := &GenericResource{Path: path}

	if len(body) > 0 {
		_ = json.Unmarshal(body, &generic.Fields)
	}

	return generic
}

// isCollectionBody reports whether the body has the collection envelope
// shape: a bare array, or an object with a "data" array.
func isCollectionBody(body []byte) bool {
	if len(body) == 0 {
		return false
	}

	if body[0] == '[' {
		return true
	}

	if body[0] != '{' {
		return false
	}

	var probe struct {
		Data json.RawMessage `json:"data"`
	}

	err := json.Unmarshal(body, &probe)
	if err != nil {
		return false
	}

	data := bytes.TrimSpace(probe.Data)

	return len(data) > 0 && data[0] == '['
}
