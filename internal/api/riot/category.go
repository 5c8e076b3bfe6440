package riot

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

// Category is one versioned section of the API: a fixed base URL plus a table
// of named endpoint templates relative to it.
type Category struct {
	client    *Client
	version   string
	base      string
	endpoints map[string]string
}

func NewCategory(client *Client, version string, endpoints map[string]string) *Category {
	return &Category{
		client:    client,
		version:   version,
		base:      client.BaseURL(version),
		endpoints: maps.Clone(endpoints),
	}
}

func (c *Category) Base() string {
	return c.base
}

func (c *Category) Version() string {
	return c.version
}

// Endpoints returns the endpoint names in sorted order.
func (c *Category) Endpoints() []string {
	names := make([]string, 0, len(c.endpoints))
	for name := range c.endpoints {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Template returns the full URL template of a named endpoint.
func (c *Category) Template(name string) (string, error) {
	path, ok := c.endpoints[name]
	if !ok {
		return "", fmt.Errorf("%w: %s%s", ErrUnknownEndpoint, c.version, name)
	}
	return c.base + path, nil
}

// URL expands a named endpoint. Placeholders in the version segment are
// expanded too.
func (c *Category) URL(name string, params Params) (string, error) {
	template, err := c.Template(name)
	if err != nil {
		return "", err
	}
	return Expand(template, params)
}

func (c *Category) Fetch(ctx context.Context, name string, params Params) (json.RawMessage, error) {
	endpoint, err := c.URL(name, params)
	if err != nil {
		return nil, err
	}
	return c.client.Get(ctx, endpoint)
}

// FetchPath requests a method path that is not in the endpoint table.
func (c *Category) FetchPath(ctx context.Context, methodPath string, params Params) (json.RawMessage, error) {
	endpoint, err := Expand(c.base+methodPath, params)
	if err != nil {
		return nil, err
	}
	return c.client.Get(ctx, endpoint)
}
