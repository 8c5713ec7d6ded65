// Package mocks provides testify mocks for the tracker's collaborator
// interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ocampo/deskplan/render"
)

// KV is a mock for kv.Store.
type KV struct {
	mock.Mock
}

func (m *KV) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *KV) Set(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *KV) Close() error {
	args := m.Called()
	return args.Error(0)
}

// Renderer is a mock for render.Renderer.
type Renderer struct {
	mock.Mock
}

func (m *Renderer) Display(v render.View) {
	m.Called(v)
}
