// Copyright (c) 2025, Kamaran Layne <kamaran@layne.dev>
// See LICENSE for licensing information

package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stub struct {
	label string
	open  bool
}

func (s *stub) Label() string        { return s.label }
func (s *stub) OpenDevtools()        { s.open = true }
func (s *stub) CloseDevtools()       { s.open = false }
func (s *stub) IsDevtoolsOpen() bool { return s.open }

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	_, err := r.Main()
	assert.ErrorIs(t, err, ErrNoMainWindow)

	main := &stub{label: MainLabel}
	require.NoError(t, r.Add(main))
	require.NoError(t, r.Add(&stub{label: "diagnostics"}))
	assert.Error(t, r.Add(&stub{label: MainLabel}))
	assert.Error(t, r.Add(nil))

	got, err := r.Main()
	require.NoError(t, err)
	assert.Same(t, main, got)
	assert.Equal(t, []string{"diagnostics", MainLabel}, r.Labels())
}
