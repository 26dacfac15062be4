// Copyright (c) 2025, Kamaran Layne <kamaran@layne.dev>
// See LICENSE for licensing information

package logtarget

import (
	"testing"

	"github.com/kamaranl/tiptapri/internal/profile"
	"github.com/stretchr/testify/assert"
)

func TestSelect(t *testing.T) {
	debug := Select(profile.Debug)
	assert.Equal(t, []Kind{Stdout, Webview}, debug.Kinds())
	assert.False(t, debug.Has(LogDir))

	release := Select(profile.Release)
	assert.Equal(t, []Kind{Stdout, LogDir}, release.Kinds())
	assert.False(t, release.Has(Webview))
}

func TestSelectIsPure(t *testing.T) {
	for i := 0; i < 100; i++ {
		assert.Equal(t, Select(profile.Debug), Select(profile.Debug))
		assert.Equal(t, Select(profile.Release), Select(profile.Release))
	}
	assert.NotEqual(t, Select(profile.Debug), Select(profile.Release))
}

func TestSetString(t *testing.T) {
	assert.Equal(t, "{stdout,webview}", Select(profile.Debug).String())
	assert.Equal(t, "{stdout,logdir}", Select(profile.Release).String())
	assert.Equal(t, "{}", Set{}.String())
}
