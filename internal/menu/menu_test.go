// Copyright (c) 2025, Kamaran Layne <kamaran@layne.dev>
// See LICENSE for licensing information

package menu

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomTree(t *testing.T) {
	tree, err := Custom()
	require.NoError(t, err)

	assert.Equal(t, []string{
		IDProjectNew, IDProjectOpen, IDFileOpen, IDFileSave, IDFileSaveAs, IDUndo, IDRedo,
	}, tree.IDs())

	menus := tree.Menus()
	require.Len(t, menus, 2)
	assert.Equal(t, "File", menus[0].Label)
	assert.Equal(t, "Edit", menus[1].Label)

	file := menus[0].Children
	require.Len(t, file, 7)
	assert.Equal(t, KindSubmenu, file[0].Kind)
	assert.Equal(t, "Project", file[0].Label)
	assert.Equal(t, KindSeparator, file[1].Kind)
	assert.Equal(t, KindSeparator, file[5].Kind)
	assert.Equal(t, KindNative, file[6].Kind)
	assert.Equal(t, Quit, file[6].Native)

	edit := menus[1].Children
	require.Len(t, edit, 6)
	assert.Equal(t, []NativeAction{Cut, Copy, Paste}, []NativeAction{edit[3].Native, edit[4].Native, edit[5].Native})
}

func TestCustomAccelerators(t *testing.T) {
	tree, err := Custom()
	require.NoError(t, err)

	for id, want := range map[string]string{
		IDProjectNew:  "Alt+C",
		IDProjectOpen: "Alt+P",
		IDFileOpen:    "Ctrl+N",
		IDFileSave:    "Ctrl+S",
		IDFileSaveAs:  "Ctrl+Shift+S",
		IDUndo:        "Ctrl+Z",
		IDRedo:        "Ctrl+Y",
	} {
		n, ok := tree.Find(id)
		require.True(t, ok, id)
		assert.Equal(t, want, n.Accelerator, id)
		_, err := ParseAccelerator(n.Accelerator)
		assert.NoError(t, err, id)
	}
}

func TestPlatformDefault(t *testing.T) {
	mac, err := PlatformDefault("Tiptapri", "darwin")
	require.NoError(t, err)
	assert.Empty(t, mac.IDs())
	menus := mac.Menus()
	require.Len(t, menus, 5)
	assert.Equal(t, "Tiptapri", menus[0].Label)
	assert.Equal(t, "About Tiptapri", menus[0].Children[0].Label)
	assert.Equal(t, "Quit Tiptapri", menus[0].Children[len(menus[0].Children)-1].Label)

	linux, err := PlatformDefault("Tiptapri", "linux")
	require.NoError(t, err)
	assert.Equal(t, 3, linux.Len())
	assert.Empty(t, linux.IDs())
}

func TestBuild(t *testing.T) {
	custom, err := Build(VariantCustom, "Tiptapri", "linux")
	require.NoError(t, err)
	assert.NotEmpty(t, custom.IDs())

	def, err := Build(VariantDefault, "Tiptapri", "windows")
	require.NoError(t, err)
	assert.Empty(t, def.IDs())

	_, err = Build(Variant("both"), "Tiptapri", "linux")
	assert.Error(t, err)
}

func TestParseVariant(t *testing.T) {
	v, err := ParseVariant(" Custom ")
	require.NoError(t, err)
	assert.Equal(t, VariantCustom, v)

	_, err = ParseVariant("mixed")
	assert.Error(t, err)
}

func TestTreeIsImmutable(t *testing.T) {
	tree, err := Custom()
	require.NoError(t, err)

	menus := tree.Menus()
	menus[0].Children[2].ID = "hijacked"
	menus[0].Label = "Nope"

	_, ok := tree.Find(IDFileOpen)
	assert.True(t, ok)
	assert.Equal(t, "File", tree.Menus()[0].Label)
}

func TestNewTreeRejectsNonSubmenuRoot(t *testing.T) {
	_, err := NewTree(NewItem("a", "A"))
	assert.Error(t, err)
}

func TestValidateDuplicates(t *testing.T) {
	_, err := NewTree(
		NewSubmenu("One", NewItem("same", "A")),
		NewSubmenu("Two", NewSubmenu("Nested", NewItem("same", "B"))),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateID)
	assert.Contains(t, err.Error(), "One > A")
	assert.Contains(t, err.Error(), "Two > Nested > B")

	_, err = NewTree(NewSubmenu("One", NewItem("", "Nameless")))
	assert.ErrorIs(t, err, ErrEmptyID)
}

// randomNodes builds an arbitrary valid subtree, drawing identifiers from next.
func randomNodes(r *rand.Rand, depth int, next func() string) []Node {
	n := r.Intn(5)
	nodes := make([]Node, 0, n)
	for i := 0; i < n; i++ {
		switch k := r.Intn(4); {
		case k == 0 && depth > 0:
			nodes = append(nodes, NewSubmenu(fmt.Sprintf("sub%d", i), randomNodes(r, depth-1, next)...))
		case k == 1:
			nodes = append(nodes, NewSeparator())
		case k == 2:
			nodes = append(nodes, NewNative(NativeAction(1+r.Intn(int(EnterFullScreen)))))
		default:
			nodes = append(nodes, NewItem(next(), "item").WithAccelerator("Ctrl+K"))
		}
	}
	return nodes
}

func TestGeneratedTreesHaveUniqueIDs(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for round := 0; round < 200; round++ {
		seq := 0
		next := func() string { seq++; return fmt.Sprintf("id-%d", seq) }

		var roots []Node
		for i := 0; i < 1+r.Intn(4); i++ {
			roots = append(roots, NewSubmenu(fmt.Sprintf("menu%d", i), randomNodes(r, 3, next)...))
		}

		tree, err := NewTree(roots...)
		require.NoError(t, err, "round %d", round)

		ids := tree.IDs()
		seen := make(map[string]bool, len(ids))
		for _, id := range ids {
			require.False(t, seen[id], "round %d: %s repeated", round, id)
			seen[id] = true
		}
		assert.Len(t, ids, seq, "round %d", round)
	}
}

func TestGeneratedTreesRejectInjectedDuplicate(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for round := 0; round < 100; round++ {
		seq := 0
		next := func() string { seq++; return fmt.Sprintf("id-%d", seq) }
		nodes := randomNodes(r, 2, next)
		nodes = append(nodes, NewItem("dup", "first"), NewSubmenu("inner", NewItem("dup", "second")))

		_, err := NewTree(NewSubmenu("root", nodes...))
		assert.ErrorIs(t, err, ErrDuplicateID, "round %d", round)
	}
}

func TestParseAccelerator(t *testing.T) {
	a, err := ParseAccelerator("Ctrl + Shift + S")
	require.NoError(t, err)
	assert.True(t, a.Has(ModCtrl))
	assert.True(t, a.Has(ModShift))
	assert.False(t, a.Has(ModAlt))
	assert.Equal(t, "S", a.Key)
	assert.Equal(t, "Ctrl+Shift+S", a.String())

	a, err = ParseAccelerator("alt+c")
	require.NoError(t, err)
	assert.Equal(t, Accelerator{Mods: ModAlt, Key: "C"}, a)

	a, err = ParseAccelerator("CmdOrCtrl+N")
	require.NoError(t, err)
	assert.Equal(t, Accelerator{Mods: ModSuper, Key: "N"}, a.Resolve("darwin"))
	assert.Equal(t, Accelerator{Mods: ModCtrl, Key: "N"}, a.Resolve("windows"))

	for _, bad := range []string{"", "Ctrl+", "Hyper+X", "Ctrl++S"} {
		_, err := ParseAccelerator(bad)
		assert.Error(t, err, bad)
	}
}
