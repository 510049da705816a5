package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reflection-generator/internal/catalog"
	"reflection-generator/internal/descriptor"
	"reflection-generator/internal/settings"
)

const testCatalog = `
types:
  - name: Player
    namespace: Game
    base: Game.Actor
    fields:
      - {name: _hp, type: System.Int32}
      - {name: _mana, type: System.Int32}
      - {name: Name, type: System.String, visibility: public}
  - name: Actor
    namespace: Game
    base: UnityEngine.MonoBehaviour
    fields:
      - {name: _speed, type: System.Single}
  - name: Item
    namespace: Game
`

type fixture struct {
	ctrl      *Controller
	out       *bytes.Buffer
	catalog   string
	configDir string
	outputDir string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	root := t.TempDir()
	catalogPath := filepath.Join(root, "catalog.yaml")
	require.NoError(t, os.WriteFile(catalogPath, []byte(testCatalog), 0o644))

	out := &bytes.Buffer{}
	ctrl := NewController(&Flags{ConfigDir: filepath.Join(root, settings.ResourcesDirName)}, zerolog.Nop())
	ctrl.Out = out
	ctrl.SelectFields = func(string, []descriptor.Field) ([]descriptor.Field, error) {
		t.Fatal("unexpected prompt")

		return nil, nil
	}

	return &fixture{
		ctrl:      ctrl,
		out:       out,
		catalog:   catalogPath,
		configDir: ctrl.Flags.ConfigDir,
		outputDir: filepath.Join(root, "Wrappers"),
	}
}

func (f *fixture) selection(fields ...string) Selection {
	return Selection{
		CatalogPath: f.catalog,
		TypeName:    "Player",
		Fields:      fields,
		Filter:      catalog.DefaultFilter(),
	}
}

func (f *fixture) overrides() ConfigFlags {
	return ConfigFlags{OutputDirectory: &f.outputDir}
}

func TestConfigFlags_Apply(t *testing.T) {
	rename := false
	prefix := "Read"
	cfg := settings.Default()

	ConfigFlags{RenameFields: &rename, GetPrefix: &prefix}.Apply(&cfg)

	assert.False(t, cfg.RenameFields)
	assert.Equal(t, "Read", cfg.GetPrefix)
	assert.Equal(t, "Set", cfg.SetPrefix)
	assert.Equal(t, settings.DefaultOutputDir, cfg.OutputDirectory)
}

func TestGenerate_NamedFields(t *testing.T) {
	f := newFixture(t)

	path, err := f.ctrl.Generate(context.Background(), f.selection("_mana"), f.overrides())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(f.outputDir, "PlayerExtensions.cs"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "GetMana(this Player target)")
	assert.NotContains(t, string(data), "GetHp")

	assert.Equal(t, "Type Player wrapper generated at "+f.outputDir+".\n", f.out.String())
}

func TestGenerate_All(t *testing.T) {
	f := newFixture(t)

	sel := f.selection()
	sel.All = true

	path, err := f.ctrl.Generate(context.Background(), sel, f.overrides())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	for _, getter := range []string{"GetHp", "GetMana", "GetName"} {
		assert.Contains(t, string(data), getter+"(this Player target)")
	}

	assert.NotContains(t, string(data), "GetSpeed")
}

func TestGenerate_Interactive(t *testing.T) {
	f := newFixture(t)

	var offered []string

	f.ctrl.SelectFields = func(typeName string, fields []descriptor.Field) ([]descriptor.Field, error) {
		assert.Equal(t, "Game.Player", typeName)

		for _, fd := range fields {
			offered = append(offered, fd.Name)
		}

		return fields[1:2], nil
	}

	sel := f.selection()
	sel.Interactive = true

	path, err := f.ctrl.Generate(context.Background(), sel, f.overrides())
	require.NoError(t, err)
	assert.Equal(t, []string{"_hp", "_mana", "Name"}, offered)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "SetMana(this Player target, System.Int32 value)")
}

func TestGenerate_Errors(t *testing.T) {
	f := newFixture(t)

	_, err := f.ctrl.Generate(context.Background(), f.selection(), f.overrides())
	require.ErrorIs(t, err, ErrNoSelection)

	_, err = f.ctrl.Generate(context.Background(), f.selection("_speed"), f.overrides())
	require.ErrorIs(t, err, catalog.ErrUnknownField)

	sel := f.selection("_hp")
	sel.CatalogPath = ""
	_, err = f.ctrl.Generate(context.Background(), sel, f.overrides())
	require.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = f.ctrl.Generate(ctx, f.selection("_hp"), f.overrides())
	require.ErrorIs(t, err, context.Canceled)

	_, statErr := os.Stat(f.outputDir)
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestGenerate_UsesSavedSettings(t *testing.T) {
	f := newFixture(t)

	cfg := settings.Default()
	cfg.GetPrefix = "Peek"
	cfg.OutputDirectory = f.outputDir
	_, err := settings.Save(f.configDir, cfg)
	require.NoError(t, err)

	path, err := f.ctrl.Generate(context.Background(), f.selection("_hp"), ConfigFlags{})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "PeekHp(this Player target)")
}

func TestTypes(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.ctrl.Types(context.Background(), f.catalog))
	assert.Equal(t,
		"Game.Player : Game.Actor : UnityEngine.MonoBehaviour (external) [4 fields]\n"+
			"Game.Actor : UnityEngine.MonoBehaviour (external) [1 fields]\n"+
			"Game.Item [0 fields]\n",
		f.out.String())
}

func TestFields(t *testing.T) {
	f := newFixture(t)

	sel := f.selection()
	sel.Filter = catalog.Filter{ShowNonPublic: true, DeclaringTypes: []string{"Game.Player", "Game.Actor"}}

	require.NoError(t, f.ctrl.Fields(context.Background(), sel))
	assert.Equal(t,
		"_hp (System.Int32, nonpublic, instance, Game.Player)\n"+
			"_mana (System.Int32, nonpublic, instance, Game.Player)\n"+
			"_speed (System.Single, nonpublic, instance, Game.Actor)\n",
		f.out.String())
}

func TestSaveConfig(t *testing.T) {
	f := newFixture(t)

	postfix := "Field"
	require.NoError(t, f.ctrl.SaveConfig(context.Background(), ConfigFlags{GetPostfix: &postfix}))
	assert.Contains(t, f.out.String(), "Generator config saved to ")

	cfg, err := settings.Load(f.configDir)
	require.NoError(t, err)
	assert.Equal(t, "Field", cfg.GetPostfix)

	f.out.Reset()
	require.NoError(t, f.ctrl.ShowConfig(context.Background()))
	assert.Contains(t, f.out.String(), "get_postfix: Field")
	assert.Contains(t, f.out.String(), "rename_fields: true")
}

func TestSaveConfig_Refused(t *testing.T) {
	f := newFixture(t)

	var logs bytes.Buffer
	f.ctrl.Logger = zerolog.New(&logs)

	empty := ""
	err := f.ctrl.SaveConfig(context.Background(), ConfigFlags{GetPrefix: &empty, GetPostfix: &empty})
	require.ErrorIs(t, err, settings.ErrInvalidConfig)
	assert.Contains(t, logs.String(), `"level":"warn"`)
	assert.Contains(t, logs.String(), `"code":"empty-get-affixes"`)
	assert.Empty(t, f.out.String())

	f.ctrl.Flags.ConfigDir = filepath.Join(t.TempDir(), "Config")
	err = f.ctrl.SaveConfig(context.Background(), ConfigFlags{})
	require.ErrorIs(t, err, settings.ErrInvalidConfig)

	_, statErr := os.Stat(settings.Path(f.ctrl.Flags.ConfigDir))
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestWatch_GeneratesAndStopsOnCancel(t *testing.T) {
	f := newFixture(t)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- f.ctrl.Watch(ctx, f.selection("_hp"), f.overrides())
	}()

	target := filepath.Join(f.outputDir, "PlayerExtensions.cs")
	require.Eventually(t, func() bool {
		_, err := os.Stat(target)

		return err == nil
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}
