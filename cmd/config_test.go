package cmd

import (
	"log/slog"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "shepherd.dev/pkg/shepherd/internal/model"
)

// resetConfig drops overrides and flag bindings made by a test.
func resetConfig(t *testing.T) {
	t.Helper()

	t.Cleanup(func() {
		viper.Reset()
		setConfigDefaults()
	})
}

// withCollections configures collections for the duration of a test.
func withCollections(t *testing.T, collections map[string]any) {
	t.Helper()

	resetConfig(t)
	viper.Set(collectionsConfigKey, collections)
}

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "shepherd", configBaseName)
	assert.Equal(t, "shepherd.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "report-dir", reportDirFlagName)
	assert.Equal(t, "parallel", runParallelFlagName)
	assert.Equal(t, "run.parallel", runParallelConfigKey)
	assert.Equal(t, "report.dir", reportDirConfigKey)
	assert.Equal(t, 1, defaultRunParallel)
	assert.Equal(t, "SHEPHERD", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestLoadConfig_Defaults(t *testing.T) {
	withCollections(t, map[string]any{})

	config, err := loadConfig()
	require.NoError(t, err)

	assert.Equal(t, m.HashMD5, config.Hash.Algorithm)
	assert.Equal(t, m.DefaultBufferSize, config.Hash.BufferSize)
	assert.Equal(t, uint64(m.DefaultLargeFileThreshold), config.Hash.LargeFileThreshold)
	assert.True(t, config.Hash.SkipUniqueSizes)
	assert.True(t, config.SkipSoftLinks)
	assert.True(t, config.SortDuplicateHierarchy)
	assert.Contains(t, string(config.DefaultRoot), m.DefaultParentFolder)
	assert.Empty(t, config.Collections)
}

func TestLoadConfig_Collections(t *testing.T) {
	withCollections(t, map[string]any{
		"photos": map[string]any{"archive": "/data/photos", "unstage": "/data/unstage"},
		"music":  map[string]any{"archive": "/data/music"},
	})

	config, err := loadConfig()
	require.NoError(t, err)

	require.Len(t, config.Collections, 2)
	assert.Equal(t, "music", config.Collections[0].Name)
	assert.Equal(t, m.Collection{Name: "photos", Archive: "/data/photos", Unstage: "/data/unstage"}, config.Collections[1])
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	withCollections(t, map[string]any{})

	viper.Set(hashAlgorithmKey, "crc32")

	_, err := loadConfig()
	assert.ErrorIs(t, err, m.ErrUnknownHashAlgorithm)

	viper.Set(hashAlgorithmKey, string(m.HashSHA1))
	viper.Set(hashBufferSizeKey, 0)

	_, err = loadConfig()
	assert.ErrorIs(t, err, m.ErrInvalidConfig)
}

func TestStoreCollectionPaths(t *testing.T) {
	withCollections(t, map[string]any{"photos": map[string]any{}})

	storeCollectionPaths(m.Collection{Name: "photos", Archive: "/resolved/archive", Stage: "/resolved/stage"})

	assert.Equal(t, "/resolved/archive", viper.GetString("collections.photos.archive"))
	assert.Equal(t, "/resolved/stage", viper.GetString("collections.photos.stage"))
}

func TestSelectCollections(t *testing.T) {
	config := m.DefaultConfig()

	_, err := selectCollections(config, nil)
	assert.ErrorIs(t, err, m.ErrInvalidConfig)

	config.Collections = []m.Collection{{Name: "music"}, {Name: "photos"}}

	all, err := selectCollections(config, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	selected, err := selectCollections(config, []string{"photos"})
	require.NoError(t, err)
	assert.Equal(t, []m.Collection{{Name: "photos"}}, selected)

	selected, err = selectCollections(config, []string{"Photos"})
	require.NoError(t, err)
	assert.Equal(t, []m.Collection{{Name: "photos"}}, selected)

	_, err = selectCollections(config, []string{"books"})
	assert.ErrorIs(t, err, m.ErrInvalidConfig)
}

func TestParseSlogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":        slog.LevelWarn,
		"debug":   slog.LevelDebug,
		" INFO ":  slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"-4":      slog.LevelDebug,
		"loud":    slog.LevelWarn,
	}

	for value, want := range tests {
		assert.Equal(t, want, parseSlogLevel(value, slog.LevelWarn), value)
	}
}
