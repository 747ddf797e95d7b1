package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
	m "shepherd.dev/pkg/shepherd/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "shepherd"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	verboseFlagName     = "verbose"
	logFlagName         = "log"
	reportDirFlagName   = "report-dir"
	runParallelFlagName = "parallel"
	algorithmFlagName   = "algorithm"
	minSizeFlagName     = "min-size"
	maxSizeFlagName     = "max-size"

	collectionsConfigKey        = "collections"
	hashAlgorithmKey            = "hash.algorithm"
	hashBufferSizeKey           = "hash.buffer_size"
	hashMinSizeKey              = "hash.min_size"
	hashMaxSizeKey              = "hash.max_size"
	hashLargeFileThresholdKey   = "hash.large_file_threshold"
	hashWorkersKey              = "hash.workers"
	hashSkipUniqueSizesKey      = "hash.skip_unique_sizes"
	scanSkipSoftLinksKey        = "scan.skip_soft_links"
	duplicatesSortHierarchyKey  = "duplicates.sort_hierarchy"
	defaultsCreateArchiveKey    = "defaults.create_archive_paths"
	defaultsCreateSourceKey     = "defaults.create_source_paths"
	defaultsParentFolderKey     = "defaults.parent_folder"
	systemRequiredMountsKey     = "system.required_mounts"
	systemRequireNetworkKey     = "system.require_network"
	runParallelConfigKey        = "run.parallel"
	reportDirConfigKey          = "report.dir"
	collectionPathConfigKeyBase = collectionsConfigKey + ".%s.%s"

	defaultRunParallel = 1
	defaultReportDir   = ""

	envPrefix = "SHEPHERD"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".shepherd.log"
	defaultLogLevel      = "info"
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	setConfigDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

func setConfigDefaults() {
	defaults := m.DefaultConfig()

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(collectionsConfigKey, map[string]any{})

	viper.SetDefault(hashAlgorithmKey, string(defaults.Hash.Algorithm))
	viper.SetDefault(hashBufferSizeKey, defaults.Hash.BufferSize)
	viper.SetDefault(hashMinSizeKey, defaults.Hash.MinSize)
	viper.SetDefault(hashMaxSizeKey, defaults.Hash.MaxSize)
	viper.SetDefault(hashLargeFileThresholdKey, defaults.Hash.LargeFileThreshold)
	viper.SetDefault(hashWorkersKey, defaults.Hash.Workers)
	viper.SetDefault(hashSkipUniqueSizesKey, defaults.Hash.SkipUniqueSizes)

	viper.SetDefault(scanSkipSoftLinksKey, defaults.SkipSoftLinks)
	viper.SetDefault(duplicatesSortHierarchyKey, defaults.SortDuplicateHierarchy)
	viper.SetDefault(defaultsCreateArchiveKey, defaults.CreateDefaultArchivePaths)
	viper.SetDefault(defaultsCreateSourceKey, defaults.CreateDefaultSourcePaths)
	viper.SetDefault(defaultsParentFolderKey, m.DefaultParentFolder)
	viper.SetDefault(systemRequiredMountsKey, map[string]string{})
	viper.SetDefault(systemRequireNetworkKey, defaults.RequireNetwork)

	viper.SetDefault(runParallelConfigKey, defaultRunParallel)
	viper.SetDefault(reportDirConfigKey, defaultReportDir)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)
}

// collectionConfig is the shape of one entry under the collections key.
type collectionConfig struct {
	Archive   string `mapstructure:"archive"`
	Source    string `mapstructure:"source"`
	Stage     string `mapstructure:"stage"`
	Graveyard string `mapstructure:"graveyard"`
	Unstage   string `mapstructure:"unstage"`
}

// loadConfig converts the viper state into a validated configuration.
func loadConfig() (m.Config, error) {
	config := m.DefaultConfig()

	algorithm, err := m.ParseHashAlgorithm(viper.GetString(hashAlgorithmKey))
	if err != nil {
		return config, err
	}

	config.Hash = m.HashOptions{
		Algorithm:          algorithm,
		BufferSize:         viper.GetInt(hashBufferSizeKey),
		MinSize:            viper.GetUint64(hashMinSizeKey),
		MaxSize:            viper.GetUint64(hashMaxSizeKey),
		LargeFileThreshold: viper.GetUint64(hashLargeFileThresholdKey),
		Workers:            viper.GetInt(hashWorkersKey),
		SkipUniqueSizes:    viper.GetBool(hashSkipUniqueSizesKey),
	}

	config.SkipSoftLinks = viper.GetBool(scanSkipSoftLinksKey)
	config.SortDuplicateHierarchy = viper.GetBool(duplicatesSortHierarchyKey)
	config.CreateDefaultArchivePaths = viper.GetBool(defaultsCreateArchiveKey)
	config.CreateDefaultSourcePaths = viper.GetBool(defaultsCreateSourceKey)
	config.RequiredMounts = viper.GetStringMapString(systemRequiredMountsKey)
	config.RequireNetwork = viper.GetBool(systemRequireNetworkKey)
	config.ReportDir = m.Path(viper.GetString(reportDirConfigKey))

	if home, err := os.UserHomeDir(); err == nil {
		config.DefaultRoot = m.Path(filepath.Join(home, viper.GetString(defaultsParentFolderKey)))
	}

	config.Collections, err = loadCollections()
	if err != nil {
		return config, err
	}

	if err := config.Validate(); err != nil {
		return config, err
	}

	return config, nil
}

func loadCollections() ([]m.Collection, error) {
	raw := make(map[string]collectionConfig)
	if err := viper.UnmarshalKey(collectionsConfigKey, &raw); err != nil {
		return nil, m.PreconditionError("load config", "", fmt.Errorf("%w: %w", m.ErrInvalidConfig, err))
	}

	collections := make([]m.Collection, 0, len(raw))
	for name, entry := range raw {
		collections = append(collections, m.Collection{
			Name:      name,
			Archive:   m.Path(entry.Archive),
			Source:    m.Path(entry.Source),
			Stage:     m.Path(entry.Stage),
			Graveyard: m.Path(entry.Graveyard),
			Unstage:   m.Path(entry.Unstage),
		})
	}

	sort.Slice(collections, func(i, j int) bool { return collections[i].Name < collections[j].Name })

	return collections, nil
}

// storeCollectionPaths writes resolved paths back so later readers of the configuration see them.
func storeCollectionPaths(c m.Collection) {
	kinds := []m.PathKind{m.PathArchive, m.PathSource, m.PathStage, m.PathGraveyard, m.PathUnstage}
	for _, kind := range kinds {
		viper.Set(fmt.Sprintf(collectionPathConfigKeyBase, c.Name, kind), string(c.PathFor(kind)))
	}
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
