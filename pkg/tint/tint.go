// Package tint resolves themed asset identifiers into recolored assets.
//
// A Resolver classifies each asset with a RuleTable, resolves the theme
// attribute the rule names, and decorates the asset either with a shared
// color Filter (cached per color and blend mode in a FilterCache) or with a
// state dependent ColorStateList. Resolution never fails: if the theme cannot
// supply a color the asset is returned as loaded.
//
// Loading assets and resolving theme attributes are left to the AssetStore
// and Theme collaborators; see the imagestore, sdlasset and theme packages
// for concrete implementations.
package tint

import (
	"log/slog"
	"sync"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/tintkit/pkg/tint/constants"
	"github.com/BrandonKowalski/tintkit/pkg/tint/internal"
)

// Options configures a Resolver. The zero value uses the built-in rules, a
// fresh filter cache and the internal logger.
type Options struct {
	Rules  *RuleTable   // Asset classification; nil uses DefaultRules
	Cache  *FilterCache // Filter cache, usually shared by all resolvers; nil creates one
	Logger *slog.Logger // Debug output for skipped tints; nil uses the internal logger
}

// Resolver decorates assets according to a rule table and a theme.
// A Resolver is safe for concurrent use.
type Resolver struct {
	store  AssetStore
	attrs  *AttributeResolver
	rules  *RuleTable
	cache  *FilterCache
	logger *slog.Logger

	stateListMu sync.Mutex
	stateList   atomic.Pointer[ColorStateList]
}

// New creates a Resolver that loads assets from store and resolves tint
// colors against theme. Zero Options use the built-in rules and a filter
// cache of the default size.
func New(store AssetStore, theme Theme, options Options) *Resolver {
	r := &Resolver{
		store:  store,
		attrs:  NewAttributeResolver(theme),
		rules:  options.Rules,
		cache:  options.Cache,
		logger: options.Logger,
	}

	if r.rules == nil {
		r.rules = DefaultRules()
	}
	if r.cache == nil {
		r.cache = NewFilterCache()
	}
	if r.logger == nil {
		r.logger = internal.GetInternalLogger()
	}

	return r
}

// Get creates a throwaway Resolver and resolves a single asset.
// Prefer keeping a Resolver around; its state list is memoised per instance.
func Get(store AssetStore, theme Theme, cache *FilterCache, id constants.AssetID) (Asset, bool) {
	return New(store, theme, Options{Cache: cache}).TintedAsset(id)
}

// TintedAsset loads id and decorates it according to its policy.
// Returns false only when the store has no such asset.
func (r *Resolver) TintedAsset(id constants.AssetID) (Asset, bool) {
	asset, ok := r.store.Load(id)
	if !ok || asset == nil {
		r.logger.Debug("Asset not found", "asset", id)
		return nil, false
	}

	policy := r.rules.Classify(id)

	switch policy.Kind {
	case StateList:
		list, err := r.DefaultStateList()
		if err != nil {
			r.logger.Debug("Skipping state list tint", "asset", id, "error", err)
			return asset, true
		}
		asset.SetColorStateSource(list)

	case Container:
		return r.loadContainer(id, asset), true

	case SingleColor:
		r.applyFilter(id, asset, policy)
	}

	return asset, true
}

// TintAsset applies the single-color rule for id to an asset loaded elsewhere.
// It reports whether a filter was applied.
func (r *Resolver) TintAsset(id constants.AssetID, asset Asset) bool {
	policy := r.rules.Classify(id)
	if policy.Kind != SingleColor {
		return false
	}
	return r.applyFilter(id, asset, policy)
}

func (r *Resolver) applyFilter(id constants.AssetID, asset Asset, policy Policy) bool {
	col, err := r.attrs.Color(policy.Attribute)
	if err != nil {
		r.logger.Debug("Skipping tint", "asset", id, "error", err)
		return false
	}

	filter := r.cache.GetOrBuild(col, policy.Mode)
	asset.SetColorFilter(filter)

	r.logger.Debug("Tinted asset", "asset", id, "color", col.String(), "mode", policy.Mode.String())
	return true
}

func (r *Resolver) loadContainer(id constants.AssetID, raw Asset) Asset {
	containers, ok := r.store.(ContainerStore)
	if !ok {
		return raw
	}

	container, ok := containers.LoadContainer(id, r.TintedAsset)
	if !ok || container == nil {
		r.logger.Debug("Container could not be loaded, using raw asset", "asset", id)
		return raw
	}
	return container
}

// DefaultStateList returns the normal/activated/disabled state list for this
// resolver's theme. It is built on first use and reused afterwards; a failed
// build is not remembered, so the next call tries again.
func (r *Resolver) DefaultStateList() (*ColorStateList, error) {
	if list := r.stateList.Load(); list != nil {
		return list, nil
	}

	r.stateListMu.Lock()
	defer r.stateListMu.Unlock()

	if list := r.stateList.Load(); list != nil {
		return list, nil
	}

	normal, err := r.attrs.Color(constants.AttrColorControlNormal)
	if err != nil {
		return nil, err
	}
	activated, err := r.attrs.Color(constants.AttrColorControlActivated)
	if err != nil {
		return nil, err
	}
	disabled, err := r.attrs.DisabledColor(constants.AttrColorControlNormal)
	if err != nil {
		return nil, err
	}

	list := BuildDefaultStateList(normal, activated, disabled)
	r.stateList.Store(list)
	return list, nil
}

func (r *Resolver) Rules() *RuleTable {
	return r.rules
}

func (r *Resolver) Cache() *FilterCache {
	return r.cache
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before the first resolver is created to take effect.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetInternalLogLevel sets the minimum level for the resolver's own logging.
func SetInternalLogLevel(level slog.Level) {
	internal.SetInternalLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// CloseLogger closes the log file, if one was opened.
func CloseLogger() {
	internal.CloseLogger()
}
