// Package loader builds the catalog Store from definition files.
//
// Definitions are decoded by extension:
//   - .yaml, .yml: goccy/go-yaml
//   - .toml: pelletier/go-toml/v2
//   - .json: bytedance/sonic
//
// All decoders reject unknown fields. When Options.Glob is empty the
// embedded seed catalog is used; otherwise every file matching the
// doublestar pattern is loaded in lexical path order and their packages are
// concatenated in that order.
//
// Example Usage:
//
//	res, err := loader.Load(ctx, loader.Options{Glob: "catalog/**/*.yaml"})
//	store := res.Store
package loader
