package loader

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"

	"github.com/GriffinCanCode/RetreatCatalog/backend/internal/domain/catalog"
	"github.com/GriffinCanCode/RetreatCatalog/backend/internal/domain/catalog/seed"
)

// Options configures where the catalog is loaded from
type Options struct {
	// Glob selects definition files, e.g. "data/**/*.yaml". Empty loads the embedded seed.
	Glob string
	// ImageHosts restricts image URLs to these hosts. Empty disables the host check.
	ImageHosts []string
}

// Result describes a successful load
type Result struct {
	Store *catalog.Store
	Files []string
}

var strictJSON = sonic.Config{DisallowUnknownFields: true}.Froze()

// Load reads, decodes and validates the catalog definition and builds the Store
func Load(ctx context.Context, opts Options) (*Result, error) {
	files, err := resolveFiles(opts.Glob)
	if err != nil {
		return nil, err
	}

	var dtos []packageDTO
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var data []byte
		if opts.Glob == "" {
			data = seed.Packages
		} else {
			data, err = os.ReadFile(path)
			if err != nil {
				return nil, &catalog.Error{Op: "loader.read", Kind: catalog.KindNotFound, Path: path, Err: err}
			}
		}

		def, err := decode(path, data)
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, def.Packages...)
	}

	store, err := build(dtos, opts.ImageHosts)
	if err != nil {
		return nil, err
	}
	return &Result{Store: store, Files: files}, nil
}

// LoadBytes builds a Store from a single in-memory definition.
// name selects the decoder by extension.
func LoadBytes(name string, data []byte, imageHosts ...string) (*catalog.Store, error) {
	def, err := decode(name, data)
	if err != nil {
		return nil, err
	}
	return build(def.Packages, imageHosts)
}

func build(dtos []packageDTO, imageHosts []string) (*catalog.Store, error) {
	pkgs, err := mapPackages(dtos)
	if err != nil {
		return nil, &catalog.Error{Op: "loader.map", Kind: catalog.KindInvalidDefinition, Err: err}
	}

	var opts []catalog.Option
	if len(imageHosts) > 0 {
		opts = append(opts, catalog.WithImageHosts(imageHosts...))
	}
	return catalog.New(pkgs, opts...)
}

// decode parses a definition file, choosing the format from its extension
func decode(path string, data []byte) (*definitionFile, error) {
	var def definitionFile
	var err error

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.UnmarshalWithOptions(data, &def, yaml.DisallowUnknownField())
	case ".toml":
		err = toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(&def)
	case ".json":
		err = strictJSON.Unmarshal(data, &def)
	default:
		err = fmt.Errorf("unsupported definition format %q", ext)
	}

	if err != nil {
		return nil, &catalog.Error{Op: "loader.decode", Kind: catalog.KindInvalidDefinition, Path: path, Err: err}
	}
	return &def, nil
}

// resolveFiles expands the glob into a sorted file list.
// An empty glob resolves to the embedded seed.
func resolveFiles(glob string) ([]string, error) {
	if glob == "" {
		return []string{seed.Name}, nil
	}

	matches, err := doublestar.FilepathGlob(glob, doublestar.WithFilesOnly())
	if err != nil {
		return nil, &catalog.Error{Op: "loader.glob", Kind: catalog.KindInvalidDefinition, Path: glob, Err: err}
	}
	if len(matches) == 0 {
		return nil, &catalog.Error{Op: "loader.glob", Kind: catalog.KindNotFound, Path: glob, Err: fmt.Errorf("no definition files matched")}
	}

	sort.Strings(matches)
	return matches, nil
}
