package file

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bnema/companion/internal/domain"
	"github.com/bnema/companion/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

//go:embed defaults/*.toml
var defaultsFS embed.FS

type Loader struct {
	paths  []string
	logger *zap.Logger
}

var _ ports.BundleSource = (*Loader)(nil)

type Option func(*Loader)

func WithLogger(logger *zap.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

func NewLoader(paths []string, opts ...Option) *Loader {
	l := &Loader{logger: zap.NewNop()}
	for _, p := range paths {
		if strings.TrimSpace(p) != "" {
			l.paths = append(l.paths, filepath.Clean(p))
		}
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Loader) Load(ctx context.Context) (domain.Bundle, error) {
	if err := ctx.Err(); err != nil {
		return domain.Bundle{}, err
	}

	bundle, err := LoadDefaults()
	if err != nil {
		return domain.Bundle{}, err
	}

	for _, p := range l.paths {
		if err := ctx.Err(); err != nil {
			return domain.Bundle{}, err
		}

		files, err := bundleFiles(p)
		if err != nil {
			return domain.Bundle{}, err
		}
		for _, f := range files {
			overlay, err := ReadFile(f)
			if err != nil {
				return domain.Bundle{}, err
			}
			bundle.Overlay(overlay)
			l.logger.Debug("bundle overlay applied", zap.String("path", f), zap.Int("locales", len(overlay.Locales)))
		}
	}

	if err := bundle.Validate(); err != nil {
		return domain.Bundle{}, err
	}

	resolved, err := bundle.ResolveInheritance()
	if err != nil {
		return domain.Bundle{}, err
	}

	l.logger.Info("locale bundle loaded", zap.Int("locales", len(resolved.Locales)), zap.Int("overlays", len(l.paths)))
	return resolved, nil
}

func LoadDefaults() (domain.Bundle, error) {
	entries, err := fs.Glob(defaultsFS, "defaults/*.toml")
	if err != nil {
		return domain.Bundle{}, fmt.Errorf("list default bundles: %w", err)
	}
	sort.Strings(entries)

	var bundle domain.Bundle
	for _, name := range entries {
		data, err := defaultsFS.ReadFile(name)
		if err != nil {
			return domain.Bundle{}, fmt.Errorf("read default bundle %s: %w", name, err)
		}
		decoded, err := Decode(data, FormatTOML)
		if err != nil {
			return domain.Bundle{}, fmt.Errorf("decode default bundle %s: %w", path.Base(name), err)
		}
		bundle.Overlay(decoded)
	}

	return orderLocales(bundle), nil
}

func ReadFile(p string) (domain.Bundle, error) {
	format, err := formatFor(p)
	if err != nil {
		return domain.Bundle{}, err
	}

	data, err := os.ReadFile(p)
	if err != nil {
		return domain.Bundle{}, fmt.Errorf("read bundle file: %w", err)
	}

	bundle, err := Decode(data, format)
	if err != nil {
		return domain.Bundle{}, fmt.Errorf("decode bundle file %s: %w", p, err)
	}

	return bundle, nil
}

func Decode(data []byte, format Format) (domain.Bundle, error) {
	var file fileSchema
	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&file); err != nil {
			return domain.Bundle{}, err
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
			return domain.Bundle{}, err
		}
	default:
		return domain.Bundle{}, fmt.Errorf("unsupported bundle format %q", format)
	}

	if err := file.validateVersion(); err != nil {
		return domain.Bundle{}, err
	}
	file.applyDefaults()

	bundle := domain.Bundle{Locales: make([]domain.LocaleBundle, 0, len(file.Locales))}
	for _, entry := range file.Locales {
		bundle.Locales = append(bundle.Locales, fromSchema(entry))
	}

	return bundle, nil
}

func Encode(w io.Writer, bundle domain.Bundle, format Format) error {
	file := fileSchema{Version: currentSchemaVersion}
	for _, entry := range bundle.Locales {
		file.Locales = append(file.Locales, toSchema(entry))
	}

	switch format {
	case FormatTOML:
		enc := toml.NewEncoder(w)
		enc.SetIndentTables(true)
		if err := enc.Encode(file); err != nil {
			return fmt.Errorf("encode bundle as toml: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(file); err != nil {
			return fmt.Errorf("encode bundle as yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("flush yaml encoder: %w", err)
		}
	default:
		return fmt.Errorf("unsupported bundle format %q", format)
	}

	return nil
}

func ParseFormat(raw string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported bundle format %q", raw)
	}
}

func formatFor(p string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(p), ".")
	if ext == "" {
		return "", fmt.Errorf("bundle file %s has no extension", p)
	}
	return ParseFormat(ext)
}

func bundleFiles(p string) ([]string, error) {
	info, err := os.Stat(p)
	if err != nil {
		return nil, fmt.Errorf("stat bundle path: %w", err)
	}
	if !info.IsDir() {
		return []string{p}, nil
	}

	entries, err := os.ReadDir(p)
	if err != nil {
		return nil, fmt.Errorf("read bundle directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if _, err := formatFor(entry.Name()); err != nil {
			continue
		}
		files = append(files, filepath.Join(p, entry.Name()))
	}
	sort.Strings(files)

	return files, nil
}

func orderLocales(b domain.Bundle) domain.Bundle {
	rank := make(map[domain.Locale]int, len(domain.SupportedLocales))
	for i, locale := range domain.SupportedLocales {
		rank[locale] = i
	}

	sort.SliceStable(b.Locales, func(i, j int) bool {
		ri, iok := rank[b.Locales[i].Locale]
		rj, jok := rank[b.Locales[j].Locale]
		if !iok {
			ri = len(rank)
		}
		if !jok {
			rj = len(rank)
		}
		return ri < rj
	})

	return b
}
