// Package assetpath derives the expected preview image path for a canonical
// mat configuration. Import and repair tooling uses it to validate stored
// image paths and to fill them in for new records; the resolver does not.
package assetpath

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spherical-ai/spherical/libs/mat-configurator/internal/vocabulary"
)

// DefaultAssetRoot is the asset directory relative to the web root.
const DefaultAssetRoot = "konfigurator/dywaniki"

// ErrUnmappedToken is returned when a group or token has no entry in the layout tables.
var ErrUnmappedToken = errors.New("unmapped token")

// Generator composes asset paths from the per-group layout tables.
type Generator struct {
	assetRoot string
	layouts   map[vocabulary.Group]layout
}

// NewGenerator creates a generator rooted at assetRoot. Leading and trailing
// slashes are ignored; an empty root selects DefaultAssetRoot.
func NewGenerator(assetRoot string) *Generator {
	root := strings.Trim(assetRoot, "/")
	if root == "" {
		root = DefaultAssetRoot
	}
	return &Generator{
		assetRoot: root,
		layouts:   buildLayouts(),
	}
}

// AssetRoot returns the configured asset root without slashes.
func (g *Generator) AssetRoot() string {
	return g.assetRoot
}

// Groups returns the groups that have a layout, in stable order.
func (g *Generator) Groups() []vocabulary.Group {
	groups := make([]vocabulary.Group, 0, len(g.layouts))
	for grp := range g.layouts {
		groups = append(groups, grp)
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Name() < groups[j].Name()
	})
	return groups
}

// Generate returns the expected asset path for cfg, e.g.
// /konfigurator/dywaniki/3d/romby/bordowe/5os-3d-diamonds-black-maroon.webp.
func (g *Generator) Generate(cfg vocabulary.CanonicalConfiguration) (string, error) {
	l, ok := g.layouts[cfg.Group()]
	if !ok {
		return "", fmt.Errorf("%w: group %s", ErrUnmappedToken, cfg.Group().Name())
	}

	materialFile, ok := l.lookupMaterial(cfg.MaterialColor)
	if !ok {
		return "", fmt.Errorf("%w: material color %q in group %s", ErrUnmappedToken, cfg.MaterialColor, cfg.Group().Name())
	}

	class, ok := vocabulary.BorderClassOf(cfg.BorderColor)
	if !ok {
		return "", fmt.Errorf("%w: border color %q", ErrUnmappedToken, cfg.BorderColor)
	}
	borderDir, ok := l.borderDirs[class.Key]
	if !ok {
		return "", fmt.Errorf("%w: border directory for %q in group %s", ErrUnmappedToken, class.Key, cfg.Group().Name())
	}
	borderFile, ok := l.borderFiles[class.Key]
	if !ok {
		return "", fmt.Errorf("%w: border file token for %q in group %s", ErrUnmappedToken, class.Key, cfg.Group().Name())
	}

	var b strings.Builder
	b.WriteString("/")
	b.WriteString(g.assetRoot)
	b.WriteString("/")
	b.WriteString(l.matTypeDir)
	b.WriteString("/")
	b.WriteString(l.structureDir)
	b.WriteString("/")
	b.WriteString(borderDir)
	b.WriteString("/")
	b.WriteString(l.productLine)
	b.WriteString("-")
	b.WriteString(l.structureLabel)
	b.WriteString("-")
	b.WriteString(materialFile)
	b.WriteString("-")
	b.WriteString(borderFile)
	b.WriteString(".")
	b.WriteString(l.ext)
	return b.String(), nil
}

func (l layout) lookupMaterial(token string) (string, bool) {
	if file, ok := l.materialFiles[token]; ok {
		return file, true
	}
	if !l.materialClasses {
		return "", false
	}
	class, ok := vocabulary.MaterialClassOf(token)
	if !ok {
		return "", false
	}
	file, ok := l.materialFiles[class.Polish]
	return file, ok
}

// Mismatch describes a stored image path that differs from the generated one.
type Mismatch struct {
	Configuration vocabulary.CanonicalConfiguration `json:"configuration"`
	Stored        string                            `json:"stored"`
	Expected      string                            `json:"expected"`
}

// Check compares a stored image path with the generated one. It returns nil
// when they agree.
func (g *Generator) Check(cfg vocabulary.CanonicalConfiguration, storedPath string) (*Mismatch, error) {
	expected, err := g.Generate(cfg)
	if err != nil {
		return nil, err
	}
	if expected == storedPath {
		return nil, nil
	}
	return &Mismatch{Configuration: cfg, Stored: storedPath, Expected: expected}, nil
}
