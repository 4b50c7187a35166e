// Package filewalker discovers raw files and the modules they belong to.
package filewalker

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"rawgraph/internal/raws"
	"rawgraph/internal/reader"
)

// InfoFile is the module manifest sitting at the root of every module.
const InfoFile = "info.txt"

// prefixes maps raw file name prefixes to the category the file holds.
var prefixes = []struct {
	prefix string
	kind   raws.ObjectType
}{
	{"c_variation_", raws.ObjectCreatureVariation},
	{"creature_", raws.ObjectCreature},
	{"plant_", raws.ObjectPlant},
	{"inorganic_", raws.ObjectInorganic},
	{"material_template_", raws.ObjectMaterialTemplate},
	{"entity_", raws.ObjectEntity},
	{"graphics_", raws.ObjectGraphics},
	{"tile_page_", raws.ObjectGraphics},
}

// FileEntry is a raw file ready to be read.
type FileEntry struct {
	Path       string
	Module     raws.Module
	ObjectType raws.ObjectType
}

// Walker finds raw files under a directory tree.
type Walker struct {
	modules map[string]raws.Module
}

func NewWalker() *Walker {
	return &Walker{modules: make(map[string]raws.Module)}
}

// Walk discovers every raw file under root. Files whose category cannot be
// determined are skipped.
func (w *Walker) Walk(root string) ([]FileEntry, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve root path: %w", err)
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root is not a directory: %s", root)
	}

	var entries []FileEntry

	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("Error walking path")
			return nil
		}
		if info.IsDir() {
			return nil
		}
		name := strings.ToLower(info.Name())
		if filepath.Ext(name) != ".txt" || name == InfoFile {
			return nil
		}

		kind, err := ObjectTypeOf(path)
		if err != nil {
			log.Debug().Err(err).Str("path", path).Msg("Skipping file without a raw category")
			return nil
		}
		entries = append(entries, FileEntry{
			Path:       path,
			Module:     w.moduleFor(root, filepath.Dir(path)),
			ObjectType: kind,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory: %w", err)
	}

	log.Info().Int("count", len(entries)).Int("modules", len(w.modules)).Str("root", root).Msg("Discovered files")
	return entries, nil
}

// ObjectTypeOf determines a raw file's category from its name, falling
// back to its OBJECT header.
func ObjectTypeOf(path string) (raws.ObjectType, error) {
	name := strings.ToLower(filepath.Base(path))
	for _, p := range prefixes {
		if strings.HasPrefix(name, p.prefix) {
			return p.kind, nil
		}
	}
	return reader.DetectObjectType(path)
}

// moduleFor returns the module owning dir: the nearest directory between
// dir and root holding an info.txt. Files outside any module belong to a
// module named after root.
func (w *Walker) moduleFor(root, dir string) raws.Module {
	if m, ok := w.modules[dir]; ok {
		return m
	}

	var m raws.Module
	switch info := filepath.Join(dir, InfoFile); {
	case fileExists(info):
		var err error
		m, err = ReadModuleInfo(info)
		if err != nil {
			log.Warn().Err(err).Str("path", info).Msg("Unreadable module info, using directory name")
			m = raws.Module{Identifier: filepath.Base(dir), Name: filepath.Base(dir)}
		}
		m.Path = dir
		m.Location = raws.LocationFromPath(dir)
	case dir == root || filepath.Dir(dir) == dir:
		m = raws.Module{
			Identifier: filepath.Base(root),
			Name:       filepath.Base(root),
			Location:   raws.LocationFromPath(root),
			Path:       root,
		}
	default:
		m = w.moduleFor(root, filepath.Dir(dir))
	}

	w.modules[dir] = m
	return m
}

func fileExists(path string) bool {
	st, err := os.Stat(path)
	return err == nil && !st.IsDir()
}

// ReadModuleInfo reads a module manifest. Manifests use the raw token
// grammar: [ID:x] [NUMERIC_VERSION:n] [DISPLAYED_VERSION:v] [NAME:name].
func ReadModuleInfo(path string) (raws.Module, error) {
	f, err := os.Open(path)
	if err != nil {
		return raws.Module{}, fmt.Errorf("open module info: %w", err)
	}
	defer f.Close()

	var m raws.Module
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		for _, tok := range reader.Scan(scanner.Text()) {
			switch tok.Key {
			case "ID":
				m.Identifier = tok.Value
			case "NAME":
				m.Name = tok.Value
			case "DISPLAYED_VERSION":
				m.Version = tok.Value
			case "NUMERIC_VERSION":
				n, err := strconv.ParseUint(tok.Value, 10, 32)
				if err != nil {
					log.Warn().Str("path", path).Str("value", tok.Value).Msg("Malformed NUMERIC_VERSION")
					continue
				}
				m.NumericVersion = uint32(n)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return raws.Module{}, fmt.Errorf("scan module info: %w", err)
	}
	if m.Identifier == "" {
		return raws.Module{}, errors.New("module info has no ID")
	}
	if m.Name == "" {
		m.Name = m.Identifier
	}
	return m, nil
}
