package raws

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Location is where a module was installed from.
type Location int

const (
	LocationVanilla       Location = 1
	LocationWorkshopMods  Location = 2
	LocationInstalledMods Location = 3
	LocationUnknown       Location = 4
)

func (l Location) String() string {
	switch l {
	case LocationVanilla:
		return "vanilla"
	case LocationWorkshopMods:
		return "workshop_mods"
	case LocationInstalledMods:
		return "installed_mods"
	default:
		return "unknown"
	}
}

func (l Location) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// LocationFromPath infers a location from the directory nearest to path
// named vanilla, installed_mods or mods.
func LocationFromPath(path string) Location {
	parts := strings.Split(filepath.ToSlash(path), "/")
	for i := len(parts) - 1; i >= 0; i-- {
		switch strings.ToLower(parts[i]) {
		case "vanilla":
			return LocationVanilla
		case "installed_mods":
			return LocationInstalledMods
		case "mods":
			return LocationWorkshopMods
		}
	}
	return LocationUnknown
}

// Module describes a versioned bundle of raw files.
type Module struct {
	Identifier     string   `json:"identifier"`
	Name           string   `json:"name"`
	Version        string   `json:"version"`
	NumericVersion uint32   `json:"numericVersion"`
	Location       Location `json:"location"`
	Path           string   `json:"path"`
}

// Metadata ties an object to the file and module it was read from.
type Metadata struct {
	Module     Module     `json:"module"`
	RawPath    string     `json:"rawPath"`
	RawName    string     `json:"rawName"`
	ObjectType ObjectType `json:"objectType"`
}

// namespace scopes every object id.
var namespace = uuid.MustParse("5c6bd1e2-4a8f-5e0b-9d47-3f1a2b8c6e90")

// ObjectID derives the stable id of an object from its identity. The
// identifier is case-insensitive.
func ObjectID(location Location, kind ObjectType, identifier string, numericVersion uint32) uuid.UUID {
	seed := fmt.Sprintf("%d-%s-%s-%d", int(location), kind, strings.ToLower(identifier), numericVersion)
	return uuid.NewSHA1(namespace, []byte(seed))
}

// Info is the identity every raw object carries.
type Info struct {
	Identifier string    `json:"identifier"`
	ObjectID   uuid.UUID `json:"objectId"`
	Metadata   Metadata  `json:"metadata"`
}

func newInfo(meta Metadata, kind ObjectType, identifier string) Info {
	return Info{
		Identifier: identifier,
		ObjectID:   ObjectID(meta.Module.Location, kind, identifier, meta.Module.NumericVersion),
		Metadata:   meta,
	}
}

// ObjectInfo returns the object's identity.
func (i *Info) ObjectInfo() *Info { return i }

// Object is any decoded raw object.
type Object interface {
	ObjectInfo() *Info
	Kind() ObjectType
	// Tokens re-encodes the object's decoded tags in bracketed form.
	Tokens() []string
}

// Builder is an object still receiving tags from the reader.
type Builder interface {
	Object
	ApplyTag(key, value string)
}
