package entity

// Kind names the classification an entity resolved to.
type Kind string

const (
	KindFile      Kind = "file"
	KindDirectory Kind = "directory"
	KindJSON      Kind = "json"
	KindYAML      Kind = "yaml"
	KindImage     Kind = "image"
	KindMedium    Kind = "medium"
)

// Entity is the typed representation of one classified path. Concrete
// types are *File, *Directory, *Document, *Image and *Medium.
type Entity interface {
	Kind() Kind
	Path() string
	Name() string
	Extension() string
	Size() (int64, error)
	Exists() bool
	IsHidden() bool
	IsDir() bool
	IsEqual(other Entity) (bool, error)
	Checksum(algo Algorithm) ([]byte, error)

	// Base returns the path-identity component shared by every kind.
	Base() *File
}
