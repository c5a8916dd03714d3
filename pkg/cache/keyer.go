package cache

// ArtifactKeyOpts holds everything besides the scene that changes a
// rendered figure.
type ArtifactKeyOpts struct {
	Format    string `json:"format"`
	StyleHash string `json:"style_hash"`
}

// Keyer builds cache keys.
type Keyer interface {
	// ArtifactKey returns the key of a figure rendered from the scene with
	// hash sceneHash.
	ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes key components into "artifact:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", sceneHash, opts)
}
