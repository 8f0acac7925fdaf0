package source

// FileHandle is the content a Loader hands to the Manager. Data must stay
// immutable after loading; the Manager keeps a reference, not a copy.
type FileHandle struct {
	Path  string
	Data  []byte
	Flags FileFlags
}

// Loader supplies file contents to the Manager. Implementations own caching
// and path normalization policy.
type Loader interface {
	Load(path string) (FileHandle, error)
}
