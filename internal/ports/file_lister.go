package ports

// FileLister discovers image files.
type FileLister interface {
	// List returns the image files under dir, sorted by the last number
	// embedded in each file stem. Files without a number sort after numbered
	// ones, by name. A missing directory yields domain.ErrInputNotFound.
	List(dir string, recursive bool) ([]string, error)
}
