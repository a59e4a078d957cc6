package entity

const (
	TypeFolder = "folder"
	TypeFile   = "file"
	TypeImage  = "image"
)

// ValidType reports whether t is one of the three allowed entry types.
func ValidType(t string) bool {
	return t == TypeFolder || t == TypeFile || t == TypeImage
}

// File is a file or folder metadata record owned by a user.
// ParentID is empty for entries at the root; LocalPath is set only for
// non-folder entries and is never exposed to callers.
type File struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	IsPublic  bool   `json:"isPublic"`
	ParentID  string `json:"-"`
	LocalPath string `json:"-"`
}

func (f *File) IsFolder() bool {
	return f.Type == TypeFolder
}
