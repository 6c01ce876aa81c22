package content

// Class is a school year offered by the institute.
type Class struct {
	ID          int      `json:"id" yaml:"id" toml:"id"`
	Name        string   `json:"name" yaml:"name" toml:"name"`
	Boards      []string `json:"boards,omitempty" yaml:"boards,omitempty" toml:"boards,omitempty"`
	Description string   `json:"description" yaml:"description" toml:"description"`
	Image       string   `json:"image,omitempty" yaml:"image,omitempty" toml:"image,omitempty"`
}

// Board is an examination board and the subjects taught for it.
type Board struct {
	ID       int      `json:"id" yaml:"id" toml:"id"`
	Name     string   `json:"name" yaml:"name" toml:"name"`
	Subjects []string `json:"subjects" yaml:"subjects" toml:"subjects"`
}

// Subject is a course within a class and board.
type Subject struct {
	ID              int    `json:"id" yaml:"id" toml:"id"`
	Name            string `json:"name" yaml:"name" toml:"name"`
	Description     string `json:"description" yaml:"description" toml:"description"`
	Image           string `json:"image,omitempty" yaml:"image,omitempty" toml:"image,omitempty"`
	Icon            string `json:"icon,omitempty" yaml:"icon,omitempty" toml:"icon,omitempty"`
	DriveFolderLink string `json:"googleDriveFolderLink,omitempty" yaml:"googleDriveFolderLink,omitempty" toml:"googleDriveFolderLink,omitempty"`
}

// Note is a downloadable study resource.
type Note struct {
	ID          int    `json:"id" yaml:"id" toml:"id"`
	Title       string `json:"title" yaml:"title" toml:"title"`
	Description string `json:"description" yaml:"description" toml:"description"`
	Content     string `json:"content,omitempty" yaml:"content,omitempty" toml:"content,omitempty"`
	DownloadURL string `json:"downloadUrl,omitempty" yaml:"downloadUrl,omitempty" toml:"downloadUrl,omitempty"`
	ViewURL     string `json:"viewUrl,omitempty" yaml:"viewUrl,omitempty" toml:"viewUrl,omitempty"`
	FileSize    string `json:"fileSize,omitempty" yaml:"fileSize,omitempty" toml:"fileSize,omitempty"`
	FileType    string `json:"fileType,omitempty" yaml:"fileType,omitempty" toml:"fileType,omitempty"`
	DriveLink   string `json:"googleDriveLink,omitempty" yaml:"googleDriveLink,omitempty" toml:"googleDriveLink,omitempty"`
}

// Achievement is a highlight shown on the home page.
type Achievement struct {
	ID          int    `json:"id" yaml:"id" toml:"id"`
	Icon        string `json:"icon" yaml:"icon" toml:"icon"`
	Title       string `json:"title" yaml:"title" toml:"title"`
	Description string `json:"description" yaml:"description" toml:"description"`
}

// Testimonial is a quote from a former student.
type Testimonial struct {
	ID          int    `json:"id" yaml:"id" toml:"id"`
	Name        string `json:"name" yaml:"name" toml:"name"`
	Class       string `json:"class" yaml:"class" toml:"class"`
	Board       string `json:"board" yaml:"board" toml:"board"`
	Testimonial string `json:"testimonial" yaml:"testimonial" toml:"testimonial"`
	Image       string `json:"image,omitempty" yaml:"image,omitempty" toml:"image,omitempty"`
}

// GalleryImage is a photo on the gallery page.
type GalleryImage struct {
	ID       int    `json:"id" yaml:"id" toml:"id"`
	Src      string `json:"src" yaml:"src" toml:"src"`
	Alt      string `json:"alt" yaml:"alt" toml:"alt"`
	Category string `json:"category" yaml:"category" toml:"category"`
}

// SubjectNotes lists the notes published for one subject.
type SubjectNotes struct {
	Subject string `json:"subject" yaml:"subject" toml:"subject"`
	Notes   []Note `json:"notes" yaml:"notes" toml:"notes"`
}

// BoardNotes lists subjects, in display order, for one board.
type BoardNotes struct {
	Board    string         `json:"board" yaml:"board" toml:"board"`
	Subjects []SubjectNotes `json:"subjects" yaml:"subjects" toml:"subjects"`
}

// ClassNotes lists boards for one class number (10, 11, 12).
type ClassNotes struct {
	Class  int          `json:"class" yaml:"class" toml:"class"`
	Boards []BoardNotes `json:"boards" yaml:"boards" toml:"boards"`
}
