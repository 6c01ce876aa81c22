package content

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when a class, board or subject is not in the
// catalog.
var ErrNotFound = errors.New("not found")

// Catalog is everything the site can show.
type Catalog struct {
	Classes      []Class                      `json:"classes" yaml:"classes" toml:"classes"`
	Boards       []string                     `json:"boards" yaml:"boards" toml:"boards"`
	Subjects     []Subject                    `json:"subjects" yaml:"subjects" toml:"subjects"`
	Notes        []ClassNotes                 `json:"notes" yaml:"notes" toml:"notes"`
	NotesURLs    map[string]map[string]string `json:"notesUrls,omitempty" yaml:"notesUrls,omitempty" toml:"notesUrls,omitempty"`
	Achievements []Achievement                `json:"achievements" yaml:"achievements" toml:"achievements"`
	Testimonials []Testimonial                `json:"testimonials" yaml:"testimonials" toml:"testimonials"`
	Gallery      []GalleryImage               `json:"gallery" yaml:"gallery" toml:"gallery"`
}

// Validate reports the first structural problem in the catalog.
func (c Catalog) Validate() error {
	if len(c.Classes) == 0 {
		return errors.New("catalog has no classes")
	}
	seen := make(map[int]bool, len(c.Classes))
	for _, cl := range c.Classes {
		if strings.TrimSpace(cl.Name) == "" {
			return fmt.Errorf("class %d has no name", cl.ID)
		}
		if seen[cl.ID] {
			return fmt.Errorf("duplicate class id %d", cl.ID)
		}
		seen[cl.ID] = true
	}
	if len(c.Boards) == 0 {
		return errors.New("catalog has no boards")
	}
	for _, cn := range c.Notes {
		for _, bn := range cn.Boards {
			if !c.HasBoard(bn.Board) {
				return fmt.Errorf("notes for class %d use unknown board %q", cn.Class, bn.Board)
			}
		}
	}
	return nil
}

// ClassNumber maps the site's class ids (1, 2, 3) to class numbers
// (10, 11, 12). Other values are returned unchanged.
func ClassNumber(id int) int {
	switch id {
	case 1:
		return 10
	case 2:
		return 11
	case 3:
		return 12
	default:
		return id
	}
}

// ClassByID returns the class with the given id.
func (c Catalog) ClassByID(id int) (Class, bool) {
	for _, cl := range c.Classes {
		if cl.ID == id {
			return cl, true
		}
	}
	return Class{}, false
}

// HasBoard reports whether board is offered, ignoring case.
func (c Catalog) HasBoard(board string) bool {
	for _, b := range c.Boards {
		if strings.EqualFold(b, board) {
			return true
		}
	}
	return false
}

// SubjectByID returns the subject with the given id from the master list.
func (c Catalog) SubjectByID(id int) (Subject, bool) {
	for _, s := range c.Subjects {
		if s.ID == id {
			return s, true
		}
	}
	return Subject{}, false
}

// boardNotes finds the notes tree for a class number and board.
func (c Catalog) boardNotes(classNum int, board string) (BoardNotes, error) {
	if !c.HasBoard(board) {
		return BoardNotes{}, fmt.Errorf("board %s: %w", board, ErrNotFound)
	}
	for _, cn := range c.Notes {
		if cn.Class != classNum {
			continue
		}
		for _, bn := range cn.Boards {
			if strings.EqualFold(bn.Board, board) {
				return bn, nil
			}
		}
		return BoardNotes{}, fmt.Errorf("board %s in class %d: %w", board, classNum, ErrNotFound)
	}
	return BoardNotes{}, fmt.Errorf("class %d: %w", classNum, ErrNotFound)
}

// SubjectsFor lists the subjects taught for a class number and board.
// Ids are positions in display order, starting at 1; icon and description
// come from the master subject list when it has a matching name.
func (c Catalog) SubjectsFor(classNum int, board string) ([]Subject, error) {
	bn, err := c.boardNotes(classNum, board)
	if err != nil {
		return nil, err
	}
	out := make([]Subject, 0, len(bn.Subjects))
	for i, sn := range bn.Subjects {
		s := Subject{
			ID:          i + 1,
			Name:        sn.Subject,
			Icon:        "📚",
			Description: "Study materials for " + sn.Subject,
		}
		for _, master := range c.Subjects {
			if strings.EqualFold(master.Name, sn.Subject) {
				s.Icon = master.Icon
				s.Description = master.Description
				s.Image = master.Image
				break
			}
		}
		out = append(out, s)
	}
	return out, nil
}

// NotesFor returns the notes for a subject. The subject may be given in
// URL form ("computer-science") and is matched ignoring case.
func (c Catalog) NotesFor(classNum int, board, subject string) ([]Note, error) {
	bn, err := c.boardNotes(classNum, board)
	if err != nil {
		return nil, err
	}
	name := strings.ReplaceAll(subject, "-", " ")
	for _, sn := range bn.Subjects {
		if strings.EqualFold(sn.Subject, name) {
			return sn.Notes, nil
		}
	}
	return nil, fmt.Errorf("subject %s in class %d, board %s: %w", subject, classNum, board, ErrNotFound)
}

// DriveLink returns the Google Drive link of the first note for a subject.
func (c Catalog) DriveLink(classNum int, board, subject string) (string, error) {
	notes, err := c.NotesFor(classNum, board, subject)
	if err != nil {
		return "", err
	}
	if len(notes) == 0 || notes[0].DriveLink == "" {
		return "", fmt.Errorf("drive link for %s: %w", subject, ErrNotFound)
	}
	return notes[0].DriveLink, nil
}

// FeaturedTestimonials returns at most n testimonials.
func (c Catalog) FeaturedTestimonials(n int) []Testimonial {
	if n < 0 || n >= len(c.Testimonials) {
		return c.Testimonials
	}
	return c.Testimonials[:n]
}

// NotesURL returns the external notes site for a class id and board. An
// unknown board falls back to the class's CBSE site; an unknown class
// yields "".
func (c Catalog) NotesURL(classID int, board string) string {
	byBoard, ok := c.NotesURLs[fmt.Sprint(ClassNumber(classID))]
	if !ok {
		return ""
	}
	if u, ok := byBoard[strings.ToUpper(board)]; ok {
		return u
	}
	return byBoard["CBSE"]
}
