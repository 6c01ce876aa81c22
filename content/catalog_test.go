package content

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog_Valid(t *testing.T) {
	cat := DefaultCatalog()
	require.NoError(t, cat.Validate())
	assert.Len(t, cat.Classes, 3)
	assert.Equal(t, []string{"CBSE", "ICSE", "Madhyamik"}, cat.Boards)
	assert.Len(t, cat.Achievements, 3)
	assert.Len(t, cat.Testimonials, 3)
	assert.Len(t, cat.Gallery, 10)
}

func TestDefaultCatalog_FreshCopy(t *testing.T) {
	a := DefaultCatalog()
	a.Boards[0] = "changed"
	b := DefaultCatalog()
	assert.Equal(t, "CBSE", b.Boards[0])
}

func TestCatalog_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Catalog)
	}{
		{"no classes", func(c *Catalog) { c.Classes = nil }},
		{"unnamed class", func(c *Catalog) { c.Classes[0].Name = " " }},
		{"duplicate class", func(c *Catalog) { c.Classes[1].ID = c.Classes[0].ID }},
		{"no boards", func(c *Catalog) { c.Boards = nil }},
		{"unknown board in notes", func(c *Catalog) { c.Notes[0].Boards[0].Board = "IB" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := DefaultCatalog()
			tt.mutate(&cat)
			assert.Error(t, cat.Validate())
		})
	}
}

func TestClassNumber(t *testing.T) {
	assert.Equal(t, 10, ClassNumber(1))
	assert.Equal(t, 11, ClassNumber(2))
	assert.Equal(t, 12, ClassNumber(3))
	assert.Equal(t, 7, ClassNumber(7))
}

func TestCatalog_SubjectsFor(t *testing.T) {
	cat := DefaultCatalog()

	subjects, err := cat.SubjectsFor(12, "cbse")
	require.NoError(t, err)
	require.Len(t, subjects, 5)
	for i, s := range subjects {
		assert.Equal(t, i+1, s.ID)
	}
	assert.Equal(t, "Physics", subjects[0].Name)
	assert.Equal(t, "⚛️", subjects[0].Icon)
	assert.Equal(t, "Computer Science", subjects[4].Name)

	subjects, err = cat.SubjectsFor(10, "ICSE")
	require.NoError(t, err)
	assert.Len(t, subjects, 4)
}

func TestCatalog_SubjectsFor_DefaultIcon(t *testing.T) {
	cat := DefaultCatalog()
	cat.Notes[0].Boards[0].Subjects = append(cat.Notes[0].Boards[0].Subjects, SubjectNotes{Subject: "Geography"})

	subjects, err := cat.SubjectsFor(10, "CBSE")
	require.NoError(t, err)
	last := subjects[len(subjects)-1]
	assert.Equal(t, "Geography", last.Name)
	assert.Equal(t, "📚", last.Icon)
	assert.Equal(t, "Study materials for Geography", last.Description)
}

func TestCatalog_SubjectsFor_NotFound(t *testing.T) {
	cat := DefaultCatalog()

	_, err := cat.SubjectsFor(12, "IB")
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = cat.SubjectsFor(9, "CBSE")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestCatalog_NotesFor(t *testing.T) {
	cat := DefaultCatalog()

	notes, err := cat.NotesFor(11, "Madhyamik", "computer-science")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Contains(t, notes[0].Title, "Computer Science")

	_, err = cat.NotesFor(10, "CBSE", "computer-science")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestCatalog_DriveLink(t *testing.T) {
	cat := DefaultCatalog()

	link, err := cat.DriveLink(12, "CBSE", "physics")
	require.NoError(t, err)
	assert.Contains(t, link, "drive.google.com/file/d/")

	cat.Notes[2].Boards[0].Subjects[0].Notes = nil
	_, err = cat.DriveLink(12, "CBSE", "physics")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestCatalog_FeaturedTestimonials(t *testing.T) {
	cat := DefaultCatalog()
	cat.Testimonials = append(cat.Testimonials, Testimonial{ID: 4, Name: "Extra"})

	assert.Len(t, cat.FeaturedTestimonials(3), 3)
	assert.Len(t, cat.FeaturedTestimonials(10), 4)
	assert.Len(t, cat.FeaturedTestimonials(-1), 4)
}

func TestCatalog_NotesURL(t *testing.T) {
	cat := DefaultCatalog()

	tests := []struct {
		class int
		board string
		want  string
	}{
		{1, "CBSE", "www.class10cbse.com"},
		{2, "icse", "www.class11icse.com"},
		{3, "CBSE", "www.class12cbse.co"},
		{3, "Madhyamik", "www.class12madhyamik.com"},
		{12, "ICSE", "www.class12icse.com"},
		{1, "IB", "www.class10cbse.com"},
		{9, "CBSE", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cat.NotesURL(tt.class, tt.board), "class %d board %s", tt.class, tt.board)
	}
}
