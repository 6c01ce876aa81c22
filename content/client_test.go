package content

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fallbackLog struct {
	mu  sync.Mutex
	ops []string
	err []error
}

func (l *fallbackLog) record(op string, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ops = append(l.ops, op)
	l.err = append(l.err, err)
}

func (l *fallbackLog) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.ops)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *fallbackLog) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	log := &fallbackLog{}
	c, err := NewClient(srv.URL, OnFallback(log.record))
	require.NoError(t, err)
	return c, log
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func TestClient_NoURLServesFallback(t *testing.T) {
	log := &fallbackLog{}
	c, err := NewClient("", OnFallback(log.record))
	require.NoError(t, err)
	assert.False(t, c.Online())

	classes, err := c.Classes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DefaultCatalog().Classes, classes)
	require.Equal(t, 1, log.count())
	assert.Equal(t, "classes", log.ops[0])
	assert.True(t, errors.Is(log.err[0], ErrFallback))
}

func TestClient_FallbackTriggers(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"not found", func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}},
		{"bad json", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("<html>"))
		}},
		{"empty list", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, []Achievement{})
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, log := newTestClient(t, tt.handler)

			got, err := c.HomeAchievements(context.Background())
			require.NoError(t, err)
			assert.Equal(t, DefaultCatalog().Achievements, got)
			assert.Equal(t, 1, log.count())
		})
	}
}

func TestClient_TransportErrorServesFallback(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := NewClient(url)
	require.NoError(t, err)

	boards, err := c.BoardsByClass(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"CBSE", "ICSE", "Madhyamik"}, boards)
}

func TestClient_UsesAPIResponse(t *testing.T) {
	var gotUA string
	c, log := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		switch r.URL.Path {
		case "/api/classes":
			writeJSON(w, []Class{{ID: 7, Name: "Class 7"}})
		case "/api/home/testimonials":
			writeJSON(w, []Testimonial{{ID: 9, Name: "Live"}})
		case "/api/gallery":
			writeJSON(w, []GalleryImage{{ID: 1, Src: "/a.jpg"}})
		default:
			http.NotFound(w, r)
		}
	})
	ctx := context.Background()

	classes, err := c.Classes(ctx)
	require.NoError(t, err)
	assert.Equal(t, []Class{{ID: 7, Name: "Class 7"}}, classes)

	testimonials, err := c.HomeTestimonials(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Live", testimonials[0].Name)

	gallery, err := c.Gallery(ctx)
	require.NoError(t, err)
	assert.Len(t, gallery, 1)

	assert.Equal(t, 0, log.count())
	assert.Equal(t, defaultUserAgent, gotUA)
}

func TestClient_ClassByID(t *testing.T) {
	c, log := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/classes/2":
			writeJSON(w, Class{ID: 2, Name: "Eleven"})
		case "/api/classes/3":
			writeJSON(w, Class{ID: 3})
		default:
			http.NotFound(w, r)
		}
	})
	ctx := context.Background()

	got, err := c.ClassByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Eleven", got.Name)

	got, err = c.ClassByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Class 12", got.Name)

	got, err = c.ClassByID(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, "Class 10", got.Name)

	assert.Equal(t, 2, log.count())
}

func TestClient_SubjectsUseClassNumberAndUpperBoard(t *testing.T) {
	var gotPath string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		writeJSON(w, []Subject{{ID: 1, Name: "Physics"}})
	})

	subjects, err := c.SubjectsByClassAndBoard(context.Background(), 3, "icse")
	require.NoError(t, err)
	assert.Equal(t, "/api/classes/12/ICSE/subjects", gotPath)
	assert.Len(t, subjects, 1)
}

func TestClient_NotesBySubjectResolvesNameAndNormalizes(t *testing.T) {
	var notesPath string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/classes/11/CBSE/subjects":
			writeJSON(w, []Subject{{ID: 1, Name: "Mathematics"}, {ID: 2, Name: "Computer Science"}})
		case "/api/classes/11/CBSE/computer-science/notes":
			notesPath = r.URL.Path
			writeJSON(w, []Note{
				{ID: 1, Title: "Python", DriveLink: "https://drive.google.com/file/d/abc/view"},
				{ID: 2, Title: "SQL", DownloadURL: "https://x/dl", ViewURL: "https://x/view"},
			})
		default:
			http.NotFound(w, r)
		}
	})

	notes, err := c.NotesBySubject(context.Background(), 2, "CBSE", 2)
	require.NoError(t, err)
	assert.NotEmpty(t, notesPath)
	require.Len(t, notes, 2)
	assert.Equal(t, "https://drive.google.com/file/d/abc/view", notes[0].DownloadURL)
	assert.Equal(t, "https://drive.google.com/document/d/abc/view", notes[0].ViewURL)
	assert.Equal(t, "https://x/dl", notes[1].DownloadURL)
	assert.Equal(t, "https://x/view", notes[1].ViewURL)
}

func TestClient_NotesBySubjectFallback(t *testing.T) {
	c, err := NewClient("")
	require.NoError(t, err)

	notes, err := c.NotesBySubject(context.Background(), 1, "CBSE", 1)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Contains(t, notes[0].Title, "Physics")
	assert.Contains(t, notes[0].ViewURL, "/document/d/")
}

func TestClient_SubjectDriveLink(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/classes/10/CBSE/subjects":
			writeJSON(w, []Subject{{ID: 1, Name: "Physics"}})
		case "/api/classes/10/CBSE/physics/drive-link":
			writeJSON(w, map[string]string{"googleDriveLink": "https://drive/p"})
		default:
			http.NotFound(w, r)
		}
	})

	link, err := c.SubjectDriveLink(context.Background(), 1, "cbse", 1)
	require.NoError(t, err)
	assert.Equal(t, "https://drive/p", link)
}

func TestClient_SubjectDriveLinkFallbackAndError(t *testing.T) {
	c, err := NewClient("")
	require.NoError(t, err)

	link, err := c.SubjectDriveLink(context.Background(), 3, "ICSE", 2)
	require.NoError(t, err)
	assert.Contains(t, link, "drive.google.com")

	_, err = c.SubjectDriveLink(context.Background(), 3, "IB", 2)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestClient_FallbacksSource(t *testing.T) {
	fb := NewFallbacks(DefaultCatalog())
	c, err := NewClient("", WithFallbacks(fb))
	require.NoError(t, err)

	cat := DefaultCatalog()
	cat.Boards = []string{"CBSE"}
	cat.Notes = nil
	require.NoError(t, fb.Replace(cat))

	boards, err := c.BoardsByClass(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"CBSE"}, boards)
}

func TestClient_Ping(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]string{"message": "hi", "status": "online"})
	})

	st, err := c.Ping(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "online", st.Status)

	offline, err := NewClient("")
	require.NoError(t, err)
	_, err = offline.Ping(context.Background())
	assert.Error(t, err)
}

func TestClient_NotesURL(t *testing.T) {
	c, err := NewClient("")
	require.NoError(t, err)
	assert.Equal(t, "www.class12cbse.co", c.NotesURL(3, "cbse"))
}

func TestParseBaseURL(t *testing.T) {
	u, err := parseBaseURL("localhost:5000/ignored?x=1")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5000", u.String())
}
