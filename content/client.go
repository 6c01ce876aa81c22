package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/zoobzio/capitan"
)

// ErrFallback wraps the cause reported when an operation serves fallback
// data instead of an API response.
var ErrFallback = errors.New("serving fallback data")

// Status is the API greeting returned by GET /api/.
type Status struct {
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// Client talks to the institute content API. Every list operation degrades
// to fallback data: a missing base URL, a transport error, a non-2xx
// status, an undecodable body and an empty list all yield the fallback
// catalog's answer with a nil error.
type Client struct {
	baseURL    *url.URL
	http       *http.Client
	userAgent  string
	fallbacks  CatalogSource
	onFallback func(op string, err error)
}

const (
	defaultUserAgent = "atomsite/0.1"
	requestTimeout   = 5 * time.Second
)

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) { c.http = h }
}

// WithFallbacks sets the catalog served when the API cannot answer.
func WithFallbacks(src CatalogSource) ClientOption {
	return func(c *Client) { c.fallbacks = src }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) { c.userAgent = ua }
}

// OnFallback registers fn to be called whenever an operation serves
// fallback data. err wraps ErrFallback.
func OnFallback(fn func(op string, err error)) ClientOption {
	return func(c *Client) { c.onFallback = fn }
}

type staticSource Catalog

func (s staticSource) Catalog() Catalog { return Catalog(s) }

// StaticSource serves c unchanged.
func StaticSource(c Catalog) CatalogSource {
	return staticSource(c)
}

// NewClient builds a Client for baseURL. An empty baseURL is valid: the
// client then answers from its fallbacks without touching the network.
func NewClient(baseURL string, opts ...ClientOption) (*Client, error) {
	c := &Client{
		http:      &http.Client{Timeout: requestTimeout},
		userAgent: defaultUserAgent,
		fallbacks: StaticSource(DefaultCatalog()),
	}
	if trimmed := strings.TrimSpace(baseURL); trimmed != "" {
		base, err := parseBaseURL(trimmed)
		if err != nil {
			return nil, err
		}
		c.baseURL = base
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Online reports whether the client has an API to talk to.
func (c *Client) Online() bool {
	return c.baseURL != nil
}

// NotesURL returns the external notes site for a class id and board.
func (c *Client) NotesURL(classID int, board string) string {
	return c.fallback().NotesURL(classID, board)
}

// Ping fetches the API greeting.
func (c *Client) Ping(ctx context.Context) (Status, error) {
	var s Status
	if c.baseURL == nil {
		return s, fmt.Errorf("ping: no api url configured")
	}
	if err := c.do(ctx, "/api/", &s); err != nil {
		return s, err
	}
	return s, nil
}

// HomeClasses lists the classes shown on the home page.
func (c *Client) HomeClasses(ctx context.Context) ([]Class, error) {
	return getList(ctx, c, "home_classes", "/api/home/classes", c.fallback().Classes), nil
}

// HomeAchievements lists the home page highlights.
func (c *Client) HomeAchievements(ctx context.Context) ([]Achievement, error) {
	return getList(ctx, c, "home_achievements", "/api/home/achievements", c.fallback().Achievements), nil
}

// HomeTestimonials lists the featured testimonials.
func (c *Client) HomeTestimonials(ctx context.Context) ([]Testimonial, error) {
	return getList(ctx, c, "home_testimonials", "/api/home/testimonials", c.fallback().FeaturedTestimonials(3)), nil
}

// Classes lists every class.
func (c *Client) Classes(ctx context.Context) ([]Class, error) {
	return getList(ctx, c, "classes", "/api/classes", c.fallback().Classes), nil
}

// ClassByID fetches one class. Ids the fallback catalog does not know
// resolve to its first class without a request.
func (c *Client) ClassByID(ctx context.Context, id int) (Class, error) {
	cat := c.fallback()
	fb, ok := cat.ClassByID(id)
	if !ok {
		if len(cat.Classes) > 0 {
			fb = cat.Classes[0]
		}
		c.fellBack(ctx, "class", fmt.Errorf("invalid class id %d", id))
		return fb, nil
	}
	if c.baseURL == nil {
		c.fellBack(ctx, "class", errNoURL)
		return fb, nil
	}
	var got Class
	if err := c.do(ctx, "/api/classes/"+strconv.Itoa(id), &got); err != nil {
		c.fellBack(ctx, "class", err)
		return fb, nil
	}
	if got.Name == "" {
		c.fellBack(ctx, "class", fmt.Errorf("class %d has no name", id))
		return fb, nil
	}
	return got, nil
}

// BoardsByClass lists the boards offered for a class id.
func (c *Client) BoardsByClass(ctx context.Context, classID int) ([]string, error) {
	path := fmt.Sprintf("/api/classes/%d/boards", classID)
	return getList(ctx, c, "boards", path, c.fallback().Boards), nil
}

// SubjectsByClassAndBoard lists the subjects for a class id and board.
func (c *Client) SubjectsByClassAndBoard(ctx context.Context, classID int, board string) ([]Subject, error) {
	num := ClassNumber(classID)
	fb, _ := c.fallback().SubjectsFor(num, board)
	path := fmt.Sprintf("/api/classes/%d/%s/subjects", num, strings.ToUpper(board))
	return getList(ctx, c, "subjects", path, fb), nil
}

// NotesBySubject lists the notes for a subject id within a class and
// board. Download and view links are derived from the Drive link when the
// API omits them.
func (c *Client) NotesBySubject(ctx context.Context, classID int, board string, subjectID int) ([]Note, error) {
	num := ClassNumber(classID)
	name := c.subjectName(ctx, classID, board, subjectID)
	fb, _ := c.fallback().NotesFor(num, board, name)
	path := fmt.Sprintf("/api/classes/%d/%s/%s/notes", num, strings.ToUpper(board), slug(name))
	return normalizeNotes(getList(ctx, c, "notes", path, fb)), nil
}

// SubjectDriveLink returns the Drive folder link for a subject id. Unlike
// the list operations it reports an error when neither the API nor the
// fallback catalog has a link.
func (c *Client) SubjectDriveLink(ctx context.Context, classID int, board string, subjectID int) (string, error) {
	num := ClassNumber(classID)
	name := c.subjectName(ctx, classID, board, subjectID)

	if c.baseURL != nil {
		var payload struct {
			DriveLink string `json:"googleDriveLink"`
		}
		path := fmt.Sprintf("/api/classes/%d/%s/%s/drive-link", num, strings.ToUpper(board), slug(name))
		err := c.do(ctx, path, &payload)
		if err == nil && payload.DriveLink != "" {
			return payload.DriveLink, nil
		}
		if err == nil {
			err = fmt.Errorf("no drive link for %s", name)
		}
		c.fellBack(ctx, "drive_link", err)
	}

	link, err := c.fallback().DriveLink(num, board, name)
	if err != nil {
		return "", fmt.Errorf("drive link for class %d, board %s, subject %s: %w", num, board, name, err)
	}
	return link, nil
}

// Testimonials lists every testimonial.
func (c *Client) Testimonials(ctx context.Context) ([]Testimonial, error) {
	return getList(ctx, c, "testimonials", "/api/testimonials", c.fallback().Testimonials), nil
}

// Gallery lists the gallery images.
func (c *Client) Gallery(ctx context.Context) ([]GalleryImage, error) {
	return getList(ctx, c, "gallery", "/api/gallery", c.fallback().Gallery), nil
}

// subjectName resolves a subject id to its name: first from the API's
// subject list for the class and board, then from the master list.
func (c *Client) subjectName(ctx context.Context, classID int, board string, subjectID int) string {
	subjects, _ := c.SubjectsByClassAndBoard(ctx, classID, board)
	for _, s := range subjects {
		if s.ID == subjectID {
			return s.Name
		}
	}
	if s, ok := c.fallback().SubjectByID(subjectID); ok {
		return s.Name
	}
	return fmt.Sprintf("Subject %d", subjectID)
}

func (c *Client) fallback() Catalog {
	if c.fallbacks == nil {
		return DefaultCatalog()
	}
	return c.fallbacks.Catalog()
}

var errNoURL = errors.New("no api url configured")

func (c *Client) fellBack(ctx context.Context, op string, cause error) {
	err := fmt.Errorf("%s: %w: %w", op, ErrFallback, cause)
	capitan.Emit(ctx, FallbackUsed,
		KeyOperation.Field(op),
		KeyReason.Field(cause.Error()),
	)
	if c.onFallback != nil {
		c.onFallback(op, err)
	}
}

// getList fetches a JSON array, substituting fallback on any failure or
// an empty result.
func getList[T any](ctx context.Context, c *Client, op, path string, fallback []T) []T {
	if c.baseURL == nil {
		c.fellBack(ctx, op, errNoURL)
		return fallback
	}
	var items []T
	if err := c.do(ctx, path, &items); err != nil {
		c.fellBack(ctx, op, err)
		return fallback
	}
	if len(items) == 0 {
		c.fellBack(ctx, op, errors.New("empty list"))
		return fallback
	}
	return items
}

func (c *Client) do(ctx context.Context, path string, dest any) error {
	reqURL := c.baseURL.ResolveReference(&url.URL{Path: path})
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("api %s returned status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func normalizeNotes(notes []Note) []Note {
	out := make([]Note, len(notes))
	for i, n := range notes {
		if n.DownloadURL == "" {
			n.DownloadURL = n.DriveLink
		}
		if n.ViewURL == "" && n.DriveLink != "" {
			n.ViewURL = strings.Replace(n.DriveLink, "/file/d/", "/document/d/", 1)
		}
		out[i] = n
	}
	return out
}

// slug turns a subject name into its URL form, "Computer Science" to
// "computer-science".
func slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}

func parseBaseURL(raw string) (*url.URL, error) {
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse api url %q: %w", raw, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
