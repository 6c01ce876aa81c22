package main

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/zoobzio/loadz"
	"github.com/zoobzio/loadz/content"
)

const fetchTimeout = 10 * time.Second

type browseCommand struct {
	app *application

	ClassID   int
	Board     string
	SubjectID int
	APIURL    string
}

func newBrowseCommand(app *application) *cobra.Command {
	browseCmd := &browseCommand{app: app}

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Print classes, subjects and notes from the content API",
		Long: "Print classes, subjects and notes from the content API. " +
			"Without an API URL, or when the API fails, the built-in catalog is shown.",
		RunE: browseCmd.browse,
	}

	cmd.Flags().IntVar(&browseCmd.ClassID, "class", 0, "class id (1-3) to list subjects for")
	cmd.Flags().StringVar(&browseCmd.Board, "board", "CBSE", "board to list subjects for")
	cmd.Flags().IntVar(&browseCmd.SubjectID, "subject", 0, "subject id to list notes for (requires --class)")
	cmd.Flags().StringVar(&browseCmd.APIURL, "api-url", "", "content API base URL (overrides config)")

	return cmd
}

func (b *browseCommand) browse(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	apiURL := b.app.cfg.APIURL
	if b.APIURL != "" {
		apiURL = b.APIURL
	}

	client, err := content.NewClient(apiURL)
	if err != nil {
		return err
	}
	if !client.Online() {
		b.app.log.Info("no API URL configured, showing built-in catalog")
	}

	loads := loadz.NewMultiStore[string](nil)
	out := cmd.OutOrStdout()

	switch {
	case b.ClassID == 0:
		classes, _ := fetch(ctx, loads, "classes", client.Classes)
		renderClasses(out, classes)
		achievements, _ := fetch(ctx, loads, "achievements", client.HomeAchievements)
		renderAchievements(out, achievements)

	case b.SubjectID == 0:
		subjects, _ := fetch(ctx, loads, "subjects", func(ctx context.Context) ([]content.Subject, error) {
			return client.SubjectsByClassAndBoard(ctx, b.ClassID, b.Board)
		})
		renderSubjects(out, content.ClassNumber(b.ClassID), b.Board, subjects)
		if site := client.NotesURL(b.ClassID, b.Board); site != "" {
			fmt.Fprintf(out, "More notes: %s\n", site)
		}

	default:
		notes, _ := fetch(ctx, loads, "notes", func(ctx context.Context) ([]content.Note, error) {
			return client.NotesBySubject(ctx, b.ClassID, b.Board, b.SubjectID)
		})
		renderNotes(out, notes)
		link, _ := fetch(ctx, loads, "drive_link", func(ctx context.Context) (string, error) {
			return client.SubjectDriveLink(ctx, b.ClassID, b.Board, b.SubjectID)
		})
		if link != "" {
			fmt.Fprintf(out, "Drive folder: %s\n", link)
		}
	}

	if loads.HasAnyError() {
		errs := loads.Errors()
		keys := make([]string, 0, len(errs))
		for k := range errs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			b.app.log.WithField("fetcher", k).WithError(errs[k]).Warn("could not load")
		}
		return fmt.Errorf("%d of the requested resources failed to load", len(keys))
	}
	return nil
}

// fetch runs producer once through a Fetcher and records its loading and
// error state under name.
func fetch[T any](ctx context.Context, loads *loadz.MultiStore[string], name string, producer loadz.Producer[T]) (T, error) {
	f := loadz.NewFetcher(name, producer,
		loadz.WithTimeout[T](fetchTimeout),
	).Manual()

	loads.SetLoading(name, true)
	v, _ := f.Run(ctx)
	loads.SetLoading(name, false)
	loads.SetError(name, f.Err())

	return v, f.Err()
}

func newTable(out io.Writer, title string) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.SetTitle(title)
	return t
}

func renderClasses(out io.Writer, classes []content.Class) {
	t := newTable(out, "Classes")
	t.AppendHeader(table.Row{"ID", "Name", "Description"})
	for _, c := range classes {
		t.AppendRow(table.Row{c.ID, c.Name, c.Description})
	}
	t.Render()
}

func renderAchievements(out io.Writer, achievements []content.Achievement) {
	t := newTable(out, "Achievements")
	t.AppendHeader(table.Row{"Title", "Description"})
	for _, a := range achievements {
		t.AppendRow(table.Row{a.Title, a.Description})
	}
	t.Render()
}

func renderSubjects(out io.Writer, classNum int, board string, subjects []content.Subject) {
	t := newTable(out, fmt.Sprintf("Class %d %s subjects", classNum, board))
	t.AppendHeader(table.Row{"ID", "", "Name", "Description"})
	for _, s := range subjects {
		t.AppendRow(table.Row{s.ID, s.Icon, s.Name, s.Description})
	}
	t.Render()
}

func renderNotes(out io.Writer, notes []content.Note) {
	t := newTable(out, "Notes")
	t.AppendHeader(table.Row{"ID", "Title", "Type", "View"})
	for _, n := range notes {
		t.AppendRow(table.Row{n.ID, n.Title, n.FileType, n.ViewURL})
	}
	t.Render()
}
