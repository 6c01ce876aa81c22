package server

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/zoobzio/loadz/content"
)

type contentAPI struct {
	src content.CatalogSource
}

func registerContentAPI(g *echo.Group, src content.CatalogSource) {
	api := contentAPI{src: src}

	g.GET("", api.home)
	g.GET("/home/classes", api.classes)
	g.GET("/home/achievements", api.achievements)
	g.GET("/home/testimonials", api.featuredTestimonials)
	g.GET("/classes", api.classes)
	g.GET("/classes/:class", api.classByID)
	g.GET("/classes/:class/boards", api.boards)
	g.GET("/classes/:class/:board/subjects", api.subjects)
	g.GET("/classes/:class/:board/:subject/notes", api.notes)
	g.GET("/classes/:class/:board/:subject/drive-link", api.driveLink)
	g.GET("/testimonials", api.testimonials)
	g.GET("/gallery", api.gallery)
	g.GET("/gallery/categories", api.galleryCategories)
}

func (api contentAPI) home(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, content.Status{
		Message:   "Welcome to Atom Institute API",
		Status:    "online",
		Timestamp: time.Now(),
	})
}

func (api contentAPI) classes(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.src.Catalog().Classes)
}

func (api contentAPI) achievements(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.src.Catalog().Achievements)
}

func (api contentAPI) featuredTestimonials(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.src.Catalog().FeaturedTestimonials(3))
}

func (api contentAPI) testimonials(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.src.Catalog().Testimonials)
}

func (api contentAPI) gallery(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.src.Catalog().Gallery)
}

func (api contentAPI) galleryCategories(ctx echo.Context) error {
	var cats []string
	seen := make(map[string]bool)
	for _, img := range api.src.Catalog().Gallery {
		if !seen[img.Category] {
			seen[img.Category] = true
			cats = append(cats, img.Category)
		}
	}
	return ctx.JSON(http.StatusOK, cats)
}

func (api contentAPI) classByID(ctx echo.Context) error {
	id, err := classParam(ctx)
	if err != nil {
		return err
	}
	cl, ok := api.src.Catalog().ClassByID(id)
	if !ok {
		return fmt.Errorf("class %d: %w", id, content.ErrNotFound)
	}
	return ctx.JSON(http.StatusOK, cl)
}

func (api contentAPI) boards(ctx echo.Context) error {
	id, err := classParam(ctx)
	if err != nil {
		return err
	}
	cat := api.src.Catalog()
	cl, ok := cat.ClassByID(id)
	if !ok {
		return fmt.Errorf("class %d: %w", id, content.ErrNotFound)
	}
	if len(cl.Boards) > 0 {
		return ctx.JSON(http.StatusOK, cl.Boards)
	}
	return ctx.JSON(http.StatusOK, cat.Boards)
}

// The nested routes take a class number (10, 11, 12); class ids are
// accepted too.
func (api contentAPI) subjects(ctx echo.Context) error {
	num, err := classParam(ctx)
	if err != nil {
		return err
	}
	subjects, err := api.src.Catalog().SubjectsFor(content.ClassNumber(num), ctx.Param("board"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, subjects)
}

func (api contentAPI) notes(ctx echo.Context) error {
	num, err := classParam(ctx)
	if err != nil {
		return err
	}
	notes, err := api.src.Catalog().NotesFor(content.ClassNumber(num), ctx.Param("board"), ctx.Param("subject"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, notes)
}

func (api contentAPI) driveLink(ctx echo.Context) error {
	num, err := classParam(ctx)
	if err != nil {
		return err
	}
	link, err := api.src.Catalog().DriveLink(content.ClassNumber(num), ctx.Param("board"), ctx.Param("subject"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{"googleDriveLink": link})
}

func classParam(ctx echo.Context) (int, error) {
	n, err := strconv.Atoi(ctx.Param("class"))
	if err != nil {
		return 0, errBadClass
	}
	return n, nil
}
