package pages

import (
	"class-notes/models"
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/a-h/templ"
)

// Page is everything the notes page renders
type Page struct {
	School  string
	Classes []models.ClassSummary
	Schema  models.Schema

	// Current is the selected class; empty renders the home page
	Current string
	Notes   []models.Note
	Editing *models.Note
	Today   string

	Flash string
	Error string
}

// ClassPath is the page URL of a class
func ClassPath(className string) string {
	return "/classes/" + url.PathEscape(className)
}

// htmlWriter keeps the first write error so components can write unconditionally
type htmlWriter struct {
	w   io.Writer
	err error
}

func (hw *htmlWriter) raw(s string) {
	if hw.err == nil {
		_, hw.err = io.WriteString(hw.w, s)
	}
}

func (hw *htmlWriter) text(s string) {
	hw.raw(templ.EscapeString(s))
}

func (hw *htmlWriter) rawf(format string, args ...any) {
	hw.raw(fmt.Sprintf(format, args...))
}

func (hw *htmlWriter) render(ctx context.Context, c templ.Component) {
	if hw.err == nil {
		hw.err = c.Render(ctx, hw.w)
	}
}

// Index renders the full page
func Index(p Page) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}

		hw.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		hw.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		hw.raw(`<title>`)
		hw.text(p.School)
		hw.raw(`</title><style>`)
		hw.raw(`body{font-family:sans-serif;margin:0;display:flex}nav{width:14rem;padding:1rem;background:#f3f3f3;min-height:100vh}`)
		hw.raw(`nav a{display:block;padding:.3rem 0}main{padding:1rem 2rem;flex:1}table{border-collapse:collapse;width:100%}`)
		hw.raw(`td,th{border:1px solid #ccc;padding:.4rem;vertical-align:top;white-space:pre-wrap}.flash{color:#176}.error{color:#a11}`)
		hw.raw(`</style></head><body>`)

		hw.render(ctx, Sidebar(p.Classes, p.Current))

		hw.raw(`<main><h1>`)
		hw.text(p.School)
		hw.raw(`</h1>`)

		if p.Flash != "" {
			hw.raw(`<p class="flash">`)
			hw.text(p.Flash)
			hw.raw(`</p>`)
		}
		if p.Error != "" {
			hw.raw(`<p class="error">`)
			hw.text(p.Error)
			hw.raw(`</p>`)
		}

		if p.Current == "" {
			hw.raw(`<h2>Welcome</h2><p>Pick a class on the left to read, write and export its notes.</p>`)
		} else {
			hw.raw(`<h2>`)
			hw.text(p.Current + " Notes")
			hw.raw(`</h2>`)
			hw.render(ctx, NoteForm(p.Current, p.Schema, nil, p.Today))
			hw.render(ctx, NotesTable(p.Current, p.Schema, p.Notes))
			if p.Editing != nil {
				hw.render(ctx, NoteForm(p.Current, p.Schema, p.Editing, p.Today))
			}
		}

		hw.raw(`</main></body></html>`)
		return hw.err
	})
}

// Sidebar lists every class with its note count
func Sidebar(classes []models.ClassSummary, current string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}

		hw.raw(`<nav><a href="/">Home</a>`)
		for _, class := range classes {
			hw.rawf(`<a href="%s"`, templ.EscapeString(ClassPath(class.Name)))
			if class.Name == current {
				hw.raw(` aria-current="page"`)
			}
			hw.raw(`>`)
			hw.text(class.Name)
			hw.rawf(` (%d)</a>`, class.Count)
		}
		hw.raw(`</nav>`)

		return hw.err
	})
}

// NoteForm renders the add form, or the edit form when note is set
func NoteForm(className string, schema models.Schema, note *models.Note, today string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}

		action := ClassPath(className) + "/notes"
		submit := "Add Note"
		if note != nil {
			action = fmt.Sprintf("%s/%d", action, note.ID)
			submit = "Update Note"
			hw.rawf(`<h3>Edit note %d</h3>`, note.ID)
		}

		hw.rawf(`<form method="post" action="%s">`, templ.EscapeString(action))
		for _, field := range schema.Fields {
			value := ""
			if note != nil {
				value = note.Get(field.Name)
			} else if field.Name == "date" {
				value = today
			}

			hw.raw(`<p><label>`)
			hw.text(field.Label)
			hw.raw(`<br>`)
			switch {
			case field.Multiline:
				hw.rawf(`<textarea name="%s" rows="5" cols="60" required>`, field.Name)
				hw.text(value)
				hw.raw(`</textarea>`)
			case field.Name == "date":
				hw.rawf(`<input type="date" name="%s" value="%s" required>`, field.Name, templ.EscapeString(value))
			default:
				hw.rawf(`<input type="text" name="%s" value="%s" required>`, field.Name, templ.EscapeString(value))
			}
			hw.raw(`</label></p>`)
		}
		hw.rawf(`<button type="submit">%s</button></form>`, submit)

		return hw.err
	})
}

// NotesTable renders the notes of a class with edit, delete and export actions
func NotesTable(className string, schema models.Schema, notes []models.Note) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}

		if len(notes) == 0 {
			hw.raw(`<p>No notes found for `)
			hw.text(className)
			hw.raw(`. Add a note above!</p>`)
			return hw.err
		}

		base := ClassPath(className)

		hw.raw(`<table><thead><tr><th>ID</th>`)
		for _, field := range schema.Fields {
			hw.raw(`<th>`)
			hw.text(field.Label)
			hw.raw(`</th>`)
		}
		hw.raw(`<th></th></tr></thead><tbody>`)

		for _, note := range notes {
			hw.rawf(`<tr><td>%d</td>`, note.ID)
			for _, field := range schema.Fields {
				hw.raw(`<td>`)
				hw.text(note.Get(field.Name))
				hw.raw(`</td>`)
			}
			hw.rawf(`<td><a href="%s?edit=%d">Edit</a> `, templ.EscapeString(base), note.ID)
			hw.rawf(`<form method="post" action="%s/notes/%d/delete" style="display:inline">`, templ.EscapeString(base), note.ID)
			hw.raw(`<button type="submit">Delete</button></form></td></tr>`)
		}
		hw.raw(`</tbody></table>`)

		exportBase := "/api/classes/" + url.PathEscape(className) + "/export?format="
		hw.raw(`<p>Download `)
		hw.text(className)
		hw.rawf(` notes as <a href="%sdocx">.docx</a> or <a href="%spdf">.pdf</a></p>`,
			templ.EscapeString(exportBase), templ.EscapeString(exportBase))

		return hw.err
	})
}
