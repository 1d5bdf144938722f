package main

import (
	"context"
	"fmt"
	"html"
	"io"
	"log/slog"

	"github.com/a-h/templ"
	"github.com/pthm/hxtable"
	"github.com/pthm/hxtable/features/hovering"
	"github.com/pthm/hxtable/features/selection"
)

type person struct {
	FirstName string
}

var people = []person{
	{FirstName: "tanner"},
	{FirstName: "derek"},
	{FirstName: "joe"},
}

func newPeopleTable(logger *slog.Logger) *hxtable.Table[person] {
	return hxtable.New(hxtable.Options[person]{
		Data:     people,
		GetRowID: func(p person, _ int) string { return p.FirstName },
		Columns: []hxtable.Column[person]{
			hxtable.Accessor("firstName", "First Name", func(p person) string { return p.FirstName }),
			hxtable.Display("actions", "Actions", actionsCell),
		},
		Features: []hxtable.Feature[person]{
			hovering.New[person](),
			selection.New[person](),
		},
		Logger: logger,
	})
}

// actionsCell shows the row's button only while the row is hovered.
func actionsCell(r *hxtable.Row[person]) templ.Component {
	if !r.GetIsHovered() {
		return nil
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<button role="button">Greet %s</button>`, html.EscapeString(r.Original.FirstName))
		return err
	})
}

func page(table templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>hxtable</title>
<script src="https://unpkg.com/htmx.org@2.0.4"></script>
<style>tbody tr:hover { background: #eef; }</style>
</head>
<body>
`); err != nil {
			return err
		}
		if err := table.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n</body>\n</html>\n")
		return err
	})
}
