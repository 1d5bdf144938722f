package hxtable

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Column describes one rendered column.
type Column[T any] struct {
	ID     string
	Header string
	Cell   func(r *Row[T]) templ.Component
}

// Accessor returns a column whose cell is the escaped text get returns.
func Accessor[T any](id, header string, get func(T) string) Column[T] {
	return Column[T]{
		ID:     id,
		Header: header,
		Cell:   func(r *Row[T]) templ.Component { return Text(get(r.Original)) },
	}
}

// Display returns a column with a custom cell, for content that is not
// derived from a single field (action buttons, badges).
func Display[T any](id, header string, cell func(*Row[T]) templ.Component) Column[T] {
	return Column[T]{ID: id, Header: header, Cell: cell}
}

// Text renders s, HTML-escaped.
func Text(s string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}

// RowAttrsFunc returns extra attributes for a row's <tr>. It may return nil.
type RowAttrsFunc[T any] func(r *Row[T]) templ.Attributes

// RenderTable renders the table's header and body.
func RenderTable[T any](t *Table[T], rowAttrs RowAttrsFunc[T]) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<table class="hxtable"><thead><tr>`); err != nil {
			return err
		}
		for _, col := range t.opts.Columns {
			if _, err := fmt.Fprintf(w, `<th data-column-id="%s">%s</th>`,
				templ.EscapeString(col.ID), templ.EscapeString(col.Header)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</tr></thead>`); err != nil {
			return err
		}
		if err := RenderBody(t, rowAttrs).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</table>`)
		return err
	})
}

// RenderBody renders the <tbody>.
func RenderBody[T any](t *Table[T], rowAttrs RowAttrsFunc[T]) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<tbody>`); err != nil {
			return err
		}
		for _, r := range t.rows {
			if err := renderRow(ctx, w, r, rowAttrs); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody>`)
		return err
	})
}

// RenderCells renders a row's <td> elements without the enclosing <tr>.
// It is the response to a hover toggle: the <tr> under the pointer stays in
// the document and only its contents are replaced.
func RenderCells[T any](r *Row[T]) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, col := range r.table.opts.Columns {
			if _, err := io.WriteString(w, `<td>`); err != nil {
				return err
			}
			if col.Cell != nil {
				if cell := col.Cell(r); cell != nil {
					if err := cell.Render(ctx, w); err != nil {
						return err
					}
				}
			}
			if _, err := io.WriteString(w, `</td>`); err != nil {
				return err
			}
		}
		return nil
	})
}

func renderRow[T any](ctx context.Context, w io.Writer, r *Row[T], rowAttrs RowAttrsFunc[T]) error {
	attrs := templ.Attributes{"data-row-id": r.ID}
	if rowAttrs != nil {
		for k, v := range rowAttrs(r) {
			attrs[k] = v
		}
	}

	if _, err := io.WriteString(w, `<tr`); err != nil {
		return err
	}
	if err := templ.RenderAttributes(ctx, w, attrs); err != nil {
		return err
	}
	if _, err := io.WriteString(w, `>`); err != nil {
		return err
	}
	if err := RenderCells(r).Render(ctx, w); err != nil {
		return err
	}
	_, err := io.WriteString(w, `</tr>`)
	return err
}
