package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// ImportErrorRow is one validation failure shown in the import preview.
type ImportErrorRow struct {
	Row     int
	Field   string
	Message string
}

// ImportValidationView summarizes an uploaded file before commit. The
// parsed rows and errors travel through hidden form fields so commit and
// error-report downloads need no server-side session.
type ImportValidationView struct {
	FileName       string
	TotalRows      int
	ValidRows      int
	ErrorRows      int
	Errors         []ImportErrorRow
	CanCommit      bool
	ParsedRowsJSON string
	ErrorsJSON     string
}

// IngredientImportData feeds the import page.
type IngredientImportData struct {
	Header HeaderData
}

func IngredientImportPage(data IngredientImportData) templ.Component {
	return Layout("Import ingredients", data.Header, IngredientImportContent(data))
}

func IngredientImportContent(data IngredientImportData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<section class="form-card"><h1>Import ingredients</h1>
<p>Download the template, fill it in, then upload it here as .xlsx or .csv.</p>
<p><a class="btn-secondary" href="/ingredients/import/template">Download template</a></p>
<form id="import-form" hx-post="/ingredients/import/validate" hx-target="#import-result" hx-encoding="multipart/form-data">
<label>File<input type="file" name="file" accept=".csv,.xlsx" required></label>
<button type="submit" class="btn">Validate</button>
</form>
<div id="import-result"></div>
</section>`)
		return err
	})
}

// ImportValidationResult renders the post-validation fragment with either a
// commit button or the error list and report download.
func ImportValidationResult(v ImportValidationView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<div class="import-summary">
<h2>%s</h2>
<p>%d rows · <span class="ok">%d valid</span> · <span class="bad">%d with errors</span></p>`,
			esc(v.FileName), v.TotalRows, v.ValidRows, v.ErrorRows); err != nil {
			return err
		}
		if len(v.Errors) > 0 {
			if _, err := io.WriteString(w, `<table class="data-table errors"><thead><tr><th>Row</th><th>Field</th><th>Problem</th></tr></thead><tbody>`); err != nil {
				return err
			}
			for _, e := range v.Errors {
				if _, err := fmt.Fprintf(w, `<tr><td>%d</td><td>%s</td><td>%s</td></tr>`, e.Row, esc(e.Field), esc(e.Message)); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, `</tbody></table>
<form method="post" action="/ingredients/import/error-report">
<input type="hidden" name="errors_json" value="%s">
<button type="submit" class="btn-secondary">Download error report</button>
</form>`, esc(v.ErrorsJSON)); err != nil {
				return err
			}
		}
		if v.CanCommit {
			if _, err := fmt.Fprintf(w, `<form hx-post="/ingredients/import/commit" hx-target="#import-result">
<input type="hidden" name="parsed_rows_json" value="%s">
<button type="submit" class="btn">Import valid rows</button>
</form>`, esc(v.ParsedRowsJSON)); err != nil {
				return err
			}
		} else {
			if _, err := io.WriteString(w, `<p class="bad">Fix the errors above and upload again.</p>`); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

// IngredientImportSuccess confirms a completed import.
func IngredientImportSuccess(imported int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<div class="import-summary ok">
<p>%d ingredients imported.</p>
<a class="btn" href="/ingredients" hx-get="/ingredients" hx-target="#main" hx-push-url="true">Back to ingredients</a>
</div>`, imported)
		return err
	})
}

// IngredientImportFailure reports rows that failed during commit.
func IngredientImportFailure(imported, failed int, errors []ImportErrorRow) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<div class="import-summary bad">
<p>%d imported, %d failed.</p>`, imported, failed); err != nil {
			return err
		}
		if len(errors) > 0 {
			if _, err := io.WriteString(w, `<table class="data-table errors"><thead><tr><th>Row</th><th>Field</th><th>Problem</th></tr></thead><tbody>`); err != nil {
				return err
			}
			for _, e := range errors {
				if _, err := fmt.Fprintf(w, `<tr><td>%d</td><td>%s</td><td>%s</td></tr>`, e.Row, esc(e.Field), esc(e.Message)); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, `</tbody></table>`); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}
