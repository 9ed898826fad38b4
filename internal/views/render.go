package views

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/dustin/go-humanize"
)

//go:embed templates/*.html
var templateFiles embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFiles, "templates/*.html"))

// PageData feeds the single-page UI. At most one of Warning, Error and Report
// is expected to be set.
type PageData struct {
	JobDescription string
	Warning        string
	Error          string
	Report         *Report
	MaxFileSize    int64
}

func (p PageData) NoGapsMessage() string    { return NoGapsMessage }
func (p PageData) OptimizedMessage() string { return OptimizedMessage }
func (p PageData) NoJobsMessage() string    { return NoJobsMessage }

// UploadLimit formats MaxFileSize for the form hint, e.g. "10 MiB".
func (p PageData) UploadLimit() string {
	if p.MaxFileSize <= 0 {
		return ""
	}
	return humanize.IBytes(uint64(p.MaxFileSize))
}

func RenderPage(w io.Writer, data PageData) error {
	if err := pageTemplate.ExecuteTemplate(w, "page", data); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}
