package api

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
)

//go:embed templates/index.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// PageInfo describes the deployment shown on the form page.
type PageInfo struct {
	Title    string
	Provider string
	Model    string
	Label    string
}

// NumberedItem is one generated post with its 1-based position.
type NumberedItem struct {
	Number int
	Text   string
}

// pageData is the data passed to the page template. At most one of Items,
// Warning and Error is set for a submitted form.
type pageData struct {
	PageInfo
	Examples string
	Items    []NumberedItem
	Warning  string
	Error    string
}

func newPageData(info PageInfo, examples []string) pageData {
	return pageData{
		PageInfo: info,
		Examples: strings.Join(examples, "\n"),
	}
}

func numberItems(items []string) []NumberedItem {
	numbered := make([]NumberedItem, len(items))
	for i, item := range items {
		numbered[i] = NumberedItem{Number: i + 1, Text: item}
	}
	return numbered
}

// renderPage executes the page template into a buffer first so that a
// template failure can still produce a clean error response.
func renderPage(w http.ResponseWriter, log *slog.Logger, status int, data pageData) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		log.Error("failed to render page", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Error("failed to write page", "error", err)
	}
}

func defaultPageInfo(info PageInfo) PageInfo {
	if info.Title == "" {
		info.Title = "Web3Wizard Tweet Generator"
	}
	if info.Label == "" {
		info.Label = "Tweet"
	}
	return info
}
