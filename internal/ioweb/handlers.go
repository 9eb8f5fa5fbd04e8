package ioweb

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Paula-Iglesias-Rivas/EModelDB/pkg/catalog"
	"github.com/Paula-Iglesias-Rivas/EModelDB/pkg/filter"
	"github.com/gnames/gnfmt"
)

// ContactEmail is shown in the page footer for user support.
const ContactEmail = "paula.iglesias.rivas@uvigo.es"

type rowView struct {
	Record   catalog.ModelRecord
	Selected bool
}

type indexView struct {
	Title           string
	Query           queryState
	ReturnQuery     string
	TaxonomicGroups []string
	MatrixTypes     []string
	Rows            []rowView
	Total           int
	SelectedCount   int
	ContactEmail    string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	sess := s.ensureSession(w, r)
	q, preds, sortBy := parseQuery(r.URL.Query())

	subset := filter.Apply(s.records, preds)
	subset = filter.Sort(subset, sortBy)

	sess.mu.Lock()
	rows := make([]rowView, len(subset))
	for i, rec := range subset {
		rows[i] = rowView{
			Record:   rec,
			Selected: sess.sel.IsSelected(rec.Name),
		}
	}
	selected := sess.sel.Len()
	sess.mu.Unlock()

	data := indexView{
		Title:           "EModelDB",
		Query:           q,
		ReturnQuery:     q.Encode(),
		TaxonomicGroups: catalog.TaxonomicGroups(s.records),
		MatrixTypes:     catalog.MatrixTypes(s.records),
		Rows:            rows,
		Total:           len(s.records),
		SelectedCount:   selected,
		ContactEmail:    ContactEmail,
	}
	s.render(w, "index.html", data, http.StatusOK)
}

// handleSelect updates the session selection from the listing form.
// Actions: "apply" reconciles the checkboxes of the listed rows,
// "select-all" replaces the selection with the current filtered subset,
// "clear" empties the selection. The filter state is untouched.
func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	sess := s.ensureSession(w, r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	_, preds, _ := parseQuery(r.Form)

	sess.mu.Lock()
	switch r.FormValue("action") {
	case "select-all":
		sess.sel.ReplaceAll(filter.Apply(s.records, preds))
	case "clear":
		sess.sel.Clear()
	default: // apply
		checked := make(map[string]struct{})
		for _, name := range r.Form["selected"] {
			checked[name] = struct{}{}
		}
		// only rows visible in the form are reconciled; selections of
		// records outside the current filter are preserved
		for _, name := range r.Form["listed"] {
			if _, ok := checked[name]; ok {
				sess.sel.Add(name)
			} else {
				sess.sel.Remove(name)
			}
		}
	}
	sess.mu.Unlock()

	target := "/"
	if ret := r.FormValue("return"); ret != "" {
		target = "/?" + ret
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// handleExport streams the artifact for the session's selection: the
// matrix file itself for a single record, a ZIP archive otherwise.
// The session lock serializes export requests within one session.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	sess := s.ensureSession(w, r)

	sess.mu.Lock()
	defer sess.mu.Unlock()

	records := sess.sel.Records(s.records)
	artifact, err := s.exporter.Export(r.Context(), records)
	if err != nil {
		s.renderError(w, err, http.StatusUnprocessableEntity)
		return
	}

	w.Header().Set("Content-Type", artifact.MIMEType)
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(artifact.Data)))
	w.Write(artifact.Data)
}

type matrixView struct {
	Title        string
	Name         string
	Content      string
	ContactEmail string
}

// handleMatrix previews the matrix file of one record in the browser.
func (s *Server) handleMatrix(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	rec, ok := catalog.ByName(s.records, name)
	if !ok {
		s.renderMessage(w,
			fmt.Sprintf("Unknown model %q", name),
			http.StatusNotFound)
		return
	}

	path := filepath.Join(s.cfg.Catalog.MatrixDir, rec.MatrixFile)
	data, err := os.ReadFile(path)
	if err != nil {
		s.renderMessage(w,
			fmt.Sprintf("No matrix file found for %s model", rec.Name),
			http.StatusNotFound)
		return
	}

	s.render(w, "matrix.html", matrixView{
		Title:        rec.Name + " matrix | EModelDB",
		Name:         rec.Name,
		Content:      string(data),
		ContactEmail: ContactEmail,
	}, http.StatusOK)
}

// handleAPIModels returns the filtered listing as JSON. The same query
// parameters as the HTML view apply.
func (s *Server) handleAPIModels(w http.ResponseWriter, r *http.Request) {
	_, preds, sortBy := parseQuery(r.URL.Query())
	subset := filter.Sort(filter.Apply(s.records, preds), sortBy)

	type apiModel struct {
		ID string `json:"id"`
		catalog.ModelRecord
	}
	models := make([]apiModel, len(subset))
	for i, rec := range subset {
		models[i] = apiModel{ID: rec.ID(), ModelRecord: rec}
	}

	payload := struct {
		Total  int        `json:"total"`
		Models []apiModel `json:"models"`
	}{
		Total:  len(models),
		Models: models,
	}

	enc := gnfmt.GNjson{Pretty: true}
	data, err := enc.Encode(payload)
	if err != nil {
		http.Error(w, "cannot encode models",
			http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}
