package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/ukaji3/leasemerge-go/pkg/leasemerge"
	"github.com/ukaji3/leasemerge-go/pkg/leasemerge/document"
	"github.com/ukaji3/leasemerge-go/pkg/leasemerge/models"
	"github.com/ukaji3/leasemerge-go/pkg/leasemerge/output"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Error kinds reported to clients.
const (
	kindRequest    = "request"
	kindExtraction = "extraction"
	kindMerge      = "merge"
)

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

type mergeResponse struct {
	Summary  []map[string]string   `json:"summary"`
	Entry    models.AuditEntry     `json:"entry"`
	Bindings models.ColumnBindings `json:"bindings"`
	Row      int                   `json:"row"`
	FileName string                `json:"file_name"`
	Workbook []byte                `json:"workbook"`
}

type historyResponse struct {
	Count   int                 `json:"count"`
	Entries []map[string]string `json:"entries"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes())
	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes()); err != nil {
		writeError(w, http.StatusBadRequest, kindRequest, fmt.Errorf("invalid upload: %w", err))
		return
	}

	text, err := readFirstPage(r, "document")
	if err != nil {
		writeError(w, http.StatusBadRequest, kindRequest, err)
		return
	}

	rec, err := s.pipeline.Extract(text)
	if err != nil {
		s.writePipelineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"record":  rec,
		"summary": output.TableRecords(models.RecordTable(rec)),
	})
}

func (s *Server) handleMerge(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes())
	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes()); err != nil {
		writeError(w, http.StatusBadRequest, kindRequest, fmt.Errorf("invalid upload: %w", err))
		return
	}

	text, err := readFirstPage(r, "document")
	if err != nil {
		writeError(w, http.StatusBadRequest, kindRequest, err)
		return
	}

	workbook, header, err := r.FormFile("workbook")
	if err != nil {
		writeError(w, http.StatusBadRequest, kindRequest, fmt.Errorf("workbook: %w", err))
		return
	}
	defer workbook.Close()

	source := filepath.Base(header.Filename)
	res, err := s.pipeline.Run(text, workbook, source)
	if err != nil {
		s.writePipelineError(w, err)
		return
	}

	fileName := "duplicated_" + source
	if r.URL.Query().Get("format") == "xlsx" {
		w.Header().Set("Content-Type", xlsxContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
		w.Header().Set("Content-Length", strconv.Itoa(len(res.Workbook)))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(res.Workbook); err != nil {
			s.logger.Warn("failed to write workbook", zap.Error(err))
		}
		return
	}

	writeJSON(w, http.StatusOK, mergeResponse{
		Summary:  output.TableRecords(res.Summary()),
		Entry:    res.Entry,
		Bindings: res.Bindings,
		Row:      res.Row,
		FileName: fileName,
		Workbook: res.Workbook,
	})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	log := s.pipeline.AuditLog()
	table := log.Table()
	writeJSON(w, http.StatusOK, historyResponse{
		Count:   len(table.Rows),
		Entries: output.TableRecords(table),
	})
}

// writePipelineError reports missing fields separately from workbook failures.
func (s *Server) writePipelineError(w http.ResponseWriter, err error) {
	switch {
	case leasemerge.IsExtraction(err):
		writeError(w, http.StatusUnprocessableEntity, kindExtraction,
			fmt.Errorf("could not extract required fields: %w", err))
	case leasemerge.IsMerge(err) && errors.Is(err, leasemerge.ErrInvalidFormat):
		writeError(w, http.StatusBadRequest, kindMerge,
			fmt.Errorf("could not write/save workbook: %w", err))
	case leasemerge.IsMerge(err):
		writeError(w, http.StatusInternalServerError, kindMerge,
			fmt.Errorf("could not write/save workbook: %w", err))
	default:
		s.logger.Error("unexpected pipeline failure", zap.Error(err))
		writeError(w, http.StatusInternalServerError, kindMerge, err)
	}
}

func readFirstPage(r *http.Request, field string) (string, error) {
	file, _, err := r.FormFile(field)
	if err != nil {
		return "", fmt.Errorf("%s: %w", field, err)
	}
	defer file.Close()

	pages, err := document.ReadPages(file)
	if err != nil {
		return "", fmt.Errorf("%s: %w", field, err)
	}
	return document.FirstPage(pages)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, kind string, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error(), Kind: kind})
}
