package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/profile-importer/internal/importer"
	"github.com/jonathan/profile-importer/internal/types"
)

// maxUploadBytes bounds export archives and profile documents. Real exports
// are a few megabytes; 32 MiB leaves generous headroom.
const maxUploadBytes = 32 << 20

var validate = validator.New()

// ProfileImporter is the importer boundary the server drives. The concrete
// importer never returns an error; every outcome is an ImportResult.
type ProfileImporter interface {
	Import(ctx context.Context, in importer.Input) *types.ImportResult
}

// importRequest is the JSON body for URL-based and hand-off imports. An empty
// body is valid: the importer then checks the hand-off channel.
type importRequest struct {
	URL string `json:"url" validate:"omitempty,url"`
}

// handleImport accepts either a multipart upload (field "file") or a JSON
// body with an optional profile URL. The import itself cannot fail with an
// error; malformed requests are the only 4xx source here.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	contentType := r.Header.Get("Content-Type")

	var in importer.Input
	switch {
	case strings.HasPrefix(contentType, "multipart/form-data"):
		filename, data, err := readUpload(r)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		in.Filename = filename
		in.Data = data
		in.URL = r.FormValue("url")

	default:
		req, err := readImportRequest(r)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		in.URL = req.URL
	}

	result := s.importer.Import(r.Context(), in)
	s.jsonResponse(w, http.StatusOK, result)
}

// readUpload extracts the uploaded file from a multipart request.
func readUpload(r *http.Request) (string, []byte, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return "", nil, errors.New("could not parse multipart form")
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return "", nil, errors.New("multipart form is missing the 'file' field")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		return "", nil, errors.New("could not read the uploaded file")
	}
	if len(data) > maxUploadBytes {
		return "", nil, errors.New("uploaded file exceeds the size limit")
	}

	return header.Filename, data, nil
}

// readImportRequest decodes and validates the JSON body. An empty body maps
// to an empty request.
func readImportRequest(r *http.Request) (*importRequest, error) {
	var req importRequest

	body, err := io.ReadAll(io.LimitReader(r.Body, maxUploadBytes))
	if err != nil {
		return nil, errors.New("could not read the request body")
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return &req, nil
	}

	if err := json.Unmarshal(body, &req); err != nil {
		return nil, errors.New("request body is not valid JSON")
	}
	if err := validate.Struct(&req); err != nil {
		return nil, errors.New("'url' must be a valid URL")
	}

	return &req, nil
}
