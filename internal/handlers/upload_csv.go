package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/sbilibin2017/gw-subscription-tracker/internal/logger"
	"github.com/sbilibin2017/gw-subscription-tracker/internal/models"
	"github.com/sbilibin2017/gw-subscription-tracker/internal/services"
)

//go:generate mockgen -source=upload_csv.go -destination=upload_csv_mock.go -package=handlers

// UploadFormField is the multipart field carrying the CSV file.
const UploadFormField = "file"

// SubscriptionCSVImporter defines the interface that the service must implement.
type SubscriptionCSVImporter interface {
	ImportCSV(ctx context.Context, r io.Reader, size int64) (*models.UploadCSVResponse, error)
}

// NewUploadCSVHandler returns an HTTP handler importing subscriptions from a CSV file.
// Requests larger than maxBytes are rejected.
// @Summary Import subscriptions from CSV
// @Description Header line is ignored. Each following line holds name, provider, status, monthlyCost, renewalDate, owner, category.
// @Description Short and blank lines are skipped; unparseable cost and renewal values are defaulted.
// @Tags subscriptions
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Success 200 {object} models.UploadCSVResponse "Import result"
// @Failure 400 {object} models.ErrorResponse "No file uploaded."
// @Failure 413 {object} models.ErrorResponse "Uploaded file is too large."
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /api/subscriptions/upload-csv [post]
func NewUploadCSVHandler(svc SubscriptionCSVImporter, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if maxBytes > 0 {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
		}

		file, header, err := r.FormFile(UploadFormField)
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				logger.Log.Warnw("csv upload too large", "limit", maxBytes)
				writeError(w, http.StatusRequestEntityTooLarge, msgFileTooLarge)
				return
			}
			logger.Log.Warnw("csv upload without file", "error", err)
			writeError(w, http.StatusBadRequest, msgNoFile)
			return
		}
		defer file.Close()

		resp, err := svc.ImportCSV(r.Context(), file, header.Size)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmptyUpload):
				writeError(w, http.StatusBadRequest, msgNoFile)
			case errors.Is(err, services.ErrUnreadableUpload):
				writeError(w, http.StatusBadRequest, msgUnreadableFile)
			default:
				logger.Log.Errorw("failed to import csv", "filename", header.Filename, "error", err)
				writeError(w, http.StatusInternalServerError, msgInternal)
			}
			return
		}

		logger.Log.Infow("csv upload processed", "filename", header.Filename, "count", resp.Count)
		writeJSON(w, http.StatusOK, resp)
	}
}
