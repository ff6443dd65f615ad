package usecases

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	domainerrors "gowaveline.backend/internal/domain/errors"
	"gowaveline.backend/internal/domain/repositories"
	"gowaveline.backend/internal/infrastructure/pdf"
)

// PreAppResult is the rendered pre-application contract returned to the
// frontend: the PDF as a base64 data URL plus the business name for the
// download filename.
type PreAppResult struct {
	PDFBase64    string `json:"pdfBase64"`
	BusinessName string `json:"businessName"`
}

// PDFUsecase handles pre-application PDF generation
type PDFUsecase struct {
	industryRepo repositories.IndustryRepository
	renderer     *pdf.Renderer
}

// NewPDFUsecase creates a new PDF usecase
func NewPDFUsecase(industryRepo repositories.IndustryRepository, renderer *pdf.Renderer) *PDFUsecase {
	return &PDFUsecase{
		industryRepo: industryRepo,
		renderer:     renderer,
	}
}

// Generate renders the pre-application form for one industry and returns
// it base64-encoded. Unknown industry slugs fall back to a generic header
// rather than failing the merchant's download.
func (u *PDFUsecase) Generate(ctx context.Context, industrySlug string, formData map[string]interface{}) (*PreAppResult, error) {
	industryName := "General"
	if industrySlug != "" {
		industry, err := u.industryRepo.GetBySlug(ctx, industrySlug)
		switch {
		case err == nil:
			industryName = industry.Name
		case !errors.Is(err, domainerrors.ErrNotFound):
			return nil, err
		}
	}

	fields := stringifyFormData(formData)

	raw, err := u.renderer.Render(industryName, fields)
	if err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}

	return &PreAppResult{
		PDFBase64:    "data:application/pdf;base64," + base64.StdEncoding.EncodeToString(raw),
		BusinessName: businessNameOf(fields),
	}, nil
}

func stringifyFormData(formData map[string]interface{}) map[string]string {
	fields := make(map[string]string, len(formData))
	for k, v := range formData {
		switch val := v.(type) {
		case string:
			fields[k] = val
		case nil:
			// skip empty form slots
		default:
			fields[k] = fmt.Sprintf("%v", val)
		}
	}
	return fields
}

func businessNameOf(fields map[string]string) string {
	for _, key := range []string{"businessName", "legalName", "dba"} {
		if name := fields[key]; name != "" {
			return name
		}
	}
	return "merchant"
}
