package services

import (
	"context"
	"fmt"

	"github.com/jdisla/medioambiente-cli/internal/api"
	"github.com/jdisla/medioambiente-cli/internal/common"
	"github.com/jdisla/medioambiente-cli/internal/models"
)

// ReportService manages the citizen's environmental damage reports.
// All operations require an authenticated session; without one the API
// rejects the request and the error surfaces through the client.
type ReportService interface {
	Crear(ctx context.Context, r models.NuevoReporte) error
	Listar(ctx context.Context) ([]models.Reporte, error)
	// Obtener finds one of the citizen's reports by id. The API exposes
	// no per-report endpoint, so this filters the list server response.
	Obtener(ctx context.Context, id string) (*models.Reporte, error)
}

type reportAPI interface {
	Reportes(ctx context.Context) ([]models.Reporte, error)
	CrearReporte(ctx context.Context, r models.NuevoReporte) error
}

type reportService struct {
	api reportAPI
}

func NewReportService(api reportAPI) ReportService {
	return &reportService{api: api}
}

func (s *reportService) Crear(ctx context.Context, r models.NuevoReporte) error {
	if err := s.api.CrearReporte(ctx, r); err != nil {
		return fmt.Errorf("crear reporte: %w", err)
	}
	return nil
}

func (s *reportService) Listar(ctx context.Context) ([]models.Reporte, error) {
	reportes, err := s.api.Reportes(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar reportes: %w", err)
	}
	return reportes, nil
}

func (s *reportService) Obtener(ctx context.Context, id string) (*models.Reporte, error) {
	reportes, err := s.api.Reportes(ctx)
	if err != nil {
		return nil, fmt.Errorf("obtener reporte: %w", err)
	}
	for i := range reportes {
		if reportes[i].ID.String() == id {
			return &reportes[i], nil
		}
	}
	return nil, fmt.Errorf("reporte %s: %w", id, common.ErrNotFound)
}

var _ reportAPI = (*api.Client)(nil)
