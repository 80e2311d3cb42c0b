package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/jdisla/medioambiente-cli/internal/api"
	"github.com/jdisla/medioambiente-cli/internal/models"
)

// CatalogService exposes the ministry's public resources: news, protected
// areas, environmental measures, educational videos, the team, the service
// catalog and volunteer sign-up. Normativas is the one resource the API
// serves only to authenticated users.
type CatalogService interface {
	Normativas(ctx context.Context, tipo, busqueda string) ([]models.Normativa, error)
	AreasProtegidas(ctx context.Context, tipo, busqueda string) ([]models.AreaProtegida, error)
	Noticias(ctx context.Context) ([]models.Noticia, error)
	Medidas(ctx context.Context) ([]models.Medida, error)
	Videos(ctx context.Context, categoria string) ([]models.Video, error)
	Equipo(ctx context.Context) ([]models.Miembro, error)
	Servicios(ctx context.Context) ([]models.Servicio, error)
	SolicitarVoluntariado(ctx context.Context, s models.SolicitudVoluntario) error
}

type catalogAPI interface {
	Normativas(ctx context.Context, tipo, busqueda string) ([]models.Normativa, error)
	AreasProtegidas(ctx context.Context, tipo, busqueda string) ([]models.AreaProtegida, error)
	Noticias(ctx context.Context) ([]models.Noticia, error)
	Medidas(ctx context.Context) ([]models.Medida, error)
	Videos(ctx context.Context, categoria string) ([]models.Video, error)
	Equipo(ctx context.Context) ([]models.Miembro, error)
	Servicios(ctx context.Context) ([]models.Servicio, error)
	SolicitarVoluntariado(ctx context.Context, s models.SolicitudVoluntario) error
}

type catalogService struct {
	api catalogAPI
}

func NewCatalogService(api catalogAPI) CatalogService {
	return &catalogService{api: api}
}

func (s *catalogService) Normativas(ctx context.Context, tipo, busqueda string) ([]models.Normativa, error) {
	return s.api.Normativas(ctx, tipo, busqueda)
}

func (s *catalogService) AreasProtegidas(ctx context.Context, tipo, busqueda string) ([]models.AreaProtegida, error) {
	return s.api.AreasProtegidas(ctx, tipo, busqueda)
}

func (s *catalogService) Noticias(ctx context.Context) ([]models.Noticia, error) {
	return s.api.Noticias(ctx)
}

func (s *catalogService) Medidas(ctx context.Context) ([]models.Medida, error) {
	return s.api.Medidas(ctx)
}

func (s *catalogService) Videos(ctx context.Context, categoria string) ([]models.Video, error) {
	return s.api.Videos(ctx, categoria)
}

func (s *catalogService) Equipo(ctx context.Context) ([]models.Miembro, error) {
	return s.api.Equipo(ctx)
}

func (s *catalogService) Servicios(ctx context.Context) ([]models.Servicio, error) {
	return s.api.Servicios(ctx)
}

// SolicitarVoluntariado validates the application locally before sending it,
// matching the checks the portal's sign-up form performs.
func (s *catalogService) SolicitarVoluntariado(ctx context.Context, sol models.SolicitudVoluntario) error {
	sol.Cedula = strings.TrimSpace(sol.Cedula)
	sol.Nombre = strings.TrimSpace(sol.Nombre)
	sol.Apellido = strings.TrimSpace(sol.Apellido)
	sol.Correo = strings.TrimSpace(sol.Correo)
	sol.Telefono = strings.TrimSpace(sol.Telefono)

	switch {
	case sol.Cedula == "":
		return fmt.Errorf("solicitud de voluntariado: cedula requerida")
	case sol.Nombre == "" || sol.Apellido == "":
		return fmt.Errorf("solicitud de voluntariado: nombre y apellido requeridos")
	case !strings.Contains(sol.Correo, "@"):
		return fmt.Errorf("solicitud de voluntariado: correo invalido")
	case len(sol.Password) < 6:
		return fmt.Errorf("solicitud de voluntariado: password de al menos 6 caracteres")
	}

	if err := s.api.SolicitarVoluntariado(ctx, sol); err != nil {
		return fmt.Errorf("solicitud de voluntariado: %w", err)
	}
	return nil
}

var _ catalogAPI = (*api.Client)(nil)
