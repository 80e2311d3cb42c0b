package api

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/jdisla/medioambiente-cli/internal/models"
)

// Credentials is the POST /auth/login payload.
type Credentials struct {
	Correo   string `json:"correo"`
	Password string `json:"password"`
}

// Registro is the POST /auth/register payload. The API requires every field.
type Registro struct {
	Cedula    string `json:"cedula"`
	Nombre    string `json:"nombre"`
	Apellido  string `json:"apellido"`
	Correo    string `json:"correo"`
	Password  string `json:"password"`
	Telefono  string `json:"telefono"`
	Matricula string `json:"matricula"`
}

// AuthResult is what both auth endpoints return on success.
type AuthResult struct {
	Token   string            `json:"token"`
	Usuario models.UsuarioAPI `json:"usuario"`
}

// Login authenticates against POST /auth/login. Success is 200.
func (c *Client) Login(ctx context.Context, creds Credentials) (*AuthResult, error) {
	var out AuthResult
	if err := c.postJSON(ctx, "/auth/login", creds, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates an account via POST /auth/register. The API documents
// 201 with {token, usuario}; anything else, a generic 200 included, is
// treated as failure.
func (c *Client) Register(ctx context.Context, reg Registro) (*AuthResult, error) {
	var out AuthResult
	if err := c.postJSON(ctx, "/auth/register", reg, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// Reportes lists the authenticated user's damage reports.
func (c *Client) Reportes(ctx context.Context) ([]models.Reporte, error) {
	var out []models.Reporte
	if err := c.getJSON(ctx, "/reportes", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CrearReporte submits a new damage report. Success is 201.
func (c *Client) CrearReporte(ctx context.Context, nr models.NuevoReporte) error {
	return c.postJSON(ctx, "/reportes", nr, nil, http.StatusCreated)
}

// Normativas lists regulations, optionally filtered by tipo and busqueda.
// The endpoint requires authentication.
func (c *Client) Normativas(ctx context.Context, tipo, busqueda string) ([]models.Normativa, error) {
	query := url.Values{}
	if tipo != "" {
		query.Set("tipo", tipo)
	}
	if busqueda != "" {
		query.Set("busqueda", busqueda)
	}

	var out []models.Normativa
	if err := c.getJSON(ctx, "/normativas", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AreasProtegidas lists protected areas, optionally filtered.
func (c *Client) AreasProtegidas(ctx context.Context, tipo, busqueda string) ([]models.AreaProtegida, error) {
	query := url.Values{}
	if tipo != "" {
		query.Set("tipo", tipo)
	}
	if busqueda != "" {
		query.Set("busqueda", busqueda)
	}

	var out []models.AreaProtegida
	if err := c.getJSON(ctx, "/areas_protegidas", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Noticias lists news items.
func (c *Client) Noticias(ctx context.Context) ([]models.Noticia, error) {
	var out []models.Noticia
	if err := c.getJSON(ctx, "/noticias", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Medidas lists environmental measures.
func (c *Client) Medidas(ctx context.Context) ([]models.Medida, error) {
	var out []models.Medida
	if err := c.getJSON(ctx, "/medidas", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Videos lists educational videos, optionally filtered by categoria.
func (c *Client) Videos(ctx context.Context, categoria string) ([]models.Video, error) {
	query := url.Values{}
	if categoria != "" {
		query.Set("categoria", categoria)
	}

	var out []models.Video
	if err := c.getJSON(ctx, "/videos", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Equipo lists ministry team members.
func (c *Client) Equipo(ctx context.Context) ([]models.Miembro, error) {
	var out []models.Miembro
	if err := c.getJSON(ctx, "/equipo", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Servicios lists ministry services.
func (c *Client) Servicios(ctx context.Context) ([]models.Servicio, error) {
	var out []models.Servicio
	if err := c.getJSON(ctx, "/servicios", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SolicitarVoluntariado submits a volunteer application. The API answers
// 200 or 201 depending on deployment; both count as success.
func (c *Client) SolicitarVoluntariado(ctx context.Context, sol models.SolicitudVoluntario) error {
	err := c.postJSON(ctx, "/voluntarios", sol, nil, http.StatusCreated)
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusOK {
		return nil
	}
	return err
}
