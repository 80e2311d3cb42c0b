package models

import "encoding/json"

// Report states as the ministry assigns them.
const (
	EstadoPendiente  = "pendiente"
	EstadoEnRevision = "en_revision"
	EstadoResuelto   = "resuelto"
)

// Reporte is a georeferenced damage report as returned by GET /reportes.
// Foto may be a URL or a plain base64 image. ID is a json.Number because the
// API is not consistent about numeric vs string identifiers.
type Reporte struct {
	ID          json.Number `json:"id"`
	Codigo      string      `json:"codigo"`
	Titulo      string      `json:"titulo"`
	Descripcion string      `json:"descripcion"`
	Foto        string      `json:"foto"`
	Latitud     float64     `json:"latitud"`
	Longitud    float64     `json:"longitud"`
	Estado      string      `json:"estado"`
	Comentario  string      `json:"comentario_ministerio,omitempty"`
	Fecha       string      `json:"fecha"`
}

// NuevoReporte is the POST /reportes payload. Foto carries the image as
// plain base64 (no data: prefix).
type NuevoReporte struct {
	Titulo      string  `json:"titulo"`
	Descripcion string  `json:"descripcion"`
	Foto        string  `json:"foto"`
	Latitud     float64 `json:"latitud"`
	Longitud    float64 `json:"longitud"`
}
