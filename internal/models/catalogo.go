package models

// Normativa is an environmental regulation (GET /normativas, authenticated).
type Normativa struct {
	ID               string `json:"id"`
	Titulo           string `json:"titulo"`
	Tipo             string `json:"tipo"`
	Numero           string `json:"numero"`
	FechaPublicacion string `json:"fecha_publicacion"`
	Descripcion      string `json:"descripcion"`
	URLDocumento     string `json:"url_documento"`
}

// AreaProtegida is a protected area (GET /areas_protegidas).
type AreaProtegida struct {
	ID          string  `json:"id"`
	Nombre      string  `json:"nombre"`
	Tipo        string  `json:"tipo"`
	Descripcion string  `json:"descripcion"`
	Ubicacion   string  `json:"ubicacion"`
	Superficie  string  `json:"superficie"`
	Imagen      string  `json:"imagen"`
	Latitud     float64 `json:"latitud"`
	Longitud    float64 `json:"longitud"`
}

// Noticia is a news item (GET /noticias).
type Noticia struct {
	ID        string `json:"id"`
	Titulo    string `json:"titulo"`
	Resumen   string `json:"resumen"`
	Contenido string `json:"contenido"`
	Imagen    string `json:"imagen"`
	Fecha     string `json:"fecha"`
}

// Medida is an environmental measure (GET /medidas).
type Medida struct {
	ID          string `json:"id"`
	Titulo      string `json:"titulo"`
	Descripcion string `json:"descripcion"`
	Categoria   string `json:"categoria"`
	Icono       string `json:"icono"`
}

// Video is an educational video (GET /videos).
type Video struct {
	ID          string `json:"id"`
	Titulo      string `json:"titulo"`
	Descripcion string `json:"descripcion"`
	URL         string `json:"url"`
	Thumbnail   string `json:"thumbnail"`
	Categoria   string `json:"categoria"`
	Duracion    string `json:"duracion"`
}

// Miembro is a ministry team member (GET /equipo).
type Miembro struct {
	ID           string `json:"id"`
	Nombre       string `json:"nombre"`
	Cargo        string `json:"cargo"`
	Departamento string `json:"departamento"`
	Foto         string `json:"foto"`
	Biografia    string `json:"biografia"`
	Orden        int    `json:"orden"`
}

// Servicio is a ministry service (GET /servicios).
type Servicio struct {
	ID          string `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
	Icono       string `json:"icono"`
}

// SolicitudVoluntario is the POST /voluntarios payload for volunteer
// applications. All fields are required by the API.
type SolicitudVoluntario struct {
	Cedula   string `json:"cedula"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Correo   string `json:"correo"`
	Password string `json:"password"`
	Telefono string `json:"telefono"`
}
