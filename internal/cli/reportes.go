package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/jdisla/medioambiente-cli/internal/filex"
	"github.com/jdisla/medioambiente-cli/internal/models"
)

// minDescripcionLen mirrors the portal's report form validation.
const minDescripcionLen = 10

// Reportar interactively builds and submits a damage report. The form's
// rules apply before anything is sent: titulo and photo are required, the
// description needs some substance, and both coordinates must be valid.
func (a *App) Reportar(ctx context.Context) error {
	titulo, err := getSimpleText(a.reader, "Titulo del reporte", os.Stdout)
	if err != nil {
		return err
	}
	if strings.TrimSpace(titulo) == "" {
		printlnFn("El titulo es requerido")
		return nil
	}

	descripcion, err := getSimpleText(a.reader, "Descripcion del daño ambiental", os.Stdout)
	if err != nil {
		return err
	}
	if utf8.RuneCountInString(strings.TrimSpace(descripcion)) < minDescripcionLen {
		printlnFn(fmt.Sprintf("La descripcion necesita al menos %d caracteres", minDescripcionLen))
		return nil
	}

	fotoPath, err := getSimpleText(a.reader, "Ruta de la foto (JPEG o PNG)", os.Stdout)
	if err != nil {
		return err
	}
	foto, err := filex.LoadPhotoBase64(fotoPath)
	if err != nil {
		printlnFn("No se pudo cargar la foto:", err.Error())
		return nil
	}

	latitud, err := GetCoordinate(a.reader, "Latitud", -90, 90, os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return nil
	}
	longitud, err := GetCoordinate(a.reader, "Longitud", -180, 180, os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return nil
	}

	nr := models.NuevoReporte{
		Titulo:      strings.TrimSpace(titulo),
		Descripcion: strings.TrimSpace(descripcion),
		Foto:        foto,
		Latitud:     latitud,
		Longitud:    longitud,
	}
	if err := a.reports.Crear(ctx, nr); err != nil {
		printAPIError(ctx, a, err)
		return err
	}

	printlnFn("Reporte enviado. Gracias por cuidar el medio ambiente!")
	return nil
}

// Reportes lists the user's submitted reports with their current state.
func (a *App) Reportes(ctx context.Context) error {
	reportes, err := a.reports.Listar(ctx)
	if err != nil {
		printAPIError(ctx, a, err)
		return err
	}

	if len(reportes) == 0 {
		printlnFn("No tiene reportes todavía")
		return nil
	}
	for _, r := range reportes {
		printlnFn(fmt.Sprintf("[%s] %s  %s (%s)", r.ID, r.Codigo, r.Titulo, r.Estado))
	}
	return nil
}

// Reporte shows one report in full, ministry feedback included.
func (a *App) Reporte(ctx context.Context, id string) error {
	r, err := a.reports.Obtener(ctx, id)
	if err != nil {
		printAPIError(ctx, a, err)
		return err
	}

	printlnFn(fmt.Sprintf("%s  %s", r.Codigo, r.Titulo))
	printlnFn("Estado:", r.Estado)
	printlnFn("Fecha:", r.Fecha)
	printlnFn(fmt.Sprintf("Ubicación: %g, %g", r.Latitud, r.Longitud))
	printlnFn(r.Descripcion)
	if r.Comentario != "" {
		printlnFn("Comentario del ministerio:", r.Comentario)
	}
	a.showFoto(ctx, r)
	return nil
}

// showFoto surfaces the report's photo: URLs are printed as-is, inline
// base64 images are written into a local fotos/ directory.
func (a *App) showFoto(ctx context.Context, r *models.Reporte) {
	switch {
	case r.Foto == "":
	case strings.HasPrefix(r.Foto, "http://"), strings.HasPrefix(r.Foto, "https://"):
		printlnFn("Foto:", r.Foto)
	default:
		dir, err := filex.EnsureSubDir("fotos")
		if err != nil {
			a.log.Warn(ctx, "saving report photo", "err", err)
			return
		}
		name := r.Codigo
		if name == "" {
			name = "reporte-" + r.ID.String()
		}
		path, err := filex.SaveBase64Photo(dir, name, r.Foto)
		if err != nil {
			a.log.Warn(ctx, "saving report photo", "err", err)
			return
		}
		printlnFn("Foto guardada en", path)
	}
}
