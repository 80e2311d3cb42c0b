package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/jdisla/medioambiente-cli/internal/common"
	"github.com/jdisla/medioambiente-cli/internal/models"
)

// Normativas prompts for an optional type and search term and lists the
// matching regulations.
func (a *App) Normativas(ctx context.Context) error {
	tipo, err := getSimpleText(a.reader, "Tipo (Ley, Decreto, Resolucion; vacío para todos)", os.Stdout)
	if err != nil {
		return err
	}
	busqueda, err := getSimpleText(a.reader, "Buscar (vacío para todas)", os.Stdout)
	if err != nil {
		return err
	}

	normativas, err := a.catalog.Normativas(ctx, tipo, busqueda)
	if err != nil {
		printAPIError(ctx, a, err)
		return err
	}

	if len(normativas) == 0 {
		printlnFn("Sin resultados")
		return nil
	}
	for _, n := range normativas {
		printlnFn(fmt.Sprintf("%s %s  %s (%s)", n.Tipo, n.Numero, n.Titulo, n.FechaPublicacion))
		if n.URLDocumento != "" {
			printlnFn("  documento:", n.URLDocumento)
		}
	}
	return nil
}

func (a *App) Noticias(ctx context.Context) error {
	noticias, err := a.catalog.Noticias(ctx)
	if err != nil {
		printAPIError(ctx, a, err)
		return err
	}
	for _, n := range noticias {
		printlnFn(fmt.Sprintf("%s  %s", n.Fecha, n.Titulo))
		if n.Resumen != "" {
			printlnFn(" ", n.Resumen)
		}
	}
	return nil
}

func (a *App) Areas(ctx context.Context) error {
	tipo, err := getSimpleText(a.reader, "Tipo de área (vacío para todas)", os.Stdout)
	if err != nil {
		return err
	}
	busqueda, err := getSimpleText(a.reader, "Buscar (vacío para todas)", os.Stdout)
	if err != nil {
		return err
	}

	areas, err := a.catalog.AreasProtegidas(ctx, tipo, busqueda)
	if err != nil {
		printAPIError(ctx, a, err)
		return err
	}
	for _, ar := range areas {
		printlnFn(fmt.Sprintf("%s (%s)  %s", ar.Nombre, ar.Tipo, ar.Ubicacion))
	}
	return nil
}

func (a *App) Medidas(ctx context.Context) error {
	medidas, err := a.catalog.Medidas(ctx)
	if err != nil {
		printAPIError(ctx, a, err)
		return err
	}
	for _, m := range medidas {
		printlnFn(fmt.Sprintf("[%s] %s", m.Categoria, m.Titulo))
		printlnFn(" ", m.Descripcion)
	}
	return nil
}

func (a *App) Videos(ctx context.Context) error {
	categoria, err := getSimpleText(a.reader, "Categoría (vacío para todas)", os.Stdout)
	if err != nil {
		return err
	}

	videos, err := a.catalog.Videos(ctx, categoria)
	if err != nil {
		printAPIError(ctx, a, err)
		return err
	}
	for _, v := range videos {
		printlnFn(fmt.Sprintf("%s (%s)  %s", v.Titulo, v.Duracion, v.URL))
	}
	return nil
}

func (a *App) Equipo(ctx context.Context) error {
	miembros, err := a.catalog.Equipo(ctx)
	if err != nil {
		printAPIError(ctx, a, err)
		return err
	}
	for _, m := range miembros {
		printlnFn(fmt.Sprintf("%s, %s (%s)", m.Nombre, m.Cargo, m.Departamento))
	}
	return nil
}

func (a *App) Servicios(ctx context.Context) error {
	servicios, err := a.catalog.Servicios(ctx)
	if err != nil {
		printAPIError(ctx, a, err)
		return err
	}
	for _, s := range servicios {
		printlnFn(s.Nombre)
		printlnFn(" ", s.Descripcion)
	}
	return nil
}

// Voluntario walks the volunteer application form and submits it.
func (a *App) Voluntario(ctx context.Context) error {
	var sol models.SolicitudVoluntario
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Enter cedula", &sol.Cedula},
		{"Enter nombre", &sol.Nombre},
		{"Enter apellido", &sol.Apellido},
		{"Enter correo", &sol.Correo},
		{"Enter telefono", &sol.Telefono},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, os.Stdout)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	sol.Password = string(password)

	if err := a.catalog.SolicitarVoluntariado(ctx, sol); err != nil {
		printAPIError(ctx, a, err)
		return err
	}

	printlnFn("Solicitud de voluntariado enviada!")
	return nil
}
