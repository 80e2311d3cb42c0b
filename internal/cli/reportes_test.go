package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jdisla/medioambiente-cli/internal/models"
)

type fakeReportSvc struct {
	reportes []models.Reporte
	err      error

	created *models.NuevoReporte
}

func (f *fakeReportSvc) Crear(ctx context.Context, r models.NuevoReporte) error {
	f.created = &r
	return f.err
}
func (f *fakeReportSvc) Listar(ctx context.Context) ([]models.Reporte, error) {
	return f.reportes, f.err
}
func (f *fakeReportSvc) Obtener(ctx context.Context, id string) (*models.Reporte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &f.reportes[0], nil
}

// pngFixture writes a minimal file the content sniffer accepts as image/png.
func pngFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "foto.png")
	data := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 16)...)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestAppReportarSubmits(t *testing.T) {
	capturePrintln(t)
	foto := pngFixture(t)
	stubInputs(t, []string{"Vertedero improvisado", "Acumulación de basura junto al río", foto}, nil)

	fake := &fakeReportSvc{}
	a := testApp(&fakeAuthSvc{})
	a.reports = fake
	a.reader = bufio.NewReader(strings.NewReader("18.4861\n-69.9312\n"))

	if err := a.Reportar(context.Background()); err != nil {
		t.Fatal(err)
	}
	if fake.created == nil {
		t.Fatal("report not submitted")
	}
	if fake.created.Latitud != 18.4861 || fake.created.Longitud != -69.9312 {
		t.Fatalf("coordinates = %g, %g", fake.created.Latitud, fake.created.Longitud)
	}
	if fake.created.Foto == "" {
		t.Fatal("photo missing from payload")
	}
}

func TestAppReportarRejectsEmptyTitulo(t *testing.T) {
	capturePrintln(t)
	stubInputs(t, []string{"   "}, nil)

	fake := &fakeReportSvc{}
	a := testApp(&fakeAuthSvc{})
	a.reports = fake

	if err := a.Reportar(context.Background()); err != nil {
		t.Fatal(err)
	}
	if fake.created != nil {
		t.Fatal("report submitted despite empty titulo")
	}
}

func TestAppReportarRejectsShortDescripcion(t *testing.T) {
	capturePrintln(t)
	stubInputs(t, []string{"Titulo", "corta"}, nil)

	fake := &fakeReportSvc{}
	a := testApp(&fakeAuthSvc{})
	a.reports = fake

	if err := a.Reportar(context.Background()); err != nil {
		t.Fatal(err)
	}
	if fake.created != nil {
		t.Fatal("report submitted despite short descripcion")
	}
}

func TestAppReportarRejectsBadPhoto(t *testing.T) {
	capturePrintln(t)
	path := filepath.Join(t.TempDir(), "nota.txt")
	if err := os.WriteFile(path, []byte("not an image"), 0o600); err != nil {
		t.Fatal(err)
	}
	stubInputs(t, []string{"Titulo", "Descripcion suficientemente larga", path}, nil)

	fake := &fakeReportSvc{}
	a := testApp(&fakeAuthSvc{})
	a.reports = fake

	if err := a.Reportar(context.Background()); err != nil {
		t.Fatal(err)
	}
	if fake.created != nil {
		t.Fatal("report submitted despite invalid photo")
	}
}

func TestAppReportesLists(t *testing.T) {
	lines := capturePrintln(t)

	a := testApp(&fakeAuthSvc{})
	a.reports = &fakeReportSvc{reportes: []models.Reporte{
		{ID: json.Number("1"), Codigo: "REP-001", Titulo: "Vertedero", Estado: models.EstadoPendiente},
	}}

	if err := a.Reportes(context.Background()); err != nil {
		t.Fatal(err)
	}
	out := strings.Join(*lines, "")
	if !strings.Contains(out, "REP-001") || !strings.Contains(out, models.EstadoPendiente) {
		t.Fatalf("listing incomplete: %v", out)
	}
}

func TestAppReporteShowsComentario(t *testing.T) {
	lines := capturePrintln(t)

	a := testApp(&fakeAuthSvc{})
	a.reports = &fakeReportSvc{reportes: []models.Reporte{
		{ID: json.Number("1"), Codigo: "REP-001", Titulo: "Vertedero", Estado: models.EstadoEnRevision,
			Comentario: "Inspección programada", Foto: "https://adamix.net/fotos/rep-001.jpg"},
	}}

	if err := a.Reporte(context.Background(), "1"); err != nil {
		t.Fatal(err)
	}
	out := strings.Join(*lines, "")
	if !strings.Contains(out, "Inspección programada") {
		t.Fatalf("ministry feedback not shown: %v", out)
	}
	if !strings.Contains(out, "https://adamix.net/fotos/rep-001.jpg") {
		t.Fatalf("photo link not shown: %v", out)
	}
}
