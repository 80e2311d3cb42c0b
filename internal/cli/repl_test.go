package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	arg   string
}

func (f *fakeExec) call(name string) error {
	f.calls = append(f.calls, name)
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	return f.call("register")
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.call("login")
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.call("logout")
}
func (f *fakeExec) Whoami(ctx context.Context) error   { return f.call("whoami") }
func (f *fakeExec) Reportar(ctx context.Context) error { return f.call("reportar") }
func (f *fakeExec) Reportes(ctx context.Context) error { return f.call("reportes") }
func (f *fakeExec) Reporte(ctx context.Context, id string) error {
	f.arg = id
	return f.call("reporte")
}
func (f *fakeExec) Normativas(ctx context.Context) error { return f.call("normativas") }
func (f *fakeExec) Noticias(ctx context.Context) error   { return f.call("noticias") }
func (f *fakeExec) Areas(ctx context.Context) error      { return f.call("areas") }
func (f *fakeExec) Medidas(ctx context.Context) error    { return f.call("medidas") }
func (f *fakeExec) Videos(ctx context.Context) error     { return f.call("videos") }
func (f *fakeExec) Equipo(ctx context.Context) error     { return f.call("equipo") }
func (f *fakeExec) Servicios(ctx context.Context) error  { return f.call("servicios") }
func (f *fakeExec) Voluntario(ctx context.Context) error { return f.call("voluntario") }

func silencePrintln(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"noticias",
		"login",
		"help",
		"reportar",
		"reportes",
		"reporte 42",
		"normativas",
		"logout",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"noticias", "login", "reportar", "reportes", "reporte", "normativas", "logout"}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
	if exec.arg != "42" {
		t.Fatalf("reporte arg = %q, want 42", exec.arg)
	}
}

func TestRunREPL_AuthCommandsRefusedWhenAnonymous(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader("reportar\nreportes\nreporte 1\nnormativas\nwhoami\nlogout\nexit\n")
	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_PublicCommandsWorkAnonymously(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader("noticias\nareas\nmedidas\nvideos\nequipo\nservicios\nvoluntario\nexit\n")
	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	want := []string{"noticias", "areas", "medidas", "videos", "equipo", "servicios", "voluntario"}
	if len(exec.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", exec.calls, want)
	}
	for i := range want {
		if exec.calls[i] != want[i] {
			t.Fatalf("calls = %v, want %v", exec.calls, want)
		}
	}
}

func TestRunREPL_UsageAndQuit(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader("reporte\nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_EOFExits(t *testing.T) {
	silencePrintln(t)

	exec := &fakeExec{}
	sc := bufio.NewScanner(strings.NewReader(""))
	runREPL(context.Background(), exec, func() string { return "" }, sc)
}
