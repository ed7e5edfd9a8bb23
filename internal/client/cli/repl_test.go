package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	loggedIn bool
	admin    bool

	calls []string
	query string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) isAdmin() bool    { return f.admin }

func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Browse(ctx context.Context) error {
	f.calls = append(f.calls, "browse")
	return nil
}
func (f *fakeExec) Filter(ctx context.Context) error {
	f.calls = append(f.calls, "filter")
	return nil
}
func (f *fakeExec) Search(ctx context.Context, query string) error {
	f.calls = append(f.calls, "search")
	f.query = query
	return nil
}
func (f *fakeExec) Show(ctx context.Context) error {
	f.calls = append(f.calls, "show")
	return nil
}
func (f *fakeExec) Create(ctx context.Context) error {
	f.calls = append(f.calls, "create")
	return nil
}
func (f *fakeExec) Mine(ctx context.Context) error {
	f.calls = append(f.calls, "mine")
	return nil
}
func (f *fakeExec) Edit(ctx context.Context) error {
	f.calls = append(f.calls, "edit")
	return nil
}
func (f *fakeExec) Delete(ctx context.Context) error {
	f.calls = append(f.calls, "delete")
	return nil
}
func (f *fakeExec) AddImage(ctx context.Context) error {
	f.calls = append(f.calls, "addimage")
	return nil
}
func (f *fakeExec) AddImageURL(ctx context.Context) error {
	f.calls = append(f.calls, "addimageurl")
	return nil
}
func (f *fakeExec) Analytics(ctx context.Context) error {
	f.calls = append(f.calls, "analytics")
	return nil
}

func silencePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, fmt.Sprintln(a...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func runLines(exec *fakeExec, lines ...string) {
	sc := bufio.NewScanner(strings.NewReader(strings.Join(lines, "\n")))
	runREPL(context.Background(), exec, func() string { return "guest" }, sc)
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	silencePrintln(t)

	exec := &fakeExec{}
	runLines(exec, "help", "browse", "login", "create", "mine", "foobar", "exit")

	require.Equal(t, []string{"browse", "login", "create", "mine"}, exec.calls)
}

func TestRunREPL_SearchPassesQuery(t *testing.T) {
	silencePrintln(t)

	exec := &fakeExec{}
	runLines(exec, "search used bicycle colombo", "exit")

	require.Equal(t, []string{"search"}, exec.calls)
	require.Equal(t, "used bicycle colombo", exec.query)
}

func TestRunREPL_ProtectedCommandsRedirectToLogin(t *testing.T) {
	lines := silencePrintln(t)

	exec := &fakeExec{loggedIn: false}
	runLines(exec, "create", "mine", "edit", "delete", "addimage", "addimageurl", "exit")

	require.Empty(t, exec.calls)
	require.Contains(t, strings.Join(*lines, ""), "Please login first")
}

func TestRunREPL_AnalyticsRequiresAdmin(t *testing.T) {
	lines := silencePrintln(t)

	exec := &fakeExec{loggedIn: true, admin: false}
	runLines(exec, "analytics", "refresh", "exit")

	require.Empty(t, exec.calls)
	require.Contains(t, strings.Join(*lines, ""), "only administrators")
}

func TestRunREPL_AnalyticsForAdmin(t *testing.T) {
	silencePrintln(t)

	exec := &fakeExec{loggedIn: true, admin: true}
	runLines(exec, "analytics", "refresh", "exit")

	require.Equal(t, []string{"analytics", "analytics"}, exec.calls)
}

func TestRunREPL_ShortAliases(t *testing.T) {
	silencePrintln(t)

	exec := &fakeExec{loggedIn: true}
	runLines(exec, "b", "s bike", "m", "quit")

	require.Equal(t, []string{"browse", "search", "mine"}, exec.calls)
}
