package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubExec struct {
	loggedIn bool
	calls    []string
}

func (s *stubExec) record(name string) error {
	s.calls = append(s.calls, name)
	return nil
}

func (s *stubExec) isLoggedIn(context.Context) bool         { return s.loggedIn }
func (s *stubExec) Register(ctx context.Context) error      { return s.record("register") }
func (s *stubExec) Login(ctx context.Context) error         { return s.record("login") }
func (s *stubExec) ResetPassword(ctx context.Context) error { return s.record("resetpw") }
func (s *stubExec) WhoAmI(ctx context.Context) error        { return s.record("whoami") }
func (s *stubExec) Profile(ctx context.Context) error       { return s.record("profile") }
func (s *stubExec) Dashboard(ctx context.Context) error     { return s.record("dashboard") }
func (s *stubExec) Compare(ctx context.Context) error       { return s.record("compare") }
func (s *stubExec) Logout(ctx context.Context) error        { return s.record("logout") }

func runScript(t *testing.T, stub *stubExec, script string) []string {
	t.Helper()

	var output []string
	old := printlnFn
	printlnFn = func(a ...any) (int, error) {
		parts := make([]string, 0, len(a))
		for _, v := range a {
			if s, ok := v.(string); ok {
				parts = append(parts, s)
			}
		}
		output = append(output, strings.Join(parts, " "))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = old })

	scanner := bufio.NewScanner(strings.NewReader(script))
	runREPL(context.Background(), stub, func() string { return "" }, scanner)
	return output
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	stub := &stubExec{}
	runScript(t, stub, "register\nlogin\nwhoami\nlogout\nexit\n")
	assert.Equal(t, []string{"register", "login", "whoami", "logout"}, stub.calls)
}

func TestRunREPL_UnknownCommand(t *testing.T) {
	stub := &stubExec{}
	output := runScript(t, stub, "frobnicate\nexit\n")

	joined := strings.Join(output, "\n")
	assert.Contains(t, joined, "Unknown command:")
	assert.Empty(t, stub.calls)
}

func TestRunREPL_HelpDependsOnLoginState(t *testing.T) {
	out := runScript(t, &stubExec{loggedIn: false}, "help\nexit\n")
	assert.Contains(t, strings.Join(out, "\n"), "register, login")

	out = runScript(t, &stubExec{loggedIn: true}, "help\nexit\n")
	assert.Contains(t, strings.Join(out, "\n"), "dashboard, compare")
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	stub := &stubExec{}
	runScript(t, stub, "whoami\n")
	assert.Equal(t, []string{"whoami"}, stub.calls)
}

func TestRunREPL_SkipsBlankLines(t *testing.T) {
	stub := &stubExec{}
	runScript(t, stub, "\n\nlogin\nexit\n")
	assert.Equal(t, []string{"login"}, stub.calls)
}
