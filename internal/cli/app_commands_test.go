package cli

import (
	"bufio"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dkuleshov/emgtrack/internal/auth"
	"github.com/dkuleshov/emgtrack/internal/config"
	"github.com/dkuleshov/emgtrack/internal/digest"
	"github.com/dkuleshov/emgtrack/internal/models"
	"github.com/dkuleshov/emgtrack/internal/sensor"
	"github.com/dkuleshov/emgtrack/internal/service"
	"github.com/dkuleshov/emgtrack/internal/session"
	"github.com/dkuleshov/emgtrack/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func newTestApp(t *testing.T) *App {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(`CREATE TABLE kv (key TEXT PRIMARY KEY, value BLOB NOT NULL);`)
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.DataDir = filepath.Join(t.TempDir(), "emg_db")

	store := storage.NewFileStore(cfg.DataDir)
	svc := service.New(store, session.NewKVStore(db), &digest.LegacyDigester{}, nil)

	return &App{
		config: cfg,
		auth:   auth.NewManager(svc, nil),
		svc:    svc,
		source: sensor.NewSimulator(1),
	}
}

func silencePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(args ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(args...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func stubInput(t *testing.T, texts []string, password string) {
	t.Helper()
	origText := getSimpleText
	origPw := getPassword
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(texts) {
			return "", io.EOF
		}
		s := texts[i]
		i++
		return s, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) {
		return []byte(password), nil
	}
	t.Cleanup(func() {
		getSimpleText = origText
		getPassword = origPw
	})
}

func signUpTestUser(t *testing.T, a *App) *models.PublicUser {
	t.Helper()
	u, err := a.auth.SignUp(context.Background(), "alice", "alice@example.com", "secret123")
	require.NoError(t, err)
	return u
}

func TestRegister_SignsIn(t *testing.T) {
	a := newTestApp(t)
	out := silencePrintln(t)
	stubInput(t, []string{"alice", "alice@example.com"}, "secret123")

	require.NoError(t, a.Register(context.Background()))
	assert.True(t, a.isSignedIn())
	assert.Contains(t, strings.Join(*out, "\n"), "Welcome, alice!")
}

func TestRegister_DuplicateFails(t *testing.T) {
	a := newTestApp(t)
	silencePrintln(t)
	signUpTestUser(t, a)
	a.auth.SignOut(context.Background())

	stubInput(t, []string{"alice", "other@example.com"}, "secret123")
	require.Error(t, a.Register(context.Background()))
	assert.False(t, a.isSignedIn())
}

func TestLogin_And_WhoAmI(t *testing.T) {
	a := newTestApp(t)
	out := silencePrintln(t)
	signUpTestUser(t, a)
	a.auth.SignOut(context.Background())

	stubInput(t, []string{"alice"}, "secret123")
	require.NoError(t, a.Login(context.Background()))
	require.True(t, a.isSignedIn())

	require.NoError(t, a.WhoAmI(context.Background()))
	assert.Contains(t, strings.Join(*out, "\n"), "alice <alice@example.com>")
}

func TestLogin_WrongPassword(t *testing.T) {
	a := newTestApp(t)
	silencePrintln(t)
	signUpTestUser(t, a)
	a.auth.SignOut(context.Background())

	stubInput(t, []string{"alice"}, "wrong")
	require.Error(t, a.Login(context.Background()))
	assert.False(t, a.isSignedIn())
}

func TestAddReading_And_List(t *testing.T) {
	a := newTestApp(t)
	out := silencePrintln(t)
	signUpTestUser(t, a)

	stubInput(t, []string{"Biceps", "0.5, 1.2, 0.8"}, "")
	require.NoError(t, a.AddReading(context.Background()))

	require.NoError(t, a.List(context.Background()))
	assert.Contains(t, strings.Join(*out, "\n"), "Biceps")
}

func TestAddReading_RequiresSignIn(t *testing.T) {
	a := newTestApp(t)
	silencePrintln(t)

	stubInput(t, []string{"Biceps", "0.5"}, "")
	require.Error(t, a.AddReading(context.Background()))
}

func TestCapture_StoresSamples(t *testing.T) {
	a := newTestApp(t)
	silencePrintln(t)
	user := signUpTestUser(t, a)
	a.config.SampleRate = 10

	stubInput(t, []string{"Forearm", "2"}, "")
	require.NoError(t, a.Capture(context.Background()))

	readings, err := a.svc.UserReadings(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, readings, 1)
	assert.Len(t, readings[0].Values, 20)
	assert.Equal(t, "Forearm", readings[0].MuscleGroup)
}

func TestCapture_RejectsBadDuration(t *testing.T) {
	a := newTestApp(t)
	silencePrintln(t)
	signUpTestUser(t, a)

	stubInput(t, []string{"Forearm", "zero"}, "")
	require.Error(t, a.Capture(context.Background()))
}

func TestStats_PrintsSummary(t *testing.T) {
	a := newTestApp(t)
	out := silencePrintln(t)
	user := signUpTestUser(t, a)

	_, err := a.svc.AddReading(context.Background(), user.ID, []float64{1, 3}, "")
	require.NoError(t, err)

	require.NoError(t, a.Stats(context.Background()))
	assert.Contains(t, strings.Join(*out, "\n"), "1 sessions")
}

func TestExport_WritesFile(t *testing.T) {
	a := newTestApp(t)
	out := silencePrintln(t)
	user := signUpTestUser(t, a)

	_, err := a.svc.AddReading(context.Background(), user.ID, []float64{0.25}, "Calf")
	require.NoError(t, err)

	require.NoError(t, a.Export(context.Background()))

	matches, err := filepath.Glob(filepath.Join(a.config.DataDir, "export-*.json"))
	require.NoError(t, err)
	require.Len(t, matches, 1)

	data, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	var readings []models.Reading
	require.NoError(t, json.Unmarshal(data, &readings))
	require.Len(t, readings, 1)
	assert.Equal(t, "Calf", readings[0].MuscleGroup)
	assert.Contains(t, strings.Join(*out, "\n"), "Exported 1 readings")
}

func TestLogout(t *testing.T) {
	a := newTestApp(t)
	silencePrintln(t)
	signUpTestUser(t, a)

	require.NoError(t, a.Logout(context.Background()))
	assert.False(t, a.isSignedIn())
}
