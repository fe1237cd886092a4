package cli

import (
	"bufio"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/recipeadmin/internal/client/client"
	"github.com/dmitrijs2005/recipeadmin/internal/client/config"
	"github.com/dmitrijs2005/recipeadmin/internal/client/models"
	"github.com/dmitrijs2005/recipeadmin/internal/client/upload"
	"github.com/dmitrijs2005/recipeadmin/internal/logging"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClient overrides the calls a test needs; any other call panics on the
// nil embedded interface.
type stubClient struct {
	client.Client

	loginUser string
	loginPass string
	loginErr  error

	page     *models.PageContext
	pageErr  error
	comments []models.Comment
	users    []models.User
	deleted  []uuid.UUID
	tokens   []models.CSRFToken
	statuses []bool
}

func (s *stubClient) Close() error { return nil }

func (s *stubClient) Login(_ context.Context, u string, p []byte) error {
	s.loginUser, s.loginPass = u, string(p)
	return s.loginErr
}

func (s *stubClient) FetchPage(context.Context, string) (*models.PageContext, error) {
	return s.page, s.pageErr
}

func (s *stubClient) ListRecipeComments(context.Context, uuid.UUID) ([]models.Comment, error) {
	return s.comments, nil
}

func (s *stubClient) DeleteComment(_ context.Context, id uuid.UUID, tok models.CSRFToken) error {
	s.deleted = append(s.deleted, id)
	s.tokens = append(s.tokens, tok)
	return nil
}

func (s *stubClient) ListUsers(context.Context) ([]models.User, error) {
	return s.users, nil
}

func (s *stubClient) UpdateUserStatus(_ context.Context, _ uuid.UUID, active bool, _ models.CSRFToken) error {
	s.statuses = append(s.statuses, active)
	return nil
}

func testApp(t *testing.T, sc *stubClient, input string, modify ...func(*config.Config)) (*App, *bytes.Buffer) {
	t.Helper()
	capturePrint(t)

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.Timezone = "UTC"
	for _, m := range modify {
		m(cfg)
	}

	var out bytes.Buffer
	a, err := newApp(cfg, sc, logging.Discard(), bufio.NewReader(strings.NewReader(input)), &out)
	require.NoError(t, err)
	return a, &out
}

var (
	recipeID  = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	commentID = uuid.MustParse("22222222-2222-2222-2222-222222222222")
)

func recipeStub(viewer string) *stubClient {
	return &stubClient{
		page: &models.PageContext{Fields: map[string]string{
			models.FieldViewer:      viewer,
			models.FieldRecipeOwner: "bob",
		}},
		comments: []models.Comment{{
			ID: commentID, Author: "alice", Content: "yum",
			CreatedDate: models.Timestamp{Time: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		}},
	}
}

type syncLogger struct {
	logging.Logger
	synced int
}

func (l *syncLogger) Sync() error {
	l.synced++
	return nil
}

func TestApp_RunFlushesLogger(t *testing.T) {
	a, _ := testApp(t, &stubClient{}, "help\nexit\n")
	sl := &syncLogger{Logger: logging.Discard()}
	a.log = sl

	a.Run(context.Background())
	assert.Equal(t, 1, sl.synced)
}

func TestApp_Confirm(t *testing.T) {
	a, out := testApp(t, &stubClient{}, "y\nno\nYES\n\n")

	assert.True(t, a.Confirm("Delete?"))
	assert.False(t, a.Confirm("Delete?"))
	assert.True(t, a.Confirm("Delete?"))
	assert.False(t, a.Confirm("Delete?"))
	assert.False(t, a.Confirm("Delete?"), "EOF is a no")
	assert.Contains(t, out.String(), "Delete? [y/N]\n> ")
}

func TestApp_CommentsText(t *testing.T) {
	a, out := testApp(t, recipeStub("alice"), "")

	require.NoError(t, a.Comments(context.Background(), []string{recipeID.String()}))
	assert.Equal(t, "alice\nyum\n01 Jan 2024, 00:00:00\n[Delete "+commentID.String()+"]\n\n", out.String())
}

func TestApp_CommentsHTML(t *testing.T) {
	a, out := testApp(t, recipeStub("carol"), "", func(c *config.Config) { c.OutputFormat = config.OutputHTML })

	require.NoError(t, a.Comments(context.Background(), []string{recipeID.String()}))
	assert.True(t, strings.HasPrefix(out.String(), `<section class="comments-section">`))
	assert.NotContains(t, out.String(), "delete-comment")
}

func TestApp_DeleteComment(t *testing.T) {
	sc := recipeStub("alice")
	a, _ := testApp(t, sc, "y\n")

	require.ErrorIs(t, a.DeleteComment(context.Background(), []string{commentID.String()}), errNotLoaded)
	assert.Empty(t, sc.deleted)

	require.NoError(t, a.Comments(context.Background(), []string{recipeID.String()}))
	require.NoError(t, a.DeleteComment(context.Background(), []string{commentID.String()}))
	assert.Equal(t, []uuid.UUID{commentID}, sc.deleted)
}

func TestApp_CommentsFailedOpenKeepsSection(t *testing.T) {
	sc := recipeStub("alice")
	sc.page.CSRF = models.CSRFToken{Header: "X-CSRF-TOKEN", Value: "first"}
	a, _ := testApp(t, sc, "y\n")

	sc.pageErr = client.ErrUnavailable
	require.ErrorIs(t, a.Comments(context.Background(), []string{recipeID.String()}), client.ErrUnavailable)
	require.ErrorIs(t, a.DeleteComment(context.Background(), []string{commentID.String()}), errNotLoaded)

	sc.pageErr = nil
	require.NoError(t, a.Comments(context.Background(), []string{recipeID.String()}))
	opened := a.section

	sc.pageErr = client.ErrUnauthorized
	other := uuid.MustParse("33333333-3333-3333-3333-333333333333")
	require.ErrorIs(t, a.Comments(context.Background(), []string{other.String()}), client.ErrUnauthorized)
	assert.Same(t, opened, a.section)

	require.NoError(t, a.DeleteComment(context.Background(), []string{commentID.String()}))
	assert.Equal(t, []models.CSRFToken{{Header: "X-CSRF-TOKEN", Value: "first"}}, sc.tokens)
	assert.Equal(t, "alice", a.section.Viewer())
}

func TestApp_BadArguments(t *testing.T) {
	a, _ := testApp(t, &stubClient{}, "")

	require.ErrorIs(t, a.Comments(context.Background(), nil), errUsage)
	require.ErrorIs(t, a.DeleteRecipe(context.Background(), []string{"not-a-uuid"}), errUsage)
	require.ErrorIs(t, a.CheckFile(context.Background(), []string{"avatar"}), errUsage)
	require.ErrorIs(t, a.CheckFile(context.Background(), []string{"banner", "x.png"}), errUsage)
}

func TestApp_ToggleStatus(t *testing.T) {
	id := uuid.New()
	sc := &stubClient{
		page:  &models.PageContext{},
		users: []models.User{{ID: id, Username: "spam", Active: true}},
	}
	a, out := testApp(t, sc, "y\n")

	require.ErrorIs(t, a.ToggleStatus(context.Background(), []string{id.String()}), errNotLoaded)

	require.NoError(t, a.Users(context.Background(), nil))
	require.NoError(t, a.ToggleStatus(context.Background(), []string{id.String()}))
	assert.Equal(t, []bool{false}, sc.statuses)
	assert.Contains(t, out.String(), "Are you sure you want to deactivate this user? [y/N]")
}

func TestApp_CheckFile(t *testing.T) {
	dir := t.TempDir()
	big := filepath.Join(dir, "big.png")
	require.NoError(t, os.WriteFile(big, make([]byte, upload.MaxUploadSize+1), 0o600))
	small := filepath.Join(dir, "small.png")
	require.NoError(t, os.WriteFile(small, []byte("png"), 0o600))

	a, out := testApp(t, &stubClient{}, "")

	require.ErrorIs(t, a.CheckFile(context.Background(), []string{"profile", big}), upload.ErrTooLarge)
	assert.Equal(t, "! "+upload.TooLargeMessage+"\n", out.String())

	require.NoError(t, a.CheckFile(context.Background(), []string{"recipe", small}))
	assert.Equal(t, small, a.guards["recipe"].Selected())
}

func TestApp_Login(t *testing.T) {
	old := readPassword
	t.Cleanup(func() { readPassword = old })
	readPassword = func(int) ([]byte, error) { return []byte("secret"), nil }

	sc := &stubClient{}
	a, _ := testApp(t, sc, "admin\n")

	assert.False(t, a.isLoggedIn())
	require.NoError(t, a.Login(context.Background(), nil))
	assert.Equal(t, "admin", sc.loginUser)
	assert.Equal(t, "secret", sc.loginPass)
	assert.True(t, a.isLoggedIn())
	assert.Equal(t, "(admin)", a.status())

	sc.loginErr = client.ErrInvalidCredential
	b, _ := testApp(t, sc, "")
	require.ErrorIs(t, b.Login(context.Background(), []string{"mallory"}), client.ErrInvalidCredential)
	assert.False(t, b.isLoggedIn())
}
