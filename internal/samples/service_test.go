package samples

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-scorer/internal/shared/storage/object/local"
)

func TestBuiltinSamplesOnly(t *testing.T) {
	svc := NewService(nil)

	resumes, err := svc.List(context.Background(), KindResume)
	require.NoError(t, err)
	require.Len(t, resumes, 2)
	assert.Equal(t, "backend-engineer", resumes[0].ID)
	assert.Equal(t, "builtin", resumes[0].Source)

	text, err := svc.Text(context.Background(), KindJob, "backend-go")
	require.NoError(t, err)
	assert.Contains(t, text, "Kubernetes")
}

func TestStoreOverridesBuiltin(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "resumes"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "resumes", "backend-engineer.txt"), []byte("custom resume"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "resumes", "designer.md"), []byte("Figma"), 0o644))

	svc := NewService(local.New(dir))

	resumes, err := svc.List(context.Background(), KindResume)
	require.NoError(t, err)
	ids := make([]string, 0, len(resumes))
	for _, r := range resumes {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"backend-engineer", "designer", "graduate-analyst"}, ids)
	assert.Equal(t, "store", resumes[0].Source)

	text, err := svc.Text(context.Background(), KindResume, "backend-engineer")
	require.NoError(t, err)
	assert.Equal(t, "custom resume", text)

	text, err = svc.Text(context.Background(), KindResume, "graduate-analyst")
	require.NoError(t, err)
	assert.Contains(t, text, "Tableau")
}

func TestTextErrors(t *testing.T) {
	svc := NewService(nil)

	_, err := svc.Text(context.Background(), KindResume, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)

	for _, bad := range []string{"../etc/passwd", "a/b", "", ".hidden"} {
		_, err = svc.Text(context.Background(), KindResume, bad)
		assert.ErrorIs(t, err, ErrInvalidID, bad)
	}

	_, err = svc.List(context.Background(), Kind("photo"))
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("Jobs")
	require.NoError(t, err)
	assert.Equal(t, KindJob, k)

	_, err = ParseKind("cv")
	assert.ErrorIs(t, err, ErrUnknownKind)
}
