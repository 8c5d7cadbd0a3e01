package runner

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/coltonb-mixpanel/import-sorter/pkg/records"
	"github.com/coltonb-mixpanel/import-sorter/pkg/sorter"
)

const sampleGroup = `[
  {"source": "zod", "specifiers": ["named"]},
  {"source": "react", "specifiers": ["default"], "span": {"start": 0, "end": 26}},
  {"source": "axios", "specifiers": ["default"]}
]`

func writeGroup(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunner_ProcessFile_SourcesOnly(t *testing.T) {
	req := require.New(t)
	path := writeGroup(t, t.TempDir(), "group.json", sampleGroup)

	var out bytes.Buffer
	r := New(RunnerConfig{
		Options:     sorter.Options{Enabled: true},
		SourcesOnly: true,
		Out:         &out,
	})

	req.NoError(r.ProcessFile(path))
	req.Equal("axios\nreact\nzod\n", out.String())
}

func TestRunner_ProcessFile_EmitsSortedRecords(t *testing.T) {
	req := require.New(t)
	path := writeGroup(t, t.TempDir(), "group.json", sampleGroup)

	var out bytes.Buffer
	r := New(RunnerConfig{
		Options: sorter.Options{Enabled: true},
		Out:     &out,
	})

	req.NoError(r.ProcessFile(path))

	imports, err := records.Decode(out.Bytes())
	req.NoError(err)
	req.Equal([]string{"axios", "react", "zod"}, records.Sources(imports))

	// Spans and specifiers travel with their records.
	req.Equal(&sorter.Span{Start: 0, End: 26}, imports[1].Span)
	req.Equal([]sorter.Specifier{sorter.NamedSpecifier}, imports[2].Specifiers)
}

func TestRunner_ProcessFile_InPlace(t *testing.T) {
	req := require.New(t)
	path := writeGroup(t, t.TempDir(), "group.json", sampleGroup)

	var out bytes.Buffer
	r := New(RunnerConfig{
		Options: sorter.Options{Enabled: true},
		InPlace: true,
		Out:     &out,
	})

	req.NoError(r.ProcessFile(path))
	req.Empty(out.String(), "in-place mode must not print records")

	data, err := os.ReadFile(path)
	req.NoError(err)
	imports, err := records.Decode(data)
	req.NoError(err)
	req.Equal([]string{"axios", "react", "zod"}, records.Sources(imports))
}

func TestRunner_ProcessFile_SortingDisabled(t *testing.T) {
	req := require.New(t)
	path := writeGroup(t, t.TempDir(), "group.json", sampleGroup)

	var out bytes.Buffer
	r := New(RunnerConfig{
		Options:     sorter.Options{Enabled: false},
		SourcesOnly: true,
		Out:         &out,
	})

	req.NoError(r.ProcessFile(path))
	req.Equal("zod\nreact\naxios\n", out.String())
}

func TestRunner_ProcessFile_DecodeError(t *testing.T) {
	req := require.New(t)
	path := writeGroup(t, t.TempDir(), "group.json", "not json")

	r := New(RunnerConfig{Options: sorter.Options{Enabled: true}, Out: &bytes.Buffer{}})
	req.Error(r.ProcessFile(path))
}

func TestRunner_ProcessFiles_CountsErrors(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()

	good := writeGroup(t, dir, "good.json", sampleGroup)
	bad := writeGroup(t, dir, "bad.json", "{broken")

	var out bytes.Buffer
	r := New(RunnerConfig{
		Options:     sorter.Options{Enabled: true},
		SourcesOnly: true,
		Out:         &out,
	})

	err := r.ProcessFiles([]string{good, bad})
	req.Error(err)
	req.Contains(err.Error(), "1 files failed to process")
	req.Contains(out.String(), "Processed 1 files successfully")
	req.Contains(out.String(), "1 files had errors")
}

func TestRunner_ProcessPath_Directory(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()

	writeGroup(t, dir, "third-party.json", sampleGroup)
	writeGroup(t, dir, "stdlib.json", `[{"source": "path"}, {"source": "fs"}]`)

	var out bytes.Buffer
	r := New(RunnerConfig{
		Options: sorter.Options{Enabled: true},
		InPlace: true,
		Out:     &out,
	})

	req.NoError(r.ProcessPath(dir))
	req.Contains(out.String(), "Found 2 record files")
	req.Contains(out.String(), "Processed 2 files successfully")

	// Each group was sorted independently.
	data, err := os.ReadFile(filepath.Join(dir, "stdlib.json"))
	req.NoError(err)
	imports, err := records.Decode(data)
	req.NoError(err)
	req.Equal([]string{"fs", "path"}, records.Sources(imports))
}

func TestRunner_ProcessPath_DirectoryWithoutInPlaceWarns(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	writeGroup(t, dir, "group.json", sampleGroup)

	var out bytes.Buffer
	r := New(RunnerConfig{
		Options:     sorter.Options{Enabled: true},
		SourcesOnly: true,
		Out:         &out,
	})

	req.NoError(r.ProcessPath(dir))
	req.True(strings.HasPrefix(out.String(), "Warning: Processing directory without --in-place flag."))
}

func TestRunner_ProcessPath_EmptyDirectory(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()

	var out bytes.Buffer
	r := New(RunnerConfig{
		Options: sorter.Options{Enabled: true},
		InPlace: true,
		Out:     &out,
	})

	req.NoError(r.ProcessPath(dir))
	req.Contains(out.String(), "No record files found in directory")
}

func TestRunner_ProcessPath_MissingPath(t *testing.T) {
	req := require.New(t)

	r := New(RunnerConfig{Options: sorter.Options{Enabled: true}, Out: &bytes.Buffer{}})
	req.Error(r.ProcessPath(filepath.Join(t.TempDir(), "missing.json")))
}
