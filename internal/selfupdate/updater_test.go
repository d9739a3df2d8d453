package selfupdate

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetNameFor(t *testing.T) {
	tests := []struct {
		name    string
		goos    string
		goarch  string
		want    string
		wantErr bool
	}{
		{"darwin amd64", "darwin", "amd64", "studyloop_Darwin_all.tar.gz", false},
		{"darwin arm64", "darwin", "arm64", "studyloop_Darwin_all.tar.gz", false},
		{"linux amd64", "linux", "amd64", "studyloop_Linux_x86_64.tar.gz", false},
		{"linux arm64", "linux", "arm64", "studyloop_Linux_arm64.tar.gz", false},
		{"linux 386", "linux", "386", "studyloop_Linux_i386.tar.gz", false},
		{"windows amd64", "windows", "amd64", "studyloop_Windows_x86_64.zip", false},
		{"windows arm64", "windows", "arm64", "studyloop_Windows_arm64.zip", false},
		{"unsupported os", "freebsd", "amd64", "", true},
		{"unsupported arch", "linux", "mips", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := assetNameFor(tt.goos, tt.goarch)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseChecksums(t *testing.T) {
	input := "abc123  studyloop_Linux_x86_64.tar.gz\ndef456  studyloop_Darwin_all.tar.gz\n\nmalformed line with too many fields here\n"
	got := parseChecksums([]byte(input))
	assert.Equal(t, "abc123", got["studyloop_Linux_x86_64.tar.gz"])
	assert.Equal(t, "def456", got["studyloop_Darwin_all.tar.gz"])
	assert.Len(t, got, 2)
}

func TestVerifyChecksum(t *testing.T) {
	data := []byte("release payload")
	h := sha256.Sum256(data)

	require.NoError(t, verifyChecksum(data, hex.EncodeToString(h[:])))

	err := verifyChecksum(data, "deadbeef")
	require.ErrorIs(t, err, ErrChecksum)
}

func TestCheckReportsUpdate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/anirudh/studyloop/releases/latest", r.URL.Path)
		fmt.Fprint(w, `{"tag_name":"v1.2.0","html_url":"https://example.com/releases/v1.2.0"}`)
	}))
	defer srv.Close()

	c := NewChecker(WithBaseURLs(srv.URL, srv.URL))

	result, err := c.Check(context.Background(), &CheckInput{Version: "v1.1.0"})
	require.NoError(t, err)
	assert.True(t, result.UpdateAvailable)
	assert.Equal(t, "v1.2.0", result.LatestVersion)

	result, err = c.Check(context.Background(), &CheckInput{Version: "v1.2.0"})
	require.NoError(t, err)
	assert.False(t, result.UpdateAvailable)

	result, err = c.Check(context.Background(), &CheckInput{Version: "v1.3.0"})
	require.NoError(t, err)
	assert.False(t, result.UpdateAvailable)
}

func TestCheckDevBuild(t *testing.T) {
	c := NewChecker()
	result, err := c.Check(context.Background(), &CheckInput{Version: "(devel)"})
	require.NoError(t, err)
	assert.False(t, result.UpdateAvailable)
}

func TestUpdateDevBuildRefused(t *testing.T) {
	c := NewChecker()
	err := c.Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"}, func(UpdateProgress) {})
	require.ErrorIs(t, err, ErrDevBuild)
}

func makeTarGz(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)
	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name:     name,
		Mode:     0o755,
		Size:     int64(len(content)),
		Typeflag: tar.TypeReg,
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gz.Close())
	return buf.Bytes()
}

func TestExtractFromTarGz(t *testing.T) {
	binary := []byte("#!/bin/true")
	archive := makeTarGz(t, "studyloop", binary)

	got, err := extractFromTarGz(archive, "studyloop")
	require.NoError(t, err)
	assert.Equal(t, binary, got)

	_, err = extractFromTarGz(archive, "missing")
	require.Error(t, err)
}

func TestUpdateEndToEnd(t *testing.T) {
	newBinary := []byte("new binary contents")
	asset, err := assetName()
	if err != nil {
		t.Skipf("unsupported platform: %v", err)
	}
	if filepath.Ext(asset) == ".zip" {
		t.Skip("tar.gz platforms only")
	}

	archive := makeTarGz(t, "studyloop", newBinary)
	archiveHash := sha256.Sum256(archive)
	checksums := fmt.Sprintf("%s  %s\n", hex.EncodeToString(archiveHash[:]), asset)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/repos/anirudh/studyloop/releases/latest":
			fmt.Fprint(w, `{"tag_name":"v2.0.0"}`)
		case filepath.Base(r.URL.Path) == "checksums.txt":
			fmt.Fprint(w, checksums)
		case filepath.Base(r.URL.Path) == asset:
			_, _ = w.Write(archive)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	// Stand-in for the running binary.
	target := filepath.Join(t.TempDir(), "studyloop")
	require.NoError(t, os.WriteFile(target, []byte("old binary"), 0o755))

	c := NewChecker(WithBaseURLs(srv.URL, srv.URL))
	c.execPath = func() (string, error) { return target, nil }

	var stages []string
	err = c.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(p UpdateProgress) {
		stages = append(stages, p.Stage)
	})
	require.NoError(t, err)

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, newBinary, got)
	assert.Contains(t, stages, "download")
	assert.Contains(t, stages, "verify")
	assert.Contains(t, stages, "done")
}

func TestUpdateAlreadyLatest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"tag_name":"v1.0.0"}`)
	}))
	defer srv.Close()

	c := NewChecker(WithBaseURLs(srv.URL, srv.URL))
	err := c.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
	require.ErrorIs(t, err, ErrAlreadyLatest)
}

func TestUpdateChecksumMismatch(t *testing.T) {
	asset, err := assetName()
	if err != nil {
		t.Skipf("unsupported platform: %v", err)
	}
	if filepath.Ext(asset) == ".zip" {
		t.Skip("tar.gz platforms only")
	}

	archive := makeTarGz(t, "studyloop", []byte("payload"))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case filepath.Base(r.URL.Path) == "checksums.txt":
			fmt.Fprintf(w, "0000000000000000000000000000000000000000000000000000000000000000  %s\n", asset)
		case filepath.Base(r.URL.Path) == asset:
			_, _ = w.Write(archive)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := NewChecker(WithBaseURLs(srv.URL, srv.URL))
	err = c.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0", TargetVersion: "v2.0.0"}, func(UpdateProgress) {})
	require.ErrorIs(t, err, ErrChecksum)
}

func TestCanonical(t *testing.T) {
	assert.Equal(t, "v1.2.3", canonical("v1.2.3"))
	assert.Equal(t, "v1.2.3", canonical("1.2.3"))
	assert.Equal(t, "", canonical("not-a-version"))
	assert.Equal(t, "", canonical(""))
}
