package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

var (
	ErrDevBuild      = errors.New("cannot update a development build")
	ErrAlreadyLatest = errors.New("already running the latest version")
	ErrChecksum      = errors.New("checksum verification failed")
)

// UpdateInput selects what to update to. Empty TargetVersion means
// whatever Check reports as latest.
type UpdateInput struct {
	CurrentVersion string
	TargetVersion  string
}

// UpdateProgress reports a stage transition to the caller's UI.
type UpdateProgress struct {
	Stage   string
	Message string
}

// Update resolves the target release, fetches its checksums and the
// archive for this platform, verifies the archive, and swaps the running
// binary in place.
func (c *Checker) Update(ctx context.Context, input *UpdateInput, progress func(UpdateProgress)) error {
	if input.CurrentVersion == "(devel)" {
		return ErrDevBuild
	}

	tag, err := c.resolveTag(ctx, input, progress)
	if err != nil {
		return err
	}

	asset, err := assetName()
	if err != nil {
		return err
	}

	progress(UpdateProgress{Stage: "verify", Message: "Fetching release checksums..."})
	sums, err := c.fetch(ctx, c.releaseFileURL(tag, "checksums.txt"))
	if err != nil {
		return fmt.Errorf("download checksums: %w", err)
	}
	wantSum, ok := parseChecksums(sums)[asset]
	if !ok {
		return fmt.Errorf("no checksum found for %s in checksums.txt", asset)
	}

	progress(UpdateProgress{Stage: "download", Message: fmt.Sprintf("Downloading %s...", tag)})
	archive, err := c.fetch(ctx, c.releaseFileURL(tag, asset))
	if err != nil {
		return fmt.Errorf("download archive: %w", err)
	}
	if err := verifyChecksum(archive, wantSum); err != nil {
		return err
	}

	progress(UpdateProgress{Stage: "extract", Message: "Extracting binary..."})
	binary, err := extractBinary(archive, asset)
	if err != nil {
		return fmt.Errorf("extract binary: %w", err)
	}

	progress(UpdateProgress{Stage: "apply", Message: "Applying update..."})
	target, err := c.execPath()
	if err != nil {
		return fmt.Errorf("resolve executable path: %w", err)
	}
	if err := swapBinary(binary, target); err != nil {
		return fmt.Errorf("apply update: %w", err)
	}

	progress(UpdateProgress{Stage: "done", Message: fmt.Sprintf("Updated to %s", tag)})
	return nil
}

// resolveTag returns the explicit target version, or asks Check for the
// latest release. ErrAlreadyLatest when nothing newer exists.
func (c *Checker) resolveTag(ctx context.Context, input *UpdateInput, progress func(UpdateProgress)) (string, error) {
	if input.TargetVersion != "" {
		return input.TargetVersion, nil
	}
	progress(UpdateProgress{Stage: "check", Message: "Checking for latest version..."})
	result, err := c.Check(ctx, &CheckInput{Version: input.CurrentVersion})
	if err != nil {
		return "", fmt.Errorf("check for updates: %w", err)
	}
	if !result.UpdateAvailable {
		return "", ErrAlreadyLatest
	}
	return result.LatestVersion, nil
}

func (c *Checker) releaseFileURL(tag, file string) string {
	base := strings.TrimRight(c.downloadBaseURL, "/")
	return fmt.Sprintf("%s/%s/%s/releases/download/%s/%s", base, c.owner, c.repo, tag, file)
}

func (c *Checker) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}
	return io.ReadAll(resp.Body)
}

func assetName() (string, error) {
	return assetNameFor(runtime.GOOS, runtime.GOARCH)
}

// assetNameFor maps GOOS/GOARCH onto the release archive naming scheme:
// studyloop_<Os>_<arch>.tar.gz, darwin shipping a universal binary and
// windows shipping zips.
func assetNameFor(goos, goarch string) (string, error) {
	if goos == "darwin" {
		return "studyloop_Darwin_all.tar.gz", nil
	}

	var arch string
	switch goarch {
	case "amd64":
		arch = "x86_64"
	case "arm64":
		arch = "arm64"
	case "386":
		arch = "i386"
	default:
		return "", fmt.Errorf("unsupported architecture: %s", goarch)
	}

	switch goos {
	case "linux":
		return "studyloop_Linux_" + arch + ".tar.gz", nil
	case "windows":
		return "studyloop_Windows_" + arch + ".zip", nil
	}
	return "", fmt.Errorf("unsupported operating system: %s", goos)
}

// parseChecksums reads sha256sum-format lines: "<hex>  <filename>".
func parseChecksums(data []byte) map[string]string {
	sums := make(map[string]string)
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 2 {
			sums[fields[1]] = fields[0]
		}
	}
	return sums
}

func verifyChecksum(data []byte, wantHex string) error {
	sum := sha256.Sum256(data)
	if got := hex.EncodeToString(sum[:]); got != wantHex {
		return fmt.Errorf("%w: expected %s, got %s", ErrChecksum, wantHex, got)
	}
	return nil
}

func extractBinary(archive []byte, asset string) ([]byte, error) {
	if strings.HasSuffix(asset, ".zip") {
		return extractFromZip(archive, "studyloop.exe")
	}
	return extractFromTarGz(archive, "studyloop")
}

func extractFromTarGz(data []byte, name string) ([]byte, error) {
	gz, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open gzip: %w", err)
	}
	defer func() { _ = gz.Close() }()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("binary %q not found in archive", name)
		}
		if err != nil {
			return nil, fmt.Errorf("read tar: %w", err)
		}
		if hdr.Typeflag == tar.TypeReg && filepath.Base(hdr.Name) == name {
			return io.ReadAll(tr)
		}
	}
}

func extractFromZip(data []byte, name string) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open zip: %w", err)
	}
	for _, f := range zr.File {
		if filepath.Base(f.Name) != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer func() { _ = rc.Close() }()
		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("binary %q not found in archive", name)
}

// swapBinary stages the new binary next to the target so the final
// rename stays on one filesystem, re-verifies the staged bytes, then
// renames over the running executable keeping its mode.
func swapBinary(binary []byte, target string) error {
	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("stat target: %w", err)
	}

	staging, err := os.MkdirTemp(filepath.Dir(target), ".studyloop-update-*")
	if err != nil {
		return fmt.Errorf("create staging dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(staging) }()

	staged := filepath.Join(staging, "studyloop-new")
	if err := os.WriteFile(staged, binary, 0o600); err != nil {
		return fmt.Errorf("write staged binary: %w", err)
	}

	// Re-read before the swap; a short or corrupted write must not
	// replace a working binary.
	onDisk, err := os.ReadFile(staged)
	if err != nil {
		return fmt.Errorf("re-read staged binary: %w", err)
	}
	want := sha256.Sum256(binary)
	got := sha256.Sum256(onDisk)
	if !bytes.Equal(want[:], got[:]) {
		return fmt.Errorf("%w: staged binary changed after write", ErrChecksum)
	}

	if err := os.Rename(staged, target); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	if err := os.Chmod(target, info.Mode()); err != nil {
		return fmt.Errorf("chmod: %w", err)
	}
	return nil
}
