package proc

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/pranshuparmar/ps2gv/internal/proc/mocks"
	"github.com/pranshuparmar/ps2gv/pkg/model"
)

func TestCaptureLive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockExec := mocks.NewMockExecutor(ctrl)
	SetExecutor(mockExec)
	defer ResetExecutor()

	psOut := "ZONE PPID PID RSS %CPU COMMAND\nglobal 0 1 9000 0.0 systemd\n"
	mockExec.EXPECT().Run("ps", "-eo", LiveColumns()).Return([]byte(psOut), nil)

	table, err := CaptureLive()
	if err != nil {
		t.Fatalf("CaptureLive failed: %v", err)
	}
	if table.Text != psOut {
		t.Errorf("Text = %q, want %q", table.Text, psOut)
	}
	if table.Origin != LiveOrigin {
		t.Errorf("Origin = %q, want %q", table.Origin, LiveOrigin)
	}
	if table.Format != liveFormat {
		t.Errorf("Format = %v, want %v", table.Format, liveFormat)
	}
	if table.ResolveUnits != resolveUnits {
		t.Errorf("ResolveUnits = %v, want %v", table.ResolveUnits, resolveUnits)
	}
}

func TestCaptureLiveEmptyOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockExec := mocks.NewMockExecutor(ctrl)
	SetExecutor(mockExec)
	defer ResetExecutor()

	mockExec.EXPECT().Run("ps", gomock.Any(), gomock.Any()).Return(nil, nil)

	table, err := CaptureLive()
	if err != nil {
		t.Fatalf("empty ps output should not be an error, got %v", err)
	}
	if table.Text != "" {
		t.Errorf("Text = %q, want empty", table.Text)
	}
}

func TestCaptureLiveStartFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockExec := mocks.NewMockExecutor(ctrl)
	SetExecutor(mockExec)
	defer ResetExecutor()

	mockExec.EXPECT().Run("ps", gomock.Any(), gomock.Any()).Return(nil, exec.ErrNotFound)

	_, err := CaptureLive()
	var capErr *CaptureError
	if !errors.As(err, &capErr) {
		t.Fatalf("expected *CaptureError, got %T (%v)", err, err)
	}
	if !errors.Is(err, exec.ErrNotFound) {
		t.Errorf("CaptureError should wrap the exec error, got %v", err)
	}
}

func TestCaptureLivePartialOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockExec := mocks.NewMockExecutor(ctrl)
	SetExecutor(mockExec)
	defer ResetExecutor()

	psOut := "PPID PID RSS %CPU COMMAND\n1 10 100 0.0 sh\n"
	mockExec.EXPECT().Run("ps", gomock.Any(), gomock.Any()).Return([]byte(psOut), &exec.ExitError{})

	table, err := CaptureLive()
	if err != nil {
		t.Fatalf("non-zero exit with output should be accepted, got %v", err)
	}
	if table.Text != psOut {
		t.Errorf("Text = %q, want %q", table.Text, psOut)
	}
}

func TestCaptureLiveFailedWithoutOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockExec := mocks.NewMockExecutor(ctrl)
	SetExecutor(mockExec)
	defer ResetExecutor()

	exitErr := &exec.ExitError{}
	mockExec.EXPECT().Run("ps", gomock.Any(), gomock.Any()).Return(nil, exitErr)

	_, err := CaptureLive()
	var capErr *CaptureError
	if !errors.As(err, &capErr) {
		t.Fatalf("expected *CaptureError, got %T (%v)", err, err)
	}
	if capErr.Op != "run" || capErr.Path != "ps" {
		t.Errorf("CaptureError = %+v, want op run on ps", capErr)
	}
	var gotExit *exec.ExitError
	if !errors.As(err, &gotExit) || gotExit != exitErr {
		t.Errorf("CaptureError should wrap the exit error, got %v", err)
	}
}

func TestCaptureSnapshot(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snap.txt")
	content := "PPID PID RSS %CPU COMM\n1 2 3 4.0 /bin/sh\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	table, err := CaptureSnapshot(path)
	if err != nil {
		t.Fatalf("CaptureSnapshot failed: %v", err)
	}
	if table.Text != content {
		t.Errorf("Text = %q, want %q", table.Text, content)
	}
	if table.Format != model.FormatUnknown {
		t.Errorf("snapshot format should be left for detection, got %v", table.Format)
	}
	if table.ResolveUnits {
		t.Error("snapshots must not resolve units against the local host")
	}
}

func TestCaptureSnapshotMissing(t *testing.T) {
	_, err := CaptureSnapshot(filepath.Join(t.TempDir(), "missing.txt"))
	var capErr *CaptureError
	if !errors.As(err, &capErr) {
		t.Fatalf("expected *CaptureError, got %T (%v)", err, err)
	}
	if capErr.Op != "open" {
		t.Errorf("Op = %q, want open", capErr.Op)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected wrapped ErrNotExist, got %v", err)
	}
}

func TestSaveSnapshotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "live.txt")
	in := Table{Text: "ZONE PPID PID RSS PCPU COMM\nglobal 0 1 1 0.0 init\n", Origin: LiveOrigin}

	if err := SaveSnapshot(path, in); err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}
	out, err := CaptureSnapshot(path)
	if err != nil {
		t.Fatalf("CaptureSnapshot failed: %v", err)
	}
	if out.Text != in.Text {
		t.Errorf("round trip mismatch: %q vs %q", out.Text, in.Text)
	}
}
