package upload

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func fileHeader(t *testing.T, name, contentType string, body []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+name+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(body); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	if err != nil {
		t.Fatalf("read form: %v", err)
	}
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["file"][0]
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir(), 1024)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return s
}

func TestSaveAndServeResume(t *testing.T) {
	s := newTestStore(t)

	fh := fileHeader(t, "resume.pdf", "application/pdf", []byte("%PDF-1.4 fake"))
	name, err := s.Save(fh, KindResume)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if filepath.Ext(name) != ".pdf" {
		t.Fatalf("expected stored name to keep extension, got %q", name)
	}
	if !s.Exists(name) {
		t.Fatalf("expected stored file to exist")
	}

	path, err := s.Resolve(name)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "%PDF-1.4 fake" {
		t.Fatalf("unexpected content: %q err=%v", data, err)
	}
}

func TestSave_RejectsWrongTypeForKind(t *testing.T) {
	s := newTestStore(t)

	fh := fileHeader(t, "photo.png", "image/png", []byte("png"))
	if _, err := s.Save(fh, KindResume); !errors.Is(err, ErrBadType) {
		t.Fatalf("expected ErrBadType, got %v", err)
	}
	if _, err := s.Save(fh, KindImage); err != nil {
		t.Fatalf("unexpected err for image kind: %v", err)
	}
}

func TestSave_RejectsOversize(t *testing.T) {
	s := newTestStore(t)

	fh := fileHeader(t, "big.pdf", "application/pdf", bytes.Repeat([]byte("a"), 2048))
	if _, err := s.Save(fh, KindResume); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}
}

func TestResolve_RejectsTraversal(t *testing.T) {
	s := newTestStore(t)

	p, err := s.Resolve("../../etc/passwd")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	// Clean confines the name inside the directory instead of escaping it.
	if !strings.HasPrefix(p, s.Dir()+string(filepath.Separator)) {
		t.Fatalf("resolved path escaped the store: %q", p)
	}
}

func TestRemove_MissingFileIsNoError(t *testing.T) {
	s := newTestStore(t)
	if err := s.Remove("never-stored.pdf"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestList(t *testing.T) {
	s := newTestStore(t)

	fh := fileHeader(t, "resume.pdf", "application/pdf", []byte("x"))
	name, err := s.Save(fh, KindResume)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	entries, err := s.List()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(entries) != 1 || entries[0].Name != name {
		t.Fatalf("unexpected entries: %+v", entries)
	}
}
