package pathenv

import (
	"errors"
	"io/fs"
	"os"
	"testing"
)

func TestParseDropsBlanksAndKeepsOrder(t *testing.T) {
	entries := Parse("/usr/bin::/usr/local/bin: :/opt/tools", ':')
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %+v", entries)
	}
	expected := []string{"/usr/bin", "/usr/local/bin", "/opt/tools"}
	for i, dir := range expected {
		if entries[i].Dir != dir || entries[i].Position != i+1 {
			t.Fatalf("entry %d wrong: %+v", i, entries[i])
		}
	}
}

func TestParseFlagsCaseInsensitiveDuplicates(t *testing.T) {
	entries := Parse(`C:\Windows;c:\windows;C:\Tools`, ';')
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %+v", entries)
	}
	if entries[0].Duplicate {
		t.Fatalf("first occurrence flagged as duplicate: %+v", entries[0])
	}
	if !entries[1].Duplicate {
		t.Fatalf("repeat not flagged: %+v", entries[1])
	}
	if entries[2].Duplicate {
		t.Fatalf("unique entry flagged: %+v", entries[2])
	}
}

func TestParseEmptyValue(t *testing.T) {
	if entries := Parse("", ':'); len(entries) != 0 {
		t.Fatalf("expected no entries, got %+v", entries)
	}
}

func TestAnnotateSetsExists(t *testing.T) {
	t.Cleanup(func() { statDir = os.Stat })

	realDir := t.TempDir()
	statDir = func(name string) (fs.FileInfo, error) {
		if name == realDir {
			return os.Stat(realDir)
		}
		return nil, errors.New("missing")
	}

	entries := Parse(realDir+":/definitely/not/here", ':')
	Annotate(entries)
	if !entries[0].Exists {
		t.Fatalf("existing dir not detected: %+v", entries[0])
	}
	if entries[1].Exists {
		t.Fatalf("missing dir marked existing: %+v", entries[1])
	}
}
