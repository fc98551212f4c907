package source

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestReadWordFile(t *testing.T) {
	tests := []struct {
		name        string
		fileContent string
		want        []string
	}{
		{
			name:        "empty file",
			fileContent: "",
			want:        nil,
		},
		{
			name:        "only whitespace",
			fileContent: "   \n\t\r\n   ",
			want:        nil,
		},
		{
			name:        "one word per line",
			fileContent: "apple\ngrape\nlemon",
			want:        []string{"apple", "grape", "lemon"},
		},
		{
			name: "several words per line",
			fileContent: `abate abbey abbot
acted actor`,
			want: []string{"abate", "abbey", "abbot", "acted", "actor"},
		},
		{
			name: "comments and blank lines",
			fileContent: `# fruit
apple

  # more fruit
grape  `,
			want: []string{"apple", "grape"},
		},
		{
			name:        "windows line endings",
			fileContent: "apple\r\ngrape\r\nlemon",
			want:        []string{"apple", "grape", "lemon"},
		},
		{
			name:        "tokens kept as written",
			fileContent: "Apple velvet oven",
			want:        []string{"Apple", "velvet", "oven"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			tmpFile := filepath.Join(tmpDir, "words.txt")
			if err := os.WriteFile(tmpFile, []byte(tt.fileContent), 0644); err != nil {
				t.Fatalf("Failed to create test file: %v", err)
			}

			got, err := ReadWordFile(tmpFile)
			if err != nil {
				t.Fatalf("ReadWordFile() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ReadWordFile() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReadWordFile_FileNotFound(t *testing.T) {
	_, err := ReadWordFile("/nonexistent/words.txt")
	if err == nil {
		t.Error("Expected error for non-existent file")
	}
}
