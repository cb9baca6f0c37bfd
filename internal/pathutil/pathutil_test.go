package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDir(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"/data", "/data/"},
		{"/data/", "/data/"},
		{"/data///", "/data/"},
		{`C:\data\sub`, "C:/data/sub/"},
		{`C:\data\sub\`, "C:/data/sub/"},
		{"relative/dir", "relative/dir/"},
		{".", "./"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeDir(tt.input), "input %q", tt.input)
	}
}

func TestJoinEntry(t *testing.T) {
	assert.Equal(t, "/data/file.txt", JoinEntry("/data", "file.txt"))
	assert.Equal(t, "/data/file.txt", JoinEntry("/data/", "file.txt"))
	assert.Equal(t, "C:/data/file.txt", JoinEntry(`C:\data\`, "file.txt"))
}

func TestMarkDir(t *testing.T) {
	assert.Equal(t, "/data/sub/", MarkDir("/data/sub"))
	assert.Equal(t, "/data/sub/", MarkDir("/data/sub/"))
	assert.Equal(t, "/data/sub/", MarkDir("/data/sub//"))
}

func TestDepth(t *testing.T) {
	assert.Equal(t, 0, Depth("file.txt"))
	assert.Equal(t, 1, Depth("/file.txt"))
	assert.Equal(t, 3, Depth("/a/b/file.txt"))
	assert.Equal(t, 2, Depth(`a\b\file.txt`))
}

func TestRelativeDepth(t *testing.T) {
	assert.Equal(t, 1, RelativeDepth("/base", "/base/file.txt"))
	assert.Equal(t, 2, RelativeDepth("/base", "/base/sub/file.txt"))
	assert.Equal(t, 1, RelativeDepth("/base/", "/base/sub/"))
	assert.Equal(t, 0, RelativeDepth("/base", "/base"))
}
