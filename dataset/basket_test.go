package dataset

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadBasket(t *testing.T) {
	t.Run("CommaSeparated", func(t *testing.T) {
		in := "beer,bread,milk\nbeer, bread\n"

		got, err := ReadBasket(strings.NewReader(in))
		require.NoError(t, err)

		assert.Equal(t, [][]string{
			{"beer", "bread", "milk"},
			{"beer", "bread"},
		}, got)
	})

	t.Run("WhitespaceSeparated", func(t *testing.T) {
		in := "1 2 3\n1\t3\n"

		got, err := ReadBasket(strings.NewReader(in))
		require.NoError(t, err)

		assert.Equal(t, [][]string{{"1", "2", "3"}, {"1", "3"}}, got)
	})

	t.Run("SkipsBlankAndCommentLines", func(t *testing.T) {
		in := "# market basket sample\n\n  \nbeer,bread\n#trailing comment\n"

		got, err := ReadBasket(strings.NewReader(in))
		require.NoError(t, err)

		assert.Equal(t, [][]string{{"beer", "bread"}}, got)
	})

	t.Run("DropsEmptyItems", func(t *testing.T) {
		got, err := ReadBasket(strings.NewReader("beer,,bread,\n,,\n"))
		require.NoError(t, err)

		assert.Equal(t, [][]string{{"beer", "bread"}}, got)
	})

	t.Run("EmptyInput", func(t *testing.T) {
		got, err := ReadBasket(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestOpen(t *testing.T) {
	t.Run("PlainFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "basket.txt")
		require.NoError(t, os.WriteFile(path, []byte("a,b\nb,c\n"), 0o600))

		got, err := Open(path)
		require.NoError(t, err)

		assert.Equal(t, [][]string{{"a", "b"}, {"b", "c"}}, got)
	})

	t.Run("GzipFile", func(t *testing.T) {
		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		_, err := zw.Write([]byte("a,b\nb,c\n"))
		require.NoError(t, err)
		require.NoError(t, zw.Close())

		path := filepath.Join(t.TempDir(), "basket.txt.gz")
		require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

		got, err := Open(path)
		require.NoError(t, err)

		assert.Equal(t, [][]string{{"a", "b"}, {"b", "c"}}, got)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := Open(filepath.Join(t.TempDir(), "nope.txt"))
		assert.Error(t, err)
	})
}
