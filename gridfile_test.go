package gridfile_test

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bjaus/gridfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Helpers ---

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func parseJSON(t *testing.T, s string) gridfile.Value {
	t.Helper()
	v, err := gridfile.ParseValue([]byte(s))
	require.NoError(t, err)
	return v
}

type errWriter struct{}

func (e *errWriter) Write([]byte) (int, error) {
	return 0, errWriteFailed
}

type errReader struct{}

func (e *errReader) Read([]byte) (int, error) {
	return 0, errReadFailed
}

var (
	errWriteFailed = errors.New("write failed")
	errReadFailed  = errors.New("read failed")
)

// ============================================================
// Formats and shapes
// ============================================================

func TestParseFormat(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    gridfile.Format
		wantErr require.ErrorAssertionFunc
	}{
		"csv":        {input: "csv", want: gridfile.CSV, wantErr: require.NoError},
		"json":       {input: "json", want: gridfile.JSON, wantErr: require.NoError},
		"jsonl":      {input: "jsonl", want: gridfile.JSONL, wantErr: require.NoError},
		"upper case": {input: "JSON", want: gridfile.JSON, wantErr: require.NoError},
		"unknown":    {input: "xml", want: "", wantErr: require.Error},
		"empty":      {input: "", want: "", wantErr: require.Error},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := gridfile.ParseFormat(tt.input)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFormatNamesInput(t *testing.T) {
	t.Parallel()
	_, err := gridfile.ParseFormat("xml")
	require.ErrorIs(t, err, gridfile.ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), `"xml"`)
}

func TestFormatFromPath(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		path    string
		want    gridfile.Format
		wantErr bool
	}{
		"csv":          {path: "data.csv", want: gridfile.CSV},
		"json":         {path: "/tmp/x/data.json", want: gridfile.JSON},
		"jsonl":        {path: "events.jsonl", want: gridfile.JSONL},
		"mixed case":   {path: "DATA.Json", want: gridfile.JSON},
		"double ext":   {path: "archive.csv.json", want: gridfile.JSON},
		"txt":          {path: "notes.txt", wantErr: true},
		"no extension": {path: "Makefile", wantErr: true},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := gridfile.FormatFromPath(tt.path)
			if tt.wantErr {
				require.ErrorIs(t, err, gridfile.ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormats(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []gridfile.Format{gridfile.CSV, gridfile.JSON, gridfile.JSONL}, gridfile.Formats())
	assert.Equal(t, "jsonl", gridfile.JSONL.String())
}

func TestParseShape(t *testing.T) {
	t.Parallel()
	s, err := gridfile.ParseShape("object")
	require.NoError(t, err)
	assert.Equal(t, gridfile.ShapeObject, s)

	s, err = gridfile.ParseShape("Array")
	require.NoError(t, err)
	assert.Equal(t, gridfile.ShapeArray, s)

	_, err = gridfile.ParseShape("tree")
	require.Error(t, err)

	assert.Equal(t, "array", gridfile.Shape("").String())
}

// ============================================================
// CSV
// ============================================================

func TestLoadCSV(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "people.csv", "name,age\nAlice,30\nBob,\n")

	tbl, err := gridfile.Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, tbl.Path)
	assert.Equal(t, gridfile.CSV, tbl.Format)
	assert.Equal(t, gridfile.ShapeArray, tbl.Shape)
	assert.Equal(t, []string{"name", "age"}, tbl.Headers)
	assert.Equal(t, [][]string{{"Alice", "30"}, {"Bob", ""}}, tbl.Rows)
}

func TestCSVRoundTripIsExact(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"simple":              "name,age\nAlice,30\nBob,25\n",
		"quoted comma":        "name,note\nAlice,\"hello, world\"\n",
		"quoted quote":        "name,note\nAlice,\"say \"\"hi\"\"\"\n",
		"multiline":           "name,note\nAlice,\"line one\nline two\"\n",
		"empty cells":         "a,b,c\n,,\nx,,z\n",
		"unicode":             "名前,都市\n太郎,東京\n",
		"header only":         "a,b\n",
		"single empty cell":   "h\n\"\"\nx\n",
		"single empty header": "\"\"\nx\n",
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			tbl, err := gridfile.Read(strings.NewReader(input), gridfile.CSV)
			require.NoError(t, err)
			out, err := gridfile.Marshal(tbl)
			require.NoError(t, err)
			assert.Equal(t, input, string(out))
		})
	}
}

func TestWriteCSVKeepsEmptyRecords(t *testing.T) {
	t.Parallel()
	tbl := &gridfile.Table{
		Format:  gridfile.CSV,
		Headers: []string{"h"},
		Rows:    [][]string{{""}, {}, {"x"}, {""}},
	}
	out, err := gridfile.Marshal(tbl)
	require.NoError(t, err)
	assert.Equal(t, "h\n\"\"\n\"\"\nx\n\"\"\n", string(out))

	back, err := gridfile.Read(strings.NewReader(string(out)), gridfile.CSV)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{""}, {""}, {"x"}, {""}}, back.Rows)
}

// encoding/csv folds \r\n inside a quoted field to \n.
func TestReadCSVQuotedCRLF(t *testing.T) {
	t.Parallel()
	tbl, err := gridfile.Read(strings.NewReader("note\r\n\"x\r\ny\"\r\n"), gridfile.CSV)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"x\ny"}}, tbl.Rows)

	out, err := gridfile.Marshal(tbl)
	require.NoError(t, err)
	assert.Equal(t, "note\n\"x\ny\"\n", string(out))
}

func TestReadCSVFlexibleRows(t *testing.T) {
	t.Parallel()
	tbl, err := gridfile.Read(strings.NewReader("a,b,c\n1\n1,2,3,4,5\n"), gridfile.CSV)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, tbl.Headers)
	assert.Equal(t, [][]string{{"1"}, {"1", "2", "3"}}, tbl.Rows)
	for _, row := range tbl.Rows {
		assert.LessOrEqual(t, len(row), len(tbl.Headers))
	}
}

func TestReadCSVEmpty(t *testing.T) {
	t.Parallel()
	tbl, err := gridfile.Read(strings.NewReader(""), gridfile.CSV)
	require.NoError(t, err)
	assert.Empty(t, tbl.Headers)
	assert.Empty(t, tbl.Rows)

	out, err := gridfile.Marshal(tbl)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestReadCSVStripsByteOrderMark(t *testing.T) {
	t.Parallel()
	tbl, err := gridfile.Read(strings.NewReader("\ufeffid,name\n1,a\n"), gridfile.CSV)
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name"}, tbl.Headers)
}

func TestWriteCSVShortRows(t *testing.T) {
	t.Parallel()
	tbl := &gridfile.Table{
		Format:  gridfile.CSV,
		Headers: []string{"a", "b"},
		Rows:    [][]string{{"1"}, {"2", "x"}},
	}
	out, err := gridfile.Marshal(tbl)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1\n2,x\n", string(out))
}

// ============================================================
// JSON
// ============================================================

func TestCSVToJSONCoercesCells(t *testing.T) {
	t.Parallel()
	tbl, err := gridfile.Read(strings.NewReader("name,age\nAlice,30\nBob,\n"), gridfile.CSV)
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "people.json")
	require.NoError(t, gridfile.Export(tbl, out, gridfile.JSON))

	want := "[\n" +
		"  {\n    \"name\": \"Alice\",\n    \"age\": 30\n  },\n" +
		"  {\n    \"name\": \"Bob\",\n    \"age\": null\n  }\n" +
		"]\n"
	assert.Equal(t, want, readFile(t, out))
}

func TestLoadJSONObject(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "settings.json", `{"a":1,"b":"x"}`)

	tbl, err := gridfile.Load(path)
	require.NoError(t, err)
	assert.Equal(t, gridfile.ShapeObject, tbl.Shape)
	assert.Equal(t, []string{"Key", "Value"}, tbl.Headers)
	assert.Equal(t, [][]string{{"a", "1"}, {"b", "x"}}, tbl.Rows)

	require.NoError(t, gridfile.Save(tbl))
	assert.Equal(t, "{\n  \"a\": 1,\n  \"b\": \"x\"\n}\n", readFile(t, path))
}

func TestJSONObjectKeepsKeyOrder(t *testing.T) {
	t.Parallel()
	input := `{"zeta":1,"alpha":{"nested":[1,2]},"mid":null,"flag":false}`
	tbl, err := gridfile.Read(strings.NewReader(input), gridfile.JSON)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"zeta", "1"},
		{"alpha", `{"nested":[1,2]}`},
		{"mid", ""},
		{"flag", "false"},
	}, tbl.Rows)

	out, err := gridfile.Marshal(tbl)
	require.NoError(t, err)
	assert.True(t, parseJSON(t, input).Equal(parseJSON(t, string(out))))
	assert.Equal(t, []string{"zeta", "alpha", "mid", "flag"}, parseJSON(t, string(out)).Keys())
}

func TestWriteJSONObjectSkipsEmptyKeys(t *testing.T) {
	t.Parallel()
	tbl := &gridfile.Table{
		Format:  gridfile.JSON,
		Shape:   gridfile.ShapeObject,
		Headers: []string{"Key", "Value"},
		Rows:    [][]string{{"", "lost"}, {"k", "v"}, {}, {"n"}},
	}
	out, err := gridfile.Marshal(tbl)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"k\": \"v\",\n  \"n\": null\n}\n", string(out))
}

func TestWriteJSONObjectShapeNeedsKeyValueHeaders(t *testing.T) {
	t.Parallel()
	tbl := &gridfile.Table{
		Format:  gridfile.JSON,
		Shape:   gridfile.ShapeObject,
		Headers: []string{"Name", "Value"},
		Rows:    [][]string{{"a", "1"}},
	}
	out, err := gridfile.Marshal(tbl)
	require.NoError(t, err)
	assert.True(t, parseJSON(t, `[{"Name":"a","Value":1}]`).Equal(parseJSON(t, string(out))))
}

func TestReadJSONArray(t *testing.T) {
	t.Parallel()
	input := `[{"a":1},{"b":true,"a":null},5,"skip",{"c":[1,"x"],"d":{"k":"v"}}]`
	tbl, err := gridfile.Read(strings.NewReader(input), gridfile.JSON)
	require.NoError(t, err)
	assert.Equal(t, gridfile.ShapeArray, tbl.Shape)
	assert.Equal(t, []string{"a", "b", "c", "d"}, tbl.Headers)
	assert.Equal(t, [][]string{
		{"1", "", "", ""},
		{"", "true", "", ""},
		{"", "", `[1,"x"]`, `{"k":"v"}`},
	}, tbl.Rows)
}

func TestReadJSONEmptyArray(t *testing.T) {
	t.Parallel()
	tbl, err := gridfile.Read(strings.NewReader(" [ ] "), gridfile.JSON)
	require.NoError(t, err)
	assert.Equal(t, gridfile.ShapeArray, tbl.Shape)
	assert.Empty(t, tbl.Headers)
	assert.Empty(t, tbl.Rows)

	out, err := gridfile.Marshal(tbl)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(out))
}

func TestJSONArrayRoundTrip(t *testing.T) {
	t.Parallel()
	input := `[
  {"id": 1, "name": "Alice", "score": 9.5, "active": true},
  {"id": 2, "name": "Bob", "score": -3, "active": false},
  {"id": 3, "name": "Carol & <Dave>", "score": 0.25, "active": null}
]`
	tbl, err := gridfile.Read(strings.NewReader(input), gridfile.JSON)
	require.NoError(t, err)

	out, err := gridfile.Marshal(tbl)
	require.NoError(t, err)
	got := parseJSON(t, string(out))
	assert.True(t, parseJSON(t, input).Equal(got), string(out))
	assert.Contains(t, string(out), "Carol & <Dave>")
}

func TestWriteJSONDuplicateHeadersLastWins(t *testing.T) {
	t.Parallel()
	tbl := &gridfile.Table{
		Format:  gridfile.JSON,
		Headers: []string{"a", "a"},
		Rows:    [][]string{{"1", "2"}},
	}
	out, err := gridfile.Marshal(tbl)
	require.NoError(t, err)
	assert.Equal(t, "[\n  {\n    \"a\": 2\n  }\n]\n", string(out))
}

func TestReadJSONErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		msg   string
	}{
		"scalar root": {input: `42`, msg: "must be an object or array"},
		"string root": {input: `"hello"`, msg: "must be an object or array"},
		"malformed":   {input: `{"a":`, msg: "parse JSON"},
		"trailing":    {input: `{} {}`, msg: "parse JSON"},
		"empty":       {input: ``, msg: "parse JSON"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := gridfile.Read(strings.NewReader(tt.input), gridfile.JSON)
			require.ErrorIs(t, err, gridfile.ErrParse)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestReadJSONSanitizesControlCharacters(t *testing.T) {
	t.Parallel()
	input := "[{\"note\":\"a\x01b\x7fc\"}]"
	tbl, err := gridfile.Read(strings.NewReader(input), gridfile.JSON)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a b c"}}, tbl.Rows)
}

// ============================================================
// JSON Lines
// ============================================================

func TestReadJSONLSkipsInvalidLines(t *testing.T) {
	t.Parallel()
	input := strings.Join([]string{
		`{"a":1}`,
		``,
		`not json`,
		`[1,2]`,
		`   `,
		`{"b":"x","a":2}` + "\r",
		`42`,
		`{"c":{"d":[true]}}`,
	}, "\n")
	tbl, err := gridfile.Read(strings.NewReader(input), gridfile.JSONL)
	require.NoError(t, err)
	assert.Equal(t, gridfile.ShapeArray, tbl.Shape)
	assert.Equal(t, []string{"a", "b", "c"}, tbl.Headers)
	assert.Equal(t, [][]string{
		{"1", "", ""},
		{"2", "x", ""},
		{"", "", `{"d":[true]}`},
	}, tbl.Rows)
}

func TestReadJSONLNothingValid(t *testing.T) {
	t.Parallel()
	tbl, err := gridfile.Read(strings.NewReader("garbage\n[1]\n"), gridfile.JSONL)
	require.NoError(t, err)
	assert.Empty(t, tbl.Headers)
	assert.Empty(t, tbl.Rows)
}

func TestWriteJSONL(t *testing.T) {
	t.Parallel()
	tbl := &gridfile.Table{
		Format:  gridfile.JSONL,
		Headers: []string{"a", "b"},
		Rows:    [][]string{{"1", "x"}, {"", "true"}, {"[1, 2]"}},
	}
	out, err := gridfile.Marshal(tbl)
	require.NoError(t, err)
	assert.Equal(t, "{\"a\":1,\"b\":\"x\"}\n{\"a\":null,\"b\":true}\n{\"a\":[1,2],\"b\":null}\n", string(out))
}

func TestJSONLRoundTrip(t *testing.T) {
	t.Parallel()
	input := "{\"id\":1,\"tags\":[\"a\",\"b\"]}\n{\"id\":2,\"tags\":[]}\n"
	tbl, err := gridfile.Read(strings.NewReader(input), gridfile.JSONL)
	require.NoError(t, err)
	out, err := gridfile.Marshal(tbl)
	require.NoError(t, err)
	assert.Equal(t, input, string(out))
}

// ============================================================
// Load / Save / Export
// ============================================================

func TestLoadUnsupportedExtension(t *testing.T) {
	t.Parallel()
	_, err := gridfile.Load("notes.txt")
	require.ErrorIs(t, err, gridfile.ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), "txt")
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()
	_, err := gridfile.Load(filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorIs(t, err, gridfile.ErrIO)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoadUppercaseExtension(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "DATA.CSV", "a\n1\n")
	tbl, err := gridfile.Load(path)
	require.NoError(t, err)
	assert.Equal(t, gridfile.CSV, tbl.Format)
}

func TestLoadInvalidUTF8(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "latin1.csv", "name\ncaf\xe9\n")
	_, err := gridfile.Load(path)
	require.ErrorIs(t, err, gridfile.ErrIO)
}

func TestLoadParseErrorKeepsSentinel(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "bad.json", "true")
	_, err := gridfile.Load(path)
	require.ErrorIs(t, err, gridfile.ErrParse)
}

func TestSaveUnsupportedFormat(t *testing.T) {
	t.Parallel()
	tbl := &gridfile.Table{Path: filepath.Join(t.TempDir(), "x.xml"), Format: "xml"}
	err := gridfile.Save(tbl)
	require.ErrorIs(t, err, gridfile.ErrUnsupportedFormat)
	assert.NoFileExists(t, tbl.Path)
}

func TestSaveUnwritablePath(t *testing.T) {
	t.Parallel()
	tbl := &gridfile.Table{
		Path:    filepath.Join(t.TempDir(), "missing", "dir", "x.csv"),
		Format:  gridfile.CSV,
		Headers: []string{"a"},
	}
	err := gridfile.Save(tbl)
	require.ErrorIs(t, err, gridfile.ErrIO)
	assert.Contains(t, err.Error(), "x.csv")
}

func TestExportForcesArrayAndKeepsOriginal(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "obj.json", `{"a":1,"b":"x"}`)
	tbl, err := gridfile.Load(path)
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "flat.json")
	require.NoError(t, gridfile.Export(tbl, out, gridfile.JSON))

	got := parseJSON(t, readFile(t, out))
	want := parseJSON(t, `[{"Key":"a","Value":1},{"Key":"b","Value":"x"}]`)
	assert.True(t, want.Equal(got))

	assert.Equal(t, path, tbl.Path)
	assert.Equal(t, gridfile.JSON, tbl.Format)
	assert.Equal(t, gridfile.ShapeObject, tbl.Shape)
}

func TestExportToOtherFormats(t *testing.T) {
	t.Parallel()
	tbl := &gridfile.Table{
		Path:    "ignored.json",
		Format:  gridfile.JSON,
		Shape:   gridfile.ShapeObject,
		Headers: []string{"Key", "Value"},
		Rows:    [][]string{{"a", "1"}},
	}
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "out.csv")
	require.NoError(t, gridfile.Export(tbl, csvPath, gridfile.CSV))
	assert.Equal(t, "Key,Value\na,1\n", readFile(t, csvPath))

	jsonlPath := filepath.Join(dir, "out.jsonl")
	require.NoError(t, gridfile.Export(tbl, jsonlPath, gridfile.JSONL))
	assert.Equal(t, "{\"Key\":\"a\",\"Value\":1}\n", readFile(t, jsonlPath))
}

func TestReadWriterErrors(t *testing.T) {
	t.Parallel()
	_, err := gridfile.Read(&errReader{}, gridfile.CSV)
	require.ErrorIs(t, err, gridfile.ErrIO)
	assert.ErrorIs(t, err, errReadFailed)

	tbl := &gridfile.Table{Format: gridfile.CSV, Headers: []string{"a"}}
	err = gridfile.Write(&errWriter{}, tbl)
	require.ErrorIs(t, err, gridfile.ErrIO)
	assert.ErrorIs(t, err, errWriteFailed)
}

func TestReadUnsupportedFormat(t *testing.T) {
	t.Parallel()
	_, err := gridfile.Read(strings.NewReader("a"), gridfile.Format("tsv"))
	require.ErrorIs(t, err, gridfile.ErrUnsupportedFormat)
}

func TestWrite(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	tbl := &gridfile.Table{Format: gridfile.JSONL, Headers: []string{"a"}, Rows: [][]string{{"x"}}}
	require.NoError(t, gridfile.Write(&buf, tbl))
	assert.Equal(t, "{\"a\":\"x\"}\n", buf.String())
}

func TestSaveFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "kv.json")
	err := gridfile.SaveFile(gridfile.SaveRequest{
		FilePath:   path,
		FileType:   "json",
		Headers:    []string{"Key", "Value"},
		Rows:       [][]string{{"x", "[1,2]"}},
		JSONFormat: "object",
	})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"x\": [\n    1,\n    2\n  ]\n}\n", readFile(t, path))
}

func TestSaveFileUnknownJSONFormatFallsBackToArray(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "kv.json")
	err := gridfile.SaveFile(gridfile.SaveRequest{
		FilePath:   path,
		FileType:   "json",
		Headers:    []string{"Key", "Value"},
		Rows:       [][]string{{"x", "1"}},
		JSONFormat: "tree",
	})
	require.NoError(t, err)
	assert.True(t, parseJSON(t, `[{"Key":"x","Value":1}]`).Equal(parseJSON(t, readFile(t, path))))
}

func TestSaveFileUnsupportedType(t *testing.T) {
	t.Parallel()
	err := gridfile.SaveFile(gridfile.SaveRequest{FilePath: "x.txt", FileType: "txt"})
	require.ErrorIs(t, err, gridfile.ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), "txt")
}

func TestExportFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "out.csv")
	req := gridfile.SaveRequest{
		FileType:   "",
		Headers:    []string{"Key", "Value"},
		Rows:       [][]string{{"a", "1"}},
		JSONFormat: "object",
	}
	require.NoError(t, gridfile.ExportFile(req, path, "csv"))
	assert.Equal(t, "Key,Value\na,1\n", readFile(t, path))

	err := gridfile.ExportFile(req, path, "xlsx")
	require.ErrorIs(t, err, gridfile.ErrUnsupportedFormat)
}

func TestTableClone(t *testing.T) {
	t.Parallel()
	tbl := &gridfile.Table{Headers: []string{"a"}, Rows: [][]string{{"1"}}}
	c := tbl.Clone()
	c.Headers[0] = "b"
	c.Rows[0][0] = "2"
	assert.Equal(t, "a", tbl.Headers[0])
	assert.Equal(t, "1", tbl.Rows[0][0])
	assert.True(t, tbl.Equal(tbl.Clone()))
}
