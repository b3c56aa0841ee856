// Package gridfile loads CSV, JSON, and JSON Lines files into an editable
// table of text cells and writes the table back out.
//
// A [Table] holds ordered headers and string rows. The central entry points
// are [Load], [Save], and [Export]:
//
//	t, err := gridfile.Load("people.json")
//	t.SetCell(0, 1, "31")
//	err = gridfile.Save(t)
//	err = gridfile.Export(t, "people.csv", gridfile.CSV)
//
// [Read], [Write], and [Marshal] do the same work against an [io.Reader],
// an [io.Writer], or memory.
//
// # Formats
//
// The format is taken from the file extension (case-insensitive) on load,
// and from [Table.Format] on save:
//
//   - [CSV]: the first record is the header; short rows are allowed.
//   - [JSON]: either an array of flat objects or a single object.
//   - [JSONL]: one object per line; lines that are not objects are skipped.
//
// # Shapes
//
// A JSON array loads with [ShapeArray]. Its headers are the union of the
// keys of all records, in first-seen order. A JSON object loads with
// [ShapeObject] as a two-column table headed "Key" and "Value". Saving such
// a table as JSON rebuilds the object. [Export] always writes [ShapeArray].
//
// # Cell Values
//
// Cells are text. On load, [EncodeCell] turns JSON values into text: null
// becomes empty, compound values become compact JSON. On save, [DecodeCell]
// sniffs the text back into a [Value]. Digit-only text such as "007"
// becomes a number, a known loss of the text-based model.
//
// # Previews
//
// [Render] writes a human-readable preview in one of three styles:
// [StyleTable] (with [BorderStyle] options), [StyleMarkdown], or [StyleYAML].
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrIO]: the file could not be read or written
//   - [ErrParse]: malformed CSV or JSON, or a JSON root that is neither
//     object nor array
//   - [ErrUnsupportedFormat]: unknown extension or format name
//   - [ErrSerialize]: the table could not be encoded
//   - [ErrOutOfRange], [ErrLastColumn], [ErrLastRow]: rejected edits
//   - [ErrUnsupportedStyle]: unknown preview style or border
package gridfile
