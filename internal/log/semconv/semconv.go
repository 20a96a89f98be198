package semconv

// Source
const (
	// Name of the parsed source: a file path, "<expr>" or "<repl>".
	SourceName = "source_name"

	// Length of the parsed source in bytes.
	SourceBytes = "source_bytes"
)

const (
	// Unique ID of a single parse. Every call to program.Driver.Parse gets a new one.
	ParseID = "parse_id"

	// Zero-based index of a top-level item within its program.
	ItemIndex = "item_index"

	// Number of top-level items in a parsed program.
	ItemCount = "item_count"

	// Kind of an AST node, e.g. "FunctionDef".
	NodeKind = "node_kind"
)

// Diagnostics
const (
	// 1-based line of a reported error.
	ErrorLine = "error_line"

	// 1-based column of a reported error.
	ErrorColumn = "error_column"
)
