package filetype

import "github.com/dshills/quill/internal/highlight"

func builtins() []*FileType {
	return []*FileType{goType(), rustType(), cType()}
}

func allOn() highlight.Options {
	return highlight.Options{
		Numbers:           true,
		Strings:           true,
		Characters:        true,
		Comments:          true,
		MultilineComments: true,
	}
}

func goType() *FileType {
	opts := allOn()
	opts.PrimaryKeywords = []string{
		"break", "case", "chan", "const", "continue", "default", "defer",
		"else", "fallthrough", "for", "func", "go", "goto", "if", "import",
		"interface", "map", "package", "range", "return", "select",
		"struct", "switch", "type", "var", "true", "false", "nil", "iota",
	}
	opts.SecondaryKeywords = []string{
		"any", "bool", "byte", "complex64", "complex128", "error",
		"float32", "float64", "int", "int8", "int16", "int32", "int64",
		"rune", "string", "uint", "uint8", "uint16", "uint32", "uint64",
		"uintptr",
	}
	return &FileType{Name: "Go", Extensions: []string{"go"}, Options: opts}
}

func rustType() *FileType {
	opts := allOn()
	opts.PrimaryKeywords = []string{
		"as", "async", "await", "break", "const", "continue", "crate",
		"dyn", "else", "enum", "extern", "false", "fn", "for", "if",
		"impl", "in", "let", "loop", "match", "mod", "move", "mut", "pub",
		"ref", "return", "self", "Self", "static", "struct", "super",
		"trait", "true", "type", "unsafe", "use", "where", "while",
	}
	opts.SecondaryKeywords = []string{
		"bool", "char", "f32", "f64", "i8", "i16", "i32", "i64", "i128",
		"isize", "str", "u8", "u16", "u32", "u64", "u128", "usize",
	}
	return &FileType{Name: "Rust", Extensions: []string{"rs"}, Options: opts}
}

func cType() *FileType {
	opts := allOn()
	opts.PrimaryKeywords = []string{
		"auto", "break", "case", "const", "continue", "default", "do",
		"else", "enum", "extern", "for", "goto", "if", "inline",
		"register", "restrict", "return", "sizeof", "static", "struct",
		"switch", "typedef", "union", "volatile", "while",
	}
	opts.SecondaryKeywords = []string{
		"char", "double", "float", "int", "long", "short", "signed",
		"size_t", "unsigned", "void",
	}
	return &FileType{
		Name:       "C",
		Extensions: []string{"c", "h"},
		Options:    opts,
	}
}
