// Package config provides configuration management for the prosekit CLI.
//
// Project settings live in prosekit.yaml at the project root and describe
// both the formatting options (columns, paragraph spacing) and the book
// itself (author, title, ordered chapter sources).
package config

// SourceEntry describes one chapter in the compiled document. In the
// sources list a null entry stands for a part break, which decodes to a
// nil *SourceEntry; a bare string entry is shorthand for a chapter without
// a title.
type SourceEntry struct {
	Path  string `koanf:"path" yaml:"path"`
	Title string `koanf:"title" yaml:"title,omitempty"`
}

// Config holds all CLI configuration options.
type Config struct {
	Author           string         `koanf:"author" yaml:"author"`
	Title            string         `koanf:"title" yaml:"title"`
	Header           string         `koanf:"header" yaml:"header,omitempty"`
	Watermark        string         `koanf:"watermark" yaml:"watermark,omitempty"`
	Columns          int            `koanf:"columns" yaml:"columns"`
	ParagraphSpacing int            `koanf:"paragraph_spacing" yaml:"paragraph_spacing"`
	SourceDir        string         `koanf:"source_dir" yaml:"source_dir"`
	TexDir           string         `koanf:"tex_dir" yaml:"tex_dir"`
	Sources          []*SourceEntry `koanf:"sources" yaml:"sources"`
	Verbose          bool           `koanf:"verbose" yaml:"-"`
	OutputFormat     string         `koanf:"output" yaml:"-"`
}

// Default configuration values.
const (
	DefaultColumns          = 72
	DefaultParagraphSpacing = 1
	DefaultSourceDir        = "manuscript"
	DefaultTexDir           = ".tex"
	DefaultFormatDir        = ".format"
	DefaultOutput           = "auto" // Auto-detect: TTY=text, non-TTY=plain
	DefaultConfigName       = "prosekit.yaml"
)
