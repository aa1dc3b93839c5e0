package types

// PointsPerInch is the PDF unit scale (1 pt = 1/72 inch).
const PointsPerInch = 72.0

// RenderConfig holds settings for slipsheet page rendering.
type RenderConfig struct {
	// FontName is a PDF core font family (default "Times").
	FontName string `json:"font_name" yaml:"font_name"`

	// FontSize is the designation text size in points (default 72).
	// The renderer shrinks it when the text would overrun the margins.
	FontSize float64 `json:"font_size" yaml:"font_size"`

	// Margin is the minimum horizontal margin in points (default 0.8 inch).
	Margin float64 `json:"margin" yaml:"margin"`

	// Page is the base page size (default letter). Orientation is applied
	// per job by swapping width and height when needed.
	Page PageSize `json:"page" yaml:"page"`
}

// GenConfig holds settings for the gen (slipsheet/exhibit) command.
type GenConfig struct {
	// Orientation is the default page orientation when neither the flag
	// nor the input file decides it.
	Orientation string `json:"orientation" yaml:"orientation"`

	// OutputDir is where exhibit files are written. Empty means next to
	// the input file, or the working directory for standalone slipsheets.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	Render RenderConfig `json:"render" yaml:"render"`
}

// CombineConfig holds settings for the combine command.
type CombineConfig struct {
	// Output is the combined document path. Empty selects the default
	// "combined-<N>-files.pdf" name.
	Output string `json:"output" yaml:"output"`
}

// ManifestConfig holds settings for the run manifest.
type ManifestConfig struct {
	// Path is the SQLite database file. Empty disables manifest recording.
	Path string `json:"path" yaml:"path"`
}

// Config groups all command configurations.
type Config struct {
	Gen      GenConfig      `json:"gen" yaml:"gen"`
	Combine  CombineConfig  `json:"combine" yaml:"combine"`
	Manifest ManifestConfig `json:"manifest" yaml:"manifest"`
}
