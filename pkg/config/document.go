package config

const (
	// A4 in points.
	DefaultPageWidth  = 595.0
	DefaultPageHeight = 842.0

	DefaultImageScale    = 0.9
	DefaultFontSize      = 12.0
	DefaultLineHeight    = 1.4
	DefaultMargin        = 28.35
	DefaultDocumentName  = "file.pdf"
	DefaultMergedPDFName = "merged.pdf"
)

type DocumentConfig struct {
	PageWidth, PageHeight float64
	// ImageScale is the share of the page width and height an image may
	// occupy after scaling.
	ImageScale float64
	FontSize   float64
	LineHeight float64
	Margin     float64
}

func DefaultDocumentConfig() DocumentConfig {
	c := DocumentConfig{}
	c.PopulateUnsetConfigVars()
	return c
}

func (c *DocumentConfig) PopulateUnsetConfigVars() {
	if c.PageWidth <= 0 || c.PageHeight <= 0 {
		c.PageWidth, c.PageHeight = DefaultPageWidth, DefaultPageHeight
	}
	if c.ImageScale <= 0 || c.ImageScale > 1 {
		c.ImageScale = DefaultImageScale
	}
	if c.FontSize <= 0 {
		c.FontSize = DefaultFontSize
	}
	if c.LineHeight <= 0 {
		c.LineHeight = DefaultLineHeight
	}
	if c.Margin < 0 || c.Margin*2 >= c.PageWidth {
		c.Margin = DefaultMargin
	}
}
