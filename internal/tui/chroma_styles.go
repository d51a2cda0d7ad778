package tui

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

func init() {
	// Register code block styles matching the app themes. The markdown
	// renderer selects one by name via the glamour style config.
	// Dark variant based on https://github.com/rebelot/kanagawa.nvim
	styles.Register(chroma.MustNewStyle("faitout-dark", chroma.StyleEntries{
		chroma.Text:                "#c5c9c5",
		chroma.Error:               "#c4746e",
		chroma.Comment:             "#737c73 italic",
		chroma.CommentPreproc:      "#c4b28a",
		chroma.Keyword:             "#8992a7",
		chroma.KeywordType:         "#c4b28a",
		chroma.KeywordDeclaration:  "#8992a7 italic",
		chroma.KeywordNamespace:    "#a292a3",
		chroma.Operator:            "#8ea4a2",
		chroma.Punctuation:         "#9e9b93",
		chroma.Name:                "#c5c9c5",
		chroma.NameAttribute:       "#c4b28a",
		chroma.NameClass:           "#c4b28a",
		chroma.NameConstant:        "#b6927b",
		chroma.NameDecorator:       "#a292a3",
		chroma.NameFunction:        "#8ba4b0",
		chroma.NameTag:             "#8992a7",
		chroma.Literal:             "#c5c9c5",
		chroma.LiteralNumber:       "#b6927b",
		chroma.LiteralString:       "#8a9a7b",
		chroma.LiteralStringEscape: "#8ea4a2",
		chroma.GenericDeleted:      "#c4746e",
		chroma.GenericEmph:         "italic",
		chroma.GenericHeading:      "#8ba4b0 bold",
		chroma.GenericInserted:     "#8a9a7b",
		chroma.GenericStrong:       "bold",
		chroma.GenericSubheading:   "#a6a69c bold",
		chroma.Background:          "", // Transparent background
	}))

	// Light variant based on https://ethanschoonover.com/solarized
	styles.Register(chroma.MustNewStyle("faitout-light", chroma.StyleEntries{
		chroma.Text:                "#657b83",
		chroma.Error:               "#dc322f",
		chroma.Comment:             "#93a1a1 italic",
		chroma.CommentPreproc:      "#cb4b16",
		chroma.Keyword:             "#859900",
		chroma.KeywordType:         "#b58900",
		chroma.KeywordDeclaration:  "#859900 italic",
		chroma.KeywordNamespace:    "#d33682",
		chroma.Operator:            "#2aa198",
		chroma.Punctuation:         "#839496",
		chroma.Name:                "#657b83",
		chroma.NameAttribute:       "#b58900",
		chroma.NameClass:           "#b58900",
		chroma.NameConstant:        "#cb4b16",
		chroma.NameDecorator:       "#d33682",
		chroma.NameFunction:        "#268bd2",
		chroma.NameTag:             "#859900",
		chroma.Literal:             "#657b83",
		chroma.LiteralNumber:       "#cb4b16",
		chroma.LiteralString:       "#2aa198",
		chroma.LiteralStringEscape: "#cb4b16",
		chroma.GenericDeleted:      "#dc322f",
		chroma.GenericEmph:         "italic",
		chroma.GenericHeading:      "#268bd2 bold",
		chroma.GenericInserted:     "#859900",
		chroma.GenericStrong:       "bold",
		chroma.GenericSubheading:   "#93a1a1 bold",
		chroma.Background:          "", // Transparent background
	}))
}
